// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package hardware

// Run the VM until the Input requests a stop, the continueCheck function
// returns false, or an error occurs. The continueCheck function is called once
// per frame and can be nil.
//
// Frames are paced according to the TickRate preference unless pacing has been
// turned off with SetFPSCap().
func (vm *VM) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		running, err := vm.Frame()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		running, err = continueCheck()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		if vm.limiter != nil {
			vm.limiter.Wait()
		}
	}
}

// RunForFrameCount runs the VM for the specified number of frames without frame
// pacing. Useful for headless operation and for tests. The continueCheck
// function can be nil.
func (vm *VM) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	for range numFrames {
		running, err := vm.Frame()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		running, err = continueCheck(vm.frameNum)
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}

	return nil
}
