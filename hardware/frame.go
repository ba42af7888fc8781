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

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Frame runs the VM for a single frame. Returns false if the Input has
// requested that emulation stop, in which case nothing else happens in the
// frame.
func (vm *VM) Frame() (bool, error) {
	if vm.input != nil {
		keys, stop, err := vm.input.Poll()
		if err != nil {
			return false, curated.Errorf(VMError, err)
		}
		if stop {
			return false, nil
		}
		vm.Keys = keys
	}

	if vm.Wait.Waiting() {
		// no instructions are executed while waiting, including the frame on
		// which the wait is resolved
		reg := vm.Wait.Register
		if key, ok := vm.Wait.Update(vm.Keys); ok {
			vm.V[reg] = key
			logger.Logf(vm, "vm", "key %X released (V%X)", key, reg)
		}
	} else {
		ipf := vm.Prefs.InstructionsPerFrame.Get().(int)
		for range ipf {
			if err := vm.Step(); err != nil {
				return false, err
			}
			if vm.Wait.Waiting() {
				break
			}
		}
	}

	if vm.FB.Dirty() {
		if vm.display != nil {
			if err := vm.display.Render(vm.FB.Pixels()); err != nil {
				return false, curated.Errorf(VMError, err)
			}
		}
		vm.FB.ResetDirty()
	}

	if !vm.sounding && vm.Timer.Sound > 0 {
		vm.sounding = true
		if vm.audio != nil {
			if err := vm.audio.Play(); err != nil {
				return false, curated.Errorf(VMError, err)
			}
		}
	}

	zero := vm.Timer.Tick()

	if vm.sounding && (zero || vm.Timer.Sound == 0) {
		vm.sounding = false
		if vm.audio != nil {
			if err := vm.audio.Stop(); err != nil {
				return false, curated.Errorf(VMError, err)
			}
		}
	}

	if af, ok := vm.audio.(AudioFrame); ok {
		if err := af.EndFrame(); err != nil {
			return false, curated.Errorf(VMError, err)
		}
	}

	vm.frameNum++

	return true, nil
}
