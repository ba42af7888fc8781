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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
)

// time allowed for the interpreter to settle before measurement begins.
var leadTime = 2 * time.Second

var errTimedOut = errors.New("performance timed out")

// Check the performance of the interpreter by running the program for the
// specified duration. The VM has no collaborators and runs without frame
// pacing. The result is written to output.
func Check(output io.Writer, profile Profile, ld romloader.Loader, ipf int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = ld.Load()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	vm, err := hardware.NewVM(nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	vm.SetLogging(false)
	vm.SetFPSCap(false)

	if ipf > 0 {
		err = vm.Prefs.InstructionsPerFrame.Set(ipf)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	err = vm.LoadProgram(ld.Data)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := 0

	runner := func() error {
		// the timer channel receives false when the lead time has elapsed
		// and true when the measurement period has concluded
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		err := vm.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					return false, errTimedOut
				}
				startFrame = vm.FrameNum()
			default:
			}
			return true, nil
		})
		if errors.Is(err, errTimedOut) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := vm.FrameNum() - startFrame
	tickRate := vm.Prefs.TickRate.Get().(int)
	fps, accuracy := CalcFPS(tickRate, numFrames, dur.Seconds())

	ips := fps * float64(vm.Prefs.InstructionsPerFrame.Get().(int))

	_, err = fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	_, err = fmt.Fprintf(output, "%.0f instructions per second (max)\n", ips)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
