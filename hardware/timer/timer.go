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

// Package timer implements the delay and sound timers. Both timers are eight
// bit counters that count down towards zero, once per call to Tick().
package timer

import "fmt"

// Timer holds the two countdown counters.
type Timer struct {
	// decremented on every tick until it reaches zero. read and written by
	// the program
	Delay uint8

	// decremented on every tick until it reaches zero. the tone sounds for
	// as long as the value is non-zero
	Sound uint8
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DT=%d ST=%d", tmr.Delay, tmr.Sound)
}

// Reset both counters to zero.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decrements each non-zero counter by one. Returns true if the sound
// counter reached zero on this tick. A sound counter that was already zero
// does not count.
func (tmr *Timer) Tick() bool {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
		return tmr.Sound == 0
	}
	return false
}
