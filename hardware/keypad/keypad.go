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

// Package keypad implements the sixteen key hexadecimal keypad and the state
// machine used by the wait-for-key instruction.
//
// The wait-for-key instruction completes on the release of a key rather than
// on a press. When the wait begins, the keys that are down at that moment are
// captured. On every following update, keys that are newly down are added to
// the captured set. The wait is resolved when a captured key is seen to be up.
// If more than one captured key is released at the same time, the key with the
// lowest index is chosen.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keys is the down/up state of every key on the keypad.
type Keys [NumKeys]bool

// IsDown returns true if the key is down. Only the low nibble of key is used.
func (k Keys) IsDown(key uint8) bool {
	return k[key&0x0f]
}

// Set the state of a key. Only the low nibble of key is used.
func (k *Keys) Set(key uint8, down bool) {
	k[key&0x0f] = down
}

// Or returns the union of the two key states.
func (k Keys) Or(o Keys) Keys {
	for i := range k {
		k[i] = k[i] || o[i]
	}
	return k
}

// Released returns the lowest indexed key that is down in k but up in live.
func (k Keys) Released(live Keys) (uint8, bool) {
	for i := range k {
		if k[i] && !live[i] {
			return uint8(i), true
		}
	}
	return 0, false
}

func (k Keys) String() string {
	s := strings.Builder{}
	for i := range k {
		if k[i] {
			s.WriteString(fmt.Sprintf("%X", i))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Wait is the state of a wait-for-key instruction. The zero value is the idle
// state.
type Wait struct {
	waiting bool

	// the register that will receive the released key
	Register uint8

	// keys that have been seen down since the wait began
	captured Keys
}

func (w Wait) String() string {
	if !w.waiting {
		return "idle"
	}
	return fmt.Sprintf("waiting V%X [%s]", w.Register, w.captured)
}

// Begin a wait, capturing the live key state. The released key will be stored
// in the register.
func (w *Wait) Begin(register uint8, live Keys) {
	w.waiting = true
	w.Register = register & 0x0f
	w.captured = live
}

// Waiting returns true if a wait is pending.
func (w *Wait) Waiting() bool {
	return w.waiting
}

// Cancel a pending wait.
func (w *Wait) Cancel() {
	*w = Wait{}
}

// Update the wait with the live key state. Returns the released key and true
// if the wait has been resolved, after which the wait is idle again.
//
// Calling Update() on an idle Wait does nothing and returns false.
func (w *Wait) Update(live Keys) (uint8, bool) {
	if !w.waiting {
		return 0, false
	}

	w.captured = w.captured.Or(live)

	key, ok := w.captured.Released(live)
	if !ok {
		return 0, false
	}

	w.waiting = false
	w.captured = Keys{}

	return key, true
}
