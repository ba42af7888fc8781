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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func keys(down ...uint8) keypad.Keys {
	var k keypad.Keys
	for _, d := range down {
		k.Set(d, true)
	}
	return k
}

func TestKeys(t *testing.T) {
	k := keys(0x3, 0xa)
	test.ExpectSuccess(t, k.IsDown(0x3))
	test.ExpectSuccess(t, k.IsDown(0x13))
	test.ExpectFailure(t, k.IsDown(0x4))
	test.ExpectEquality(t, k.String(), "---3------A-----")

	u := k.Or(keys(0x4))
	test.ExpectEquality(t, u, keys(0x3, 0x4, 0xa))

	// k is unchanged by the call to Or()
	test.ExpectFailure(t, k.IsDown(0x4))

	key, ok := u.Released(keys(0x3))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 0x4)

	_, ok = u.Released(u)
	test.ExpectFailure(t, ok)
}

func TestWaitHeldKey(t *testing.T) {
	var w keypad.Wait
	test.ExpectFailure(t, w.Waiting())
	test.ExpectEquality(t, w.String(), "idle")

	// key 3 is held when the wait begins
	w.Begin(0x5, keys(0x3))
	test.ExpectSuccess(t, w.Waiting())
	test.ExpectEquality(t, w.Register, 0x5)

	// key 3 is still held. no resolution
	_, ok := w.Update(keys(0x3))
	test.ExpectFailure(t, ok)

	// an unrelated key is pressed and then released. key 3 is still held
	_, ok = w.Update(keys(0x3, 0x7))
	test.ExpectFailure(t, ok)

	// the unrelated key was seen down so its release resolves the wait. this
	// is the press-then-release behaviour
	key, ok := w.Update(keys(0x3))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 0x7)
	test.ExpectFailure(t, w.Waiting())
}

func TestWaitUnrelatedKey(t *testing.T) {
	var w keypad.Wait

	w.Begin(0x0, keys(0x3))

	// a different key that was never seen down is up. that is not a release
	_, ok := w.Update(keys(0x3))
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, w.Waiting())

	// releasing key 3 resolves the wait
	key, ok := w.Update(keys())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 0x3)
	test.ExpectFailure(t, w.Waiting())

	// further updates do nothing
	_, ok = w.Update(keys())
	test.ExpectFailure(t, ok)
}

func TestWaitPressAndRelease(t *testing.T) {
	var w keypad.Wait

	w.Begin(0x2, keys())

	// nothing pressed
	_, ok := w.Update(keys())
	test.ExpectFailure(t, ok)

	// pressing a key does not resolve the wait
	_, ok = w.Update(keys(0xb, 0x1))
	test.ExpectFailure(t, ok)
	_, ok = w.Update(keys(0xb, 0x1))
	test.ExpectFailure(t, ok)

	// releasing both keys at once. lowest index wins
	key, ok := w.Update(keys())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 0x1)
}

func TestWaitCancel(t *testing.T) {
	var w keypad.Wait
	w.Begin(0x2, keys(0x1))
	w.Cancel()
	test.ExpectFailure(t, w.Waiting())
	_, ok := w.Update(keys())
	test.ExpectFailure(t, ok)
}
