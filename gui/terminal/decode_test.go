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

package terminal

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeKeys(t *testing.T) {
	keys, stop := decodeInput([]byte("1qZv"))
	test.ExpectFailure(t, stop)
	test.DemandEquality(t, len(keys), 4)
	test.ExpectEquality(t, keys[0], 0x1)
	test.ExpectEquality(t, keys[1], 0x4)
	test.ExpectEquality(t, keys[2], 0xa)
	test.ExpectEquality(t, keys[3], 0xf)

	// unmapped characters are ignored
	keys, stop = decodeInput([]byte("p9 "))
	test.ExpectFailure(t, stop)
	test.ExpectEquality(t, len(keys), 0)
}

func TestDecodeStop(t *testing.T) {
	_, stop := decodeInput([]byte{keyEscape})
	test.ExpectSuccess(t, stop)

	keys, stop := decodeInput([]byte{'x', keyCtrlC, 'v'})
	test.ExpectSuccess(t, stop)
	test.ExpectEquality(t, len(keys), 1)

	// cursor key sequences are not the escape key
	keys, stop = decodeInput([]byte("\033[A\033OBw"))
	test.ExpectFailure(t, stop)
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], 0x5)
}

func TestHalfBlocks(t *testing.T) {
	var px framebuffer.Pixels
	px[0][0] = true
	px[1][1] = true
	px[0][2] = true
	px[1][2] = true

	s := &strings.Builder{}
	renderHalfBlocks(s, px)

	lines := strings.Split(s.String(), "\r\n")
	test.ExpectEquality(t, len(lines), framebuffer.Height/2+1)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "▀▄█ "))
	test.ExpectEquality(t, len([]rune(lines[0])), framebuffer.Width)
	test.ExpectEquality(t, strings.TrimSpace(lines[1]), "")
}
