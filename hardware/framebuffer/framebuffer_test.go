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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawTwice(t *testing.T) {
	var fb framebuffer.Framebuffer
	test.ExpectFailure(t, fb.Dirty())

	collision := fb.Draw(0, 0, []uint8{0xff}, false)
	test.ExpectFailure(t, collision)
	test.ExpectSuccess(t, fb.Dirty())

	px := fb.Pixels()
	test.ExpectEquality(t, len(px.Lit()), 8)
	for x := range 8 {
		test.ExpectSuccess(t, px[0][x], x)
	}
	test.ExpectFailure(t, px[0][8])

	// drawing the same sprite in the same place cancels itself out
	collision = fb.Draw(0, 0, []uint8{0xff}, false)
	test.ExpectSuccess(t, collision)
	px = fb.Pixels()
	test.ExpectEquality(t, len(px.Lit()), 0)
}

func TestPartialCollision(t *testing.T) {
	var fb framebuffer.Framebuffer

	fb.Draw(10, 10, []uint8{0xf0}, false)

	// no overlap
	test.ExpectFailure(t, fb.Draw(14, 10, []uint8{0xf0}, false))

	// a single overlapping pixel is a collision
	test.ExpectSuccess(t, fb.Draw(17, 10, []uint8{0x80}, false))

	px := fb.Pixels()
	test.ExpectEquality(t, len(px.Lit()), 7)
	test.ExpectFailure(t, px[10][17])
}

func TestClear(t *testing.T) {
	var fb framebuffer.Framebuffer
	fb.Draw(0, 0, []uint8{0xff, 0xff}, false)
	fb.ResetDirty()

	fb.Clear()
	test.ExpectSuccess(t, fb.Dirty())
	px := fb.Pixels()
	test.ExpectEquality(t, len(px.Lit()), 0)
	test.ExpectEquality(t, px, framebuffer.Pixels{})
}

func TestClipping(t *testing.T) {
	var fb framebuffer.Framebuffer

	// bottom right corner. only the top-left pixel of the sprite is visible
	fb.Draw(63, 31, []uint8{0xff, 0xff}, false)
	px := fb.Pixels()
	test.ExpectEquality(t, len(px.Lit()), 1)
	test.ExpectSuccess(t, px[31][63])
	test.ExpectFailure(t, px[0][0])
}

func TestWrapping(t *testing.T) {
	var fb framebuffer.Framebuffer

	fb.Draw(63, 31, []uint8{0xc0, 0xc0}, true)
	px := fb.Pixels()
	test.ExpectEquality(t, len(px.Lit()), 4)
	test.ExpectSuccess(t, px[31][63])
	test.ExpectSuccess(t, px[31][0])
	test.ExpectSuccess(t, px[0][63])
	test.ExpectSuccess(t, px[0][0])
}

func TestOriginModulo(t *testing.T) {
	var fb framebuffer.Framebuffer

	// origin of (66, 35) is the same as (2, 3)
	fb.Draw(66, 35, []uint8{0x80}, false)
	px := fb.Pixels()
	test.ExpectSuccess(t, px[3][2])
	lit := px.Lit()
	test.DemandEquality(t, len(lit), 1)
	test.ExpectEquality(t, lit[0], framebuffer.Coord{X: 2, Y: 3})
}

func TestString(t *testing.T) {
	var fb framebuffer.Framebuffer
	fb.Draw(0, 0, []uint8{0xa0}, false)
	px := fb.Pixels()
	s := px.String()
	test.ExpectEquality(t, len(s), (framebuffer.Width+1)*framebuffer.Height)
	test.ExpectEquality(t, s[:4], "#.#.")
}
