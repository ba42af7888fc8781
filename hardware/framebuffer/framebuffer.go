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

// Package framebuffer implements the 64x32 monochrome display memory.
//
// Sprites are drawn by XOR-ing eight pixel wide rows onto the grid. A pixel
// that is turned off by a draw is a collision. Sprites that extend beyond the
// edges of the grid are either clipped or wrapped around to the opposite edge,
// depending on the wrap argument to Draw().
package framebuffer

import (
	"strings"
)

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// SpriteWidth is the width in pixels of each sprite row.
const SpriteWidth = 8

// Pixels is a copy of the framebuffer content. Rows are indexed first.
type Pixels [Height][Width]bool

// Coord is the position of a single pixel.
type Coord struct {
	X int
	Y int
}

// Lit returns the coordinates of every pixel that is on, in row order.
func (px Pixels) Lit() []Coord {
	var l []Coord
	for y := range px {
		for x := range px[y] {
			if px[y][x] {
				l = append(l, Coord{X: x, Y: y})
			}
		}
	}
	return l
}

// String returns a text representation of the pixels, one line per row.
func (px Pixels) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := range px {
		for x := range px[y] {
			if px[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Framebuffer is the display memory.
type Framebuffer struct {
	px Pixels

	// the pixels have changed since the last call to ResetDirty()
	dirty bool
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.px = Pixels{}
	fb.dirty = true
}

// Draw XORs the sprite rows onto the framebuffer with the top-left corner at
// (x, y). The origin is taken modulo the framebuffer dimensions. Returns true
// if any pixel was turned off by the draw.
func (fb *Framebuffer) Draw(x, y uint8, rows []uint8, wrap bool) bool {
	ox := int(x) % Width
	oy := int(y) % Height

	var collision bool

	for r, row := range rows {
		py := oy + r
		if py >= Height {
			if !wrap {
				break
			}
			py %= Height
		}

		for c := range SpriteWidth {
			if row&(0x80>>c) == 0 {
				continue
			}

			px := ox + c
			if px >= Width {
				if !wrap {
					break
				}
				px %= Width
			}

			old := fb.px[py][px]
			fb.px[py][px] = !old
			if old {
				collision = true
			}
		}
	}

	fb.dirty = true

	return collision
}

// Pixels returns a copy of the framebuffer content.
func (fb *Framebuffer) Pixels() Pixels {
	return fb.px
}

// Dirty returns true if the framebuffer has been changed since the last call
// to ResetDirty().
func (fb *Framebuffer) Dirty() bool {
	return fb.dirty
}

// ResetDirty indicates that the framebuffer content has been consumed.
func (fb *Framebuffer) ResetDirty() {
	fb.dirty = false
}
