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

	"github.com/jetsetilly/gopher8/hardware/framebuffer"
)

// keymap maps characters to keypad keys. upper and lower case are both mapped.
var keymap = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
)

// decodeInput returns the keypad keys pressed in the input data and whether a
// stop has been requested. Escape sequences, such as those sent by the cursor
// keys, are ignored.
func decodeInput(data []byte) ([]uint8, bool) {
	var keys []uint8

	for i := 0; i < len(data); i++ {
		b := data[i]

		switch b {
		case keyCtrlC:
			return keys, true

		case keyEscape:
			// a lone escape is the escape key
			if i+1 >= len(data) || (data[i+1] != '[' && data[i+1] != 'O') {
				return keys, true
			}

			// skip escape sequence. the sequence ends with a character in the
			// range 0x40 to 0x7e
			i += 2
			for i < len(data) && (data[i] < 0x40 || data[i] > 0x7e) {
				i++
			}

		default:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
			if k, ok := keymap[b]; ok {
				keys = append(keys, k)
			}
		}
	}

	return keys, false
}

// half block characters indexed by (top << 1 | bottom).
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// renderHalfBlocks draws the pixels into the string builder. Each line of
// output represents two rows of pixels. Lines are terminated with CR LF
// because the terminal is in raw mode.
func renderHalfBlocks(s *strings.Builder, px framebuffer.Pixels) {
	for y := 0; y < framebuffer.Height; y += 2 {
		for x := 0; x < framebuffer.Width; x++ {
			i := 0
			if px[y][x] {
				i |= 0b10
			}
			if px[y+1][x] {
				i |= 0b01
			}
			s.WriteString(halfBlocks[i])
		}
		s.WriteString("\r\n")
	}
}
