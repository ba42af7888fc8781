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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
)

// Video is an implementation of the hardware.Display interface. It computes a
// chained SHA1 hash of every frame it is asked to render.
type Video struct {
	// the display to forward render requests to. can be nil
	next hardware.Display

	digest [sha1.Size]byte

	// the previous digest followed by one byte per pixel
	pixels []byte

	renders int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// next argument can be nil.
func NewVideo(next hardware.Display) *Video {
	return &Video{
		next:   next,
		pixels: make([]byte, sha1.Size+framebuffer.Width*framebuffer.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.renders = 0
}

// Renders returns the number of frames that have contributed to the digest.
func (dig *Video) Renders() int {
	return dig.renders
}

// Render implements the hardware.Display interface.
func (dig *Video) Render(px framebuffer.Pixels) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	i := copy(dig.pixels, dig.digest[:])
	for y := range px {
		for x := range px[y] {
			if px[y][x] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.renders++

	if dig.next != nil {
		return dig.next.Render(px)
	}
	return nil
}
