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
)

// Audio is an implementation of the hardware.Audio and hardware.AudioFrame
// interfaces. It computes a chained SHA1 hash of the tone state at the end of
// every frame.
type Audio struct {
	// the audio to forward requests to. can be nil
	next hardware.Audio

	digest [sha1.Size]byte
	buffer [sha1.Size + 1]byte

	sounding bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// next argument can be nil.
func NewAudio(next hardware.Audio) *Audio {
	return &Audio{
		next: next,
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Play implements the hardware.Audio interface.
func (dig *Audio) Play() error {
	dig.sounding = true
	if dig.next != nil {
		return dig.next.Play()
	}
	return nil
}

// Stop implements the hardware.Audio interface.
func (dig *Audio) Stop() error {
	dig.sounding = false
	if dig.next != nil {
		return dig.next.Stop()
	}
	return nil
}

// EndFrame implements the hardware.AudioFrame interface.
func (dig *Audio) EndFrame() error {
	n := copy(dig.buffer[:], dig.digest[:])
	if dig.sounding {
		dig.buffer[n] = 1
	} else {
		dig.buffer[n] = 0
	}
	dig.digest = sha1.Sum(dig.buffer[:])

	if af, ok := dig.next.(hardware.AudioFrame); ok {
		return af.EndFrame()
	}
	return nil
}
