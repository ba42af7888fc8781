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

package audio

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
)

// Mix forwards the hardware.Audio and hardware.AudioFrame calls to every entry.
// Nil entries are ignored.
type Mix []hardware.Audio

// Play implements the hardware.Audio interface.
func (mx Mix) Play() error {
	for _, a := range mx {
		if a == nil {
			continue
		}
		if err := a.Play(); err != nil {
			return curated.Errorf("audio: %v", err)
		}
	}
	return nil
}

// Stop implements the hardware.Audio interface.
func (mx Mix) Stop() error {
	for _, a := range mx {
		if a == nil {
			continue
		}
		if err := a.Stop(); err != nil {
			return curated.Errorf("audio: %v", err)
		}
	}
	return nil
}

// EndFrame implements the hardware.AudioFrame interface.
func (mx Mix) EndFrame() error {
	for _, a := range mx {
		if af, ok := a.(hardware.AudioFrame); ok {
			if err := af.EndFrame(); err != nil {
				return curated.Errorf("audio: %v", err)
			}
		}
	}
	return nil
}
