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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// Display implementations show the framebuffer. Render() is only called when
// the framebuffer has changed since the previous call.
type Display interface {
	Render(px framebuffer.Pixels) error
}

// Audio implementations sound a tone while the sound timer is running. Play()
// and Stop() are only called on a change of state.
type Audio interface {
	Play() error
	Stop() error
}

// AudioFrame is an optional interface for Audio implementations that need to do
// work once per frame, such as queueing samples.
type AudioFrame interface {
	EndFrame() error
}

// Input implementations report the state of the keypad. Poll() is called once
// at the start of every frame. A stop value of true ends emulation.
type Input interface {
	Poll() (keys keypad.Keys, stop bool, err error)
}
