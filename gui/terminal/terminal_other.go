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

//go:build !unix

package terminal

import (
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// NewTerminal always returns an error on this platform.
func NewTerminal(_ *os.File, _ *os.File) (*Terminal, error) {
	return nil, curated.Errorf("terminal: %v", "not supported on this platform")
}

// Close does nothing on this platform.
func (trm *Terminal) Close() error {
	return nil
}

// Render implements the hardware.Display interface.
func (trm *Terminal) Render(_ framebuffer.Pixels) error {
	return nil
}

// Poll implements the hardware.Input interface.
func (trm *Terminal) Poll() (keypad.Keys, bool, error) {
	return keypad.Keys{}, true, nil
}
