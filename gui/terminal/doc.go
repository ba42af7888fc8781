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

// Package terminal implements the hardware.Display and hardware.Input
// interfaces for a text terminal. The framebuffer is drawn with half-block
// characters so that each character cell shows two rows of pixels.
//
// The keypad layout is the same as the one used by the sdl package. Terminals
// do not report key releases so a key is considered to be held for a short
// number of frames after the key press is received. Keyboard auto-repeat keeps
// the key held for as long as it is physically held.
//
// The Escape key or Ctrl-C requests that the VM stop.
package terminal
