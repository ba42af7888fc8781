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

// Package sdl implements the hardware.Display and hardware.Input interfaces
// with a window created with SDL2.
//
// The keypad is mapped onto the left hand side of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// The Escape key and closing the window both request that the VM stop.
//
// SDL requires that all functions are called from the main thread. The caller
// should lock the main goroutine to the OS thread and call Render() and Poll()
// from that goroutine, which is what happens when the Window is plumbed into
// the VM and VM.Run() is called from main().
package sdl
