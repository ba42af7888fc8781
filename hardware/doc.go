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

// Package hardware is the base package for the interpreter. The VM type
// collates the memory, registers, framebuffer, timers and keypad and drives
// the fetch, decode and execute cycle.
//
// The VM does not know how to show the framebuffer, make a sound or read the
// keyboard. Those jobs are given to the collaborators supplied to the Plumb()
// function: a Display, an Audio and an Input implementation. Any of them can
// be nil, in which case the VM behaves as though the collaborator does nothing.
//
// Emulation runs one frame at a time. Each frame the VM:
//
//   - polls the Input for the current keypad state and for a stop request
//   - either updates a pending key wait, or executes up to the preferred number
//     of instructions
//   - sends the framebuffer to the Display if it has changed
//   - starts the Audio if the sound timer is running
//   - ticks the delay and sound timers once
//   - stops the Audio if the sound timer has reached zero
//
// The Run() function repeats this until the Input requests a stop or an error
// occurs. All errors returned by Step(), Frame() and Run() are fatal.
package hardware
