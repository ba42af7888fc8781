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

// Package audio generates the sound made by the VM's beeper. The Generator type
// produces a square wave at the frequency given by the preferences, or loops a
// sample loaded from a WAV or MP3 file with LoadSample().
//
// The Generator implements the hardware.Audio interface but produces no sound
// by itself. Backends in the gui packages and the wavwriter package draw
// samples from a Generator and send them to an output device or file.
//
// The Mix type allows more than one hardware.Audio implementation to be
// plumbed into the VM at the same time.
package audio
