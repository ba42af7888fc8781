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

// Package performance is used to measure the speed of the interpreter. The
// Check() function runs a program without frame pacing for a fixed duration and
// reports the number of frames per second achieved.
//
// The CPU and memory use of the interpreter can be profiled at the same time.
// The profiles are written to the current directory and can be viewed with
// "go tool pprof".
package performance
