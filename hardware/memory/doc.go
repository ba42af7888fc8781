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

// Package memory implements the 4096 byte address space of the machine.
//
// The first 512 bytes are reserved for the interpreter. The font table is
// stored at the very beginning of this area. Programs are loaded at
// ProgramOrigin and can occupy the remainder of memory.
//
//	0x000 +-----------------+
//	      | font table      |
//	0x050 +-----------------+
//	      | reserved        |
//	0x200 +-----------------+
//	      | program         |
//	      |                 |
//	0xfff +-----------------+
//
// All access is bounds checked. Access beyond the end of memory results in a
// MemoryFault error.
package memory
