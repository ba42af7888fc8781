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

// Package instructions decodes 16-bit instruction words into a tagged
// Instruction value. Decoding is stateless: the same word always decodes to
// the same Instruction or the same error.
//
// Every field of the word is extracted regardless of the operator. It is the
// Operator that decides which of the fields are meaningful:
//
//	 1111 2222 3333 4444
//	 |    |    |    |
//	 |    X    Y    N
//	 |         \----/
//	 |           NN
//	 |    \---------/
//	 |        NNN
//	 class
//
// Words that do not match a known instruction pattern, including unmapped
// sub-selectors in the 0x0, 0x8, 0xE and 0xF classes, fail with the
// InvalidOpcode error.
package instructions
