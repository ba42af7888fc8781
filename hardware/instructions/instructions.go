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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// InvalidOpcode is returned by Decode() when the word does not match any known
// instruction pattern.
const InvalidOpcode = "instructions: invalid opcode (%04x)"

// Instruction is a decoded instruction word.
type Instruction struct {
	Operator Operator

	// register indices
	X uint8
	Y uint8

	// the low nibble, byte and twelve bits of the instruction word
	N   uint8
	NN  uint8
	NNN uint16

	// the word the instruction was decoded from
	Raw uint16
}

// String returns the instruction in assembly form.
func (ins Instruction) String() string {
	m := ins.Operator.Mnemonic()

	switch ins.Operator {
	case ClearScreen, Return:
		return m
	case Jump, CallSub:
		return fmt.Sprintf("%s %#03x", m, ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, %#03x", m, ins.NNN)
	case SetIndex:
		return fmt.Sprintf("%s I, %#03x", m, ins.NNN)
	case SkipIfEqualConst, SkipIfNotEqualConst, SetConst, AddConst, Random:
		return fmt.Sprintf("%s V%X, %#02x", m, ins.X, ins.NN)
	case SkipIfEqual, SkipIfNotEqual, Assign, Or, And, Xor, Add, Sub, ShiftRight, RevSub, ShiftLeft:
		return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, %d", m, ins.X, ins.Y, ins.N)
	case SkipIfPressed, SkipIfNotPressed:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case GetDelay:
		return fmt.Sprintf("%s V%X, DT", m, ins.X)
	case WaitKey:
		return fmt.Sprintf("%s V%X, K", m, ins.X)
	case SetDelay:
		return fmt.Sprintf("%s DT, V%X", m, ins.X)
	case SetSound:
		return fmt.Sprintf("%s ST, V%X", m, ins.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", m, ins.X)
	case Font:
		return fmt.Sprintf("%s F, V%X", m, ins.X)
	case BCD:
		return fmt.Sprintf("%s B, V%X", m, ins.X)
	case RegDump:
		return fmt.Sprintf("%s [I], V%X", m, ins.X)
	case RegLoad:
		return fmt.Sprintf("%s V%X, [I]", m, ins.X)
	}

	return fmt.Sprintf("%04x", ins.Raw)
}

// secondary selectors for the 0x8 class, indexed by the low nibble. a value of
// -1 indicates an unmapped selector.
var class8 = [16]Operator{
	0x0: Assign,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: Add,
	0x5: Sub,
	0x6: ShiftRight,
	0x7: RevSub,
	0x8: -1, 0x9: -1, 0xa: -1, 0xb: -1, 0xc: -1, 0xd: -1,
	0xe: ShiftLeft,
	0xf: -1,
}

// secondary selectors for the 0xF class, indexed by the low byte.
var classF = map[uint8]Operator{
	0x07: GetDelay,
	0x0a: WaitKey,
	0x15: SetDelay,
	0x18: SetSound,
	0x1e: AddIndex,
	0x29: Font,
	0x33: BCD,
	0x55: RegDump,
	0x65: RegLoad,
}

// Decode a 16-bit instruction word.
func Decode(word uint16) (Instruction, error) {
	ins := Instruction{
		X:   uint8(word>>8) & 0x0f,
		Y:   uint8(word>>4) & 0x0f,
		N:   uint8(word) & 0x0f,
		NN:  uint8(word),
		NNN: word & 0x0fff,
		Raw: word,
	}

	op := Operator(-1)

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			op = ClearScreen
		case 0x00ee:
			op = Return
		}
	case 0x1:
		op = Jump
	case 0x2:
		op = CallSub
	case 0x3:
		op = SkipIfEqualConst
	case 0x4:
		op = SkipIfNotEqualConst
	case 0x5:
		if ins.N == 0 {
			op = SkipIfEqual
		}
	case 0x6:
		op = SetConst
	case 0x7:
		op = AddConst
	case 0x8:
		op = class8[ins.N]
	case 0x9:
		if ins.N == 0 {
			op = SkipIfNotEqual
		}
	case 0xa:
		op = SetIndex
	case 0xb:
		op = JumpOffset
	case 0xc:
		op = Random
	case 0xd:
		op = Draw
	case 0xe:
		switch ins.NN {
		case 0x9e:
			op = SkipIfPressed
		case 0xa1:
			op = SkipIfNotPressed
		}
	case 0xf:
		if o, ok := classF[ins.NN]; ok {
			op = o
		}
	}

	if op < 0 {
		return Instruction{Raw: word}, curated.Errorf(InvalidOpcode, word)
	}

	ins.Operator = op
	return ins, nil
}
