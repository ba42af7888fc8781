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

// Operator identifies the operation of a decoded instruction.
type Operator int

// List of valid Operator values. Comments show the instruction pattern.
const (
	ClearScreen         Operator = iota // 00E0
	Return                              // 00EE
	Jump                                // 1NNN
	CallSub                             // 2NNN
	SkipIfEqualConst                    // 3XNN
	SkipIfNotEqualConst                 // 4XNN
	SkipIfEqual                         // 5XY0
	SetConst                            // 6XNN
	AddConst                            // 7XNN
	Assign                              // 8XY0
	Or                                  // 8XY1
	And                                 // 8XY2
	Xor                                 // 8XY3
	Add                                 // 8XY4
	Sub                                 // 8XY5
	ShiftRight                          // 8XY6
	RevSub                              // 8XY7
	ShiftLeft                           // 8XYE
	SkipIfNotEqual                      // 9XY0
	SetIndex                            // ANNN
	JumpOffset                          // BNNN
	Random                              // CXNN
	Draw                                // DXYN
	SkipIfPressed                       // EX9E
	SkipIfNotPressed                    // EXA1
	GetDelay                            // FX07
	WaitKey                             // FX0A
	SetDelay                            // FX15
	SetSound                            // FX18
	AddIndex                            // FX1E
	Font                                // FX29
	BCD                                 // FX33
	RegDump                             // FX55
	RegLoad                             // FX65

	// the number of operators. not a valid operator
	NumOperators
)

var mnemonics = [NumOperators]string{
	ClearScreen:         "CLS",
	Return:              "RET",
	Jump:                "JP",
	CallSub:             "CALL",
	SkipIfEqualConst:    "SE",
	SkipIfNotEqualConst: "SNE",
	SkipIfEqual:         "SE",
	SetConst:            "LD",
	AddConst:            "ADD",
	Assign:              "LD",
	Or:                  "OR",
	And:                 "AND",
	Xor:                 "XOR",
	Add:                 "ADD",
	Sub:                 "SUB",
	ShiftRight:          "SHR",
	RevSub:              "SUBN",
	ShiftLeft:           "SHL",
	SkipIfNotEqual:      "SNE",
	SetIndex:            "LD",
	JumpOffset:          "JP",
	Random:              "RND",
	Draw:                "DRW",
	SkipIfPressed:       "SKP",
	SkipIfNotPressed:    "SKNP",
	GetDelay:            "LD",
	WaitKey:             "LD",
	SetDelay:            "LD",
	SetSound:            "LD",
	AddIndex:            "ADD",
	Font:                "LD",
	BCD:                 "LD",
	RegDump:             "LD",
	RegLoad:             "LD",
}

var names = [NumOperators]string{
	ClearScreen:         "ClearScreen",
	Return:              "Return",
	Jump:                "Jump",
	CallSub:             "CallSub",
	SkipIfEqualConst:    "SkipIfEqualConst",
	SkipIfNotEqualConst: "SkipIfNotEqualConst",
	SkipIfEqual:         "SkipIfEqual",
	SetConst:            "SetConst",
	AddConst:            "AddConst",
	Assign:              "Assign",
	Or:                  "Or",
	And:                 "And",
	Xor:                 "Xor",
	Add:                 "Add",
	Sub:                 "Sub",
	ShiftRight:          "ShiftRight",
	RevSub:              "RevSub",
	ShiftLeft:           "ShiftLeft",
	SkipIfNotEqual:      "SkipIfNotEqual",
	SetIndex:            "SetIndex",
	JumpOffset:          "JumpOffset",
	Random:              "Random",
	Draw:                "Draw",
	SkipIfPressed:       "SkipIfPressed",
	SkipIfNotPressed:    "SkipIfNotPressed",
	GetDelay:            "GetDelay",
	WaitKey:             "WaitKey",
	SetDelay:            "SetDelay",
	SetSound:            "SetSound",
	AddIndex:            "AddIndex",
	Font:                "Font",
	BCD:                 "BCD",
	RegDump:             "RegDump",
	RegLoad:             "RegLoad",
}

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "unknown operator"
	}
	return names[op]
}

// Mnemonic returns the conventional assembly mnemonic for the operator. More
// than one operator can share a mnemonic.
func (op Operator) Mnemonic() string {
	if op < 0 || op >= NumOperators {
		return "???"
	}
	return mnemonics[op]
}
