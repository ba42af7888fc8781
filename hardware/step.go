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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Step fetches, decodes and executes a single instruction. If an error is
// returned then the VM state is as it was before the call.
func (vm *VM) Step() error {
	word, err := vm.Mem.ReadWord(vm.PC)
	if err != nil {
		return curated.Errorf(VMError, err)
	}

	ins, err := instructions.Decode(word)
	if err != nil {
		return curated.Errorf("vm: %03x: %v", vm.PC, err)
	}

	pc := vm.PC
	vm.PC += 2

	if err := vm.Execute(ins); err != nil {
		vm.PC = pc
		return curated.Errorf("vm: %03x: %v", pc, err)
	}

	return nil
}

// skipIf advances the program counter past the next instruction if the
// condition is true.
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

// Execute a decoded instruction. The program counter should already point to
// the following instruction.
//
// Any condition that would cause an error is checked before the VM state is
// changed.
func (vm *VM) Execute(ins instructions.Instruction) error {
	x := ins.X
	y := ins.Y

	switch ins.Operator {
	case instructions.ClearScreen:
		vm.FB.Clear()

	case instructions.Return:
		if len(vm.Stack) == 0 {
			return curated.Errorf(StackUnderflow)
		}
		pc := vm.Stack[len(vm.Stack)-1]
		vm.Stack = vm.Stack[:len(vm.Stack)-1]
		vm.PC = pc

	case instructions.Jump:
		vm.PC = ins.NNN

	case instructions.CallSub:
		depth := vm.Prefs.StackDepth.Get().(int)
		if len(vm.Stack) >= depth {
			return curated.Errorf(StackOverflow, depth)
		}
		vm.Stack = append(vm.Stack, vm.PC)
		vm.PC = ins.NNN

	case instructions.SkipIfEqualConst:
		vm.skipIf(vm.V[x] == ins.NN)

	case instructions.SkipIfNotEqualConst:
		vm.skipIf(vm.V[x] != ins.NN)

	case instructions.SkipIfEqual:
		vm.skipIf(vm.V[x] == vm.V[y])

	case instructions.SkipIfNotEqual:
		vm.skipIf(vm.V[x] != vm.V[y])

	case instructions.SetConst:
		vm.V[x] = ins.NN

	case instructions.AddConst:
		vm.V[x] += ins.NN

	case instructions.Assign:
		vm.V[x] = vm.V[y]

	case instructions.Or:
		vm.V[x] |= vm.V[y]

	case instructions.And:
		vm.V[x] &= vm.V[y]

	case instructions.Xor:
		vm.V[x] ^= vm.V[y]

	// the flag register is written after the result register for the
	// following arithmetic instructions. if the result register is VF
	// then the flag value is what remains

	case instructions.Add:
		sum := uint16(vm.V[x]) + uint16(vm.V[y])
		vm.V[x] = uint8(sum)
		vm.V[VF] = uint8(sum >> 8)

	case instructions.Sub:
		flag := flagBit(vm.V[x] >= vm.V[y])
		vm.V[x] -= vm.V[y]
		vm.V[VF] = flag

	case instructions.RevSub:
		flag := flagBit(vm.V[y] >= vm.V[x])
		vm.V[x] = vm.V[y] - vm.V[x]
		vm.V[VF] = flag

	case instructions.ShiftRight:
		flag := vm.V[x] & 0x01
		vm.V[x] >>= 1
		vm.V[VF] = flag

	case instructions.ShiftLeft:
		flag := vm.V[x] >> 7
		vm.V[x] <<= 1
		vm.V[VF] = flag

	case instructions.SetIndex:
		vm.I = ins.NNN

	case instructions.JumpOffset:
		vm.PC = ins.NNN + uint16(vm.V[0])

	case instructions.Random:
		vm.V[x] = uint8(vm.Prefs.RandSrc.UintN(256)) & ins.NN

	case instructions.Draw:
		rows, err := vm.Mem.Peek(vm.I, int(ins.N))
		if err != nil {
			return err
		}
		vx, vy := vm.V[x], vm.V[y]
		vm.V[VF] = 0
		collision := vm.FB.Draw(vx, vy, rows, vm.Prefs.WrapSprites.Get().(bool))
		vm.V[VF] = flagBit(collision)

	case instructions.SkipIfPressed:
		vm.skipIf(vm.Keys.IsDown(vm.V[x]))

	case instructions.SkipIfNotPressed:
		vm.skipIf(!vm.Keys.IsDown(vm.V[x]))

	case instructions.GetDelay:
		vm.V[x] = vm.Timer.Delay

	case instructions.WaitKey:
		vm.Wait.Begin(x, vm.Keys)
		logger.Logf(vm, "vm", "waiting for key (V%X)", x)

	case instructions.SetDelay:
		vm.Timer.Delay = vm.V[x]

	case instructions.SetSound:
		vm.Timer.Sound = vm.V[x]

	case instructions.AddIndex:
		vm.I += uint16(vm.V[x])

	case instructions.Font:
		vm.I = memory.FontAddress(vm.V[x])

	case instructions.BCD:
		if err := vm.Mem.Check(vm.I, 3); err != nil {
			return err
		}
		v := vm.V[x]
		_ = vm.Mem.Write(vm.I, v/100)
		_ = vm.Mem.Write(vm.I+1, (v/10)%10)
		_ = vm.Mem.Write(vm.I+2, v%10)

	case instructions.RegDump:
		n := int(x) + 1
		if err := vm.Mem.Check(vm.I, n); err != nil {
			return err
		}
		for i := range n {
			_ = vm.Mem.Write(vm.I+uint16(i), vm.V[i])
		}
		vm.I += uint16(n)

	case instructions.RegLoad:
		n := int(x) + 1
		data, err := vm.Mem.Peek(vm.I, n)
		if err != nil {
			return err
		}
		copy(vm.V[:n], data)
		vm.I += uint16(n)

	default:
		return curated.Errorf("vm: unhandled operator (%v)", ins.Operator)
	}

	return nil
}

func flagBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
