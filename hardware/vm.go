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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/prefs"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the flag register.
const VF = 0xf

// Sentinal error patterns.
const (
	StackUnderflow = "vm: stack underflow"
	StackOverflow  = "vm: stack overflow (depth %d)"
	VMError        = "vm: %v"
)

// VM is the interpreter. It owns all machine state.
type VM struct {
	Prefs *preferences.Preferences

	Mem *memory.Memory

	// general purpose registers. V[VF] doubles as the flag register
	V [NumRegisters]uint8

	// index register
	I uint16

	// program counter
	PC uint16

	// return addresses. the top of the stack is the last entry
	Stack []uint16

	FB    framebuffer.Framebuffer
	Timer timer.Timer

	// keypad state for the current frame
	Keys keypad.Keys

	// pending wait-for-key instruction
	Wait keypad.Wait

	display Display
	audio   Audio
	input   Input

	// the tone is currently sounding
	sounding bool

	// the most recently loaded program. used by Reset()
	program []uint8

	// number of frames since the last reset
	frameNum int

	// frame pacing for Run(). nil if pacing is disabled
	limiter *limiter.FpsLimiter

	// logging can be suppressed with SetLogging()
	quiet bool
}

// NewVM is the preferred method of initialisation for the VM type. The VM
// starts with no collaborators and no program.
func NewVM(p *preferences.Preferences) (*VM, error) {
	if p == nil {
		var err error
		p, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(VMError, err)
		}
	}

	vm := &VM{
		Prefs: p,
		Mem:   memory.NewMemory(),
	}

	vm.limiter = limiter.NewFPSLimiter(p.TickRate.Get().(int))
	p.TickRate.SetHookPost(func(v prefs.Value) error {
		if vm.limiter != nil {
			vm.limiter.SetLimit(v.(int))
		}
		return nil
	})

	vm.Reset()

	return vm, nil
}

// Plumb the collaborators into the VM. Any of the arguments can be nil.
func (vm *VM) Plumb(display Display, audio Audio, input Input) {
	vm.display = display
	vm.audio = audio
	vm.input = input
}

// AllowLogging implements the logger.Permission interface.
func (vm *VM) AllowLogging() bool {
	return !vm.quiet
}

// SetLogging turns logging by the VM on or off.
func (vm *VM) SetLogging(allow bool) {
	vm.quiet = !allow
}

// SetFPSCap turns frame pacing in the Run() function on or off. With pacing
// turned off the VM runs as fast as possible.
func (vm *VM) SetFPSCap(limit bool) {
	if limit {
		vm.limiter = limiter.NewFPSLimiter(vm.Prefs.TickRate.Get().(int))
	} else {
		vm.limiter = nil
	}
}

// Reset the VM to its power-on state. The most recently loaded program is
// reloaded.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	_ = vm.Mem.LoadProgram(vm.program)

	vm.V = [NumRegisters]uint8{}
	vm.I = 0
	vm.PC = memory.ProgramOrigin
	vm.Stack = make([]uint16, 0, vm.Prefs.StackDepth.Get().(int))
	vm.FB.Clear()
	vm.Timer.Reset()
	vm.Keys = keypad.Keys{}
	vm.Wait.Cancel()
	vm.frameNum = 0

	if vm.sounding && vm.audio != nil {
		_ = vm.audio.Stop()
	}
	vm.sounding = false
}

// LoadProgram resets the VM and loads the program image at the program origin.
func (vm *VM) LoadProgram(data []uint8) error {
	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(VMError, curated.Errorf(memory.ProgramTooLarge, len(data)))
	}

	vm.program = make([]uint8, len(data))
	copy(vm.program, data)
	vm.Reset()

	logger.Logf(vm, "vm", "program loaded (%d bytes)", len(data))

	return nil
}

// FrameNum returns the number of frames since the last reset.
func (vm *VM) FrameNum() int {
	return vm.frameNum
}

// Sounding returns true if the tone is currently sounding.
func (vm *VM) Sounding() bool {
	return vm.sounding
}

func (vm *VM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x SP=%d %s\n", vm.PC, vm.I, len(vm.Stack), vm.Timer.String()))
	for i, v := range vm.V {
		s.WriteString(fmt.Sprintf("V%X=%02x", i, v))
		if i%8 == 7 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return s.String()
}
