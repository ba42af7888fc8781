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

package hardware_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

// program converts a list of instruction words into a program image.
func program(words ...uint16) []uint8 {
	p := make([]uint8, 0, len(words)*2)
	for _, w := range words {
		p = append(p, uint8(w>>8), uint8(w))
	}
	return p
}

func newVM(t *testing.T, words ...uint16) *hardware.VM {
	t.Helper()

	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	vm, err := hardware.NewVM(nil)
	test.DemandSuccess(t, err)
	vm.SetLogging(false)
	vm.SetFPSCap(false)
	test.DemandSuccess(t, vm.LoadProgram(program(words...)))

	return vm
}

func step(t *testing.T, vm *hardware.VM, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, vm.Step())
	}
}

type mockInput struct {
	frames [][]uint8
	frame  int
	stop   bool
}

func (inp *mockInput) Poll() (keypad.Keys, bool, error) {
	var k keypad.Keys
	if inp.frame < len(inp.frames) {
		for _, d := range inp.frames[inp.frame] {
			k.Set(d, true)
		}
	}
	inp.frame++
	return k, inp.stop, nil
}

type mockAudio struct {
	events []string
	frames int
}

func (aud *mockAudio) Play() error {
	aud.events = append(aud.events, "play")
	return nil
}

func (aud *mockAudio) Stop() error {
	aud.events = append(aud.events, "stop")
	return nil
}

func (aud *mockAudio) EndFrame() error {
	aud.frames++
	return nil
}

type mockDisplay struct {
	renders int
	last    framebuffer.Pixels
}

func (dsp *mockDisplay) Render(px framebuffer.Pixels) error {
	dsp.renders++
	dsp.last = px
	return nil
}

func TestReset(t *testing.T) {
	vm := newVM(t, 0x6005)
	test.ExpectEquality(t, vm.PC, memory.ProgramOrigin)
	step(t, vm, 1)
	test.ExpectEquality(t, vm.V[0], 5)
	test.ExpectEquality(t, vm.PC, memory.ProgramOrigin+2)

	vm.Reset()
	test.ExpectEquality(t, vm.V[0], 0)
	test.ExpectEquality(t, vm.PC, memory.ProgramOrigin)

	// program survives the reset
	step(t, vm, 1)
	test.ExpectEquality(t, vm.V[0], 5)
}

func TestProgramTooLarge(t *testing.T) {
	vm := newVM(t)
	err := vm.LoadProgram(make([]uint8, memory.MaxProgramSize+1))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.ProgramTooLarge))
	test.ExpectSuccess(t, vm.LoadProgram(make([]uint8, memory.MaxProgramSize)))
}

func TestAdd(t *testing.T) {
	vm := newVM(t, 0x60fa, 0x610a, 0x8014, 0x6201, 0x6301, 0x8234)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V[0], 4)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V[2], 2)
	test.ExpectEquality(t, vm.V[hardware.VF], 0)
}

func TestSub(t *testing.T) {
	vm := newVM(t, 0x6005, 0x6103, 0x8015, 0x6203, 0x6305, 0x8235)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V[0], 2)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V[2], 254)
	test.ExpectEquality(t, vm.V[hardware.VF], 0)
}

func TestRevSub(t *testing.T) {
	vm := newVM(t, 0x6003, 0x6105, 0x8017)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V[0], 2)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
}

func TestFlagAfterResult(t *testing.T) {
	// the flag value wins when VF is also the destination register
	vm := newVM(t, 0x6fff, 0x6101, 0x8f14)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
}

func TestShifts(t *testing.T) {
	vm := newVM(t, 0x6081, 0x8006, 0x6181, 0x810e)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.V[0], 0x40)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.V[1], 0x02)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
}

func TestLogic(t *testing.T) {
	vm := newVM(t, 0x600c, 0x610a, 0x8011, 0x620c, 0x8212, 0x630c, 0x8313, 0x8400)
	step(t, vm, 8)
	test.ExpectEquality(t, vm.V[0], 0x0e)
	test.ExpectEquality(t, vm.V[2], 0x08)
	test.ExpectEquality(t, vm.V[3], 0x06)
	test.ExpectEquality(t, vm.V[4], 0x0e)
}

func TestAddConstNoFlag(t *testing.T) {
	vm := newVM(t, 0x60ff, 0x7002)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.V[0], 1)
	test.ExpectEquality(t, vm.V[hardware.VF], 0)
}

func TestSkips(t *testing.T) {
	vm := newVM(t, 0x6005, 0x3005)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.PC, 0x206)

	vm = newVM(t, 0x6005, 0x4005)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.PC, 0x204)

	vm = newVM(t, 0x6005, 0x6105, 0x5010)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.PC, 0x208)

	vm = newVM(t, 0x6005, 0x6105, 0x9010)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.PC, 0x206)
}

func TestKeySkips(t *testing.T) {
	vm := newVM(t, 0x6007, 0xe09e, 0x0000, 0xe0a1)
	vm.Keys.Set(7, true)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.PC, 0x206)
	step(t, vm, 1)
	test.ExpectEquality(t, vm.PC, 0x208)
}

func TestBCD(t *testing.T) {
	vm := newVM(t, 0x60ff, 0xa300, 0xf033)
	step(t, vm, 3)
	d, err := vm.Mem.Peek(0x300, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0], 2)
	test.ExpectEquality(t, d[1], 5)
	test.ExpectEquality(t, d[2], 5)
	test.ExpectEquality(t, vm.I, 0x300)
}

func TestDumpAndLoad(t *testing.T) {
	vm := newVM(t,
		0x6001, 0x6102, 0x6203, 0x6304, 0x6405, 0x6506,
		0xa300, 0xf555,
		0x6000, 0x6100, 0x6200, 0x6300, 0x6400, 0x6500,
		0xa300, 0xf565,
	)
	step(t, vm, 8)
	test.ExpectEquality(t, vm.I, 0x306)
	step(t, vm, 8)
	test.ExpectEquality(t, vm.I, 0x306)
	for i := range 6 {
		test.ExpectEquality(t, vm.V[i], uint8(i+1))
	}
}

func TestTimers(t *testing.T) {
	vm := newVM(t, 0x6010, 0xf015, 0xf107)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.Timer.Delay, 0x10)
	vm.Timer.Tick()
	step(t, vm, 1)
	test.ExpectEquality(t, vm.V[1], 0x0f)
}

func TestIndex(t *testing.T) {
	vm := newVM(t, 0xa100, 0x6010, 0xf01e, 0x600b, 0xf029)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.I, 0x110)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.I, memory.FontAddress(0xb))
}

func TestJumps(t *testing.T) {
	vm := newVM(t, 0x1300)
	step(t, vm, 1)
	test.ExpectEquality(t, vm.PC, 0x300)

	vm = newVM(t, 0x6004, 0xb300)
	step(t, vm, 2)
	test.ExpectEquality(t, vm.PC, 0x304)
}

func TestCallReturn(t *testing.T) {
	vm := newVM(t, 0x2204, 0x0000, 0x00ee)
	step(t, vm, 1)
	test.ExpectEquality(t, vm.PC, 0x204)
	test.ExpectEquality(t, len(vm.Stack), 1)
	step(t, vm, 1)
	test.ExpectEquality(t, vm.PC, 0x202)
	test.ExpectEquality(t, len(vm.Stack), 0)
}

func TestStackUnderflow(t *testing.T) {
	vm := newVM(t, 0x00ee)
	err := vm.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, hardware.StackUnderflow))
	test.ExpectEquality(t, vm.PC, memory.ProgramOrigin)
}

func TestStackOverflow(t *testing.T) {
	// subroutine calls itself forever
	vm := newVM(t, 0x2200)
	depth := vm.Prefs.StackDepth.Get().(int)
	step(t, vm, depth)
	test.ExpectEquality(t, len(vm.Stack), depth)

	err := vm.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, hardware.StackOverflow))
	test.ExpectEquality(t, len(vm.Stack), depth)
	test.ExpectEquality(t, vm.PC, memory.ProgramOrigin)

	// stack depth is a preference
	test.DemandSuccess(t, vm.Prefs.StackDepth.Set(2))
	vm.Reset()
	step(t, vm, 2)
	test.ExpectFailure(t, vm.Step())
}

func TestMemoryFault(t *testing.T) {
	// draw beyond the end of memory
	vm := newVM(t, 0xafff, 0xd015)
	step(t, vm, 1)
	err := vm.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.MemoryFault))
	test.ExpectEquality(t, vm.PC, 0x202)
	test.ExpectEquality(t, vm.V[hardware.VF], 0)

	// register dump beyond the end of memory
	vm = newVM(t, 0x6f01, 0xaffe, 0xf555)
	step(t, vm, 2)
	err = vm.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, vm.PC, 0x204)
	test.ExpectEquality(t, vm.I, 0xffe)
	d, _ := vm.Mem.Peek(0xffe, 2)
	test.ExpectEquality(t, d[0], 0)
	test.ExpectEquality(t, d[1], 0)

	// BCD beyond the end of memory
	vm = newVM(t, 0xafff, 0xf033)
	step(t, vm, 1)
	test.ExpectFailure(t, vm.Step())
	test.ExpectEquality(t, vm.PC, 0x202)
}

func TestInvalidOpcode(t *testing.T) {
	// memory after the program is zero and zero is not a valid instruction
	vm := newVM(t, 0x6001)
	step(t, vm, 1)
	err := vm.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, instructions.InvalidOpcode))
	test.ExpectEquality(t, vm.PC, 0x202)
}

func TestDraw(t *testing.T) {
	// draw the glyph for zero twice at (1,2)
	vm := newVM(t, 0x6001, 0x6102, 0xa000, 0xd015, 0xd015)
	step(t, vm, 4)
	test.ExpectEquality(t, vm.V[hardware.VF], 0)
	test.ExpectSuccess(t, vm.FB.Pixels()[2][1])

	step(t, vm, 1)
	test.ExpectEquality(t, vm.V[hardware.VF], 1)
	test.ExpectEquality(t, len(vm.FB.Pixels().Lit()), 0)
}

func TestDrawCoordsInFlag(t *testing.T) {
	// coordinates are read before the flag is reset
	vm := newVM(t, 0x6f03, 0xa000, 0xdff1)
	step(t, vm, 3)
	test.ExpectSuccess(t, vm.FB.Pixels()[3][3])
}

func TestRandom(t *testing.T) {
	vm := newVM(t, 0xc0ff, 0xc10f, 0xc200)
	vm.Prefs.Reseed(1000)
	step(t, vm, 3)
	a := vm.V

	vm.Reset()
	vm.Prefs.Reseed(1000)
	step(t, vm, 3)
	test.ExpectEquality(t, vm.V, a)

	test.ExpectEquality(t, vm.V[1]&0xf0, 0)
	test.ExpectEquality(t, vm.V[2], 0)
}

func TestAllOperatorsHandled(t *testing.T) {
	vm := newVM(t)
	for op := range instructions.NumOperators {
		vm.Reset()
		vm.I = 0x300
		if op == instructions.Return {
			vm.Stack = append(vm.Stack, 0x200)
		}
		err := vm.Execute(instructions.Instruction{Operator: op})
		test.ExpectSuccess(t, err, op)
	}
}

func TestKeyWait(t *testing.T) {
	vm := newVM(t, 0xf30a, 0x6101, 0x1204)
	inp := &mockInput{
		frames: [][]uint8{
			{},
			{5},
			{5, 9},
			{9},
			{9},
		},
	}
	vm.Plumb(nil, nil, inp)

	// wait begins
	running, err := vm.Frame()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, running)
	test.ExpectSuccess(t, vm.Wait.Waiting())
	test.ExpectEquality(t, vm.PC, 0x202)

	// keys pressed and held do not resolve the wait
	for range 2 {
		_, err = vm.Frame()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, vm.Wait.Waiting())
	}

	// release resolves the wait but nothing is executed on the same frame
	_, err = vm.Frame()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, vm.Wait.Waiting())
	test.ExpectEquality(t, vm.V[3], 5)
	test.ExpectEquality(t, vm.V[1], 0)
	test.ExpectEquality(t, vm.PC, 0x202)

	// execution resumes
	_, err = vm.Frame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vm.V[1], 1)
}

func TestKeyWaitStopsFrame(t *testing.T) {
	// instructions after the wait are not executed on the same frame
	vm := newVM(t, 0xf00a, 0x6101)
	test.DemandSuccess(t, vm.Prefs.InstructionsPerFrame.Set(10))
	_, err := vm.Frame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vm.V[1], 0)
	test.ExpectEquality(t, vm.PC, 0x202)
}

func TestInputStop(t *testing.T) {
	vm := newVM(t, 0x6001)
	vm.Plumb(nil, nil, &mockInput{stop: true})
	running, err := vm.Frame()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, running)
	test.ExpectEquality(t, vm.V[0], 0)
	test.ExpectSuccess(t, vm.Run(nil))
}

func TestAudio(t *testing.T) {
	// sound timer of three frames then spin
	vm := newVM(t, 0x6003, 0xf018, 0x1204)
	aud := &mockAudio{}
	vm.Plumb(nil, aud, nil)

	test.DemandSuccess(t, vm.RunForFrameCount(2, nil))
	test.ExpectEquality(t, len(aud.events), 1)
	test.ExpectEquality(t, aud.events[0], "play")
	test.ExpectSuccess(t, vm.Sounding())

	test.DemandSuccess(t, vm.RunForFrameCount(2, nil))
	test.ExpectEquality(t, len(aud.events), 2)
	test.ExpectEquality(t, aud.events[1], "stop")
	test.ExpectFailure(t, vm.Sounding())
	test.ExpectEquality(t, aud.frames, 4)
}

func TestShortBeep(t *testing.T) {
	// a sound timer of one still produces a tone for one frame
	vm := newVM(t, 0x6001, 0xf018, 0x1204)
	aud := &mockAudio{}
	vm.Plumb(nil, aud, nil)
	test.DemandSuccess(t, vm.RunForFrameCount(3, nil))
	test.ExpectEquality(t, len(aud.events), 2)
	test.ExpectEquality(t, aud.events[0], "play")
	test.ExpectEquality(t, aud.events[1], "stop")
}

func TestRender(t *testing.T) {
	vm := newVM(t, 0xa000, 0xd005, 0x1204)
	dsp := &mockDisplay{}
	vm.Plumb(dsp, nil, nil)

	// the first frame renders because reset clears the framebuffer
	test.DemandSuccess(t, vm.RunForFrameCount(1, nil))
	test.ExpectEquality(t, dsp.renders, 1)

	test.DemandSuccess(t, vm.RunForFrameCount(1, nil))
	test.ExpectEquality(t, dsp.renders, 2)
	test.ExpectSuccess(t, dsp.last[0][0])

	// nothing changes while spinning
	test.DemandSuccess(t, vm.RunForFrameCount(5, nil))
	test.ExpectEquality(t, dsp.renders, 2)
	test.ExpectEquality(t, vm.FrameNum(), 7)
}

func TestRunContinueCheck(t *testing.T) {
	vm := newVM(t, 0x7001, 0x1200)
	n := 0
	err := vm.Run(func() (bool, error) {
		n++
		return n < 10, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vm.FrameNum(), 10)
	test.ExpectEquality(t, vm.V[0], 5)
}
