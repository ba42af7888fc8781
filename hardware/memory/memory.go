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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Size of the address space in bytes.
const Size = 0x1000

// ProgramOrigin is the address at which programs are loaded and at which
// execution begins.
const ProgramOrigin = 0x200

// MaxProgramSize is the largest program that can be loaded.
const MaxProgramSize = Size - ProgramOrigin

// Sentinal error patterns.
const (
	MemoryFault     = "memory: fault at %04x"
	ProgramTooLarge = "memory: program too large (%d bytes)"
)

// Memory is the flat address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears memory and installs the font table.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], Font[:])
}

// LoadProgram copies the program data to memory at ProgramOrigin. Memory below
// ProgramOrigin is never written to by this function.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data))
	}
	copy(mem.data[ProgramOrigin:], data)
	return nil
}

// Check that n bytes beginning at address are all in the address space. A
// successful check means that Read() and Write() calls in that range will not
// fail.
func (mem *Memory) Check(address uint16, n int) error {
	if int(address)+n > Size {
		if int(address) >= Size {
			return curated.Errorf(MemoryFault, address)
		}
		return curated.Errorf(MemoryFault, Size)
	}
	return nil
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(MemoryFault, address)
	}
	return mem.data[address], nil
}

// Write data to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(MemoryFault, address)
	}
	mem.data[address] = data
	return nil
}

// ReadWord reads the big-endian 16-bit word beginning at address.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if err := mem.Check(address, 2); err != nil {
		return 0, err
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Peek returns a copy of n bytes beginning at address.
func (mem *Memory) Peek(address uint16, n int) ([]uint8, error) {
	if err := mem.Check(address, n); err != nil {
		return nil, err
	}
	c := make([]uint8, n)
	copy(c, mem.data[address:])
	return c, nil
}
