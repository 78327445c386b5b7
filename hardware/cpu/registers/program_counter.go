// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "fmt"

// ProgramCounter is the 16 bit program counter of the SM83.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) *ProgramCounter {
	return &ProgramCounter{value: val}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("PC=%#04x", pc.value)
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "PC"
}

// Value returns the current value of the program counter.
func (pc ProgramCounter) Value() uint16 {
	return pc.value
}

// Load value into the program counter.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add value to the program counter. The value is treated as signed,
// allowing backward jumps; wrap-around is deliberate.
func (pc *ProgramCounter) Add(val int8) {
	pc.value += uint16(int16(val))
}

// Increment the program counter by one, with wrap-around.
func (pc *ProgramCounter) Increment() {
	pc.value++
}
