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

// Package execution records the result of a single instruction execution.
// The cpu package fills in a Result instance as it works and the debugger
// and disassembly packages present it.
package execution

import (
	"fmt"
	"strings"

	"github.com/wrenhold/gopherboy/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// definition of the executed instruction. a nil definition means the
	// result is empty (the CPU has been reset and has not yet executed
	// anything)
	Defn *instructions.Definition

	// the operand bytes that followed the opcode, in the order they were
	// read. only the first Defn.Bytes-1 entries are meaningful. prefixed
	// instructions have no operand bytes.
	Operand [2]uint8

	// number of machine cycles the instruction took, including the penalty
	// for a taken conditional
	Cycles int

	// whether a conditional instruction took its branch
	BranchTaken bool
}

// Reset the result to the empty state.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.Operand = [2]uint8{}
	r.Cycles = 0
	r.BranchTaken = false
}

// String returns the instruction in disassembly notation, with operand
// placeholders replaced by the bytes that were actually read.
func (r Result) String() string {
	if r.Defn == nil {
		return "(no execution)"
	}

	operand := r.Defn.Operand
	switch {
	case strings.Contains(operand, "n16"):
		v := uint16(r.Operand[1])<<8 | uint16(r.Operand[0])
		operand = strings.Replace(operand, "n16", fmt.Sprintf("$%04x", v), 1)
	case strings.Contains(operand, "n8"):
		operand = strings.Replace(operand, "n8", fmt.Sprintf("$%02x", r.Operand[0]), 1)
	case strings.Contains(operand, "e8"):
		operand = strings.Replace(operand, "e8", fmt.Sprintf("%+d", int8(r.Operand[0])), 1)
	}

	if operand == "" {
		return fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)
	}
	return fmt.Sprintf("%04x %s %s", r.Address, r.Defn.Mnemonic, operand)
}
