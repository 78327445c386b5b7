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

// Package instructions defines every instruction in the SM83 instruction
// set. The definitions are used by the cpu package for cycle accounting and
// by the disassembly package for presentation. This is the opcode dispatch
// table of the project: the index into the definitions array is the opcode
// byte itself.
package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has on the
// flow of the program.
type EffectCategory int

// List of effect categories.
const (
	Normal EffectCategory = iota

	// Flow consists of the JP and JR instructions.
	Flow

	// CALL and RST.
	Subroutine

	// RET and RETI.
	Return
)

// Definition defines a single instruction in the instruction set.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// the operand in the notation used by the disassembly. n8, n16 and e8
	// stand for the byte values that follow the opcode.
	Operand string

	// total length of the instruction, including the opcode byte. for
	// prefixed instructions this includes the prefix byte.
	Bytes int

	// machine cycles consumed by the instruction. CyclesTaken is non-zero
	// only for conditional instructions and is the count when the condition
	// passes.
	Cycles      int
	CyclesTaken int

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (def Definition) String() string {
	if def.Mnemonic == "" {
		return fmt.Sprintf("%#02x unused opcode", def.OpCode)
	}
	if def.Operand == "" {
		return fmt.Sprintf("%#02x %s +%dbytes (%d cycles)", def.OpCode, def.Mnemonic, def.Bytes, def.Cycles)
	}
	return fmt.Sprintf("%#02x %s %s +%dbytes (%d cycles)", def.OpCode, def.Mnemonic, def.Operand, def.Bytes, def.Cycles)
}

// IsConditional returns true if the cycle count of the instruction depends
// on a condition flag.
func (def Definition) IsConditional() bool {
	return def.CyclesTaken != 0
}

// GetDefinitions returns the unprefixed page of the instruction set.
func GetDefinitions() *[256]Definition {
	return &definitions
}

// GetPrefixedDefinitions returns the page of the instruction set selected
// by the 0xcb prefix opcode.
func GetPrefixedDefinitions() *[256]Definition {
	return &prefixedDefinitions
}
