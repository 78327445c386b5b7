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

// Package registers implements the registers of the SM83. The eight bit
// registers are instances of the Register type; B and C (say) are combined
// into the sixteen bit BC with the Pair type, which refers to its two
// halves rather than copying them. The stack pointer and program counter
// are true sixteen bit registers and have their own types.
package registers

import "fmt"

// Register is an 8 bit register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name the register was created with.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}
