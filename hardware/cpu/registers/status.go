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

import (
	"strings"
)

// Status is the flag register of the SM83, the F half of the AF pair. Only
// the upper nibble carries information; the lower nibble always reads as
// zero, even after a POP AF has tried to write to it.
type Status struct {
	Zero      bool
	Negative  bool
	HalfCarry bool
	Carry     bool
}

// NewStatus is the preferred method of initialisation for the Status type.
func NewStatus() *Status {
	return &Status{}
}

func (sr Status) String() string {
	s := strings.Builder{}
	s.WriteString("F=")
	if sr.Zero {
		s.WriteString("Z")
	} else {
		s.WriteString("z")
	}
	if sr.Negative {
		s.WriteString("N")
	} else {
		s.WriteString("n")
	}
	if sr.HalfCarry {
		s.WriteString("H")
	} else {
		s.WriteString("h")
	}
	if sr.Carry {
		s.WriteString("C")
	} else {
		s.WriteString("c")
	}
	return s.String()
}

// Label returns the name of the register.
func (sr Status) Label() string {
	return "F"
}

// Value returns the current value of the flags as a register byte.
func (sr Status) Value() uint8 {
	var v uint8
	if sr.Zero {
		v |= 0x80
	}
	if sr.Negative {
		v |= 0x40
	}
	if sr.HalfCarry {
		v |= 0x20
	}
	if sr.Carry {
		v |= 0x10
	}
	return v
}

// Load flags from a register byte. The lower nibble of the value is
// discarded.
func (sr *Status) Load(val uint8) {
	sr.Zero = val&0x80 == 0x80
	sr.Negative = val&0x40 == 0x40
	sr.HalfCarry = val&0x20 == 0x20
	sr.Carry = val&0x10 == 0x10
}

// Clear all flags.
func (sr *Status) Clear() {
	sr.Zero = false
	sr.Negative = false
	sr.HalfCarry = false
	sr.Carry = false
}
