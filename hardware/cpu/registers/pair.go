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

// Pair presents two 8 bit registers as a single 16 bit register. The Pair
// refers to the two halves, it does not copy them: loading a value into
// the pair is immediately visible through the individual registers and
// vice versa.
type Pair struct {
	hi    *Register
	lo    *Register
	label string
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(hi, lo *Register, label string) Pair {
	return Pair{
		hi:    hi,
		lo:    lo,
		label: label,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.Value())
}

// Label returns the name the pair was created with.
func (p Pair) Label() string {
	return p.label
}

// Value returns the current value of the pair.
func (p Pair) Value() uint16 {
	return uint16(p.hi.Value())<<8 | uint16(p.lo.Value())
}

// Load value into the pair, updating both halves.
func (p Pair) Load(val uint16) {
	p.hi.Load(uint8(val >> 8))
	p.lo.Load(uint8(val))
}

// Increment the pair by one, with wrap-around. The 16 bit increment of the
// SM83 does not affect any flags.
func (p Pair) Increment() {
	p.Load(p.Value() + 1)
}

// Decrement the pair by one, with wrap-around.
func (p Pair) Decrement() {
	p.Load(p.Value() - 1)
}
