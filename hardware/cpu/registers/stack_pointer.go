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

// StackPointer is the 16 bit stack pointer of the SM83. Unlike the 8 bit
// stack pointer of many contemporary CPUs it can point anywhere in the
// address space, although games invariably keep it in HRAM or WRAM.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint16) *StackPointer {
	return &StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%#04x", sp.value)
}

// Label returns the name of the register.
func (sp StackPointer) Label() string {
	return "SP"
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint16 {
	return sp.value
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Increment the stack pointer by one, with wrap-around.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer by one, with wrap-around.
func (sp *StackPointer) Decrement() {
	sp.value--
}
