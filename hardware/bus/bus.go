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

// Package bus defines the memory bus interfaces that connect the CPU and
// the other hardware components. The concrete implementation is in the
// memory package; the interfaces live here so that the cpu package and the
// component packages do not need to know about the memory package at all.
package bus

import "github.com/wrenhold/gopherboy/hardware/interrupts"

// CPUBus is the bus as seen by the CPU: a flat 16 bit address space.
// Address decoding happens on the other side of the interface.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus is the bus as seen by the debugger. Peek and Poke access memory
// without any of the side effects a real bus access has (OAM DMA locking,
// write-triggered register behaviour, etc).
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

// InterruptBus is implemented by the memory implementation and allows
// components to raise an interrupt without knowing anything about the
// interrupt flag register.
type InterruptBus interface {
	RequestInterrupt(irq interrupts.Interrupt)
}

// PortDevice implementations claim IO registers in the 0xff00 to 0xff7f
// range. The memory implementation forwards bus accesses of a claimed
// address to the claiming device.
//
// ReadPort should return the register value with any unreadable bits set
// to 1, which is what the hardware drives on the data bus for those bits.
type PortDevice interface {
	ReadPort(address uint16) uint8
	WritePort(address uint16, data uint8)
}
