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

// Package timer implements the divider and the programmable timer. Both
// are views onto a single 16 bit counter that ticks at the full clock
// rate: the divider register is the upper byte of the counter and the
// programmable timer increments on falling edges of one of the counter
// bits.
package timer

import (
	"fmt"

	"github.com/wrenhold/gopherboy/hardware/bus"
	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
)

// the counter bit observed for each of the four TAC frequency settings.
var tacBit = [4]uint16{
	0x0200, // 4096Hz
	0x0008, // 262144Hz
	0x0020, // 65536Hz
	0x0080, // 16384Hz
}

// Timer implements the bus.PortDevice interface for the DIV, TIMA, TMA and
// TAC registers.
type Timer struct {
	irq bus.InterruptBus

	divider uint16

	tima uint8
	tma  uint8
	tac  uint8

	// previous state of the observed counter bit, gated by the enable
	// bit. TIMA increments when this goes from high to low, which is how
	// a write to DIV or TAC can cause a spurious increment on the real
	// hardware too
	signal bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(irq bus.InterruptBus) *Timer {
	tmr := &Timer{irq: irq}
	tmr.Reset()
	return tmr
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x TAC=%02x", uint8(tmr.divider>>8), tmr.tima, tmr.tma, tmr.tac)
}

// Reset the timer to its power-on state.
func (tmr *Timer) Reset() {
	// the boot sequence leaves the divider mid-count. the exact value
	// matters to programs that synchronise against DIV from the entry
	// point
	tmr.divider = 0xabcc
	tmr.tima = 0x00
	tmr.tma = 0x00
	tmr.tac = 0x00
	tmr.signal = false
}

// Step the timer the given number of clock ticks.
func (tmr *Timer) Step(ticks int) {
	for i := 0; i < ticks; i++ {
		tmr.divider++
		tmr.update()
	}
}

// update compares the observed counter bit against its previous state and
// increments TIMA on a falling edge.
func (tmr *Timer) update() {
	signal := tmr.tac&0x04 == 0x04 && tmr.divider&tacBit[tmr.tac&0x03] != 0x0000

	if tmr.signal && !signal {
		tmr.tima++
		if tmr.tima == 0x00 {
			tmr.tima = tmr.tma
			tmr.irq.RequestInterrupt(interrupts.Timer)
		}
	}

	tmr.signal = signal
}

// ReadPort implements the bus.PortDevice interface.
func (tmr *Timer) ReadPort(addr uint16) uint8 {
	switch addr {
	case addresses.DIV:
		return uint8(tmr.divider >> 8)
	case addresses.TIMA:
		return tmr.tima
	case addresses.TMA:
		return tmr.tma
	case addresses.TAC:
		return tmr.tac | 0xf8
	}
	return 0xff
}

// WritePort implements the bus.PortDevice interface.
func (tmr *Timer) WritePort(addr uint16, data uint8) {
	switch addr {
	case addresses.DIV:
		// writing any value resets the whole counter, not just the
		// visible byte
		tmr.divider = 0x0000
		tmr.update()
	case addresses.TIMA:
		tmr.tima = data
	case addresses.TMA:
		tmr.tma = data
	case addresses.TAC:
		tmr.tac = data & 0x07
		tmr.update()
	}
}
