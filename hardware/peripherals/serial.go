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

package peripherals

import (
	"strings"

	"github.com/wrenhold/gopherboy/hardware/bus"
	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/logger"
)

// Serial implements the bus.PortDevice interface for the SB and SC
// registers. There is nothing on the other end of the link cable so a
// transfer started with the internal clock shifts in all ones and
// completes immediately.
//
// Test programs traditionally report their results over the link cable.
// Anything that looks like text is forwarded to the log, a line at a time.
type Serial struct {
	irq bus.InterruptBus

	sb uint8
	sc uint8

	line strings.Builder
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(irq bus.InterruptBus) *Serial {
	ser := &Serial{irq: irq}
	ser.Reset()
	return ser
}

// Reset the serial port to its power-on state.
func (ser *Serial) Reset() {
	ser.sb = 0x00
	ser.sc = 0x00
	ser.line.Reset()
}

// ReadPort implements the bus.PortDevice interface.
func (ser *Serial) ReadPort(addr uint16) uint8 {
	switch addr {
	case addresses.SB:
		return ser.sb
	case addresses.SC:
		return ser.sc | 0x7e
	}
	return 0xff
}

// WritePort implements the bus.PortDevice interface.
func (ser *Serial) WritePort(addr uint16, data uint8) {
	switch addr {
	case addresses.SB:
		ser.sb = data
	case addresses.SC:
		ser.sc = data & 0x81

		// transfer requested with the internal clock. nothing is
		// connected so the transfer completes at once
		if data&0x81 == 0x81 {
			ser.record(ser.sb)
			ser.sb = 0xff
			ser.sc &= 0x01
			ser.irq.RequestInterrupt(interrupts.Serial)
		}
	}
}

// record accumulates printable transfer bytes and logs complete lines.
func (ser *Serial) record(b uint8) {
	if b == '\n' {
		if ser.line.Len() > 0 {
			logger.Log("serial", ser.line.String())
			ser.line.Reset()
		}
		return
	}
	if b >= 0x20 && b < 0x7f {
		ser.line.WriteByte(b)
	}
}
