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

// Package peripherals implements the hardware the program talks to through
// the IO registers that is neither video, sound nor timing: the button
// matrix and the serial port.
package peripherals

import (
	"github.com/wrenhold/gopherboy/hardware/bus"
	"github.com/wrenhold/gopherboy/hardware/interrupts"
)

// Button identifies one of the eight inputs of the button matrix.
type Button int

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonSelect:
		return "SELECT"
	case ButtonStart:
		return "START"
	case ButtonRight:
		return "RIGHT"
	case ButtonLeft:
		return "LEFT"
	case ButtonUp:
		return "UP"
	case ButtonDown:
		return "DOWN"
	}
	return "unknown"
}

// Joypad implements the bus.PortDevice interface for the JOYP register.
// The register exposes the eight buttons as two four bit groups, selected
// by writing to the two select bits. Everything in the register is active
// low.
type Joypad struct {
	irq bus.InterruptBus

	held [NumButtons]bool

	// the two select bits as last written, already shifted into place
	selection uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad(irq bus.InterruptBus) *Joypad {
	pad := &Joypad{irq: irq}
	pad.Reset()
	return pad
}

// Reset the joypad to its power-on state. Held buttons are released.
func (pad *Joypad) Reset() {
	for i := range pad.held {
		pad.held[i] = false
	}
	pad.selection = 0x30
}

// SetButton presses or releases a button. A press raises the joypad
// interrupt, which is mainly of use to programs waiting in STOP.
func (pad *Joypad) SetButton(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	if pressed && !pad.held[b] {
		pad.irq.RequestInterrupt(interrupts.Joypad)
	}
	pad.held[b] = pressed
}

// ReadPort implements the bus.PortDevice interface.
func (pad *Joypad) ReadPort(_ uint16) uint8 {
	v := 0xc0 | pad.selection | 0x0f

	// a group is selected when its select bit is low. both groups can be
	// selected at once, in which case the button lines combine
	if pad.selection&0x20 == 0x00 {
		for b := ButtonA; b <= ButtonStart; b++ {
			if pad.held[b] {
				v &= ^(uint8(1) << uint(b-ButtonA))
			}
		}
	}
	if pad.selection&0x10 == 0x00 {
		for b := ButtonRight; b <= ButtonDown; b++ {
			if pad.held[b] {
				v &= ^(uint8(1) << uint(b-ButtonRight))
			}
		}
	}

	return v
}

// WritePort implements the bus.PortDevice interface. Only the select bits
// can be written.
func (pad *Joypad) WritePort(_ uint16, data uint8) {
	pad.selection = data & 0x30
}
