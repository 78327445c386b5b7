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

package peripherals_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/hardware/peripherals"
	"github.com/wrenhold/gopherboy/test"
)

type mockIRQ struct {
	raised interrupts.Interrupt
}

func (m *mockIRQ) RequestInterrupt(irq interrupts.Interrupt) {
	m.raised |= irq
}

func TestJoypadIdle(t *testing.T) {
	irq := &mockIRQ{}
	pad := peripherals.NewJoypad(irq)

	// nothing selected and nothing pressed. every line reads high
	pad.WritePort(addresses.JOYP, 0x30)
	test.Equate(t, pad.ReadPort(addresses.JOYP), 0xff)
}

func TestJoypadMatrix(t *testing.T) {
	irq := &mockIRQ{}
	pad := peripherals.NewJoypad(irq)

	pad.SetButton(peripherals.ButtonA, true)
	pad.SetButton(peripherals.ButtonDown, true)

	// button group selected. A is bit 0
	pad.WritePort(addresses.JOYP, 0x10)
	test.Equate(t, pad.ReadPort(addresses.JOYP), 0xde)

	// direction group selected. down is bit 3
	pad.WritePort(addresses.JOYP, 0x20)
	test.Equate(t, pad.ReadPort(addresses.JOYP), 0xe7)

	pad.SetButton(peripherals.ButtonA, false)
	pad.WritePort(addresses.JOYP, 0x10)
	test.Equate(t, pad.ReadPort(addresses.JOYP), 0xdf)
}

func TestJoypadInterrupt(t *testing.T) {
	irq := &mockIRQ{}
	pad := peripherals.NewJoypad(irq)

	pad.SetButton(peripherals.ButtonStart, true)
	test.ExpectSuccess(t, irq.raised&interrupts.Joypad == interrupts.Joypad)

	// holding the button does not raise again
	irq.raised = 0
	pad.SetButton(peripherals.ButtonStart, true)
	test.ExpectSuccess(t, irq.raised == 0)
}

func TestSerialTransfer(t *testing.T) {
	irq := &mockIRQ{}
	ser := peripherals.NewSerial(irq)

	ser.WritePort(addresses.SB, 0x9a)
	test.Equate(t, ser.ReadPort(addresses.SB), 0x9a)

	// start a transfer with the internal clock. nothing is connected so
	// all ones are shifted in and the transfer completes at once
	ser.WritePort(addresses.SC, 0x81)
	test.Equate(t, ser.ReadPort(addresses.SB), 0xff)
	test.ExpectSuccess(t, irq.raised&interrupts.Serial == interrupts.Serial)

	// transfer flag is clear again
	test.Equate(t, ser.ReadPort(addresses.SC)&0x80, 0x00)
}
