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

package timer_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/hardware/timer"
	"github.com/wrenhold/gopherboy/test"
)

type mockIRQ struct {
	raised interrupts.Interrupt
	count  int
}

func (m *mockIRQ) RequestInterrupt(irq interrupts.Interrupt) {
	m.raised |= irq
	m.count++
}

func TestDivider(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.DIV, 0x00)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 0x00)

	// the divider register is the upper byte of a counter ticking at the
	// full clock rate
	tmr.Step(256)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 0x01)

	tmr.Step(256 * 5)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 0x06)

	// writing resets the counter
	tmr.WritePort(addresses.DIV, 0xff)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 0x00)
}

func TestTimerDisabled(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	tmr.Step(100000)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 0x00)
	test.Equate(t, irq.count, 0)
}

func TestTimerFrequency(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.DIV, 0x00)

	// fastest setting increments TIMA every 16 ticks
	tmr.WritePort(addresses.TAC, 0x05)
	tmr.Step(16 * 10)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 0x0a)

	tmr.WritePort(addresses.TIMA, 0x00)
	tmr.WritePort(addresses.DIV, 0x00)

	// slowest setting increments TIMA every 1024 ticks
	tmr.WritePort(addresses.TAC, 0x04)
	tmr.Step(1024 * 3)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 0x03)
}

func TestTimerOverflow(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.DIV, 0x00)
	tmr.WritePort(addresses.TMA, 0xf0)
	tmr.WritePort(addresses.TIMA, 0xfe)
	tmr.WritePort(addresses.TAC, 0x05)

	tmr.Step(16 * 2)

	// overflow reloads TIMA from TMA and raises the interrupt
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 0xf0)
	test.ExpectSuccess(t, irq.raised&interrupts.Timer == interrupts.Timer)
	test.Equate(t, irq.count, 1)
}

func TestTACReadMask(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.TAC, 0x05)
	test.Equate(t, tmr.ReadPort(addresses.TAC), 0xfd)
}
