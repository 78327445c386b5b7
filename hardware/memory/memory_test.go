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

package memory_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/test"
)

func read(t *testing.T, mem *memory.Memory, addr uint16) uint8 {
	t.Helper()
	v, err := mem.Read(addr)
	test.ExpectSuccess(t, err)
	return v
}

func write(t *testing.T, mem *memory.Memory, addr uint16, data uint8) {
	t.Helper()
	test.ExpectSuccess(t, mem.Write(addr, data))
}

func TestRAMAreas(t *testing.T) {
	mem := memory.NewMemory()

	write(t, mem, 0xc123, 0xab)
	test.Equate(t, read(t, mem, 0xc123), 0xab)

	write(t, mem, 0x8000, 0x12)
	test.Equate(t, read(t, mem, 0x8000), 0x12)

	write(t, mem, 0xff80, 0x34)
	test.Equate(t, read(t, mem, 0xff80), 0x34)

	write(t, mem, 0xffff, 0x1f)
	test.Equate(t, read(t, mem, 0xffff), 0x1f)
}

func TestEchoRAM(t *testing.T) {
	mem := memory.NewMemory()

	write(t, mem, 0xc000, 0x55)
	test.Equate(t, read(t, mem, 0xe000), 0x55)

	// and the mirror works in the other direction
	write(t, mem, 0xfdff, 0x66)
	test.Equate(t, read(t, mem, 0xddff), 0x66)
}

func TestUnusableArea(t *testing.T) {
	mem := memory.NewMemory()

	write(t, mem, 0xfea0, 0x99)
	test.Equate(t, read(t, mem, 0xfea0), 0xff)
	test.Equate(t, read(t, mem, 0xfeff), 0xff)
}

func TestInterruptFlag(t *testing.T) {
	mem := memory.NewMemory()

	mem.RequestInterrupt(interrupts.Timer)

	// unwired bits of the flag register read as 1
	test.Equate(t, read(t, mem, addresses.IF), 0xe1|uint8(interrupts.Timer))

	mem.AcknowledgeInterrupt(interrupts.Timer)
	test.Equate(t, read(t, mem, addresses.IF)&uint8(interrupts.Timer), 0x00)
}

func TestDMA(t *testing.T) {
	mem := memory.NewMemory()

	for i := uint16(0); i < 0xa0; i++ {
		write(t, mem, 0xc000+i, uint8(i))
	}

	write(t, mem, addresses.DMA, 0xc0)

	test.Equate(t, read(t, mem, 0xfe00), 0x00)
	test.Equate(t, read(t, mem, 0xfe9f), 0x9f)

	// the register reads back the last value written
	test.Equate(t, read(t, mem, addresses.DMA), 0xc0)
}

func TestUnmappedRegisters(t *testing.T) {
	mem := memory.NewMemory()

	// no device sits behind these addresses so they read all ones,
	// even after a write
	for _, addr := range []uint16{0xff03, 0xff08, 0xff0e, 0xff4c, 0xff50, 0xff7f} {
		test.Equate(t, read(t, mem, addr), 0xff)
		write(t, mem, addr, 0x00)
		test.Equate(t, read(t, mem, addr), 0xff)
	}
}

// stubPort remembers the last write and reads back a fixed value.
type stubPort struct {
	lastAddr uint16
	lastData uint8
}

func (p *stubPort) ReadPort(_ uint16) uint8 {
	return 0x42
}

func (p *stubPort) WritePort(addr uint16, data uint8) {
	p.lastAddr = addr
	p.lastData = data
}

func TestPortDispatch(t *testing.T) {
	mem := memory.NewMemory()

	p := &stubPort{}
	mem.RegisterPort(p, addresses.DIV, addresses.TAC)

	write(t, mem, addresses.TIMA, 0x77)
	test.Equate(t, p.lastAddr, addresses.TIMA)
	test.Equate(t, p.lastData, 0x77)
	test.Equate(t, read(t, mem, addresses.TIMA), 0x42)

	// addresses outside the registered range have no device behind them
	write(t, mem, addresses.SB, 0x11)
	test.Equate(t, read(t, mem, addresses.SB), 0xff)
}
