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

// Package memory implements the address space of the console. The Memory
// type owns the RAM areas outright and routes hardware register access to
// whichever component has registered itself for the address. Components
// that need to see VRAM and OAM directly, primarily the video chip, reach
// into the exported arrays.
package memory

import (
	"github.com/wrenhold/gopherboy/hardware/bus"
	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
)

// Memory implements the bus.CPUBus and bus.DebugBus interfaces.
type Memory struct {
	Cart *cartridge.Cartridge

	VRAM [0x2000]uint8
	WRAM [0x2000]uint8
	OAM  [0xa0]uint8
	HRAM [0x7f]uint8

	// the interrupt enable register sits on its own at the top of the
	// address space
	IE uint8

	// hardware registers with no registered component fall back to plain
	// storage. the interrupt flag register also lives here
	io [0x80]uint8

	// component lookup table for the hardware register area. indexed by
	// the low byte of the address
	ports [0x80]bus.PortDevice
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		Cart: cartridge.NewCartridge(),
	}
	mem.Reset()
	return mem
}

// Reset the RAM areas and hardware registers to their power-on state. The
// attached cartridge is reset but not ejected.
func (mem *Memory) Reset() {
	for i := range mem.io {
		mem.io[i] = 0x00
	}
	mem.io[addresses.IF&0x7f] = 0xe1
	mem.IE = 0x00
	mem.Cart.Reset()
}

// RegisterPort attaches a component to an inclusive range of hardware
// register addresses. Addresses outside of the hardware register area are
// ignored.
func (mem *Memory) RegisterPort(dev bus.PortDevice, from uint16, to uint16) {
	for addr := from; addr <= to; addr++ {
		if addr >= addresses.IOStart && addr <= addresses.IOEnd {
			mem.ports[addr&0x7f] = dev
		}
	}
}

// Read an address on the bus.
func (mem *Memory) Read(addr uint16) (uint8, error) {
	switch {
	case addr <= addresses.CartridgeEnd:
		return mem.Cart.Read(addr), nil

	case addr <= addresses.VRAMEnd:
		return mem.VRAM[addr&0x1fff], nil

	case addr <= addresses.ExternalRAMEnd:
		return mem.Cart.Read(addr), nil

	case addr <= addresses.WRAMEnd:
		return mem.WRAM[addr&0x1fff], nil

	case addr <= addresses.EchoEnd:
		return mem.WRAM[addr&0x1fff], nil

	case addr <= addresses.OAMEnd:
		return mem.OAM[addr-addresses.OAMStart], nil

	case addr <= addresses.UnusableEnd:
		return 0xff, nil

	case addr <= addresses.IOEnd:
		if addr == addresses.DMA {
			// the register reads back the last value written
			return mem.io[addr&0x7f], nil
		}
		if dev := mem.ports[addr&0x7f]; dev != nil {
			return dev.ReadPort(addr), nil
		}
		if addr == addresses.IF {
			// the upper three bits of the interrupt flag register are
			// not wired
			return mem.io[addr&0x7f] | ^uint8(interrupts.Mask), nil
		}

		// registers with no device behind them read all ones
		return 0xff, nil

	case addr <= addresses.HRAMEnd:
		return mem.HRAM[addr-addresses.HRAMStart], nil
	}

	return mem.IE, nil
}

// Write a value to an address on the bus.
func (mem *Memory) Write(addr uint16, data uint8) error {
	switch {
	case addr <= addresses.CartridgeEnd:
		mem.Cart.Write(addr, data)

	case addr <= addresses.VRAMEnd:
		mem.VRAM[addr&0x1fff] = data

	case addr <= addresses.ExternalRAMEnd:
		mem.Cart.Write(addr, data)

	case addr <= addresses.WRAMEnd:
		mem.WRAM[addr&0x1fff] = data

	case addr <= addresses.EchoEnd:
		mem.WRAM[addr&0x1fff] = data

	case addr <= addresses.OAMEnd:
		mem.OAM[addr-addresses.OAMStart] = data

	case addr <= addresses.UnusableEnd:
		// no storage here

	case addr <= addresses.IOEnd:
		if addr == addresses.DMA {
			mem.io[addr&0x7f] = data
			mem.dma(data)
			return nil
		}
		if dev := mem.ports[addr&0x7f]; dev != nil {
			dev.WritePort(addr, data)
			return nil
		}
		mem.io[addr&0x7f] = data

	case addr <= addresses.HRAMEnd:
		mem.HRAM[addr-addresses.HRAMStart] = data

	default:
		mem.IE = data
	}

	return nil
}

// dma copies 160 bytes from the page given by the written value into OAM.
// The copy happens at once rather than spread over the 160 machine cycles
// the hardware takes.
func (mem *Memory) dma(page uint8) {
	src := uint16(page) << 8
	for i := uint16(0); i < uint16(len(mem.OAM)); i++ {
		mem.OAM[i], _ = mem.Peek(src + i)
	}
}

// RequestInterrupt raises the corresponding bit in the interrupt flag
// register. Components call this rather than writing the register through
// the bus.
func (mem *Memory) RequestInterrupt(irq interrupts.Interrupt) {
	mem.io[addresses.IF&0x7f] |= uint8(irq)
}

// AcknowledgeInterrupt lowers the corresponding bit in the interrupt flag
// register.
func (mem *Memory) AcknowledgeInterrupt(irq interrupts.Interrupt) {
	mem.io[addresses.IF&0x7f] &= ^uint8(irq)
}

// Peek an address on the bus without disturbing the hardware. Required
// by the bus.DebugBus interface.
func (mem *Memory) Peek(addr uint16) (uint8, error) {
	return mem.Read(addr)
}

// Poke a value directly into storage, bypassing any register semantics.
// Required by the bus.DebugBus interface.
func (mem *Memory) Poke(addr uint16, data uint8) error {
	switch {
	case addr <= addresses.VRAMEnd && addr >= addresses.VRAMStart:
		mem.VRAM[addr&0x1fff] = data
	case addr >= addresses.WRAMStart && addr <= addresses.EchoEnd:
		mem.WRAM[addr&0x1fff] = data
	case addr >= addresses.OAMStart && addr <= addresses.OAMEnd:
		mem.OAM[addr-addresses.OAMStart] = data
	case addr >= addresses.IOStart && addr <= addresses.IOEnd:
		mem.io[addr&0x7f] = data
	case addr >= addresses.HRAMStart && addr <= addresses.HRAMEnd:
		mem.HRAM[addr-addresses.HRAMStart] = data
	case addr == addresses.IE:
		mem.IE = data
	}
	return nil
}
