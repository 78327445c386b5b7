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

package cartridge

import "fmt"

// mbc1 supports up to 2mbit of ROM and 32k of RAM. the two register values
// are combined into a ROM bank number differently depending on the mode
// flag, which also decides whether the second register banks RAM instead
// of extending the ROM bank number.
type mbc1 struct {
	data []byte
	ram  []uint8

	ramEnabled bool

	// 5 bit and 2 bit bank registers
	bankLo uint8
	bankHi uint8

	// false is "simple" mode. the 0x0000 window is fixed at bank zero and
	// the bankHi register extends the switchable window
	mode bool
}

func newMBC1(data []byte, ramSize int) *mbc1 {
	cart := &mbc1{data: data}
	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}
	cart.Reset()
	return cart
}

func (cart *mbc1) String() string {
	return fmt.Sprintf("%s: bank %d of %d", cart.ID(), cart.CurrentBank(), cart.NumBanks())
}

func (cart *mbc1) ID() string {
	return "MBC1"
}

// bank numbers are masked to the size of the ROM, which is how the address
// pins of a smaller ROM chip simply go unconnected.
func (cart *mbc1) bankMask() int {
	mask := 1
	for mask < cart.NumBanks() {
		mask <<= 1
	}
	return mask - 1
}

func (cart *mbc1) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		bank := 0
		if cart.mode {
			bank = int(cart.bankHi) << 5 & cart.bankMask()
		}
		return readBank(cart.data, bank, addr)

	case addr < 0x8000:
		return readBank(cart.data, cart.CurrentBank(), addr&0x3fff)

	default:
		if !cart.ramEnabled || cart.ram == nil {
			return 0xff
		}
		return cart.ram[cart.ramIndex(addr)]
	}
}

func (cart *mbc1) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == ramEnableValue

	case addr < 0x4000:
		cart.bankLo = data & 0x1f

	case addr < 0x6000:
		cart.bankHi = data & 0x03

	case addr < 0x8000:
		cart.mode = data&0x01 == 0x01

	default:
		if cart.ramEnabled && cart.ram != nil {
			cart.ram[cart.ramIndex(addr)] = data
		}
	}
}

func (cart *mbc1) ramIndex(addr uint16) int {
	idx := int(addr & 0x1fff)
	if cart.mode {
		idx += int(cart.bankHi) * 0x2000
	}
	return idx % len(cart.ram)
}

func (cart *mbc1) Reset() {
	cart.ramEnabled = false
	cart.bankLo = 0x01
	cart.bankHi = 0x00
	cart.mode = false
}

func (cart *mbc1) NumBanks() int {
	return numBanks(cart.data)
}

func (cart *mbc1) CurrentBank() int {
	// a bankLo of zero always selects bank one. the quirk applies before
	// the bankHi bits are added, which is why banks 0x20, 0x40 and 0x60
	// are unreachable through this window
	lo := cart.bankLo
	if lo == 0x00 {
		lo = 0x01
	}
	return (int(cart.bankHi)<<5 | int(lo)) & cart.bankMask()
}

func (cart *mbc1) RAM() []uint8 {
	return cart.ram
}
