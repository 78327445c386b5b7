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

// mbc5 has a 9 bit ROM bank register split over two addresses and, unlike
// the earlier mappers, allows bank zero to be switched into the upper
// window.
type mbc5 struct {
	data []byte
	ram  []uint8

	ramEnabled bool
	bankLo     uint8
	bankHi     uint8
	ramBank    uint8
}

func newMBC5(data []byte, ramSize int) *mbc5 {
	cart := &mbc5{data: data}
	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}
	cart.Reset()
	return cart
}

func (cart *mbc5) String() string {
	return fmt.Sprintf("%s: bank %d of %d", cart.ID(), cart.CurrentBank(), cart.NumBanks())
}

func (cart *mbc5) ID() string {
	return "MBC5"
}

func (cart *mbc5) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return readBank(cart.data, 0, addr)

	case addr < 0x8000:
		return readBank(cart.data, cart.CurrentBank(), addr&0x3fff)

	default:
		if !cart.ramEnabled || cart.ram == nil {
			return 0xff
		}
		return cart.ram[cart.ramIndex(addr)]
	}
}

func (cart *mbc5) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == ramEnableValue

	case addr < 0x3000:
		cart.bankLo = data

	case addr < 0x4000:
		cart.bankHi = data & 0x01

	case addr < 0x6000:
		cart.ramBank = data & 0x0f

	case addr < 0x8000:
		// no register here

	default:
		if cart.ramEnabled && cart.ram != nil {
			cart.ram[cart.ramIndex(addr)] = data
		}
	}
}

func (cart *mbc5) ramIndex(addr uint16) int {
	return (int(cart.ramBank)*0x2000 + int(addr&0x1fff)) % len(cart.ram)
}

func (cart *mbc5) Reset() {
	cart.ramEnabled = false
	cart.bankLo = 0x01
	cart.bankHi = 0x00
	cart.ramBank = 0x00
}

func (cart *mbc5) NumBanks() int {
	return numBanks(cart.data)
}

func (cart *mbc5) CurrentBank() int {
	return (int(cart.bankHi)<<8 | int(cart.bankLo)) % cart.NumBanks()
}

func (cart *mbc5) RAM() []uint8 {
	return cart.ram
}
