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

// mbc2 has a single 4 bit ROM bank register and 512 half-bytes of RAM on
// the mapper chip itself. bit 8 of the address decides which of the two
// registers a write below 0x4000 lands in.
type mbc2 struct {
	data []byte
	ram  [512]uint8

	ramEnabled bool
	bank       uint8
}

func newMBC2(data []byte) *mbc2 {
	cart := &mbc2{data: data}
	cart.Reset()
	return cart
}

func (cart *mbc2) String() string {
	return fmt.Sprintf("%s: bank %d of %d", cart.ID(), cart.CurrentBank(), cart.NumBanks())
}

func (cart *mbc2) ID() string {
	return "MBC2"
}

func (cart *mbc2) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return readBank(cart.data, 0, addr)

	case addr < 0x8000:
		return readBank(cart.data, cart.CurrentBank(), addr&0x3fff)

	default:
		if !cart.ramEnabled {
			return 0xff
		}
		// only the lower nibble is wired. the RAM repeats through the
		// whole 0xa000 window
		return cart.ram[addr&0x01ff] | 0xf0
	}
}

func (cart *mbc2) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x4000:
		if addr&0x0100 == 0x0000 {
			cart.ramEnabled = data&0x0f == ramEnableValue
		} else {
			cart.bank = data & 0x0f
		}

	case addr < 0x8000:
		// no register here

	default:
		if cart.ramEnabled {
			cart.ram[addr&0x01ff] = data & 0x0f
		}
	}
}

func (cart *mbc2) Reset() {
	cart.ramEnabled = false
	cart.bank = 0x01
}

func (cart *mbc2) NumBanks() int {
	return numBanks(cart.data)
}

func (cart *mbc2) CurrentBank() int {
	bank := int(cart.bank)
	if bank == 0 {
		bank = 1
	}
	return bank % cart.NumBanks()
}

func (cart *mbc2) RAM() []uint8 {
	return cart.ram[:]
}
