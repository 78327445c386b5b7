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

// rom is the mapper for unbanked cartridges. the first 32k of data is
// visible and nothing can be switched. a small number of cartridges of
// this type carry RAM.
type rom struct {
	data []byte
	ram  []uint8
}

func newROM(data []byte, withRAM bool) *rom {
	cart := &rom{data: data}
	if withRAM {
		cart.ram = make([]uint8, 0x2000)
	}
	return cart
}

func (cart *rom) String() string {
	return fmt.Sprintf("%s: %dk", cart.ID(), len(cart.data)/1024)
}

func (cart *rom) ID() string {
	return "ROM"
}

func (cart *rom) Read(addr uint16) uint8 {
	if addr < 0x8000 {
		if int(addr) >= len(cart.data) {
			return 0xff
		}
		return cart.data[addr]
	}
	if cart.ram != nil {
		return cart.ram[addr&0x1fff]
	}
	return 0xff
}

func (cart *rom) Write(addr uint16, data uint8) {
	if addr >= 0xa000 && cart.ram != nil {
		cart.ram[addr&0x1fff] = data
	}
}

func (cart *rom) Reset() {
}

func (cart *rom) NumBanks() int {
	return numBanks(cart.data)
}

func (cart *rom) CurrentBank() int {
	return 1
}

func (cart *rom) RAM() []uint8 {
	return cart.ram
}
