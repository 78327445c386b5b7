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

// cartMapper implementations hold the cartridge data and decide how the
// address space the cartridge responds to is banked. the addresses passed
// to Read() and Write() are the addresses as seen by the CPU, ie. in the
// ranges 0x0000 to 0x7fff and 0xa000 to 0xbfff.
type cartMapper interface {
	// a one-line summary of the mapper state, suitable for the terminal
	String() string

	// the mapper family, eg. "MBC1"
	ID() string

	Read(addr uint16) uint8
	Write(addr uint16, data uint8)

	// return mapper to its power-on state. cartridge RAM content is
	// preserved
	Reset()

	// number of switchable ROM banks in the cartridge
	NumBanks() int

	// the ROM bank currently switched into the 0x4000 to 0x7fff window
	CurrentBank() int

	// the cartridge RAM as a live slice. writes through the slice are
	// seen by the mapper. returns nil if the cartridge has none
	RAM() []uint8
}

// bankSize is the size of one switchable ROM bank.
const bankSize = 0x4000

// ramEnableValue is the value that must be written to the RAM enable
// region, after masking, for cartridge RAM to respond.
const ramEnableValue = 0x0a

// numBanks returns the number of ROM banks represented by the data,
// rounding up for (non-standard) images that are not a whole number of
// banks long.
func numBanks(data []byte) int {
	n := len(data) / bankSize
	if len(data)%bankSize != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// readBank reads from the data as though the given bank was switched in.
// addresses beyond the end of the data read as 0xff, as they would on an
// unconnected bus.
func readBank(data []byte, bank int, offset uint16) uint8 {
	idx := bank*bankSize + int(offset)
	if idx >= len(data) {
		return 0xff
	}
	return data[idx]
}
