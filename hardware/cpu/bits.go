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

package cpu

// executePrefixed executes an instruction from the 0xcb page: rotates,
// shifts, swap and the single bit operations. Every instruction on the
// page operates on the register identified by the low three bits of the
// opcode.
func (mc *CPU) executePrefixed(opcode uint8) error {
	x := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07

	v, err := mc.registerByIndex(z)
	if err != nil {
		return err
	}

	switch x {
	case 0:
		var r uint8
		var carry bool

		switch y {
		case 0: // RLC
			r = v<<1 | v>>7
			carry = v&0x80 == 0x80
		case 1: // RRC
			r = v>>1 | v<<7
			carry = v&0x01 == 0x01
		case 2: // RL
			r = v << 1
			if mc.Status.Carry {
				r |= 0x01
			}
			carry = v&0x80 == 0x80
		case 3: // RR
			r = v >> 1
			if mc.Status.Carry {
				r |= 0x80
			}
			carry = v&0x01 == 0x01
		case 4: // SLA
			r = v << 1
			carry = v&0x80 == 0x80
		case 5: // SRA
			r = v>>1 | v&0x80
			carry = v&0x01 == 0x01
		case 6: // SWAP
			r = v<<4 | v>>4
		case 7: // SRL
			r = v >> 1
			carry = v&0x01 == 0x01
		}

		mc.Status.Clear()
		mc.Status.Zero = r == 0
		mc.Status.Carry = carry

		return mc.setRegisterByIndex(z, r)

	case 1: // BIT
		mc.Status.Zero = v&(1<<y) == 0
		mc.Status.Negative = false
		mc.Status.HalfCarry = true
		return nil

	case 2: // RES
		return mc.setRegisterByIndex(z, v&^(1<<y))
	}

	// SET
	return mc.setRegisterByIndex(z, v|1<<y)
}
