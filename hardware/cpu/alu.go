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

// The arithmetic helpers in this file all update the status register as a
// side effect. The half carry flag is the fiddly one: it records the carry
// out of bit 3 (bit 11 for the 16 bit additions).

func (mc *CPU) add8(a, b uint8, carry bool) uint8 {
	var c uint16
	if carry {
		c = 1
	}

	r := uint16(a) + uint16(b) + c

	mc.Status.Zero = uint8(r) == 0
	mc.Status.Negative = false
	mc.Status.HalfCarry = (a&0x0f)+(b&0x0f)+uint8(c) > 0x0f
	mc.Status.Carry = r > 0xff

	return uint8(r)
}

func (mc *CPU) sub8(a, b uint8, carry bool) uint8 {
	var c uint16
	if carry {
		c = 1
	}

	r := uint16(a) - uint16(b) - c

	mc.Status.Zero = uint8(r) == 0
	mc.Status.Negative = true
	mc.Status.HalfCarry = uint16(a&0x0f) < uint16(b&0x0f)+c
	mc.Status.Carry = uint16(a) < uint16(b)+c

	return uint8(r)
}

// inc8 and dec8 do not affect the carry flag.
func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	mc.Status.Zero = r == 0
	mc.Status.Negative = false
	mc.Status.HalfCarry = v&0x0f == 0x0f
	return r
}

func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	mc.Status.Zero = r == 0
	mc.Status.Negative = true
	mc.Status.HalfCarry = v&0x0f == 0x00
	return r
}

// addHL implements ADD HL,rr. the zero flag is not affected.
func (mc *CPU) addHL(v uint16) {
	hl := mc.HL.Value()
	r := uint32(hl) + uint32(v)

	mc.Status.Negative = false
	mc.Status.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	mc.Status.Carry = r > 0xffff

	mc.HL.Load(uint16(r))
}

// addSPe8 implements the addition shared by ADD SP,e8 and LD HL,SP+e8.
// flags are calculated from the unsigned addition of the low byte, not
// from the 16 bit result.
func (mc *CPU) addSPe8(e int8) uint16 {
	sp := mc.SP.Value()
	v := uint16(int16(e))

	mc.Status.Zero = false
	mc.Status.Negative = false
	mc.Status.HalfCarry = (sp&0x000f)+(v&0x000f) > 0x000f
	mc.Status.Carry = (sp&0x00ff)+(v&0x00ff) > 0x00ff

	return sp + v
}

// daa adjusts the accumulator after a BCD addition or subtraction.
func (mc *CPU) daa() {
	a := mc.A.Value()

	if mc.Status.Negative {
		if mc.Status.Carry {
			a -= 0x60
		}
		if mc.Status.HalfCarry {
			a -= 0x06
		}
	} else {
		if mc.Status.Carry || a > 0x99 {
			a += 0x60
			mc.Status.Carry = true
		}
		if mc.Status.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	}

	mc.A.Load(a)
	mc.Status.Zero = a == 0
	mc.Status.HalfCarry = false
}

// The four accumulator rotates below differ from their CB page
// equivalents in one way only: the zero flag is always cleared.

func (mc *CPU) rlca() {
	a := mc.A.Value()
	mc.A.Load(a<<1 | a>>7)
	mc.Status.Clear()
	mc.Status.Carry = a&0x80 == 0x80
}

func (mc *CPU) rrca() {
	a := mc.A.Value()
	mc.A.Load(a>>1 | a<<7)
	mc.Status.Clear()
	mc.Status.Carry = a&0x01 == 0x01
}

func (mc *CPU) rla() {
	a := mc.A.Value()
	r := a << 1
	if mc.Status.Carry {
		r |= 0x01
	}
	mc.A.Load(r)
	mc.Status.Clear()
	mc.Status.Carry = a&0x80 == 0x80
}

func (mc *CPU) rra() {
	a := mc.A.Value()
	r := a >> 1
	if mc.Status.Carry {
		r |= 0x80
	}
	mc.A.Load(r)
	mc.Status.Clear()
	mc.Status.Carry = a&0x01 == 0x01
}
