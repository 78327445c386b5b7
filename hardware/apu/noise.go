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

package apu

// divisor for each of the eight clock settings in the polynomial register.
var noiseDivisor = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// noiseChannel produces pseudo random noise from a linear feedback shift
// register.
type noiseChannel struct {
	enabled bool

	lfsr uint16

	// narrow mode feeds the XOR result back into bit 6 as well, giving
	// the much shorter 7 bit sequence
	narrow      bool
	divisorCode uint8
	shift       uint8

	freqTimer int

	length       int
	lengthEnable bool

	env envelope
}

func (ch *noiseChannel) writeLength(data uint8) {
	ch.length = 64 - int(data&0x3f)
}

func (ch *noiseChannel) writeEnvelope(data uint8) {
	ch.env.write(data)
	if !ch.env.dacEnabled() {
		ch.enabled = false
	}
}

func (ch *noiseChannel) writePolynomial(data uint8) {
	ch.shift = data >> 4
	ch.narrow = data&0x08 == 0x08
	ch.divisorCode = data & 0x07
}

func (ch *noiseChannel) writeControl(data uint8) {
	ch.lengthEnable = data&0x40 == 0x40
	if data&0x80 == 0x80 {
		ch.trigger()
	}
}

func (ch *noiseChannel) trigger() {
	ch.enabled = ch.env.dacEnabled()
	if ch.length == 0 {
		ch.length = 64
	}
	ch.freqTimer = noiseDivisor[ch.divisorCode] << ch.shift
	ch.lfsr = 0x7fff
	ch.env.trigger()
}

func (ch *noiseChannel) tick() {
	ch.freqTimer--
	if ch.freqTimer <= 0 {
		ch.freqTimer = noiseDivisor[ch.divisorCode] << ch.shift

		bit := ch.lfsr&0x01 ^ ch.lfsr>>1&0x01
		ch.lfsr = ch.lfsr>>1 | bit<<14
		if ch.narrow {
			ch.lfsr = ch.lfsr&^uint16(0x40) | bit<<6
		}
	}
}

func (ch *noiseChannel) clockLength() {
	if ch.lengthEnable && ch.length > 0 {
		ch.length--
		if ch.length == 0 {
			ch.enabled = false
		}
	}
}

func (ch *noiseChannel) clockEnvelope() {
	ch.env.clock()
}

func (ch *noiseChannel) output() uint8 {
	if !ch.enabled {
		return 0
	}
	if ch.lfsr&0x01 == 0x01 {
		return 0
	}
	return ch.env.volume
}
