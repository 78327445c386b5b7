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

// waveChannel plays 4 bit samples straight out of wave RAM, two samples to
// a byte.
type waveChannel struct {
	ram *[16]uint8

	enabled    bool
	dacEnabled bool

	freq      uint16
	freqTimer int
	pos       int

	// volume shift code from NR32. 0 is mute
	volumeCode uint8

	length       int
	lengthEnable bool
}

func (ch *waveChannel) writeEnable(data uint8) {
	ch.dacEnabled = data&0x80 == 0x80
	if !ch.dacEnabled {
		ch.enabled = false
	}
}

func (ch *waveChannel) writeLength(data uint8) {
	ch.length = 256 - int(data)
}

func (ch *waveChannel) writeVolume(data uint8) {
	ch.volumeCode = data >> 5 & 0x03
}

func (ch *waveChannel) writeFreqLo(data uint8) {
	ch.freq = ch.freq&0x0700 | uint16(data)
}

func (ch *waveChannel) writeFreqHi(data uint8) {
	ch.freq = ch.freq&0x00ff | uint16(data&0x07)<<8
	ch.lengthEnable = data&0x40 == 0x40
	if data&0x80 == 0x80 {
		ch.trigger()
	}
}

func (ch *waveChannel) trigger() {
	ch.enabled = ch.dacEnabled
	if ch.length == 0 {
		ch.length = 256
	}
	ch.freqTimer = int(2048-ch.freq) * 2
	ch.pos = 0
}

func (ch *waveChannel) tick() {
	ch.freqTimer--
	if ch.freqTimer <= 0 {
		ch.freqTimer = int(2048-ch.freq) * 2
		ch.pos = (ch.pos + 1) % 32
	}
}

func (ch *waveChannel) clockLength() {
	if ch.lengthEnable && ch.length > 0 {
		ch.length--
		if ch.length == 0 {
			ch.enabled = false
		}
	}
}

func (ch *waveChannel) output() uint8 {
	if !ch.enabled || ch.volumeCode == 0x00 {
		return 0
	}

	v := ch.ram[ch.pos/2]
	if ch.pos%2 == 0 {
		v >>= 4
	}
	v &= 0x0f

	return v >> (ch.volumeCode - 1)
}
