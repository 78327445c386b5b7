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

// the four pulse duty cycles, one bit per eighth of the waveform.
var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 0},
}

// envelope is the volume envelope unit shared by the pulse and noise
// channels.
type envelope struct {
	initial uint8
	volume  uint8
	addMode bool
	period  uint8
	timer   uint8
}

func (env *envelope) write(data uint8) {
	env.initial = data >> 4
	env.addMode = data&0x08 == 0x08
	env.period = data & 0x07
}

func (env *envelope) trigger() {
	env.volume = env.initial
	env.timer = env.period
}

func (env *envelope) clock() {
	if env.period == 0x00 {
		return
	}
	if env.timer > 0x00 {
		env.timer--
	}
	if env.timer == 0x00 {
		env.timer = env.period
		if env.addMode && env.volume < 0x0f {
			env.volume++
		} else if !env.addMode && env.volume > 0x00 {
			env.volume--
		}
	}
}

// dacEnabled returns false when the envelope register holds a value that
// powers the channel DAC down entirely.
func (env *envelope) dacEnabled() bool {
	return env.initial != 0x00 || env.addMode
}

// pulseChannel produces a square wave. The first pulse channel also
// carries the frequency sweep unit.
type pulseChannel struct {
	hasSweep bool
	enabled  bool

	duty    uint8
	dutyPos int

	freq      uint16
	freqTimer int

	length       int
	lengthEnable bool

	env envelope

	sweepPeriod  uint8
	sweepNegate  bool
	sweepShift   uint8
	sweepTimer   uint8
	sweepEnabled bool
	sweepShadow  uint16
}

func (ch *pulseChannel) writeSweep(data uint8) {
	if !ch.hasSweep {
		return
	}
	ch.sweepPeriod = data >> 4 & 0x07
	ch.sweepNegate = data&0x08 == 0x08
	ch.sweepShift = data & 0x07
}

func (ch *pulseChannel) writeLengthDuty(data uint8) {
	ch.duty = data >> 6
	ch.length = 64 - int(data&0x3f)
}

func (ch *pulseChannel) writeEnvelope(data uint8) {
	ch.env.write(data)
	if !ch.env.dacEnabled() {
		ch.enabled = false
	}
}

func (ch *pulseChannel) writeFreqLo(data uint8) {
	ch.freq = ch.freq&0x0700 | uint16(data)
}

func (ch *pulseChannel) writeFreqHi(data uint8) {
	ch.freq = ch.freq&0x00ff | uint16(data&0x07)<<8
	ch.lengthEnable = data&0x40 == 0x40
	if data&0x80 == 0x80 {
		ch.trigger()
	}
}

func (ch *pulseChannel) trigger() {
	ch.enabled = ch.env.dacEnabled()
	if ch.length == 0 {
		ch.length = 64
	}
	ch.freqTimer = int(2048-ch.freq) * 4
	ch.env.trigger()

	if ch.hasSweep {
		ch.sweepShadow = ch.freq
		ch.sweepTimer = ch.sweepPeriod
		if ch.sweepTimer == 0x00 {
			ch.sweepTimer = 8
		}
		ch.sweepEnabled = ch.sweepPeriod != 0x00 || ch.sweepShift != 0x00
		if ch.sweepShift != 0x00 && ch.nextSweepFreq() > 2047 {
			ch.enabled = false
		}
	}
}

func (ch *pulseChannel) nextSweepFreq() uint16 {
	d := ch.sweepShadow >> ch.sweepShift
	if ch.sweepNegate {
		return ch.sweepShadow - d
	}
	return ch.sweepShadow + d
}

func (ch *pulseChannel) tick() {
	ch.freqTimer--
	if ch.freqTimer <= 0 {
		ch.freqTimer = int(2048-ch.freq) * 4
		ch.dutyPos = (ch.dutyPos + 1) % 8
	}
}

func (ch *pulseChannel) clockLength() {
	if ch.lengthEnable && ch.length > 0 {
		ch.length--
		if ch.length == 0 {
			ch.enabled = false
		}
	}
}

func (ch *pulseChannel) clockEnvelope() {
	ch.env.clock()
}

func (ch *pulseChannel) clockSweep() {
	if !ch.hasSweep || !ch.sweepEnabled {
		return
	}
	if ch.sweepTimer > 0x00 {
		ch.sweepTimer--
	}
	if ch.sweepTimer != 0x00 {
		return
	}

	ch.sweepTimer = ch.sweepPeriod
	if ch.sweepTimer == 0x00 {
		ch.sweepTimer = 8
	}
	if ch.sweepPeriod == 0x00 {
		return
	}

	next := ch.nextSweepFreq()
	if next > 2047 {
		ch.enabled = false
		return
	}
	if ch.sweepShift != 0x00 {
		ch.sweepShadow = next
		ch.freq = next
		if ch.nextSweepFreq() > 2047 {
			ch.enabled = false
		}
	}
}

func (ch *pulseChannel) output() uint8 {
	if !ch.enabled {
		return 0
	}
	return dutyTable[ch.duty][ch.dutyPos] * ch.env.volume
}
