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

// Package apu implements the sound chip. Four channels run off their own
// frequency timers while a slower frame sequencer clocks the length,
// envelope and sweep units. The mixed output is resampled down to the
// television sample rate and pushed out in small batches.
package apu

import (
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/television"
)

// the frame sequencer advances at 512Hz.
const frameSequencerPeriod = 8192

// number of samples gathered before they are pushed to the television.
const audioBufferSize = 512

// clockRate is the rate at which Step() ticks arrive.
const clockRate = 4194304

// the unreadable bit mask for every register in the 0xff10 to 0xff26
// range. reads return the stored value with these bits forced high.
var readMask = map[uint16]uint8{
	addresses.NR10: 0x80,
	addresses.NR11: 0x3f,
	addresses.NR12: 0x00,
	addresses.NR13: 0xff,
	addresses.NR14: 0xbf,
	addresses.NR21: 0x3f,
	addresses.NR22: 0x00,
	addresses.NR23: 0xff,
	addresses.NR24: 0xbf,
	addresses.NR30: 0x7f,
	addresses.NR31: 0xff,
	addresses.NR32: 0x9f,
	addresses.NR33: 0xff,
	addresses.NR34: 0xbf,
	addresses.NR41: 0xff,
	addresses.NR42: 0x00,
	addresses.NR43: 0x00,
	addresses.NR44: 0xbf,
	addresses.NR50: 0x00,
	addresses.NR51: 0x00,
	addresses.NR52: 0x70,
}

// APU implements the bus.PortDevice interface for the sound registers and
// wave RAM.
type APU struct {
	tv *television.Television

	pulse1 pulseChannel
	pulse2 pulseChannel
	wave   waveChannel
	noise  noiseChannel

	// master enable, panning and volume
	enabled bool
	nr50    uint8
	nr51    uint8

	// raw register values for readback
	regs map[uint16]uint8

	waveRAM [16]uint8

	sequencerTick int
	sequencerStep int

	// fixed point accumulator for the downsample to the television rate
	sampleTick int

	samples []int16
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU(tv *television.Television) *APU {
	apu := &APU{tv: tv}
	apu.Reset()
	return apu
}

// Reset the sound chip to its power-on state.
func (apu *APU) Reset() {
	apu.pulse1 = pulseChannel{hasSweep: true}
	apu.pulse2 = pulseChannel{}
	apu.wave = waveChannel{ram: &apu.waveRAM}
	apu.noise = noiseChannel{}

	apu.enabled = true
	apu.nr50 = 0x77
	apu.nr51 = 0xf3
	apu.regs = make(map[uint16]uint8)

	apu.sequencerTick = 0
	apu.sequencerStep = 0
	apu.sampleTick = 0
	apu.samples = make([]int16, 0, audioBufferSize)
}

// Step the sound chip the given number of clock ticks.
func (apu *APU) Step(ticks int) error {
	for i := 0; i < ticks; i++ {
		if apu.enabled {
			apu.pulse1.tick()
			apu.pulse2.tick()
			apu.wave.tick()
			apu.noise.tick()

			apu.sequencerTick++
			if apu.sequencerTick == frameSequencerPeriod {
				apu.sequencerTick = 0
				apu.sequence()
			}
		}

		// gather a sample every clockRate/SampleFreq ticks, using a
		// fixed point accumulator to spread the remainder
		apu.sampleTick += television.SampleFreq
		if apu.sampleTick >= clockRate {
			apu.sampleTick -= clockRate
			apu.samples = append(apu.samples, apu.mix())

			if len(apu.samples) == audioBufferSize {
				if err := apu.tv.SetAudio(apu.samples); err != nil {
					return err
				}
				apu.samples = apu.samples[:0]
			}
		}
	}
	return nil
}

// sequence is the 512Hz frame sequencer. length counters run at 256Hz,
// the sweep unit at 128Hz and the envelopes at 64Hz.
func (apu *APU) sequence() {
	if apu.sequencerStep%2 == 0 {
		apu.pulse1.clockLength()
		apu.pulse2.clockLength()
		apu.wave.clockLength()
		apu.noise.clockLength()
	}
	if apu.sequencerStep == 2 || apu.sequencerStep == 6 {
		apu.pulse1.clockSweep()
	}
	if apu.sequencerStep == 7 {
		apu.pulse1.clockEnvelope()
		apu.pulse2.clockEnvelope()
		apu.noise.clockEnvelope()
	}
	apu.sequencerStep = (apu.sequencerStep + 1) % 8
}

// mix combines the four channel outputs into a single mono sample.
func (apu *APU) mix() int16 {
	if !apu.enabled {
		return 0
	}

	// panning is reduced to "audible somewhere" for the mono output
	acc := 0
	if apu.nr51&0x11 != 0x00 {
		acc += int(apu.pulse1.output())
	}
	if apu.nr51&0x22 != 0x00 {
		acc += int(apu.pulse2.output())
	}
	if apu.nr51&0x44 != 0x00 {
		acc += int(apu.wave.output())
	}
	if apu.nr51&0x88 != 0x00 {
		acc += int(apu.noise.output())
	}

	// the louder of the two output terminals decides the master volume
	vol := apu.nr50 & 0x07
	if v := apu.nr50 >> 4 & 0x07; v > vol {
		vol = v
	}

	// acc is in the range 0 to 60. centre and scale
	return int16((acc - 30) * 128 * int(vol+1) / 8)
}

// ReadPort implements the bus.PortDevice interface.
func (apu *APU) ReadPort(addr uint16) uint8 {
	if addr >= addresses.WaveRAMStart && addr <= addresses.WaveRAMEnd {
		return apu.waveRAM[addr-addresses.WaveRAMStart]
	}

	if addr == addresses.NR52 {
		v := uint8(0x70)
		if apu.enabled {
			v |= 0x80
		}
		if apu.pulse1.enabled {
			v |= 0x01
		}
		if apu.pulse2.enabled {
			v |= 0x02
		}
		if apu.wave.enabled {
			v |= 0x04
		}
		if apu.noise.enabled {
			v |= 0x08
		}
		return v
	}

	mask, ok := readMask[addr]
	if !ok {
		// the gaps between the sound registers read as all ones
		return 0xff
	}
	return apu.regs[addr] | mask
}

// WritePort implements the bus.PortDevice interface.
func (apu *APU) WritePort(addr uint16, data uint8) {
	if addr >= addresses.WaveRAMStart && addr <= addresses.WaveRAMEnd {
		apu.waveRAM[addr-addresses.WaveRAMStart] = data
		return
	}

	if addr == addresses.NR52 {
		on := data&0x80 == 0x80
		if apu.enabled && !on {
			// switching the chip off clears every register
			regs := apu.regs
			for a := range regs {
				if a != addresses.NR52 {
					apu.writeRegister(a, 0x00)
					apu.regs[a] = 0x00
				}
			}
		}
		apu.enabled = on
		return
	}

	if !apu.enabled {
		// registers are not writable while the chip is off
		return
	}

	apu.regs[addr] = data
	apu.writeRegister(addr, data)
}

func (apu *APU) writeRegister(addr uint16, data uint8) {
	switch addr {
	case addresses.NR10:
		apu.pulse1.writeSweep(data)
	case addresses.NR11:
		apu.pulse1.writeLengthDuty(data)
	case addresses.NR12:
		apu.pulse1.writeEnvelope(data)
	case addresses.NR13:
		apu.pulse1.writeFreqLo(data)
	case addresses.NR14:
		apu.pulse1.writeFreqHi(data)

	case addresses.NR21:
		apu.pulse2.writeLengthDuty(data)
	case addresses.NR22:
		apu.pulse2.writeEnvelope(data)
	case addresses.NR23:
		apu.pulse2.writeFreqLo(data)
	case addresses.NR24:
		apu.pulse2.writeFreqHi(data)

	case addresses.NR30:
		apu.wave.writeEnable(data)
	case addresses.NR31:
		apu.wave.writeLength(data)
	case addresses.NR32:
		apu.wave.writeVolume(data)
	case addresses.NR33:
		apu.wave.writeFreqLo(data)
	case addresses.NR34:
		apu.wave.writeFreqHi(data)

	case addresses.NR41:
		apu.noise.writeLength(data)
	case addresses.NR42:
		apu.noise.writeEnvelope(data)
	case addresses.NR43:
		apu.noise.writePolynomial(data)
	case addresses.NR44:
		apu.noise.writeControl(data)

	case addresses.NR50:
		apu.nr50 = data
	case addresses.NR51:
		apu.nr51 = data
	}
}
