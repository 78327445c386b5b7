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

package apu_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/hardware/apu"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/test"
)

// audioCapture gathers every sample batch pushed to the television.
type audioCapture struct {
	samples []int16
}

func (c *audioCapture) SetAudio(samples []int16) error {
	c.samples = append(c.samples, samples...)
	return nil
}

func (c *audioCapture) EndMixing() error {
	return nil
}

func prepare() (*apu.APU, *audioCapture) {
	tv := television.NewTelevision()
	mix := &audioCapture{}
	tv.AddAudioMixer(mix)
	return apu.NewAPU(tv), mix
}

func TestSampleRate(t *testing.T) {
	a, mix := prepare()

	// one frame of clock ticks produces one frame of samples, give or
	// take the batching
	test.ExpectSuccess(t, a.Step(television.DotsPerFrame))

	expected := television.DotsPerFrame * television.SampleFreq / 4194304
	got := len(mix.samples)
	test.ExpectSuccess(t, got >= expected-512 && got <= expected)
}

func TestPulseProducesSignal(t *testing.T) {
	a, mix := prepare()

	// channel 1: full volume, no length limit, mid range frequency
	a.WritePort(addresses.NR12, 0xf0)
	a.WritePort(addresses.NR13, 0x00)
	a.WritePort(addresses.NR11, 0x80)
	a.WritePort(addresses.NR14, 0x84)

	test.ExpectSuccess(t, a.Step(television.DotsPerFrame))

	// the output must move around, not sit at a constant level
	varies := false
	for i := 1; i < len(mix.samples); i++ {
		if mix.samples[i] != mix.samples[0] {
			varies = true
			break
		}
	}
	test.ExpectSuccess(t, varies)
}

func TestChannelStatus(t *testing.T) {
	a, _ := prepare()

	test.Equate(t, a.ReadPort(addresses.NR52)&0x0f, 0x00)

	a.WritePort(addresses.NR12, 0xf0)
	a.WritePort(addresses.NR14, 0x80)
	test.Equate(t, a.ReadPort(addresses.NR52)&0x01, 0x01)

	// a zeroed envelope register powers the DAC down and disables the
	// channel with it
	a.WritePort(addresses.NR12, 0x00)
	test.Equate(t, a.ReadPort(addresses.NR52)&0x01, 0x00)
}

func TestLengthCounter(t *testing.T) {
	a, _ := prepare()

	a.WritePort(addresses.NR12, 0xf0)

	// length 2 with the length counter enabled
	a.WritePort(addresses.NR11, 0x3e)
	a.WritePort(addresses.NR14, 0xc0)
	test.Equate(t, a.ReadPort(addresses.NR52)&0x01, 0x01)

	// two length clocks arrive within 4 sequencer periods
	test.ExpectSuccess(t, a.Step(8192*4))
	test.Equate(t, a.ReadPort(addresses.NR52)&0x01, 0x00)
}

func TestPowerOff(t *testing.T) {
	a, _ := prepare()

	a.WritePort(addresses.NR50, 0x44)
	a.WritePort(addresses.NR52, 0x00)

	// registers are cleared and cannot be written while the chip is off
	test.Equate(t, a.ReadPort(addresses.NR50), 0x00)
	a.WritePort(addresses.NR50, 0x22)
	test.Equate(t, a.ReadPort(addresses.NR50), 0x00)

	a.WritePort(addresses.NR52, 0x80)
	a.WritePort(addresses.NR50, 0x22)
	test.Equate(t, a.ReadPort(addresses.NR50), 0x22)
}

func TestWaveRAM(t *testing.T) {
	a, _ := prepare()

	a.WritePort(addresses.WaveRAMStart, 0xab)
	test.Equate(t, a.ReadPort(addresses.WaveRAMStart), 0xab)
	a.WritePort(addresses.WaveRAMEnd, 0xcd)
	test.Equate(t, a.ReadPort(addresses.WaveRAMEnd), 0xcd)
}
