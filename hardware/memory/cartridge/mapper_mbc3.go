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

import (
	"fmt"
	"time"
)

// rtc register numbers as written to the RAM bank register.
const (
	rtcSeconds = 0x08
	rtcMinutes = 0x09
	rtcHours   = 0x0a
	rtcDaysLo  = 0x0b
	rtcDaysHi  = 0x0c
)

// mbc3 extends the ROM bank register to 7 bits and adds a battery backed
// real time clock. writing 0x00 then 0x01 to the latch register copies the
// running clock into the latched registers, which is what the RAM window
// exposes.
type mbc3 struct {
	data []byte
	ram  []uint8

	ramEnabled bool
	bank       uint8

	// values 0x00 to 0x03 select a RAM bank. 0x08 to 0x0c select an rtc
	// register
	ramBank uint8

	// the moment the clock registers describe zero elapsed time
	rtcBase time.Time

	// latched copy of the clock registers. index by rtc register number
	// minus rtcSeconds
	rtcLatched [5]uint8

	// value of the last write to the latch register
	latch uint8
}

func newMBC3(data []byte, ramSize int) *mbc3 {
	cart := &mbc3{data: data, rtcBase: time.Now()}
	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}
	cart.Reset()
	return cart
}

func (cart *mbc3) String() string {
	return fmt.Sprintf("%s: bank %d of %d", cart.ID(), cart.CurrentBank(), cart.NumBanks())
}

func (cart *mbc3) ID() string {
	return "MBC3"
}

func (cart *mbc3) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return readBank(cart.data, 0, addr)

	case addr < 0x8000:
		return readBank(cart.data, cart.CurrentBank(), addr&0x3fff)

	default:
		if !cart.ramEnabled {
			return 0xff
		}
		if cart.ramBank >= rtcSeconds && cart.ramBank <= rtcDaysHi {
			return cart.rtcLatched[cart.ramBank-rtcSeconds]
		}
		if cart.ram == nil {
			return 0xff
		}
		return cart.ram[cart.ramIndex(addr)]
	}
}

func (cart *mbc3) Write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == ramEnableValue

	case addr < 0x4000:
		cart.bank = data & 0x7f

	case addr < 0x6000:
		cart.ramBank = data & 0x0f

	case addr < 0x8000:
		if cart.latch == 0x00 && data == 0x01 {
			cart.latchClock()
		}
		cart.latch = data

	default:
		if !cart.ramEnabled {
			return
		}
		if cart.ramBank >= rtcSeconds && cart.ramBank <= rtcDaysHi {
			// writing the clock moves the base time so that the running
			// clock reads back the written value. supporting the seconds
			// register is enough for the games that use it
			if cart.ramBank == rtcSeconds {
				elapsed := time.Since(cart.rtcBase)
				secs := elapsed - (elapsed % time.Minute) + time.Duration(data%60)*time.Second
				cart.rtcBase = time.Now().Add(-secs)
			}
			cart.rtcLatched[cart.ramBank-rtcSeconds] = data
			return
		}
		if cart.ram != nil {
			cart.ram[cart.ramIndex(addr)] = data
		}
	}
}

func (cart *mbc3) latchClock() {
	elapsed := time.Since(cart.rtcBase)
	days := int(elapsed.Hours()) / 24

	cart.rtcLatched[0] = uint8(int(elapsed.Seconds()) % 60)
	cart.rtcLatched[1] = uint8(int(elapsed.Minutes()) % 60)
	cart.rtcLatched[2] = uint8(int(elapsed.Hours()) % 24)
	cart.rtcLatched[3] = uint8(days)
	cart.rtcLatched[4] = uint8(days>>8) & 0x01
	if days > 0x1ff {
		// day counter carry
		cart.rtcLatched[4] |= 0x80
	}
}

func (cart *mbc3) ramIndex(addr uint16) int {
	return (int(cart.ramBank&0x03)*0x2000 + int(addr&0x1fff)) % len(cart.ram)
}

func (cart *mbc3) Reset() {
	cart.ramEnabled = false
	cart.bank = 0x01
	cart.ramBank = 0x00
	cart.latch = 0xff
}

func (cart *mbc3) NumBanks() int {
	return numBanks(cart.data)
}

func (cart *mbc3) CurrentBank() int {
	bank := int(cart.bank)
	if bank == 0 {
		bank = 1
	}
	return bank % cart.NumBanks()
}

func (cart *mbc3) RAM() []uint8 {
	return cart.ram
}
