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

package cartridge_test

import (
	"os"
	"testing"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
	"github.com/wrenhold/gopherboy/test"
)

// makeROM builds a well-formed cartridge image. the first byte of every
// bank is the bank number so that tests can see which bank a read was
// served from.
func makeROM(numBanks int, cartType uint8, ramSize uint8) []byte {
	data := make([]byte, numBanks*0x4000)
	for b := 0; b < numBanks; b++ {
		data[b*0x4000] = uint8(b)
	}

	copy(data[cartridge.LogoStart:], cartridge.Logo[:])
	copy(data[cartridge.TitleStart:], "TEST")
	data[cartridge.CartridgeTypeAddr] = cartType

	romSize := uint8(0)
	for 0x8000<<romSize < len(data) {
		romSize++
	}
	data[cartridge.ROMSizeAddr] = romSize
	data[cartridge.RAMSizeAddr] = ramSize

	data[cartridge.HeaderChecksumAddr] = cartridge.HeaderChecksum(data)
	global := cartridge.GlobalChecksum(data)
	data[cartridge.GlobalChecksumStart] = uint8(global >> 8)
	data[cartridge.GlobalChecksumStart+1] = uint8(global)

	return data
}

func attach(t *testing.T, data []byte) *cartridge.Cartridge {
	t.Helper()

	// loader data is pre-filled so the file is never opened
	ld, err := cartridgeloader.NewLoader("test.gb")
	test.ExpectSuccess(t, err)
	ld.Data = data

	cart := cartridge.NewCartridge()
	test.ExpectSuccess(t, cart.Attach(ld))

	return cart
}

func TestHeader(t *testing.T) {
	data := makeROM(2, 0x00, 0x00)
	hdr, err := cartridge.ParseHeader(data)
	test.ExpectSuccess(t, err)

	test.Equate(t, hdr.Title, "TEST")
	test.ExpectSuccess(t, hdr.ValidLogo)
	test.ExpectSuccess(t, hdr.ValidHeaderChecksum)
	test.ExpectSuccess(t, hdr.ValidGlobalChecksum)
	test.Equate(t, hdr.ROMSizeBytes(), 0x8000)

	// corrupt a title byte and the header checksum no longer matches
	data[cartridge.TitleStart] = 'X'
	hdr, err = cartridge.ParseHeader(data)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, hdr.ValidHeaderChecksum)
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.ExpectSuccess(t, cart.IsEjected())
	test.Equate(t, cart.Read(0x0100), 0xff)
}

func TestROM(t *testing.T) {
	cart := attach(t, makeROM(2, 0x00, 0x00))
	test.Equate(t, cart.ID(), "ROM")
	test.Equate(t, cart.NumBanks(), 2)
	test.Equate(t, cart.Read(0x0000), 0x00)
	test.Equate(t, cart.Read(0x4000), 0x01)

	// no RAM on this cartridge type
	test.Equate(t, cart.Read(0xa000), 0xff)
}

func TestMBC1Banking(t *testing.T) {
	cart := attach(t, makeROM(8, 0x01, 0x00))
	test.Equate(t, cart.ID(), "MBC1")

	// power-on state selects bank 1
	test.Equate(t, cart.CurrentBank(), 1)
	test.Equate(t, cart.Read(0x4000), 0x01)

	cart.Write(0x2000, 0x05)
	test.Equate(t, cart.Read(0x4000), 0x05)

	// writing zero to the bank register selects bank 1
	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 0x01)

	// bank numbers wrap to the size of the ROM
	cart.Write(0x2000, 0x0d)
	test.Equate(t, cart.Read(0x4000), 0x05)
}

func TestMBC1RAM(t *testing.T) {
	cart := attach(t, makeROM(2, 0x03, 0x02))

	// RAM does not respond until enabled
	cart.Write(0xa000, 0x64)
	test.Equate(t, cart.Read(0xa000), 0xff)

	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x64)
	test.Equate(t, cart.Read(0xa000), 0x64)

	cart.Write(0x0000, 0x00)
	test.Equate(t, cart.Read(0xa000), 0xff)

	// content survives the disable
	cart.Write(0x0000, 0x0a)
	test.Equate(t, cart.Read(0xa000), 0x64)
}

func TestMBC2(t *testing.T) {
	cart := attach(t, makeROM(4, 0x06, 0x00))
	test.Equate(t, cart.ID(), "MBC2")

	// bit 8 clear means RAM enable, bit 8 set means bank select
	cart.Write(0x0100, 0x02)
	test.Equate(t, cart.Read(0x4000), 0x02)

	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x35)

	// only the lower nibble is stored. upper bits read back set
	test.Equate(t, cart.Read(0xa000), 0xf5)

	// the built-in RAM repeats through the window
	test.Equate(t, cart.Read(0xa200), 0xf5)
}

func TestMBC3(t *testing.T) {
	cart := attach(t, makeROM(8, 0x13, 0x03))
	test.Equate(t, cart.ID(), "MBC3")

	cart.Write(0x2000, 0x06)
	test.Equate(t, cart.Read(0x4000), 0x06)

	// RAM banking
	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x00)
	cart.Write(0xa000, 0x11)
	cart.Write(0x4000, 0x01)
	cart.Write(0xa000, 0x22)
	cart.Write(0x4000, 0x00)
	test.Equate(t, cart.Read(0xa000), 0x11)

	// latching the clock makes the rtc registers readable. a freshly
	// powered clock must show less than a minute elapsed
	cart.Write(0x6000, 0x00)
	cart.Write(0x6000, 0x01)
	cart.Write(0x4000, 0x09)
	test.Equate(t, cart.Read(0xa000), 0x00)
}

// useTempResourcePath points the resource path at a fresh location for
// the duration of the test.
func useTempResourcePath(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	test.ExpectSuccess(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	test.ExpectSuccess(t, os.Chdir(t.TempDir()))
	test.ExpectSuccess(t, os.Mkdir(".gopherboy", 0700))
}

func TestBatterySave(t *testing.T) {
	useTempResourcePath(t)

	// MBC1 with battery-backed RAM
	data := makeROM(2, 0x03, 0x02)

	cart := attach(t, data)
	test.ExpectSuccess(t, cart.HasBattery())

	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x5a)
	cart.Write(0xa123, 0xa5)

	// ejecting writes the save file
	cart.Eject()

	// a fresh attach of the same ROM picks the save up
	cart = attach(t, data)
	cart.Write(0x0000, 0x0a)
	test.Equate(t, cart.Read(0xa000), 0x5a)
	test.Equate(t, cart.Read(0xa123), 0xa5)
}

func TestBatterySaveKeyedToROM(t *testing.T) {
	useTempResourcePath(t)

	data := makeROM(2, 0x03, 0x02)

	cart := attach(t, data)
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x77)
	test.ExpectSuccess(t, cart.SaveRAM())

	// a different ROM with the same filename must not see the save
	other := makeROM(4, 0x03, 0x02)
	cart = attach(t, other)
	cart.Write(0x0000, 0x0a)
	test.Equate(t, cart.Read(0xa000), 0x00)
}

func TestNoBatteryNoSave(t *testing.T) {
	useTempResourcePath(t)

	// MBC1 with RAM but no battery
	data := makeROM(2, 0x02, 0x02)

	cart := attach(t, data)
	test.ExpectFailure(t, cart.HasBattery())

	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x12)
	cart.Eject()

	cart = attach(t, data)
	cart.Write(0x0000, 0x0a)
	test.Equate(t, cart.Read(0xa000), 0x00)
}

func TestMBC5(t *testing.T) {
	cart := attach(t, makeROM(8, 0x19, 0x00))
	test.Equate(t, cart.ID(), "MBC5")

	cart.Write(0x2000, 0x07)
	test.Equate(t, cart.Read(0x4000), 0x07)

	// unlike the other mappers, bank zero can be switched in
	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 0x00)
}
