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

package hardware_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/hardware"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/test"
)

// buildROM creates a minimal but valid cartridge with the supplied program
// at address 0x0150, reached through a jump at the entry point.
func buildROM(program ...uint8) []byte {
	data := make([]byte, 0x8000)

	// entry point: JP $0150
	data[0x0100] = 0xc3
	data[0x0101] = 0x50
	data[0x0102] = 0x01

	copy(data[0x0150:], program)

	copy(data[cartridge.LogoStart:], cartridge.Logo[:])
	copy(data[cartridge.TitleStart:], "TEST")
	data[cartridge.HeaderChecksumAddr] = cartridge.HeaderChecksum(data)

	return data
}

func attach(t *testing.T, dmg *hardware.DMG, data []byte) {
	t.Helper()
	ld, err := cartridgeloader.NewLoader("test.gb")
	test.ExpectSuccess(t, err)
	ld.Data = data
	test.ExpectSuccess(t, dmg.AttachCartridge(ld))
}

func TestPowerOnState(t *testing.T) {
	dmg := hardware.NewDMG(television.NewTelevision())
	attach(t, dmg, buildROM(0x00))

	// register state as left by the boot sequence
	test.Equate(t, dmg.CPU.PC.Value(), 0x0100)
	test.Equate(t, dmg.CPU.SP.Value(), 0xfffe)
	test.Equate(t, dmg.CPU.A.Value(), 0x01)
	test.Equate(t, dmg.CPU.BC.Value(), 0x0013)
	test.Equate(t, dmg.CPU.DE.Value(), 0x00d8)
	test.Equate(t, dmg.CPU.HL.Value(), 0x014d)
}

func TestStep(t *testing.T) {
	dmg := hardware.NewDMG(television.NewTelevision())
	attach(t, dmg, buildROM(
		0x3e, 0x42, // LD A,$42
		0xea, 0x00, 0xc0, // LD ($c000),A
	))

	// the entry point jump
	test.ExpectSuccess(t, dmg.Step())
	test.Equate(t, dmg.CPU.PC.Value(), 0x0150)

	test.ExpectSuccess(t, dmg.Step())
	test.ExpectSuccess(t, dmg.Step())
	v, err := dmg.Mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, 0x42)
}

func TestRunForFrameCount(t *testing.T) {
	tv := television.NewTelevision()
	dmg := hardware.NewDMG(tv)
	attach(t, dmg, buildROM(
		0x18, 0xfe, // JR $ ; spin
	))

	test.ExpectSuccess(t, dmg.RunForFrameCount(2, nil))
	test.Equate(t, tv.Frame(), 2)
}

func TestRunForFrameCountStall(t *testing.T) {
	tv := television.NewTelevision()
	dmg := hardware.NewDMG(tv)

	// with the lcd switched off the television sees no frames and the run
	// must give up rather than spin forever
	attach(t, dmg, buildROM(
		0x3e, 0x00, // LD A,$00
		0xe0, 0x40, // LDH ($40),A ; lcd off
		0x18, 0xfe, // JR $
	))

	err := dmg.RunForFrameCount(1, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.FrameStall))
}

func TestVBlankInterruptDelivery(t *testing.T) {
	dmg := hardware.NewDMG(television.NewTelevision())

	// enable the vblank interrupt and wait for it
	data := buildROM(
		0x3e, 0x01, // LD A,$01
		0xe0, 0xff, // LDH ($ff),A   ; IE = vblank
		0x3e, 0x00, // LD A,$00
		0xe0, 0x0f, // LDH ($0f),A   ; discard stale requests
		0xfb,       // EI
		0x76,       // HALT
		0x18, 0xfe, // JR $
	)

	// the handler at the vblank vector writes a marker to WRAM and spins
	copy(data[0x0040:], []uint8{
		0x3e, 0xaa, // LD A,$aa
		0xea, 0x00, 0xc0, // LD ($c000),A
		0x18, 0xfe, // JR $
	})
	attach(t, dmg, data)

	test.ExpectSuccess(t, dmg.RunForFrameCount(2, nil))

	v, err := dmg.Mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, 0xaa)
}
