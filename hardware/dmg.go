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

// Package hardware assembles the component packages into a working
// console. The DMG type is the console itself; everything else hangs off
// it.
package hardware

import (
	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/hardware/apu"
	"github.com/wrenhold/gopherboy/hardware/cpu"
	"github.com/wrenhold/gopherboy/hardware/memory"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/hardware/peripherals"
	"github.com/wrenhold/gopherboy/hardware/ppu"
	"github.com/wrenhold/gopherboy/hardware/timer"
	"github.com/wrenhold/gopherboy/television"
)

// the number of clock ticks in one machine cycle.
const ticksPerMachineCycle = 4

// DMG is the console. Everything the emulation does happens through an
// instance of this type.
type DMG struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	TV  *television.Television

	PPU    *ppu.PPU
	APU    *apu.APU
	Timer  *timer.Timer
	Joypad *peripherals.Joypad
	Serial *peripherals.Serial
}

// NewDMG creates a new console, attached to the supplied television.
func NewDMG(tv *television.Television) *DMG {
	dmg := &DMG{TV: tv}

	dmg.Mem = memory.NewMemory()
	dmg.CPU = cpu.NewCPU(dmg.Mem)
	dmg.PPU = ppu.NewPPU(dmg.Mem, dmg.Mem, tv)
	dmg.APU = apu.NewAPU(tv)
	dmg.Timer = timer.NewTimer(dmg.Mem)
	dmg.Joypad = peripherals.NewJoypad(dmg.Mem)
	dmg.Serial = peripherals.NewSerial(dmg.Mem)

	dmg.Mem.RegisterPort(dmg.PPU, addresses.LCDC, addresses.WX)
	dmg.Mem.RegisterPort(dmg.APU, addresses.NR10, addresses.WaveRAMEnd)
	dmg.Mem.RegisterPort(dmg.Timer, addresses.DIV, addresses.TAC)
	dmg.Mem.RegisterPort(dmg.Joypad, addresses.JOYP, addresses.JOYP)
	dmg.Mem.RegisterPort(dmg.Serial, addresses.SB, addresses.SC)

	return dmg
}

// AttachCartridge to the console. The console is reset afterwards, leaving
// it ready to run from the cartridge entry point.
func (dmg *DMG) AttachCartridge(ld cartridgeloader.Loader) error {
	if err := dmg.Mem.Cart.Attach(ld); err != nil {
		return err
	}
	return dmg.Reset()
}

// End the emulation. Battery-backed cartridge RAM is written to its save
// file. The console can still be used after End() but anything played
// after that point is not saved.
func (dmg *DMG) End() error {
	return dmg.Mem.Cart.SaveRAM()
}

// Reset the console to its power-on state. The attached cartridge stays
// attached.
func (dmg *DMG) Reset() error {
	dmg.Mem.Reset()
	dmg.CPU.Reset()
	dmg.PPU.Reset()
	dmg.APU.Reset()
	dmg.Timer.Reset()
	dmg.Joypad.Reset()
	dmg.Serial.Reset()
	return dmg.TV.Reset()
}

// machineCycle moves every component other than the CPU along by one
// machine cycle. It is handed to the CPU as the cycle callback so that the
// whole console advances in lockstep with instruction execution.
func (dmg *DMG) machineCycle() error {
	dmg.Timer.Step(ticksPerMachineCycle)
	if err := dmg.PPU.Step(ticksPerMachineCycle); err != nil {
		return err
	}
	return dmg.APU.Step(ticksPerMachineCycle)
}

// Step the console one CPU instruction, including any interrupt dispatch
// that precedes it.
func (dmg *DMG) Step() error {
	cycles, err := dmg.CPU.ServiceInterrupts()
	if err != nil {
		return err
	}
	for i := 0; i < cycles; i++ {
		if err := dmg.machineCycle(); err != nil {
			return err
		}
	}

	return dmg.CPU.ExecuteInstruction(dmg.machineCycle)
}
