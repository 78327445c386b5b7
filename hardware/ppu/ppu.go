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

// Package ppu implements the video chip. The chip walks every scanline
// through the same sequence of modes: OAM scan, pixel drawing and then the
// horizontal blank, with the ten lines of vertical blank closing off the
// frame. Pixels are rendered a whole scanline at a time at the point the
// drawing mode ends, which is accurate enough for anything that doesn't
// change the registers mid-scanline.
package ppu

import (
	"fmt"

	"github.com/wrenhold/gopherboy/hardware/bus"
	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/television"
)

// the mode field in the lower two bits of the STAT register.
const (
	modeHBlank = 0x00
	modeVBlank = 0x01
	modeOAM    = 0x02
	modeDraw   = 0x03
)

// dots into the scanline at which the mode changes. the length of the
// drawing mode really depends on the scanline content but the fixed
// midpoint serves a scanline based renderer well enough.
const (
	oamDots  = 80
	drawDots = 172
)

// LCDC register bits.
const (
	lcdcBGEnable      = 0x01
	lcdcSpriteEnable  = 0x02
	lcdcSpriteSize    = 0x04
	lcdcBGTileMap     = 0x08
	lcdcTileData      = 0x10
	lcdcWindowEnable  = 0x20
	lcdcWindowTileMap = 0x40
	lcdcEnable        = 0x80
)

// PPU implements the bus.PortDevice interface for the video registers.
type PPU struct {
	mem *memory.Memory
	irq bus.InterruptBus
	tv  *television.Television

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	// dot position within the current scanline
	dot int

	// the window keeps its own scanline counter, only advancing on lines
	// where it was visible
	windowLine int

	// the STAT interrupt fires on the rising edge of the combined
	// interrupt sources, so the previous state must be remembered
	statSignal bool

	// scanline composition buffer. values are shades already translated
	// through the palette registers, with the raw BG pixel value kept for
	// sprite priority
	pixels [television.Width]uint8
	bgRaw  [television.Width]uint8
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(mem *memory.Memory, irq bus.InterruptBus, tv *television.Television) *PPU {
	ppu := &PPU{mem: mem, irq: irq, tv: tv}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("LY=%d mode=%d LCDC=%02x STAT=%02x", ppu.ly, ppu.mode(), ppu.lcdc, ppu.stat)
}

// Reset the video chip to its power-on state.
func (ppu *PPU) Reset() {
	ppu.lcdc = 0x91
	ppu.stat = 0x86
	ppu.scy = 0x00
	ppu.scx = 0x00
	ppu.ly = 0x00
	ppu.lyc = 0x00
	ppu.bgp = 0xfc
	ppu.obp0 = 0x00
	ppu.obp1 = 0x00
	ppu.wy = 0x00
	ppu.wx = 0x00
	ppu.dot = 0
	ppu.windowLine = 0
	ppu.statSignal = false
}

func (ppu *PPU) mode() uint8 {
	return ppu.stat & 0x03
}

func (ppu *PPU) setMode(mode uint8) {
	ppu.stat = ppu.stat&0xfc | mode
}

// Step the video chip the given number of clock ticks.
func (ppu *PPU) Step(dots int) error {
	if ppu.lcdc&lcdcEnable == 0x00 {
		return nil
	}

	for i := 0; i < dots; i++ {
		if err := ppu.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (ppu *PPU) tick() error {
	ppu.dot++

	if ppu.dot == television.DotsPerScanline {
		ppu.dot = 0
		ppu.ly++

		switch {
		case ppu.ly == television.Height:
			ppu.setMode(modeVBlank)
			ppu.irq.RequestInterrupt(interrupts.VBlank)
			if err := ppu.tv.NewFrame(); err != nil {
				return err
			}

		case ppu.ly == television.ScanlinesTotal:
			ppu.ly = 0
			ppu.windowLine = 0
			ppu.setMode(modeOAM)

		case ppu.ly < television.Height:
			ppu.setMode(modeOAM)
		}

		if ppu.ly < television.Height {
			if err := ppu.tv.NewScanline(int(ppu.ly)); err != nil {
				return err
			}
		}
	} else if ppu.ly < television.Height {
		switch ppu.dot {
		case oamDots:
			ppu.setMode(modeDraw)
		case oamDots + drawDots:
			ppu.setMode(modeHBlank)
			if err := ppu.renderScanline(); err != nil {
				return err
			}
		}
	}

	ppu.checkSTATInterrupt()

	return nil
}

// checkSTATInterrupt combines the enabled interrupt sources and raises the
// STAT interrupt on a rising edge.
func (ppu *PPU) checkSTATInterrupt() {
	coincidence := ppu.ly == ppu.lyc
	if coincidence {
		ppu.stat |= 0x04
	} else {
		ppu.stat &= ^uint8(0x04)
	}

	signal := coincidence && ppu.stat&0x40 == 0x40

	switch ppu.mode() {
	case modeHBlank:
		signal = signal || ppu.stat&0x08 == 0x08
	case modeVBlank:
		signal = signal || ppu.stat&0x10 == 0x10
	case modeOAM:
		signal = signal || ppu.stat&0x20 == 0x20
	}

	if signal && !ppu.statSignal {
		ppu.irq.RequestInterrupt(interrupts.Stat)
	}
	ppu.statSignal = signal
}

// ReadPort implements the bus.PortDevice interface.
func (ppu *PPU) ReadPort(addr uint16) uint8 {
	switch addr {
	case addresses.LCDC:
		return ppu.lcdc
	case addresses.STAT:
		return ppu.stat | 0x80
	case addresses.SCY:
		return ppu.scy
	case addresses.SCX:
		return ppu.scx
	case addresses.LY:
		return ppu.ly
	case addresses.LYC:
		return ppu.lyc
	case addresses.BGP:
		return ppu.bgp
	case addresses.OBP0:
		return ppu.obp0
	case addresses.OBP1:
		return ppu.obp1
	case addresses.WY:
		return ppu.wy
	case addresses.WX:
		return ppu.wx
	}
	return 0xff
}

// WritePort implements the bus.PortDevice interface.
func (ppu *PPU) WritePort(addr uint16, data uint8) {
	switch addr {
	case addresses.LCDC:
		on := ppu.lcdc&lcdcEnable == lcdcEnable
		ppu.lcdc = data
		if on && data&lcdcEnable == 0x00 {
			// switching the panel off stops the chip and resets its
			// position
			ppu.ly = 0
			ppu.dot = 0
			ppu.windowLine = 0
			ppu.setMode(modeHBlank)
		}
	case addresses.STAT:
		// mode and coincidence bits are read only
		ppu.stat = ppu.stat&0x07 | data&0x78
	case addresses.SCY:
		ppu.scy = data
	case addresses.SCX:
		ppu.scx = data
	case addresses.LY:
		// read only
	case addresses.LYC:
		ppu.lyc = data
	case addresses.BGP:
		ppu.bgp = data
	case addresses.OBP0:
		ppu.obp0 = data
	case addresses.OBP1:
		ppu.obp1 = data
	case addresses.WY:
		ppu.wy = data
	case addresses.WX:
		ppu.wx = data
	}
}
