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

package ppu_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/hardware/interrupts"
	"github.com/wrenhold/gopherboy/hardware/memory"
	"github.com/wrenhold/gopherboy/hardware/memory/addresses"
	"github.com/wrenhold/gopherboy/hardware/ppu"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/test"
)

// frameCapture records every pixel the television receives.
type frameCapture struct {
	pixels [television.Height][television.Width]television.Shade
	frames int
}

func (c *frameCapture) NewFrame(_ int) error {
	c.frames++
	return nil
}

func (c *frameCapture) NewScanline(_ int) error {
	return nil
}

func (c *frameCapture) SetPixel(x, y int, shade television.Shade) error {
	c.pixels[y][x] = shade
	return nil
}

func (c *frameCapture) EndRendering() error {
	return nil
}

func prepare() (*ppu.PPU, *memory.Memory, *frameCapture) {
	mem := memory.NewMemory()
	tv := television.NewTelevision()
	scr := &frameCapture{}
	tv.AddPixelRenderer(scr)

	p := ppu.NewPPU(mem, mem, tv)
	mem.RegisterPort(p, addresses.LCDC, addresses.WX)

	// identity palette for predictable pixel values
	p.WritePort(addresses.BGP, 0xe4)
	p.WritePort(addresses.OBP0, 0xe4)

	return p, mem, scr
}

func flag(t *testing.T, mem *memory.Memory, irq interrupts.Interrupt) bool {
	t.Helper()
	v, err := mem.Read(addresses.IF)
	test.ExpectSuccess(t, err)
	return v&uint8(irq) == uint8(irq)
}

func TestModeProgression(t *testing.T) {
	p, _, _ := prepare()

	// scanlines start in OAM scan
	test.Equate(t, p.ReadPort(addresses.STAT)&0x03, 0x02)

	test.ExpectSuccess(t, p.Step(80))
	test.Equate(t, p.ReadPort(addresses.STAT)&0x03, 0x03)

	test.ExpectSuccess(t, p.Step(172))
	test.Equate(t, p.ReadPort(addresses.STAT)&0x03, 0x00)

	test.ExpectSuccess(t, p.Step(204))
	test.Equate(t, p.ReadPort(addresses.STAT)&0x03, 0x02)
	test.Equate(t, p.ReadPort(addresses.LY), 0x01)
}

func TestVBlank(t *testing.T) {
	p, mem, scr := prepare()

	// the power-on state has the vblank flag raised already
	mem.AcknowledgeInterrupt(interrupts.VBlank)

	test.ExpectSuccess(t, p.Step(television.Height*television.DotsPerScanline))
	test.Equate(t, p.ReadPort(addresses.LY), television.Height)
	test.Equate(t, p.ReadPort(addresses.STAT)&0x03, 0x01)
	test.ExpectSuccess(t, flag(t, mem, interrupts.VBlank))
	test.Equate(t, scr.frames, 1)

	// the remaining scanlines wrap back to the top of the frame
	test.ExpectSuccess(t, p.Step(10*television.DotsPerScanline))
	test.Equate(t, p.ReadPort(addresses.LY), 0x00)
	test.Equate(t, p.ReadPort(addresses.STAT)&0x03, 0x02)
}

func TestLYCInterrupt(t *testing.T) {
	p, mem, _ := prepare()

	p.WritePort(addresses.LYC, 0x05)
	p.WritePort(addresses.STAT, 0x40)

	test.ExpectSuccess(t, p.Step(4*television.DotsPerScanline))
	test.ExpectFailure(t, flag(t, mem, interrupts.Stat))

	test.ExpectSuccess(t, p.Step(television.DotsPerScanline))
	test.ExpectSuccess(t, flag(t, mem, interrupts.Stat))

	// the coincidence bit is visible in STAT
	test.Equate(t, p.ReadPort(addresses.STAT)&0x04, 0x04)
}

func TestBackgroundRendering(t *testing.T) {
	p, mem, scr := prepare()

	// tile 1 is solid colour 3
	for i := 0; i < 16; i++ {
		mem.VRAM[0x0010+i] = 0xff
	}

	// top-left tile map entry points at tile 1
	mem.VRAM[0x1800] = 0x01

	test.ExpectSuccess(t, p.Step(television.DotsPerFrame))

	test.Equate(t, scr.pixels[0][0] == television.Shades[3], true)
	test.Equate(t, scr.pixels[7][7] == television.Shades[3], true)
	test.Equate(t, scr.pixels[0][8] == television.Shades[0], true)
	test.Equate(t, scr.pixels[8][0] == television.Shades[0], true)
}

func TestBackgroundScroll(t *testing.T) {
	p, mem, scr := prepare()

	for i := 0; i < 16; i++ {
		mem.VRAM[0x0010+i] = 0xff
	}
	mem.VRAM[0x1800] = 0x01

	// scrolling right by four pixels moves the tile to the left edge
	p.WritePort(addresses.SCX, 0x04)

	test.ExpectSuccess(t, p.Step(television.DotsPerFrame))

	test.Equate(t, scr.pixels[0][3] == television.Shades[3], true)
	test.Equate(t, scr.pixels[0][4] == television.Shades[0], true)
}

func TestSpriteRendering(t *testing.T) {
	p, mem, scr := prepare()

	// sprites are not enabled at power-on
	p.WritePort(addresses.LCDC, 0x93)

	// tile 2 is solid colour 2
	for i := 0; i < 16; i += 2 {
		mem.VRAM[0x0020+i] = 0x00
		mem.VRAM[0x0021+i] = 0xff
	}

	// sprite at the top-left corner of the panel
	mem.OAM[0] = 16
	mem.OAM[1] = 8
	mem.OAM[2] = 0x02
	mem.OAM[3] = 0x00

	test.ExpectSuccess(t, p.Step(television.DotsPerFrame))

	test.Equate(t, scr.pixels[0][0] == television.Shades[2], true)
	test.Equate(t, scr.pixels[7][7] == television.Shades[2], true)
	test.Equate(t, scr.pixels[0][8] == television.Shades[0], true)
}

func TestSpritePriority(t *testing.T) {
	p, mem, scr := prepare()

	p.WritePort(addresses.LCDC, 0x93)

	// two overlapping sprites. the one further left wins
	for i := 0; i < 16; i++ {
		mem.VRAM[0x0010+i] = 0xff // tile 1, colour 3
	}
	for i := 0; i < 16; i += 2 {
		mem.VRAM[0x0020+i] = 0x00
		mem.VRAM[0x0021+i] = 0xff // tile 2, colour 2
	}

	mem.OAM[0] = 16
	mem.OAM[1] = 12
	mem.OAM[2] = 0x01
	mem.OAM[3] = 0x00

	mem.OAM[4] = 16
	mem.OAM[5] = 8
	mem.OAM[6] = 0x02
	mem.OAM[7] = 0x00

	test.ExpectSuccess(t, p.Step(television.DotsPerFrame))

	// the second sprite is further left and covers the overlap
	test.Equate(t, scr.pixels[0][4] == television.Shades[2], true)
	test.Equate(t, scr.pixels[0][7] == television.Shades[2], true)

	// the first sprite shows where the second has ended
	test.Equate(t, scr.pixels[0][8] == television.Shades[3], true)
	test.Equate(t, scr.pixels[0][12] == television.Shades[0], true)
}

func TestLCDOff(t *testing.T) {
	p, _, scr := prepare()

	p.WritePort(addresses.LCDC, 0x00)
	test.ExpectSuccess(t, p.Step(television.DotsPerFrame))

	test.Equate(t, p.ReadPort(addresses.LY), 0x00)
	test.Equate(t, scr.frames, 0)
}
