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

package ppu

import (
	"sort"

	"github.com/wrenhold/gopherboy/television"
)

// sprite attribute byte bits.
const (
	attrPalette  = 0x10
	attrFlipX    = 0x20
	attrFlipY    = 0x40
	attrPriority = 0x80
)

// the most sprites the chip can show on one scanline.
const maxSpritesPerLine = 10

// renderScanline draws the scanline LY points at into the composition
// buffer and pushes it to the television.
func (ppu *PPU) renderScanline() error {
	for x := 0; x < television.Width; x++ {
		ppu.pixels[x] = 0x00
		ppu.bgRaw[x] = 0x00
	}

	if ppu.lcdc&lcdcBGEnable == lcdcBGEnable {
		ppu.renderBackground()
		ppu.renderWindow()
	}
	if ppu.lcdc&lcdcSpriteEnable == lcdcSpriteEnable {
		ppu.renderSprites()
	}

	y := int(ppu.ly)
	for x := 0; x < television.Width; x++ {
		if err := ppu.tv.SetPixel(x, y, television.Shades[ppu.pixels[x]]); err != nil {
			return err
		}
	}

	return nil
}

// tileRow reads one row of a tile from VRAM and decodes the bitplanes into
// eight pixel values.
func (ppu *PPU) tileRow(tileAddr uint16, row uint16) [8]uint8 {
	lo := ppu.mem.VRAM[(tileAddr+row*2)&0x1fff]
	hi := ppu.mem.VRAM[(tileAddr+row*2+1)&0x1fff]

	var px [8]uint8
	for b := 0; b < 8; b++ {
		shift := uint(7 - b)
		px[b] = (lo>>shift)&0x01 | ((hi>>shift)&0x01)<<1
	}
	return px
}

// tileAddress resolves a tile number from a tile map into a VRAM address,
// honouring the signed addressing mode selected by LCDC.
func (ppu *PPU) tileAddress(tileNum uint8) uint16 {
	if ppu.lcdc&lcdcTileData == lcdcTileData {
		return 0x0000 + uint16(tileNum)*16
	}
	return uint16(0x1000 + int(int8(tileNum))*16)
}

func (ppu *PPU) renderBackground() {
	mapBase := uint16(0x1800)
	if ppu.lcdc&lcdcBGTileMap == lcdcBGTileMap {
		mapBase = 0x1c00
	}

	y := uint16(ppu.ly+ppu.scy) & 0xff
	tileRow := y >> 3

	for x := 0; x < television.Width; x++ {
		bx := uint16(uint8(x)+ppu.scx) & 0xff
		tileCol := bx >> 3

		tileNum := ppu.mem.VRAM[mapBase+tileRow*32+tileCol]
		px := ppu.tileRow(ppu.tileAddress(tileNum), y&0x07)

		v := px[bx&0x07]
		ppu.bgRaw[x] = v
		ppu.pixels[x] = ppu.bgp >> (v * 2) & 0x03
	}
}

func (ppu *PPU) renderWindow() {
	if ppu.lcdc&lcdcWindowEnable == 0x00 {
		return
	}
	if ppu.ly < ppu.wy || ppu.wx > 166 {
		return
	}

	mapBase := uint16(0x1800)
	if ppu.lcdc&lcdcWindowTileMap == lcdcWindowTileMap {
		mapBase = 0x1c00
	}

	y := uint16(ppu.windowLine)
	tileRow := y >> 3

	startX := int(ppu.wx) - 7
	visible := false

	for x := startX; x < television.Width; x++ {
		if x < 0 {
			continue
		}
		visible = true

		wx := uint16(x - startX)
		tileCol := wx >> 3

		tileNum := ppu.mem.VRAM[mapBase+tileRow*32+tileCol]
		px := ppu.tileRow(ppu.tileAddress(tileNum), y&0x07)

		v := px[wx&0x07]
		ppu.bgRaw[x] = v
		ppu.pixels[x] = ppu.bgp >> (v * 2) & 0x03
	}

	if visible {
		ppu.windowLine++
	}
}

// sprite is one OAM entry, decoded.
type sprite struct {
	y    int
	x    int
	tile uint8
	attr uint8

	// position in OAM, for stable ordering of sprites with equal x
	oamIdx int
}

func (ppu *PPU) renderSprites() {
	height := 8
	if ppu.lcdc&lcdcSpriteSize == lcdcSpriteSize {
		height = 16
	}

	// the OAM scan selects the first ten sprites that touch the scanline
	y := int(ppu.ly)
	selected := make([]sprite, 0, maxSpritesPerLine)
	for i := 0; i < len(ppu.mem.OAM) && len(selected) < maxSpritesPerLine; i += 4 {
		spr := sprite{
			y:      int(ppu.mem.OAM[i]) - 16,
			x:      int(ppu.mem.OAM[i+1]) - 8,
			tile:   ppu.mem.OAM[i+2],
			attr:   ppu.mem.OAM[i+3],
			oamIdx: i,
		}
		if y >= spr.y && y < spr.y+height {
			selected = append(selected, spr)
		}
	}

	// a sprite further to the left wins any overlap, with OAM order
	// breaking ties. drawing in reverse priority order gets the same
	// result with no per-pixel bookkeeping
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].x != selected[j].x {
			return selected[i].x > selected[j].x
		}
		return selected[i].oamIdx > selected[j].oamIdx
	})

	for _, spr := range selected {
		row := y - spr.y
		if spr.attr&attrFlipY == attrFlipY {
			row = height - 1 - row
		}

		tile := spr.tile
		if height == 16 {
			// the tall sprite mode ignores the lowest bit of the tile
			// number
			tile &= 0xfe
		}

		px := ppu.tileRow(uint16(tile)*16, uint16(row))

		palette := ppu.obp0
		if spr.attr&attrPalette == attrPalette {
			palette = ppu.obp1
		}

		for b := 0; b < 8; b++ {
			x := spr.x + b
			if x < 0 || x >= television.Width {
				continue
			}

			bit := b
			if spr.attr&attrFlipX == attrFlipX {
				bit = 7 - b
			}

			v := px[bit]
			if v == 0x00 {
				// sprite colour zero is transparent
				continue
			}
			if spr.attr&attrPriority == attrPriority && ppu.bgRaw[x] != 0x00 {
				// the sprite hides behind any non-zero background pixel
				continue
			}

			ppu.pixels[x] = palette >> (v * 2) & 0x03
		}
	}
}
