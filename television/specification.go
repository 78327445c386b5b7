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

package television

// Dimensions and timings of the DMG LCD panel. Unlike a real television
// there is only one specification and it never changes at runtime.
const (
	// visible panel size in pixels.
	Width  = 160
	Height = 144

	// scanlines in a complete frame, including the ten vblank lines.
	ScanlinesTotal = 154

	// dots (4194304Hz clock ticks) in every scanline and frame.
	DotsPerScanline = 456
	DotsPerFrame    = DotsPerScanline * ScanlinesTotal // 70224

	// the refresh rate that follows from the dot clock.
	FramesPerSecond = 59.7275

	// rate at which the APU delivers samples to audio mixers.
	SampleFreq = 44100
)

// Shade is a single DMG colour. The palette registers select one of four
// shades for every pixel.
type Shade struct {
	Red   byte
	Green byte
	Blue  byte
}

// Shades is the palette used to translate 2bpp pixel values into RGB. The
// values follow the slightly green tint of the original panel.
var Shades = [4]Shade{
	{Red: 0xe0, Green: 0xf8, Blue: 0xd0},
	{Red: 0x88, Green: 0xc0, Blue: 0x70},
	{Red: 0x34, Green: 0x68, Blue: 0x56},
	{Red: 0x08, Green: 0x18, Blue: 0x20},
}
