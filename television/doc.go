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

// Package television sits between the emulated hardware and the
// presentation layer. The Game Boy's LCD is a substantially simpler device
// than a real television: a fixed 160x144 panel refreshed at a fixed rate.
// Even so, the hardware does not present anything itself. Instead,
// implementations of the PixelRenderer and AudioMixer interfaces are added
// to the Television and receive pixels and sound as the PPU and APU produce
// them.
//
// More than one renderer/mixer can be attached at once. The SDL window and
// the frame digester used by the regression system are both
// PixelRenderers.
package television
