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

// Package interrupts defines the five interrupt sources of the Game Boy.
// The bit values are shared by the IE (0xffff) and IF (0xff0f) registers.
// When more than one interrupt is both enabled and requested the one with
// the lowest bit value wins.
package interrupts

// Interrupt identifies one of the five interrupt sources by its bit in the
// IE and IF registers.
type Interrupt uint8

// List of interrupt sources, in priority order.
const (
	VBlank Interrupt = 0x01
	Stat   Interrupt = 0x02
	Timer  Interrupt = 0x04
	Serial Interrupt = 0x08
	Joypad Interrupt = 0x10
)

// All the bits that carry interrupt information.
const Mask = 0x1f

// Vector returns the address the CPU jumps to when servicing the
// interrupt.
func (irq Interrupt) Vector() uint16 {
	switch irq {
	case VBlank:
		return 0x0040
	case Stat:
		return 0x0048
	case Timer:
		return 0x0050
	case Serial:
		return 0x0058
	case Joypad:
		return 0x0060
	}
	return 0x0000
}

func (irq Interrupt) String() string {
	switch irq {
	case VBlank:
		return "VBLANK"
	case Stat:
		return "STAT"
	case Timer:
		return "TIMER"
	case Serial:
		return "SERIAL"
	case Joypad:
		return "JOYPAD"
	}
	return "unknown"
}
