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

// Package addresses names the hardware registers and memory regions of the
// DMG address space. Every component that responds to a register address
// refers to the register by the name defined here rather than by a raw
// number.
package addresses

// Memory region boundaries. Each region is inclusive of the Start address
// and exclusive of nothing; the End addresses are the last byte of the
// region.
const (
	CartridgeStart uint16 = 0x0000
	CartridgeEnd   uint16 = 0x7fff

	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9fff

	ExternalRAMStart uint16 = 0xa000
	ExternalRAMEnd   uint16 = 0xbfff

	WRAMStart uint16 = 0xc000
	WRAMEnd   uint16 = 0xdfff

	// echo RAM mirrors WRAM. reads and writes are forwarded
	EchoStart uint16 = 0xe000
	EchoEnd   uint16 = 0xfdff

	OAMStart uint16 = 0xfe00
	OAMEnd   uint16 = 0xfe9f

	// the unusable region reads as 0xff and ignores writes
	UnusableStart uint16 = 0xfea0
	UnusableEnd   uint16 = 0xfeff

	IOStart uint16 = 0xff00
	IOEnd   uint16 = 0xff7f

	HRAMStart uint16 = 0xff80
	HRAMEnd   uint16 = 0xfffe
)

// Hardware registers in the IO region and the two interrupt registers.
const (
	JOYP uint16 = 0xff00

	SB uint16 = 0xff01
	SC uint16 = 0xff02

	DIV  uint16 = 0xff04
	TIMA uint16 = 0xff05
	TMA  uint16 = 0xff06
	TAC  uint16 = 0xff07

	IF uint16 = 0xff0f

	NR10 uint16 = 0xff10
	NR11 uint16 = 0xff11
	NR12 uint16 = 0xff12
	NR13 uint16 = 0xff13
	NR14 uint16 = 0xff14
	NR21 uint16 = 0xff16
	NR22 uint16 = 0xff17
	NR23 uint16 = 0xff18
	NR24 uint16 = 0xff19
	NR30 uint16 = 0xff1a
	NR31 uint16 = 0xff1b
	NR32 uint16 = 0xff1c
	NR33 uint16 = 0xff1d
	NR34 uint16 = 0xff1e
	NR41 uint16 = 0xff20
	NR42 uint16 = 0xff21
	NR43 uint16 = 0xff22
	NR44 uint16 = 0xff23
	NR50 uint16 = 0xff24
	NR51 uint16 = 0xff25
	NR52 uint16 = 0xff26

	WaveRAMStart uint16 = 0xff30
	WaveRAMEnd   uint16 = 0xff3f

	LCDC uint16 = 0xff40
	STAT uint16 = 0xff41
	SCY  uint16 = 0xff42
	SCX  uint16 = 0xff43
	LY   uint16 = 0xff44
	LYC  uint16 = 0xff45
	DMA  uint16 = 0xff46
	BGP  uint16 = 0xff47
	OBP0 uint16 = 0xff48
	OBP1 uint16 = 0xff49
	WY   uint16 = 0xff4a
	WX   uint16 = 0xff4b

	IE uint16 = 0xffff
)
