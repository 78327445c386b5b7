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

// Package cartridge fully implements the cartridge end of the memory bus.
// The largest part of the package is the set of mapper implementations,
// one for each banking chip found in commercial cartridges. The correct
// mapper is selected automatically from the cartridge header when the
// cartridge is attached.
package cartridge

import (
	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/logger"
)

// Error patterns for the cartridge package.
const (
	HeaderError       = "cartridge: %v"
	UnsupportedMapper = "cartridge: unsupported cartridge type (%#02x)"
)

// Cartridge is the cartridge deck. It decodes the header of the attached
// ROM and hands bus access over to the appropriate mapper.
type Cartridge struct {
	Filename  string
	ShortName string
	Hash      string

	Header Header

	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is in an unattached state until Attach() is called;
// reads in that state return 0xff.
func NewCartridge() *Cartridge {
	return &Cartridge{mapper: newEjected()}
}

func (cart *Cartridge) String() string {
	return cart.mapper.String()
}

// ID returns the family name of the attached mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Attach loads the data referenced by the loader and selects a mapper
// based on the cartridge type byte in the header.
func (cart *Cartridge) Attach(ld cartridgeloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	cart.Filename = ld.Filename
	cart.ShortName = ld.ShortName()
	cart.Hash = ld.Hash

	cart.Header, err = ParseHeader(ld.Data)
	if err != nil {
		return err
	}

	if !cart.Header.ValidLogo {
		logger.Log("cartridge", "logo mismatch. the boot sequence would reject this cartridge")
	}
	if !cart.Header.ValidHeaderChecksum {
		logger.Log("cartridge", "bad header checksum. the boot sequence would reject this cartridge")
	}

	ramSize := cart.Header.RAMSizeBytes()

	switch cart.Header.CartridgeType {
	case 0x00:
		cart.mapper = newROM(ld.Data, false)
	case 0x01, 0x02, 0x03:
		cart.mapper = newMBC1(ld.Data, ramSize)
	case 0x05, 0x06:
		cart.mapper = newMBC2(ld.Data)
	case 0x08, 0x09:
		cart.mapper = newROM(ld.Data, true)
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		cart.mapper = newMBC3(ld.Data, ramSize)
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		cart.mapper = newMBC5(ld.Data, ramSize)
	default:
		return curated.Errorf(UnsupportedMapper, cart.Header.CartridgeType)
	}

	if cart.HasBattery() {
		cart.loadRAM()
	}

	logger.Logf("cartridge", "%s attached (%s)", cart.ShortName, cart.mapper.ID())

	return nil
}

// Eject removes the attached cartridge data. Battery-backed RAM is
// written out before the data is released.
func (cart *Cartridge) Eject() {
	if err := cart.SaveRAM(); err != nil {
		logger.Log("cartridge", err.Error())
	}
	cart.Filename = ""
	cart.ShortName = "ejected"
	cart.Hash = ""
	cart.Header = Header{}
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge data is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Read a byte from the cartridge address space.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.Read(addr)
}

// Write a byte to the cartridge address space. Most writes land in a
// mapper register rather than in storage.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}

// Reset the mapper to its power-on state.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// CurrentBank returns the bank currently switched into the upper window.
func (cart *Cartridge) CurrentBank() int {
	return cart.mapper.CurrentBank()
}

// RAM returns the cartridge RAM, or nil if the cartridge has none.
func (cart *Cartridge) RAM() []uint8 {
	return cart.mapper.RAM()
}

// ejected is the mapper in place when there is no cartridge attached.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) String() string {
	return "ejected"
}

func (cart *ejected) ID() string {
	return "-"
}

func (cart *ejected) Read(_ uint16) uint8 {
	return 0xff
}

func (cart *ejected) Write(_ uint16, _ uint8) {
}

func (cart *ejected) Reset() {
}

func (cart *ejected) NumBanks() int {
	return 0
}

func (cart *ejected) CurrentBank() int {
	return 0
}

func (cart *ejected) RAM() []uint8 {
	return nil
}
