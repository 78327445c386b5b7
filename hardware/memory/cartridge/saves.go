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

package cartridge

import (
	"fmt"
	"os"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/logger"
	"github.com/wrenhold/gopherboy/paths"
)

// the directory under the resource path where save files are kept.
const savesDir = "saves"

// SaveError is the error pattern for save file failures.
const SaveError = "cartridge: save: %v"

// HasBattery returns true if the cartridge type byte indicates
// battery-backed RAM. Only these cartridges have their RAM written to a
// save file.
func (cart *Cartridge) HasBattery() bool {
	switch cart.Header.CartridgeType {
	case 0x03, 0x06, 0x09, 0x0f, 0x10, 0x13, 0x1b, 0x1e:
		return true
	}
	return false
}

// saveFilePath returns the path of the save file for the attached
// cartridge. the name includes a fragment of the ROM hash so that two
// ROMs with the same filename cannot pick up each other's saves.
func (cart *Cartridge) saveFilePath() string {
	hash := cart.Hash
	if len(hash) > 8 {
		hash = hash[:8]
	}
	return paths.ResourcePath(savesDir, fmt.Sprintf("%s_%s.sav", cart.ShortName, hash))
}

// loadRAM copies a previously written save file into the cartridge RAM.
// a missing save file is not an error, it just means the cartridge has
// not been played before.
func (cart *Cartridge) loadRAM() {
	ram := cart.mapper.RAM()
	if ram == nil {
		return
	}

	data, err := os.ReadFile(cart.saveFilePath())
	if err != nil {
		return
	}

	if len(data) != len(ram) {
		logger.Logf("cartridge", "save file is the wrong size (%d instead of %d). ignoring", len(data), len(ram))
		return
	}

	copy(ram, data)
	logger.Logf("cartridge", "%s loaded", cart.saveFilePath())
}

// SaveRAM writes the cartridge RAM to the save file. It does nothing for
// cartridges without a battery.
func (cart *Cartridge) SaveRAM() error {
	if !cart.HasBattery() {
		return nil
	}

	ram := cart.mapper.RAM()
	if ram == nil {
		return nil
	}

	if err := os.MkdirAll(paths.ResourcePath(savesDir), 0700); err != nil {
		return curated.Errorf(SaveError, err)
	}

	if err := os.WriteFile(cart.saveFilePath(), ram, 0600); err != nil {
		return curated.Errorf(SaveError, err)
	}

	logger.Logf("cartridge", "%s written", cart.saveFilePath())

	return nil
}
