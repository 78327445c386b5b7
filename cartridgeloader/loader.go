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

// Package cartridgeloader is used to specify the cartridge ROM to be
// attached to the emulated console. A Loader instance can be passed around
// cheaply before the ROM data is actually needed; the file is not touched
// until Load() is called.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrenhold/gopherboy/curated"
)

// Error patterns for the cartridgeloader package.
const (
	InvalidExtension = "cartridgeloader: unrecognised file extension (%v)"
	LoadError        = "cartridgeloader: %v"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge ROM dumps.
var FileExtensions = [...]string{".gb", ".dmg", ".bin", ".rom"}

// Loader abstracts all the ways data can be loaded into the emulation.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// empty until Load() is called
	Data []byte

	// the SHA1 hash of the loaded data. empty until Load() is called
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The filename argument must point to a file with one of the extensions
// listed in FileExtensions.
func NewLoader(filename string) (Loader, error) {
	ld := Loader{Filename: filename}

	ext := strings.ToLower(filepath.Ext(filename))
	ok := false
	for _, e := range FileExtensions {
		if e == ext {
			ok = true
			break
		}
	}
	if !ok {
		return Loader{}, curated.Errorf(InvalidExtension, ext)
	}

	return ld, nil
}

// ShortName returns a shortened version of the loader filename, with the
// path and extension removed.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the cartridge data and prepare for emulation. The data is cached so
// a second call to Load() does nothing.
func (ld *Loader) Load() error {
	if len(ld.Data) == 0 {
		var err error
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	// the hash is always refreshed. data may have been placed in the
	// loader directly, bypassing the file read
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))

	return nil
}
