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

// Package cartfix repairs the header of a cartridge image so that the
// boot sequence will accept it. Freshly assembled images usually have an
// empty header block: this package fills in the logo bitmap, pads the
// image to a valid size, sets the size byte and recomputes the two
// checksums. Images that are already correct pass through unchanged.
package cartfix

import (
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
)

// Error patterns for the cartfix package.
const (
	FixError = "cartfix: %v"
)

// Options control which parts of the header are touched.
type Options struct {
	// pad the image to the next valid ROM size with this value. 0xff is
	// what flash cartridges prefer
	Pad      bool
	PadValue uint8

	// replace the logo area with the required bitmap
	FixLogo bool

	// recompute the two checksum fields
	FixHeaderChecksum bool
	FixGlobalChecksum bool

	// set the title field, padded with zero bytes. titles longer than
	// the field are an error
	Title    string
	SetTitle bool
}

// DefaultOptions fixes everything, padding with 0xff.
func DefaultOptions() Options {
	return Options{
		Pad:               true,
		PadValue:          0xff,
		FixLogo:           true,
		FixHeaderChecksum: true,
		FixGlobalChecksum: true,
	}
}

// titleFieldLen is the length of the title field in the header.
const titleFieldLen = cartridge.TitleEnd - cartridge.TitleStart + 1

// Fix returns a repaired copy of the cartridge image. The input slice is
// not modified.
func Fix(data []byte, opts Options) ([]byte, error) {
	if len(data) < cartridge.HeaderEnd {
		return nil, curated.Errorf(FixError, "image too small to hold a cartridge header")
	}

	fixed := make([]byte, len(data))
	copy(fixed, data)

	if opts.Pad {
		sz := paddedSize(len(fixed))
		pad := make([]byte, sz-len(fixed))
		for i := range pad {
			pad[i] = opts.PadValue
		}
		fixed = append(fixed, pad...)
	}

	// the size byte must describe the (possibly padded) image for the
	// header checksum to come out right
	romSize := uint8(0)
	for 0x8000<<romSize < len(fixed) {
		romSize++
	}
	fixed[cartridge.ROMSizeAddr] = romSize

	if opts.SetTitle {
		if len(opts.Title) > titleFieldLen {
			return nil, curated.Errorf(FixError, "title too long for the header field")
		}
		for i := 0; i < titleFieldLen; i++ {
			fixed[cartridge.TitleStart+i] = 0x00
		}
		copy(fixed[cartridge.TitleStart:], opts.Title)
	}

	if opts.FixLogo {
		copy(fixed[cartridge.LogoStart:], cartridge.Logo[:])
	}

	if opts.FixHeaderChecksum {
		fixed[cartridge.HeaderChecksumAddr] = cartridge.HeaderChecksum(fixed)
	}

	if opts.FixGlobalChecksum {
		sum := cartridge.GlobalChecksum(fixed)
		fixed[cartridge.GlobalChecksumStart] = uint8(sum >> 8)
		fixed[cartridge.GlobalChecksumStart+1] = uint8(sum)
	}

	return fixed, nil
}

// paddedSize returns the smallest valid ROM size that holds sz bytes.
// valid sizes are 32k doublings.
func paddedSize(sz int) int {
	padded := 0x8000
	for padded < sz {
		padded <<= 1
	}
	return padded
}

// Validate returns a list of problems with the image that would stop the
// boot sequence from running it. A nil return means the image is fine.
func Validate(data []byte) []string {
	var problems []string

	hdr, err := cartridge.ParseHeader(data)
	if err != nil {
		return []string{"image too small to hold a cartridge header"}
	}

	if !hdr.ValidLogo {
		problems = append(problems, "logo area does not hold the required bitmap")
	}
	if !hdr.ValidHeaderChecksum {
		problems = append(problems, "header checksum mismatch")
	}
	if !hdr.ValidGlobalChecksum {
		// the boot sequence doesn't check this one but real hardware
		// publishing tools insist on it
		problems = append(problems, "global checksum mismatch")
	}
	if hdr.ROMSizeBytes() != len(data) {
		problems = append(problems, "size byte does not match the image size")
	}

	return problems
}
