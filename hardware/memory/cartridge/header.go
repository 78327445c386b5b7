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
	"strings"

	"github.com/wrenhold/gopherboy/curated"
)

// Locations of the header fields inside the cartridge data.
const (
	LogoStart           = 0x0104
	LogoEnd             = 0x0133
	TitleStart          = 0x0134
	TitleEnd            = 0x0143
	CGBFlag             = 0x0143
	NewLicenseeStart    = 0x0144
	SGBFlag             = 0x0146
	CartridgeTypeAddr   = 0x0147
	ROMSizeAddr         = 0x0148
	RAMSizeAddr         = 0x0149
	DestinationAddr     = 0x014a
	OldLicenseeAddr     = 0x014b
	VersionAddr         = 0x014c
	HeaderChecksumAddr  = 0x014d
	GlobalChecksumStart = 0x014e
	HeaderEnd           = 0x0150
)

// Logo is the bitmap that must appear at addresses 0x0104 to 0x0133 of the
// cartridge. The boot sequence refuses to run a cartridge without it.
var Logo = [...]uint8{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0c, 0x00, 0x0d, 0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99, 0xbb, 0xbb, 0x67, 0x63,
	0x6e, 0x0e, 0xec, 0xcc, 0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

// Header is the decoded form of the cartridge header block.
type Header struct {
	Title          string
	CartridgeType  uint8
	ROMSize        uint8
	RAMSize        uint8
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16

	// whether the logo and checksum fields hold the values the boot
	// sequence expects
	ValidLogo           bool
	ValidHeaderChecksum bool
	ValidGlobalChecksum bool
}

// ParseHeader decodes the header block of the supplied cartridge data. An
// error is returned if the data is too short to contain a header at all.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderEnd {
		return Header{}, curated.Errorf(HeaderError, "data too short to contain a header")
	}

	hdr := Header{
		CartridgeType:  data[CartridgeTypeAddr],
		ROMSize:        data[ROMSizeAddr],
		RAMSize:        data[RAMSizeAddr],
		Version:        data[VersionAddr],
		HeaderChecksum: data[HeaderChecksumAddr],
		GlobalChecksum: uint16(data[GlobalChecksumStart])<<8 | uint16(data[GlobalChecksumStart+1]),
	}

	// the title field is padded with zero bytes. later cartridges reuse the
	// top of the field for the CGB flag, which we simply treat as part of
	// the padding
	title := data[TitleStart : TitleEnd+1]
	hdr.Title = strings.TrimRight(string(title), "\x00")

	hdr.ValidLogo = true
	for i, b := range Logo {
		if data[LogoStart+i] != b {
			hdr.ValidLogo = false
			break
		}
	}

	hdr.ValidHeaderChecksum = hdr.HeaderChecksum == HeaderChecksum(data)
	hdr.ValidGlobalChecksum = hdr.GlobalChecksum == GlobalChecksum(data)

	return hdr, nil
}

// MapperDescription returns a description of the mapper indicated by the
// cartridge type byte.
func (hdr Header) MapperDescription() string {
	switch hdr.CartridgeType {
	case 0x00:
		return "ROM"
	case 0x01, 0x02, 0x03:
		return "MBC1"
	case 0x05, 0x06:
		return "MBC2"
	case 0x08, 0x09:
		return "ROM+RAM"
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		return "MBC3"
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		return "MBC5"
	}
	return "unknown"
}

// ROMSizeBytes returns the size in bytes indicated by the ROM size byte.
func (hdr Header) ROMSizeBytes() int {
	return 0x8000 << hdr.ROMSize
}

// RAMSizeBytes returns the size in bytes indicated by the RAM size byte.
func (hdr Header) RAMSizeBytes() int {
	switch hdr.RAMSize {
	case 0x02:
		return 0x2000
	case 0x03:
		return 0x8000
	case 0x04:
		return 0x20000
	case 0x05:
		return 0x10000
	}
	return 0
}

// HeaderChecksum computes the checksum of the header fields from 0x0134 to
// 0x014c. The result is what the byte at 0x014d must be for the boot
// sequence to accept the cartridge.
func HeaderChecksum(data []byte) uint8 {
	var x uint8
	for _, b := range data[TitleStart:HeaderChecksumAddr] {
		x = x - b - 1
	}
	return x
}

// GlobalChecksum computes the sum of every byte of the cartridge except the
// two global checksum bytes themselves.
func GlobalChecksum(data []byte) uint16 {
	var x uint16
	for i, b := range data {
		if i == GlobalChecksumStart || i == GlobalChecksumStart+1 {
			continue
		}
		x += uint16(b)
	}
	return x
}
