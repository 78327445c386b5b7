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

package cartfix_test

import (
	"bytes"
	"testing"

	"github.com/wrenhold/gopherboy/cartfix"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
	"github.com/wrenhold/gopherboy/test"
)

func TestFixBareImage(t *testing.T) {
	// an assembled program with an empty header block and an odd length
	data := make([]byte, 0x5000)
	for i := range data {
		data[i] = uint8(i)
	}

	fixed, err := cartfix.Fix(data, cartfix.DefaultOptions())
	test.ExpectSuccess(t, err)

	// padded up to the smallest valid size
	test.Equate(t, len(fixed), 0x8000)
	test.Equate(t, fixed[0x7fff], 0xff)

	hdr, err := cartridge.ParseHeader(fixed)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, hdr.ValidLogo)
	test.ExpectSuccess(t, hdr.ValidHeaderChecksum)
	test.ExpectSuccess(t, hdr.ValidGlobalChecksum)
	test.Equate(t, hdr.ROMSizeBytes(), len(fixed))

	// program content outside the header is untouched
	test.Equate(t, fixed[0x0000], 0x00)
	test.Equate(t, fixed[0x1000], uint8(0x1000%256))

	test.ExpectSuccess(t, cartfix.Validate(fixed) == nil)
}

func TestFixIdempotent(t *testing.T) {
	data := make([]byte, 0x4321)

	fixed, err := cartfix.Fix(data, cartfix.DefaultOptions())
	test.ExpectSuccess(t, err)

	again, err := cartfix.Fix(fixed, cartfix.DefaultOptions())
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, bytes.Equal(fixed, again))
}

func TestSetTitle(t *testing.T) {
	data := make([]byte, 0x8000)

	opts := cartfix.DefaultOptions()
	opts.SetTitle = true
	opts.Title = "GOPHERBOY"

	fixed, err := cartfix.Fix(data, opts)
	test.ExpectSuccess(t, err)

	hdr, err := cartridge.ParseHeader(fixed)
	test.ExpectSuccess(t, err)
	test.Equate(t, hdr.Title, "GOPHERBOY")
	test.ExpectSuccess(t, hdr.ValidHeaderChecksum)

	opts.Title = "A TITLE THAT IS FAR TOO LONG"
	_, err = cartfix.Fix(data, opts)
	test.ExpectFailure(t, err)
}

func TestValidate(t *testing.T) {
	data := make([]byte, 0x8000)

	problems := cartfix.Validate(data)
	test.ExpectSuccess(t, len(problems) > 0)

	fixed, err := cartfix.Fix(data, cartfix.DefaultOptions())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cartfix.Validate(fixed) == nil)
}
