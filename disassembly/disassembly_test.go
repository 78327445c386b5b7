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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/wrenhold/gopherboy/disassembly"
	"github.com/wrenhold/gopherboy/test"
)

func TestLinearSweep(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x00,             // NOP
		0x3e, 0x42,       // LD A,$42
		0xc3, 0x50, 0x01, // JP $0150
		0xcb, 0x37,       // SWAP A
		0x18, 0xfe,       // JR -2
	}, 0)

	test.Equate(t, len(dsm.Entries), 5)

	test.Equate(t, dsm.Entries[0].String(), "0000 NOP")
	test.Equate(t, dsm.Entries[1].String(), "0001 LD A,$42")
	test.Equate(t, dsm.Entries[2].String(), "0003 JP $0150")
	test.Equate(t, dsm.Entries[3].String(), "0006 SWAP A")
	test.Equate(t, dsm.Entries[4].String(), "0008 JR -2")

	test.ExpectSuccess(t, dsm.Entries[3].Prefixed)
}

func TestUnusedOpCode(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0xd3, // unused
		0x00, // NOP
	}, 0)

	test.Equate(t, len(dsm.Entries), 2)
	test.Equate(t, dsm.Entries[0].String(), "0000 DB $d3")
	test.Equate(t, dsm.Entries[1].String(), "0001 NOP")
}

func TestGet(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x3e, 0x42, // LD A,$42
		0x00, // NOP
	}, 0)

	e, ok := dsm.Get(0x0002)
	test.ExpectSuccess(t, ok)
	test.Equate(t, e.Mnemonic, "NOP")

	// inside the LD instruction
	_, ok = dsm.Get(0x0001)
	test.ExpectFailure(t, ok)
}

func TestWrite(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x3e, 0x42, // LD A,$42
	}, 0)

	b := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(b))
	test.Equate(t, strings.Contains(b.String(), "3e 42"), true)
	test.Equate(t, strings.Contains(b.String(), "LD A,$42"), true)
}
