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

package registers_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/hardware/cpu/registers"
	"github.com/wrenhold/gopherboy/test"
)

func TestPairSharesHalves(t *testing.T) {
	b := registers.NewRegister(0x00, "B")
	c := registers.NewRegister(0x13, "C")
	bc := registers.NewPair(b, c, "BC")

	test.Equate(t, bc.Value(), 0x0013)

	// loading the pair updates the halves
	bc.Load(0xbeef)
	test.Equate(t, b.Value(), 0xbe)
	test.Equate(t, c.Value(), 0xef)

	// and loading a half updates the pair
	b.Load(0x12)
	test.Equate(t, bc.Value(), 0x12ef)
}

func TestPairIncrementWrap(t *testing.T) {
	h := registers.NewRegister(0xff, "H")
	l := registers.NewRegister(0xff, "L")
	hl := registers.NewPair(h, l, "HL")

	hl.Increment()
	test.Equate(t, hl.Value(), 0x0000)

	hl.Decrement()
	test.Equate(t, hl.Value(), 0xffff)
}

func TestStatusLowerNibble(t *testing.T) {
	sr := registers.NewStatus()

	// the lower nibble can never be loaded
	sr.Load(0xff)
	test.Equate(t, sr.Value(), 0xf0)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectSuccess(t, sr.Carry)

	sr.Load(0x00)
	test.Equate(t, sr.Value(), 0x00)
	test.ExpectFailure(t, sr.Zero)
}

func TestProgramCounterAdd(t *testing.T) {
	pc := registers.NewProgramCounter(0x0100)

	// relative jumps are signed
	pc.Add(-2)
	test.Equate(t, pc.Value(), 0x00fe)

	pc.Add(0x10)
	test.Equate(t, pc.Value(), 0x010e)
}
