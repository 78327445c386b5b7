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

package modalflag_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/modalflag"
	"github.com/wrenhold/gopherboy/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"roms/tetris.gb"})

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.GetArg(0), "roms/tetris.gb")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"roms/tetris.gb"})
	md.AddSubModes("RUN", "DEBUG", "FIX")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))

	// no sub-mode in the arguments so the default is selected and the
	// argument is left for the mode to pick up
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.GetArg(0), "roms/tetris.gb")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"debug", "roms/tetris.gb"})
	md.AddSubModes("RUN", "DEBUG", "FIX")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "DEBUG")

	// mode level flags parse after the mode has been selected
	md.NewMode()
	fps := md.AddInt("fps", 60, "frame rate")

	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, *fps, 60)
	test.Equate(t, md.GetArg(0), "roms/tetris.gb")
	test.Equate(t, md.Path(), "DEBUG")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "-scale", "4", "roms/tetris.gb"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	scale := md.AddFloat64("scale", 2.0, "window scale")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, *scale == 4.0, true)
	test.Equate(t, md.GetArg(0), "roms/tetris.gb")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})

	r, err := md.Parse()
	test.ExpectFailure(t, err)
	test.Equate(t, int(r), int(modalflag.ParseError))
}
