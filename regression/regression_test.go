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

package regression_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
	"github.com/wrenhold/gopherboy/regression"
	"github.com/wrenhold/gopherboy/test"
)

func TestParseDigestMode(t *testing.T) {
	mode, err := regression.ParseDigestMode("video")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mode == regression.DigestVideoOnly)

	mode, err = regression.ParseDigestMode("AUDIO")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mode == regression.DigestAudioOnly)

	_, err = regression.ParseDigestMode("foo")
	test.ExpectFailure(t, err)
}

// writeROM creates a minimal but valid cartridge file containing an endless
// NOP loop.
func writeROM(t *testing.T, pth string) {
	t.Helper()

	data := make([]byte, 0x8000)

	// entry point: JP $0150
	data[0x0100] = 0xc3
	data[0x0101] = 0x50
	data[0x0102] = 0x01

	// 0150 NOP; JP $0150
	data[0x0151] = 0xc3
	data[0x0152] = 0x50
	data[0x0153] = 0x01

	copy(data[cartridge.LogoStart:], cartridge.Logo[:])
	copy(data[cartridge.TitleStart:], "TEST")
	data[cartridge.HeaderChecksumAddr] = cartridge.HeaderChecksum(data)

	test.ExpectSuccess(t, os.WriteFile(pth, data, 0644))
}

func TestFrameRegression(t *testing.T) {
	// run the test from a directory containing a local resource path. the
	// regression database will be created there.
	wd, err := os.Getwd()
	test.ExpectSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.ExpectSuccess(t, os.Chdir(tmp))
	test.ExpectSuccess(t, os.Mkdir(".gopherboy", 0755))

	romFile := filepath.Join(tmp, "test.gb")
	writeROM(t, romFile)

	ld, err := cartridgeloader.NewLoader(romFile)
	test.ExpectSuccess(t, err)

	reg := regression.NewFrameRegression(ld, regression.DigestVideoOnly, 2)

	output := &bytes.Buffer{}
	test.ExpectSuccess(t, regression.RegressAdd(output, reg))
	test.ExpectSuccess(t, strings.Contains(output.String(), "added:"))

	// the stored digest should now match a rerun of the same ROM
	output.Reset()
	test.ExpectSuccess(t, regression.RegressRunTests(output, false, false, nil))
	test.ExpectSuccess(t, strings.Contains(output.String(), "1 succeed, 0 fail"))

	output.Reset()
	test.ExpectSuccess(t, regression.RegressList(output))
	test.ExpectSuccess(t, strings.Contains(output.String(), "frames=2"))

	// delete the entry, confirming when asked
	output.Reset()
	confirmation := strings.NewReader("y\n")
	test.ExpectSuccess(t, regression.RegressDelete(output, confirmation, "0"))
	test.ExpectSuccess(t, strings.Contains(output.String(), "deleted test #0"))

	output.Reset()
	test.ExpectSuccess(t, regression.RegressList(output))
	test.ExpectSuccess(t, strings.Contains(output.String(), "Total: 0"))
}

func TestFrameRegressionRunsUncapped(t *testing.T) {
	wd, err := os.Getwd()
	test.ExpectSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.ExpectSuccess(t, os.Chdir(tmp))
	test.ExpectSuccess(t, os.Mkdir(".gopherboy", 0755))

	romFile := filepath.Join(tmp, "test.gb")
	writeROM(t, romFile)

	ld, err := cartridgeloader.NewLoader(romFile)
	test.ExpectSuccess(t, err)

	// 30 frames at the capped rate would take at least half a second. a
	// headless run must be much faster than that
	reg := regression.NewFrameRegression(ld, regression.DigestVideoOnly, 30)

	start := time.Now()
	test.ExpectSuccess(t, regression.RegressAdd(&bytes.Buffer{}, reg))
	test.ExpectSuccess(t, time.Since(start) < 450*time.Millisecond)
}