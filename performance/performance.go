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

// Package performance contains the facilities to measure (and profile) the
// performance of the emulator.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/gui"
	"github.com/wrenhold/gopherboy/gui/sdlplay"
	"github.com/wrenhold/gopherboy/hardware"
	"github.com/wrenhold/gopherboy/television"
)

// the sentinal error returned by the Run() loop when the measurement
// period has elapsed.
const timedOut = "performance timed out"

// Check the performance of the emulator using the supplied cartridge.
//
// The emulation runs for the specified duration and can create a CPU
// and/or memory profile, as defined by the Profile argument. With the
// display argument the emulation renders to an SDL window; otherwise there
// is no renderer at all, which measures the pure emulation rate.
func Check(output io.Writer, profile Profile, ld cartridgeloader.Loader, display bool, uncapped bool, scale float32, duration string) error {
	tv := television.NewTelevision()
	defer tv.End()

	tv.SetFPSCap(!uncapped)

	if display {
		scr, err := sdlplay.NewSdlPlay(tv, scale)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		err = scr.SetFeature(gui.ReqSetVisibility, true)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	dmg := hardware.NewDMG(tv)

	err := dmg.AttachCartridge(ld)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := tv.Frame()

	runner := func() error {
		// expires when the measurement duration has elapsed
		timerChan := make(chan bool)
		go func() {
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		}()

		return dmg.Run(func() (bool, error) {
			select {
			case <-timerChan:
				return false, curated.Errorf(timedOut)
			default:
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := tv.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
