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

// Package playmode sets the emulation running without any debugging
// features. It connects the SDL window to the console and translates
// keyboard events into button presses.
package playmode

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/gui"
	"github.com/wrenhold/gopherboy/gui/sdlplay"
	"github.com/wrenhold/gopherboy/hardware"
	"github.com/wrenhold/gopherboy/logger"
	"github.com/wrenhold/gopherboy/paths"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/wavwriter"
)

// Play sets the emulation running. If wavFile is not empty the audio
// output is also written to the named file on program end.
func Play(ld cartridgeloader.Loader, scale float32, fpsIndicator bool, wavFile string) error {
	tv := television.NewTelevision()

	scr, err := sdlplay.NewSdlPlay(tv, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer tv.End()

	if wavFile != "" {
		aw, err := wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		tv.AddAudioMixer(aw)
	}

	dmg := hardware.NewDMG(tv)

	err = dmg.AttachCartridge(ld)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// battery-backed cartridge RAM is written out when the session ends
	defer func() {
		if err := dmg.End(); err != nil {
			logger.Log("playmode", err.Error())
		}
	}()

	// the channel must be able to absorb a burst of events from a single
	// Service() pass; the gui drops events once it is full
	guiChannel := make(chan gui.Event, 32)
	scr.SetEventChannel(guiChannel)

	err = scr.SetFeature(gui.ReqSetFPSIndicator, fpsIndicator)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// redirect interrupt signal so that ctrl-c ends the emulation politely
	// and the deferred cleanup still runs
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	paused := false

	// handleEvent processes one gui event, returning false if the
	// emulation should end.
	handleEvent := func(ev gui.Event) (bool, error) {
		switch ev.ID {
		case gui.EventWindowClose:
			return false, nil

		case gui.EventKeyboard:
			key := ev.Data.(gui.EventDataKeyboard)
			switch {
			case key.Down && key.Key == "P":
				paused = !paused
			case key.Down && key.Key == "F12":
				fn := fmt.Sprintf("%s.bmp", paths.UniqueFilename("screenshot", ld.ShortName()))
				if err := scr.SetFeature(gui.ReqScreenshot, fn); err != nil {
					logger.Logf("playmode", "%v", err)
				}
			default:
				KeyboardEventHandler(key, dmg)
			}
		}
		return true, nil
	}

	err = dmg.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		case ev := <-guiChannel:
			if cont, err := handleEvent(ev); !cont || err != nil {
				return cont, err
			}
		default:
		}

		// while paused the television is not producing frames, so its
		// renderer is not pumping the SDL event queue. pump it from here
		// until unpaused
		for paused {
			scr.Service()
			select {
			case <-intChan:
				return false, nil
			case ev := <-guiChannel:
				if cont, err := handleEvent(ev); !cont || err != nil {
					return cont, err
				}
			case <-time.After(10 * time.Millisecond):
			}
		}

		return true, nil
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
