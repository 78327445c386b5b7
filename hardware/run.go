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

package hardware

import "github.com/wrenhold/gopherboy/curated"

// FrameStall is the error returned by RunForFrameCount when the television
// stops seeing new frames.
const FrameStall = "run: no new frame after %d instructions. is the lcd switched off?"

// number of instructions between calls to the continue check during a
// free run. checking after every instruction costs a measurable amount of
// time.
const continueCheckInterval = 256

// the number of instructions RunForFrameCount tolerates without a new
// frame. a program that switches the lcd off produces no frames at all
// and a frame-counted run would otherwise never return. the allowance is
// worth several seconds of emulated time so a program that switches the
// lcd off briefly is unaffected.
const frameStallLimit = 1000000

// Run the console until the continueCheck callback returns false. A nil
// continueCheck runs the console forever.
func (dmg *DMG) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	count := 0
	for {
		if err := dmg.Step(); err != nil {
			return err
		}

		count++
		if count >= continueCheckInterval {
			count = 0
			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}

// RunForFrameCount runs the console until the television has seen the
// given number of new frames. The continueCheck callback can cut the run
// short; it is consulted once per frame and can be nil.
func (dmg *DMG) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	targetFrame := dmg.TV.Frame() + numFrames

	frame := dmg.TV.Frame()
	stall := 0
	for frame < targetFrame {
		if err := dmg.Step(); err != nil {
			return err
		}

		if dmg.TV.Frame() != frame {
			frame = dmg.TV.Frame()
			stall = 0
			cont, err := continueCheck(frame)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		} else {
			stall++
			if stall >= frameStallLimit {
				return curated.Errorf(FrameStall, stall)
			}
		}
	}

	return nil
}
