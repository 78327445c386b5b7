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

package television

import (
	"fmt"

	"github.com/wrenhold/gopherboy/curated"
)

// Error patterns for the television package.
const (
	OutOfSpec = "television: %v"
)

// PixelRenderer implementations display, or otherwise work with, visual
// information from the television.
//
// Implementations often find it convenient to maintain a reference to the
// parent Television, or even to embed it:
//
//	type ExampleTV struct {
//		*television.Television
//		...
//	}
type PixelRenderer interface {
	// NewFrame and NewScanline are called at the start of the frame/scanline.
	NewFrame(frameNum int) error
	NewScanline(scanline int) error

	// SetPixel is called for every pixel of every visible scanline. The
	// shade argument is the final DMG shade after palette translation.
	SetPixel(x, y int, shade Shade) error

	// EndRendering is called when the television is about to be destroyed.
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it.
type AudioMixer interface {
	// SetAudio receives mono samples at the SampleFreq rate.
	SetAudio(samples []int16) error

	// EndMixing is called when the television is about to be destroyed.
	EndMixing() error
}

// Television is the sink for everything the hardware produces. The PPU
// delivers pixels through SetPixel() and frame/scanline boundaries through
// NewFrame()/NewScanline(); the APU delivers samples through SetAudio().
// Everything is forwarded to the attached renderers and mixers.
type Television struct {
	renderers []PixelRenderer
	mixers    []AudioMixer

	frameNum int
	scanline int

	// counts of frames over time, for the FPS calculation
	lmtr limiter

	// whether the frame rate is being limited to the specification rate
	fpsCap bool
}

// NewTelevision is the preferred method of initialisation for the
// Television type.
func NewTelevision() *Television {
	tv := &Television{fpsCap: true}
	tv.lmtr.init(FramesPerSecond)
	return tv
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%04d SL=%03d", tv.frameNum, tv.scanline)
}

// AddPixelRenderer registers an (additional) implementation of
// PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// Reset the television to an initial state.
func (tv *Television) Reset() error {
	tv.frameNum = 0
	tv.scanline = 0
	return nil
}

// Frame returns the current frame number.
func (tv *Television) Frame() int {
	return tv.frameNum
}

// Scanline returns the current scanline number.
func (tv *Television) Scanline() int {
	return tv.scanline
}

// NewFrame is called by the PPU when the frame is complete and a new one is
// about to begin.
func (tv *Television) NewFrame() error {
	tv.frameNum++
	tv.scanline = 0

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum); err != nil {
			return curated.Errorf(OutOfSpec, err)
		}
	}

	if tv.fpsCap {
		tv.lmtr.wait()
	}
	tv.lmtr.measure()

	return nil
}

// NewScanline is called by the PPU at the start of every scanline.
func (tv *Television) NewScanline(scanline int) error {
	tv.scanline = scanline
	for _, r := range tv.renderers {
		if err := r.NewScanline(scanline); err != nil {
			return curated.Errorf(OutOfSpec, err)
		}
	}
	return nil
}

// SetPixel forwards a pixel to all attached renderers.
func (tv *Television) SetPixel(x, y int, shade Shade) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return curated.Errorf(OutOfSpec, fmt.Sprintf("pixel (%d,%d) outside the panel", x, y))
	}
	for _, r := range tv.renderers {
		if err := r.SetPixel(x, y, shade); err != nil {
			return curated.Errorf(OutOfSpec, err)
		}
	}
	return nil
}

// SetAudio forwards audio samples to all attached mixers.
func (tv *Television) SetAudio(samples []int16) error {
	for _, m := range tv.mixers {
		if err := m.SetAudio(samples); err != nil {
			return curated.Errorf(OutOfSpec, err)
		}
	}
	return nil
}

// SetFPSCap controls whether the emulation should wait at the end of each
// frame in order to match the specification frame rate.
func (tv *Television) SetFPSCap(set bool) {
	tv.fpsCap = set
}

// GetReqFPS returns the frame rate the television is aiming for.
func (tv *Television) GetReqFPS() float64 {
	return FramesPerSecond
}

// GetActualFPS returns the most recent frame rate measurement.
func (tv *Television) GetActualFPS() float64 {
	return tv.lmtr.actual
}

// End gently closes all attached renderers and mixers. The Television
// should be considered unusable afterwards.
func (tv *Television) End() error {
	var rerr error
	for _, r := range tv.renderers {
		if err := r.EndRendering(); err != nil {
			rerr = err
		}
	}
	for _, m := range tv.mixers {
		if err := m.EndMixing(); err != nil {
			rerr = err
		}
	}
	return rerr
}
