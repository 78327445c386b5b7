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

// Package sdlplay is an SDL implementation of the television renderer and
// mixer interfaces, suitable for playing games. It has no debugging
// affordances at all.
package sdlplay

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/gui"
	"github.com/wrenhold/gopherboy/logger"
	"github.com/wrenhold/gopherboy/television"
)

// number of bytes per pixel in the texture.
const pixelDepth = 4

// title updates are throttled to once every windowTitleFrames frames.
const windowTitleFrames = 30

// SdlPlay is an SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	*television.Television

	// connects the SDL event queue with the parent process
	eventChannel chan gui.Event

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that is copied to the texture every
	// NewFrame()
	pixels []byte

	// the amount of scaling applied to each pixel
	scale float32

	// whether the measured frame rate is shown in the window title
	fpsIndicator bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type.
func NewSdlPlay(tv *television.Television, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{Television: tv}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window size is set in the setScaling function. hidden until a
	// ReqSetVisibility request arrives
	scr.window, err = sdl.CreateWindow("Gopherboy",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer to show the image. it is the
	// same size as the pixel array; scaling is applied when it is copied
	// into the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		television.Width, television.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, television.Width*television.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err = scr.setScaling(scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.AddPixelRenderer(scr)
	scr.AddAudioMixer(scr.snd)

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	switch request {
	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqSetScale:
		return scr.setScaling(args[0].(float32))

	case gui.ReqSetFPSIndicator:
		scr.fpsIndicator = args[0].(bool)

	case gui.ReqScreenshot:
		return scr.saveScreenshot(args[0].(string))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// use scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(television.Width) * scr.scale)
	h := int32(float32(television.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetScale(scr.scale, scr.scale)
}

// saveScreenshot writes the most recently completed frame to a BMP file.
func (scr *SdlPlay) saveScreenshot(filename string) error {
	surf, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&scr.pixels[0]),
		television.Width, television.Height,
		pixelDepth*8, television.Width*pixelDepth,
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	defer surf.Free()

	if err := surf.SaveBMP(filename); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf("sdlplay", "screenshot saved to %s", filename)

	return nil
}

// pushEvent forwards an event over the event channel without blocking.
// Service() runs on the same goroutine that drains the channel, so a
// blocking send on a full channel could never be satisfied. A full
// channel means the parent process is not keeping up and the event is
// dropped.
func (scr *SdlPlay) pushEvent(ev gui.Event) {
	select {
	case scr.eventChannel <- ev:
	default:
		logger.Logf("sdlplay", "event channel full. dropped %v event", ev.ID)
	}
}

// Service drains the SDL event queue, forwarding anything of interest over
// the event channel. It does nothing at all when no channel has been
// registered.
//
// Called automatically on every new frame. The parent process should call
// it directly when the emulation is not producing frames (eg. when paused).
func (scr *SdlPlay) Service() {
	if scr.eventChannel == nil {
		return
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.pushEvent(gui.Event{ID: gui.EventWindowClose})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue // for loop
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				scr.pushEvent(gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: true}})
			case sdl.KEYUP:
				scr.pushEvent(gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: false}})
			}
		}
	}
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frameNum int) error {
	scr.Service()

	if scr.fpsIndicator && frameNum%windowTitleFrames == 0 {
		scr.window.SetTitle(fmt.Sprintf("Gopherboy (%.1f fps)", scr.GetActualFPS()))
	}

	err := scr.texture.Update(nil, scr.pixels, television.Width*pixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// NewScanline implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (scr *SdlPlay) SetPixel(x, y int, shade television.Shade) error {
	i := (y*television.Width + x) * pixelDepth
	if i <= len(scr.pixels)-pixelDepth {
		scr.pixels[i] = shade.Red
		scr.pixels[i+1] = shade.Green
		scr.pixels[i+2] = shade.Blue
	}
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	return scr.window.Destroy()
}
