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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wrenhold/gopherboy/television"
)

// the buffer length is important to get right. we don't want it to be long
// because it introduces lag between the audio and video signal; by the
// same token we don't want it too short or the device underruns. the value
// has been discovered through trial and error; the precise value is not
// critical.
const bufferLength = 512

// if the emulation runs ahead of real time the queue grows without bound
// and so does the audio lag. samples are dropped beyond this point; the
// frame limiter keeps the steady state well below it.
const maxQueuedBytes = 8192

// sound queues mixer samples to an SDL audio device. It implements the
// television.AudioMixer interface.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// scratch space for the int16 to byte conversion, reused between
	// SetAudio calls
	scratch []byte
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     television.SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// SetAudio implements the television.AudioMixer interface.
func (snd *sound) SetAudio(samples []int16) error {
	if sdl.GetQueuedAudioSize(snd.id) > maxQueuedBytes {
		return nil
	}

	snd.scratch = snd.scratch[:0]
	for _, s := range samples {
		snd.scratch = append(snd.scratch, byte(s), byte(s>>8))
	}

	return sdl.QueueAudio(snd.id, snd.scratch)
}

// EndMixing implements the television.AudioMixer interface.
func (snd *sound) EndMixing() error {
	sdl.CloseAudioDevice(snd.id)
	return nil
}
