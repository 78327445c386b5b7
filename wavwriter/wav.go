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

// Package wavwriter allows writing of audio data to disk as a WAV file.
// Note that audio data is buffered in memory in its entirety, and written
// to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/logger"
	"github.com/wrenhold/gopherboy/television"
	"github.com/youpy/go-wav"
)

// WavWriter implements the television.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		w.Values[1] = int(s)
		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(television.SampleFreq), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
