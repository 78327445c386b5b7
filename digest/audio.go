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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/wrenhold/gopherboy/television"
)

// the length of the buffer isn't really important. that said, it needs to
// be at least sha1.Size bytes in length.
const audioBufferLength = 4096 + sha1.Size

// Audio is an implementation of the television.AudioMixer interface that
// hashes the sample stream. The hash chains in the same way as the video
// digest: the previous digest value sits at the head of the buffer and is
// included in the next digest.
type Audio struct {
	*television.Television

	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio initialises a new instance of Audio and registers it with the
// television.
func NewAudio(tv *television.Television) *Audio {
	dig := &Audio{Television: tv}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = sha1.Size
	dig.AddAudioMixer(dig)
	return dig
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(samples []int16) error {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = uint8(s >> 8)
		dig.bufferCt++
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = sha1.Size
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	dig.flush()
	return nil
}
