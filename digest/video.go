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

const pixelDepth = 3

// Video is an implementation of the television.PixelRenderer interface
// that generates a SHA-1 value of the frame image instead of displaying
// it. The value is chained: each frame's hash incorporates the hash of
// the frame before it, so a single comparison at the end of a run covers
// the whole run.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Video struct {
	*television.Television

	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo initialises a new instance of Video and registers it with the
// television.
func NewVideo(tv *television.Television) *Video {
	dig := &Video{Television: tv}

	// the pixel buffer leaves room at the head for the previous frame's
	// digest value
	dig.pixels = make([]byte, sha1.Size+television.Width*television.Height*pixelDepth)

	dig.AddPixelRenderer(dig)

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the video data
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// NewScanline implements the television.PixelRenderer interface.
func (dig *Video) NewScanline(_ int) error {
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (dig *Video) SetPixel(x, y int, shade television.Shade) error {
	i := sha1.Size + (y*television.Width+x)*pixelDepth
	if i <= len(dig.pixels)-pixelDepth {
		dig.pixels[i] = shade.Red
		dig.pixels[i+1] = shade.Green
		dig.pixels[i+2] = shade.Blue
	}
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
