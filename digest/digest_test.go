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

package digest_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/digest"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/test"
)

func TestVideoDigest(t *testing.T) {
	tv := television.NewTelevision()
	dig := digest.NewVideo(tv)

	zero := dig.Hash()

	// a frame of all zero pixels still moves the hash away from zero
	test.ExpectSuccess(t, tv.NewFrame())
	one := dig.Hash()
	test.ExpectSuccess(t, zero != one)

	// the chaining means a second identical frame produces yet another
	// value
	test.ExpectSuccess(t, tv.NewFrame())
	test.ExpectSuccess(t, one != dig.Hash())
}

func TestVideoDigestRepeatability(t *testing.T) {
	run := func() string {
		tv := television.NewTelevision()
		dig := digest.NewVideo(tv)
		for y := 0; y < television.Height; y++ {
			for x := 0; x < television.Width; x++ {
				test.ExpectSuccess(t, tv.SetPixel(x, y, television.Shades[(x+y)%4]))
			}
		}
		test.ExpectSuccess(t, tv.NewFrame())
		return dig.Hash()
	}

	test.Equate(t, run(), run())
}

func TestAudioDigest(t *testing.T) {
	tv := television.NewTelevision()
	dig := digest.NewAudio(tv)

	zero := dig.Hash()

	samples := make([]int16, 8192)
	for i := range samples {
		samples[i] = int16(i)
	}
	test.ExpectSuccess(t, tv.SetAudio(samples))
	test.ExpectSuccess(t, dig.Hash() != zero)
}
