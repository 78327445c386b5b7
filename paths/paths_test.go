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

package paths_test

import (
	"os"
	"testing"

	"github.com/wrenhold/gopherboy/paths"
	"github.com/wrenhold/gopherboy/test"
)

func TestResourcePath(t *testing.T) {
	// create the base directory in the working directory so that
	// ResourcePath resolves locally rather than in the user's config
	// directory
	test.ExpectSuccess(t, os.Mkdir(".gopherboy", 0700))
	defer os.Remove(".gopherboy")

	test.Equate(t, paths.ResourcePath("foo", "baz"), ".gopherboy/foo/baz")
	test.Equate(t, paths.ResourcePath("foo"), ".gopherboy/foo")
	test.Equate(t, paths.ResourcePath(), ".gopherboy")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("recording", "zelda")
	test.ExpectSuccess(t, len(fn) == len("recording_zelda_YYYYMMDD_HHMMSS"))
	test.ExpectSuccess(t, fn[:16] == "recording_zelda_")
}
