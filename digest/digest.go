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

// Package digest implements the television protocol interfaces such that a
// hash of the output is produced instead of a picture or sound. If the
// hash of a run differs from a previously recorded value then something in
// the emulation has changed. This is the basis of the regression tests.
package digest

// Digest implementations produce a hash of emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
