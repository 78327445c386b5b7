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

// Package curated is the error type used throughout Gopherboy. A curated
// error keeps hold of the format pattern it was created with, which allows
// errors to be compared against that pattern later with the Is() and Has()
// functions.
//
// Patterns are defined close to where they are used. For example, the
// cartridge package defines:
//
//	const UnrecognisedMapper = "cartridge: unrecognised mapper (%#02x)"
//
// and a caller that wants to react to that specific error asks:
//
//	if curated.Is(err, cartridge.UnrecognisedMapper) {
//		...
//	}
//
// The Error() function normalises the message chain, removing adjacent
// duplicate parts. This means packages can freely add context to an error as
// it passes upwards without the final message stuttering.
package curated
