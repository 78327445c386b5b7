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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/test"
)

const testError = "test error: %s"
const wrappingError = "wrapping error: %v"

func TestDuplicateNormalisation(t *testing.T) {
	inner := curated.Errorf(testError, "foo")
	outer := curated.Errorf(testError, inner)

	// adjacent duplicate parts should be removed
	test.Equate(t, outer.Error(), "test error: foo")

	wrapped := curated.Errorf(wrappingError, inner)
	test.Equate(t, wrapped.Error(), "wrapping error: test error: foo")
}

func TestIsHas(t *testing.T) {
	inner := curated.Errorf(testError, "foo")
	wrapped := curated.Errorf(wrappingError, inner)

	test.ExpectSuccess(t, curated.IsAny(inner))
	test.ExpectSuccess(t, curated.Is(inner, testError))
	test.ExpectFailure(t, curated.Is(wrapped, testError))
	test.ExpectSuccess(t, curated.Has(wrapped, testError))
	test.ExpectSuccess(t, curated.Has(wrapped, wrappingError))

	// plain errors are not curated errors
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestStdlibInterop(t *testing.T) {
	wrapped := curated.Errorf(wrappingError, io.EOF)

	// a wrapped stdlib error can be found with errors.Is()
	test.ExpectSuccess(t, errors.Is(wrapped, io.EOF))
	test.ExpectFailure(t, errors.Is(wrapped, io.ErrUnexpectedEOF))

	// and through more than one level of wrapping
	outer := curated.Errorf(testError, wrapped)
	test.ExpectSuccess(t, errors.Is(outer, io.EOF))
}
