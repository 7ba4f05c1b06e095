// This file is part of socfabric.
//
// socfabric is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// socfabric is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with socfabric.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/test"
)

const testPattern = "region %s: %v"
const testPatternInner = "size %#x"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("composer: %v", curated.Errorf("composer: %v", "bad thing"))
	test.ExpectEquality(t, e.Error(), "composer: bad thing")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPatternInner, 0)
	test.ExpectSuccess(t, curated.Is(e, testPatternInner))
	test.ExpectFailure(t, curated.Is(e, testPattern))

	f := curated.Errorf(testPattern, "rom", e)
	test.ExpectSuccess(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, testPatternInner))
	test.ExpectEquality(t, f.Error(), "region rom: size 0x0")
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPatternInner, 0x100)
	f := curated.Errorf(testPattern, "sram", e)
	test.ExpectSuccess(t, curated.Has(f, testPatternInner))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("x")))
	test.ExpectFailure(t, curated.IsAny(errors.New("x")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("bridge: waiting for credit: %v", context.Canceled)
	test.ExpectSuccess(t, errors.Is(e, context.Canceled))

	f := curated.Errorf("no wrapped error %d", 10)
	test.ExpectEquality(t, errors.Unwrap(f), nil)
}
