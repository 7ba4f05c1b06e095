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

package addrspace

import (
	"golang.org/x/exp/constraints"

	"github.com/jetsetilly/socfabric/curated"
)

// IsPowerOfTwo returns true if v is a power of two. Zero is not a power of
// two.
func IsPowerOfTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is greater than or
// equal to v. The result for zero is one.
func NextPowerOfTwo[T constraints.Unsigned](v T) T {
	p := T(1)
	for p < v && p != 0 {
		p <<= 1
	}
	return p
}

// AlignUp rounds v up to the next multiple of align. The alignment must be a
// power of two.
func AlignUp[T constraints.Unsigned](v T, align T) T {
	return (v + align - 1) &^ (align - 1)
}

// CheckDecoderAlignment returns an error if the region cannot be decoded by
// comparing the upper bits of an address. That is, the base address must be
// aligned on the size of the region rounded up to a power of two. Regions
// that are backed by a peripheral on the fabric must satisfy this.
func CheckDecoderAlignment(r Region) error {
	sz := r.Size
	if !IsPowerOfTwo(sz) {
		sz = NextPowerOfTwo(sz)
	}
	if AlignUp(r.Base, sz) != r.Base {
		return curated.Errorf(UnalignedError, r.Name, r.Base, sz)
	}
	return nil
}
