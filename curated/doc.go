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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, in the same way as fmt.Errorf(). The difference is that
// the formatting pattern is retained and can be used to identify the error.
//
// Each package in socfabric exports the patterns it uses as string
// constants. For example, the addrspace package exports OverlapError and
// callers can check for it:
//
//	err := space.Allocate(r)
//	if curated.Is(err, addrspace.OverlapError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is useful when an error has been wrapped by a higher
// level package:
//
//	err := comp.RegisterSlave(s, r)
//	if curated.Has(err, addrspace.OverlapError) {
//		...
//	}
//
// The Error() function normalises the message chain by removing adjacent
// duplicate parts. Parts are separated by the sub-string ": ". So wrapping an
// error with the same leading part does not result in messages like:
//
//	composer: composer: region csr2 overlaps csr
//
// Curated errors also implement Unwrap(), returning the first error in the
// list of values. This means the errors package in the standard library can
// see through a curated error to a wrapped context.Canceled, for example.
package curated
