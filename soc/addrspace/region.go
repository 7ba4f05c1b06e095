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
	"fmt"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
)

// Kind of region.
type Kind int

// List of valid region kinds.
const (
	RAM Kind = iota
	ROM
	MMIO
	LinkerOnly
)

func (k Kind) String() string {
	switch k {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	case MMIO:
		return "MMIO"
	case LinkerOnly:
		return "LINKER"
	}
	return "undefined"
}

// ParseKind converts the result of Kind.String() back into a Kind. The
// comparison is case insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "RAM":
		return RAM, nil
	case "ROM":
		return ROM, nil
	case "MMIO", "IO":
		return MMIO, nil
	case "LINKER", "LINKERONLY", "LINKER-ONLY":
		return LinkerOnly, nil
	}
	return RAM, curated.Errorf(UnknownKindError, s)
}

// Region is a named, address-bounded slice of the memory map.
type Region struct {
	Name string
	Base uint64
	Size uint64
	Kind Kind

	// memory regions are cached by default. MMIO regions never are
	Cached bool

	// writes to a read-only region are answered with a slave error by the
	// peripheral that backs it
	ReadOnly bool

	// exported to the linker. always true for LinkerOnly regions
	Linker bool
}

// NewRegion returns a region with the attributes that are the default for
// the kind.
func NewRegion(name string, base uint64, size uint64, kind Kind) Region {
	r := Region{
		Name: name,
		Base: base,
		Size: size,
		Kind: kind,
	}

	switch kind {
	case RAM:
		r.Cached = true
		r.Linker = true
	case ROM:
		r.Cached = true
		r.ReadOnly = true
		r.Linker = true
	case LinkerOnly:
		r.Linker = true
	}

	return r
}

func (r Region) String() string {
	return fmt.Sprintf("%s [%#x, %#x) %s", r.Name, r.Base, r.Base+r.Size, r.Kind)
}

// Last returns the address of the last byte in the region.
func (r Region) Last() uint64 {
	return r.Base + r.Size - 1
}

// Contains returns true if the address is in the region.
func (r Region) Contains(address uint64) bool {
	return address >= r.Base && address-r.Base < r.Size
}

// Overlaps returns true if the byte ranges of the two regions intersect. The
// kind of the regions is not considered.
func (r Region) Overlaps(o Region) bool {
	return r.Base <= o.Last() && o.Base <= r.Last()
}

// Decodes returns true if the region takes part in physical address decode.
func (r Region) Decodes() bool {
	return r.Kind != LinkerOnly
}

// Offset returns the address relative to the base of the region.
func (r Region) Offset(address uint64) uint64 {
	return address - r.Base
}

// validate checks the region is well formed.
func (r Region) validate() error {
	if r.Name == "" {
		return curatedInvalid(r, "empty name")
	}
	if strings.ContainsAny(r.Name, " \t\n") {
		return curatedInvalid(r, "name contains white space")
	}
	if r.Size == 0 {
		return curatedInvalid(r, "zero size")
	}
	if r.Base+r.Size-1 < r.Base {
		return curatedInvalid(r, "wraps past the top of the address space")
	}
	if r.Kind < RAM || r.Kind > LinkerOnly {
		return curatedInvalid(r, "undefined kind")
	}
	return nil
}
