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
	"sort"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
)

// AddressSpace is an ordered collection of regions. The zero value is an
// empty address space ready for use.
//
// An AddressSpace has no locking of its own and is intended to be owned by
// one composer. Use Freeze() to get a read-only view that can be shared.
type AddressSpace struct {
	// ordered by base address. regions with the same base are ordered by name
	regions []Region
}

// Allocate a region with the default attributes for the kind. See Insert()
// for details of the conditions that cause an error.
func (as *AddressSpace) Allocate(name string, base uint64, size uint64, kind Kind) (Region, error) {
	r := NewRegion(name, base, size, kind)
	if err := as.Insert(r); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Insert adds the region to the address space. Fails with a DuplicateNameError
// if a region with the same name already exists, and with an OverlapError if
// the region intersects an existing region and neither region is LinkerOnly.
//
// The address space is unchanged if an error is returned.
func (as *AddressSpace) Insert(r Region) error {
	if err := as.Check(r); err != nil {
		return err
	}

	if r.Kind == LinkerOnly {
		r.Linker = true
	}

	i := sort.Search(len(as.regions), func(i int) bool {
		e := as.regions[i]
		if e.Base == r.Base {
			return e.Name > r.Name
		}
		return e.Base > r.Base
	})

	as.regions = append(as.regions, Region{})
	copy(as.regions[i+1:], as.regions[i:])
	as.regions[i] = r

	return nil
}

// Check returns the error that Insert() would return for the region without
// changing the address space.
func (as *AddressSpace) Check(r Region) error {
	if err := r.validate(); err != nil {
		return err
	}

	for _, e := range as.regions {
		if e.Name == r.Name {
			return curated.Errorf(DuplicateNameError, r.Name)
		}
	}

	if r.Decodes() {
		for _, e := range as.regions {
			if e.Decodes() && e.Overlaps(r) {
				return curated.Errorf(OverlapError, r.Name, r.Base, r.Base+r.Size, e.Name, e.Base, e.Base+e.Size)
			}
		}
	}

	return nil
}

// Lookup returns the region with the name. Fails with NotFoundError.
func (as *AddressSpace) Lookup(name string) (Region, error) {
	return lookup(as.regions, name)
}

// Decode returns the region that contains the address. The second return
// value is false if the address is not mapped.
func (as *AddressSpace) Decode(address uint64) (Region, bool) {
	return decode(as.regions, address)
}

// Regions returns a copy of the regions in base address order.
func (as *AddressSpace) Regions() []Region {
	c := make([]Region, len(as.regions))
	copy(c, as.regions)
	return c
}

// Len returns the number of regions.
func (as *AddressSpace) Len() int {
	return len(as.regions)
}

// Freeze returns a read-only copy of the address space.
func (as *AddressSpace) Freeze() *Frozen {
	return &Frozen{regions: as.Regions()}
}

// Summary returns a multiline string detailing all the regions.
func (as *AddressSpace) Summary() string {
	return summary(as.regions)
}

func lookup(regions []Region, name string) (Region, error) {
	for _, r := range regions {
		if r.Name == name {
			return r, nil
		}
	}
	return Region{}, curated.Errorf(NotFoundError, name)
}

func decode(regions []Region, address uint64) (Region, bool) {
	// index of the first region with a base beyond the address
	idx := sort.Search(len(regions), func(i int) bool {
		return regions[i].Base > address
	})

	// physical regions do not overlap so only the nearest physical region
	// below the address can contain it
	for i := idx - 1; i >= 0; i-- {
		if !regions[i].Decodes() {
			continue
		}
		if regions[i].Contains(address) {
			return regions[i], true
		}
		break // for loop
	}

	for i := idx - 1; i >= 0; i-- {
		if !regions[i].Decodes() && regions[i].Contains(address) {
			return regions[i], true
		}
	}

	return Region{}, false
}

func summary(regions []Region) string {
	s := strings.Builder{}
	for _, r := range regions {
		var attr []string
		if r.Cached {
			attr = append(attr, "cached")
		}
		if r.ReadOnly {
			attr = append(attr, "ro")
		}
		if r.Linker {
			attr = append(attr, "linker")
		}
		s.WriteString(fmt.Sprintf("%#010x -> %#010x\t%-6s\t%s", r.Base, r.Last(), r.Kind, r.Name))
		if len(attr) > 0 {
			s.WriteString(fmt.Sprintf("\t(%s)", strings.Join(attr, ", ")))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Frozen is a read-only view of an AddressSpace. It is safe for concurrent
// use.
type Frozen struct {
	regions []Region
}

// Lookup returns the region with the name. Fails with NotFoundError.
func (f *Frozen) Lookup(name string) (Region, error) {
	return lookup(f.regions, name)
}

// Decode returns the region that contains the address. The second return
// value is false if the address is not mapped.
func (f *Frozen) Decode(address uint64) (Region, bool) {
	return decode(f.regions, address)
}

// Regions returns a copy of the regions in base address order.
func (f *Frozen) Regions() []Region {
	c := make([]Region, len(f.regions))
	copy(c, f.regions)
	return c
}

// Len returns the number of regions.
func (f *Frozen) Len() int {
	return len(f.regions)
}

// Summary returns a multiline string detailing all the regions.
func (f *Frozen) Summary() string {
	return summary(f.regions)
}

// Top returns the highest address of any physical region. The second return
// value is false if there are no physical regions.
func (f *Frozen) Top() (uint64, bool) {
	var top uint64
	var ok bool
	for _, r := range f.regions {
		if r.Decodes() && (!ok || r.Last() > top) {
			top = r.Last()
			ok = true
		}
	}
	return top, ok
}
