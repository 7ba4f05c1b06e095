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

package addrspace_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/test"
)

func prepare(t *testing.T) *addrspace.AddressSpace {
	t.Helper()
	as := &addrspace.AddressSpace{}

	_, err := as.Allocate("rom", 0x0, 0x2000, addrspace.ROM)
	test.DemandSuccess(t, err)
	_, err = as.Allocate("sram", 0x2000, 0x1000, addrspace.RAM)
	test.DemandSuccess(t, err)
	_, err = as.Allocate("csr", 0x43c0_0000, 0x10000, addrspace.MMIO)
	test.DemandSuccess(t, err)

	return as
}

func TestDecode(t *testing.T) {
	as := prepare(t)

	r, ok := as.Decode(0x1500)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Name, "rom")

	r, ok = as.Decode(0x2500)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Name, "sram")

	r, ok = as.Decode(0x43c0_ffff)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Name, "csr")

	// first and last byte of a region
	r, _ = as.Decode(0x0)
	test.ExpectEquality(t, r.Name, "rom")
	r, _ = as.Decode(0x1fff)
	test.ExpectEquality(t, r.Name, "rom")
	r, _ = as.Decode(0x2000)
	test.ExpectEquality(t, r.Name, "sram")

	_, ok = as.Decode(0x1_0000)
	test.ExpectFailure(t, ok)
	_, ok = as.Decode(0x3000)
	test.ExpectFailure(t, ok)
	_, ok = as.Decode(0x43c1_0000)
	test.ExpectFailure(t, ok)
}

func TestOverlap(t *testing.T) {
	as := prepare(t)
	before := as.Summary()

	_, err := as.Allocate("csr2", 0x43c0_0500, 0x100, addrspace.MMIO)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, addrspace.OverlapError))

	// no partial insert
	test.ExpectEquality(t, as.Len(), 3)
	test.ExpectEquality(t, as.Summary(), before)
	_, err = as.Lookup("csr2")
	test.ExpectSuccess(t, curated.Is(err, addrspace.NotFoundError))

	// adjacent regions do not overlap
	_, err = as.Allocate("sram2", 0x3000, 0x1000, addrspace.RAM)
	test.ExpectSuccess(t, err)
}

func TestDuplicateName(t *testing.T) {
	as := prepare(t)

	_, err := as.Allocate("sram", 0x8000_0000, 0x1000, addrspace.RAM)
	test.ExpectSuccess(t, curated.Is(err, addrspace.DuplicateNameError))
	test.ExpectEquality(t, as.Len(), 3)

	// duplicate names are rejected even for linker only regions
	_, err = as.Allocate("rom", 0x0, 0x100, addrspace.LinkerOnly)
	test.ExpectSuccess(t, curated.Is(err, addrspace.DuplicateNameError))
}

func TestInvalidRegion(t *testing.T) {
	as := &addrspace.AddressSpace{}

	_, err := as.Allocate("empty", 0x1000, 0, addrspace.RAM)
	test.ExpectSuccess(t, curated.Is(err, addrspace.InvalidRegionError))

	_, err = as.Allocate("wrap", 0xffff_ffff_ffff_f000, 0x2000, addrspace.RAM)
	test.ExpectSuccess(t, curated.Is(err, addrspace.InvalidRegionError))

	_, err = as.Allocate("", 0x1000, 0x10, addrspace.RAM)
	test.ExpectSuccess(t, curated.Is(err, addrspace.InvalidRegionError))

	// a region that ends on the very last address is fine
	_, err = as.Allocate("top", 0xffff_ffff_ffff_f000, 0x1000, addrspace.RAM)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, as.Len(), 1)
}

func TestLinkerOnly(t *testing.T) {
	as := &addrspace.AddressSpace{}

	_, err := as.Allocate("spiflash", 0x8000_0000, 0x100_0000, addrspace.MMIO)
	test.DemandSuccess(t, err)

	// linker region inside a physical region
	r, err := as.Allocate("rom", 0x8004_0000, 0x8000, addrspace.LinkerOnly)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.Linker)
	test.ExpectFailure(t, r.Decodes())

	// physical region is preferred
	d, ok := as.Decode(0x8004_0010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Name, "spiflash")

	// linker region with no physical backing
	_, err = as.Allocate("shadow", 0x0, 0x2000_0000, addrspace.LinkerOnly)
	test.DemandSuccess(t, err)

	d, ok = as.Decode(0x1000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Name, "shadow")
	test.ExpectEquality(t, d.Kind, addrspace.LinkerOnly)

	// physical region placed over an existing linker region
	_, err = as.Allocate("sram", 0x1000_0000, 0x2000, addrspace.RAM)
	test.DemandSuccess(t, err)

	d, _ = as.Decode(0x1000_0100)
	test.ExpectEquality(t, d.Name, "sram")
	d, _ = as.Decode(0x1000_2000)
	test.ExpectEquality(t, d.Name, "shadow")
}

func TestOrdering(t *testing.T) {
	as := &addrspace.AddressSpace{}
	as.Allocate("c", 0x3000, 0x100, addrspace.RAM)
	as.Allocate("a", 0x1000, 0x100, addrspace.RAM)
	as.Allocate("b", 0x2000, 0x100, addrspace.RAM)
	as.Allocate("z", 0x1000, 0x10, addrspace.LinkerOnly)

	var names []string
	for _, r := range as.Regions() {
		names = append(names, r.Name)
	}
	test.ExpectEquality(t, strings.Join(names, ","), "a,z,b,c")
}

func TestLookup(t *testing.T) {
	as := prepare(t)

	r, err := as.Lookup("csr")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Base, uint64(0x43c0_0000))
	test.ExpectEquality(t, r.Size, uint64(0x10000))
	test.ExpectEquality(t, r.Kind, addrspace.MMIO)
	test.ExpectFailure(t, r.Cached)

	_, err = as.Lookup("main_ram")
	test.ExpectSuccess(t, curated.Is(err, addrspace.NotFoundError))
}

func TestFreeze(t *testing.T) {
	as := prepare(t)
	f := as.Freeze()

	// changes to the original do not affect the frozen copy
	as.Allocate("main_ram", 0x4000_0000, 0x1000_0000, addrspace.RAM)
	test.ExpectEquality(t, f.Len(), 3)
	_, ok := f.Decode(0x4000_0000)
	test.ExpectFailure(t, ok)

	top, ok := f.Top()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, top, uint64(0x43c0_ffff))
}

func TestSummary(t *testing.T) {
	as := prepare(t)
	s := as.Summary()

	test.ExpectEquality(t, strings.Count(s, "\n"), 3)
	test.ExpectSuccess(t, strings.HasPrefix(s, "0x00000000 -> 0x00001fff\tROM   \trom\t(cached, ro, linker)\n"))
	test.ExpectSuccess(t, strings.Contains(s, "0x43c00000 -> 0x43c0ffff\tMMIO  \tcsr\n"))
}

func TestAlignment(t *testing.T) {
	test.ExpectSuccess(t, addrspace.IsPowerOfTwo(uint32(0x1000)))
	test.ExpectFailure(t, addrspace.IsPowerOfTwo(uint32(0x1001)))
	test.ExpectFailure(t, addrspace.IsPowerOfTwo(uint64(0)))
	test.ExpectEquality(t, addrspace.NextPowerOfTwo(uint64(0x1800)), uint64(0x2000))
	test.ExpectEquality(t, addrspace.NextPowerOfTwo(uint64(0x2000)), uint64(0x2000))
	test.ExpectEquality(t, addrspace.AlignUp(uint64(0x1801), 0x800), uint64(0x2000))

	err := addrspace.CheckDecoderAlignment(addrspace.NewRegion("csr", 0x43c0_0000, 0x10000, addrspace.MMIO))
	test.ExpectSuccess(t, err)

	err = addrspace.CheckDecoderAlignment(addrspace.NewRegion("sram", 0x1000, 0x1800, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, addrspace.UnalignedError))

	// size rounded up to a power of two
	err = addrspace.CheckDecoderAlignment(addrspace.NewRegion("sram", 0x2000, 0x1800, addrspace.RAM))
	test.ExpectSuccess(t, err)
}

func TestParseKind(t *testing.T) {
	for _, k := range []addrspace.Kind{addrspace.RAM, addrspace.ROM, addrspace.MMIO, addrspace.LinkerOnly} {
		p, err := addrspace.ParseKind(k.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, k)
	}
	_, err := addrspace.ParseKind("flash")
	test.ExpectSuccess(t, curated.Is(err, addrspace.UnknownKindError))
}
