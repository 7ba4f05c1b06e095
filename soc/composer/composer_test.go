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

package composer_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/soc/composer"
	"github.com/jetsetilly/socfabric/soc/peripheral"
	"github.com/jetsetilly/socfabric/test"
)

var ps7 = bus.Master{
	Description: bus.Description{ID: "ps7", Protocol: bus.AXI, AddressWidth: 32, DataWidth: 32, IDWidth: 12},
}

var vexriscv = bus.Master{
	Description: bus.Description{ID: "vexriscv", Protocol: bus.Wishbone, AddressWidth: 32, DataWidth: 32},
}

func newComposer(t *testing.T, window int) *composer.Composer {
	t.Helper()
	cmp, err := composer.NewComposer(composer.Config{
		Name:         "test",
		Fabric:       composer.DefaultFabric,
		BridgeWindow: window,
	})
	test.DemandSuccess(t, err)
	return cmp
}

func memory(id string, size uint64, readOnly bool) *peripheral.Memory {
	return peripheral.NewMemory(id, size, 32, readOnly, peripheral.Timing{})
}

func prepare(t *testing.T) *composer.Composer {
	t.Helper()
	cmp := newComposer(t, 0)
	test.DemandSuccess(t, cmp.RegisterMaster(ps7))
	test.DemandSuccess(t, cmp.RegisterSlave(memory("rom", 0x2000, true), addrspace.NewRegion("rom", 0x0, 0x2000, addrspace.ROM)))
	test.DemandSuccess(t, cmp.RegisterSlave(memory("sram", 0x1000, false), addrspace.NewRegion("sram", 0x2000, 0x1000, addrspace.RAM)))
	test.DemandSuccess(t, cmp.RegisterSlave(peripheral.NewCSR("csr", 0x10000, 32, peripheral.Timing{}), addrspace.NewRegion("csr", 0x43c0_0000, 0x10000, addrspace.MMIO)))
	return cmp
}

func TestFinalize(t *testing.T) {
	cmp := prepare(t)
	test.ExpectEquality(t, cmp.State(), composer.Building)

	lay, err := cmp.Finalize()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmp.State(), composer.Finalized)

	r, ok := lay.Space().Decode(0x1500)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Name, "rom")

	r, ok = lay.Space().Decode(0x2500)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Name, "sram")

	_, ok = lay.Space().Decode(0x1_0000)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, len(lay.Masters()), 1)
	test.ExpectEquality(t, len(lay.SlaveList()), 3)
	test.ExpectEquality(t, len(lay.Slaves()), 3)
	test.ExpectEquality(t, lay.Slaves()["csr"].Describe().ID, "csr")
	test.ExpectEquality(t, lay.Fabric().Protocol, bus.Wishbone)

	// the AXI master has been bridged
	test.DemandEquality(t, len(lay.Bridges()), 1)
	b, ok := lay.Bridge("ps7")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, b.Pair(), bus.Pair{From: bus.AXI, To: bus.Wishbone})
	test.ExpectEquality(t, b.Capacity(), 4096)
}

func TestOverlap(t *testing.T) {
	cmp := prepare(t)

	err := cmp.RegisterSlave(peripheral.NewCSR("csr2", 0x100, 32, peripheral.Timing{}),
		addrspace.NewRegion("csr2", 0x43c0_0500, 0x100, addrspace.MMIO))
	test.ExpectSuccess(t, curated.Is(err, addrspace.OverlapError))

	lay, err := cmp.Finalize()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.Space().Len(), 3)
	test.ExpectEquality(t, len(lay.SlaveList()), 3)
	_, err = lay.Space().Lookup("csr2")
	test.ExpectSuccess(t, curated.Is(err, addrspace.NotFoundError))
}

func TestDuplicates(t *testing.T) {
	cmp := prepare(t)

	err := cmp.RegisterSlave(memory("sram_b", 0x1000, false), addrspace.NewRegion("sram", 0x8000_0000, 0x1000, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, addrspace.DuplicateNameError))

	err = cmp.RegisterSlave(memory("sram", 0x1000, false), addrspace.NewRegion("sram_b", 0x8000_0000, 0x1000, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, composer.DuplicateNameError))

	err = cmp.RegisterMaster(ps7)
	test.ExpectSuccess(t, curated.Is(err, composer.DuplicateNameError))
}

func TestAlreadyFinalized(t *testing.T) {
	cmp := prepare(t)
	_, err := cmp.Finalize()
	test.DemandSuccess(t, err)

	err = cmp.RegisterMaster(vexriscv)
	test.ExpectSuccess(t, curated.Is(err, composer.AlreadyFinalizedError))

	err = cmp.RegisterSlave(memory("main_ram", 0x1000, false), addrspace.NewRegion("main_ram", 0x4000_0000, 0x1000, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, composer.AlreadyFinalizedError))

	err = cmp.AddRegion(addrspace.NewRegion("bios", 0x0, 0x100, addrspace.LinkerOnly))
	test.ExpectSuccess(t, curated.Is(err, composer.AlreadyFinalizedError))

	lay, err := cmp.Finalize()
	test.ExpectSuccess(t, curated.Is(err, composer.AlreadyFinalizedError))
	test.ExpectSuccess(t, lay == nil)
}

func TestUnreachableMaster(t *testing.T) {
	cmp := prepare(t)

	narrow := bus.Master{
		Description: bus.Description{ID: "jtag", Protocol: bus.Wishbone, AddressWidth: 16, DataWidth: 32},
	}
	test.DemandSuccess(t, cmp.RegisterMaster(narrow))

	_, err := cmp.Finalize()
	test.ExpectSuccess(t, curated.Is(err, composer.UnreachableMasterError))

	// a failed finalize leaves the composer building
	test.ExpectEquality(t, cmp.State(), composer.Building)
}

func TestUnreachableRegion(t *testing.T) {
	narrow := bus.Master{
		Description: bus.Description{ID: "jtag", Protocol: bus.Wishbone, AddressWidth: 16, DataWidth: 32},
	}

	// memory outside of the fabric must be reachable too
	cmp := newComposer(t, 0)
	test.DemandSuccess(t, cmp.RegisterMaster(narrow))
	test.DemandSuccess(t, cmp.AddRegion(addrspace.NewRegion("main_ram", 0x4000_0000, 0x1000, addrspace.RAM)))

	lay, err := cmp.Finalize()
	test.ExpectSuccess(t, curated.Is(err, composer.UnreachableMasterError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "main_ram"))
	test.ExpectSuccess(t, lay == nil)

	// linker regions do not decode and are never out of reach
	cmp = newComposer(t, 0)
	test.DemandSuccess(t, cmp.RegisterMaster(narrow))
	test.DemandSuccess(t, cmp.AddRegion(addrspace.NewRegion("main_ram", 0x4000_0000, 0x1000, addrspace.LinkerOnly)))
	test.DemandSuccess(t, cmp.AddRegion(addrspace.NewRegion("sram", 0x1000, 0x1000, addrspace.RAM)))

	_, err = cmp.Finalize()
	test.ExpectSuccess(t, err)
}

func TestWindowedMaster(t *testing.T) {
	cmp := prepare(t)

	gp := ps7
	gp.ID = "gp1"
	gp.Window = bus.Window{Base: 0x8000_0000, Size: 0x4000_0000, Remap: 0x8000_0000}
	test.DemandSuccess(t, cmp.RegisterMaster(gp))

	_, err := cmp.Finalize()
	test.ExpectSuccess(t, curated.Is(err, composer.UnreachableMasterError))

	// window onto the CSR region
	cmp = prepare(t)
	gp.Window = bus.Window{Base: 0x4000_0000, Size: 0x4000_0000, Remap: 0x4000_0000}
	test.DemandSuccess(t, cmp.RegisterMaster(gp))
	_, err = cmp.Finalize()
	test.ExpectSuccess(t, err)

	// window beyond the reach of the master
	cmp = prepare(t)
	gp.Window = bus.Window{Base: 0xf000_0000, Size: 0x2000_0000}
	test.ExpectSuccess(t, curated.Is(cmp.RegisterMaster(gp), composer.InvalidMasterError))
}

func TestBridgeWindow(t *testing.T) {
	cmp := newComposer(t, 16)
	test.DemandSuccess(t, cmp.RegisterMaster(ps7))
	test.DemandSuccess(t, cmp.RegisterMaster(vexriscv))
	test.DemandSuccess(t, cmp.RegisterSlave(memory("sram", 0x2000, false), addrspace.NewRegion("sram", 0x1000_0000, 0x2000, addrspace.RAM)))

	lay, err := cmp.Finalize()
	test.DemandSuccess(t, err)

	b, ok := lay.Bridge("ps7")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, b.Capacity(), 16)

	_, ok = lay.Bridge("vexriscv")
	test.ExpectFailure(t, ok)
}

type axiSlave struct {
	*peripheral.Memory
}

func (s axiSlave) Describe() bus.Description {
	d := s.Memory.Describe()
	d.Protocol = bus.AXI
	return d
}

func TestSlaveChecks(t *testing.T) {
	cmp := newComposer(t, 0)

	err := cmp.RegisterSlave(axiSlave{memory("ddr", 0x1000, false)}, addrspace.NewRegion("ddr", 0x0, 0x1000, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, composer.ProtocolMismatchError))

	err = cmp.RegisterSlave(memory("bios", 0x1000, true), addrspace.NewRegion("bios", 0x0, 0x1000, addrspace.LinkerOnly))
	test.ExpectSuccess(t, curated.Is(err, composer.InvalidSlaveError))

	err = cmp.RegisterSlave(memory("sram", 0x2000, false), addrspace.NewRegion("sram", 0x1000, 0x2000, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, addrspace.UnalignedError))

	err = cmp.RegisterSlave(memory("sram", 0x2000, false), addrspace.NewRegion("sram", 0x0, 0, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, addrspace.InvalidRegionError))
}

func TestAddRegion(t *testing.T) {
	cmp := prepare(t)

	// linker region over a physical region
	test.ExpectSuccess(t, cmp.AddRegion(addrspace.NewRegion("bios", 0x0, 0x8000, addrspace.LinkerOnly)))

	// memory outside of the fabric
	test.ExpectSuccess(t, cmp.AddRegion(addrspace.NewRegion("main_ram", 0x8000_0000, 0x1000_0000, addrspace.RAM)))

	err := cmp.AddRegion(addrspace.NewRegion("ddr", 0x8800_0000, 0x1000_0000, addrspace.RAM))
	test.ExpectSuccess(t, curated.Is(err, addrspace.OverlapError))

	lay, err := cmp.Finalize()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.Space().Len(), 5)
	test.ExpectEquality(t, len(lay.Slaves()), 3)
}

func TestSummary(t *testing.T) {
	cmp := prepare(t)
	lay, err := cmp.Finalize()
	test.DemandSuccess(t, err)

	s := lay.Summary()
	test.ExpectSuccess(t, strings.HasPrefix(s, "test: wishbone fabric (a32 d32)\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  ps7 (axi a32 d32 id12) via axi->wishbone bridge (4096 slots)\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  csr -> csr\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  0x00002000 -> 0x00002fff\tRAM   \tsram"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "  top 0x43c0ffff\n"))
}

func TestVisualise(t *testing.T) {
	cmp := prepare(t)
	lay, err := cmp.Finalize()
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	lay.Visualise(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "sram"))
}

func TestConfig(t *testing.T) {
	_, err := composer.NewComposer(composer.Config{
		Fabric: bus.Description{Protocol: bus.AXI, AddressWidth: 32, DataWidth: 32},
	})
	test.ExpectSuccess(t, curated.Is(err, composer.InvalidConfigError))

	_, err = composer.NewComposer(composer.Config{})
	test.ExpectSuccess(t, curated.Is(err, composer.InvalidConfigError))

	_, err = composer.NewComposer(composer.Config{Fabric: composer.DefaultFabric, BridgeWindow: -1})
	test.ExpectSuccess(t, curated.Is(err, composer.InvalidConfigError))
}
