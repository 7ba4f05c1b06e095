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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/socfabric/cpu"
	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/test"
)

func group(t *testing.T, c cpu.CPU, name string) cpu.Group {
	t.Helper()
	for _, g := range c.Groups() {
		if g.Name == name {
			return g
		}
	}
	t.Fatalf("no group named %s", name)
	return cpu.Group{}
}

func hasGroup(c cpu.CPU, name string) bool {
	for _, g := range c.Groups() {
		if g.Name == name {
			return true
		}
	}
	return false
}

func TestPS7Default(t *testing.T) {
	ps, err := cpu.MakePS7Builder().Build()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, ps.Name(), "zynq7000")
	test.ExpectEquality(t, ps.Variant(), "default")

	_, ok := ps.ResetAddress()
	test.ExpectFailure(t, ok)

	m := ps.Masters()
	test.DemandEquality(t, len(m), 1)
	test.ExpectEquality(t, m[0].Description.String(), "ps7 (axi a32 d32 id12)")
	test.ExpectFailure(t, m[0].Window.Restricted())

	gp0 := group(t, ps, "m_axi_gp0")
	test.ExpectEquality(t, len(gp0.Ports), 30)
	p, ok := gp0.Lookup("M_AXI_GP0_ARID")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, bus.Port{Name: "M_AXI_GP0_ARID", Width: 12, Dir: bus.Out})
	p, ok = gp0.Lookup("M_AXI_GP0_RDATA")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p.Dir, bus.In)

	test.ExpectEquality(t, len(group(t, ps, "fclk").Ports), 2)
	test.ExpectEquality(t, group(t, ps, "ddr").Width(), 71)
	test.ExpectFailure(t, hasGroup(ps, "enet0"))
	test.ExpectFailure(t, hasGroup(ps, "usb0"))

	f, ok := ps.FabricClock(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, 100e6)
	_, ok = ps.FabricClock(1)
	test.ExpectFailure(t, ok)
}

func TestPS7Omitted(t *testing.T) {
	ps, err := cpu.MakePS7Builder().WithPreset("ebaz4205").WithEthernet().WithUSB().Build()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, ps.Variant(), "ebaz4205")
	test.ExpectEquality(t, len(group(t, ps, "enet0").Ports), 6)
	test.ExpectEquality(t, len(group(t, ps, "usb0").Ports), 2)

	// the signals that the board does not wire are never created
	for _, p := range cpu.Signals(ps) {
		test.ExpectFailure(t, strings.Contains(p.Name, "MDIO"), p.Name)
		test.ExpectFailure(t, strings.HasSuffix(p.Name, "TX_ER"), p.Name)
		test.ExpectFailure(t, strings.HasSuffix(p.Name, "RX_ER"), p.Name)
		test.ExpectFailure(t, strings.HasSuffix(p.Name, "_COL"), p.Name)
		test.ExpectFailure(t, strings.HasSuffix(p.Name, "_CRS"), p.Name)
		test.ExpectFailure(t, strings.Contains(p.Name, "PWRFAULT"), p.Name)
	}

	params := map[string]string{}
	for _, p := range ps.Params() {
		params[p.Name] = p.Value
	}
	test.ExpectEquality(t, params["PCW_ENET0_PERIPHERAL_ENABLE"], "1")
	test.ExpectEquality(t, params["PCW_ENET0_GRP_MDIO_ENABLE"], "0")
	test.ExpectEquality(t, params["PCW_USB0_PERIPHERAL_ENABLE"], "1")
	test.ExpectEquality(t, params["PCW_M_AXI_GP0_ID_WIDTH"], "12")
	test.ExpectEquality(t, params["PCW_FPGA0_PERIPHERAL_FREQMHZ"], "100")
}

func TestPS7Builder(t *testing.T) {
	// the builder is a value and configuring a copy leaves the original
	// as it was
	b := cpu.MakePS7Builder()
	_ = b.WithEthernet().WithIDWidth(6)
	ps, err := b.Build()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, hasGroup(ps, "enet0"))
	test.ExpectEquality(t, ps.Masters()[0].IDWidth, 12)

	ps, err = b.WithIDWidth(6).WithFabricClock(1, 50e6).Build()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ps.Masters()[0].IDWidth, 6)
	test.ExpectEquality(t, len(group(t, ps, "fclk").Ports), 3)
	f, ok := ps.FabricClock(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, 50e6)

	_, err = b.WithIDWidth(0).Build()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidParamError))
	_, err = b.WithIDWidth(13).Build()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidParamError))
	_, err = b.WithPreset("").Build()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidParamError))

	// a gap in the fabric clocks
	_, err = b.WithFabricClock(2, 25e6).Build()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidParamError))

	// too many fabric clocks
	_, err = b.WithFabricClock(4, 25e6).Build()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidParamError))
}

func TestVexRiscv(t *testing.T) {
	vex, err := cpu.NewVexRiscv("minimal", 0x8004_0000)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, vex.Name(), "vexriscv")
	test.ExpectEquality(t, vex.Variant(), "minimal")
	test.ExpectEquality(t, vex.Configuration().Arch, "rv32i")
	test.ExpectEquality(t, vex.Configuration().ICache, 0)

	r, ok := vex.ResetAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, uint64(0x8004_0000))

	m := vex.Masters()
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[0].Description.String(), "vexriscv_ibus (wishbone a32 d32)")
	test.ExpectEquality(t, m[1].Description.String(), "vexriscv_dbus (wishbone a32 d32)")

	ibus := group(t, vex, "ibus")
	test.ExpectEquality(t, len(ibus.Ports), 11)
	p, ok := ibus.Lookup("ibus_adr")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p.Width, 30)
	test.ExpectFailure(t, hasGroup(vex, "debug"))

	vex, err = cpu.NewVexRiscv("Linux+debug", 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vex.Variant(), "linux+debug")
	test.ExpectSuccess(t, vex.Configuration().MMU)
	test.ExpectSuccess(t, hasGroup(vex, "debug"))
	test.ExpectEquality(t, vex.Configuration().String(), "linux (rv32ima) i$4096 d$4096 mmu debug")

	_, err = cpu.NewVexRiscv("turbo", 0)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownVariantError))

	_, err = cpu.NewVexRiscv("minimal", 0x8000_0002)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidParamError))

	test.ExpectEquality(t, strings.Join(cpu.VexRiscvVariants(), ","), "full,linux,lite,minimal,standard")
}

func TestNew(t *testing.T) {
	test.ExpectEquality(t, strings.Join(cpu.Types(), ","), "vexriscv,zynq7000")

	c, err := cpu.New("vexriscv", "", 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Variant(), "standard")

	c, err = cpu.New("ZYNQ7000", "ebaz4205", 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Variant(), "ebaz4205")

	_, err = cpu.New("z80", "", 0)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownCPUError))
}

func TestSummary(t *testing.T) {
	c, err := cpu.New("vexriscv", "minimal", 0x8004_0000)
	test.DemandSuccess(t, err)

	s := cpu.Summary(c)
	test.ExpectSuccess(t, strings.HasPrefix(s, "vexriscv (minimal)\nreset: 0x80040000\n"))
	test.ExpectSuccess(t, strings.Contains(s, "master: vexriscv_dbus (wishbone a32 d32)\n"))
	test.ExpectSuccess(t, strings.Contains(s, "ibus: 11 ports"))
}
