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

package cpu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// the GP0 master port of the processing system has 12 ID bits and a 32 bit
// data bus
const (
	ps7MaxIDWidth = 12
	ps7DataWidth  = 32
	ps7MaxClocks  = 4
)

// Param is a configuration parameter of the processing system.
type Param struct {
	Name  string
	Value string
}

func (p Param) String() string {
	return fmt.Sprintf("%s = %s", p.Name, p.Value)
}

// PS7Builder collects the configuration of a Zynq-7000 processing system.
// The zero value is not usable. Use MakePS7Builder().
type PS7Builder struct {
	preset   string
	idWidth  int
	clocks   []float64
	ethernet bool
	usb      bool
}

// MakePS7Builder returns a builder with one 100MHz fabric clock and the GP0
// master port. No optional peripherals are routed to the fabric.
func MakePS7Builder() PS7Builder {
	return PS7Builder{
		preset:  "default",
		idWidth: ps7MaxIDWidth,
		clocks:  []float64{100e6},
	}
}

// WithPreset names the board preset that configures the fixed IO.
func (b PS7Builder) WithPreset(preset string) PS7Builder {
	b.preset = preset
	return b
}

// WithIDWidth sets the number of ID bits on the GP0 master port.
func (b PS7Builder) WithIDWidth(idWidth int) PS7Builder {
	b.idWidth = idWidth
	return b
}

// WithFabricClock sets the frequency of the numbered fabric clock. Clocks
// must be added in order.
func (b PS7Builder) WithFabricClock(n int, hz float64) PS7Builder {
	c := make([]float64, len(b.clocks))
	copy(c, b.clocks)
	if n < len(c) {
		c[n] = hz
	} else {
		// a gap is left as a zero frequency and is caught by Build()
		for len(c) < n {
			c = append(c, 0)
		}
		c = append(c, hz)
	}
	b.clocks = c
	return b
}

// WithEthernet routes ENET0 to the fabric as GMII through EMIO. MDIO and the
// GMII error and collision signals are not routed.
func (b PS7Builder) WithEthernet() PS7Builder {
	b.ethernet = true
	return b
}

// WithUSB routes the USB0 port indicator and power select signals to the
// fabric. The VBUS power fault input is not routed.
func (b PS7Builder) WithUSB() PS7Builder {
	b.usb = true
	return b
}

// Build checks the configuration and creates the description of the
// processing system.
func (b PS7Builder) Build() (*PS7, error) {
	if b.preset == "" {
		return nil, curated.Errorf(InvalidParamError, TypeZynq7000, "no preset")
	}
	if b.idWidth < 1 || b.idWidth > ps7MaxIDWidth {
		return nil, curated.Errorf(InvalidParamError, TypeZynq7000, fmt.Sprintf("id width of %d is not in the range 1 to %d", b.idWidth, ps7MaxIDWidth))
	}
	if len(b.clocks) > ps7MaxClocks {
		return nil, curated.Errorf(InvalidParamError, TypeZynq7000, fmt.Sprintf("only %d fabric clocks", ps7MaxClocks))
	}
	for i, c := range b.clocks {
		if c <= 0 {
			return nil, curated.Errorf(InvalidParamError, TypeZynq7000, fmt.Sprintf("fabric clock %d has no frequency", i))
		}
	}

	ps := &PS7{
		preset: b.preset,
		master: bus.Master{
			Description: bus.Description{
				ID:           "ps7",
				Protocol:     bus.AXI,
				AddressWidth: 32,
				DataWidth:    ps7DataWidth,
				IDWidth:      b.idWidth,
			},
		},
		clocks: append([]float64(nil), b.clocks...),
	}

	ps.groups = append(ps.groups, ps7DDR(), ps7FixedIO(), ps7Clocks(b.clocks))

	axi, err := ps7GP0(ps.master)
	if err != nil {
		return nil, err
	}
	ps.groups = append(ps.groups, axi)

	if b.ethernet {
		ps.groups = append(ps.groups, ps7Ethernet())
	}
	if b.usb {
		ps.groups = append(ps.groups, ps7USB())
	}

	ps.params = b.params()

	return ps, nil
}

func enabled(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// params is the complete parameter set for the configuration. nothing is
// ever removed from the list once it is made
func (b PS7Builder) params() []Param {
	p := []Param{
		{Name: "PCW_PRESET", Value: b.preset},
		{Name: "PCW_USE_M_AXI_GP0", Value: "1"},
		{Name: "PCW_M_AXI_GP0_ID_WIDTH", Value: fmt.Sprintf("%d", b.idWidth)},
		{Name: "PCW_M_AXI_GP0_ENABLE_STATIC_REMAP", Value: "0"},
		{Name: "PCW_ENET0_PERIPHERAL_ENABLE", Value: enabled(b.ethernet)},
		{Name: "PCW_USB0_PERIPHERAL_ENABLE", Value: enabled(b.usb)},
	}

	if b.ethernet {
		p = append(p,
			Param{Name: "PCW_ENET0_ENET0_IO", Value: "EMIO"},
			Param{Name: "PCW_ENET0_GRP_MDIO_ENABLE", Value: "0"},
		)
	}

	for i, c := range b.clocks {
		p = append(p,
			Param{Name: fmt.Sprintf("PCW_EN_CLK%d_PORT", i), Value: "1"},
			Param{Name: fmt.Sprintf("PCW_FPGA%d_PERIPHERAL_FREQMHZ", i), Value: fmt.Sprintf("%g", c/1e6)},
		)
	}

	sort.Slice(p, func(i, j int) bool {
		return p[i].Name < p[j].Name
	})

	return p
}

func ps7DDR() Group {
	return Group{
		Name: "ddr",
		Ports: []bus.Port{
			{Name: "DDR_Addr", Width: 15, Dir: bus.InOut},
			{Name: "DDR_BankAddr", Width: 3, Dir: bus.InOut},
			{Name: "DDR_CAS_n", Width: 1, Dir: bus.InOut},
			{Name: "DDR_CKE", Width: 1, Dir: bus.InOut},
			{Name: "DDR_CS_n", Width: 1, Dir: bus.InOut},
			{Name: "DDR_Clk", Width: 1, Dir: bus.InOut},
			{Name: "DDR_Clk_n", Width: 1, Dir: bus.InOut},
			{Name: "DDR_DM", Width: 4, Dir: bus.InOut},
			{Name: "DDR_DQ", Width: 32, Dir: bus.InOut},
			{Name: "DDR_DQS", Width: 4, Dir: bus.InOut},
			{Name: "DDR_DQS_n", Width: 4, Dir: bus.InOut},
			{Name: "DDR_DRSTB", Width: 1, Dir: bus.InOut},
			{Name: "DDR_ODT", Width: 1, Dir: bus.InOut},
			{Name: "DDR_RAS_n", Width: 1, Dir: bus.InOut},
			{Name: "DDR_WEB", Width: 1, Dir: bus.InOut},
		},
	}
}

func ps7FixedIO() Group {
	return Group{
		Name: "fixed_io",
		Ports: []bus.Port{
			{Name: "MIO", Width: 54, Dir: bus.InOut},
			{Name: "DDR_VRN", Width: 1, Dir: bus.InOut},
			{Name: "DDR_VRP", Width: 1, Dir: bus.InOut},
			{Name: "PS_CLK", Width: 1, Dir: bus.InOut},
			{Name: "PS_PORB", Width: 1, Dir: bus.InOut},
			{Name: "PS_SRSTB", Width: 1, Dir: bus.InOut},
		},
	}
}

func ps7Clocks(clocks []float64) Group {
	g := Group{Name: "fclk"}
	for i := range clocks {
		g.Ports = append(g.Ports, bus.Port{Name: fmt.Sprintf("FCLK_CLK%d", i), Width: 1, Dir: bus.Out})
	}
	g.Ports = append(g.Ports, bus.Port{Name: "FCLK_RESET0_N", Width: 1, Dir: bus.Out})
	return g
}

// the GP0 ports are the generic AXI master ports renamed. the AXI clock is
// an input to the processing system
func ps7GP0(m bus.Master) (Group, error) {
	p, ok := bridge.MasterPorts(m)
	if !ok {
		return Group{}, curated.Errorf(InvalidParamError, TypeZynq7000, fmt.Sprintf("no ports for %s", m.Protocol))
	}

	g := Group{Name: "m_axi_gp0"}
	g.Ports = append(g.Ports, bus.Port{Name: "M_AXI_GP0_ACLK", Width: 1, Dir: bus.In})
	for _, q := range p {
		q.Name = "M_AXI_GP0_" + strings.ToUpper(strings.TrimPrefix(q.Name, "axi_"))
		g.Ports = append(g.Ports, q)
	}
	return g, nil
}

func ps7Ethernet() Group {
	return Group{
		Name: "enet0",
		Ports: []bus.Port{
			{Name: "ENET0_GMII_TX_CLK", Width: 1, Dir: bus.In},
			{Name: "ENET0_GMII_TX_EN", Width: 1, Dir: bus.Out},
			{Name: "ENET0_GMII_TXD", Width: 8, Dir: bus.Out},
			{Name: "ENET0_GMII_RX_CLK", Width: 1, Dir: bus.In},
			{Name: "ENET0_GMII_RX_DV", Width: 1, Dir: bus.In},
			{Name: "ENET0_GMII_RXD", Width: 8, Dir: bus.In},
		},
	}
}

func ps7USB() Group {
	return Group{
		Name: "usb0",
		Ports: []bus.Port{
			{Name: "USB0_PORT_INDCTL", Width: 2, Dir: bus.Out},
			{Name: "USB0_VBUS_PWRSELECT", Width: 1, Dir: bus.Out},
		},
	}
}

// PS7 is the Zynq-7000 processing system.
type PS7 struct {
	preset string
	master bus.Master
	clocks []float64
	groups []Group
	params []Param
}

// Name implements the CPU interface.
func (ps *PS7) Name() string {
	return TypeZynq7000
}

// Variant implements the CPU interface.
func (ps *PS7) Variant() string {
	return ps.preset
}

// Masters implements the CPU interface.
func (ps *PS7) Masters() []bus.Master {
	return []bus.Master{ps.master}
}

// Groups implements the CPU interface.
func (ps *PS7) Groups() []Group {
	return append([]Group(nil), ps.groups...)
}

// ResetAddress implements the CPU interface. The processing system boots
// from its own ROM.
func (ps *PS7) ResetAddress() (uint64, bool) {
	return 0, false
}

// Params returns the configuration parameters in alphabetical order.
func (ps *PS7) Params() []Param {
	return append([]Param(nil), ps.params...)
}

// FabricClock returns the frequency of the numbered fabric clock. The second
// value is false if the clock is not enabled.
func (ps *PS7) FabricClock(n int) (float64, bool) {
	if n < 0 || n >= len(ps.clocks) {
		return 0, false
	}
	return ps.clocks[n], true
}
