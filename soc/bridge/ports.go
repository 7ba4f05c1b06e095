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

package bridge

import (
	"fmt"

	"github.com/jetsetilly/socfabric/soc/bus"
)

func log2(v int) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

// the five AXI channels. every channel has a valid/ready handshake
func axiPorts(m bus.Master) []bus.Port {
	aw := m.AddressWidth
	dw := m.DataWidth
	iw := m.IDWidth

	p := []bus.Port{
		// write address
		{Name: "axi_awvalid", Width: 1, Dir: bus.In},
		{Name: "axi_awready", Width: 1, Dir: bus.Out},
		{Name: "axi_awaddr", Width: aw, Dir: bus.In},
		{Name: "axi_awid", Width: iw, Dir: bus.In},
		{Name: "axi_awlen", Width: 8, Dir: bus.In},
		{Name: "axi_awsize", Width: 3, Dir: bus.In},
		{Name: "axi_awburst", Width: 2, Dir: bus.In},

		// write data
		{Name: "axi_wvalid", Width: 1, Dir: bus.In},
		{Name: "axi_wready", Width: 1, Dir: bus.Out},
		{Name: "axi_wdata", Width: dw, Dir: bus.In},
		{Name: "axi_wstrb", Width: dw / 8, Dir: bus.In},
		{Name: "axi_wlast", Width: 1, Dir: bus.In},

		// write response
		{Name: "axi_bvalid", Width: 1, Dir: bus.Out},
		{Name: "axi_bready", Width: 1, Dir: bus.In},
		{Name: "axi_bresp", Width: 2, Dir: bus.Out},
		{Name: "axi_bid", Width: iw, Dir: bus.Out},

		// read address
		{Name: "axi_arvalid", Width: 1, Dir: bus.In},
		{Name: "axi_arready", Width: 1, Dir: bus.Out},
		{Name: "axi_araddr", Width: aw, Dir: bus.In},
		{Name: "axi_arid", Width: iw, Dir: bus.In},
		{Name: "axi_arlen", Width: 8, Dir: bus.In},
		{Name: "axi_arsize", Width: 3, Dir: bus.In},
		{Name: "axi_arburst", Width: 2, Dir: bus.In},

		// read data
		{Name: "axi_rvalid", Width: 1, Dir: bus.Out},
		{Name: "axi_rready", Width: 1, Dir: bus.In},
		{Name: "axi_rdata", Width: dw, Dir: bus.Out},
		{Name: "axi_rresp", Width: 2, Dir: bus.Out},
		{Name: "axi_rid", Width: iw, Dir: bus.Out},
		{Name: "axi_rlast", Width: 1, Dir: bus.Out},
	}

	// a master with no ID bits has no ID signals
	if iw == 0 {
		q := p[:0]
		for _, s := range p {
			if s.Width > 0 {
				q = append(q, s)
			}
		}
		p = q
	}

	return p
}

func axiLitePorts(m bus.Master) []bus.Port {
	aw := m.AddressWidth
	dw := m.DataWidth

	return []bus.Port{
		{Name: "axil_awvalid", Width: 1, Dir: bus.In},
		{Name: "axil_awready", Width: 1, Dir: bus.Out},
		{Name: "axil_awaddr", Width: aw, Dir: bus.In},
		{Name: "axil_wvalid", Width: 1, Dir: bus.In},
		{Name: "axil_wready", Width: 1, Dir: bus.Out},
		{Name: "axil_wdata", Width: dw, Dir: bus.In},
		{Name: "axil_wstrb", Width: dw / 8, Dir: bus.In},
		{Name: "axil_bvalid", Width: 1, Dir: bus.Out},
		{Name: "axil_bready", Width: 1, Dir: bus.In},
		{Name: "axil_bresp", Width: 2, Dir: bus.Out},
		{Name: "axil_arvalid", Width: 1, Dir: bus.In},
		{Name: "axil_arready", Width: 1, Dir: bus.Out},
		{Name: "axil_araddr", Width: aw, Dir: bus.In},
		{Name: "axil_rvalid", Width: 1, Dir: bus.Out},
		{Name: "axil_rready", Width: 1, Dir: bus.In},
		{Name: "axil_rdata", Width: dw, Dir: bus.Out},
		{Name: "axil_rresp", Width: 2, Dir: bus.Out},
	}
}

// wishbone classic with registered feedback signals. the address is a word
// address so the low bits covered by the byte select are dropped
func wishbonePorts(addressWidth int, dataWidth int) []bus.Port {
	return []bus.Port{
		{Name: "wb_adr", Width: addressWidth - log2(dataWidth/8), Dir: bus.Out},
		{Name: "wb_dat_w", Width: dataWidth, Dir: bus.Out},
		{Name: "wb_dat_r", Width: dataWidth, Dir: bus.In},
		{Name: "wb_sel", Width: dataWidth / 8, Dir: bus.Out},
		{Name: "wb_cyc", Width: 1, Dir: bus.Out},
		{Name: "wb_stb", Width: 1, Dir: bus.Out},
		{Name: "wb_ack", Width: 1, Dir: bus.In},
		{Name: "wb_we", Width: 1, Dir: bus.Out},
		{Name: "wb_cti", Width: 3, Dir: bus.Out},
		{Name: "wb_bte", Width: 2, Dir: bus.Out},
		{Name: "wb_err", Width: 1, Dir: bus.In},
	}
}

// MasterPorts returns the ports of a master as seen by the master. The
// second return value is false if the protocol has no port description.
func MasterPorts(m bus.Master) ([]bus.Port, bool) {
	var p []bus.Port
	switch m.Protocol {
	case bus.Wishbone:
		return wishbonePorts(m.AddressWidth, m.DataWidth), true
	case bus.AXI:
		p = axiPorts(m)
	case bus.AXILite:
		p = axiLitePorts(m)
	default:
		return nil, false
	}

	// the port lists for AXI are from the point of view of the bridge
	for i := range p {
		p[i].Dir = p[i].Dir.Flip()
	}
	return p, true
}

// PortsString returns a multiline description of the ports in the list.
func PortsString(ports []bus.Port) string {
	s := ""
	for _, p := range ports {
		s = fmt.Sprintf("%s%-3s %3d %s\n", s, p.Dir, p.Width, p.Name)
	}
	return s
}
