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

// VexRiscvVariant describes the configuration of a VexRiscv core.
type VexRiscvVariant struct {
	Name string
	Arch string

	// cache sizes in bytes. zero means no cache
	ICache int
	DCache int

	MMU   bool
	Debug bool
}

func (v VexRiscvVariant) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s)", v.Name, v.Arch))
	if v.ICache > 0 || v.DCache > 0 {
		s.WriteString(fmt.Sprintf(" i$%d d$%d", v.ICache, v.DCache))
	}
	if v.MMU {
		s.WriteString(" mmu")
	}
	if v.Debug {
		s.WriteString(" debug")
	}
	return s.String()
}

var vexriscvVariants = map[string]VexRiscvVariant{
	"minimal":  {Arch: "rv32i"},
	"lite":     {Arch: "rv32im", ICache: 2048, DCache: 2048},
	"standard": {Arch: "rv32im", ICache: 4096, DCache: 4096},
	"full":     {Arch: "rv32im", ICache: 4096, DCache: 4096},
	"linux":    {Arch: "rv32ima", ICache: 4096, DCache: 4096, MMU: true},
}

// the suffix that adds the debug module to any variant
const debugSuffix = "+debug"

// VexRiscvVariants returns the names of all variants in alphabetical order.
// The names with the debug suffix are not included.
func VexRiscvVariants() []string {
	var n []string
	for k := range vexriscvVariants {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// VexRiscv is the VexRiscv soft core. It has separate instruction and data
// Wishbone masters.
type VexRiscv struct {
	variant VexRiscvVariant
	reset   uint64
	ibus    bus.Master
	dbus    bus.Master
	groups  []Group
}

// NewVexRiscv is the preferred method of initialisation for the VexRiscv
// type.
func NewVexRiscv(variant string, reset uint64) (*VexRiscv, error) {
	name := strings.ToLower(variant)
	debug := strings.HasSuffix(name, debugSuffix)
	name = strings.TrimSuffix(name, debugSuffix)

	v, ok := vexriscvVariants[name]
	if !ok {
		return nil, curated.Errorf(UnknownVariantError, TypeVexRiscv, variant)
	}
	v.Name = name
	v.Debug = debug

	if reset&0x03 != 0 {
		return nil, curated.Errorf(InvalidParamError, TypeVexRiscv, fmt.Sprintf("reset address %#x is not word aligned", reset))
	}

	cpu := &VexRiscv{
		variant: v,
		reset:   reset,
	}

	cpu.ibus = bus.Master{
		Description: bus.Description{ID: "vexriscv_ibus", Protocol: bus.Wishbone, AddressWidth: 32, DataWidth: 32},
	}
	cpu.dbus = bus.Master{
		Description: bus.Description{ID: "vexriscv_dbus", Protocol: bus.Wishbone, AddressWidth: 32, DataWidth: 32},
	}

	cpu.groups = append(cpu.groups, Group{
		Name: "core",
		Ports: []bus.Port{
			{Name: "clk", Width: 1, Dir: bus.In},
			{Name: "reset", Width: 1, Dir: bus.In},
			{Name: "externalInterruptArray", Width: 32, Dir: bus.In},
			{Name: "timerInterrupt", Width: 1, Dir: bus.In},
			{Name: "softwareInterrupt", Width: 1, Dir: bus.In},
			{Name: "externalResetVector", Width: 32, Dir: bus.In},
		},
	})

	for _, m := range []bus.Master{cpu.ibus, cpu.dbus} {
		p, _ := bridge.MasterPorts(m)
		prefix := strings.TrimPrefix(m.ID, "vexriscv_")
		g := Group{Name: prefix}
		for _, q := range p {
			q.Name = prefix + strings.TrimPrefix(q.Name, "wb")
			g.Ports = append(g.Ports, q)
		}
		cpu.groups = append(cpu.groups, g)
	}

	if debug {
		cpu.groups = append(cpu.groups, Group{
			Name: "debug",
			Ports: []bus.Port{
				{Name: "debug_bus_cmd_valid", Width: 1, Dir: bus.In},
				{Name: "debug_bus_cmd_ready", Width: 1, Dir: bus.Out},
				{Name: "debug_bus_cmd_payload_wr", Width: 1, Dir: bus.In},
				{Name: "debug_bus_cmd_payload_address", Width: 8, Dir: bus.In},
				{Name: "debug_bus_cmd_payload_data", Width: 32, Dir: bus.In},
				{Name: "debug_bus_rsp_data", Width: 32, Dir: bus.Out},
				{Name: "debug_resetOut", Width: 1, Dir: bus.Out},
			},
		})
	}

	return cpu, nil
}

// Name implements the CPU interface.
func (cpu *VexRiscv) Name() string {
	return TypeVexRiscv
}

// Variant implements the CPU interface.
func (cpu *VexRiscv) Variant() string {
	if cpu.variant.Debug {
		return cpu.variant.Name + debugSuffix
	}
	return cpu.variant.Name
}

// Configuration returns the details of the variant.
func (cpu *VexRiscv) Configuration() VexRiscvVariant {
	return cpu.variant
}

// Masters implements the CPU interface.
func (cpu *VexRiscv) Masters() []bus.Master {
	return []bus.Master{cpu.ibus, cpu.dbus}
}

// Groups implements the CPU interface.
func (cpu *VexRiscv) Groups() []Group {
	return append([]Group(nil), cpu.groups...)
}

// ResetAddress implements the CPU interface.
func (cpu *VexRiscv) ResetAddress() (uint64, bool) {
	return cpu.reset, true
}
