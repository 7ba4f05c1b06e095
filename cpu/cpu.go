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

// CPU is implemented by all processor descriptions.
type CPU interface {
	// Name of the CPU type. This is the same name that is used with New()
	Name() string

	// Variant of the CPU type
	Variant() string

	// Masters returns the bus masters of the CPU in the order they should
	// be registered with the fabric
	Masters() []bus.Master

	// Groups returns the signal level interface of the CPU
	Groups() []Group

	// ResetAddress returns the address of the first instruction. The second
	// value is false if the CPU boots from an internal ROM that is not part
	// of the SoC's address space
	ResetAddress() (uint64, bool)
}

// Group is a named collection of ports.
type Group struct {
	Name  string
	Ports []bus.Port
}

func (g Group) String() string {
	return fmt.Sprintf("%s\n%s", g.Name, bridge.PortsString(g.Ports))
}

// Width returns the total number of bits in the group.
func (g Group) Width() int {
	w := 0
	for _, p := range g.Ports {
		w += p.Width
	}
	return w
}

// Lookup returns the port with the name. The group name is not part of the
// port name.
func (g Group) Lookup(name string) (bus.Port, bool) {
	for _, p := range g.Ports {
		if p.Name == name {
			return p, true
		}
	}
	return bus.Port{}, false
}

// Signals returns all ports from all the groups of the CPU.
func Signals(c CPU) []bus.Port {
	var p []bus.Port
	for _, g := range c.Groups() {
		p = append(p, g.Ports...)
	}
	return p
}

// List of CPU type names accepted by New().
const (
	TypeZynq7000 = "zynq7000"
	TypeVexRiscv = "vexriscv"
)

// Types returns the list of CPU type names in alphabetical order.
func Types() []string {
	t := []string{TypeZynq7000, TypeVexRiscv}
	sort.Strings(t)
	return t
}

// New creates a CPU from a type name and a variant name. For the zynq7000
// the variant is the name of the preset. The reset address is ignored by
// CPUs that do not use one.
func New(cpuType string, variant string, reset uint64) (CPU, error) {
	switch strings.ToLower(cpuType) {
	case TypeZynq7000:
		b := MakePS7Builder()
		if variant != "" {
			b = b.WithPreset(variant)
		}
		return b.Build()
	case TypeVexRiscv:
		if variant == "" {
			variant = "standard"
		}
		return NewVexRiscv(variant, reset)
	}
	return nil, curated.Errorf(UnknownCPUError, cpuType)
}

// Summary returns a multiline description of the CPU.
func Summary(c CPU) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s)\n", c.Name(), c.Variant()))
	if r, ok := c.ResetAddress(); ok {
		s.WriteString(fmt.Sprintf("reset: %#010x\n", r))
	}
	for _, m := range c.Masters() {
		s.WriteString(fmt.Sprintf("master: %s\n", m.Description))
	}
	for _, g := range c.Groups() {
		s.WriteString(fmt.Sprintf("%s: %d ports, %d bits\n", g.Name, len(g.Ports), g.Width()))
	}
	return s.String()
}
