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

package composer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Layout is the result of a successful Finalize(). It is read-only.
type Layout struct {
	Name string

	fabric  bus.Description
	space   *addrspace.Frozen
	masters []bus.Master
	slaves  []Slave
	bridges []*bridge.Bridge
}

// Space returns the frozen address space.
func (lay *Layout) Space() *addrspace.Frozen {
	return lay.space
}

// Fabric returns the description of the fabric.
func (lay *Layout) Fabric() bus.Description {
	return lay.fabric
}

// Masters returns the masters in the order they were registered.
func (lay *Layout) Masters() []bus.Master {
	return append([]bus.Master(nil), lay.masters...)
}

// SlaveList returns the slaves in the order they were registered.
func (lay *Layout) SlaveList() []Slave {
	return append([]Slave(nil), lay.slaves...)
}

// Slaves returns the peripherals indexed by the name of their region.
func (lay *Layout) Slaves() map[string]bus.Peripheral {
	m := make(map[string]bus.Peripheral, len(lay.slaves))
	for _, s := range lay.slaves {
		m[s.Region.Name] = s.Peripheral
	}
	return m
}

// Bridges returns the bridges in the order of the masters they serve.
func (lay *Layout) Bridges() []*bridge.Bridge {
	return append([]*bridge.Bridge(nil), lay.bridges...)
}

// Bridge returns the bridge for the named master. The second return value is
// false if the master does not need a bridge or does not exist.
func (lay *Layout) Bridge(master string) (*bridge.Bridge, bool) {
	for _, b := range lay.bridges {
		if b.Name() == master {
			return b, true
		}
	}
	return nil, false
}

// Summary returns a multiline description of the layout.
func (lay *Layout) Summary() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%s: %s fabric (a%d d%d)\n", lay.Name, lay.fabric.Protocol, lay.fabric.AddressWidth, lay.fabric.DataWidth))

	s.WriteString("\nmasters:\n")
	for _, m := range lay.masters {
		s.WriteString(fmt.Sprintf("  %s", m.Description))
		if m.Window.Restricted() {
			s.WriteString(fmt.Sprintf(" window %#x+%#x -> %#x", m.Window.Base, m.Window.Size, m.Window.Remap))
		}
		if b, ok := lay.Bridge(m.ID); ok {
			s.WriteString(fmt.Sprintf(" via %s bridge (%d slots)", b.Pair(), b.Capacity()))
		}
		s.WriteString("\n")
	}

	s.WriteString("\nslaves:\n")
	for _, sl := range lay.slaves {
		s.WriteString(fmt.Sprintf("  %s -> %s\n", sl.Peripheral.Describe().ID, sl.Region.Name))
	}

	s.WriteString("\nregions:\n")
	for _, l := range strings.Split(strings.TrimSuffix(lay.space.Summary(), "\n"), "\n") {
		if l != "" {
			s.WriteString(fmt.Sprintf("  %s\n", l))
		}
	}
	if top, ok := lay.space.Top(); ok {
		s.WriteString(fmt.Sprintf("  top %#010x\n", top))
	}

	return s.String()
}

// the types used for the visualisation are plain data so that the graph
// only shows the structure of the SoC
type vizRegion struct {
	Name   string
	Kind   string
	Base   string
	Size   string
	Linker bool
}

type vizSlave struct {
	ID        string
	DataWidth int
	Region    *vizRegion
}

type vizBridge struct {
	Pair  string
	Slots int
}

type vizMaster struct {
	Description string
	Bridge      *vizBridge
	Reaches     []*vizSlave
}

type vizLayout struct {
	Name    string
	Fabric  string
	Masters []*vizMaster
	Regions []*vizRegion
}

// Visualise writes a graphviz description of the layout.
func (lay *Layout) Visualise(w io.Writer) {
	v := &vizLayout{
		Name:   lay.Name,
		Fabric: lay.fabric.String(),
	}

	regions := make(map[string]*vizRegion)
	for _, r := range lay.space.Regions() {
		vr := &vizRegion{
			Name:   r.Name,
			Kind:   r.Kind.String(),
			Base:   fmt.Sprintf("%#x", r.Base),
			Size:   fmt.Sprintf("%#x", r.Size),
			Linker: r.Linker,
		}
		regions[r.Name] = vr
		v.Regions = append(v.Regions, vr)
	}

	slaves := make([]*vizSlave, len(lay.slaves))
	for i, s := range lay.slaves {
		d := s.Peripheral.Describe()
		slaves[i] = &vizSlave{
			ID:        d.ID,
			DataWidth: d.DataWidth,
			Region:    regions[s.Region.Name],
		}
	}

	for _, m := range lay.masters {
		vm := &vizMaster{
			Description: m.Description.String(),
		}
		for i, s := range lay.slaves {
			if reaches(m, s.Region) {
				vm.Reaches = append(vm.Reaches, slaves[i])
			}
		}
		if b, ok := lay.Bridge(m.ID); ok {
			vm.Bridge = &vizBridge{
				Pair:  b.Pair().String(),
				Slots: b.Capacity(),
			}
		}
		v.Masters = append(v.Masters, vm)
	}

	memviz.Map(w, v)
}
