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

package fabric

import (
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/random"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Source of a simulation. Implemented by composer.Layout.
type Source interface {
	Space() *addrspace.Frozen
	Masters() []bus.Master
	Slaves() map[string]bus.Peripheral
	Bridge(master string) (*bridge.Bridge, bool)
	Fabric() bus.Description
}

// Options for a new simulation.
type Options struct {
	// attach a traffic generator to every master
	Traffic bool

	// seed for the traffic generators. each generator is seeded with the
	// seed plus its index
	Seed int64

	// the same seed always produces the same traffic
	Predictable bool

	// see Traffic.SetStray()
	Stray int

	Logging logger.Permission
}

// Simulation is a Fabric with every component of a layout attached.
type Simulation struct {
	*Fabric

	Links   []Initiator
	Traffic []*Traffic
}

// NewSimulation attaches the slaves and links of the source to a new fabric
// and optionally a traffic generator for each master.
func NewSimulation(src Source, opts Options) (*Simulation, error) {
	sim := &Simulation{
		Fabric: NewFabric(opts.Logging),
	}

	space := src.Space()
	slaves := src.Slaves()

	names := make([]string, 0, len(slaves))
	for k := range slaves {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, n := range names {
		if s, ok := slaves[n].(bus.Stepper); ok {
			sim.Attach(Slaves, s)
		}
	}

	for i, m := range src.Masters() {
		var init Initiator
		if b, ok := src.Bridge(m.ID); ok {
			init = b
		} else if m.Protocol == src.Fabric().Protocol {
			init = NewPort(m, space, slaves, opts.Logging)
		} else {
			return nil, curated.Errorf(NoInitiatorError, m.ID)
		}

		sim.Links = append(sim.Links, init)
		sim.Attach(Links, init)

		if !opts.Traffic {
			continue // for loop
		}

		var targets []addrspace.Region
		width := m.DataWidth
		for _, r := range space.Regions() {
			s, ok := slaves[r.Name]
			if !ok || !r.Decodes() {
				continue // for loop
			}

			// region as seen by the master
			if m.Window.Restricted() {
				if r.Base < m.Window.Remap || r.Base-m.Window.Remap >= m.Window.Size {
					continue // for loop
				}
				r.Base = r.Base - m.Window.Remap + m.Window.Base
			}
			if r.Last() > m.Reach() {
				continue // for loop
			}

			targets = append(targets, r)
			if dw := s.Describe().DataWidth; dw < width {
				width = dw
			}
		}

		rng := random.NewRandom(opts.Seed + int64(i))
		rng.ZeroSeed = opts.Predictable

		tg := NewTraffic(fmt.Sprintf("%s.tg", m.ID), init, targets, width, m.Reach(), rng)
		tg.SetStray(opts.Stray)
		sim.Traffic = append(sim.Traffic, tg)
		sim.Attach(Masters, tg)
	}

	return sim, nil
}

// Report writes the counters of every link and traffic generator.
func (sim *Simulation) Report(w io.Writer) {
	fmt.Fprintf(w, "cycles: %d\n", sim.Cycles())

	for _, l := range sim.Links {
		if b, ok := l.(*bridge.Bridge); ok {
			s := b.Stats()
			fmt.Fprintf(w, "bridge %s (%s): issued %d, completed %d, decerr %d, slverr %d, stalls %d, waits %d, high water %d/%d\n",
				b.Name(), b.Pair(), s.Issued, s.Completed, s.DecodeErrors, s.SlaveErrors, s.Stalls, s.Waits, s.HighWater, b.Capacity())
		} else {
			fmt.Fprintf(w, "port %s\n", l.Name())
		}
	}

	for _, tg := range sim.Traffic {
		s := tg.Stats()
		fmt.Fprintf(w, "traffic %s: issued %d, completed %d, errors %d, refused %d\n",
			tg.Issuer(), s.Issued, s.Completed, s.Errors, s.Refused)
	}
}
