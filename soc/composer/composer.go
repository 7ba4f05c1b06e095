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

	"github.com/jetsetilly/socfabric/assert"
	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// State of the composer.
type State int

// List of valid states.
const (
	Building State = iota
	Finalized
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Finalized:
		return "finalized"
	}
	return "undefined"
}

// Config for a new composer.
type Config struct {
	// name of the SoC. used in error messages and in the layout
	Name string

	// the fabric that slaves are attached to. the ID is not used
	Fabric bus.Description

	// upper limit on the outstanding table of every bridge. zero means the
	// size is set by the ID width of the master
	BridgeWindow int

	// permission for the composer and the bridges it creates to write to the
	// central logger
	Logging logger.Permission
}

// DefaultFabric is a 32 bit Wishbone fabric.
var DefaultFabric = bus.Description{
	ID:           "wishbone",
	Protocol:     bus.Wishbone,
	AddressWidth: 32,
	DataWidth:    32,
}

// Slave is a peripheral and the region it is attached to.
type Slave struct {
	Peripheral bus.Peripheral
	Region     addrspace.Region
}

// Composer builds a Layout.
type Composer struct {
	cfg   Config
	owner assert.Owner
	state State

	space   addrspace.AddressSpace
	masters []bus.Master
	slaves  []Slave
}

// NewComposer is the preferred method of initialisation for the Composer
// type.
func NewComposer(cfg Config) (*Composer, error) {
	if cfg.Name == "" {
		cfg.Name = "soc"
	}
	if cfg.Fabric.ID == "" {
		cfg.Fabric.ID = DefaultFabric.ID
	}
	if err := cfg.Fabric.Validate(); err != nil {
		return nil, curated.Errorf(InvalidConfigError, err)
	}
	if cfg.Fabric.Protocol.Split() {
		return nil, curated.Errorf(InvalidConfigError, fmt.Sprintf("%s is not supported as a fabric protocol", cfg.Fabric.Protocol))
	}
	if cfg.BridgeWindow < 0 {
		return nil, curated.Errorf(InvalidConfigError, "negative bridge window")
	}

	return &Composer{
		cfg:   cfg,
		owner: assert.NewOwner(),
		state: Building,
	}, nil
}

// State returns the current state of the composer.
func (cmp *Composer) State() State {
	cmp.owner.Check("composer.State")
	return cmp.state
}

func (cmp *Composer) building(op string) error {
	cmp.owner.Check(op)
	if cmp.state != Building {
		return curated.Errorf(AlreadyFinalizedError, cmp.cfg.Name)
	}
	return nil
}

// RegisterMaster adds a master to the SoC.
func (cmp *Composer) RegisterMaster(m bus.Master) error {
	if err := cmp.building("composer.RegisterMaster"); err != nil {
		return err
	}

	if err := m.Validate(); err != nil {
		return curated.Errorf(InvalidMasterError, m.ID, err)
	}

	if m.Window.Restricted() {
		if m.Window.Base+m.Window.Size-1 < m.Window.Base || m.Window.Base+m.Window.Size-1 > m.Reach() {
			return curated.Errorf(InvalidMasterError, m.ID, "window is outside the address range of the master")
		}
	}

	for _, e := range cmp.masters {
		if e.ID == m.ID {
			return curated.Errorf(DuplicateNameError, "master", m.ID)
		}
	}

	cmp.masters = append(cmp.masters, m)
	logger.Logf(cmp.cfg.Logging, "composer", "%s: master %s", cmp.cfg.Name, m.Description)

	return nil
}

// RegisterSlave attaches a peripheral to the fabric and allocates its region.
// Errors from the address space (overlapping regions, duplicate names) are
// returned unchanged.
func (cmp *Composer) RegisterSlave(p bus.Peripheral, r addrspace.Region) error {
	if err := cmp.building("composer.RegisterSlave"); err != nil {
		return err
	}

	d := p.Describe()
	if err := d.Validate(); err != nil {
		return curated.Errorf(InvalidSlaveError, d.ID, err)
	}
	if d.Protocol != cmp.cfg.Fabric.Protocol {
		return curated.Errorf(ProtocolMismatchError, d.ID, d.Protocol, cmp.cfg.Fabric.Protocol)
	}
	if !r.Decodes() {
		return curated.Errorf(InvalidSlaveError, d.ID, "a linker-only region cannot have a slave")
	}
	for _, s := range cmp.slaves {
		if s.Peripheral.Describe().ID == d.ID {
			return curated.Errorf(DuplicateNameError, "slave", d.ID)
		}
	}

	if err := cmp.space.Check(r); err != nil {
		return err
	}
	if err := addrspace.CheckDecoderAlignment(r); err != nil {
		return err
	}
	if err := cmp.space.Insert(r); err != nil {
		return err
	}

	// the address space sets default attributes so the region is read back
	r, _ = cmp.space.Lookup(r.Name)
	cmp.slaves = append(cmp.slaves, Slave{Peripheral: p, Region: r})
	logger.Logf(cmp.cfg.Logging, "composer", "%s: slave %s at %s", cmp.cfg.Name, d.ID, r)

	return nil
}

// AddRegion allocates a region that has no slave on the fabric. This is how
// linker-only regions are added and also how memory that is provided outside
// of the fabric is described.
func (cmp *Composer) AddRegion(r addrspace.Region) error {
	if err := cmp.building("composer.AddRegion"); err != nil {
		return err
	}
	if err := cmp.space.Insert(r); err != nil {
		return err
	}
	logger.Logf(cmp.cfg.Logging, "composer", "%s: region %s", cmp.cfg.Name, r)
	return nil
}

// reaches returns true if the master can put an address in the region on
// the fabric
func reaches(m bus.Master, r addrspace.Region) bool {
	if m.Window.Restricted() {
		lo := m.Window.Remap
		hi := m.Window.Remap + m.Window.Size - 1
		return r.Base <= hi && lo <= r.Last()
	}
	return r.Last() <= m.Reach()
}

// checkReach returns an error if the master cannot reach every region that
// decodes, whether it has a slave on the fabric or not. a master with a
// window only needs to reach the slaves inside its window but it must reach
// at least one
func (cmp *Composer) checkReach(m bus.Master) error {
	if m.Window.Restricted() {
		for _, s := range cmp.slaves {
			if reaches(m, s.Region) {
				return nil
			}
		}
		return curated.Errorf(UnreachableMasterError, m.ID, fmt.Sprintf("any slave through window %#x+%#x", m.Window.Base, m.Window.Size))
	}

	for _, r := range cmp.space.Regions() {
		if !r.Decodes() {
			continue // for loop
		}
		if !reaches(m, r) {
			return curated.Errorf(UnreachableMasterError, m.ID, r.Name)
		}
	}
	return nil
}

// Finalize checks the SoC and creates the bridges. The composer can no
// longer be changed once Finalize() has succeeded. If Finalize() fails the
// composer is left in the Building state.
func (cmp *Composer) Finalize() (*Layout, error) {
	if err := cmp.building("composer.Finalize"); err != nil {
		return nil, err
	}

	for _, m := range cmp.masters {
		if err := cmp.checkReach(m); err != nil {
			return nil, err
		}
	}

	space := cmp.space.Freeze()

	slaves := make(map[string]bus.Peripheral, len(cmp.slaves))
	for _, s := range cmp.slaves {
		slaves[s.Region.Name] = s.Peripheral
	}

	var bridges []*bridge.Bridge
	for _, m := range cmp.masters {
		if m.Protocol == cmp.cfg.Fabric.Protocol {
			continue // for loop
		}

		b, err := bridge.New(bridge.Config{
			Master:  m,
			Fabric:  cmp.cfg.Fabric,
			Space:   space,
			Slaves:  slaves,
			Window:  cmp.cfg.BridgeWindow,
			Logging: cmp.cfg.Logging,
		})
		if err != nil {
			return nil, err
		}
		bridges = append(bridges, b)
	}

	lay := &Layout{
		Name:    cmp.cfg.Name,
		fabric:  cmp.cfg.Fabric,
		space:   space,
		masters: append([]bus.Master(nil), cmp.masters...),
		slaves:  append([]Slave(nil), cmp.slaves...),
		bridges: bridges,
	}

	cmp.state = Finalized
	logger.Logf(cmp.cfg.Logging, "composer", "%s: finalized with %d regions, %d masters, %d slaves, %d bridges",
		cmp.cfg.Name, space.Len(), len(lay.masters), len(lay.slaves), len(bridges))

	return lay, nil
}
