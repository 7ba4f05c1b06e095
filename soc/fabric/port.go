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
	"sync"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Initiator is the master side of a link to the fabric. Both bridge.Bridge
// and Port implement it.
type Initiator interface {
	TryIssue(tr bus.Transaction) error
	Poll(issuer string) (bus.Completion, bool)
	Step()
	Name() string
}

// Port connects a master that speaks the fabric protocol to the fabric. A
// port has no outstanding table. Like a Wishbone master it has one
// transaction in progress at a time.
type Port struct {
	crit sync.Mutex

	master bus.Master
	space  *addrspace.Frozen
	slaves map[string]bus.Peripheral
	perm   logger.Permission

	// the transaction in progress
	busy      bool
	forwarded bool
	tr        bus.Transaction
	down      bus.Transaction
	slave     bus.Peripheral

	done []bus.Completion
}

// NewPort is the preferred method of initialisation for the Port type.
func NewPort(master bus.Master, space *addrspace.Frozen, slaves map[string]bus.Peripheral, perm logger.Permission) *Port {
	return &Port{
		master: master,
		space:  space,
		slaves: slaves,
		perm:   perm,
	}
}

// Name of the port. The same as the ID of the master.
func (p *Port) Name() string {
	return p.master.ID
}

// TryIssue implements the Initiator interface. Fails with an error matching
// bus.BusyError if a transaction is already in progress.
func (p *Port) TryIssue(tr bus.Transaction) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.busy {
		return curated.Errorf(bus.BusyError, p.master.ID)
	}

	fail := func(resp bus.Response, err error) error {
		logger.Log(p.perm, "fabric", err)
		p.done = append(p.done, bus.Fail(tr, resp, err))
		return err
	}

	if tr.Width > p.master.DataWidth {
		return curated.Errorf(bridge.InvalidTransactionError, p.master.ID, "wider than the master data bus")
	}

	address, ok := p.master.Window.Translate(tr.Address)
	if !ok || tr.Address > p.master.Reach() {
		return fail(bus.DECERR, curated.Errorf(bridge.DecodeError, p.master.ID, tr.Address))
	}

	region, ok := p.space.Decode(address)
	if !ok {
		return fail(bus.DECERR, curated.Errorf(bridge.DecodeError, p.master.ID, tr.Address))
	}
	if region.Kind == addrspace.LinkerOnly {
		if tr.Write {
			return fail(bus.SLVERR, curated.Errorf(bridge.LinkerOnlyWriteError, p.master.ID, region.Name, tr.Address))
		}
		return fail(bus.DECERR, curated.Errorf(bridge.DecodeError, p.master.ID, tr.Address))
	}

	slave, ok := p.slaves[region.Name]
	if !ok {
		return fail(bus.DECERR, curated.Errorf(bridge.DecodeError, p.master.ID, tr.Address))
	}
	if dw := slave.Describe().DataWidth; tr.Width > dw {
		return fail(bus.SLVERR, curated.Errorf(bridge.WidthMismatchError, p.master.ID, tr.Width, dw, region.Name))
	}

	p.busy = true
	p.forwarded = false
	p.tr = tr
	p.slave = slave
	p.down = tr
	p.down.Issuer = p.master.ID
	p.down.Address = region.Offset(address)
	p.forward()

	return nil
}

func (p *Port) forward() {
	if !p.busy || p.forwarded {
		return
	}

	err := p.slave.Issue(p.down)
	if err != nil && curated.Is(err, bus.BusyError) {
		return
	}

	if err != nil {
		logger.Log(p.perm, "fabric", err)
		p.done = append(p.done, bus.Fail(p.tr, bus.SLVERR, err))
		p.busy = false
		return
	}

	p.forwarded = true
}

// Step implements the Initiator and bus.Stepper interfaces.
func (p *Port) Step() {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.forward()

	if !p.busy || !p.forwarded {
		return
	}

	c, ok := p.slave.Poll(p.master.ID)
	if !ok {
		return
	}

	c.Issuer = p.tr.Issuer
	c.Tag = p.tr.Tag
	c.Address = p.tr.Address
	p.done = append(p.done, c)
	p.busy = false
}

// Poll implements the Initiator interface.
func (p *Port) Poll(issuer string) (bus.Completion, bool) {
	p.crit.Lock()
	defer p.crit.Unlock()

	for i, c := range p.done {
		if c.Issuer == issuer {
			p.done = append(p.done[:i], p.done[i+1:]...)
			return c, true
		}
	}
	return bus.Completion{}, false
}
