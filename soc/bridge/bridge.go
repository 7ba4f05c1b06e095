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
	"context"
	"sync"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Config for a new bridge.
type Config struct {
	// the master being bridged
	Master bus.Master

	// description of the fabric side of the bridge. the ID of the fabric is
	// not used
	Fabric bus.Description

	// the address space used to decode transaction addresses
	Space *addrspace.Frozen

	// slaves on the fabric indexed by the name of the region they are
	// attached to
	Slaves map[string]bus.Peripheral

	// upper limit on the number of transactions in flight. zero means no
	// limit other than that imposed by the master's ID width
	Window int

	// permission for the bridge to write to the central logger
	Logging logger.Permission
}

// Stats is a snapshot of the bridge counters.
type Stats struct {
	Issued       uint64
	Completed    uint64
	DecodeErrors uint64
	SlaveErrors  uint64

	// number of times a slave refused a transaction because it was busy
	Stalls uint64

	// number of times an issuer had to wait for a credit
	Waits uint64

	Outstanding int
	HighWater   int
}

// entry in the delivery queue of an issuer.
type entry struct {
	tr         bus.Transaction
	done       bool
	completion bus.Completion
}

// slot in the outstanding table. a nil entry means the slot is free
type slot struct {
	entry     *entry
	down      bus.Transaction
	slave     bus.Peripheral
	forwarded bool
}

// Bridge connects a master to the fabric. It is safe to use from multiple
// goroutines.
type Bridge struct {
	name   string
	pair   bus.Pair
	master bus.Master
	fabric bus.Description
	space  *addrspace.Frozen
	slaves map[string]bus.Peripheral
	perm   logger.Permission
	ports  []bus.Port

	// free slot indexes. a transaction must take one before being accepted
	credits chan int

	crit    sync.Mutex
	slots   []slot
	stalled []int
	queues  map[string][]*entry
	stats   Stats
}

// New creates a bridge for the master in the configuration. Returns an
// UnsupportedBridgeError if there is no bridge for the protocol pair.
func New(cfg Config) (*Bridge, error) {
	if err := cfg.Master.Validate(); err != nil {
		return nil, curated.Errorf(InvalidConfigError, err)
	}
	if cfg.Space == nil {
		return nil, curated.Errorf(InvalidConfigError, "no address space")
	}
	if cfg.Fabric.DataWidth == 0 {
		cfg.Fabric.DataWidth = 32
	}
	if cfg.Fabric.AddressWidth == 0 {
		cfg.Fabric.AddressWidth = 32
	}

	pair := bus.Pair{From: cfg.Master.Protocol, To: cfg.Fabric.Protocol}
	f, err := lookup(pair)
	if err != nil {
		return nil, err
	}

	n := 1
	if cfg.Master.Protocol == bus.AXI {
		n = 1 << cfg.Master.IDWidth
	}
	if f.limit > 0 && n > f.limit {
		n = f.limit
	}
	if cfg.Window > 0 && n > cfg.Window {
		n = cfg.Window
	}

	b := &Bridge{
		name:    cfg.Master.ID,
		pair:    pair,
		master:  cfg.Master,
		fabric:  cfg.Fabric,
		space:   cfg.Space,
		slaves:  make(map[string]bus.Peripheral),
		perm:    cfg.Logging,
		credits: make(chan int, n),
		slots:   make([]slot, n),
		queues:  make(map[string][]*entry),
	}

	for k, v := range cfg.Slaves {
		b.slaves[k] = v
	}

	for i := 0; i < n; i++ {
		b.credits <- i
	}

	b.ports = append(f.ports(cfg.Master), wishbonePorts(cfg.Fabric.AddressWidth, cfg.Fabric.DataWidth)...)

	logger.Logf(b.perm, "bridge", "%s: %s with %d slots", b.name, b.pair, n)

	return b, nil
}

// Name of the bridge. This is the same as the ID of the master.
func (b *Bridge) Name() string {
	return b.name
}

// Pair returns the protocols on each side of the bridge.
func (b *Bridge) Pair() bus.Pair {
	return b.pair
}

// Master returns the description of the master side of the bridge.
func (b *Bridge) Master() bus.Master {
	return b.master
}

// Capacity returns the size of the outstanding transaction table.
func (b *Bridge) Capacity() int {
	return cap(b.credits)
}

// Outstanding returns the number of slots in use.
func (b *Bridge) Outstanding() int {
	return cap(b.credits) - len(b.credits)
}

// Ports returns the signal level ports of the bridge. The master side ports
// are listed first followed by the fabric side ports.
func (b *Bridge) Ports() []bus.Port {
	p := make([]bus.Port, len(b.ports))
	copy(p, b.ports)
	return p
}

// Stats returns a snapshot of the bridge counters.
func (b *Bridge) Stats() Stats {
	b.crit.Lock()
	defer b.crit.Unlock()
	s := b.stats
	s.Outstanding = b.Outstanding()
	return s
}

func (b *Bridge) validate(tr bus.Transaction) error {
	if tr.Issuer == "" {
		return curated.Errorf(InvalidTransactionError, b.name, "no issuer")
	}
	if tr.Width < 8 || tr.Width%8 != 0 || tr.Width&(tr.Width-1) != 0 {
		return curated.Errorf(InvalidTransactionError, b.name, "width must be a power of two multiple of 8 bits")
	}
	if tr.Width > b.master.DataWidth {
		return curated.Errorf(InvalidTransactionError, b.name, "wider than the master data bus")
	}
	if tr.Write && len(tr.Data) != tr.Bytes() {
		return curated.Errorf(InvalidTransactionError, b.name, "write data does not match width")
	}
	return nil
}

// Issue a transaction. If the outstanding table is full Issue waits for a
// slot to become free or for the context to be done. Once a slot has been
// taken the transaction cannot be cancelled.
//
// The returned error is nil if the transaction was forwarded to a slave. If
// the bridge had to complete the transaction itself, the error that caused
// that is returned and the same error is in the completion.
//
// A transaction that is malformed is rejected without taking a slot. The
// error in that case matches InvalidTransactionError and no completion will
// be produced.
func (b *Bridge) Issue(ctx context.Context, tr bus.Transaction) error {
	if err := b.validate(tr); err != nil {
		return err
	}

	var idx int
	select {
	case idx = <-b.credits:
	default:
		b.crit.Lock()
		b.stats.Waits++
		b.crit.Unlock()

		select {
		case idx = <-b.credits:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return b.accept(idx, tr)
}

// TryIssue is the same as Issue except that it will not wait for a slot.
// Fails with WindowFullError if the outstanding table is full.
func (b *Bridge) TryIssue(tr bus.Transaction) error {
	if err := b.validate(tr); err != nil {
		return err
	}

	select {
	case idx := <-b.credits:
		return b.accept(idx, tr)
	default:
	}

	return curated.Errorf(WindowFullError, b.name, cap(b.credits))
}

// accept the transaction into the slot. the slot must have been taken from
// the credits channel
func (b *Bridge) accept(idx int, tr bus.Transaction) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	if tr.Data != nil {
		d := make([]byte, len(tr.Data))
		copy(d, tr.Data)
		tr.Data = d
	}

	e := &entry{tr: tr}
	b.queues[tr.Issuer] = append(b.queues[tr.Issuer], e)
	b.slots[idx] = slot{entry: e}

	b.stats.Issued++
	if o := b.Outstanding(); o > b.stats.HighWater {
		b.stats.HighWater = o
	}

	address, ok := b.master.Window.Translate(tr.Address)
	if !ok || tr.Address > b.master.Reach() {
		return b.fail(idx, bus.DECERR, curated.Errorf(DecodeError, b.name, tr.Address))
	}

	region, ok := b.space.Decode(address)
	if !ok {
		return b.fail(idx, bus.DECERR, curated.Errorf(DecodeError, b.name, tr.Address))
	}

	if region.Kind == addrspace.LinkerOnly {
		if tr.Write {
			return b.fail(idx, bus.SLVERR, curated.Errorf(LinkerOnlyWriteError, b.name, region.Name, tr.Address))
		}
		return b.fail(idx, bus.DECERR, curated.Errorf(DecodeError, b.name, tr.Address))
	}

	// a region with no slave is memory provided outside of the fabric
	slave, ok := b.slaves[region.Name]
	if !ok {
		return b.fail(idx, bus.DECERR, curated.Errorf(DecodeError, b.name, tr.Address))
	}

	if dw := slave.Describe().DataWidth; tr.Width > dw {
		return b.fail(idx, bus.SLVERR, curated.Errorf(WidthMismatchError, b.name, tr.Width, dw, region.Name))
	}

	b.slots[idx].slave = slave
	b.slots[idx].down = bus.Transaction{
		Issuer:  b.name,
		Tag:     uint32(idx),
		Address: region.Offset(address),
		Write:   tr.Write,
		Width:   tr.Width,
		Data:    tr.Data,
	}
	b.stalled = append(b.stalled, idx)
	b.forward()

	return nil
}

// fail completes the transaction in the slot with an error response. the
// error is returned as a convenience. must be called with the critical
// section locked
func (b *Bridge) fail(idx int, resp bus.Response, err error) error {
	logger.Log(b.perm, "bridge", err)
	b.complete(idx, bus.Fail(b.slots[idx].entry.tr, resp, err))
	return err
}

// complete the transaction in the slot and release the slot. must be called
// with the critical section locked
func (b *Bridge) complete(idx int, c bus.Completion) {
	e := b.slots[idx].entry

	c.Issuer = e.tr.Issuer
	c.Tag = e.tr.Tag
	c.Address = e.tr.Address
	c.Write = e.tr.Write

	e.completion = c
	e.done = true

	b.stats.Completed++
	switch c.Response {
	case bus.SLVERR:
		b.stats.SlaveErrors++
	case bus.DECERR:
		b.stats.DecodeErrors++
	}

	b.slots[idx] = slot{}

	// there are never more than cap(credits) indexes so this will not block
	b.credits <- idx
}

// forward stalled transactions in the order they were accepted. forwarding
// stops at the first busy slave. must be called with the critical section
// locked
func (b *Bridge) forward() {
	for len(b.stalled) > 0 {
		idx := b.stalled[0]
		s := &b.slots[idx]

		err := s.slave.Issue(s.down)
		if err != nil && curated.Is(err, bus.BusyError) {
			b.stats.Stalls++
			return
		}

		b.stalled = b.stalled[1:]

		if err != nil {
			b.fail(idx, bus.SLVERR, err)
			continue // for loop
		}

		s.forwarded = true
	}
}

// collect completions from the slaves. must be called with the critical
// section locked
func (b *Bridge) collect() {
	polled := make(map[bus.Peripheral]bool)

	for i := range b.slots {
		s := b.slots[i]
		if s.entry == nil || !s.forwarded || polled[s.slave] {
			continue // for loop
		}
		polled[s.slave] = true

		for {
			c, ok := s.slave.Poll(b.name)
			if !ok {
				break // for loop
			}

			idx := int(c.Tag)
			if idx >= len(b.slots) || b.slots[idx].entry == nil || !b.slots[idx].forwarded || b.slots[idx].slave != s.slave {
				logger.Logf(b.perm, "bridge", "%s: unexpected completion from %s: %s", b.name, s.slave.Describe().ID, c)
				continue // for loop
			}

			b.complete(idx, c)
		}
	}
}

// Step the bridge. Completions are collected from slaves and stalled
// transactions are forwarded.
func (b *Bridge) Step() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.collect()
	b.forward()
}

// Poll returns the next completion for the issuer. Completions are returned
// in the order the transactions were issued. The second return value is
// false if the next completion for the issuer is not ready.
func (b *Bridge) Poll(issuer string) (bus.Completion, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.poll(issuer)
}

func (b *Bridge) poll(issuer string) (bus.Completion, bool) {
	q := b.queues[issuer]
	if len(q) == 0 || !q[0].done {
		return bus.Completion{}, false
	}

	c := q[0].completion
	if len(q) == 1 {
		delete(b.queues, issuer)
	} else {
		b.queues[issuer] = q[1:]
	}

	return c, true
}
