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

package peripheral

import (
	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Timing of a peripheral.
type Timing struct {
	// number of steps between a transaction being accepted and the
	// completion being available. zero means the completion is available
	// immediately
	Latency int

	// number of transactions that can be in progress at once. a value of
	// less than one is treated as one, which is the correct value for a
	// Wishbone slave
	Depth int
}

type stage struct {
	completion bus.Completion
	remaining  int
}

// pipeline delays completions. it is not safe for concurrent use and is
// protected by the mutex of the peripheral that embeds it
type pipeline struct {
	id     string
	timing Timing

	inflight []stage
	done     []bus.Completion
}

func newPipeline(id string, timing Timing) pipeline {
	if timing.Depth < 1 {
		timing.Depth = 1
	}
	if timing.Latency < 0 {
		timing.Latency = 0
	}
	return pipeline{
		id:     id,
		timing: timing,
	}
}

func (p *pipeline) busy() error {
	if len(p.inflight) >= p.timing.Depth {
		return curated.Errorf(bus.BusyError, p.id)
	}
	return nil
}

func (p *pipeline) push(c bus.Completion) {
	if p.timing.Latency == 0 {
		p.done = append(p.done, c)
		return
	}
	p.inflight = append(p.inflight, stage{completion: c, remaining: p.timing.Latency})
}

func (p *pipeline) step() {
	// completions leave the pipeline in the order they entered it
	n := 0
	for i := range p.inflight {
		p.inflight[i].remaining--
		if p.inflight[i].remaining <= 0 && n == i {
			p.done = append(p.done, p.inflight[i].completion)
			n++
		}
	}
	p.inflight = p.inflight[n:]
}

func (p *pipeline) poll(issuer string) (bus.Completion, bool) {
	for i, c := range p.done {
		if c.Issuer == issuer {
			p.done = append(p.done[:i], p.done[i+1:]...)
			return c, true
		}
	}
	return bus.Completion{}, false
}

func (p *pipeline) outstanding() int {
	return len(p.inflight) + len(p.done)
}

func (p *pipeline) reset() {
	p.inflight = p.inflight[:0]
	p.done = p.done[:0]
}

// checkAccess returns an error completion if the transaction cannot be
// serviced by a peripheral with the size and data width. the second return
// value is false if the transaction is good
func checkAccess(id string, tr bus.Transaction, size uint64, dataWidth int) (bus.Completion, bool) {
	if tr.Width > dataWidth {
		return bus.Fail(tr, bus.SLVERR, curated.Errorf(WidthError, id, tr.Width, dataWidth)), true
	}
	n := uint64(tr.Bytes())
	if n == 0 || tr.Address&(n-1) != 0 {
		return bus.Fail(tr, bus.SLVERR, curated.Errorf(MisalignedError, id, tr.Address, tr.Width)), true
	}
	if tr.Address >= size || size-tr.Address < n {
		return bus.Fail(tr, bus.SLVERR, curated.Errorf(OutOfRangeError, id, tr.Address)), true
	}
	if tr.Write && len(tr.Data) != int(n) {
		return bus.Fail(tr, bus.SLVERR, curated.Errorf(DataLengthError, id, len(tr.Data), tr.Width)), true
	}
	return bus.Completion{}, false
}
