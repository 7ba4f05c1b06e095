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
	"github.com/jetsetilly/socfabric/random"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// TrafficStats is a snapshot of the counters of a traffic generator.
type TrafficStats struct {
	Issued    uint64
	Completed uint64
	Errors    uint64

	// number of times the initiator could not accept a transaction
	Refused uint64
}

// Outstanding returns the number of transactions issued but not completed.
func (s TrafficStats) Outstanding() uint64 {
	return s.Issued - s.Completed
}

// Traffic issues random transactions through an initiator. The address of
// each transaction is chosen from one of the target regions. The addresses in
// the regions must be as seen by the master.
type Traffic struct {
	crit sync.Mutex

	issuer  string
	init    Initiator
	targets []addrspace.Region
	width   int
	reach   uint64
	rng     *random.Random

	// one in stray transactions is sent to a random address
	stray int

	tag   uint32
	stats TrafficStats
}

// NewTraffic is the preferred method of initialisation for the Traffic type.
// The random number generator should not have been used.
func NewTraffic(issuer string, init Initiator, targets []addrspace.Region, width int, reach uint64, rng *random.Random) *Traffic {
	return &Traffic{
		issuer:  issuer,
		init:    init,
		targets: targets,
		width:   width,
		reach:   reach,
		rng:     rng,
	}
}

// SetStray sets how often a transaction is sent to a random address. A
// value of zero means never.
func (tg *Traffic) SetStray(stray int) {
	tg.crit.Lock()
	defer tg.crit.Unlock()
	tg.stray = stray
}

// Issuer returns the name used by the generator when issuing transactions.
func (tg *Traffic) Issuer() string {
	return tg.issuer
}

// Stats returns a snapshot of the generator's counters.
func (tg *Traffic) Stats() TrafficStats {
	tg.crit.Lock()
	defer tg.crit.Unlock()
	return tg.stats
}

func (tg *Traffic) next() bus.Transaction {
	n := uint64(tg.width / 8)

	tr := bus.Transaction{
		Issuer: tg.issuer,
		Tag:    tg.tag,
		Width:  tg.width,
		Write:  tg.rng.Bool(),
	}

	if tg.stray > 0 && tg.rng.Intn(tg.stray) == 0 {
		tr.Address = (tg.rng.Uint64() & tg.reach) &^ (n - 1)
	} else {
		r := tg.targets[tg.rng.Intn(len(tg.targets))]
		tr.Address = r.Base + tg.rng.Uint64n(r.Size/n)*n
	}

	if tr.Write {
		tr.Data = make([]byte, n)
		tg.rng.Fill(tr.Data)
	}

	return tr
}

// Step implements the bus.Stepper interface. Each step collects waiting
// completions and attempts to issue one new transaction.
func (tg *Traffic) Step() {
	tg.crit.Lock()
	defer tg.crit.Unlock()

	for {
		c, ok := tg.init.Poll(tg.issuer)
		if !ok {
			break // for loop
		}
		tg.stats.Completed++
		if c.Response != bus.OKAY {
			tg.stats.Errors++
		}
	}

	if len(tg.targets) == 0 {
		return
	}

	tr := tg.next()
	err := tg.init.TryIssue(tr)
	if err != nil {
		if curated.Is(err, bridge.WindowFullError) || curated.Is(err, bus.BusyError) || curated.Is(err, bridge.InvalidTransactionError) {
			tg.stats.Refused++
			return
		}
	}

	// transactions that failed in the initiator still produce a completion
	tg.stats.Issued++
	tg.tag++
}
