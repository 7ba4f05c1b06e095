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
	"context"
	"sync"
	"time"

	"gopkg.in/tomb.v2"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Tier of a component. Components are stepped tier by tier.
type Tier int

// List of valid tiers in the order they are stepped.
const (
	Masters Tier = iota
	Slaves
	Links
	numTiers
)

func (t Tier) String() string {
	switch t {
	case Masters:
		return "masters"
	case Slaves:
		return "slaves"
	case Links:
		return "links"
	}
	return "undefined"
}

// Fabric steps the components attached to it.
type Fabric struct {
	crit   sync.Mutex
	tiers  [numTiers][]bus.Stepper
	cycles uint64

	// non-nil while running
	tomb *tomb.Tomb

	perm logger.Permission
}

// NewFabric is the preferred method of initialisation for the Fabric type.
func NewFabric(perm logger.Permission) *Fabric {
	return &Fabric{
		perm: perm,
	}
}

// Attach a component to the fabric in the specified tier. Components in the
// same tier are stepped in the order they were attached.
func (f *Fabric) Attach(tier Tier, s bus.Stepper) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.tiers[tier] = append(f.tiers[tier], s)
}

// Step every component once.
func (f *Fabric) Step() {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.step()
}

func (f *Fabric) step() {
	for _, t := range f.tiers {
		for _, s := range t {
			s.Step()
		}
	}
	f.cycles++
}

// Cycles returns the number of times the fabric has been stepped.
func (f *Fabric) Cycles() uint64 {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.cycles
}

// Running returns true if the fabric is running in its own goroutine.
func (f *Fabric) Running() bool {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.tomb != nil && f.tomb.Alive()
}

// Run steps the fabric in a new goroutine until Stop() is called or the
// context is done. A period of zero means the fabric steps as quickly as
// possible.
func (f *Fabric) Run(ctx context.Context, period time.Duration) error {
	f.crit.Lock()
	defer f.crit.Unlock()

	if f.tomb != nil && f.tomb.Alive() {
		return curated.Errorf(AlreadyRunningError)
	}

	f.tomb, _ = tomb.WithContext(ctx)
	t := f.tomb

	t.Go(func() error {
		var tick <-chan time.Time
		if period > 0 {
			ticker := time.NewTicker(period)
			defer ticker.Stop()
			tick = ticker.C
		}

		logger.Logf(f.perm, "fabric", "running (period %v)", period)

	down:
		for {
			if tick != nil {
				select {
				case <-tick:
				case <-t.Dying():
					break down
				}
			} else {
				select {
				case <-t.Dying():
					break down
				default:
				}
			}

			f.Step()
		}

		logger.Logf(f.perm, "fabric", "stopped after %d cycles", f.Cycles())
		return nil
	})

	return nil
}

// Stop a running fabric and wait for the goroutine to end.
func (f *Fabric) Stop() error {
	f.crit.Lock()
	t := f.tomb
	f.crit.Unlock()

	if t == nil {
		return curated.Errorf(NotRunningError)
	}

	t.Kill(nil)
	err := t.Wait()

	// context cancellation is a normal way for the fabric to stop
	if err == context.Canceled || err == context.DeadlineExceeded {
		err = nil
	}
	return err
}
