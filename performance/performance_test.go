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

package performance_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/performance"
	"github.com/jetsetilly/socfabric/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfileError))
}

func TestCalcRate(t *testing.T) {
	rate, accuracy := performance.CalcRate(1000, time.Second, 100e6)
	test.ExpectApproximate(t, rate, 1000, 0.0001)
	test.ExpectApproximate(t, accuracy, 0.001, 0.0001)

	rate, accuracy = performance.CalcRate(1000, 500*time.Millisecond, 0)
	test.ExpectApproximate(t, rate, 2000, 0.0001)
	test.ExpectEquality(t, accuracy, 0.0)

	rate, _ = performance.CalcRate(1000, 0, 100e6)
	test.ExpectEquality(t, rate, 0.0)
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	fn := (performance.ProfileCPU | performance.ProfileMem).Filenames(header)
	test.DemandEquality(t, len(fn), 2)
	for _, f := range fn {
		_, err := os.Stat(f)
		test.ExpectSuccess(t, err, f)
	}

	// errors from the run function are returned unchanged
	err = performance.RunProfiler(performance.ProfileNone, header, func() error {
		return curated.Errorf("run failed")
	})
	test.ExpectSuccess(t, curated.Is(err, "run failed"))
}

// counter is a Runner that counts as quickly as possible.
type counter struct {
	crit   sync.Mutex
	cycles atomic.Uint64
	done   chan bool
	cancel context.CancelFunc
}

func (c *counter) Run(ctx context.Context, _ time.Duration) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan bool)
	go func() {
		defer close(c.done)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			c.cycles.Add(1)
		}
	}()
	return nil
}

func (c *counter) Stop() error {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.cancel()
	<-c.done
	return nil
}

func (c *counter) Cycles() uint64 {
	return c.cycles.Load()
}

func TestCheck(t *testing.T) {
	w := &test.Writer{}
	c := &counter{}

	err := performance.Check(w, performance.ProfileNone, c, 100e6, "50ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c.Cycles() > 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "cycles/sec"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "of 100MHz"))

	err = performance.Check(w, performance.ProfileNone, c, 100e6, "soon")
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))

	err = performance.Check(w, performance.ProfileNone, c, 100e6, "0s")
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))
}
