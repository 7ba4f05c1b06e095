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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/socfabric/curated"
)

// Runner is implemented by types that can be stepped in their own goroutine.
// The fabric.Fabric and fabric.Simulation types both satisfy the interface.
type Runner interface {
	Run(ctx context.Context, period time.Duration) error
	Stop() error
	Cycles() uint64
}

// Check runs the Runner as quickly as possible for the duration specified in
// the duration string (eg. "5s"). The clock value is the frequency of the SoC
// system clock in Hz and is used to calculate the accuracy of the simulation
// rate.
func Check(output io.Writer, profile Profile, r Runner, clock float64, duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if d <= 0 {
		return curated.Errorf(PerformanceError, fmt.Errorf("duration must be positive: %s", duration))
	}

	var cycles uint64
	var elapsed time.Duration

	err = RunProfiler(profile, "performance", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), d)
		defer cancel()

		start := r.Cycles()
		startTime := time.Now()

		err := r.Run(ctx, 0)
		if err != nil {
			return err
		}

		<-ctx.Done()

		err = r.Stop()
		if err != nil {
			return err
		}

		elapsed = time.Since(startTime)
		cycles = r.Cycles() - start

		return nil
	})
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	rate, accuracy := CalcRate(cycles, elapsed, clock)
	fmt.Fprintf(output, "%d cycles in %v\n", cycles, elapsed.Round(time.Millisecond))
	fmt.Fprintf(output, "%.0f cycles/sec (%.4f%% of %gMHz)\n", rate, accuracy, clock/1e6)

	return nil
}
