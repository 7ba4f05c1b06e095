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

package random

import (
	"math"
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a source of random numbers for a simulation.
type Random struct {
	seed int64
	rnd  *rand.Rand

	// use zero as the base seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	return &Random{
		seed: seed,
	}
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewSource(rnd.seed))
		} else {
			rnd.rnd = rand.New(rand.NewSource(baseSeed + rnd.seed))
		}
	}
	return rnd.rnd
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Uint64n returns a number in the range [0, n). A value of zero for n
// returns zero.
func (rnd *Random) Uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n <= math.MaxInt64 {
		return uint64(rnd.rand().Int63n(int64(n)))
	}
	v := rnd.rand().Uint64()
	for v >= n {
		v = rnd.rand().Uint64()
	}
	return v
}

// Uint64 returns any 64 bit number.
func (rnd *Random) Uint64() uint64 {
	return rnd.rand().Uint64()
}

// Bool returns true or false with equal probability.
func (rnd *Random) Bool() bool {
	return rnd.rand().Intn(2) == 0
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(p []byte) {
	r := rnd.rand()
	for i := range p {
		p[i] = byte(r.Intn(256))
	}
}
