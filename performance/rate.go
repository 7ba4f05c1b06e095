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

import "time"

// CalcRate takes the number of cycles and the elapsed time and returns the
// cycles-per-second rate and the accuracy of that rate as a percentage of the
// system clock. An elapsed time of zero gives a rate of zero.
func CalcRate(cycles uint64, elapsed time.Duration, clock float64) (rate float64, accuracy float64) {
	if elapsed <= 0 {
		return 0, 0
	}
	rate = float64(cycles) / elapsed.Seconds()
	if clock > 0 {
		accuracy = 100 * rate / clock
	}
	return rate, accuracy
}
