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

// Package random should be used in preference to the math/rand package when a
// random number is required by a simulation.
//
// By default every Random instance is seeded with a base seed chosen when the
// program starts, combined with the seed given to NewRandom(). Two instances
// created with different seeds produce different sequences and two runs of
// the program produce different sequences.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before the first number is requested. This is useful for testing
// purposes.
//
// A Random instance is not safe for concurrent use.
package random
