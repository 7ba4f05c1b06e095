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

// Package assert contains checks that are only active when socfabric is
// compiled with the "assertions" build tag. Without the tag the checks
// compile to nothing of consequence.
//
// The main use is enforcing single ownership of state that has no locking
// discipline of its own. For example, the composer records the goroutine
// that created it and checks that all later mutations come from the same
// goroutine.
package assert
