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

// Package composer assembles the description of an SoC. Masters, slaves and
// regions without a slave are registered with a Composer and then Finalize()
// checks the whole and produces a Layout.
//
// A Composer has two states. It starts off Building and after a successful
// call to Finalize() it is Finalized. A Finalized composer refuses all
// further changes, including a second call to Finalize(), with an
// AlreadyFinalizedError.
//
// Registering a slave allocates its region in the address space immediately
// and so overlapping or duplicate regions are reported at the point of
// registration. Bridges are only created by Finalize(), one for every master
// that does not speak the fabric protocol.
//
// A Composer must only be used by the goroutine that created it. When built
// with the "assertions" tag this is checked and any violation causes a panic.
// The Layout produced by Finalize() is read-only and may be shared.
package composer
