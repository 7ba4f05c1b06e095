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

// Package fabric is a transaction level model of the SoC interconnect. It
// does not model signals or clocks. Time passes in steps and in each step
// every attached component is stepped once: masters first, then slaves, then
// the links (bridges and ports) between them.
//
// The fabric can be stepped explicitly with Step() or it can run freely in
// its own goroutine with Run() and Stop().
//
// Masters that speak the fabric protocol natively are connected with a Port.
// Masters that need a bridge are connected with the bridge created by the
// composer. Either can be driven by a Traffic generator, which is how the
// simulation in the socfabric command exercises a layout.
package fabric
