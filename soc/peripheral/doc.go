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

// Package peripheral contains transaction level models of the slaves that can
// be attached to the fabric. The models are simple: they hold enough state to
// answer reads and writes, and they delay completions by a configurable
// number of steps so that the behaviour of bridges under load can be
// observed.
//
// Peripherals see addresses relative to the base of the region they are
// attached to. The bridge is responsible for normalising the address before
// issuing the transaction.
//
// Memory models RAM and ROM. A ROM, or any memory created as read-only,
// answers writes with a slave error. CSR models the control and status
// register window of the SoC. The window is divided into pages and each
// peripheral that exposes registers (the LEDChaser for example) is given a
// page of its own.
package peripheral
