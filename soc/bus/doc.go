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

// Package bus defines the endpoints of an SoC interconnect. The Description
// type carries the static capabilities of a master or a slave (protocol,
// address width, data width, transaction ID width) and the Target interface
// is the transaction capability of the slaves on the fabric.
//
// Transactions are issued with Target.Issue() and completions are collected
// with Target.Poll(). Completions are collected by issuer because a slave on
// the fabric is shared between all the masters connected to it.
//
// A target that cannot accept a transaction returns an error matching
// BusyError and the issuer should try again later. This is how a simple
// synchronous bus like Wishbone stalls a master.
//
// A target that needs time to pass in order to produce completions also
// implements the Stepper interface.
package bus
