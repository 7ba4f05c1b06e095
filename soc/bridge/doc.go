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

// Package bridge connects a master to a fabric that speaks a different
// protocol. The only fabric protocol supported is Wishbone and the masters
// that can be bridged to it are AXI and AXI-Lite. The New() function chooses
// the implementation from the registry of protocol pairs.
//
// A bridge has an outstanding transaction table of fixed size. The size is
// the number of distinct transaction IDs the master can use, capped by an
// explicit window in the bridge configuration. Each entry in the table is a
// credit and a transaction cannot be issued without one. The Issue()
// function waits for a credit and TryIssue() fails immediately if none are
// available.
//
// Once issued, the address of the transaction is decoded using the frozen
// address space. The transaction is forwarded to the slave for the decoded
// region with the index of the table entry as the downstream tag. The
// original tag and address are restored when the slave completes. If the
// address cannot be decoded, or the transaction cannot be accepted by the
// slave, the bridge produces the completion itself with an error response.
//
// Completions are returned by Poll() in the order the transactions were
// issued, for each issuer separately.
//
// Time in the bridge passes with calls to Step(). Each step forwards
// transactions that were stalled by a busy slave and collects completions
// from slaves.
package bridge
