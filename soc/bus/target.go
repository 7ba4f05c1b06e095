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

package bus

// Target is implemented by anything that accepts transactions.
type Target interface {
	// Issue a transaction. An error matching BusyError means the target
	// cannot accept the transaction now and it should be issued again later.
	// Any other error is a rejection of the transaction.
	Issue(tr Transaction) error

	// Poll returns the next completion for transactions issued by the named
	// issuer. The second return value is false if there are no completions
	// waiting for that issuer.
	//
	// A slave may be shared by many masters and each only collects its own
	// completions.
	Poll(issuer string) (Completion, bool)
}

// Stepper is implemented by targets that need time to pass.
type Stepper interface {
	Step()
}

// Peripheral is a slave on the fabric.
type Peripheral interface {
	Target
	Describe() Description
}

// Direction of a port from the point of view of the component that owns it.
type Direction int

// List of valid directions.
const (
	In Direction = iota
	Out
	InOut
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	}
	return "io"
}

// Flip returns the direction as seen from the other end of the port.
func (d Direction) Flip() Direction {
	switch d {
	case In:
		return Out
	case Out:
		return In
	}
	return d
}

// Port is a signal level port of a component.
type Port struct {
	Name  string
	Width int
	Dir   Direction
}
