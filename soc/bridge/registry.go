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

package bridge

import (
	"sort"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// flavour of a bridge. the outstanding table and decode logic are shared by
// all bridges. the differences are in the size of the table and in the
// signals exposed by the master side
type flavour struct {
	// maximum number of transactions in flight. zero means the limit is
	// set by the ID width of the master
	limit int

	// ports on the master side of the bridge
	ports func(m bus.Master) []bus.Port
}

var registry = map[bus.Pair]flavour{
	{From: bus.AXI, To: bus.Wishbone}: {
		ports: axiPorts,
	},
	{From: bus.AXILite, To: bus.Wishbone}: {
		limit: 1,
		ports: axiLitePorts,
	},
}

// Supported returns true if a bridge exists for the protocol pair.
func Supported(p bus.Pair) bool {
	_, ok := registry[p]
	return ok
}

// Pairs returns the list of supported protocol pairs.
func Pairs() []bus.Pair {
	var l []bus.Pair
	for p := range registry {
		l = append(l, p)
	}
	sort.Slice(l, func(i, j int) bool {
		if l[i].From == l[j].From {
			return l[i].To < l[j].To
		}
		return l[i].From < l[j].From
	})
	return l
}

func lookup(p bus.Pair) (flavour, error) {
	f, ok := registry[p]
	if !ok {
		return flavour{}, curated.Errorf(UnsupportedBridgeError, p)
	}
	return f, nil
}
