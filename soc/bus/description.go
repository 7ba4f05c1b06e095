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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
)

// Protocol spoken by an endpoint.
type Protocol int

// List of valid protocols. Wishbone is the simple synchronous bus used for the
// fabric itself. AXI is the wide split transaction bus used by hard processor
// systems.
const (
	Wishbone Protocol = iota
	AXILite
	AXI
)

func (p Protocol) String() string {
	switch p {
	case Wishbone:
		return "wishbone"
	case AXILite:
		return "axi-lite"
	case AXI:
		return "axi"
	}
	return "undefined"
}

// Split returns true if the protocol separates the address and data phases of
// a transaction and so allows more than one transaction in flight.
func (p Protocol) Split() bool {
	return p == AXI || p == AXILite
}

// ParseProtocol converts the result of Protocol.String() back into a
// Protocol.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(s) {
	case "wishbone", "wb":
		return Wishbone, nil
	case "axi-lite", "axilite", "axi_lite":
		return AXILite, nil
	case "axi":
		return AXI, nil
	}
	return Wishbone, curated.Errorf(UnknownProtocolError, s)
}

// Pair of protocols. From is the protocol of a master and To is the protocol
// of the fabric the master is connected to.
type Pair struct {
	From Protocol
	To   Protocol
}

func (p Pair) String() string {
	return fmt.Sprintf("%s->%s", p.From, p.To)
}

// Description of a bus endpoint.
type Description struct {
	ID       string
	Protocol Protocol

	// width of the address bus in bits
	AddressWidth int

	// width of the data bus in bits
	DataWidth int

	// width of the transaction tag in bits. only meaningful for AXI
	IDWidth int
}

func (d Description) String() string {
	s := fmt.Sprintf("%s (%s a%d d%d", d.ID, d.Protocol, d.AddressWidth, d.DataWidth)
	if d.Protocol == AXI {
		s = fmt.Sprintf("%s id%d", s, d.IDWidth)
	}
	return s + ")"
}

// Validate checks that the description is sensible.
func (d Description) Validate() error {
	if d.ID == "" {
		return curated.Errorf(InvalidDescriptionError, "<unnamed>", "empty id")
	}
	if d.Protocol < Wishbone || d.Protocol > AXI {
		return curated.Errorf(InvalidDescriptionError, d.ID, "undefined protocol")
	}
	if d.AddressWidth < 1 || d.AddressWidth > 64 {
		return curated.Errorf(InvalidDescriptionError, d.ID, fmt.Sprintf("address width of %d bits", d.AddressWidth))
	}
	if d.DataWidth < 8 || d.DataWidth > 1024 || d.DataWidth&(d.DataWidth-1) != 0 {
		return curated.Errorf(InvalidDescriptionError, d.ID, fmt.Sprintf("data width of %d bits", d.DataWidth))
	}
	if d.Protocol == AXI {
		if d.IDWidth < 0 || d.IDWidth > 16 {
			return curated.Errorf(InvalidDescriptionError, d.ID, fmt.Sprintf("id width of %d bits", d.IDWidth))
		}
	} else if d.IDWidth != 0 {
		return curated.Errorf(InvalidDescriptionError, d.ID, fmt.Sprintf("id width not supported by %s", d.Protocol))
	}
	return nil
}

// Reach returns the highest address the endpoint can put on the bus.
func (d Description) Reach() uint64 {
	if d.AddressWidth >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << d.AddressWidth) - 1
}

// Window is a restricted range of addresses. Addresses inside the window are
// rebased before being forwarded to the fabric. A zero sized window is the
// same as no window.
type Window struct {
	Base uint64
	Size uint64

	// the fabric address that the base of the window corresponds to
	Remap uint64
}

// Restricted returns true if the window limits the addresses a master can
// use.
func (w Window) Restricted() bool {
	return w.Size > 0
}

// Translate an address through the window. Returns false if the address is
// outside the window.
func (w Window) Translate(address uint64) (uint64, bool) {
	if !w.Restricted() {
		return address, true
	}
	if address < w.Base || address-w.Base >= w.Size {
		return 0, false
	}
	return address - w.Base + w.Remap, true
}

// Master is a bus master. The master itself is the source of transactions
// and so unlike a slave it does not need to implement Target.
type Master struct {
	Description
	Window Window
}
