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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/test"
)

func TestProtocol(t *testing.T) {
	for _, p := range []bus.Protocol{bus.Wishbone, bus.AXILite, bus.AXI} {
		q, err := bus.ParseProtocol(p.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, q, p)
	}

	_, err := bus.ParseProtocol("ahb")
	test.ExpectSuccess(t, curated.Is(err, bus.UnknownProtocolError))

	test.ExpectSuccess(t, bus.AXI.Split())
	test.ExpectFailure(t, bus.Wishbone.Split())

	p := bus.Pair{From: bus.AXI, To: bus.Wishbone}
	test.ExpectEquality(t, p.String(), "axi->wishbone")
}

func TestDescription(t *testing.T) {
	d := bus.Description{
		ID:           "ps7_gp0",
		Protocol:     bus.AXI,
		AddressWidth: 32,
		DataWidth:    32,
		IDWidth:      12,
	}
	test.ExpectSuccess(t, d.Validate())
	test.ExpectEquality(t, d.Reach(), uint64(0xffff_ffff))
	test.ExpectEquality(t, d.String(), "ps7_gp0 (axi a32 d32 id12)")

	d.DataWidth = 24
	test.ExpectSuccess(t, curated.Is(d.Validate(), bus.InvalidDescriptionError))

	d.DataWidth = 32
	d.AddressWidth = 0
	test.ExpectSuccess(t, curated.Is(d.Validate(), bus.InvalidDescriptionError))

	d.AddressWidth = 64
	test.ExpectEquality(t, d.Reach(), ^uint64(0))

	// id width is only allowed for AXI
	w := bus.Description{
		ID:           "vexriscv",
		Protocol:     bus.Wishbone,
		AddressWidth: 32,
		DataWidth:    32,
		IDWidth:      4,
	}
	test.ExpectSuccess(t, curated.Is(w.Validate(), bus.InvalidDescriptionError))
	w.IDWidth = 0
	test.ExpectSuccess(t, w.Validate())
	test.ExpectEquality(t, w.String(), "vexriscv (wishbone a32 d32)")
}

func TestWindow(t *testing.T) {
	var w bus.Window
	test.ExpectFailure(t, w.Restricted())
	a, ok := w.Translate(0x1234)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x1234))

	w = bus.Window{Base: 0x4000_0000, Size: 0x1000_0000, Remap: 0x0}
	a, ok = w.Translate(0x4000_0010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x10))

	_, ok = w.Translate(0x5000_0000)
	test.ExpectFailure(t, ok)
	_, ok = w.Translate(0x3fff_ffff)
	test.ExpectFailure(t, ok)
}

func TestCompletion(t *testing.T) {
	tr := bus.Transaction{Issuer: "m", Tag: 7, Address: 0x100, Width: 32}
	c := bus.Complete(tr, []byte{1, 2, 3, 4})
	test.ExpectEquality(t, c.Response, bus.OKAY)
	test.ExpectEquality(t, c.Tag, uint32(7))
	test.ExpectEquality(t, c.String(), "m#7 0x100 OKAY [01 02 03 04]")

	c = bus.Fail(tr, bus.DECERR, nil)
	test.ExpectEquality(t, c.Response, bus.DECERR)
	test.ExpectEquality(t, c.Address, uint64(0x100))
	test.ExpectEquality(t, tr.Bytes(), 4)
}

func TestDirection(t *testing.T) {
	test.ExpectEquality(t, bus.In.String(), "in")
	test.ExpectEquality(t, bus.Out.String(), "out")
	test.ExpectEquality(t, bus.InOut.String(), "io")
	test.ExpectEquality(t, bus.In.Flip(), bus.Out)
	test.ExpectEquality(t, bus.Out.Flip(), bus.In)
	test.ExpectEquality(t, bus.InOut.Flip(), bus.InOut)
}
