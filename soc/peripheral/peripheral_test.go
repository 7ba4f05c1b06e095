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

package peripheral_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/soc/peripheral"
	"github.com/jetsetilly/socfabric/test"
)

func read(address uint64, width int) bus.Transaction {
	return bus.Transaction{Issuer: "cpu", Address: address, Width: width}
}

func write(address uint64, data ...byte) bus.Transaction {
	return bus.Transaction{Issuer: "cpu", Address: address, Width: len(data) * 8, Write: true, Data: data}
}

func TestMemoryReadWrite(t *testing.T) {
	mem := peripheral.NewMemory("sram", 0x1000, 32, false, peripheral.Timing{})

	test.DemandSuccess(t, mem.Issue(write(0x10, 0xde, 0xad, 0xbe, 0xef)))
	c, ok := mem.Poll("cpu")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Response, bus.OKAY)
	test.ExpectSuccess(t, c.Data == nil)

	test.DemandSuccess(t, mem.Issue(read(0x10, 32)))
	c, ok = mem.Poll("cpu")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Response, bus.OKAY)
	test.ExpectSuccess(t, bytes.Equal(c.Data, []byte{0xde, 0xad, 0xbe, 0xef}))

	// narrow read of the middle of the word
	test.DemandSuccess(t, mem.Issue(read(0x12, 16)))
	c, _ = mem.Poll("cpu")
	test.ExpectSuccess(t, bytes.Equal(c.Data, []byte{0xbe, 0xef}))

	v, err := mem.Peek(0x13)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xef))

	// nothing left to poll
	_, ok = mem.Poll("cpu")
	test.ExpectFailure(t, ok)
}

func TestMemoryErrors(t *testing.T) {
	mem := peripheral.NewMemory("sram", 0x1000, 32, false, peripheral.Timing{})

	mem.Issue(read(0x1000, 32))
	c, _ := mem.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.SLVERR)
	test.ExpectSuccess(t, curated.Is(c.Err, peripheral.OutOfRangeError))

	mem.Issue(read(0x2, 32))
	c, _ = mem.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.SLVERR)
	test.ExpectSuccess(t, curated.Is(c.Err, peripheral.MisalignedError))

	mem.Issue(read(0x0, 64))
	c, _ = mem.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.SLVERR)
	test.ExpectSuccess(t, curated.Is(c.Err, peripheral.WidthError))
}

func TestReadOnlyMemory(t *testing.T) {
	rom := peripheral.NewMemory("rom", 0x100, 32, true, peripheral.Timing{})
	test.DemandSuccess(t, rom.Load(0x0, []byte{0x13, 0x00, 0x00, 0x00}))

	rom.Issue(write(0x0, 0xff, 0xff, 0xff, 0xff))
	c, _ := rom.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.SLVERR)
	test.ExpectSuccess(t, curated.Is(c.Err, peripheral.ReadOnlyError))

	rom.Issue(read(0x0, 32))
	c, _ = rom.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.OKAY)
	test.ExpectSuccess(t, bytes.Equal(c.Data, []byte{0x13, 0x00, 0x00, 0x00}))

	// reset keeps the contents of a read-only memory
	rom.Reset()
	v, _ := rom.Peek(0x0)
	test.ExpectEquality(t, v, uint8(0x13))

	test.ExpectFailure(t, rom.Load(0xfe, []byte{1, 2, 3}))
}

func TestMemoryLatency(t *testing.T) {
	mem := peripheral.NewMemory("sram", 0x100, 32, false, peripheral.Timing{Latency: 2, Depth: 2})

	test.DemandSuccess(t, mem.Issue(read(0x0, 32)))
	test.DemandSuccess(t, mem.Issue(read(0x4, 32)))

	// pipeline is full
	err := mem.Issue(read(0x8, 32))
	test.ExpectSuccess(t, curated.Is(err, bus.BusyError))

	_, ok := mem.Poll("cpu")
	test.ExpectFailure(t, ok)

	mem.Step()
	_, ok = mem.Poll("cpu")
	test.ExpectFailure(t, ok)

	mem.Step()
	c, ok := mem.Poll("cpu")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Address, uint64(0x0))
	c, ok = mem.Poll("cpu")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Address, uint64(0x4))

	test.ExpectEquality(t, mem.Outstanding(), 0)
}

func TestMemoryIssuers(t *testing.T) {
	mem := peripheral.NewMemory("sram", 0x100, 32, false, peripheral.Timing{Depth: 4})

	a := read(0x0, 32)
	a.Issuer = "a"
	b := read(0x4, 32)
	b.Issuer = "b"
	mem.Issue(a)
	mem.Issue(b)

	c, ok := mem.Poll("b")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Issuer, "b")

	_, ok = mem.Poll("b")
	test.ExpectFailure(t, ok)

	c, ok = mem.Poll("a")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Issuer, "a")
}

func TestCSR(t *testing.T) {
	csr := peripheral.NewCSR("csr", 0x10000, 32, peripheral.Timing{})

	ctrl, err := csr.AddBank("ctrl")
	test.DemandSuccess(t, err)
	scratch, err := ctrl.AddRegister("scratch", false)
	test.DemandSuccess(t, err)
	status, err := ctrl.AddRegister("bus_errors", true)
	test.DemandSuccess(t, err)
	status.Set(3)

	_, err = ctrl.AddRegister("scratch", false)
	test.ExpectSuccess(t, curated.Is(err, peripheral.CSRPageError))

	leds, err := csr.AddBank("leds")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, leds.Offset(), uint64(0x800))

	_, err = csr.AddBank("ctrl")
	test.ExpectSuccess(t, curated.Is(err, peripheral.CSRPageError))

	csr.Issue(write(0x0, 0x78, 0x56, 0x34, 0x12))
	c, _ := csr.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.OKAY)
	test.ExpectEquality(t, scratch.Value(), uint32(0x12345678))

	// byte write into the second lane
	csr.Issue(write(0x1, 0xaa))
	csr.Poll("cpu")
	test.ExpectEquality(t, scratch.Value(), uint32(0x1234aa78))

	// read only register ignores the write
	csr.Issue(write(0x4, 0xff, 0xff, 0xff, 0xff))
	csr.Poll("cpu")
	test.ExpectEquality(t, status.Value(), uint32(3))

	csr.Issue(read(0x4, 32))
	c, _ = csr.Poll("cpu")
	test.ExpectSuccess(t, bytes.Equal(c.Data, []byte{3, 0, 0, 0}))

	// unassigned location reads as zero
	csr.Issue(read(0x1000, 32))
	c, _ = csr.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.OKAY)
	test.ExpectSuccess(t, bytes.Equal(c.Data, []byte{0, 0, 0, 0}))

	m := csr.Map()
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[1].Offset, uint64(0x4))
	test.ExpectEquality(t, m[1].Register, "bus_errors")
	test.ExpectEquality(t, csr.String(), "0x0000 ctrl_scratch\n0x0004 ctrl_bus_errors (ro)\n")
}

func TestCSRPagesExhausted(t *testing.T) {
	csr := peripheral.NewCSR("csr", 0x1000, 32, peripheral.Timing{})
	_, err := csr.AddBank("a")
	test.ExpectSuccess(t, err)
	_, err = csr.AddBank("b")
	test.ExpectSuccess(t, err)
	_, err = csr.AddBank("c")
	test.ExpectSuccess(t, curated.Is(err, peripheral.CSRPageError))
}

func TestLEDChaser(t *testing.T) {
	csr := peripheral.NewCSR("csr", 0x10000, 32, peripheral.Timing{})
	led, err := peripheral.NewLEDChaser(csr, "leds", 4, 2)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, led.LEDs(), uint32(0b0000))

	pattern := []uint32{0b0001, 0b0011, 0b0111, 0b1111, 0b1110, 0b1100, 0b1000, 0b0000, 0b0001}
	for i, p := range pattern {
		led.Step()
		led.Step()
		test.ExpectEquality(t, led.LEDs(), p, i)
	}

	// software takes control of the LEDs
	csr.Issue(write(0x0, 0x05, 0x00, 0x00, 0x00))
	csr.Poll("cpu")
	test.ExpectEquality(t, led.LEDs(), uint32(0b0101))

	led.Step()
	led.Step()
	test.ExpectEquality(t, led.LEDs(), uint32(0b0101))
}
