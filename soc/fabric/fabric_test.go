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

package fabric_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/soc/fabric"
	"github.com/jetsetilly/socfabric/soc/peripheral"
	"github.com/jetsetilly/socfabric/test"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Step() {
	*r.log = append(*r.log, r.name)
}

func TestStepOrder(t *testing.T) {
	var log []string
	f := fabric.NewFabric(nil)
	f.Attach(fabric.Links, recorder{name: "bridge", log: &log})
	f.Attach(fabric.Slaves, recorder{name: "sram", log: &log})
	f.Attach(fabric.Masters, recorder{name: "cpu", log: &log})
	f.Attach(fabric.Slaves, recorder{name: "csr", log: &log})

	f.Step()
	test.ExpectEquality(t, strings.Join(log, ","), "cpu,sram,csr,bridge")
	test.ExpectEquality(t, f.Cycles(), uint64(1))
	test.ExpectEquality(t, fabric.Links.String(), "links")
}

func waitForCycles(t *testing.T, f *fabric.Fabric, n uint64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for f.Cycles() < n {
		if time.Now().After(deadline) {
			t.Fatalf("fabric did not reach %d cycles", n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRunStop(t *testing.T) {
	f := fabric.NewFabric(nil)

	test.ExpectSuccess(t, curated.Is(f.Stop(), fabric.NotRunningError))

	test.DemandSuccess(t, f.Run(context.Background(), 0))
	test.ExpectSuccess(t, f.Running())
	test.ExpectSuccess(t, curated.Is(f.Run(context.Background(), 0), fabric.AlreadyRunningError))

	waitForCycles(t, f, 100)

	test.ExpectSuccess(t, f.Stop())
	test.ExpectFailure(t, f.Running())

	// no more steps after stopping
	c := f.Cycles()
	time.Sleep(10 * time.Millisecond)
	test.ExpectEquality(t, f.Cycles(), c)

	// can be restarted
	test.DemandSuccess(t, f.Run(context.Background(), time.Millisecond))
	waitForCycles(t, f, c+2)
	test.ExpectSuccess(t, f.Stop())
}

func TestRunContext(t *testing.T) {
	f := fabric.NewFabric(nil)

	ctx, cancel := context.WithCancel(context.Background())
	test.DemandSuccess(t, f.Run(ctx, 0))
	waitForCycles(t, f, 10)
	cancel()

	test.ExpectSuccess(t, f.Stop())
	test.ExpectFailure(t, f.Running())
}

type source struct {
	space   *addrspace.Frozen
	masters []bus.Master
	slaves  map[string]bus.Peripheral
	bridges map[string]*bridge.Bridge
}

func (s *source) Space() *addrspace.Frozen          { return s.space }
func (s *source) Masters() []bus.Master             { return s.masters }
func (s *source) Slaves() map[string]bus.Peripheral { return s.slaves }
func (s *source) Fabric() bus.Description {
	return bus.Description{ID: "wishbone", Protocol: bus.Wishbone, AddressWidth: 32, DataWidth: 32}
}
func (s *source) Bridge(master string) (*bridge.Bridge, bool) {
	b, ok := s.bridges[master]
	return b, ok
}

func prepare(t *testing.T) *source {
	t.Helper()

	as := &addrspace.AddressSpace{}
	_, err := as.Allocate("sram", 0x1000_0000, 0x2000, addrspace.RAM)
	test.DemandSuccess(t, err)
	_, err = as.Allocate("csr", 0x43c0_0000, 0x10000, addrspace.MMIO)
	test.DemandSuccess(t, err)
	_, err = as.Allocate("rom", 0x0, 0x1000, addrspace.LinkerOnly)
	test.DemandSuccess(t, err)

	src := &source{
		space: as.Freeze(),
		slaves: map[string]bus.Peripheral{
			"sram": peripheral.NewMemory("sram", 0x2000, 32, false, peripheral.Timing{Latency: 2}),
			"csr":  peripheral.NewCSR("csr", 0x10000, 32, peripheral.Timing{Latency: 1}),
		},
		bridges: make(map[string]*bridge.Bridge),
	}

	ps7 := bus.Master{
		Description: bus.Description{ID: "ps7", Protocol: bus.AXI, AddressWidth: 32, DataWidth: 32, IDWidth: 12},
	}
	cpu := bus.Master{
		Description: bus.Description{ID: "cpu", Protocol: bus.Wishbone, AddressWidth: 32, DataWidth: 32},
	}
	src.masters = []bus.Master{ps7, cpu}

	b, err := bridge.New(bridge.Config{
		Master: ps7,
		Fabric: src.Fabric(),
		Space:  src.space,
		Slaves: src.slaves,
		Window: 8,
	})
	test.DemandSuccess(t, err)
	src.bridges["ps7"] = b

	return src
}

func TestPort(t *testing.T) {
	src := prepare(t)
	p := fabric.NewPort(src.masters[1], src.space, src.slaves, nil)
	test.ExpectEquality(t, p.Name(), "cpu")

	sram := src.slaves["sram"].(*peripheral.Memory)

	tr := bus.Transaction{Issuer: "cpu", Tag: 9, Address: 0x1000_0004, Width: 32, Write: true, Data: []byte{1, 2, 3, 4}}
	test.DemandSuccess(t, p.TryIssue(tr))

	// one transaction at a time
	err := p.TryIssue(tr)
	test.ExpectSuccess(t, curated.Is(err, bus.BusyError))

	_, ok := p.Poll("cpu")
	test.ExpectFailure(t, ok)

	sram.Step()
	sram.Step()
	p.Step()

	c, ok := p.Poll("cpu")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Tag, uint32(9))
	test.ExpectEquality(t, c.Address, uint64(0x1000_0004))
	test.ExpectEquality(t, c.Response, bus.OKAY)

	v, _ := sram.Peek(0x4)
	test.ExpectEquality(t, v, uint8(1))

	// decode errors complete immediately
	err = p.TryIssue(bus.Transaction{Issuer: "cpu", Address: 0x8000_0000, Width: 32})
	test.ExpectSuccess(t, curated.Is(err, bridge.DecodeError))
	c, ok = p.Poll("cpu")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, c.Response, bus.DECERR)

	err = p.TryIssue(bus.Transaction{Issuer: "cpu", Address: 0x10, Width: 32, Write: true, Data: []byte{0, 0, 0, 0}})
	test.ExpectSuccess(t, curated.Is(err, bridge.LinkerOnlyWriteError))
	c, _ = p.Poll("cpu")
	test.ExpectEquality(t, c.Response, bus.SLVERR)
}

func TestSimulation(t *testing.T) {
	src := prepare(t)

	sim, err := fabric.NewSimulation(src, fabric.Options{Traffic: true, Seed: 1, Predictable: true})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(sim.Links), 2)
	test.DemandEquality(t, len(sim.Traffic), 2)

	for i := 0; i < 1000; i++ {
		sim.Step()
	}

	for _, tg := range sim.Traffic {
		s := tg.Stats()
		test.ExpectInequality(t, s.Issued, uint64(0), tg.Issuer())
		test.ExpectInequality(t, s.Completed, uint64(0), tg.Issuer())
		test.ExpectEquality(t, s.Errors, uint64(0), tg.Issuer())
		test.ExpectSuccess(t, s.Outstanding() <= 8, tg.Issuer())
	}

	b, _ := src.Bridge("ps7")
	test.ExpectEquality(t, b.Stats().Issued, sim.Traffic[0].Stats().Issued)

	w := &test.Writer{}
	sim.Report(w)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "cycles: 1000\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "bridge ps7 (axi->wishbone)"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "port cpu\n"))
}

func TestSimulationStray(t *testing.T) {
	src := prepare(t)

	sim, err := fabric.NewSimulation(src, fabric.Options{Traffic: true, Seed: 2, Stray: 2, Predictable: true})
	test.DemandSuccess(t, err)

	for i := 0; i < 500; i++ {
		sim.Step()
	}

	// about half of the transactions go to random addresses and most of
	// those are not mapped
	s := sim.Traffic[0].Stats()
	test.ExpectInequality(t, s.Errors, uint64(0))
}

func TestSimulationNoInitiator(t *testing.T) {
	src := prepare(t)
	delete(src.bridges, "ps7")

	_, err := fabric.NewSimulation(src, fabric.Options{})
	test.ExpectSuccess(t, curated.Is(err, fabric.NoInitiatorError))
}
