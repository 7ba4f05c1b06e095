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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/socfabric/board"
	"github.com/jetsetilly/socfabric/cpu"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/modalflag"
	"github.com/jetsetilly/socfabric/paths"
	"github.com/jetsetilly/socfabric/performance"
	"github.com/jetsetilly/socfabric/prefs"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bridge"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/soc/composer"
	"github.com/jetsetilly/socfabric/soc/fabric"
	"github.com/jetsetilly/socfabric/soc/linker"
	"github.com/jetsetilly/socfabric/statsview"
	"github.com/jetsetilly/socfabric/terminal"
	"github.com/jetsetilly/socfabric/version"
)

// the board used when none is given on the command line
const defaultBoard = "soccore"

// exit values
const (
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("LAYOUT", "BOARDS", "LINKER", "SIMULATE", "VIZ", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	out := terminal.NewOutput(output)

	switch md.Mode() {
	case "LAYOUT":
		err = layout(md, out)

	case "BOARDS":
		err = boards(md, out)

	case "LINKER":
		err = export(md, out)

	case "SIMULATE":
		err = simulate(md, out)

	case "VIZ":
		err = viz(md, out)

	case "VERSION":
		out.Printf("%s\n", version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

// flags common to every mode that builds an SoC
type socFlags struct {
	config *string
	prefs  *string
	log    *bool
}

func addSoCFlags(md *modalflag.Modes) socFlags {
	return socFlags{
		config: md.AddString("config", "", "prefs file for the board. defaults to <board>.prefs in the resource directory"),
		prefs:  md.AddString("prefs", "", "board options that override the prefs file. eg. \"bridge.window::4; led_chaser::false\""),
		log:    md.AddBool("log", false, "echo log to stderr"),
	}
}

// build the SoC for the board named in the first remaining argument
func buildSoC(md *modalflag.Modes, flgs socFlags) (*board.SoC, *board.Options, error) {
	if *flgs.log {
		logger.SetEcho(os.Stderr)
	}

	name := md.GetArg(0)
	if name == "" {
		name = defaultBoard
	}

	t, err := board.Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	config := *flgs.config
	if config == "" {
		config = paths.ResourcePath(fmt.Sprintf("%s.prefs", t.Name))
	}

	opts, err := board.NewOptions(t, config)
	if err != nil {
		return nil, nil, err
	}

	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
		defer prefs.PopCommandLineStack()
	}

	err = opts.Load()
	if err != nil {
		return nil, nil, err
	}

	soc, err := board.Build(t, opts.Config(), logger.Allow)
	if err != nil {
		return nil, nil, err
	}

	return soc, opts, nil
}

func layout(md *modalflag.Modes, out *terminal.Output) error {
	md.NewMode()
	flgs := addSoCFlags(md)
	ports := md.AddBool("ports", false, "list the signal level ports of the cpu and bridges")
	save := md.AddBool("save", false, "save the board options to the prefs file")
	kind := md.AddString("kind", "", "list the regions of one kind: ram, rom, mmio, linker")
	decode := md.AddAddress("decode", 0, "show the region that decodes the address")
	md.AdditionalHelp("the board is given as the argument. the default board is " + defaultBoard)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var decodeSet bool
	md.Visit(func(flag string) {
		if flag == "decode" {
			decodeSet = true
		}
	})

	var filter addrspace.Kind
	if *kind != "" {
		filter, err = addrspace.ParseKind(*kind)
		if err != nil {
			return err
		}
	}

	soc, opts, err := buildSoC(md, flgs)
	if err != nil {
		return err
	}

	out.Printf("%s", soc.Summary())

	if *kind != "" {
		out.Penf("yellow", "\n%s regions\n", filter)
		for _, r := range soc.Layout.Space().Regions() {
			if r.Kind == filter {
				out.Printf("  %s\n", r)
			}
		}
	}

	if decodeSet {
		if r, ok := soc.Layout.Space().Decode(*decode); ok {
			out.Printf("\n%#010x decodes to %s\n", *decode, r)
		} else {
			out.Printf("\n%#010x is not mapped\n", *decode)
		}
	}

	if *ports {
		for _, g := range soc.CPU.Groups() {
			out.Penf("yellow", "\n%s %s\n", soc.CPU.Name(), g.Name)
			out.Printf("%s", bridge.PortsString(g.Ports))
		}
		for _, b := range soc.Layout.Bridges() {
			out.Penf("yellow", "\n%s bridge (%s)\n", b.Pair(), b.Name())
			out.Printf("%s", bridge.PortsString(b.Ports()))
		}
	}

	if *save {
		err = opts.Save()
		if err != nil {
			return err
		}
		out.Printf("\noptions saved\n")
	}

	return nil
}

func boards(md *modalflag.Modes, out *terminal.Output) error {
	md.NewMode()
	signals := md.AddBool("signals", false, "list the signals of each board")
	master := md.AddString("bridge", "", "show how a master of the protocol joins the fabric: wishbone, axi-lite, axi")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var proto bus.Protocol
	if *master != "" {
		proto, err = bus.ParseProtocol(*master)
		if err != nil {
			return err
		}
	}

	for _, t := range board.Targets() {
		out.Penf("green", "%s", t.Name)
		out.Printf(": %s (%s %s)\n", t.Description, t.Vendor, t.Device)
		out.Printf("  %s\n", t.Defaults)
		if *signals {
			for _, s := range t.Signals {
				out.Printf("  %s\n", s)
			}
		}
	}

	out.Printf("\ncpu types:")
	for _, c := range cpu.Types() {
		out.Printf(" %s", c)
	}
	out.Printf("\nvexriscv variants:")
	for _, v := range cpu.VexRiscvVariants() {
		out.Printf(" %s", v)
	}
	out.Printf("\n")

	if *master != "" {
		m := bus.Master{
			Description: bus.Description{ID: "master", Protocol: proto, AddressWidth: 32, DataWidth: 32},
		}
		pair := bus.Pair{From: proto, To: composer.DefaultFabric.Protocol}
		switch {
		case proto == pair.To:
			out.Penf("yellow", "\n%s master connects to the fabric directly\n", proto)
		case bridge.Supported(pair):
			out.Penf("yellow", "\n%s master connects through a %s bridge\n", proto, pair)
		default:
			out.Penf("yellow", "\n%s master cannot connect to a %s fabric\n", proto, pair.To)
		}
		if ports, ok := bridge.MasterPorts(m); ok {
			out.Printf("%s", bridge.PortsString(ports))
		}
	}

	return nil
}

func export(md *modalflag.Modes, out *terminal.Output) error {
	md.NewMode()
	flgs := addSoCFlags(md)
	build := md.AddString("build", "build", "root of the build directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	soc, _, err := buildSoC(md, flgs)
	if err != nil {
		return err
	}

	dir, err := paths.GeneratedPath(*build, soc.Target.Name)
	if err != nil {
		return err
	}

	written, err := linker.Export(dir, soc.Layout, logger.Allow)
	if err != nil {
		return err
	}

	for _, w := range written {
		out.Printf("%s\n", w)
	}

	return nil
}

func simulate(md *modalflag.Modes, out *terminal.Output) error {
	md.NewMode()
	flgs := addSoCFlags(md)
	cycles := md.AddInt("cycles", 10000, "number of cycles to simulate. zero runs until interrupted")
	period := md.AddInt("period", 0, "microseconds between cycles when running until interrupted")
	seed := md.AddInt("seed", 0, "seed for the traffic generators. zero uses the time")
	stray := md.AddInt("stray", 0, "one in stray transactions goes to a random address")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem, trace, all (comma separated)")
	duration := md.AddString("duration", "", "run as quickly as possible for duration (eg. 5s) and report the rate")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	soc, _, err := buildSoC(md, flgs)
	if err != nil {
		return err
	}

	sim, err := fabric.NewSimulation(soc.Layout, fabric.Options{
		Traffic:     true,
		Seed:        int64(*seed),
		Predictable: *seed != 0,
		Stray:       *stray,
		Logging:     logger.Allow,
	})
	if err != nil {
		return err
	}
	for _, s := range soc.Steppers {
		sim.Attach(fabric.Slaves, s)
	}

	if stats != nil && *stats {
		statsview.Launch(out)
	}

	if *duration != "" {
		err = performance.Check(out, prf, sim, soc.Config.SysClkFreq, *duration)
		if err != nil {
			return err
		}
	} else {
		err = performance.RunProfiler(prf, "simulate", func() error {
			return runSimulation(sim, out, *cycles, time.Duration(*period)*time.Microsecond, soc.Config.SysClkFreq)
		})
		if err != nil {
			return err
		}
	}

	sim.Report(out)
	if soc.LEDs != nil {
		out.Penf("red", "leds: %0*b\n", soc.Target.Count("user_led"), soc.LEDs.LEDs())
	}

	return nil
}

// runSimulation steps the simulation for the number of cycles or, if cycles
// is zero, until the process is interrupted.
func runSimulation(sim *fabric.Simulation, out *terminal.Output, cycles int, period time.Duration, clock float64) error {
	start := time.Now()

	if cycles > 0 {
		for i := 0; i < cycles; i++ {
			sim.Step()
		}
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err := sim.Run(ctx, period)
		if err != nil {
			return err
		}
		out.Printf("running. ctrl-c to stop\n")

		<-ctx.Done()
		out.Printf("\r")

		err = sim.Stop()
		if err != nil {
			return err
		}
	}

	rate, _ := performance.CalcRate(sim.Cycles(), time.Since(start), clock)
	logger.Logf(logger.Allow, "simulate", "%d cycles at %.0f cycles/sec", sim.Cycles(), rate)

	return nil
}

func viz(md *modalflag.Modes, out *terminal.Output) error {
	md.NewMode()
	flgs := addSoCFlags(md)
	md.AdditionalHelp("output is a graph in dot format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	soc, _, err := buildSoC(md, flgs)
	if err != nil {
		return err
	}

	soc.Layout.Visualise(out)

	return nil
}
