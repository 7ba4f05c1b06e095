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

package board

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/socfabric/cpu"
	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bus"
	"github.com/jetsetilly/socfabric/soc/composer"
	"github.com/jetsetilly/socfabric/soc/peripheral"
)

// timing of the peripherals created by the builder
var (
	memoryTiming = peripheral.Timing{Latency: 1, Depth: 2}
	flashTiming  = peripheral.Timing{Latency: 8, Depth: 1}
	csrTiming    = peripheral.Timing{Latency: 1, Depth: 1}
)

// data width of every slave created by the builder
const dataWidth = 32

// SoC is the result of a successful Build().
type SoC struct {
	Target Target
	Config Config
	CPU    cpu.CPU
	Layout *composer.Layout

	// the CSR window. nil if the SoC has no CSR window
	CSR *peripheral.CSR

	// nil if the LED chaser is not enabled
	LEDs *peripheral.LEDChaser

	// components that need to be stepped along with the fabric but which
	// are not slaves or bridges
	Steppers []bus.Stepper
}

// Summary returns a multiline description of the SoC.
func (soc *SoC) Summary() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", soc.Target))
	s.WriteString(fmt.Sprintf("%s\n\n", soc.Config))
	s.WriteString(cpu.Summary(soc.CPU))
	s.WriteString("\n")
	s.WriteString(soc.Layout.Summary())
	return s.String()
}

// builder is the state of a build in progress. it is passed to the compose
// function of the target
type builder struct {
	target Target
	cfg    Config
	perm   logger.Permission

	cmp *composer.Composer
	soc *SoC
}

func (bld *builder) base(name string) uint64 {
	b, _ := bld.target.Base(name)
	return b
}

// wrap an error with the name of the target. errors that originate in this
// package already have the name
func (bld *builder) error(err error) error {
	if curated.Is(err, InvalidOptionError) || curated.Is(err, NoCPUError) {
		return err
	}
	return curated.Errorf(ComposeError, bld.target.Name, err)
}

func (bld *builder) option(key string, err any) error {
	return curated.Errorf(InvalidOptionError, bld.target.Name, key, err)
}

// addCPU registers the masters of the CPU. the window is applied to every
// master of the CPU
func (bld *builder) addCPU(c cpu.CPU, window bus.Window) error {
	for _, m := range c.Masters() {
		m.Window = window
		if err := bld.cmp.RegisterMaster(m); err != nil {
			return err
		}
	}
	bld.soc.CPU = c
	logger.Logf(bld.perm, "board", "%s: cpu %s (%s)", bld.target.Name, c.Name(), c.Variant())
	return nil
}

// addMemory creates a memory slave and registers it at the base address given
// by the memory map
func (bld *builder) addMemory(name string, base uint64, size uint64, kind addrspace.Kind, readOnly bool, timing peripheral.Timing) (*peripheral.Memory, error) {
	mem := peripheral.NewMemory(name, size, dataWidth, readOnly, timing)
	r := addrspace.NewRegion(name, base, size, kind)
	r.ReadOnly = readOnly
	if err := bld.cmp.RegisterSlave(mem, r); err != nil {
		return nil, err
	}
	return mem, nil
}

// addIntegrated adds the integrated memories that have a non-zero size. the
// integrated ROM and SRAM are read-only if readOnly is true
func (bld *builder) addIntegrated(readOnly bool) error {
	if bld.cfg.IntegratedROMSize > 0 {
		_, err := bld.addMemory("rom", bld.base("rom"), bld.cfg.IntegratedROMSize, addrspace.ROM, true, memoryTiming)
		if err != nil {
			return err
		}
	}
	if bld.cfg.IntegratedSRAMSize > 0 {
		_, err := bld.addMemory("sram", bld.base("sram"), bld.cfg.IntegratedSRAMSize, addrspace.RAM, readOnly, memoryTiming)
		if err != nil {
			return err
		}
	}
	if bld.cfg.IntegratedMainRAMSize > 0 {
		_, err := bld.addMemory("main_ram", bld.base("main_ram"), bld.cfg.IntegratedMainRAMSize, addrspace.RAM, false, memoryTiming)
		if err != nil {
			return err
		}
	}
	return nil
}

// addCSR creates the CSR window and the LED chaser if it is enabled
func (bld *builder) addCSR() error {
	csr := peripheral.NewCSR("csr", csrSize, dataWidth, csrTiming)

	if bld.cfg.LEDChaser {
		n := bld.target.Count("user_led")
		if n == 0 {
			return bld.option("led_chaser", "board has no user LEDs")
		}

		// the chaser moves about four times a second
		period := int(bld.cfg.SysClkFreq / 4)

		leds, err := peripheral.NewLEDChaser(csr, "leds", n, period)
		if err != nil {
			return err
		}
		bld.soc.LEDs = leds
		bld.soc.Steppers = append(bld.soc.Steppers, leds)
	}

	err := bld.cmp.RegisterSlave(csr, addrspace.NewRegion("csr", bld.base("csr"), csrSize, addrspace.MMIO))
	if err != nil {
		return err
	}
	bld.soc.CSR = csr

	return nil
}

// Build composes the SoC for the target using the values in the Config.
func Build(t Target, cfg Config, perm logger.Permission) (*SoC, error) {
	if t.compose == nil {
		return nil, curated.Errorf(UnknownBoardError, t.Name)
	}
	if cfg.SysClkFreq <= 0 {
		return nil, curated.Errorf(InvalidOptionError, t.Name, "sys_clk_freq", "must be positive")
	}

	cmp, err := composer.NewComposer(composer.Config{
		Name:         t.Name,
		Fabric:       composer.DefaultFabric,
		BridgeWindow: cfg.BridgeWindow,
		Logging:      perm,
	})
	if err != nil {
		return nil, curated.Errorf(ComposeError, t.Name, err)
	}

	bld := &builder{
		target: t,
		cfg:    cfg,
		perm:   perm,
		cmp:    cmp,
		soc: &SoC{
			Target: t,
			Config: cfg,
		},
	}

	err = t.compose(bld)
	if err != nil {
		return nil, bld.error(err)
	}
	if bld.soc.CPU == nil {
		return nil, curated.Errorf(NoCPUError, t.Name)
	}

	bld.soc.Layout, err = cmp.Finalize()
	if err != nil {
		return nil, bld.error(err)
	}

	logger.Logf(perm, "board", "%s: built with %d regions", t.Name, bld.soc.Layout.Space().Len())

	return bld.soc, nil
}
