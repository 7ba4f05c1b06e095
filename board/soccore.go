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
	"github.com/jetsetilly/socfabric/cpu"
	"github.com/jetsetilly/socfabric/soc/bus"
)

func init() {
	register(Target{
		Name:        "soccore",
		Description: "generic SoC with integrated memories",
		Vendor:      "generic",
		Device:      "none",
		Signals: []Signal{
			{Name: "clk", Width: 1},
			{Name: "user_led", Index: 0, Width: 1},
			{Name: "user_led", Index: 1, Width: 1},
			{Name: "serial", Width: 2},
		},
		Defaults: Config{
			SysClkFreq:            100e6,
			CPUType:               cpu.TypeVexRiscv,
			CPUVariant:            "standard",
			IntegratedROMSize:     0x20000,
			IntegratedSRAMSize:    0x2000,
			IntegratedMainRAMSize: 0x10000,
		},
		compose: composeSoCCore,
	})
}

// the SoCCore memory map with every integrated memory. the CPU starts at the
// bottom of the integrated ROM
func composeSoCCore(bld *builder) error {
	c, err := cpu.New(bld.cfg.CPUType, bld.cfg.CPUVariant, bld.base("rom"))
	if err != nil {
		return err
	}

	err = bld.addCPU(c, bus.Window{})
	if err != nil {
		return err
	}

	err = bld.addIntegrated(false)
	if err != nil {
		return err
	}

	return bld.addCSR()
}
