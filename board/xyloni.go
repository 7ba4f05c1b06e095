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
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// the SPI flash is memory mapped and the BIOS is executed directly from it
const (
	xyloniFlashBase = 0x8000_0000
	xyloniFlashSize = 16 * 1024 * 1024
	xyloniBIOSSize  = 0x8000
)

func init() {
	register(Target{
		Name:        "xyloni",
		Description: "Efinix Xyloni development board",
		Vendor:      "efinix",
		Device:      "T8F81C2",
		Signals: []Signal{
			{Name: "clk33", Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "user_led", Index: 0, Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "user_led", Index: 1, Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "user_led", Index: 2, Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "user_led", Index: 3, Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "user_btn", Index: 0, Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "user_btn", Index: 1, Width: 1, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "serial", Width: 2, Standard: "3.3_V_LVTTL_/_LVCMOS"},
			{Name: "spiflash", Width: 4, Standard: "3.3_V_LVTTL_/_LVCMOS"},
		},
		Defaults: Config{
			SysClkFreq:         33.333e6,
			CPUType:            cpu.TypeVexRiscv,
			CPUVariant:         "minimal",
			BIOSFlashOffset:    0x40000,
			LEDChaser:          true,
			IntegratedSRAMSize: 0x2000,
		},
		MemoryMap: map[string]uint64{
			"spiflash": xyloniFlashBase,
		},
		compose: composeXyloni,
	})
}

// the CPU boots from the BIOS in SPI flash so there is no integrated ROM. the
// integrated SRAM is read-only
func composeXyloni(bld *builder) error {
	if bld.cfg.CPUType != cpu.TypeVexRiscv {
		return bld.option("cpu_type", "board only supports "+cpu.TypeVexRiscv)
	}
	if bld.cfg.IntegratedROMSize > 0 {
		return bld.option("integrated_rom_size", "board boots from flash")
	}
	if bld.cfg.BIOSFlashOffset+xyloniBIOSSize > xyloniFlashSize {
		return bld.option("bios_flash_offset", "bios does not fit in flash")
	}

	flash := bld.base("spiflash")
	bios := flash + bld.cfg.BIOSFlashOffset

	vex, err := cpu.NewVexRiscv(bld.cfg.CPUVariant, bios)
	if err != nil {
		return err
	}

	err = bld.addCPU(vex, bus.Window{})
	if err != nil {
		return err
	}

	err = bld.addIntegrated(true)
	if err != nil {
		return err
	}

	err = bld.addCSR()
	if err != nil {
		return err
	}

	_, err = bld.addMemory("spiflash", flash, xyloniFlashSize, addrspace.ROM, true, flashTiming)
	if err != nil {
		return err
	}

	return bld.cmp.AddRegion(addrspace.NewRegion("rom", bios, xyloniBIOSSize, addrspace.LinkerOnly))
}
