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

// the GP0 port of the processing system covers the 1GiB above the DDR
const (
	ps7GP0Base = 0x4000_0000
	ps7GP0Size = 0x4000_0000
)

// size of DDR on the board. the bottom of DDR is used by the processing
// system and is not available
const (
	ebazDDRSize = 512 * 1024 * 1024
	ebazDDRBase = 0x0010_0000
)

// size of the linker view of the boot image
const ebazROMSize = 0x200_0000

func init() {
	register(Target{
		Name:        "ebaz4205",
		Description: "EBAZ4205 mining control board",
		Vendor:      "xilinx",
		Device:      "xc7z010clg400-1",
		Signals: []Signal{
			{Name: "clk25", Width: 1, Standard: "LVCMOS33"},
			{Name: "user_led", Index: 0, Width: 1, Standard: "LVCMOS33"},
			{Name: "user_led", Index: 1, Width: 1, Standard: "LVCMOS33"},
			{Name: "eth_clocks", Width: 2, Standard: "LVCMOS33"},
			{Name: "eth", Width: 12, Standard: "LVCMOS33"},
		},
		Defaults: Config{
			SysClkFreq: 100e6,
			CPUType:    cpu.TypeZynq7000,
			CPUVariant: "ebaz4205",
			LEDChaser:  true,
		},
		MemoryMap: map[string]uint64{
			"csr":  0x43c0_0000,
			"sram": ebazDDRBase,
		},
		compose: composeEBAZ4205,
	})
}

// the processing system masters the fabric through GP0 and memory is the DDR
// that belongs to the processing system. there are no integrated memories on
// the fabric
func composeEBAZ4205(bld *builder) error {
	if bld.cfg.CPUType != cpu.TypeZynq7000 {
		return bld.option("cpu_type", "board only supports "+cpu.TypeZynq7000)
	}

	ps, err := cpu.MakePS7Builder().
		WithPreset(bld.cfg.CPUVariant).
		WithFabricClock(0, bld.cfg.SysClkFreq).
		WithEthernet().
		Build()
	if err != nil {
		return err
	}

	err = bld.addCPU(ps, bus.Window{
		Base:  ps7GP0Base,
		Size:  ps7GP0Size,
		Remap: ps7GP0Base,
	})
	if err != nil {
		return err
	}

	err = bld.addCSR()
	if err != nil {
		return err
	}

	sram := bld.base("sram")
	err = bld.cmp.AddRegion(addrspace.NewRegion("sram", sram, ebazDDRSize-sram, addrspace.RAM))
	if err != nil {
		return err
	}

	return bld.cmp.AddRegion(addrspace.NewRegion("rom", bld.base("rom"), ebazROMSize, addrspace.LinkerOnly))
}
