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
	"github.com/jetsetilly/socfabric/prefs"
)

// Config is the set of values used to build an SoC for a target.
type Config struct {
	// frequency of the system clock in Hz
	SysClkFreq float64

	CPUType    string
	CPUVariant string

	// offset of the BIOS in the SPI flash. only used by boards that boot
	// from flash
	BIOSFlashOffset uint64

	// upper limit on the outstanding table of a bridge. zero means no limit
	// other than that imposed by the master
	BridgeWindow int

	LEDChaser bool

	// sizes of the integrated memories. zero means the memory is not
	// included
	IntegratedROMSize     uint64
	IntegratedSRAMSize    uint64
	IntegratedMainRAMSize uint64
}

func (cfg Config) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s) at %gMHz", cfg.CPUType, cfg.CPUVariant, cfg.SysClkFreq/1e6))
	if cfg.BridgeWindow > 0 {
		s.WriteString(fmt.Sprintf(", bridge window %d", cfg.BridgeWindow))
	}
	if cfg.LEDChaser {
		s.WriteString(", led chaser")
	}
	return s.String()
}

// Options are the preference values for a target. Changes to the values do
// not affect an SoC that has already been built.
type Options struct {
	dsk *prefs.Disk

	SysClkFreq            prefs.Float
	CPUType               prefs.String
	CPUVariant            prefs.String
	BIOSFlashOffset       prefs.Address
	BridgeWindow          prefs.Int
	LEDChaser             prefs.Bool
	IntegratedROMSize     prefs.Address
	IntegratedSRAMSize    prefs.Address
	IntegratedMainRAMSize prefs.Address
}

// NewOptions is the preferred method of initialisation for the Options type.
// The values are set to the defaults of the target. The path is the prefs
// file that Load() and Save() use.
func NewOptions(t Target, path string) (*Options, error) {
	o := &Options{}

	var err error
	o.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	o.CPUType.SetHookPre(func(v prefs.Value) error {
		s := strings.ToLower(v.(string))
		for _, c := range cpu.Types() {
			if s == c {
				return nil
			}
		}
		return curated.Errorf(InvalidOptionError, t.Name, "cpu_type", curated.Errorf(cpu.UnknownCPUError, v))
	})

	o.BridgeWindow.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidOptionError, t.Name, "bridge.window", "must not be negative")
		}
		return nil
	})

	err = o.SetDefaults(t)
	if err != nil {
		return nil, err
	}

	err = o.dsk.Add("sys_clk_freq", &o.SysClkFreq)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("cpu_type", &o.CPUType)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("cpu_variant", &o.CPUVariant)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("bios_flash_offset", &o.BIOSFlashOffset)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("bridge.window", &o.BridgeWindow)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("led_chaser", &o.LEDChaser)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("integrated_rom_size", &o.IntegratedROMSize)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("integrated_sram_size", &o.IntegratedSRAMSize)
	if err != nil {
		return nil, err
	}
	err = o.dsk.Add("integrated_main_ram_size", &o.IntegratedMainRAMSize)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// SetDefaults sets every value to the default for the target.
func (o *Options) SetDefaults(t Target) error {
	d := t.Defaults
	for _, err := range []error{
		o.SysClkFreq.Set(d.SysClkFreq),
		o.CPUType.Set(d.CPUType),
		o.CPUVariant.Set(d.CPUVariant),
		o.BIOSFlashOffset.Set(d.BIOSFlashOffset),
		o.BridgeWindow.Set(d.BridgeWindow),
		o.LEDChaser.Set(d.LEDChaser),
		o.IntegratedROMSize.Set(d.IntegratedROMSize),
		o.IntegratedSRAMSize.Set(d.IntegratedSRAMSize),
		o.IntegratedMainRAMSize.Set(d.IntegratedMainRAMSize),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Load values from the prefs file. A missing file is not an error. Values on
// the command line stack take priority over the file.
func (o *Options) Load() error {
	return o.dsk.Load(false)
}

// Save values to the prefs file.
func (o *Options) Save() error {
	return o.dsk.Save()
}

func (o *Options) String() string {
	return o.dsk.String()
}

// Config returns a snapshot of the current values.
func (o *Options) Config() Config {
	return Config{
		SysClkFreq:            o.SysClkFreq.Get().(float64),
		CPUType:               strings.ToLower(o.CPUType.String()),
		CPUVariant:            o.CPUVariant.String(),
		BIOSFlashOffset:       o.BIOSFlashOffset.Get().(uint64),
		BridgeWindow:          o.BridgeWindow.Get().(int),
		LEDChaser:             o.LEDChaser.Get().(bool),
		IntegratedROMSize:     o.IntegratedROMSize.Get().(uint64),
		IntegratedSRAMSize:    o.IntegratedSRAMSize.Get().(uint64),
		IntegratedMainRAMSize: o.IntegratedMainRAMSize.Get().(uint64),
	}
}
