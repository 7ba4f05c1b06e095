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
	"sort"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
)

// Signal is a named group of pins on the board. The signal is opaque to
// socfabric. Only the name and index are used.
type Signal struct {
	Name  string
	Index int

	// number of pins in the group
	Width int

	// electrical standard of the pins
	Standard string
}

func (s Signal) String() string {
	return fmt.Sprintf("%s:%d (%d %s)", s.Name, s.Index, s.Width, s.Standard)
}

// Target is a board that an SoC can be built for.
type Target struct {
	Name        string
	Description string
	Vendor      string
	Device      string

	Signals  []Signal
	Defaults Config

	// base addresses that differ from the DefaultMemoryMap
	MemoryMap map[string]uint64

	// board specific composition. called after the CPU and the integrated
	// memories have been added
	compose func(bld *builder) error
}

func (t Target) String() string {
	return fmt.Sprintf("%s: %s (%s %s)", t.Name, t.Description, t.Vendor, t.Device)
}

// Signal returns the signal with the name and index. The second return value
// is false if the board has no such signal.
func (t Target) Signal(name string, index int) (Signal, bool) {
	for _, s := range t.Signals {
		if s.Name == name && s.Index == index {
			return s, true
		}
	}
	return Signal{}, false
}

// Count returns the number of signals with the name.
func (t Target) Count(name string) int {
	n := 0
	for _, s := range t.Signals {
		if s.Name == name {
			n++
		}
	}
	return n
}

// Base returns the base address of the named region for the target. The
// second return value is false if the name is not in the memory map.
func (t Target) Base(name string) (uint64, bool) {
	if b, ok := t.MemoryMap[name]; ok {
		return b, true
	}
	b, ok := DefaultMemoryMap[name]
	return b, ok
}

// DefaultMemoryMap is the SoCCore memory map. Targets override individual
// entries with Target.MemoryMap.
var DefaultMemoryMap = map[string]uint64{
	"rom":      0x0000_0000,
	"sram":     0x1000_0000,
	"main_ram": 0x4000_0000,
	"csr":      0xf000_0000,
}

// the size of the CSR window is the same for all targets
const csrSize = 0x10000

var targets = map[string]Target{}

func register(t Target) {
	targets[t.Name] = t
}

// Lookup returns the target with the name. Names are case insensitive.
func Lookup(name string) (Target, error) {
	if t, ok := targets[strings.ToLower(name)]; ok {
		return t, nil
	}
	return Target{}, curated.Errorf(UnknownBoardError, name)
}

// Targets returns every target in alphabetical order of name.
func Targets() []Target {
	l := make([]Target, 0, len(targets))
	for _, t := range targets {
		l = append(l, t)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Name < l[j].Name
	})
	return l
}
