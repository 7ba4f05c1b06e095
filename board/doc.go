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

// Package board holds the targets that socfabric knows how to build. A
// Target names the FPGA device, lists the signal groups of the board and
// knows how to compose an SoC for the board.
//
// Options for a build are held in an Options instance. The values can be
// loaded from a prefs file and overridden from the command line. The Config
// type is a snapshot of the values and is what Build() uses:
//
//	t, _ := board.Lookup("xyloni")
//	opts, _ := board.NewOptions(t, paths.ResourcePath("xyloni.prefs"))
//	_ = opts.Load()
//	soc, err := board.Build(t, opts.Config(), logger.Allow)
//
// Every target starts from the SoCCore memory map. See DefaultMemoryMap.
package board
