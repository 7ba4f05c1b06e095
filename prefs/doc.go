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

// Package prefs holds the option values used to describe a board target.
// Values are typed (Bool, String, Int, Float and Address) and can be
// associated with a key in a Disk instance, making them loadable from and
// saveable to a file.
//
// The file format is one entry per line, with the key and value separated by
// " :: ". For example:
//
//	cpu_type :: zynq7000
//	sys_clk_freq :: 100000000
//	bridge.window :: 16
//
// Entries in the file that are not recognised by the Disk instance are
// preserved when the file is saved. This allows more than one Disk instance
// to share a file.
//
// Values can also be set from the command line with the command line stack.
// The stack is pushed with a string of key/value pairs:
//
//	prefs.PushCommandLineStack("cpu_type::vexriscv; bridge.window::4")
//
// Command line values override file values when a Disk is loaded.
package prefs
