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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, arguments are given to NewArgs() and Parse() is called
// with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LAYOUT", "LINKER", "SIMULATE")
//	_, _ = md.Parse()
//
// After Parse() the selected mode is available with Mode(). Flags for the
// selected mode are added after a call to NewMode() and the next call to
// Parse() continues from where the previous one stopped:
//
//	md.NewMode()
//	window := md.AddInt("window", 0, "override the bridge window")
//	base := md.AddAddress("csr", 0x43c0_0000, "base of the CSR region")
//	_, _ = md.Parse()
//
// Sub-mode comparisons are case insensitive. The first sub-mode is the
// default and is selected if the next argument is not a recognised sub-mode.
//
// Address flags accept any integer literal understood by the Go language,
// including hexadecimal values with underscore separators. This is the way
// memory maps are usually written in board descriptions.
package modalflag
