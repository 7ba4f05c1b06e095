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

// Package cpu describes the processors that can master the fabric of an
// SoC. It is not an emulation of the processors. A CPU is a list of bus
// masters, the signal level interface the CPU presents to the rest of the
// design and, where the processor has one, the address it starts executing
// from.
//
// The Zynq-7000 processing system is described with a PS7Builder. The
// builder constructs a complete parameter set from the start so signals
// that a board does not wire up are simply never created:
//
//	ps7, err := cpu.MakePS7Builder().
//		WithPreset("ebaz4205").
//		WithEthernet().
//		Build()
//
// VexRiscv is created with NewVexRiscv() and one of the named variants.
//
// New() creates a CPU from a type and variant name and is intended for use
// with values taken from the command line or from a preferences file.
package cpu
