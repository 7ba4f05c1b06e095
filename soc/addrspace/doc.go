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

// Package addrspace owns the memory map of an SoC: a collection of named
// regions, each with a base address, a size and a kind.
//
// Placement is explicit. Callers choose the base address of every region, as
// they would when writing the memory map of a real board, and the address
// space only checks for conflicts. Regions are kept in base address order.
//
// Two regions may not overlap unless one of them is a LinkerOnly region. A
// LinkerOnly region is a logical range used when linking software (a BIOS
// image placed inside a SPI flash for example) and consumes no physical
// decode.
//
// The Decode() function answers which region an address falls in. Physical
// regions are always preferred. A LinkerOnly region is only returned if no
// physical region covers the address, so that the caller can distinguish
// between an address that is entirely unmapped and one that has no backing.
package addrspace
