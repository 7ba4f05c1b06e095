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

// Package linker writes the files that the software side of an SoC needs
// in order to be built against a Layout.
//
// The regions.ld file contains a MEMORY block for every region marked for
// export to the linker. The mem.h file has a pair of base/size defines for
// the same regions. When the layout has a CSR window a csr.h file is also
// written, with the address of every register.
//
// The Write*() functions output to any io.Writer. Export() is a convenience
// that writes all the files to a directory.
package linker
