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

package peripheral

// Sentinal patterns for errors returned by the package.
const (
	ReadOnlyError   = "peripheral: %s: write to read-only location: %#x"
	OutOfRangeError = "peripheral: %s: access out of range: %#x"
	MisalignedError = "peripheral: %s: misaligned access: %#x (%d bits)"
	WidthError      = "peripheral: %s: access of %d bits exceeds data width of %d bits"
	DataLengthError = "peripheral: %s: write data is %d bytes for a %d bit access"
	CSRPageError    = "peripheral: %s: csr page: %s"
)
