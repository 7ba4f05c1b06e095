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

package addrspace

import "github.com/jetsetilly/socfabric/curated"

// Sentinal patterns for errors returned by the package.
const (
	OverlapError       = "addrspace: overlap: %s [%#x, %#x) intersects %s [%#x, %#x)"
	DuplicateNameError = "addrspace: duplicate region name: %s"
	NotFoundError      = "addrspace: region not found: %s"
	InvalidRegionError = "addrspace: invalid region: %s: %s"
	UnalignedError     = "addrspace: region %s: origin %#x not aligned on size %#x"
	UnknownKindError   = "addrspace: unknown region kind: %s"
)

func curatedInvalid(r Region, reason string) error {
	name := r.Name
	if name == "" {
		name = "<unnamed>"
	}
	return curated.Errorf(InvalidRegionError, name, reason)
}
