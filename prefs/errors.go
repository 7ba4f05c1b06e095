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

package prefs

// Sentinal patterns for errors returned by the package.
const (
	NoPathError       = "prefs: no path for disk"
	IllegalKeyError   = "prefs: illegal key %q"
	DuplicateKeyError = "prefs: duplicate key %q"
	MalformedError    = "prefs: %s: line %d: malformed entry"
	ConversionError   = "prefs: cannot convert %v to prefs.%s"
	InvalidValueError = "prefs: %s: %v"
)
