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

// Package paths contains functions to prepare paths to socfabric resources
// and to the directories that generated files are written to.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the stored options for a board:
//
//	p := paths.ResourcePath("boards", "ebaz4205.prefs")
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".socfabric", is present in the program's current directory then that is
// the base path that will used. If it is not present, then the user's config
// directory is used.
//
// The GeneratedPath() function returns the directory for generated software
// support files for a board, in the same layout that the gateware build
// uses:
//
//	build/<board>/software/include/generated
//
// The directory is created if it does not exist.
package paths
