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

// Package terminal prepares output for the socfabric command line. Output to
// a terminal is coloured with ANSI pens; output to anything else (a file or a
// pipe) is left plain.
//
// Whether a file is a terminal is decided by asking for its termios
// attributes through "github.com/pkg/term/termios".
package terminal
