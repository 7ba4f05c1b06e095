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

package terminal

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Pen returns the CSI sequence for the named color. Bright pens use the
// high-intensity variant of the color.
func Pen(color string, bright bool) (string, error) {
	var c int
	switch strings.ToUpper(color) {
	case "BLACK":
		c = colBlack
	case "RED":
		c = colRed
	case "GREEN":
		c = colGreen
	case "YELLOW":
		c = colYellow
	case "BLUE":
		c = colBlue
	case "MAGENTA":
		c = colMagenta
	case "CYAN":
		c = colCyan
	case "WHITE":
		c = colWhite
	case "NORMAL", "":
		c = colDefault
	default:
		return "", fmt.Errorf("unknown ANSI pen (%s)", color)
	}

	t := targetPen
	if bright {
		t = targetBrightPen
	}
	return fmt.Sprintf("\033[%d%dm", t, c), nil
}
