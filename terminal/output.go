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
	"io"
	"os"
)

// Output wraps an io.Writer and colours text written with the Pen() method
// if colouring is enabled.
type Output struct {
	w     io.Writer
	color bool
}

// NewOutput is the preferred method of initialisation for the Output type.
// Colouring is enabled if the writer is a file connected to a terminal.
func NewOutput(w io.Writer) *Output {
	o := &Output{w: w}
	if f, ok := w.(*os.File); ok {
		o.color = IsTerminal(f)
	}
	return o
}

// SetColor forces colouring on or off.
func (o *Output) SetColor(color bool) {
	o.color = color
}

// Write implements the io.Writer interface. Text is written without colour.
func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Printf writes formatted text without colour.
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}

// Penf writes formatted text in the named colour. An unknown colour is
// treated as the normal pen.
func (o *Output) Penf(color string, format string, args ...any) {
	if !o.color {
		fmt.Fprintf(o.w, format, args...)
		return
	}
	pen, err := Pen(color, true)
	if err != nil {
		pen = NormalPen
	}
	fmt.Fprintf(o.w, "%s%s%s", pen, fmt.Sprintf(format, args...), NormalPen)
}
