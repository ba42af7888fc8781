// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
)

const (
	dimPen    = "\033[2m"
	normalPen = "\033[0m"
)

// Colorizer dims log output written through it. Used when writing the tail of
// the log to the terminal after a fatal error, so that the log is visually
// separate from the error message.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	if _, err := io.WriteString(c.out, dimPen); err != nil {
		return 0, err
	}
	n, err := c.out.Write(p)
	if err != nil {
		return n, err
	}
	_, err = io.WriteString(c.out, normalPen)
	return n, err
}
