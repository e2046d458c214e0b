// This file is part of Gopherbrick.
//
// Gopherbrick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbrick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbrick.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"bytes"
	"io"
)

const (
	penDimRed = "\033[2;31m"
	penNormal = "\033[0m"
)

// Colorizer is an io.Writer for terminal output. The first line of every
// write is left alone and any following lines are dimmed. Surrounding white
// space is removed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The returned count is that of
// the bytes written to the underlying writer, pens included.
func (c Colorizer) Write(p []byte) (int, error) {
	head, tail, multi := bytes.Cut(bytes.TrimSpace(p), []byte("\n"))

	var b bytes.Buffer
	b.Write(head)
	b.WriteByte('\n')
	if multi {
		b.WriteString(penDimRed)
		b.Write(tail)
		b.WriteByte('\n')
		b.WriteString(penNormal)
	}

	return c.out.Write(b.Bytes())
}
