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

package test

import (
	"bytes"
	"strings"
)

// CompareWriter captures everything written to it so that the output of a
// function can be compared against an expected string.
type CompareWriter struct {
	bytes.Buffer
}

// Clear empties the captured output.
func (w *CompareWriter) Clear() {
	w.Reset()
}

// Compare returns true if the captured output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.Buffer.String() == s
}

// Contains returns true if each of the strings appears somewhere in the
// captured output.
func (w *CompareWriter) Contains(s ...string) bool {
	out := w.Buffer.String()
	for _, c := range s {
		if !strings.Contains(out, c) {
			return false
		}
	}
	return true
}

// Lines returns the captured output split into lines. A trailing newline
// does not produce an empty final line.
func (w *CompareWriter) Lines() []string {
	out := strings.TrimSuffix(w.Buffer.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
