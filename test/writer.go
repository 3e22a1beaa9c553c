// This file is part of GopherARM.
//
// GopherARM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherARM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherARM.  If not, see <https://www.gnu.org/licenses/>.

package test

import "strings"

// Writer is an implementation of the io.Writer interface. It is useful for
// testing functions that write to an io.Writer, the contents of which can
// then be compared to an expected string.
type Writer struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.b.Write(p)
}

// Compare the contents of the Writer with the supplied string.
func (tw *Writer) Compare(s string) bool {
	return tw.b.String() == s
}

// String returns the contents of the Writer.
func (tw *Writer) String() string {
	return tw.b.String()
}

// Clear empties the Writer.
func (tw *Writer) Clear() {
	tw.b.Reset()
}
