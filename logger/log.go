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

package logger

import "io"

// the maximum number of entries in the central logger.
const maxCentral = 256

// central is the logger used by the package level functions.
var central *Logger

func init() {
	central = NewLogger(maxCentral)
}

// Log makes a new entry in the central logger.
func Log(perm Permissions, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf makes a new formatted entry in the central logger.
func Logf(perm Permissions, tag string, pattern string, values ...any) {
	central.Logf(perm, tag, pattern, values...)
}

// Clear the central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries of the central logger to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries in the central logger to io.Writer as they are
// made.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
