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

//go:build !statsview

// Package statsview provides an optional, web based view of the Go
// runtime. Without the statsview build tag the package does nothing.
package statsview

import "io"

// Address of the server created by Launch(). Empty in builds without the
// statsview tag.
const Address = ""

// Available returns true when the project has been built with the
// statsview tag.
func Available() bool {
	return false
}

// Launch the statsview server. A no-op in builds without the statsview
// tag.
func Launch(output io.Writer) {
}
