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

//go:build statsview

// Package statsview provides an optional, web based view of the Go
// runtime. It is a thin wrapper around the go-echarts statsview package,
// compiled in only when the statsview build tag is given.
package statsview

import (
	"fmt"
	"io"

	sv "github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the server created by Launch().
const Address = "localhost:12600"

// Available returns true when the project has been built with the
// statsview tag.
func Available() bool {
	return true
}

// Launch the statsview server. The address of the view is printed to the
// supplied io.Writer.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := sv.New()
	go func() {
		mgr.Start()
	}()
	fmt.Fprintf(output, "stats server available at http://%s/debug/statsview\n", Address)
}
