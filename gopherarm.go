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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherarm/gui/sdlhost"
	"github.com/jetsetilly/gopherarm/hardware"
	"github.com/jetsetilly/gopherarm/logger"
	"github.com/jetsetilly/gopherarm/performance"
	"github.com/jetsetilly/gopherarm/statsview"
)

func main() {
	cpuType := flag.String("cpu", "arm7tdmi", "cpu type (armv4, armv5, armv5e, armv6, arm7, arm7tdmi, arm9, arm9tdmi, arm9e, arm926, arm926ejs)")
	cycles := flag.Int64("cycles", -1, "stop after this many cycles (negative means run until quit)")
	image := flag.String("image", "", "program image, loaded at the exception vectors")
	trace := flag.Int("trace", 0, "cpu trace level (0 is silent)")
	log := flag.Bool("log", false, "echo log entries to stderr as they are made")
	useSDL := flag.Bool("sdl", false, "run under the SDL host event loop")
	perfTime := flag.String("perf", "", "run a performance check for the given duration (eg. 10s)")

	var stats *bool
	if statsview.Available() {
		stats = flag.Bool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	flag.Parse()

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	sys := hardware.NewSystem(*cpuType)
	sys.CPU.SetTraceLevel(*trace)

	if *image != "" {
		d, err := os.ReadFile(*image)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := sys.AttachImage(d); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		sys.Signaller().Reset()
	}

	// ctrl-c posts a quit indication to the executor
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		sys.CPU.PostQuit()
	}()

	var err error
	switch {
	case *perfTime != "":
		err = performance.Check(os.Stdout, sys, *perfTime)
	case *useSDL:
		err = sdlhost.Run(sys, *cycles)
	default:
		err = sys.Run(*cycles)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		// the log has the register dump for fatal errors
		logger.Tail(os.Stderr, 20)
		os.Exit(1)
	}

	sys.CPU.DumpState()
	if !*log {
		logger.Tail(os.Stdout, 10)
	}
}
