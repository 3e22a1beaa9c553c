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

// Package sdlhost is the SDL side of the emulation: the event loop that
// keeps the process alive while the executor goroutine runs, and the once
// a second sampling of the performance counters. There is no window; the
// event queue exists so that peripheral implementations built on SDL have
// somewhere to live and so that the process responds to a quit request
// from any of them.
//
// Run() must be called from the main goroutine. This is an SDL
// requirement.
package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherarm/hardware"
	"github.com/jetsetilly/gopherarm/hardware/arm"
	"github.com/jetsetilly/gopherarm/logger"
)

// how often the performance counters are sampled and logged.
const perfPeriod = time.Second

// the timeout given to the SDL event wait, in milliseconds.
const eventTimeout = 50

// Run the system under the SDL host surface. The executor runs on its own
// goroutine; the calling goroutine services the SDL event queue until the
// executor ends or a quit event arrives.
func Run(sys *hardware.System, cycleCount int64) error {
	err := sdl.Init(sdl.INIT_EVENTS | sdl.INIT_TIMER)
	if err != nil {
		return err
	}
	defer sdl.Quit()

	done := sys.Start(cycleCount)

	// when the executor ends of its own accord a quit event unblocks the
	// event loop below. the result channel carries the executor's error to
	// whichever path returns first
	result := make(chan error, 1)
	go func() {
		result <- <-done
		_, _ = sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT})
	}()

	last := sys.CPU.PerfSnapshot()
	lastSample := time.Now()

	for {
		ev := sdl.WaitEventTimeout(eventTimeout)

		if time.Since(lastSample) >= perfPeriod {
			curr := sys.CPU.PerfSnapshot()
			logger.Logf(logger.Allow, "host", "%d ins/sec, %d decodes/sec, %d exceptions/sec",
				curr[arm.PerfInstructions]-last[arm.PerfInstructions],
				curr[arm.PerfDecodes]-last[arm.PerfDecodes],
				curr[arm.PerfExceptions]-last[arm.PerfExceptions])
			last = curr
			lastSample = time.Now()
		}

		switch ev.(type) {
		case *sdl.QuitEvent:
			sys.CPU.PostQuit()
			return <-result
		}
	}
}
