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

// Package performance contains helper functions relating to performance.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherarm/curated"
	"github.com/jetsetilly/gopherarm/hardware"
	"github.com/jetsetilly/gopherarm/hardware/arm"
)

// Check is a very rough and ready calculation of the emulator's
// performance. The system runs for the specified duration and the
// throughput observed by the performance counters is written to the
// supplied io.Writer.
func Check(output io.Writer, sys *hardware.System, runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	before := sys.CPU.PerfSnapshot()

	timer := time.AfterFunc(duration, sys.CPU.PostQuit)
	defer timer.Stop()

	start := time.Now()
	err = sys.Run(-1)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	after := sys.CPU.PerfSnapshot()

	instructions := after[arm.PerfInstructions] - before[arm.PerfInstructions]
	exceptions := after[arm.PerfExceptions] - before[arm.PerfExceptions]

	fmt.Fprintf(output, "%.0f instructions/sec (%d instructions, %d exceptions in %.2fs)\n",
		float64(instructions)/elapsed, instructions, exceptions, elapsed)

	return nil
}
