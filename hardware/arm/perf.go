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

package arm

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// PerfCounter indexes the performance counters kept by the executor.
type PerfCounter int

// list of performance counters.
const (
	PerfCycles PerfCounter = iota
	PerfInstructions
	PerfDecodes
	PerfSkippedCondition
	PerfExceptions
	maxPerfCounter
)

func (c PerfCounter) String() string {
	return [...]string{
		"cycles", "instructions", "decodes",
		"skipped conditions", "exceptions",
	}[c]
}

// perfCounters are written by the executor and sampled by the host's
// diagnostics, which run on another goroutine. Hence the atomics.
type perfCounters [maxPerfCounter]atomic.Uint64

// IncPerfCounter increments a performance counter. Counters only ever
// increase.
func (cpu *CPU) IncPerfCounter(c PerfCounter) {
	cpu.perf[c].Add(1)
}

// PerfCounter returns the current value of a performance counter. Safe to
// call from any goroutine.
func (cpu *CPU) PerfCounter(c PerfCounter) uint64 {
	return cpu.perf[c].Load()
}

// PerfSnapshot returns a copy of all performance counters. Safe to call
// from any goroutine.
func (cpu *CPU) PerfSnapshot() [maxPerfCounter]uint64 {
	var snap [maxPerfCounter]uint64
	for i := range cpu.perf {
		snap[i] = cpu.perf[i].Load()
	}
	return snap
}

// PerfString returns a one-line summary of all performance counters.
func (cpu *CPU) PerfString() string {
	s := strings.Builder{}
	for i := PerfCounter(0); i < maxPerfCounter; i++ {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("%s: %d", i, cpu.PerfCounter(i)))
	}
	return s.String()
}
