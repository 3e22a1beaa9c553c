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

	"github.com/jetsetilly/gopherarm/curated"
	"github.com/jetsetilly/gopherarm/logger"
)

func (cpu *CPU) String() string {
	s := strings.Builder{}
	for i, r := range cpu.registers {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r))
	}
	s.WriteString(fmt.Sprintf("\nPC:  %08x", cpu.executingPC))
	s.WriteString(fmt.Sprintf("\nCPSR: %08x (%s)\t\tSPSR: %08x", uint32(cpu.cpsr), cpu.cpsr, uint32(cpu.spsr)))

	pending := cpu.pending.Load()
	s.WriteString(fmt.Sprintf("\npending: %07b", pending))
	for e := excReset; e < numExceptions; e++ {
		if pending&e.bit() == e.bit() {
			s.WriteString(fmt.Sprintf(" [%s]", e))
		}
	}

	return s.String()
}

// DumpState logs the register file, the pending exception set and the
// performance counters.
func (cpu *CPU) DumpState() {
	logger.Log(logger.Allow, "ARM", cpu)
	logger.Log(logger.Allow, "ARM", cpu.PerfString())
}

// fatal ends the emulation with the supplied error. The register dump goes
// to the log; the error itself unwinds out of Run().
func (cpu *CPU) fatal(err error) {
	logger.Logf(logger.Allow, "ARM", "fatal: %v", err)
	cpu.DumpState()
	cpu.continueExecution = false
	cpu.executionError = err
}

// Fatalf is the formatted version of fatal. It is used by collaborators
// that detect an unrecoverable condition on the executor goroutine.
func (cpu *CPU) Fatalf(pattern string, values ...interface{}) {
	cpu.fatal(curated.Errorf(pattern, values...))
}
