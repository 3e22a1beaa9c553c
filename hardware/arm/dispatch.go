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
	"github.com/jetsetilly/gopherarm/logger"
)

// The dispatch loop drives the core between instruction boundaries: pending
// exceptions are serviced, the next instruction is fetched through the bus
// and gated on its condition field, and then handed to the instruction
// implementations.
//
// The instruction coverage here is the minimum needed to exercise the core
// from the outside: branches, SWI and the undefined instruction trap. A
// decoder for the remainder of the instruction space plugs in at the
// default arm of the switch in Step().

// SetStopCycle arranges for the dispatch loop to stop once the cycle
// counter reaches the threshold. A cycle count of zero or below means run
// until an external quit indication.
func (cpu *CPU) SetStopCycle(cycleCount int64) {
	if cycleCount > 0 {
		cpu.stopAtCycle = cycleCount
	} else {
		cpu.stopAtCycle = -1
	}
}

// PostQuit asks the dispatch loop to end at the next instruction boundary.
// This is the quit indication used by the host surface and may be called
// from any goroutine.
func (cpu *CPU) PostQuit() {
	cpu.quit.Store(true)
}

// Run the dispatch loop until the stop cycle is reached, a quit indication
// is posted or a fatal condition ends the emulation. The returned error is
// nil for the first two.
//
// Run must only ever be called from one goroutine at a time.
func (cpu *CPU) Run() error {
	for cpu.continueExecution {
		if cpu.quit.Load() {
			break
		}
		if cpu.stopAtCycle >= 0 && cpu.PerfCounter(PerfCycles) >= uint64(cpu.stopAtCycle) {
			logger.Logf(cpu.trace(2), "ARM", "stopped at cycle %d", cpu.stopAtCycle)
			break
		}
		cpu.Step()
	}
	return cpu.executionError
}

// Step the core over a single instruction boundary. Exception processing
// happens first; if an exception was taken the boundary is complete and the
// new context is executed on the next call.
func (cpu *CPU) Step() {
	cpu.IncPerfCounter(PerfCycles)

	if cpu.ProcessPendingExceptions() {
		// PC, CPSR and the processor mode may all have changed. refetch
		return
	}

	pc := cpu.executingPC

	opcode, err := cpu.fetch(pc)
	if err != nil {
		logger.Logf(cpu.trace(4), "ARM", "fetch: %v", err)
		cpu.Signaller().SignalPrefetchAbort(pc)
		return
	}

	cpu.IncPerfCounter(PerfInstructions)
	cpu.IncPerfCounter(PerfDecodes)

	// the program counter reads as two instructions ahead of the one being
	// executed
	cpu.registers[rPC] = pc + 8
	cpu.executingPC = pc + 4

	if cpu.cpsr.Is(Thumb) {
		// there is no Thumb decoder. the instruction traps
		cpu.executingPC = pc + 2
		cpu.Signaller().RaiseUndefined()
		return
	}

	cc := uint8(opcode >> 28)
	if cc != condSpecial && !cpu.Condition(cc) {
		cpu.IncPerfCounter(PerfSkippedCondition)
		cpu.registers[rPC] = cpu.executingPC
		return
	}

	switch {
	case opcode&0x0f000000 == 0x0f000000:
		// software interrupt. taken at the next boundary
		cpu.Signaller().RaiseSWI()

	case opcode&0x0e000000 == 0x0a000000:
		// branch, with optional link. the 24 bit offset is sign extended
		// and applied to the pipelined program counter
		if opcode&0x01000000 == 0x01000000 {
			cpu.registers[rLR] = pc + 4
		}
		offset := int32(opcode<<8) >> 6
		cpu.SetPC(uint32(int32(cpu.registers[rPC]) + offset))

	default:
		// the decoder's business. without one the instruction is undefined
		cpu.Signaller().RaiseUndefined()
	}

	cpu.registers[rPC] = cpu.executingPC
}

// fetch the instruction at the supplied address. Thumb state fetches a
// halfword.
func (cpu *CPU) fetch(addr uint32) (uint32, error) {
	if cpu.cpsr.Is(Thumb) {
		opcode, err := cpu.mem.Read16(addr)
		return uint32(opcode), err
	}
	return cpu.mem.Read32(addr)
}
