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

// exception identifies one of the architectural exception classes. The
// declaration order is the architectural priority: reset preempts
// everything, the synchronous classes bound to a specific instruction
// outrank the asynchronous interrupt lines, and FIQ outranks IRQ.
type exception int

const (
	excReset exception = iota
	excUndefined
	excSWI
	excPrefetchAbort
	excDataAbort
	excFIQ
	excIRQ
	numExceptions
)

// bit returns the exception's position in the pending exception set.
func (e exception) bit() uint32 {
	return 1 << e
}

func (e exception) String() string {
	return [...]string{
		"reset", "undefined instruction", "swi",
		"prefetch abort", "data abort", "fiq", "irq",
	}[e]
}

// exceptionVector describes the architectural side effects of taking one
// exception class.
type exceptionVector struct {
	exc    exception
	vector uint32

	// added to the boundary PC to form the link register. a further +1 in
	// Thumb state
	lrOffset uint32

	mode Mode
	bank int

	// the CPSR field that, when set, prevents the exception being taken.
	// zero for the classes that cannot be masked
	disable PSR

	// a level triggered exception stays pending after it is taken. the
	// source must lower the line itself
	level bool
}

// the exception classes in priority order. the pipeline takes the first
// pending entry whose disable field is clear.
var exceptionVectors = [numExceptions]exceptionVector{
	{exc: excReset, vector: 0x00, mode: ModeSupervisor, bank: bankSvc},
	{exc: excUndefined, vector: 0x04, mode: ModeUndefined, bank: bankUnd},
	{exc: excSWI, vector: 0x08, mode: ModeSupervisor, bank: bankSvc},
	{exc: excPrefetchAbort, vector: 0x0c, lrOffset: 4, mode: ModeAbort, bank: bankAbt},
	{exc: excDataAbort, vector: 0x10, lrOffset: 4, mode: ModeAbort, bank: bankAbt},
	{exc: excFIQ, vector: 0x1c, lrOffset: 4, mode: ModeFIQ, bank: bankFIQ, disable: FIQDisable, level: true},
	{exc: excIRQ, vector: 0x18, lrOffset: 4, mode: ModeIRQ, bank: bankIRQ, disable: IRQDisable, level: true},
}

// ProcessPendingExceptions services the highest priority pending exception
// whose mask is not asserted, performing the architectural side effects of
// entry: the link register and saved status register land in the target
// mode's bank, the mode is switched and the program counter is loaded with
// the exception vector.
//
// Returns true when an exception was taken. The caller must assume that the
// PC, the CPSR and the processor mode have all changed and refetch
// accordingly.
//
// Called by the executor at every instruction boundary and, defensively,
// after any memory access that may have faulted. An IRQ or FIQ may be raised
// asynchronously by another goroutine at any point; the single load of the
// pending set below is the synchronisation point.
func (cpu *CPU) ProcessPendingExceptions() bool {
	pending := cpu.pending.Load()
	if pending == 0 {
		return false
	}

	for _, vec := range exceptionVectors {
		if pending&vec.exc.bit() == 0 {
			continue
		}
		if vec.disable != 0 && cpu.cpsr.Is(vec.disable) {
			continue
		}

		if vec.exc == excReset {
			// back to the default state: both interrupt lines masked, ARM
			// state, supervisor mode. the interrupted mode's registers are
			// deliberately not saved
			cpu.cpsr = IRQDisable | FIQDisable
			cpu.currCp = noCoprocessor
			cpu.enterMode(vec.bank, vec.mode)
			cpu.SetPC(vec.vector)

			// everything else that was pending dies with the old state. the
			// interrupt lines are level triggered and survive
			cpu.pending.And(excFIQ.bit() | excIRQ.bit())
		} else {
			lr := cpu.executingPC + vec.lrOffset
			if cpu.cpsr.Is(Thumb) {
				lr++
			}

			// the link value and the outgoing CPSR are written to the target
			// mode's bank before the switch. SetMode() then copies them into
			// the live registers. if the target mode is already active the
			// switch does nothing and only the bank is written
			cpu.banks[vec.bank].r14 = lr
			cpu.banks[vec.bank].spsr = cpu.cpsr

			if cpu.cpsr.Is(Thumb) {
				// the coprocessor selection does not survive an instruction
				// set switch
				cpu.currCp = noCoprocessor
			}
			cpu.cpsr.Set(Thumb, false)
			cpu.cpsr.Set(IRQDisable, true)

			if err := cpu.SetMode(vec.mode); err != nil {
				// unreachable with the modes in the vector table but a bank
				// failure here would corrupt the architectural state, so
				// treat it as fatal
				cpu.fatal(err)
				return false
			}
			cpu.SetPC(vec.vector)

			if !vec.level {
				cpu.pending.And(^vec.exc.bit())
			}
		}

		logger.Logf(cpu.trace(3), "ARM", "exception: %s", vec.exc)
		cpu.IncPerfCounter(PerfExceptions)

		return true
	}

	return false
}
