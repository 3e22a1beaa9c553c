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
	"sync/atomic"

	"github.com/jetsetilly/gopherarm/logger"
)

// Signaller is the asynchronous signal surface of the CPU. It is the only
// way a goroutine other than the executor may communicate with the core and
// it exposes nothing but the pending exception set.
//
// All methods are safe for concurrent use, never block and never take a
// lock shared with the executor. An exception raised here is observed by
// the executor at its next instruction boundary. (The logging in the
// signal functions only happens above the default trace level.)
type Signaller struct {
	pending *atomic.Uint32

	// copy of the CPU trace level taken when the Signaller was created
	traceLevel int
}

// Signaller returns a handle on the asynchronous signal surface. The handle
// may be freely copied and shared between goroutines.
func (cpu *CPU) Signaller() Signaller {
	return Signaller{
		pending:    &cpu.pending,
		traceLevel: cpu.traceLevel,
	}
}

func (sig Signaller) trace(level int) logger.Permissions {
	return tracePermission(sig.traceLevel >= level)
}

// Reset schedules a reset exception. The executor performs the actual reset
// at its next instruction boundary.
func (sig Signaller) Reset() {
	logger.Log(sig.trace(4), "ARM", "reset scheduled")
	sig.pending.Or(excReset.bit())
}

// RaiseIRQ asserts the IRQ line. The line stays asserted until LowerIRQ()
// is called.
func (sig Signaller) RaiseIRQ() {
	logger.Log(sig.trace(5), "ARM", "raise irq")
	sig.pending.Or(excIRQ.bit())
}

// LowerIRQ deasserts the IRQ line.
func (sig Signaller) LowerIRQ() {
	logger.Log(sig.trace(5), "ARM", "lower irq")
	sig.pending.And(^excIRQ.bit())
}

// RaiseFIQ asserts the FIQ line. The line stays asserted until LowerFIQ()
// is called.
func (sig Signaller) RaiseFIQ() {
	logger.Log(sig.trace(5), "ARM", "raise fiq")
	sig.pending.Or(excFIQ.bit())
}

// LowerFIQ deasserts the FIQ line.
func (sig Signaller) LowerFIQ() {
	logger.Log(sig.trace(5), "ARM", "lower fiq")
	sig.pending.And(^excFIQ.bit())
}

// SignalDataAbort raises a data abort for the supplied address.
func (sig Signaller) SignalDataAbort(addr uint32) {
	logger.Logf(sig.trace(4), "ARM", "data abort at %08x", addr)
	sig.pending.Or(excDataAbort.bit())
}

// SignalPrefetchAbort raises a prefetch abort for the supplied address.
func (sig Signaller) SignalPrefetchAbort(addr uint32) {
	logger.Logf(sig.trace(4), "ARM", "prefetch abort at %08x", addr)
	sig.pending.Or(excPrefetchAbort.bit())
}

// RaiseUndefined schedules an undefined instruction exception. Used by the
// dispatcher when it meets an instruction it has no implementation for.
func (sig Signaller) RaiseUndefined() {
	logger.Log(sig.trace(4), "ARM", "undefined instruction")
	sig.pending.Or(excUndefined.bit())
}

// RaiseSWI schedules a software interrupt exception.
func (sig Signaller) RaiseSWI() {
	logger.Log(sig.trace(5), "ARM", "swi")
	sig.pending.Or(excSWI.bit())
}
