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

package arm_test

import (
	"testing"

	"github.com/jetsetilly/gopherarm/hardware/arm"
	"github.com/jetsetilly/gopherarm/test"
)

// reset puts the core into supervisor mode with both interrupt lines
// masked and the program counter at the reset vector. other registers are
// left alone
func TestReset(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))
	cpu.SetRegister(0, 0xaa)
	cpu.SetPC(0x1000)

	cpu.Signaller().Reset()
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeSupervisor)
	test.ExpectSuccess(t, cpu.CPSR().Is(arm.IRQDisable))
	test.ExpectSuccess(t, cpu.CPSR().Is(arm.FIQDisable))
	test.ExpectEquality(t, cpu.PC(), uint32(0x00))
	test.ExpectEquality(t, cpu.Register(0), uint32(0xaa))

	// nothing left pending
	test.ExpectFailure(t, cpu.ProcessPendingExceptions())
}

// a software interrupt from user mode: the supervisor link register holds
// the return address, the supervisor SPSR holds the old CPSR
func TestSWI(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))
	cpu.SetPC(0x1004)

	oldCPSR := cpu.CPSR()

	cpu.Signaller().RaiseSWI()
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeSupervisor)
	test.ExpectEquality(t, cpu.Register(14), uint32(0x1004))
	test.ExpectEquality(t, cpu.SPSR(), oldCPSR)
	test.ExpectEquality(t, cpu.PC(), uint32(0x08))
	test.ExpectSuccess(t, cpu.CPSR().Is(arm.IRQDisable))
	test.ExpectFailure(t, cpu.CPSR().Is(arm.Thumb))

	// edge triggered: processing again takes nothing
	test.ExpectFailure(t, cpu.ProcessPendingExceptions())
}

// a software interrupt in Thumb state adds one to the link register and
// moves the core to ARM state
func TestSWIFromThumb(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))
	cpu.SetThumb(true)
	cpu.SetPC(0x1004)

	cpu.Signaller().RaiseSWI()
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	test.ExpectEquality(t, cpu.Register(14), uint32(0x1005))
	test.ExpectFailure(t, cpu.CPSR().Is(arm.Thumb))
	test.ExpectSuccess(t, cpu.SPSR().Is(arm.Thumb))
}

// an asserted IRQ line is ignored while the IRQ mask is set and taken as
// soon as it is cleared
func TestIRQMasked(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)

	p := arm.PSR(0x10)
	p.Set(arm.IRQDisable, true)
	test.ExpectSuccess(t, cpu.SetCPSR(p))
	cpu.SetPC(0x2000)

	cpu.Signaller().RaiseIRQ()
	test.ExpectFailure(t, cpu.ProcessPendingExceptions())
	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeUser)

	p.Set(arm.IRQDisable, false)
	test.ExpectSuccess(t, cpu.SetCPSR(p))
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeIRQ)
	test.ExpectEquality(t, cpu.PC(), uint32(0x18))
	test.ExpectEquality(t, cpu.Register(14), uint32(0x2004))
}

// an interrupt raised and lowered before the executor looks at the
// pending set is never seen
func TestRaiseLower(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))

	sig := cpu.Signaller()

	sig.RaiseIRQ()
	sig.LowerIRQ()
	test.ExpectFailure(t, cpu.ProcessPendingExceptions())

	sig.RaiseFIQ()
	sig.LowerFIQ()
	test.ExpectFailure(t, cpu.ProcessPendingExceptions())
}

// with an interrupt and a data abort both pending, the data abort is
// serviced first. the interrupt line remains asserted
func TestPriority(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))
	cpu.SetPC(0x3000)

	sig := cpu.Signaller()
	sig.RaiseIRQ()
	sig.SignalDataAbort(0x5000)

	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())
	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeAbort)
	test.ExpectEquality(t, cpu.PC(), uint32(0x10))
	test.ExpectEquality(t, cpu.Register(14), uint32(0x3004))

	// the interrupt is still pending. it is taken once the mask set on
	// abort entry is cleared again
	p := cpu.CPSR()
	p.Set(arm.IRQDisable, false)
	test.ExpectSuccess(t, cpu.SetCPSR(p))
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())
	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeIRQ)
}

// fiq outranks irq
func TestFIQBeforeIRQ(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))

	sig := cpu.Signaller()
	sig.RaiseIRQ()
	sig.RaiseFIQ()

	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())
	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeFIQ)
	test.ExpectEquality(t, cpu.PC(), uint32(0x1c))

	// fiq entry sets the irq mask but leaves the fiq mask alone
	test.ExpectSuccess(t, cpu.CPSR().Is(arm.IRQDisable))
	test.ExpectFailure(t, cpu.CPSR().Is(arm.FIQDisable))
}

// every exception class sets the irq mask and clears the thumb bit on
// entry, and leaves its link register and saved status in the bank of the
// mode it enters
func TestEntryEffects(t *testing.T) {
	type entry struct {
		raise    func(arm.Signaller)
		mode     arm.Mode
		vector   uint32
		lrOffset uint32
	}

	entries := []entry{
		{func(s arm.Signaller) { s.RaiseUndefined() }, arm.ModeUndefined, 0x04, 0},
		{func(s arm.Signaller) { s.RaiseSWI() }, arm.ModeSupervisor, 0x08, 0},
		{func(s arm.Signaller) { s.SignalPrefetchAbort(0x4000) }, arm.ModeAbort, 0x0c, 4},
		{func(s arm.Signaller) { s.SignalDataAbort(0x4000) }, arm.ModeAbort, 0x10, 4},
		{func(s arm.Signaller) { s.RaiseFIQ() }, arm.ModeFIQ, 0x1c, 4},
		{func(s arm.Signaller) { s.RaiseIRQ() }, arm.ModeIRQ, 0x18, 4},
	}

	for _, e := range entries {
		cpu := arm.NewCPU(arm.LookupProfile("armv5"), nil)
		test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))
		cpu.SetPC(0x4000)

		oldCPSR := cpu.CPSR()

		e.raise(cpu.Signaller())
		test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

		test.ExpectEquality(t, cpu.CPSR().Mode(), e.mode)
		test.ExpectEquality(t, cpu.PC(), e.vector)
		test.ExpectEquality(t, cpu.Register(14), 0x4000+e.lrOffset)
		test.ExpectEquality(t, cpu.SPSR(), oldCPSR)
		test.ExpectSuccess(t, cpu.CPSR().Is(arm.IRQDisable))
		test.ExpectFailure(t, cpu.CPSR().Is(arm.Thumb))
	}
}

// on an ARMv4 core the thumb bit never sticks, so exception entry always
// observes it as clear
func TestThumbOnV4(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm7tdmi"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))
	cpu.SetThumb(true)
	test.ExpectFailure(t, cpu.CPSR().Is(arm.Thumb))
	cpu.SetPC(0x1004)

	cpu.Signaller().RaiseSWI()
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	// no thumb adjustment in the link register
	test.ExpectEquality(t, cpu.Register(14), uint32(0x1004))
	test.ExpectFailure(t, cpu.SPSR().Is(arm.Thumb))
}

// the level triggered interrupt lines re-enter as soon as their mask is
// cleared again; the edge triggered classes do not
func TestLevelTriggered(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))

	sig := cpu.Signaller()
	sig.RaiseIRQ()

	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())
	test.ExpectEquality(t, cpu.CPSR().Mode(), arm.ModeIRQ)

	// clearing the mask without lowering the line takes the interrupt
	// again
	p := cpu.CPSR()
	p.Set(arm.IRQDisable, false)
	test.ExpectSuccess(t, cpu.SetCPSR(p))
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	// lowering the line ends it
	sig.LowerIRQ()
	p = cpu.CPSR()
	p.Set(arm.IRQDisable, false)
	test.ExpectSuccess(t, cpu.SetCPSR(p))
	test.ExpectFailure(t, cpu.ProcessPendingExceptions())
}

// the exceptions performance counter increments on every taken exception
func TestExceptionCounter(t *testing.T) {
	cpu := arm.NewCPU(arm.LookupProfile("arm926"), nil)
	test.ExpectSuccess(t, cpu.SetCPSR(arm.PSR(0x10)))

	before := cpu.PerfCounter(arm.PerfExceptions)

	cpu.Signaller().RaiseSWI()
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	cpu.Signaller().SignalDataAbort(0x00)
	test.ExpectSuccess(t, cpu.ProcessPendingExceptions())

	test.ExpectEquality(t, cpu.PerfCounter(arm.PerfExceptions), before+2)
}
