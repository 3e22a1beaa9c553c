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
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopherarm/logger"
)

// ISA is the instruction set architecture implemented by the CPU.
type ISA int

// list of supported instruction set architectures.
const (
	V4 ISA = iota
	V5
	V5e
	V6
)

func (isa ISA) String() string {
	return [...]string{"ARMv4", "ARMv5", "ARMv5e", "ARMv6"}[isa]
}

// CoreType is the processor family the CPU reports itself as.
type CoreType int

// list of supported processor families.
const (
	ARM7 CoreType = iota
	ARM9
	ARM9e
)

func (c CoreType) String() string {
	return [...]string{"ARM7", "ARM9", "ARM9e"}[c]
}

// register names.
const (
	rSP = 13 + iota
	rLR
	rPC
	rCount
)

// Profile gathers the properties selected by a CPU type name.
type Profile struct {
	Name string
	ISA  ISA
	Core CoreType
	CP15 bool
	MMU  bool
}

// the table of recognised CPU type names.
var profiles = []Profile{
	{Name: "armv4", ISA: V4, Core: ARM7},
	{Name: "armv5", ISA: V5, Core: ARM9, CP15: true, MMU: true},
	{Name: "armv5e", ISA: V5e, Core: ARM9, CP15: true, MMU: true},

	// not correct, but there is no ARM11 support yet
	{Name: "armv6", ISA: V6, Core: ARM9, CP15: true, MMU: true},

	{Name: "arm7tdmi", ISA: V4, Core: ARM7},
	{Name: "arm7", ISA: V4, Core: ARM7},
	{Name: "arm9tdmi", ISA: V4, Core: ARM9, CP15: true, MMU: true},
	{Name: "arm9", ISA: V4, Core: ARM9, CP15: true, MMU: true},
	{Name: "arm9e", ISA: V5e, Core: ARM9e, CP15: true, MMU: true},
	{Name: "arm926ejs", ISA: V5e, Core: ARM9e, CP15: true, MMU: true},
	{Name: "arm926", ISA: V5e, Core: ARM9e, CP15: true, MMU: true},
}

// LookupProfile matches a CPU type name, case-insensitively, against the
// table of recognised names. An unknown or empty name falls back to the
// ARMv4/ARM7 default. The fallback is logged but it is not an error.
func LookupProfile(name string) Profile {
	if name != "" {
		for _, p := range profiles {
			if strings.EqualFold(p.Name, name) {
				return p
			}
		}
		logger.Logf(logger.Allow, "ARM", "unrecognised cpu type %q: using %s/%s", name, V4, ARM7)
	}
	return profiles[0]
}

// CPU is the architectural state of the ARM core: the active register file,
// the banked registers of the non-user modes, the program status registers
// and the pending exception set.
//
// With the exception of the pending exception set, the performance counters
// and the quit indication, all fields are private to the executor goroutine. Other
// goroutines communicate with the core through the Signaller type.
type CPU struct {
	mem Bus

	isa  ISA
	core CoreType

	// the active registers. registers[15] is the program counter as seen by
	// instructions
	registers [rCount]uint32

	// the address of the instruction at the current execution boundary. this
	// is the value the exception pipeline bases link registers on
	executingPC uint32

	cpsr PSR

	// the saved status register of the currently active mode
	spsr PSR

	// one banked register set per non-user mode. user and system modes share
	// the entry indexed by bankUsr
	banks [numBanks]bankedRegisters

	// the pending exception set. shared between goroutines, like the
	// performance counters and the quit indication. accessed only with
	// atomic operations
	pending atomic.Uint32

	// bit j of conditionTable[i] answers whether condition code j passes
	// when the NZCV nibble equals i. built once during NewCPU() and never
	// written again
	conditionTable [16]uint16

	// the sixteen architectural coprocessor slots. currCp is the slot
	// selected by the most recent coprocessor instruction, or noCoprocessor.
	// it is an index rather than a reference: the slot table is stable for
	// the life of the CPU and invalidation is simply clearing the index
	coproc [16]Coprocessor
	currCp int

	perf perfCounters

	// cooperative stop threshold. negative means run until an external quit
	stopAtCycle int64

	// quit indication posted by the host surface. checked once per
	// instruction boundary
	quit atomic.Bool

	// execution flags. set to false and/or error when the Run() function
	// should end
	continueExecution bool
	executionError    error

	// tracing verbosity. zero, the default, keeps the per-instruction path
	// free of logging
	traceLevel int
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// profile will usually come from LookupProfile(). The memory bus may be nil
// if the dispatch loop is never used.
func NewCPU(prof Profile, mem Bus) *CPU {
	cpu := &CPU{
		mem:               mem,
		isa:               prof.ISA,
		core:              prof.Core,
		currCp:            noCoprocessor,
		stopAtCycle:       -1,
		continueExecution: true,
	}

	cpu.buildConditionTable()

	// power on in supervisor mode with both interrupts masked. the scheduled
	// reset that normally follows initialisation puts the core through the
	// full reset sequence
	cpu.cpsr = IRQDisable | FIQDisable
	cpu.cpsr.setMode(ModeSupervisor)

	if prof.CP15 {
		cpu.InstallCP15()
	}

	logger.Logf(logger.Allow, "ARM", "%s/%s initialised", cpu.isa, cpu.core)

	return cpu
}

// ISA returns the instruction set architecture the CPU was created with.
func (cpu *CPU) ISA() ISA {
	return cpu.isa
}

// Core returns the processor family the CPU was created with.
func (cpu *CPU) Core() CoreType {
	return cpu.core
}

// Register returns the value of the numbered active register.
func (cpu *CPU) Register(reg int) uint32 {
	return cpu.registers[reg]
}

// SetRegister writes the numbered active register. Writes to r15 should use
// SetPC() which handles alignment.
func (cpu *CPU) SetRegister(reg int, val uint32) {
	if reg == rPC {
		cpu.SetPC(val)
		return
	}
	cpu.registers[reg] = val
}

// PC returns the address of the instruction at the current execution
// boundary.
func (cpu *CPU) PC() uint32 {
	return cpu.executingPC
}

// SetPC loads the program counter. The address is aligned according to the
// current instruction set: word aligned for ARM, halfword aligned for Thumb.
func (cpu *CPU) SetPC(addr uint32) {
	if cpu.cpsr.Is(Thumb) {
		addr &^= 0x01
	} else {
		addr &^= 0x03
	}
	cpu.executingPC = addr
	cpu.registers[rPC] = addr
}

// CPSR returns the current program status register.
func (cpu *CPU) CPSR() PSR {
	return cpu.cpsr
}

// SetCPSR replaces the current program status register. A change to the
// mode field is routed through SetMode() so that register banking is
// performed.
func (cpu *CPU) SetCPSR(p PSR) error {
	if p.Mode() != cpu.cpsr.Mode() {
		if err := cpu.SetMode(p.Mode()); err != nil {
			return err
		}
	}
	cpu.cpsr = p
	cpu.enforceISA()
	return nil
}

// SPSR returns the saved program status register of the active mode.
func (cpu *CPU) SPSR() PSR {
	return cpu.spsr
}

// SetThumb sets or clears the Thumb bit of the CPSR. On an ARMv4 core the
// Thumb bit always reads as zero and attempts to set it do not stick.
func (cpu *CPU) SetThumb(v bool) {
	if v && cpu.isa == V4 {
		logger.Logf(cpu.trace(4), "ARM", "thumb bit ignored on %s", cpu.isa)
		return
	}
	cpu.cpsr.Set(Thumb, v)
}

// enforceISA reapplies the architectural limits of the selected ISA to the
// CPSR. Called after wholesale CPSR replacement.
func (cpu *CPU) enforceISA() {
	if cpu.isa == V4 {
		cpu.cpsr.Set(Thumb, false)
	}
}

// SetTraceLevel adjusts tracing verbosity. Level zero, the default, is
// silent.
func (cpu *CPU) SetTraceLevel(level int) {
	cpu.traceLevel = level
}

// tracePermission gates log entries on the CPU trace level.
type tracePermission bool

// AllowLogging implements the logger.Permissions interface.
func (p tracePermission) AllowLogging() bool {
	return bool(p)
}

// trace returns a logging permission that allows the entry when the CPU
// trace level is at least the level argument.
func (cpu *CPU) trace(level int) logger.Permissions {
	return tracePermission(cpu.traceLevel >= level)
}
