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
	"github.com/jetsetilly/gopherarm/curated"
	"github.com/jetsetilly/gopherarm/logger"
)

// bankedRegisters is the register storage that is swapped on a mode change.
// Only r13, r14 and the SPSR are banked. The additional FIQ bank of r8-r12
// found in hardware is not modelled.
type bankedRegisters struct {
	r13  uint32
	r14  uint32
	spsr PSR
}

// index values for the CPU banks array. user and system modes share the one
// bank.
const (
	bankUsr = iota
	bankFIQ
	bankIRQ
	bankSvc
	bankAbt
	bankUnd
	numBanks
)

// UnrecognisedMode is the error pattern for a mode value outside the seven
// defined processor modes.
const UnrecognisedMode = "arm: unrecognised processor mode (%#02x)"

// bankForMode maps a processor mode to an index in the CPU banks array. It
// is used for both sides of a mode switch.
func bankForMode(mode Mode) (int, error) {
	switch mode {
	case ModeUser, ModeSystem:
		return bankUsr, nil
	case ModeFIQ:
		return bankFIQ, nil
	case ModeIRQ:
		return bankIRQ, nil
	case ModeSupervisor:
		return bankSvc, nil
	case ModeAbort:
		return bankAbt, nil
	case ModeUndefined:
		return bankUnd, nil
	}
	return 0, curated.Errorf(UnrecognisedMode, uint32(mode))
}

// SetMode switches the processor mode, exchanging the banked registers of
// the outgoing and incoming modes. Apart from reset, which uses enterMode(),
// it is the only path that changes the mode field of the CPSR.
//
// A mode value outside the seven defined modes is fatal to the emulation.
// The error is also returned and the CPSR is left unchanged.
//
// SetMode is for the exclusive use of the executor. It must not be called
// from the asynchronous signal surface.
func (cpu *CPU) SetMode(newMode Mode) error {
	oldMode := cpu.cpsr.Mode()

	logger.Logf(cpu.trace(4), "ARM", "mode change: %s to %s", oldMode, newMode)

	if oldMode == newMode {
		return nil
	}

	from, err := bankForMode(oldMode)
	if err != nil {
		cpu.fatal(err)
		return err
	}
	to, err := bankForMode(newMode)
	if err != nil {
		cpu.fatal(err)
		return err
	}

	// save the live registers into the bank of the mode we're leaving and
	// replace them with the contents of the bank of the mode we're entering
	cpu.banks[from] = bankedRegisters{
		r13:  cpu.registers[rSP],
		r14:  cpu.registers[rLR],
		spsr: cpu.spsr,
	}
	cpu.registers[rSP] = cpu.banks[to].r13
	cpu.registers[rLR] = cpu.banks[to].r14
	cpu.spsr = cpu.banks[to].spsr

	cpu.cpsr.setMode(newMode)

	return nil
}

// enterMode is the restore-only half of SetMode. It is used on reset, where
// the interrupted context is deliberately discarded rather than saved.
func (cpu *CPU) enterMode(bank int, newMode Mode) {
	cpu.registers[rSP] = cpu.banks[bank].r13
	cpu.registers[rLR] = cpu.banks[bank].r14
	cpu.spsr = cpu.banks[bank].spsr
	cpu.cpsr.setMode(newMode)
}
