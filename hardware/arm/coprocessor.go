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
)

// Coprocessor is the contract between the CPU and an implementation living
// in one of the sixteen architectural coprocessor slots.
type Coprocessor interface {
	Reset()

	// register transfer in the crn/crm/opcode2 space of the MRC and MCR
	// instructions
	Read(crn int, crm int, op2 int) uint32
	Write(crn int, crm int, op2 int, val uint32)
}

// value of CPU currCp when no coprocessor is selected.
const noCoprocessor = -1

// CoprocessorRangeError is the error pattern for a coprocessor number
// outside the sixteen architectural slots.
const CoprocessorRangeError = "arm: coprocessor number out of range (%d)"

// InstallCoprocessor binds a coprocessor to a numbered slot. A number
// outside the architectural range is fatal to the emulation.
func (cpu *CPU) InstallCoprocessor(num int, cp Coprocessor) error {
	if num < 0 || num >= len(cpu.coproc) {
		err := curated.Errorf(CoprocessorRangeError, num)
		cpu.fatal(err)
		return err
	}
	cpu.coproc[num] = cp
	return nil
}

// SelectCoprocessor records the slot named by a coprocessor instruction
// prefix. Selecting an empty slot deselects.
func (cpu *CPU) SelectCoprocessor(num int) {
	if num < 0 || num >= len(cpu.coproc) || cpu.coproc[num] == nil {
		cpu.currCp = noCoprocessor
		return
	}
	cpu.currCp = num
}

// CurrentCoprocessor returns the currently selected coprocessor, if there
// is one. The selection is invalidated by a reset and by taking an exception
// from Thumb state. Changing the Thumb bit directly does not invalidate it.
func (cpu *CPU) CurrentCoprocessor() (Coprocessor, bool) {
	if cpu.currCp == noCoprocessor {
		return nil, false
	}
	return cpu.coproc[cpu.currCp], true
}
