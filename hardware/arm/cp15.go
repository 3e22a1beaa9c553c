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

// CP15 is the system control coprocessor. Only the registers the emulated
// cores actually report through are implemented: the main ID register and
// the control register. Cache and TLB maintenance operations are accepted
// and discarded.
type CP15 struct {
	cpu *CPU

	mainID  uint32
	control uint32
}

// main ID register values reported for each core family.
var cp15MainID = map[CoreType]uint32{
	ARM7:  0x41007700,
	ARM9:  0x41009460,
	ARM9e: 0x41069265,
}

// InstallCP15 creates the system control coprocessor and binds it to slot
// fifteen.
func (cpu *CPU) InstallCP15() *CP15 {
	cp := &CP15{
		cpu:    cpu,
		mainID: cp15MainID[cpu.core],
	}
	cpu.coproc[15] = cp
	return cp
}

// Reset implements the Coprocessor interface.
func (cp *CP15) Reset() {
	cp.control = 0
}

// Read implements the Coprocessor interface.
func (cp *CP15) Read(crn int, crm int, op2 int) uint32 {
	switch crn {
	case 0:
		return cp.mainID
	case 1:
		return cp.control
	}

	logger.Logf(cp.cpu.trace(4), "CP15", "read of unimplemented register c%d,c%d,%d", crn, crm, op2)
	return 0
}

// Write implements the Coprocessor interface.
func (cp *CP15) Write(crn int, crm int, op2 int, val uint32) {
	switch crn {
	case 1:
		cp.control = val
	case 7, 8:
		// cache and TLB maintenance. nothing to maintain
	default:
		logger.Logf(cp.cpu.trace(4), "CP15", "write of unimplemented register c%d,c%d,%d", crn, crm, op2)
	}
}
