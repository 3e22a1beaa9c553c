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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherarm/hardware"
	"github.com/jetsetilly/gopherarm/hardware/arm"
	"github.com/jetsetilly/gopherarm/test"
)

func TestSystemAssembly(t *testing.T) {
	sys := hardware.NewSystem("arm7tdmi")
	test.ExpectEquality(t, sys.CPU.ISA(), arm.V4)
	test.ExpectSuccess(t, sys.MMU == nil)

	sys = hardware.NewSystem("arm926")
	test.ExpectEquality(t, sys.CPU.ISA(), arm.V5e)
	test.ExpectFailure(t, sys.MMU == nil)
}

// an image containing an idle loop at the reset vector runs from reset to
// the stop cycle
func TestSystemRun(t *testing.T) {
	sys := hardware.NewSystem("arm7tdmi")

	// b 0x0 at the reset vector
	image := []uint8{0xfe, 0xff, 0xff, 0xea}
	test.ExpectSuccess(t, sys.AttachImage(image))

	test.ExpectSuccess(t, sys.Run(50))

	// the reset was taken on the first boundary and the loop has been
	// spinning at the vector since
	test.ExpectEquality(t, sys.CPU.CPSR().Mode(), arm.ModeSupervisor)
	test.ExpectEquality(t, sys.CPU.PC(), uint32(0x00))
	test.ExpectSuccess(t, sys.CPU.PerfCounter(arm.PerfInstructions) > 0)
}

// an interrupt raised through the signal surface while the executor is
// stopped is taken at the first instruction boundary of the next run
func TestSystemAsyncInterrupt(t *testing.T) {
	sys := hardware.NewSystem("arm7tdmi")

	// an idle loop at the reset vector and another at the irq vector
	image := make([]uint8, 0x20)
	copy(image[0x00:], []uint8{0xfe, 0xff, 0xff, 0xea}) // b 0x0
	copy(image[0x18:], []uint8{0xfe, 0xff, 0xff, 0xea}) // b 0x18
	test.ExpectSuccess(t, sys.AttachImage(image))

	// run the reset and a few loop iterations, ending in supervisor mode
	// with the irq mask set
	test.ExpectSuccess(t, sys.Run(10))
	test.ExpectEquality(t, sys.CPU.CPSR().Mode(), arm.ModeSupervisor)

	// unmask and raise
	p := sys.CPU.CPSR()
	p.Set(arm.IRQDisable, false)
	test.ExpectSuccess(t, sys.CPU.SetCPSR(p))
	sys.Signaller().RaiseIRQ()

	test.ExpectSuccess(t, sys.Run(20))
	test.ExpectEquality(t, sys.CPU.CPSR().Mode(), arm.ModeIRQ)
	test.ExpectEquality(t, sys.CPU.PC(), uint32(0x18))
}
