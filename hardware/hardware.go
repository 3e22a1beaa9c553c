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

package hardware

import (
	"github.com/jetsetilly/gopherarm/curated"
	"github.com/jetsetilly/gopherarm/hardware/arm"
	"github.com/jetsetilly/gopherarm/hardware/memory"
	"github.com/jetsetilly/gopherarm/hardware/mmu"
)

// the amount of system RAM given to a new System.
const ramSize = 16 * 1024 * 1024

// System assembles the CPU core with its memory and translation layers.
type System struct {
	CPU *arm.CPU
	RAM *memory.RAM
	MMU *mmu.MMU

	prof arm.Profile
}

// NewSystem creates the emulated machine selected by the CPU type name. An
// unrecognised name selects the ARMv4/ARM7 default.
func NewSystem(cpuType string) *System {
	sys := &System{
		prof: arm.LookupProfile(cpuType),
	}

	sys.RAM = memory.NewRAM(0, ramSize)

	var bus arm.Bus = sys.RAM
	if sys.prof.MMU {
		sys.MMU = mmu.NewMMU(sys.RAM)
		sys.MMU.Init(true)
		bus = sys.MMU
	}

	sys.CPU = arm.NewCPU(sys.prof, bus)

	return sys
}

// AttachImage loads a program image at the base of memory, where the
// exception vectors live, and schedules the reset that will start it.
func (sys *System) AttachImage(image []uint8) error {
	if err := sys.RAM.LoadImage(0x00000000, image); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	sys.CPU.Signaller().Reset()
	return nil
}

// Signaller returns the handle other goroutines use to raise interrupts
// and aborts.
func (sys *System) Signaller() arm.Signaller {
	return sys.CPU.Signaller()
}

// Run the system on the calling goroutine until the cycle count is reached.
// A cycle count of zero or below means run until an external quit.
func (sys *System) Run(cycleCount int64) error {
	sys.CPU.SetStopCycle(cycleCount)
	return sys.CPU.Run()
}

// Start the system on a new goroutine, the executor. The returned channel
// receives the result of Run() when the executor ends.
func (sys *System) Start(cycleCount int64) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- sys.Run(cycleCount)
	}()
	return done
}
