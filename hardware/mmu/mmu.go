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

// Package mmu is the address translation layer between the CPU and system
// memory. Translation table walks are not modelled: an enabled MMU maps
// every virtual address onto the same physical address. What the package
// does provide is the seam the CPU sees, so that the memory system below
// it can be swapped without the core noticing.
package mmu

import (
	"github.com/jetsetilly/gopherarm/logger"
)

// Bus is the physical memory below the MMU.
type Bus interface {
	Read8(addr uint32) (uint8, error)
	Read16(addr uint32) (uint16, error)
	Read32(addr uint32) (uint32, error)
	Write8(addr uint32, val uint8) error
	Write16(addr uint32, val uint16) error
	Write32(addr uint32, val uint32) error
}

// MMU wraps a physical Bus, translating addresses when enabled.
type MMU struct {
	bus     Bus
	enabled bool
}

// NewMMU is the preferred method of initialisation for the MMU type.
func NewMMU(bus Bus) *MMU {
	return &MMU{bus: bus}
}

// Init enables or disables translation.
func (m *MMU) Init(enable bool) {
	m.enabled = enable
	logger.Logf(logger.Allow, "MMU", "translation enabled: %v", enable)
}

// Translate a virtual address to a physical address. With table walks not
// modelled the mapping is the identity whether translation is enabled or
// not.
func (m *MMU) Translate(vaddr uint32) uint32 {
	return vaddr
}

func (m *MMU) Read8(addr uint32) (uint8, error) {
	return m.bus.Read8(m.Translate(addr))
}

func (m *MMU) Read16(addr uint32) (uint16, error) {
	return m.bus.Read16(m.Translate(addr))
}

func (m *MMU) Read32(addr uint32) (uint32, error) {
	return m.bus.Read32(m.Translate(addr))
}

func (m *MMU) Write8(addr uint32, val uint8) error {
	return m.bus.Write8(m.Translate(addr), val)
}

func (m *MMU) Write16(addr uint32, val uint16) error {
	return m.bus.Write16(m.Translate(addr), val)
}

func (m *MMU) Write32(addr uint32, val uint32) error {
	return m.bus.Write32(m.Translate(addr), val)
}
