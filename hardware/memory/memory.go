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

// Package memory is the system memory of the emulated machine: a single
// flat block of RAM holding the exception vectors at its base. Access to
// addresses outside the block is reported with a curated error, which the
// CPU dispatch loop converts to the appropriate abort exception.
package memory

import (
	"github.com/jetsetilly/gopherarm/curated"
	"github.com/jetsetilly/gopherarm/logger"
)

// AddressError is the error pattern for an access outside the RAM block.
const AddressError = "memory: unmapped address (%08x)"

// ImageError is the error pattern for a program image that does not fit.
const ImageError = "memory: image of %d bytes does not fit at %08x"

// RAM is a flat block of system memory. Values are stored little-endian.
type RAM struct {
	origin uint32
	data   []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(origin uint32, size int) *RAM {
	return &RAM{
		origin: origin,
		data:   make([]uint8, size),
	}
}

// LoadImage copies a program image into RAM at the supplied address.
func (ram *RAM) LoadImage(addr uint32, image []uint8) error {
	idx, ok := ram.mapAddress(addr, len(image))
	if !ok {
		return curated.Errorf(ImageError, len(image), addr)
	}
	copy(ram.data[idx:], image)
	return nil
}

// mapAddress converts an address to an index into the data block. The
// second return value is false if any of the accessed bytes fall outside
// the block.
func (ram *RAM) mapAddress(addr uint32, length int) (int, bool) {
	if addr < ram.origin {
		return 0, false
	}
	idx := int(addr - ram.origin)
	if idx+length > len(ram.data) {
		return 0, false
	}
	return idx, true
}

func (ram *RAM) Read8(addr uint32) (uint8, error) {
	idx, ok := ram.mapAddress(addr, 1)
	if !ok {
		return 0, curated.Errorf(AddressError, addr)
	}
	return ram.data[idx], nil
}

func (ram *RAM) Read16(addr uint32) (uint16, error) {
	if addr&0x01 != 0x00 {
		logger.Logf(logger.Allow, "memory", "misaligned 16 bit read (%08x)", addr)
	}

	idx, ok := ram.mapAddress(addr, 2)
	if !ok {
		return 0, curated.Errorf(AddressError, addr)
	}
	return uint16(ram.data[idx]) | uint16(ram.data[idx+1])<<8, nil
}

func (ram *RAM) Read32(addr uint32) (uint32, error) {
	if addr&0x03 != 0x00 {
		logger.Logf(logger.Allow, "memory", "misaligned 32 bit read (%08x)", addr)
	}

	idx, ok := ram.mapAddress(addr, 4)
	if !ok {
		return 0, curated.Errorf(AddressError, addr)
	}
	return uint32(ram.data[idx]) | uint32(ram.data[idx+1])<<8 |
		uint32(ram.data[idx+2])<<16 | uint32(ram.data[idx+3])<<24, nil
}

func (ram *RAM) Write8(addr uint32, val uint8) error {
	idx, ok := ram.mapAddress(addr, 1)
	if !ok {
		return curated.Errorf(AddressError, addr)
	}
	ram.data[idx] = val
	return nil
}

func (ram *RAM) Write16(addr uint32, val uint16) error {
	if addr&0x01 != 0x00 {
		logger.Logf(logger.Allow, "memory", "misaligned 16 bit write (%08x)", addr)
	}

	idx, ok := ram.mapAddress(addr, 2)
	if !ok {
		return curated.Errorf(AddressError, addr)
	}
	ram.data[idx] = uint8(val)
	ram.data[idx+1] = uint8(val >> 8)
	return nil
}

func (ram *RAM) Write32(addr uint32, val uint32) error {
	if addr&0x03 != 0x00 {
		logger.Logf(logger.Allow, "memory", "misaligned 32 bit write (%08x)", addr)
	}

	idx, ok := ram.mapAddress(addr, 4)
	if !ok {
		return curated.Errorf(AddressError, addr)
	}
	ram.data[idx] = uint8(val)
	ram.data[idx+1] = uint8(val >> 8)
	ram.data[idx+2] = uint8(val >> 16)
	ram.data[idx+3] = uint8(val >> 24)
	return nil
}
