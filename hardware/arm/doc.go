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

// Package arm implements the architectural core of an ARM32 processor:
// the register file with its per-mode banking, the program status
// registers, exception and interrupt delivery, condition code evaluation
// and the coprocessor slots.
//
// The core is driven from exactly one goroutine, the executor, which owns
// all architectural state. Peripheral emulation and other goroutines raise
// interrupts and aborts through the Signaller type, whose only point of
// contact with the core is the atomically maintained pending exception
// set. The executor observes and services pending exceptions at every
// instruction boundary.
//
// Supported processor configurations range over the ARMv4 to ARMv6
// instruction set architectures and the ARM7/ARM9/ARM9e families. See
// LookupProfile() for the recognised names.
package arm
