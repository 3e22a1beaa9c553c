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

// Package hardware assembles the subsystems of the emulated machine into a
// single System type. The System owns the CPU core, the system RAM and,
// for the processor configurations that have one, the MMU.
//
// The sub-packages do the real work and can be used independently. The
// hardware package only ever wires them together.
package hardware
