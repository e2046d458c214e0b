// This file is part of Gopherbrick.
//
// Gopherbrick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbrick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbrick.  If not, see <https://www.gnu.org/licenses/>.

// Package splb20 implements the SPLB20 CPU core. The SPLB20 is an 8-bit CPU
// from the 6502 family. Only the subset of the instruction set used by the
// known ROMs is implemented and every other opcode is a one byte instruction
// that does nothing.
//
// The ROM is mapped to the top of the 64K address space. Below it are the LCD
// RAM, the special function registers, the CPU RAM and the data RAM.
//
// There is no IRQ handling. The periodic timers and the key interrupt are all
// delivered through the NMI vector. If the oscillator or the CPU has been
// stopped by the program then an NMI restarts the CPU through the reset
// vector.
package splb20
