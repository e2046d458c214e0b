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

// Package ht4bit implements the HT4BIT family of 4-bit CPU cores. The
// generic engine is the CPU type, which is specialised by a Profile. The
// Profile describes the ports of the chip and the opcodes that the chip
// implements differently to the base instruction table.
//
// The HT943 profile is the only profile currently defined. It adds input
// ports with pull-up and wakeup masks, and an output latch.
//
// The CPU clock is driven one instruction at a time by the Clock() function,
// which returns the number of cycles consumed. The sound sequencer and the
// timer are advanced by the same number of cycles.
package ht4bit
