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

// Package registers implements the 8-bit registers of the SPLB20 CPU core.
//
// Register operations do not update the status register themselves, with the
// exception of the arithmetic operations, which need to know the state of the
// decimal mode and carry flags in order to work. For other operations, the
// status register is updated by the CPU. For example:
//
//	a.Load(10)
//	a.EOR(10)
//	sr.SetNZ(a.Value())
//
// The arithmetic operations replicate the flag behaviour of the SPLB20 in
// decimal mode. The sign and overflow flags are taken from the value before
// the high nibble is corrected but the carry and zero flags are taken from
// the corrected value. The result of adding or subtracting invalid BCD values
// is not corrected either.
package registers
