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

// Package t7741 implements the T7741 CPU core. The T7741 is a 4-bit CPU with
// 10-bit instruction words, a segment RAM for the LCD and a piezo that is
// toggled directly by the program.
//
// The instruction table is indexed by the low ten bits of the instruction
// word. The handler receives the complete word.
//
// Output ports OUTP and IOP are reported to listeners attached to the pin
// Broadcaster returned by Pins(), once for every bit that changes.
package t7741
