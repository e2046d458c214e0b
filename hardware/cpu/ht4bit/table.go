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

package ht4bit

// baseTable is the instruction table shared by all HT4BIT chips. Profiles
// replace entries in a copy of this table.
var baseTable = buildBaseTable()

func buildBaseTable() [256]Instruction {
	var t [256]Instruction

	fill := func(from int, count int, f Instruction) {
		for i := from; i < from+count; i++ {
			t[i] = f
		}
	}

	t[0x00] = rrA
	t[0x01] = rlA
	t[0x02] = rrcA
	t[0x03] = rlcA
	t[0x04] = movAM(0)
	t[0x05] = movMA(0)
	t[0x06] = movAM(2)
	t[0x07] = movMA(2)
	t[0x08] = adcAM
	t[0x09] = addAM
	t[0x0a] = sbcAM
	t[0x0b] = subAM
	t[0x0c] = incM(0)
	t[0x0d] = decM(0)
	t[0x0e] = incM(2)
	t[0x0f] = decM(2)

	// INC Rn and DEC Rn alternate for R0 to R4
	for i := 0x10; i <= 0x19; i += 2 {
		t[i] = incRn
		t[i+1] = decRn
	}

	t[0x1a] = andAM
	t[0x1b] = xorAM
	t[0x1c] = orAM
	t[0x1d] = andMA
	t[0x1e] = xorMA
	t[0x1f] = orMA

	// MOV Rn,A and MOV A,Rn alternate for R0 to R4
	for i := 0x20; i <= 0x29; i += 2 {
		t[i] = movRnA
		t[i+1] = movARn
	}

	t[0x2a] = clc
	t[0x2b] = stc
	t[0x2c] = ei
	t[0x2d] = di
	t[0x2e] = ret
	t[0x2f] = reti
	t[0x30] = nop
	t[0x31] = incA
	t[0x32] = nop
	t[0x33] = nop
	t[0x34] = nop
	t[0x35] = nop
	t[0x36] = daa
	t[0x37] = halt
	t[0x38] = timerOn
	t[0x39] = timerOff
	t[0x3a] = movATmrL
	t[0x3b] = movATmrH
	t[0x3c] = movTmrLA
	t[0x3d] = movTmrHA
	t[0x3e] = nop
	t[0x3f] = decA
	t[0x40] = addAX
	t[0x41] = subAX
	t[0x42] = andAX
	t[0x43] = xorAX
	t[0x44] = orAX
	t[0x45] = soundN
	t[0x46] = movR4X
	t[0x47] = timerXX
	t[0x48] = soundOne
	t[0x49] = soundLoop
	t[0x4a] = soundOff
	t[0x4b] = soundA
	t[0x4c] = readR4A(false)
	t[0x4d] = readR4A(true)
	t[0x4e] = readMR0A(false)
	t[0x4f] = readMR0A(true)

	fill(0x50, 16, movR1R0XX)
	fill(0x60, 16, movR3R2XX)
	fill(0x70, 16, movAX)
	fill(0x80, 32, jan)
	fill(0xa0, 8, jnzR0)
	fill(0xa8, 8, jnzR1)
	fill(0xb0, 8, jzA)
	fill(0xb8, 8, jnzA)
	fill(0xc0, 8, jc)
	fill(0xc8, 8, jnc)
	fill(0xd0, 8, jtmr)
	fill(0xd8, 8, jnzR4)
	fill(0xe0, 16, jmp)
	fill(0xf0, 16, call)

	return t
}
