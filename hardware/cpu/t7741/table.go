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

package t7741

// instructionTable is indexed by the low ten bits of the instruction word.
var instructionTable = buildTable()

func buildTable() [1024]Instruction {
	var t [1024]Instruction

	fill := func(from int, count int, f Instruction) {
		for i := from; i < from+count; i++ {
			t[i] = f
		}
	}

	// default to NOP so that unused slots are harmless
	fill(0x000, 0x400, nop)

	t[0x001] = movLB
	t[0x002] = addcAMHL
	t[0x003] = incL
	t[0x004] = scan(false)
	t[0x006] = ret(0)
	t[0x007] = tstPX
	t[0x008] = tstPY
	t[0x009] = movM1LA
	t[0x00a] = rorcMHL
	t[0x00b] = movAM1L
	t[0x00c] = incp10
	t[0x00d] = inAIP
	t[0x00e] = rolcMHL
	t[0x00f] = movAMHL

	t[0x010] = movHIncB
	t[0x011] = movAB
	t[0x012] = addcAB
	t[0x013] = incB
	t[0x015] = osc(true)
	t[0x016] = nop2
	t[0x018] = waitFrame
	t[0x019] = movBA
	t[0x01a] = clearmDec
	t[0x01b] = outBZ(1)
	t[0x01c] = nop2
	t[0x01d] = inAIOP
	t[0x01e] = nop2

	t[0x020] = movHA
	t[0x021] = movLA
	t[0x022] = subcAMHL
	t[0x023] = decL
	t[0x024] = scan(true)
	t[0x026] = ret(1)
	t[0x028] = tstPZ
	t[0x029] = movMHLA
	t[0x02a] = exeCFA
	t[0x02c] = decp10
	t[0x02d] = incMHL
	t[0x02e] = nop2

	t[0x030] = movHDecB
	t[0x031] = movAL
	t[0x032] = subcAB
	t[0x033] = decB
	t[0x035] = osc(false)
	t[0x036] = nop2
	t[0x038] = waitCom
	t[0x039] = movBL
	t[0x03a] = clearmInc
	t[0x03b] = outBZ(0)
	t[0x03c] = nop2
	t[0x03d] = decMHL
	t[0x03e] = nop2

	fill(0x040, 16, addcAImm)
	fill(0x050, 16, subcAImm)
	fill(0x060, 16, movMHLIncImm)
	fill(0x070, 16, movMHLImm)
	fill(0x080, 16, movmSub)
	fill(0x090, 16, movmAdd)
	fill(0x0a0, 16, incM1I)
	fill(0x0b0, 16, decM1I)
	fill(0x0c0, 16, addc10m)
	fill(0x0d0, 16, subc10m)
	fill(0x0e0, 16, outOUTPImm)
	fill(0x0f0, 16, outIOPImm)

	fill(0x100, 64, sbit)
	fill(0x140, 64, rbit)
	fill(0x180, 64, tbit)

	fill(0x1c0, 16, outm)
	fill(0x1d0, 16, movPCHImm)
	fill(0x1e0, 16, cmpMHLImm)
	fill(0x1f0, 16, delay)

	// the call instructions are interleaved with the immediate loads. bits
	// 6 and 7 of a call opcode become bits 10 and 11 of the destination
	call0 := call(0, 0x1f0)
	call1 := call(1, 0x3f0)
	for i, f := range []Instruction{
		movLImm, call0, movAM0I, call1,
		movBImm, call0, movM0IA, call1,
		movHImm, call0, movAM1I, call1,
		movAImm, call0, movM1IA, call1,
	} {
		fill(0x200+i*16, 16, f)
	}

	fill(0x300, 256, bsImm)

	return t
}
