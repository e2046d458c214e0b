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

import "math"

func nop(mc *CPU, _ uint16) float64 {
	mc.nsf = false
	return div1
}

func nop2(mc *CPU, _ uint16) float64 {
	mc.nsf = false
	return div4
}

// register transfers

func movLB(mc *CPU, _ uint16) float64 {
	mc.l = mc.b
	mc.nsf = false
	return div1
}

func movLA(mc *CPU, _ uint16) float64 {
	mc.l = mc.a
	mc.nsf = false
	return div1
}

func movHA(mc *CPU, _ uint16) float64 {
	mc.h = mc.a & 0x07
	mc.nsf = false
	return div1
}

func movBA(mc *CPU, _ uint16) float64 {
	mc.b = mc.a
	mc.nsf = false
	return div1
}

func movBL(mc *CPU, _ uint16) float64 {
	mc.b = mc.l
	mc.nsf = false
	return div1
}

func movAB(mc *CPU, _ uint16) float64 {
	mc.a = mc.b
	mc.cf = false
	mc.nsf = false
	return div1
}

func movAL(mc *CPU, _ uint16) float64 {
	mc.a = mc.l
	mc.cf = false
	mc.nsf = false
	return div1
}

// increment and decrement. the skip flag is set on overflow

func incL(mc *CPU, _ uint16) float64 {
	l := int(mc.l) + 1
	mc.l = uint8(l & 0x0f)
	mc.nsf = l > 15
	return div1
}

func decL(mc *CPU, _ uint16) float64 {
	l := int(mc.l) - 1
	mc.l = uint8(l & 0x0f)
	mc.nsf = l < 0
	return div1
}

func incB(mc *CPU, _ uint16) float64 {
	b := int(mc.b) + 1
	mc.b = uint8(b & 0x0f)
	mc.nsf = b > 15
	return div1
}

func decB(mc *CPU, _ uint16) float64 {
	b := int(mc.b) - 1
	mc.b = uint8(b & 0x0f)
	mc.nsf = b < 0
	return div1
}

func movHIncB(mc *CPU, _ uint16) float64 {
	b := int(mc.b) + 1
	mc.b = uint8(b & 0x0f)
	mc.h = uint8(b & 0x07)
	mc.nsf = b > 15
	return div1
}

func movHDecB(mc *CPU, _ uint16) float64 {
	b := int(mc.b) - 1
	mc.b = uint8(b & 0x0f)
	mc.h = uint8(b & 0x07)
	mc.nsf = b < 0
	return div1
}

func incMHL(mc *CPU, _ uint16) float64 {
	hl := mc.hl()
	r := int(mc.ram[hl]) + 1
	mc.ram[hl] = uint8(r & 0x0f)
	mc.a = mc.ram[hl]
	mc.cf = r > 15
	mc.nsf = mc.cf
	return div1
}

func decMHL(mc *CPU, _ uint16) float64 {
	hl := mc.hl()
	r := int(mc.ram[hl]) - 1
	mc.ram[hl] = uint8(r & 0x0f)
	mc.a = mc.ram[hl]
	mc.cf = r < 0
	mc.nsf = mc.cf
	return div1
}

func incM1I(mc *CPU, opcode uint16) float64 {
	hl := 0x10 | int(opcode&0x0f)
	r := int(mc.ram[hl]) + 1
	mc.ram[hl] = uint8(r & 0x0f)
	mc.a = mc.ram[hl]
	mc.cf = r > 15
	mc.nsf = mc.cf
	return div1
}

func decM1I(mc *CPU, opcode uint16) float64 {
	hl := 0x10 | int(opcode&0x0f)
	r := int(mc.ram[hl]) - 1
	mc.ram[hl] = uint8(r & 0x0f)
	mc.a = mc.ram[hl]
	mc.cf = r < 0
	mc.nsf = mc.cf
	return div1
}

// arithmetic

// addition of A and [HL] does not include the carry flag
func addcAMHL(mc *CPU, _ uint16) float64 {
	a := int(mc.a) + int(mc.ram[mc.hl()])
	mc.a = uint8(a & 0x0f)
	mc.cf = a > 15
	mc.nsf = mc.cf
	return div1
}

func addcAB(mc *CPU, _ uint16) float64 {
	a := int(mc.a) + int(mc.b) + int(bit(mc.cf))
	mc.a = uint8(a & 0x0f)
	mc.cf = a > 15
	mc.nsf = mc.cf
	return div1
}

func addcAImm(mc *CPU, opcode uint16) float64 {
	a := int(mc.a) + int(opcode&0x0f) + int(bit(mc.cf))
	mc.a = uint8(a & 0x0f)
	mc.cf = a > 15
	mc.nsf = mc.cf
	return div1
}

// subtraction instructions subtract A from the operand

func subcAMHL(mc *CPU, _ uint16) float64 {
	a := int(mc.ram[mc.hl()]) - int(mc.a) - int(bit(mc.cf))
	mc.a = uint8(a & 0x0f)
	mc.cf = a < 0
	mc.nsf = mc.cf
	return div1
}

func subcAB(mc *CPU, _ uint16) float64 {
	a := int(mc.b) - int(mc.a) - int(bit(mc.cf))
	mc.a = uint8(a & 0x0f)
	mc.cf = a < 0
	mc.nsf = mc.cf
	return div1
}

func subcAImm(mc *CPU, opcode uint16) float64 {
	a := int(opcode&0x0f) - int(mc.a) - int(bit(mc.cf))
	mc.a = uint8(a & 0x0f)
	mc.cf = a < 0
	mc.nsf = mc.cf
	return div1
}

func cmpMHLImm(mc *CPU, opcode uint16) float64 {
	a := int(mc.ram[mc.hl()]) - int(opcode&0x0f)
	mc.a = uint8(a & 0x0f)
	mc.cf = a < 0
	mc.nsf = a != 0
	return div4
}

// decimal increment of the two digit number at [HL+1][HL]
func incp10(mc *CPU, _ uint16) float64 {
	lo := mc.hl()
	mc.l = (mc.l + 1) & 0x0f
	hi := mc.hl()

	mh := int(mc.ram[hi])
	mc.ram[lo]++
	if mc.ram[lo] > 9 {
		mc.ram[lo] = (mc.ram[lo] + 6) & 0x0f
		mh++
		mc.ram[hi] = uint8(mh & 0x0f)
	}

	mc.a = mc.ram[hi]
	mc.cf = mh > 15
	mc.nsf = mc.cf
	return div4
}

// decimal decrement of the two digit number at [HL+1][HL]
func decp10(mc *CPU, _ uint16) float64 {
	lo := mc.hl()
	mc.l = (mc.l + 1) & 0x0f
	hi := mc.hl()

	mh := int(mc.ram[hi])
	mc.ram[lo] = (mc.ram[lo] - 1) & 0x0f
	if mc.ram[lo] > 9 {
		mc.ram[lo] = (mc.ram[lo] + 10) & 0x0f
		mh--
		mc.ram[hi] = uint8(mh & 0x0f)
	}

	mc.a = mc.ram[hi]
	mc.cf = mh < 0
	mc.nsf = mc.cf
	return div4
}

// multi-digit decimal addition of [B,L] to [H,L]. the number of digits is
// decided by L and the opcode
func addc10m(mc *CPU, opcode uint16) float64 {
	count := 16 - int(opcode&0x0f) - int(mc.l) + 1
	if count <= 0 {
		count = 1
	}

	for range count {
		hl := mc.hl()
		r := int(mc.ram[hl]) + int(mc.ram[int(mc.b&0x07)<<4|int(mc.l)]) + int(bit(mc.cf))
		if r > 9 {
			r += 6
			mc.cf = true
		} else {
			mc.cf = false
		}
		mc.ram[hl] = uint8(r & 0x0f)
		mc.a = mc.ram[hl]
		mc.l = (mc.l + 1) & 0x0f
	}

	mc.nsf = false
	return div4 + div2*float64(count-1)
}

func subc10m(mc *CPU, opcode uint16) float64 {
	count := 16 - int(opcode&0x0f) - int(mc.l) + 1
	if count <= 0 {
		count = 1
	}

	for range count {
		hl := mc.hl()
		r := int(mc.ram[hl]) - int(mc.ram[int(mc.b&0x07)<<4|int(mc.l)]) - int(bit(mc.cf))
		if r < 0 || r > 9 {
			r += 10
			mc.cf = true
		} else {
			mc.cf = false
		}
		mc.ram[hl] = uint8(r & 0x0f)
		mc.a = mc.ram[hl]
		mc.l = (mc.l + 1) & 0x0f
	}

	mc.nsf = false
	return div4 + div2*float64(count-1)
}

// rotates through carry

func rorcMHL(mc *CPU, _ uint16) float64 {
	hl := mc.hl()
	c := mc.ram[hl] & 0x01
	mc.ram[hl] = bit(mc.cf)<<3 | mc.ram[hl]>>1
	mc.a = mc.ram[hl]
	mc.cf = c == 0x01
	mc.nsf = false
	return div1
}

func rolcMHL(mc *CPU, _ uint16) float64 {
	hl := mc.hl()
	c := mc.ram[hl] >> 3
	mc.ram[hl] = (bit(mc.cf) | mc.ram[hl]<<1) & 0x0f
	mc.a = mc.ram[hl]
	mc.cf = c != 0
	mc.nsf = false
	return div1
}

// memory transfers

func movAMHL(mc *CPU, _ uint16) float64 {
	mc.a = mc.ram[mc.hl()]
	mc.nsf = false
	return div1
}

func movMHLA(mc *CPU, _ uint16) float64 {
	mc.ram[mc.hl()] = mc.a
	mc.nsf = false
	return div1
}

func movAM1L(mc *CPU, _ uint16) float64 {
	mc.a = mc.ram[0x10|int(mc.l)]
	mc.nsf = false
	return div1
}

func movM1LA(mc *CPU, _ uint16) float64 {
	mc.ram[0x10|int(mc.l)] = mc.a
	mc.nsf = false
	return div1
}

func movAM0I(mc *CPU, opcode uint16) float64 {
	mc.a = mc.ram[opcode&0x0f]
	mc.cf = false
	mc.nsf = false
	return div1
}

func movM0IA(mc *CPU, opcode uint16) float64 {
	mc.ram[opcode&0x0f] = mc.a
	mc.nsf = false
	return div1
}

func movAM1I(mc *CPU, opcode uint16) float64 {
	mc.a = mc.ram[0x10|int(opcode&0x0f)]
	mc.cf = false
	mc.nsf = false
	return div1
}

func movM1IA(mc *CPU, opcode uint16) float64 {
	mc.ram[0x10|int(opcode&0x0f)] = mc.a
	mc.nsf = false
	return div1
}

func movMHLIncImm(mc *CPU, opcode uint16) float64 {
	mc.ram[mc.hl()] = uint8(opcode & 0x0f)
	l := int(mc.l) + 1
	mc.l = uint8(l & 0x0f)
	mc.nsf = l > 15
	return div1
}

func movMHLImm(mc *CPU, opcode uint16) float64 {
	mc.ram[mc.hl()] = uint8(opcode & 0x0f)
	b := int(mc.b) + 1
	mc.b = uint8(b & 0x0f)
	mc.h = uint8(b & 0x07)
	mc.nsf = b > 15
	return div1
}

// block moves within the current RAM row

func movmSub(mc *CPU, opcode uint16) float64 {
	i := int(opcode & 0x0f)
	count := 16 - int(mc.b)
	for range count {
		mc.ram[int(mc.h)<<4|((int(mc.l)-i)&0x0f)] = mc.ram[mc.hl()]
		mc.l = (mc.l + 1) & 0x0f
	}
	mc.b = uint8((i - 1) & 0x0f)
	mc.cf = false
	mc.nsf = i == 0
	return div3*float64(count-1) + div4
}

func movmAdd(mc *CPU, opcode uint16) float64 {
	i := int(opcode & 0x0f)
	count := 16 - int(mc.b)
	for range count {
		mc.ram[int(mc.h)<<4|((int(mc.l)+i)&0x0f)] = mc.ram[mc.hl()]
		mc.l = (mc.l - 1) & 0x0f
	}
	mc.b = uint8((i - 1) & 0x0f)
	mc.cf = false
	mc.nsf = i == 0
	return div3*float64(count-1) + div4
}

func clearmDec(mc *CPU, _ uint16) float64 {
	count := int(mc.b) + 1
	for range count {
		mc.l = (mc.l - 1) & 0x0f
		mc.ram[mc.hl()] = 0
	}
	mc.a = 0
	mc.b = 15
	mc.cf = false
	mc.nsf = false
	return div1 + div1*float64(count)
}

func clearmInc(mc *CPU, _ uint16) float64 {
	count := int(mc.b) + 1
	for range count {
		mc.l = (mc.l + 1) & 0x0f
		mc.ram[mc.hl()] = 0
	}
	mc.a = 0
	mc.b = 15
	mc.cf = false
	mc.nsf = false
	return div1 + div1*float64(count)
}

// bit operations. bit 3 of the opcode selects between an indexed bit of RAM
// [0..7] and [HL] masked by B

func sbit(mc *CPU, opcode uint16) float64 {
	bb := (opcode >> 4) & 0x03
	if opcode&0x08 == 0x08 {
		hl := mc.hl()
		if bb == 1 {
			mc.ram[hl] |= mc.b
		}
		mc.a = mc.ram[hl]
	} else {
		hl := opcode & 0x07
		mc.ram[hl] |= 1 << bb
		mc.a = mc.ram[hl]
	}
	mc.cf = false
	mc.nsf = false
	return div1
}

func rbit(mc *CPU, opcode uint16) float64 {
	bb := (opcode >> 4) & 0x03
	if opcode&0x08 == 0x08 {
		hl := mc.hl()
		if bb == 1 {
			mc.ram[hl] &^= mc.b
		}
		mc.a = mc.ram[hl]
	} else {
		hl := opcode & 0x07
		mc.ram[hl] &^= 1 << bb
		mc.a = mc.ram[hl]
	}
	mc.cf = false
	mc.nsf = false
	return div1
}

func tbit(mc *CPU, opcode uint16) float64 {
	bb := (opcode >> 4) & 0x03
	if opcode&0x08 == 0x08 {
		if bb == 1 {
			m := mc.ram[mc.hl()]
			mc.nsf = m >= m|mc.b
		} else {
			mc.nsf = true
		}
	} else {
		mc.nsf = (mc.ram[opcode&0x07]>>bb)&0x01 == 0x01
	}
	return div1
}

// prescaler flags are cleared when tested

func tstPX(mc *CPU, _ uint16) float64 {
	mc.nsf = mc.pxf
	mc.pxf = false
	return div1
}

func tstPY(mc *CPU, _ uint16) float64 {
	mc.nsf = mc.pyf
	mc.pyf = false
	return div1
}

func tstPZ(mc *CPU, _ uint16) float64 {
	mc.nsf = mc.pzf
	mc.pzf = false
	return div1
}

// input and output

func inAIP(mc *CPU, _ uint16) float64 {
	mc.a = mc.inp
	mc.cf = false
	mc.nsf = false
	return div1
}

func inAIOP(mc *CPU, _ uint16) float64 {
	mc.a = mc.iop
	mc.cf = false
	mc.nsf = false
	return div1
}

func outOUTPImm(mc *CPU, opcode uint16) float64 {
	mc.a = uint8(opcode & 0x0f)
	mc.setOut("OUTP", mc.a)
	mc.cf = false
	mc.nsf = false
	return div1
}

func outIOPImm(mc *CPU, opcode uint16) float64 {
	mc.a = uint8(opcode & 0x0f)
	mc.setOut("IOP", mc.a)
	mc.cf = false
	mc.nsf = false
	return div1
}

func outBZ(level uint8) Instruction {
	return func(mc *CPU, _ uint16) float64 {
		mc.bz = level
		mc.sound.Toggle(mc.soundGnd^mc.bz != 0, false, mc.cycles)
		mc.nsf = false
		return div1
	}
}

// LCD

func scan(on bool) Instruction {
	return func(mc *CPU, _ uint16) float64 {
		mc.scan = on
		mc.nsf = false
		return div1
	}
}

// stall until the start of the next frame. the segment RAM is blanked if
// scanning is off
func waitFrame(mc *CPU, _ uint16) float64 {
	if !mc.scan {
		for i := range mc.gram {
			mc.gram[i] = 0x0f
		}
	}
	mc.gramOffset = 0
	mc.nsf = false
	return mc.frameDiv - math.Mod(mc.cycles, mc.frameDiv)
}

// stall until the next common line
func waitCom(mc *CPU, _ uint16) float64 {
	mc.gramOffset = (mc.gramOffset + segCount/4) % gramSize
	mc.nsf = false
	return mc.comDiv - math.Mod(mc.cycles, mc.comDiv)
}

// copy a run of RAM from [HL] downwards into segment RAM
func outm(mc *CPU, opcode uint16) float64 {
	count := int(mc.l) - int(opcode&0x0f) + 2
	if count <= 0 {
		count = 1
	}

	for range count {
		mc.gram[mc.gramOffset] = mc.ram[mc.hl()]
		mc.gramOffset = (mc.gramOffset + 1) % gramSize
		mc.l = (mc.l - 1) & 0x0f
	}

	mc.a = (mc.a + 1) & 0x0f
	mc.h = mc.a & 0x07
	mc.l = 0x0f
	mc.cf = mc.a == 0
	mc.nsf = mc.cf
	return div4 + div1*float64(count-1)
}

// clock source

func osc(sub bool) Instruction {
	return func(mc *CPU, _ uint16) float64 {
		mc.subClock = sub
		mc.nsf = false
		return div1
	}
}

func delay(mc *CPU, opcode uint16) float64 {
	d := div1 + div0*float64(15-int(mc.l))
	mc.l = uint8(opcode & 0x0f)
	mc.nsf = false
	return d
}

// immediate loads

func movLImm(mc *CPU, opcode uint16) float64 {
	mc.l = uint8(opcode & 0x0f)
	mc.nsf = false
	return div1
}

func movBImm(mc *CPU, opcode uint16) float64 {
	mc.b = uint8(opcode & 0x0f)
	mc.nsf = false
	return div1
}

func movHImm(mc *CPU, opcode uint16) float64 {
	mc.h = uint8(opcode & 0x07)
	mc.nsf = false
	return div1
}

func movAImm(mc *CPU, opcode uint16) float64 {
	mc.a = uint8(opcode & 0x0f)
	mc.cf = false
	mc.nsf = false
	return div1
}

// program flow. there are two levels of subroutine and the return addresses
// are stored in RAM

func call(level int, page uint16) Instruction {
	base := 0x70 + level*3
	return func(mc *CPU, opcode uint16) float64 {
		mc.ram[base] = uint8(mc.pc>>8) & 0x0f
		mc.ram[base+1] = uint8(mc.pc>>4) & 0x0f
		mc.ram[base+2] = uint8(mc.pc) & 0x0f
		mc.pc = (opcode&0xc0)<<4 | page | opcode&0x0f
		mc.l = 0
		mc.nsf = false
		return div4
	}
}

func ret(level int) Instruction {
	base := 0x70 + level*3
	return func(mc *CPU, _ uint16) float64 {
		mc.pc = uint16(mc.ram[base])<<8 | uint16(mc.ram[base+1])<<4 | uint16(mc.ram[base+2])
		mc.l = 0
		mc.nsf = false
		return div4
	}
}

// the high byte of the next branch. ignored if the skip flag is set
func movPCHImm(mc *CPU, opcode uint16) float64 {
	if !mc.nsf {
		mc.pchtmp = int(opcode & 0x0f)
	}
	return div1
}

// branch if the skip flag is not set
func bsImm(mc *CPU, opcode uint16) float64 {
	if !mc.nsf {
		if mc.pchtmp >= 0 {
			mc.pc = uint16(mc.pchtmp)<<8 | opcode&0xff
		} else {
			mc.pc = mc.pc&0xf00 | opcode&0xff
		}
	}
	mc.pchtmp = -1
	mc.nsf = false
	return div1
}

// execute the following instruction and then the instruction at the address
// formed from CF and A, all in one step. the target address is decided
// before either instruction is executed
func exeCFA(mc *CPU, _ uint16) float64 {
	addr := int((mc.pc&0xfe0)|uint16(bit(mc.cf))<<4|uint16(mc.a)) << 1

	cycles := mc.execute(mc.rom.Word(int(mc.pc) << 1))
	mc.pc = (mc.pc & 0xf00) | ((mc.pc + 1) & 0xff)
	cycles += mc.execute(mc.rom.Word(addr))

	return cycles + div4
}
