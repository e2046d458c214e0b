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

// carry is set when the unmasked result is larger than a nibble
func (mc *CPU) addACC(v uint8) {
	r := mc.acc + v
	mc.cf = r > 15
	mc.acc = r & 0x0f
}

// rotates

func rrA(mc *CPU, _ uint8) int {
	mc.cf = mc.acc&0x01 == 0x01
	mc.acc = bit(mc.cf)<<3 | mc.acc>>1
	mc.pc++
	return 4
}

func rlA(mc *CPU, _ uint8) int {
	mc.cf = mc.acc>>3 == 0x01
	mc.acc = bit(mc.cf) | (mc.acc<<1)&0x0f
	mc.pc++
	return 4
}

func rrcA(mc *CPU, _ uint8) int {
	n := mc.acc&0x01 == 0x01
	mc.acc = bit(mc.cf)<<3 | mc.acc>>1
	mc.cf = n
	mc.pc++
	return 4
}

func rlcA(mc *CPU, _ uint8) int {
	n := mc.acc>>3 == 0x01
	mc.acc = bit(mc.cf) | (mc.acc<<1)&0x0f
	mc.cf = n
	mc.pc++
	return 4
}

// RAM transfer. the rp argument is the first register of the pair

func movAM(rp int) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.acc = mc.readRAM(rp)
		mc.pc++
		return 4
	}
}

func movMA(rp int) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.writeRAM(rp, mc.acc)
		mc.pc++
		return 4
	}
}

func incM(rp int) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.writeRAM(rp, mc.readRAM(rp)+1)
		mc.pc++
		return 4
	}
}

func decM(rp int) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.writeRAM(rp, mc.readRAM(rp)-1)
		mc.pc++
		return 4
	}
}

// arithmetic with [R1R0]

func adcAM(mc *CPU, _ uint8) int {
	mc.addACC(mc.readRAM(0) + bit(mc.cf))
	mc.pc++
	return 4
}

func addAM(mc *CPU, _ uint8) int {
	mc.addACC(mc.readRAM(0))
	mc.pc++
	return 4
}

func sbcAM(mc *CPU, _ uint8) int {
	mc.addACC(^mc.readRAM(0)&0x0f + bit(mc.cf))
	mc.pc++
	return 4
}

func subAM(mc *CPU, _ uint8) int {
	mc.addACC(^mc.readRAM(0)&0x0f + 1)
	mc.pc++
	return 4
}

// working registers. the register index is encoded in the opcode

func incRn(mc *CPU, opcode uint8) int {
	i := (opcode >> 1) & 0x07
	mc.wr[i] = (mc.wr[i] + 1) & 0x0f
	mc.pc++
	return 4
}

func decRn(mc *CPU, opcode uint8) int {
	i := (opcode >> 1) & 0x07
	mc.wr[i] = (mc.wr[i] - 1) & 0x0f
	mc.pc++
	return 4
}

func movRnA(mc *CPU, opcode uint8) int {
	mc.wr[(opcode>>1)&0x07] = mc.acc
	mc.pc++
	return 4
}

func movARn(mc *CPU, opcode uint8) int {
	mc.acc = mc.wr[(opcode>>1)&0x07]
	mc.pc++
	return 4
}

// logic

func andAM(mc *CPU, _ uint8) int {
	mc.acc &= mc.readRAM(0)
	mc.pc++
	return 4
}

func xorAM(mc *CPU, _ uint8) int {
	mc.acc ^= mc.readRAM(0)
	mc.pc++
	return 4
}

func orAM(mc *CPU, _ uint8) int {
	mc.acc |= mc.readRAM(0)
	mc.pc++
	return 4
}

func andMA(mc *CPU, _ uint8) int {
	mc.writeRAM(0, mc.readRAM(0)&mc.acc)
	mc.pc++
	return 4
}

func xorMA(mc *CPU, _ uint8) int {
	mc.writeRAM(0, mc.readRAM(0)^mc.acc)
	mc.pc++
	return 4
}

func orMA(mc *CPU, _ uint8) int {
	mc.writeRAM(0, mc.readRAM(0)|mc.acc)
	mc.pc++
	return 4
}

// flags, interrupts and subroutines

func clc(mc *CPU, _ uint8) int {
	mc.cf = false
	mc.pc++
	return 4
}

func stc(mc *CPU, _ uint8) int {
	mc.cf = true
	mc.pc++
	return 4
}

func ei(mc *CPU, _ uint8) int {
	mc.ei = true
	mc.pc++
	return 4
}

func di(mc *CPU, _ uint8) int {
	mc.ei = false
	mc.pc++
	return 4
}

func ret(mc *CPU, _ uint8) int {
	mc.pc = (mc.pc & 0xf000) | (mc.stack & 0xfff)
	mc.stack = 0
	return 4
}

func reti(mc *CPU, _ uint8) int {
	mc.pc = (mc.pc & 0xf000) | (mc.stack & 0xfff)
	mc.cf = mc.stack>>12 == 0x01
	mc.stack = 0
	return 4
}

// accumulator

func incA(mc *CPU, _ uint8) int {
	mc.acc = (mc.acc + 1) & 0x0f
	mc.pc++
	return 4
}

func decA(mc *CPU, _ uint8) int {
	mc.acc = (mc.acc - 1) & 0x0f
	mc.pc++
	return 4
}

func daa(mc *CPU, _ uint8) int {
	if mc.acc > 9 || mc.cf {
		mc.acc = (mc.acc + 6) & 0x0f
		mc.cf = true
	}
	mc.pc++
	return 4
}

func nop(mc *CPU, _ uint8) int {
	mc.pc++
	return 4
}

func halt(mc *CPU, _ uint8) int {
	mc.pc += 2
	mc.halt = true
	mc.ef = false
	mc.sound.Off()
	return 8
}

// timer

func timerOn(mc *CPU, _ uint8) int {
	mc.timerOn = true
	mc.pc++
	return 4
}

func timerOff(mc *CPU, _ uint8) int {
	mc.timerOn = false
	mc.pc++
	return 4
}

func movATmrL(mc *CPU, _ uint8) int {
	mc.acc = mc.tc & 0x0f
	mc.pc++
	return 4
}

func movATmrH(mc *CPU, _ uint8) int {
	mc.acc = (mc.tc >> 4) & 0x0f
	mc.pc++
	return 4
}

func movTmrLA(mc *CPU, _ uint8) int {
	mc.tc = (mc.tc & 0xf0) | mc.acc
	mc.pc++
	return 4
}

func movTmrHA(mc *CPU, _ uint8) int {
	mc.tc = (mc.tc & 0x0f) | mc.acc<<4
	mc.pc++
	return 4
}

func timerXX(mc *CPU, _ uint8) int {
	mc.tc = mc.operand()
	mc.pc += 2
	return 8
}

// immediates

func addAX(mc *CPU, _ uint8) int {
	mc.addACC(mc.operand() & 0x0f)
	mc.pc += 2
	return 8
}

func subAX(mc *CPU, _ uint8) int {
	mc.addACC(^mc.operand()&0x0f + 1)
	mc.pc += 2
	return 8
}

func andAX(mc *CPU, _ uint8) int {
	mc.acc &= mc.operand() & 0x0f
	mc.pc += 2
	return 8
}

func xorAX(mc *CPU, _ uint8) int {
	mc.acc ^= mc.operand() & 0x0f
	mc.pc += 2
	return 8
}

func orAX(mc *CPU, _ uint8) int {
	mc.acc |= mc.operand() & 0x0f
	mc.pc += 2
	return 8
}

func movR4X(mc *CPU, _ uint8) int {
	mc.wr[4] = mc.operand() & 0x0f
	mc.pc += 2
	return 8
}

func movR1R0XX(mc *CPU, opcode uint8) int {
	mc.wr[0] = opcode & 0x0f
	mc.wr[1] = mc.operand() & 0x0f
	mc.pc += 2
	return 8
}

func movR3R2XX(mc *CPU, opcode uint8) int {
	mc.wr[2] = opcode & 0x0f
	mc.wr[3] = mc.operand() & 0x0f
	mc.pc += 2
	return 8
}

func movAX(mc *CPU, opcode uint8) int {
	mc.acc = opcode & 0x0f
	mc.pc++
	return 4
}

// sound

func soundN(mc *CPU, _ uint8) int {
	mc.sound.Channel(mc.operand() & 0x0f)
	mc.pc += 2
	return 8
}

func soundA(mc *CPU, _ uint8) int {
	mc.sound.Channel(mc.acc)
	mc.pc++
	return 4
}

func soundOne(mc *CPU, _ uint8) int {
	mc.sound.OneShot()
	mc.pc++
	return 4
}

func soundLoop(mc *CPU, _ uint8) int {
	mc.sound.Loop()
	mc.pc++
	return 4
}

func soundOff(mc *CPU, _ uint8) int {
	mc.sound.Off()
	mc.pc++
	return 4
}

// table reads. the low nibble of the byte read goes to the accumulator and
// the high nibble goes to either R4 or [R1R0]. the fixed variants read from
// the last page of the current bank

func (mc *CPU) tableAddr(fixed bool, low uint8) int {
	var page int
	if fixed {
		page = int(mc.pc&0xf000) | 0xf00
	} else {
		page = int(mc.pc & 0xff00)
	}
	return page | int(mc.acc)<<4 | int(low)
}

func readR4A(fixed bool) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.pc++
		b := mc.rom.Byte(mc.tableAddr(fixed, mc.readRAM(0)))
		mc.acc = b & 0x0f
		mc.wr[4] = (b >> 4) & 0x0f
		return 8
	}
}

func readMR0A(fixed bool) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.pc++
		b := mc.rom.Byte(mc.tableAddr(fixed, mc.wr[4]))
		mc.acc = b & 0x0f
		mc.writeRAM(0, (b>>4)&0x0f)
		return 8
	}
}

// jumps. conditional jumps are restricted to the current 2K page

func jumpIf(cond func(mc *CPU, opcode uint8) bool) Instruction {
	return func(mc *CPU, opcode uint8) int {
		al := uint16(mc.operand())
		mc.pc += 2
		if cond(mc, opcode) {
			mc.pc = (mc.pc & 0xf800) | uint16(opcode&0x07)<<8 | al
		}
		return 8
	}
}

var (
	jan = jumpIf(func(mc *CPU, opcode uint8) bool {
		return mc.acc&(1<<((opcode>>3)&0x03)) != 0
	})
	jnzR0 = jumpIf(func(mc *CPU, _ uint8) bool { return mc.wr[0] != 0 })
	jnzR1 = jumpIf(func(mc *CPU, _ uint8) bool { return mc.wr[1] != 0 })
	jzA   = jumpIf(func(mc *CPU, _ uint8) bool { return mc.acc == 0 })
	jnzA  = jumpIf(func(mc *CPU, _ uint8) bool { return mc.acc != 0 })
	jc    = jumpIf(func(mc *CPU, _ uint8) bool { return mc.cf })
	jnc   = jumpIf(func(mc *CPU, _ uint8) bool { return !mc.cf })
	jnzR4 = jumpIf(func(mc *CPU, _ uint8) bool { return mc.wr[4] != 0 })

	// the timer flag is cleared when the jump is taken
	jtmr = jumpIf(func(mc *CPU, _ uint8) bool {
		if mc.tf {
			mc.tf = false
			return true
		}
		return false
	})
)

func jmp(mc *CPU, opcode uint8) int {
	mc.pc = (mc.pc & 0xf000) | uint16(opcode&0x0f)<<8 | uint16(mc.operand())
	return 8
}

func call(mc *CPU, opcode uint8) int {
	mc.stack = (mc.pc + 2) & 0xfff
	return jmp(mc, opcode)
}

// port I/O used by profiles

func inPort(name string) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.acc = mc.ports[name].level & 0x0f
		mc.pc++
		return 4
	}
}

func outPort(name string) Instruction {
	return func(mc *CPU, _ uint8) int {
		mc.ports[name].level = mc.acc
		mc.pc++
		return 4
	}
}
