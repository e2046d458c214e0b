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

package splb20

import (
	"github.com/jetsetilly/gopherbrick/logger"
)

// addressing modes. the opcode byte itself is always the most significant
// byte of the opcode argument

func zeroPage(opcode uint32) int {
	return int(opcode & 0xff)
}

func immediate(opcode uint32) uint8 {
	return uint8(opcode)
}

// absolute addresses are stored little-endian
func absolute(opcode uint32) int {
	return int((opcode>>8)&0xff | (opcode&0xff)<<8)
}

func (mc *CPU) zeroPageX(opcode uint32) int {
	return (int(opcode&0xff) + int(mc.x.Value())) & 0xff
}

// the pointer is read from the zero page and wraps within it
func (mc *CPU) indexedIndirect(opcode uint32) int {
	i := mc.zeroPageX(opcode)
	return int(mc.read(i)) | int(mc.read((i+1)&0xff))<<8
}

// taken branches cost an extra cycle if the destination is on a different page
func (mc *CPU) branch(opcode uint32, cond bool) float64 {
	if !cond {
		return 2
	}
	prev := mc.pc
	mc.pc = uint16(int(mc.pc) + int(int8(opcode)))
	if mc.pc^prev > 0xff {
		return 4
	}
	return 3
}

func unknown(mc *CPU, opcode uint32) float64 {
	op := uint8(opcode)
	if !mc.unknown[op] {
		mc.unknown[op] = true
		logger.Logf(logger.Allow, "SPLB20", "unknown opcode %#02x at %#04x", op, mc.pc-1)
	}
	return 2
}

func nop(_ *CPU, _ uint32) float64 {
	return 2
}

// logic

func oraZP(mc *CPU, opcode uint32) float64 {
	mc.a.ORA(mc.read(zeroPage(opcode)))
	mc.status.SetNZ(mc.a.Value())
	return 3
}

func oraImm(mc *CPU, opcode uint32) float64 {
	mc.a.ORA(immediate(opcode))
	mc.status.SetNZ(mc.a.Value())
	return 2
}

func andZP(mc *CPU, opcode uint32) float64 {
	mc.a.AND(mc.read(zeroPage(opcode)))
	mc.status.SetNZ(mc.a.Value())
	return 3
}

func andImm(mc *CPU, opcode uint32) float64 {
	mc.a.AND(immediate(opcode))
	mc.status.SetNZ(mc.a.Value())
	return 2
}

func eorImm(mc *CPU, opcode uint32) float64 {
	mc.a.EOR(immediate(opcode))
	mc.status.SetNZ(mc.a.Value())
	return 2
}

// shifts

func rolZP(mc *CPU, opcode uint32) float64 {
	addr := zeroPage(opcode)
	v := int(mc.read(addr))<<1 | int(bit(mc.status.Carry))
	mc.write(addr, uint8(v))
	mc.status.SetNZ(uint8(v))
	mc.status.Carry = v > 0xff
	return 5
}

func rolA(mc *CPU, _ uint32) float64 {
	mc.status.Carry = mc.a.ROL(mc.status.Carry)
	mc.status.SetNZ(mc.a.Value())
	return 2
}

func rorA(mc *CPU, _ uint32) float64 {
	mc.status.Carry = mc.a.ROR(mc.status.Carry)
	mc.status.SetNZ(mc.a.Value())
	return 2
}

// arithmetic

func adcZP(mc *CPU, opcode uint32) float64 {
	mc.a.AddWithCarry(mc.read(zeroPage(opcode)), &mc.status)
	return 3
}

func adcImm(mc *CPU, opcode uint32) float64 {
	mc.a.AddWithCarry(immediate(opcode), &mc.status)
	return 2
}

func sbcZP(mc *CPU, opcode uint32) float64 {
	mc.a.SubtractWithCarry(mc.read(zeroPage(opcode)), &mc.status)
	return 3
}

func sbcImm(mc *CPU, opcode uint32) float64 {
	mc.a.SubtractWithCarry(immediate(opcode), &mc.status)
	return 2
}

func cmpZP(mc *CPU, opcode uint32) float64 {
	mc.a.Compare(mc.read(zeroPage(opcode)), &mc.status)
	return 3
}

func cmpImm(mc *CPU, opcode uint32) float64 {
	mc.a.Compare(immediate(opcode), &mc.status)
	return 2
}

func cpxZP(mc *CPU, opcode uint32) float64 {
	mc.x.Compare(mc.read(zeroPage(opcode)), &mc.status)
	return 3
}

func cpxImm(mc *CPU, opcode uint32) float64 {
	mc.x.Compare(immediate(opcode), &mc.status)
	return 2
}

func decZP(mc *CPU, opcode uint32) float64 {
	addr := zeroPage(opcode)
	v := mc.read(addr) - 1
	mc.write(addr, v)
	mc.status.SetNZ(v)
	return 5
}

func incZP(mc *CPU, opcode uint32) float64 {
	addr := zeroPage(opcode)
	v := mc.read(addr) + 1
	mc.write(addr, v)
	mc.status.SetNZ(v)
	return 5
}

func dex(mc *CPU, _ uint32) float64 {
	mc.x.Decrement()
	mc.status.SetNZ(mc.x.Value())
	return 2
}

func inx(mc *CPU, _ uint32) float64 {
	mc.x.Increment()
	mc.status.SetNZ(mc.x.Value())
	return 2
}

// flags

func clc(mc *CPU, _ uint32) float64 {
	mc.status.Carry = false
	return 2
}

func sec(mc *CPU, _ uint32) float64 {
	mc.status.Carry = true
	return 2
}

func sei(mc *CPU, _ uint32) float64 {
	mc.status.InterruptDisable = true
	return 2
}

// loads and stores

func ldaIndX(mc *CPU, opcode uint32) float64 {
	mc.a.Load(mc.read(mc.indexedIndirect(opcode)))
	mc.status.SetNZ(mc.a.Value())
	return 6
}

func ldaZP(mc *CPU, opcode uint32) float64 {
	mc.a.Load(mc.read(zeroPage(opcode)))
	mc.status.SetNZ(mc.a.Value())
	return 3
}

func ldaImm(mc *CPU, opcode uint32) float64 {
	mc.a.Load(immediate(opcode))
	mc.status.SetNZ(mc.a.Value())
	return 2
}

// the page crossing penalty compares the effective address with PC
func ldaAbsX(mc *CPU, opcode uint32) float64 {
	addr := (absolute(opcode) + int(mc.x.Value())) & 0xffff
	mc.a.Load(mc.read(addr))
	mc.status.SetNZ(mc.a.Value())
	if int(mc.pc)^addr > 0xff {
		return 5
	}
	return 4
}

func ldxImm(mc *CPU, opcode uint32) float64 {
	mc.x.Load(immediate(opcode))
	mc.status.SetNZ(mc.x.Value())
	return 2
}

func ldxZP(mc *CPU, opcode uint32) float64 {
	mc.x.Load(mc.read(zeroPage(opcode)))
	mc.status.SetNZ(mc.x.Value())
	return 3
}

func staIndX(mc *CPU, opcode uint32) float64 {
	mc.write(mc.indexedIndirect(opcode), mc.a.Value())
	return 6
}

func staZP(mc *CPU, opcode uint32) float64 {
	mc.write(zeroPage(opcode), mc.a.Value())
	return 3
}

func staZPX(mc *CPU, opcode uint32) float64 {
	mc.write(mc.zeroPageX(opcode), mc.a.Value())
	return 4
}

func stxZP(mc *CPU, opcode uint32) float64 {
	mc.write(zeroPage(opcode), mc.x.Value())
	return 3
}

// transfers

func tax(mc *CPU, _ uint32) float64 {
	mc.x.Load(mc.a.Value())
	mc.status.SetNZ(mc.x.Value())
	return 2
}

func txa(mc *CPU, _ uint32) float64 {
	mc.a.Load(mc.x.Value())
	mc.status.SetNZ(mc.a.Value())
	return 2
}

func txs(mc *CPU, _ uint32) float64 {
	mc.sp = mc.x.Value()
	return 2
}

// stack

func pha(mc *CPU, _ uint32) float64 {
	mc.push(mc.a.Value())
	return 3
}

func pla(mc *CPU, _ uint32) float64 {
	mc.a.Load(mc.pull())
	mc.status.SetNZ(mc.a.Value())
	return 4
}

// program flow

func jmpAbs(mc *CPU, opcode uint32) float64 {
	mc.pc = uint16(absolute(opcode))
	return 3
}

// the return address pushed by JSR is the address of the last byte of the
// instruction
func jsrAbs(mc *CPU, opcode uint32) float64 {
	ret := mc.pc - 1
	mc.push(uint8(ret >> 8))
	mc.push(uint8(ret))
	mc.pc = uint16(absolute(opcode))
	return 6
}

func rts(mc *CPU, _ uint32) float64 {
	lo := uint16(mc.pull())
	hi := uint16(mc.pull())
	mc.pc = (hi<<8 | lo) + 1
	return 6
}

func rti(mc *CPU, _ uint32) float64 {
	mc.status.FromValue(mc.pull())
	lo := uint16(mc.pull())
	hi := uint16(mc.pull())
	mc.pc = hi<<8 | lo
	return 6
}

func bpl(mc *CPU, opcode uint32) float64 {
	return mc.branch(opcode, !mc.status.Sign)
}

func bmi(mc *CPU, opcode uint32) float64 {
	return mc.branch(opcode, mc.status.Sign)
}

func bcc(mc *CPU, opcode uint32) float64 {
	return mc.branch(opcode, !mc.status.Carry)
}

func bcs(mc *CPU, opcode uint32) float64 {
	return mc.branch(opcode, mc.status.Carry)
}

func bne(mc *CPU, opcode uint32) float64 {
	return mc.branch(opcode, !mc.status.Zero)
}

func beq(mc *CPU, opcode uint32) float64 {
	return mc.branch(opcode, mc.status.Zero)
}

// bit converts a flag to a value of 0 or 1
func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
