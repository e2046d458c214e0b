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

// definition of an opcode. bytes is the length of the instruction including
// the opcode byte
type definition struct {
	mnemonic string
	bytes    int
	fn       Instruction
}

var instructionTable = buildTable()

func buildTable() [256]definition {
	var t [256]definition

	for i := range t {
		t[i] = definition{mnemonic: "???", bytes: 1, fn: unknown}
	}

	for _, d := range []struct {
		opcode uint8
		definition
	}{
		{0x05, definition{"ORA zp", 2, oraZP}},
		{0x09, definition{"ORA #", 2, oraImm}},
		{0x10, definition{"BPL", 2, bpl}},
		{0x18, definition{"CLC", 1, clc}},
		{0x20, definition{"JSR abs", 3, jsrAbs}},
		{0x25, definition{"AND zp", 2, andZP}},
		{0x26, definition{"ROL zp", 2, rolZP}},
		{0x29, definition{"AND #", 2, andImm}},
		{0x2a, definition{"ROL A", 1, rolA}},
		{0x30, definition{"BMI", 2, bmi}},
		{0x38, definition{"SEC", 1, sec}},
		{0x40, definition{"RTI", 1, rti}},
		{0x48, definition{"PHA", 1, pha}},
		{0x49, definition{"EOR #", 2, eorImm}},
		{0x4c, definition{"JMP abs", 3, jmpAbs}},
		{0x60, definition{"RTS", 1, rts}},
		{0x65, definition{"ADC zp", 2, adcZP}},
		{0x68, definition{"PLA", 1, pla}},
		{0x69, definition{"ADC #", 2, adcImm}},
		{0x6a, definition{"ROR A", 1, rorA}},
		{0x78, definition{"SEI", 1, sei}},
		{0x81, definition{"STA (zp,X)", 2, staIndX}},
		{0x85, definition{"STA zp", 2, staZP}},
		{0x86, definition{"STX zp", 2, stxZP}},
		{0x8a, definition{"TXA", 1, txa}},
		{0x90, definition{"BCC", 2, bcc}},
		{0x95, definition{"STA zp,X", 2, staZPX}},
		{0x9a, definition{"TXS", 1, txs}},
		{0xa1, definition{"LDA (zp,X)", 2, ldaIndX}},
		{0xa2, definition{"LDX #", 2, ldxImm}},
		{0xa5, definition{"LDA zp", 2, ldaZP}},
		{0xa6, definition{"LDX zp", 2, ldxZP}},
		{0xa9, definition{"LDA #", 2, ldaImm}},
		{0xaa, definition{"TAX", 1, tax}},
		{0xb0, definition{"BCS", 2, bcs}},
		{0xbd, definition{"LDA abs,X", 3, ldaAbsX}},
		{0xc5, definition{"CMP zp", 2, cmpZP}},
		{0xc6, definition{"DEC zp", 2, decZP}},
		{0xc9, definition{"CMP #", 2, cmpImm}},
		{0xca, definition{"DEX", 1, dex}},
		{0xd0, definition{"BNE", 2, bne}},
		{0xe0, definition{"CPX #", 2, cpxImm}},
		{0xe4, definition{"CPX zp", 2, cpxZP}},
		{0xe5, definition{"SBC zp", 2, sbcZP}},
		{0xe6, definition{"INC zp", 2, incZP}},
		{0xe8, definition{"INX", 1, inx}},
		{0xe9, definition{"SBC #", 2, sbcImm}},
		{0xea, definition{"NOP", 1, nop}},
		{0xf0, definition{"BEQ", 2, beq}},
	} {
		t[d.opcode] = d.definition
	}

	return t
}
