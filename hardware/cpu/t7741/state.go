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

import (
	"fmt"
	"strings"
)

// State is a snapshot of the CPU.
type State struct {
	PC  uint16
	A   uint8
	B   uint8
	H   uint8
	L   uint8
	CF  bool
	NSF bool
	PXF bool
	PYF bool
	PZF bool

	INP  uint8
	IOP  uint8
	OUTP uint8
	BZ   uint8

	Halt     bool
	Scan     bool
	SubClock bool

	RAM  []uint8
	GRAM []uint8
}

// Examine returns a snapshot of the CPU state.
func (mc *CPU) Examine() State {
	s := State{
		PC:       mc.pc & 0xfff,
		A:        mc.a,
		B:        mc.b,
		H:        mc.h,
		L:        mc.l,
		CF:       mc.cf,
		NSF:      mc.nsf,
		PXF:      mc.pxf,
		PYF:      mc.pyf,
		PZF:      mc.pzf,
		INP:      mc.inp,
		IOP:      mc.iop,
		OUTP:     mc.outp,
		BZ:       mc.bz,
		Halt:     mc.halt,
		Scan:     mc.scan,
		SubClock: mc.subClock,
		RAM:      make([]uint8, ramSize),
		GRAM:     mc.VRAM(),
	}
	copy(s.RAM, mc.ram[:])
	return s
}

func (s State) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("PC=%03x A=%x B=%x H=%x L=%x CF=%d NSF=%d PX=%d PY=%d PZ=%d\n",
		s.PC, s.A, s.B, s.H, s.L, bit(s.CF), bit(s.NSF), bit(s.PXF), bit(s.PYF), bit(s.PZF)))
	b.WriteString(fmt.Sprintf("INP=%x IOP=%x OUTP=%x BZ=%d HALT=%d SCAN=%d OSC=%d\n",
		s.INP, s.IOP, s.OUTP, s.BZ, bit(s.Halt), bit(s.Scan), bit(s.SubClock)))

	for row := 0; row < len(s.RAM); row += 16 {
		b.WriteString(fmt.Sprintf("%02x:", row))
		for _, v := range s.RAM[row : row+16] {
			b.WriteString(fmt.Sprintf(" %x", v))
		}
		b.WriteString("\n")
	}

	b.WriteString("LCD:")
	for _, v := range s.GRAM {
		b.WriteString(fmt.Sprintf(" %x", v))
	}
	b.WriteString("\n")

	return b.String()
}
