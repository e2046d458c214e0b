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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbrick/hardware/cpu/registers"
)

// State is a snapshot of the CPU.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.StatusRegister

	// mnemonic of the instruction at PC
	Next string

	ROSC bool
	CPU  bool

	SysCtrl  uint8
	IntCfg   uint8
	IREQ     uint8
	TC       uint8
	TCPreset uint8
	PA       uint8

	RAM []uint8
	LCD []uint8
}

// Examine returns a snapshot of the CPU state. Unlike a read by the CPU,
// examining the state does not acknowledge interrupt requests.
func (mc *CPU) Examine() State {
	s := State{
		PC:       mc.pc,
		A:        mc.a.Value(),
		X:        mc.x.Value(),
		Y:        mc.y.Value(),
		SP:       mc.sp,
		Status:   mc.status,
		Next:     instructionTable[mc.rom.Byte(int(mc.pc)-mc.romOffset)].mnemonic,
		ROSC:     mc.roscEnabled,
		CPU:      mc.cpuEnabled,
		SysCtrl:  mc.mem.sysCtrl,
		IntCfg:   mc.mem.intCfg,
		IREQ:     mc.mem.ireq,
		TC:       mc.mem.tc,
		TCPreset: mc.mem.tcPreset,
		PA:       mc.portRead(),
		RAM:      make([]uint8, ramSize),
		LCD:      make([]uint8, lcdSize),
	}
	copy(s.RAM, mc.mem.ram[:])
	copy(s.LCD, mc.mem.lcd[:])
	return s
}

func (s State) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x %s next: %s\n",
		s.PC, s.A, s.X, s.Y, s.SP, s.Status, s.Next))
	b.WriteString(fmt.Sprintf("ROSC=%d CPU=%d SYS=%02x INT=%02x IREQ=%02x TC=%02x/%02x PA=%02x\n",
		bit(s.ROSC), bit(s.CPU), s.SysCtrl, s.IntCfg, s.IREQ, s.TC, s.TCPreset, s.PA))

	for row := 0; row < len(s.RAM); row += 16 {
		b.WriteString(fmt.Sprintf("%02x:", ramOrigin+row))
		for _, v := range s.RAM[row : row+16] {
			b.WriteString(fmt.Sprintf(" %02x", v))
		}
		b.WriteString("\n")
	}

	return b.String()
}
