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

import (
	"fmt"
	"strings"
)

// PortState is the level of a single port at the time of Examine().
type PortState struct {
	Name  string
	Level uint8
}

// State is a snapshot of the CPU.
type State struct {
	ACC  uint8
	PC   uint16
	ST   uint16
	TC   uint8
	CF   bool
	EF   bool
	TF   bool
	EI   bool
	HALT bool
	WR   [5]uint8

	// in the order they appear in the profile
	Ports []PortState

	RAM []uint8
}

// Examine returns a snapshot of the CPU state.
func (mc *CPU) Examine() State {
	s := State{
		ACC:  mc.acc,
		PC:   mc.pc & 0xfff,
		ST:   mc.stack,
		TC:   mc.tc,
		CF:   mc.cf,
		EF:   mc.ef,
		TF:   mc.tf,
		EI:   mc.ei,
		HALT: mc.halt,
		WR:   mc.wr,
		RAM:  make([]uint8, ramSize),
	}
	copy(s.RAM, mc.ram[:])

	for _, p := range mc.profile.Ports {
		s.Ports = append(s.Ports, PortState{Name: p.Name, Level: mc.ports[p.Name].level})
	}

	return s
}

// Port returns the level of the named port. Returns false if the port does
// not exist.
func (s State) Port(name string) (uint8, bool) {
	for _, p := range s.Ports {
		if p.Name == name {
			return p.Level, true
		}
	}
	return 0, false
}

func (s State) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ACC=%x PC=%03x ST=%04x TC=%02x CF=%d EF=%d TF=%d EI=%d HALT=%d\n",
		s.ACC, s.PC, s.ST, s.TC, bit(s.CF), bit(s.EF), bit(s.TF), bit(s.EI), bit(s.HALT)))

	for i, r := range s.WR {
		b.WriteString(fmt.Sprintf("WR%d=%x ", i, r))
	}
	b.WriteString("\n")

	for _, p := range s.Ports {
		b.WriteString(fmt.Sprintf("%s=%02x ", p.Name, p.Level))
	}
	b.WriteString("\n")

	for row := 0; row < len(s.RAM); row += 16 {
		b.WriteString(fmt.Sprintf("%02x:", row))
		for _, v := range s.RAM[row : row+16] {
			b.WriteString(fmt.Sprintf(" %x", v))
		}
		b.WriteString("\n")
	}

	return b.String()
}
