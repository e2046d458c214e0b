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
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
)

// HT943 returns the profile for the HT943 chip. The pull-up and wakeup masks
// of the input ports are taken from the mask options.
//
// Ports PP, PS and PM are inputs. Port PA is an output latch.
func HT943(mask device.MaskOptions) Profile {
	input := func(name string) PortSpec {
		return PortSpec{
			Name:   name,
			Pullup: mask.PortPullup[name],
			Wakeup: mask.PortWakeup[name],
		}
	}

	return Profile{
		Name: "HT943",
		Ports: []PortSpec{
			input("PP"),
			input("PS"),
			input("PM"),
			{Name: "PA", Output: true},
		},
		Overrides: []Override{
			{Opcode: 0x30, Handlers: []Instruction{outPort("PA")}},
			{Opcode: 0x32, Handlers: []Instruction{inPort("PM"), inPort("PS"), inPort("PP")}},
		},
	}
}

// NewHT943 creates a CPU with the HT943 profile.
func NewHT943(cfg *device.Config, gen tone.Generator, rom []uint8, srom []uint8) (*CPU, error) {
	return NewCPU(HT943(cfg.Mask), cfg, gen, rom, srom)
}
