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

	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/rom"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/logger"
)

// interrupt vectors are offsets into the current 4K bank
const (
	timerVector    = 4
	externalVector = 8
)

// the number of nibbles in RAM
const ramSize = 256

// the number of cycles consumed by a halted CPU on every call to Clock()
const haltedCycles = 8

// Instruction is the implementation of a single opcode. It returns the
// number of cycles consumed.
type Instruction func(mc *CPU, opcode uint8) int

// PortSpec describes a single port of the chip.
type PortSpec struct {
	Name string

	// pull-up and wakeup masks. ignored for output ports
	Pullup uint8
	Wakeup uint8

	// output ports cannot be driven by PinSet()
	Output bool
}

// Override replaces the base instruction for the opcode with the first
// handler, the following opcode with the second handler, and so on.
type Override struct {
	Opcode   uint8
	Handlers []Instruction
}

// Profile specialises the CPU for a particular chip.
type Profile struct {
	Name      string
	Ports     []PortSpec
	Overrides []Override
}

type port struct {
	spec  PortSpec
	level uint8
}

// CPU is the generic HT4BIT engine.
type CPU struct {
	profile Profile
	rom     *rom.ROM
	sound   *Sound
	table   [256]Instruction

	timerDiv float64

	acc   uint8
	wr    [5]uint8
	pc    uint16
	stack uint16

	cf bool
	ef bool
	tf bool
	ei bool

	halt  bool
	reset bool

	timerOn      bool
	tc           uint8
	timerCounter float64

	instructions int

	ram [ramSize]uint8

	ports map[string]*port
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(profile Profile, cfg *device.Config, gen tone.Generator, romData []uint8, srom []uint8) (*CPU, error) {
	if cfg.Mask.TimerClockDiv <= 0 {
		return nil, fmt.Errorf("%w: timer_clock_div must be greater than zero", device.ErrInvalidConfig)
	}

	r, err := rom.New(romData)
	if err != nil {
		return nil, fmt.Errorf("ht4bit: %w", err)
	}

	snd, err := NewSound(cfg.Clock, cfg.Mask, srom, gen)
	if err != nil {
		return nil, fmt.Errorf("ht4bit: %w", err)
	}

	mc := &CPU{
		profile:  profile,
		rom:      r,
		sound:    snd,
		timerDiv: cfg.Mask.TimerClockDiv,
		table:    baseTable,
		ports:    make(map[string]*port),
	}

	for _, o := range profile.Overrides {
		for i, h := range o.Handlers {
			if idx := int(o.Opcode) + i; idx < len(mc.table) {
				mc.table[idx] = h
			}
		}
	}

	for _, s := range profile.Ports {
		mc.ports[s.Name] = &port{spec: s}
	}

	mc.Reset()

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s PC=%03x ACC=%x", mc.profile.Name, mc.pc&0xfff, mc.acc)
}

// Reset the CPU. Registers, RAM and the timer are cleared, input ports are
// set to their pull-up levels and the sound is stopped.
func (mc *CPU) Reset() {
	mc.acc = 0
	mc.wr = [5]uint8{}
	mc.pc = 0
	mc.stack = 0
	mc.ei = false
	mc.cf = false
	mc.tf = false
	mc.ef = false
	mc.halt = false
	mc.reset = false
	mc.timerOn = false
	mc.tc = 0
	mc.timerCounter = 0
	mc.instructions = 0
	mc.ram = [ramSize]uint8{}

	for _, p := range mc.ports {
		if p.spec.Output {
			p.level = 0
		} else {
			p.level = p.spec.Pullup
		}
	}

	mc.sound.Off()
	mc.sound.OneShot()
}

// Clock executes a single instruction and returns the number of cycles
// consumed.
func (mc *CPU) Clock() float64 {
	if mc.halt && !mc.reset {
		// the sound is off while halted but its timestamps must keep pace
		// with the cycles returned
		mc.sound.Clock(haltedCycles)
		return haltedCycles
	}

	// the external interrupt has priority over the timer interrupt. the
	// stack is only one level deep so an interrupt cannot be taken while a
	// subroutine is active
	if mc.ei && mc.stack == 0 {
		if mc.ef {
			mc.ef = false
			mc.interrupt(externalVector)
		} else if mc.tf {
			mc.tf = false
			mc.interrupt(timerVector)
		}
	}

	opcode := mc.rom.Byte(int(mc.pc))
	cycles := float64(mc.table[opcode](mc, opcode))

	mc.sound.Clock(cycles)

	mc.timerCounter -= cycles
	for mc.timerCounter <= 0 {
		mc.timerCounter += mc.timerDiv
		if mc.timerOn {
			mc.tc++
			if mc.tc == 0 {
				mc.tf = true
			}
		}
	}

	mc.instructions++

	return cycles
}

func (mc *CPU) interrupt(vector uint16) {
	mc.stack = uint16(bit(mc.cf))<<12 | (mc.pc & 0xfff)
	mc.pc = (mc.pc & 0xf000) | vector
}

// Halted returns true if the CPU is halted and not held in reset.
func (mc *CPU) Halted() bool {
	return mc.halt && !mc.reset
}

// Instructions returns the number of instructions executed since the last
// reset.
func (mc *CPU) Instructions() int {
	return mc.instructions
}

// Sound returns the sound sequencer.
func (mc *CPU) Sound() *Sound {
	return mc.sound
}

// PinSet drives the pin of an input port to the specified level. Driving a
// pin covered by the wakeup mask low will wake a halted CPU. The RES port
// resets the CPU and holds it in reset until the pin is released.
func (mc *CPU) PinSet(name string, pin int, level pins.Level) error {
	if name == "RES" {
		mc.Reset()
		mc.reset = true
		logger.Logf(logger.Allow, mc.profile.Name, "reset")
		return nil
	}

	p, err := mc.inputPort(name, pin)
	if err != nil {
		return err
	}

	b := uint8(1) << pin
	p.level = (p.level &^ b) | uint8(level&0x01)<<pin

	if mc.halt && p.spec.Wakeup&b == b && level == pins.Low {
		mc.ef = true
		mc.halt = false
		logger.Logf(logger.Allow, mc.profile.Name, "wakeup from %s", pins.Ref{Port: name, Pin: pin})
	}

	return nil
}

// PinRelease returns the pin of an input port to its pull-up level.
// Releasing the RES port takes the CPU out of reset.
func (mc *CPU) PinRelease(name string, pin int) error {
	if name == "RES" {
		mc.reset = false
		return nil
	}

	p, err := mc.inputPort(name, pin)
	if err != nil {
		return err
	}

	b := uint8(1) << pin
	p.level = (p.level &^ b) | (p.spec.Pullup & b)

	return nil
}

func (mc *CPU) inputPort(name string, pin int) (*port, error) {
	p, ok := mc.ports[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", pins.ErrInvalidPort, name)
	}
	if p.spec.Output {
		return nil, fmt.Errorf("%w: %s is an output port", pins.ErrInvalidPort, name)
	}
	if pin < 0 || pin > 7 {
		return nil, fmt.Errorf("%w: %s", pins.ErrInvalidPort, pins.Ref{Port: name, Pin: pin})
	}
	return p, nil
}

// VRAM returns a copy of RAM. The LCD is driven directly from RAM so this is
// also the state of the display. A halted CPU, or a CPU held in reset, does
// not drive the display and the returned RAM will be all zeros.
func (mc *CPU) VRAM() []uint8 {
	v := make([]uint8, ramSize)
	if mc.halt || mc.reset {
		return v
	}
	copy(v, mc.ram[:])
	return v
}

// the RAM address formed by the register pair starting at rp
func (mc *CPU) ramAddr(rp int) int {
	return int(mc.wr[rp+1])<<4 | int(mc.wr[rp])
}

func (mc *CPU) readRAM(rp int) uint8 {
	return mc.ram[mc.ramAddr(rp)]
}

func (mc *CPU) writeRAM(rp int, v uint8) {
	mc.ram[mc.ramAddr(rp)] = v & 0x0f
}

// the byte following the opcode
func (mc *CPU) operand() uint8 {
	return mc.rom.Byte(int(mc.pc) + 1)
}

// bit converts a flag to a value of 0 or 1
func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
