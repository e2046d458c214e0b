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
	"math"

	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/rom"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/logger"
)

// the prescaler runs from the 32768Hz sub clock
const prescalerSize = 32768

const (
	ramSize  = 128
	segCount = 36
	comCount = 4
	gramSize = (segCount / 4) * comCount
)

// instruction cycle classes
const (
	div0 = 4.0
	div1 = 16.0
	div2 = 20.0
	div3 = 24.0
	div4 = 32.0
)

// Instruction is the implementation of an instruction. The opcode is the
// complete instruction word. It returns the number of cycles consumed.
type Instruction func(mc *CPU, opcode uint16) float64

// CPU is the T7741 core.
type CPU struct {
	rom   *rom.ROM
	sound *PinToggle
	pins  pins.Broadcaster
	table *[1024]Instruction

	comDiv      float64
	frameDiv    float64
	soundGnd    uint8
	subClockDiv float64
	pxDiv       float64
	pyDiv       float64
	pzDiv       float64

	instructions int
	cycles       float64

	// prescaler counter
	counter float64

	pc uint16
	a  uint8
	b  uint8
	h  uint8
	l  uint8

	cf  bool
	nsf bool

	pxf bool
	pyf bool
	pzf bool

	inp  uint8
	iop  uint8
	outp uint8
	bz   uint8

	halt bool

	gramOffset int
	scan       bool

	// high byte of the next branch. a negative value means no high byte
	// has been set
	pchtmp int

	// the CPU is running from the sub clock
	subClock bool

	ram  [ramSize]uint8
	gram [gramSize]uint8
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(cfg *device.Config, gen tone.Generator, romData []uint8) (*CPU, error) {
	if cfg.Mask.ComDiv <= 0 || cfg.Mask.SubClock <= 0 || len(cfg.Mask.PrescalerDiv) != 3 {
		return nil, fmt.Errorf("%w: com_div, sub_clock and prescaler_div are required", device.ErrInvalidConfig)
	}
	for _, d := range cfg.Mask.PrescalerDiv {
		if d <= 0 {
			return nil, fmt.Errorf("%w: prescaler_div entries must be greater than zero", device.ErrInvalidConfig)
		}
	}

	r, err := rom.New(romData)
	if err != nil {
		return nil, fmt.Errorf("t7741: %w", err)
	}

	mc := &CPU{
		rom:         r,
		table:       &instructionTable,
		sound:       NewPinToggle(cfg.Clock, gen),
		comDiv:      cfg.Mask.ComDiv,
		frameDiv:    cfg.Mask.ComDiv * comCount,
		soundGnd:    cfg.Mask.SoundGnd & 0x01,
		subClockDiv: cfg.Mask.SubClock / cfg.Clock,
		pxDiv:       prescalerSize / cfg.Mask.PrescalerDiv[0],
		pyDiv:       prescalerSize / cfg.Mask.PrescalerDiv[1],
		pzDiv:       prescalerSize / cfg.Mask.PrescalerDiv[2],
	}

	mc.Reset()

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("T7741 PC=%03x A=%x", mc.pc&0xfff, mc.a)
}

// Pins returns the broadcaster used to report changes to the output ports.
func (mc *CPU) Pins() *pins.Broadcaster {
	return &mc.pins
}

// Reset the CPU. The output ports and the prescaler are not affected.
func (mc *CPU) Reset() {
	mc.pc = 0xf00
	mc.a = 0
	mc.b = 0
	mc.h = 0
	mc.l = 0
	mc.cf = false
	mc.nsf = false
	mc.pxf = false
	mc.pyf = false
	mc.pzf = false
	mc.inp = 0
	mc.bz = 0
	mc.halt = false
	mc.gramOffset = 0
	mc.scan = true
	mc.pchtmp = -1
	mc.ram = [ramSize]uint8{}
	mc.gram = [gramSize]uint8{}
	mc.subClock = false
}

// Clock executes a single instruction and returns the number of cycles
// consumed, measured in main clock cycles.
func (mc *CPU) Clock() float64 {
	cycles := div4

	if !mc.halt {
		opcode := mc.fetch()
		cycles = mc.execute(opcode)
		mc.instructions++
	}

	// the prescaler is always clocked by the sub clock
	if mc.subClock {
		mc.counter += cycles
		cycles /= mc.subClockDiv
	} else {
		mc.counter += cycles * mc.subClockDiv
	}

	// the prescaler flags are nested. PY can only be set when PZ is set and
	// PX can only be set when PY is set
	elapsed := cycles * mc.subClockDiv
	if math.Mod(mc.counter, mc.pzDiv) < elapsed {
		mc.pzf = true
		if math.Mod(mc.counter, mc.pyDiv) < elapsed {
			mc.pyf = true
			if math.Mod(mc.counter, mc.pxDiv) < elapsed {
				mc.pxf = true
			}
		}
	}

	mc.cycles += cycles

	return cycles
}

// read the instruction word at PC and advance PC. only the low byte of PC is
// incremented
func (mc *CPU) fetch() uint16 {
	opcode := mc.rom.Word(int(mc.pc) << 1)
	mc.pc = (mc.pc & 0xf00) | ((mc.pc + 1) & 0xff)
	return opcode
}

func (mc *CPU) execute(opcode uint16) float64 {
	return mc.table[opcode&0x3ff](mc, opcode)
}

// Instructions returns the number of instructions executed.
func (mc *CPU) Instructions() int {
	return mc.instructions
}

// Cycles returns the number of cycles consumed.
func (mc *CPU) Cycles() float64 {
	return mc.cycles
}

// PinSet sets the level of an input pin. Ports INP and IOP are four pins
// wide. Setting the RES pin resets and halts the CPU.
func (mc *CPU) PinSet(port string, pin int, level pins.Level) error {
	switch port {
	case "INP":
		if err := validPin(port, pin); err != nil {
			return err
		}
		mc.inp = (mc.inp &^ (1 << pin)) | uint8(level&0x01)<<pin
	case "IOP":
		if err := validPin(port, pin); err != nil {
			return err
		}
		mc.iop = (mc.iop &^ (1 << pin)) | uint8(level&0x01)<<pin
	case "RES":
		mc.Reset()
		mc.halt = true
		logger.Log(logger.Allow, "T7741", "reset")
	default:
		return fmt.Errorf("%w: %s", pins.ErrInvalidPort, port)
	}
	return nil
}

// PinRelease clears an input pin. Releasing the RES pin allows the CPU to run.
func (mc *CPU) PinRelease(port string, pin int) error {
	switch port {
	case "INP":
		if err := validPin(port, pin); err != nil {
			return err
		}
		mc.inp &^= 1 << pin
	case "IOP":
		if err := validPin(port, pin); err != nil {
			return err
		}
		mc.iop &^= 1 << pin
	case "RES":
		mc.halt = false
	default:
		return fmt.Errorf("%w: %s", pins.ErrInvalidPort, port)
	}
	return nil
}

func validPin(port string, pin int) error {
	if pin < 0 || pin > 3 {
		return fmt.Errorf("%w: %s", pins.ErrInvalidPort, pins.Ref{Port: port, Pin: pin})
	}
	return nil
}

// VRAM returns a copy of the segment RAM.
func (mc *CPU) VRAM() []uint8 {
	v := make([]uint8, gramSize)
	copy(v, mc.gram[:])
	return v
}

// write to an output port and notify listeners of every changed bit
func (mc *CPU) setOut(port string, value uint8) {
	var prev uint8

	switch port {
	case "OUTP":
		prev = mc.outp
		mc.outp = value
	case "IOP":
		prev = mc.iop
		mc.iop = value
	}

	changed := value ^ prev
	for i := 0; i < 4; i++ {
		if changed&(1<<i) != 0 {
			mc.pins.Notify(port, i, pins.Level((value>>i)&0x01))
		}
	}
}

// RAM address formed by H and L
func (mc *CPU) hl() int {
	return int(mc.h)<<4 | int(mc.l)
}

// bit converts a flag to a value of 0 or 1
func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
