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

	"github.com/jetsetilly/gopherbrick/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/rom"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/logger"
)

// the sub clock drives the timers and the tone in crystal mode
const subClock = 32768

// interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
)

// Instruction is the implementation of an instruction. The opcode argument
// contains every byte of the instruction with the first byte being the most
// significant. It returns the number of cycles consumed.
type Instruction func(mc *CPU, opcode uint32) float64

// CPU is the SPLB20 core.
type CPU struct {
	rom       *rom.ROM
	romOffset int
	sound     *Sound

	nonCrystal  bool
	subClockDiv float64

	instructions int
	cycles       float64

	// timer countdowns measured in CPU cycles
	timerCounter float64
	t2Hz         float64
	t128Hz       float64

	pc     uint16
	a      *registers.Register
	x      *registers.Register
	y      *registers.Register
	sp     uint8
	status registers.StatusRegister

	roscEnabled bool
	cpuEnabled  bool

	mem memory

	// external pullup for port PA
	pullupExt uint8

	// port PA input masks. pins in the low mask are driven low and pins in the
	// high mask are driven high
	inLow  uint8
	inHigh uint8

	// opcodes that have already been logged as unknown
	unknown map[uint8]bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(cfg *device.Config, gen tone.Generator, romData []uint8) (*CPU, error) {
	if cfg.Clock <= 0 {
		return nil, fmt.Errorf("%w: clock must be greater than zero", device.ErrInvalidConfig)
	}

	r, err := rom.New(romData)
	if err != nil {
		return nil, fmt.Errorf("splb20: %w", err)
	}

	mc := &CPU{
		rom:         r,
		romOffset:   0x10000 - r.Size(),
		sound:       NewSound(cfg.Clock, gen),
		nonCrystal:  bool(cfg.Mask.NonCrystalMode),
		subClockDiv: cfg.Clock / subClock,
		a:           registers.NewRegister(0, "A"),
		x:           registers.NewRegister(0, "X"),
		y:           registers.NewRegister(0, "Y"),
		pullupExt:   cfg.Mask.PortPullup["PA"],
		unknown:     make(map[uint8]bool),
	}

	if !mc.nonCrystal {
		mc.sound.SetClockDiv(mc.subClockDiv, mc.cycles)
	}

	mc.Reset()

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("SPLB20 PC=%04x %s %s SP=%#02x %s", mc.pc, mc.a, mc.x, mc.sp, mc.status)
}

// Reset the CPU. The timer counter and the cycle count are not affected.
func (mc *CPU) Reset() {
	mc.t2Hz = 0
	mc.t128Hz = 0

	mc.sp = 0
	mc.a.Load(0)
	mc.x.Load(0)
	mc.y.Load(0)
	mc.status.Reset()

	mc.roscEnabled = true
	mc.cpuEnabled = true

	mc.mem.reset()

	mc.sound.SetEnable(false, mc.cycles)
	mc.vector(vectorReset)
}

func (mc *CPU) vector(addr int) {
	mc.pc = mc.rom.WordLSB(addr - mc.romOffset)
}

// Clock executes a single instruction and advances the timers. It returns
// the number of cycles consumed.
func (mc *CPU) Clock() float64 {
	cycles := 1.0

	if mc.roscEnabled {
		if mc.cpuEnabled {
			addr := int(mc.pc) - mc.romOffset
			def := instructionTable[mc.rom.Byte(addr)]
			opcode := mc.rom.Bytes(addr, def.bytes)
			mc.pc += uint16(def.bytes)
			cycles = def.fn(mc, opcode)
			mc.instructions++
		}
		mc.timers(cycles)
	} else if mc.mem.sysCtrl&sysCtrl32K == sysCtrl32K {
		cycles = mc.subClockDiv
		mc.timers(cycles)
	}

	mc.cycles += cycles

	return cycles
}

// the base period of the timers in CPU cycles
func (mc *CPU) timerBase() float64 {
	if mc.nonCrystal {
		return float64(uint32(1) << (mc.mem.prescaler & 0x1f))
	}
	return mc.subClockDiv
}

func (mc *CPU) timers(cycles float64) {
	base := mc.timerBase()

	if mc.mem.sysCtrl&sysCtrlTimer == sysCtrlTimer {
		mc.timerCounter -= cycles
		for mc.timerCounter <= 0 {
			mc.timerCounter += base
			mc.mem.tc--
			if mc.mem.tc == 0 {
				mc.mem.tc = mc.mem.tcPreset
				mc.request(intCounter)
			}
		}
	}

	mc.t2Hz -= cycles
	for mc.t2Hz <= 0 {
		mc.t2Hz += base * subClock / 2
		mc.request(int2Hz)
	}

	mc.t128Hz -= cycles
	for mc.t128Hz <= 0 {
		mc.t128Hz += base * subClock / 128
		mc.request(int128Hz)
	}
}

// raise an interrupt request if the source is enabled
func (mc *CPU) request(source uint8) {
	if mc.mem.intCfg&source == source {
		mc.mem.ireq |= source
		mc.nmi()
	}
}

func (mc *CPU) nmi() {
	if mc.mem.intCfg&intNMI != intNMI {
		return
	}

	if mc.roscEnabled && mc.cpuEnabled {
		mc.push(uint8(mc.pc >> 8))
		mc.push(uint8(mc.pc))
		mc.push(mc.status.Value())
		mc.vector(vectorNMI)
		return
	}

	mc.roscEnabled = true
	mc.cpuEnabled = true
	mc.vector(vectorReset)
	logger.Log(logger.Allow, "SPLB20", "restart from NMI")
}

func (mc *CPU) push(v uint8) {
	mc.write(int(mc.sp), v)
	mc.sp--
}

func (mc *CPU) pull() uint8 {
	mc.sp++
	return mc.read(int(mc.sp))
}

// Instructions returns the number of instructions executed.
func (mc *CPU) Instructions() int {
	return mc.instructions
}

// Cycles returns the number of cycles consumed.
func (mc *CPU) Cycles() float64 {
	return mc.cycles
}

// Sound returns the sound generator of the CPU.
func (mc *CPU) Sound() *Sound {
	return mc.sound
}

// PinSet drives pins of port PA. The pin argument is a bit mask and so more
// than one pin can be driven at once. Setting the RES pin low resets the CPU.
func (mc *CPU) PinSet(port string, pin int, level pins.Level) error {
	switch port {
	case "PA":
		if err := validMask(port, pin); err != nil {
			return err
		}
		mc.portInput(uint8(pin), level, true)
	case "RES":
		if level == pins.Low {
			mc.Reset()
			logger.Log(logger.Allow, "SPLB20", "reset")
		}
	default:
		return fmt.Errorf("%w: %s", pins.ErrInvalidPort, port)
	}
	return nil
}

// PinRelease stops driving pins of port PA. Releasing RES has no effect.
func (mc *CPU) PinRelease(port string, pin int) error {
	switch port {
	case "PA":
		if err := validMask(port, pin); err != nil {
			return err
		}
		mc.portInput(uint8(pin), pins.Low, false)
	case "RES":
	default:
		return fmt.Errorf("%w: %s", pins.ErrInvalidPort, port)
	}
	return nil
}

func validMask(port string, pin int) error {
	if pin <= 0 || pin > 0xff {
		return fmt.Errorf("%w: %s mask %#x", pins.ErrInvalidPort, port, pin)
	}
	return nil
}

func (mc *CPU) portInput(mask uint8, level pins.Level, drive bool) {
	prev := mc.portRead()

	mc.inLow &^= mask
	mc.inHigh &^= mask
	if drive {
		if level == pins.Low {
			mc.inLow |= mask
		} else {
			mc.inHigh |= mask
		}
	}

	// a change of the port caused by a pin being driven low is a key press
	if prev != mc.portRead() && drive && level == pins.Low {
		mc.request(intKey)
	}
}

// value of port PA as seen by the CPU. output pins read back the latch and
// input pins are high unless driven low
func (mc *CPU) portRead() uint8 {
	return (^mc.mem.pdir & mc.mem.platch) |
		(mc.mem.pdir & (^mc.inLow & (mc.inHigh | mc.mem.pullup | mc.pullupExt)))
}

// VRAM returns a copy of the LCD RAM. The slice is empty if the LCD is not
// enabled.
func (mc *CPU) VRAM() []uint8 {
	if mc.mem.sysCtrl&sysCtrlLCD != sysCtrlLCD {
		return []uint8{}
	}
	v := make([]uint8, len(mc.mem.lcd))
	copy(v, mc.mem.lcd[:])
	return v
}
