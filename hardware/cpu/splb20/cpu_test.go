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

package splb20_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherbrick/hardware/cpu/splb20"
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/test"
)

const clock = 131072

// a 4K ROM is mapped at 0xf000
const origin = 0xf000

func config() *device.Config {
	return &device.Config{
		Core:  device.SPLB20,
		Clock: clock,
		Mask: device.MaskOptions{
			PortPullup: map[string]uint8{"PA": 0xff},
		},
	}
}

type image []uint8

// the reset vector points to the start of the ROM and the NMI vector points
// to 0xf100
func newImage() image {
	img := make(image, 0x1000)
	img.at(0xfffa, 0x00, 0xf1)
	img.at(0xfffc, 0x00, 0xf0)
	return img
}

func (img image) at(addr int, data ...uint8) {
	copy(img[addr-origin:], data)
}

func newCPU(t *testing.T, img image, gen tone.Generator) *splb20.CPU {
	t.Helper()
	if gen == nil {
		gen = tone.Silent{}
	}
	mc, err := splb20.NewCPU(config(), gen, img)
	test.DemandSuccess(t, err)
	return mc
}

func TestResetVector(t *testing.T) {
	img := newImage()
	img.at(origin, 0xa9, 0x42) // LDA #$42

	mc := newCPU(t, img, nil)
	s := mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(origin))
	test.ExpectEquality(t, s.Next, "LDA #")
	test.ExpectEquality(t, s.Status.Value(), uint8(0x04))
	test.ExpectSuccess(t, s.ROSC)
	test.ExpectSuccess(t, s.CPU)

	test.ExpectEquality(t, mc.Clock(), 2.0)
	test.ExpectEquality(t, mc.Examine().A, uint8(0x42))

	// RES is active low
	test.ExpectSuccess(t, mc.PinSet("RES", 0, pins.High))
	test.ExpectEquality(t, mc.Examine().PC, uint16(origin+2))
	test.ExpectSuccess(t, mc.PinSet("RES", 0, pins.Low))
	s = mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(origin))
	test.ExpectEquality(t, s.A, uint8(0))
	test.ExpectSuccess(t, mc.PinRelease("RES", 0))
}

func TestResetVectorUnevenROM(t *testing.T) {
	// a 6K ROM is mapped at 0xe800. the vectors are read from the top of the
	// mapped ROM and not from the vector address modulo the ROM size
	img := make([]uint8, 0x1800)
	img[0] = 0xa9 // LDA #$42
	img[1] = 0x42
	img[0x17fc] = 0x00
	img[0x17fd] = 0xe8
	img[0x0ffc] = 0x00
	img[0x0ffd] = 0xf0

	mc, err := splb20.NewCPU(config(), tone.Silent{}, img)
	test.DemandSuccess(t, err)
	s := mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(0xe800))
	test.ExpectEquality(t, s.Next, "LDA #")
}

func TestUnknownOpcode(t *testing.T) {
	img := newImage()
	img.at(origin, 0x02, 0x02, 0xea)

	mc := newCPU(t, img, nil)
	test.ExpectEquality(t, mc.Examine().Next, "???")
	test.ExpectEquality(t, mc.Clock(), 2.0)
	test.ExpectEquality(t, mc.Clock(), 2.0)
	test.ExpectEquality(t, mc.Examine().PC, uint16(origin+2))
	test.ExpectEquality(t, mc.Examine().Next, "NOP")
	test.ExpectEquality(t, mc.Instructions(), 2)
}

func TestDecimalMode(t *testing.T) {
	img := newImage()

	// there is no SED instruction so decimal mode is set with RTI
	img.at(origin,
		0xa9, 0xf0, 0x48, // LDA #$f0 ; PHA
		0xa9, 0x10, 0x48, // LDA #$10 ; PHA
		0xa9, 0x08, 0x48, // LDA #$08 ; PHA
		0x40,             // RTI
	)
	img.at(0xf010,
		0xa9, 0x58, // LDA #$58
		0x18,       // CLC
		0x69, 0x46, // ADC #$46
		0x38,       // SEC
		0xe9, 0x05, // SBC #$05
	)

	mc := newCPU(t, img, nil)
	for range 7 {
		mc.Clock()
	}

	s := mc.Examine()
	test.DemandEquality(t, s.PC, uint16(0xf010))
	test.ExpectSuccess(t, s.Status.DecimalMode)
	test.ExpectEquality(t, s.SP, uint8(0x00))

	// 58 + 46 = 104
	mc.Clock()
	mc.Clock()
	test.ExpectEquality(t, mc.Clock(), 2.0)
	s = mc.Examine()
	test.ExpectEquality(t, s.A, uint8(0x04))
	test.ExpectSuccess(t, s.Status.Carry)

	// the sign and overflow flags are decided before the tens adjustment
	test.ExpectSuccess(t, s.Status.Sign)
	test.ExpectSuccess(t, s.Status.Overflow)
	test.ExpectFailure(t, s.Status.Zero)

	// 04 - 05 = 99 with borrow
	mc.Clock()
	mc.Clock()
	s = mc.Examine()
	test.ExpectEquality(t, s.A, uint8(0x99))
	test.ExpectFailure(t, s.Status.Carry)
	test.ExpectSuccess(t, s.Status.Sign)
	test.ExpectFailure(t, s.Status.Overflow)
}

func TestSubroutine(t *testing.T) {
	img := newImage()
	img.at(origin, 0x20, 0x00, 0xf1) // JSR $f100
	img.at(0xf100, 0x60)             // RTS

	mc := newCPU(t, img, nil)

	test.ExpectEquality(t, mc.Clock(), 6.0)
	s := mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(0xf100))
	test.ExpectEquality(t, s.SP, uint8(0xfe))

	// the stack starts at zero and so the high byte of the return address is
	// written to the LCD RAM
	test.ExpectEquality(t, s.LCD[0], uint8(0xf0))
	test.ExpectEquality(t, s.RAM[0x7f], uint8(0x02))

	test.ExpectEquality(t, mc.Clock(), 6.0)
	s = mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(origin+3))
	test.ExpectEquality(t, s.SP, uint8(0x00))
}

func TestBranch(t *testing.T) {
	img := newImage()
	img.at(origin,
		0xa2, 0x03, // LDX #$03
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3
		0xea,       // NOP
	)

	mc := newCPU(t, img, nil)
	mc.Clock()

	for range 2 {
		mc.Clock()
		test.ExpectEquality(t, mc.Clock(), 3.0)
		test.ExpectEquality(t, mc.Examine().PC, uint16(origin+2))
	}

	mc.Clock()
	test.ExpectEquality(t, mc.Clock(), 2.0)
	s := mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(origin+5))
	test.ExpectEquality(t, s.X, uint8(0))
	test.ExpectSuccess(t, s.Status.Zero)
}

func TestInterruptAcknowledge(t *testing.T) {
	img := newImage()
	img.at(origin,
		0xa9, 0x02,       // LDA #$02
		0x85, 0x79,       // STA INT_CFG
		0xa5, 0x79,       // LDA INT_CFG
		0xf0, 0xfc,       // BEQ -4
		0x85, 0x80,       // STA $80
		0x4c, 0x0a, 0xf0, // JMP *
	)

	mc := newCPU(t, img, nil)

	// the 128Hz interrupt is requested but without NMI enabled it can only
	// be seen by polling
	var n int
	for mc.Examine().PC != 0xf00a {
		mc.Clock()
		n++
		test.DemandSuccess(t, n < 1000)
	}

	s := mc.Examine()
	test.ExpectEquality(t, s.RAM[0], uint8(0x02))

	// reading INT_CFG clears the requests
	test.ExpectEquality(t, s.IREQ, uint8(0))
}

func TestNMI(t *testing.T) {
	img := newImage()
	img.at(origin,
		0xa9, 0x82,       // LDA #$82
		0x85, 0x79,       // STA INT_CFG
		0x4c, 0x04, 0xf0, // JMP *
	)
	img.at(0xf100, 0x4c, 0x00, 0xf1) // JMP *

	mc := newCPU(t, img, nil)

	var n int
	for mc.Examine().PC != 0xf100 {
		mc.Clock()
		n++
		test.DemandSuccess(t, n < 1000)
	}

	s := mc.Examine()
	test.ExpectEquality(t, s.SP, uint8(0xfd))
	test.ExpectEquality(t, s.LCD[0], uint8(0xf0))
	test.ExpectEquality(t, s.RAM[0x7f], uint8(0x04))
	test.ExpectEquality(t, s.RAM[0x7e], uint8(0x84))
	test.ExpectEquality(t, s.IREQ, uint8(0x02))
}

func TestNMIRestart(t *testing.T) {
	img := newImage()
	img.at(origin,
		0xa9, 0x82, // LDA #$82
		0x85, 0x79, // STA INT_CFG
		0xa9, 0x40, // LDA #$40
		0x85, 0x7a, // STA SYS_CTRL
	)

	mc := newCPU(t, img, nil)
	for range 4 {
		mc.Clock()
	}

	// the CPU is stopped but the oscillator is still running
	s := mc.Examine()
	test.ExpectFailure(t, s.CPU)
	test.ExpectSuccess(t, s.ROSC)
	test.ExpectEquality(t, s.PC, uint16(origin+8))
	test.ExpectEquality(t, mc.Clock(), 1.0)

	// an NMI restarts the CPU through the reset vector
	var n int
	for !mc.Examine().CPU {
		mc.Clock()
		n++
		test.DemandSuccess(t, n < 2000)
	}

	s = mc.Examine()
	test.ExpectEquality(t, s.PC, uint16(origin))
	test.ExpectEquality(t, s.SP, uint8(0x00))
}

func TestVRAM(t *testing.T) {
	img := newImage()
	img.at(origin,
		0xa9, 0x5a, // LDA #$5a
		0x85, 0x00, // STA $00
		0xa9, 0x04, // LDA #$04
		0x85, 0x7a, // STA SYS_CTRL
	)

	mc := newCPU(t, img, nil)
	mc.Clock()
	mc.Clock()

	// LCD is not enabled
	test.ExpectEquality(t, len(mc.VRAM()), 0)

	mc.Clock()
	mc.Clock()
	v := mc.VRAM()
	test.DemandEquality(t, len(v), 64)
	test.ExpectEquality(t, v[0], uint8(0x5a))

	// VRAM is a copy
	v[0] = 0
	test.ExpectEquality(t, mc.VRAM()[0], uint8(0x5a))
}

func TestKeyInterrupt(t *testing.T) {
	img := newImage()
	img.at(origin,
		0xa9, 0xff,       // LDA #$ff
		0x85, 0x71,       // STA PDIR
		0xa9, 0x88,       // LDA #$88
		0x85, 0x79,       // STA INT_CFG
		0x4c, 0x08, 0xf0, // JMP *
	)
	img.at(0xf100, 0x4c, 0x00, 0xf1) // JMP *

	mc := newCPU(t, img, nil)
	for range 5 {
		mc.Clock()
	}
	test.ExpectEquality(t, mc.Examine().PA, uint8(0xff))

	// driving a pin high does not change the port
	test.ExpectSuccess(t, mc.PinSet("PA", 0x01, pins.High))
	test.ExpectEquality(t, mc.Examine().PC, uint16(0xf008))

	test.ExpectSuccess(t, mc.PinSet("PA", 0x01, pins.Low))
	s := mc.Examine()
	test.ExpectEquality(t, s.PA, uint8(0xfe))
	test.ExpectEquality(t, s.IREQ, uint8(0x08))
	test.ExpectEquality(t, s.PC, uint16(0xf100))

	test.ExpectSuccess(t, mc.PinRelease("PA", 0x01))
	test.ExpectEquality(t, mc.Examine().PA, uint8(0xff))

	var err error
	err = mc.PinSet("PB", 0x01, pins.Low)
	test.ExpectSuccess(t, errors.Is(err, pins.ErrInvalidPort))
	err = mc.PinSet("PA", 0, pins.Low)
	test.ExpectSuccess(t, errors.Is(err, pins.ErrInvalidPort))
	err = mc.PinRelease("PA", 0x100)
	test.ExpectSuccess(t, errors.Is(err, pins.ErrInvalidPort))
}

func TestSound(t *testing.T) {
	var rec tone.Recorder

	img := newImage()
	img.at(origin,
		0xa9, 0xc0, // LDA #$c0
		0x85, 0x72, // STA PCFG
		0xa9, 0x08, // LDA #$08
		0x85, 0x7b, // STA TC_PRESET
		0xa9, 0x00, // LDA #$00
		0x85, 0x7b, // STA TC_PRESET
	)

	mc := newCPU(t, img, &rec)
	test.DemandEquality(t, len(rec.Events), 2)
	test.ExpectEquality(t, rec.Events[0].Kind, tone.Stop)
	test.ExpectEquality(t, rec.Events[1].Kind, tone.Stop)

	mc.Clock()
	mc.Clock()
	test.DemandEquality(t, len(rec.Events), 3)
	test.ExpectEquality(t, rec.Events[2], tone.Event{Kind: tone.Play, Freq: clock / 4 / 2, Amplitude: 1, At: 2.0 / clock})
	test.ExpectSuccess(t, mc.Sound().IsOn())

	mc.Clock()
	mc.Clock()
	test.DemandEquality(t, len(rec.Events), 4)
	test.ExpectEquality(t, rec.Events[3], tone.Event{Kind: tone.Play, Freq: clock / 4 / 8 / 2, Amplitude: 1, At: 7.0 / clock})

	// a timer preset of zero silences the tone
	mc.Clock()
	mc.Clock()
	test.DemandEquality(t, len(rec.Events), 5)
	test.ExpectEquality(t, rec.Events[4], tone.Event{Kind: tone.Stop, At: 12.0 / clock})
	test.ExpectFailure(t, mc.Sound().IsOn())
}

func TestConfig(t *testing.T) {
	cfg := config()
	cfg.Clock = 0
	_, err := splb20.NewCPU(cfg, tone.Silent{}, newImage())
	test.ExpectSuccess(t, errors.Is(err, device.ErrInvalidConfig))

	_, err = splb20.NewCPU(config(), tone.Silent{}, nil)
	test.ExpectFailure(t, err)
}
