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

package hardware_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherbrick/environment"
	"github.com/jetsetilly/gopherbrick/hardware"
	"github.com/jetsetilly/gopherbrick/hardware/cpu/t7741"
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	return env
}

// a very slow HT943 so that one second of wall time is exactly 40 cycles
func ht943() *device.Config {
	return &device.Config{
		Core:  device.HT943,
		Clock: 40,
		Mask: device.MaskOptions{
			TimerClockDiv: 8,
			PortPullup:    map[string]uint8{"PP": 0x0f, "PS": 0x0f, "PM": 0x0f},
		},
	}
}

// MOV A,#5 ; HALT. the instruction costs 4 cycles and every subsequent clock
// costs 8 cycles
var haltROM = []uint8{0x75, 0x37, 0x00}

func t7741Config() *device.Config {
	return &device.Config{
		Core:  device.T7741,
		Clock: 65536,
		Mask: device.MaskOptions{
			ComDiv:       512,
			SubClock:     32768,
			PrescalerDiv: []float64{2, 64, 1024},
		},
	}
}

// t7741 program starting at the reset address
func t7741ROM(words ...uint16) []uint8 {
	data := make([]uint8, 0x2000)
	for i, w := range words {
		a := (0xf00 + i) << 1
		data[a] = uint8(w >> 8)
		data[a+1] = uint8(w)
	}
	return data
}

func TestNewCore(t *testing.T) {
	_, err := hardware.NewCore(&device.Config{Core: "Z80", Clock: 1}, tone.Silent{}, haltROM, nil)
	test.ExpectSuccess(t, errors.Is(err, device.ErrUnsupportedArchitecture))

	core, err := hardware.NewCore(ht943(), tone.Silent{}, haltROM, nil)
	test.DemandSuccess(t, err)
	_, ok := core.(hardware.PinNotifier)
	test.ExpectFailure(t, ok)

	core, err = hardware.NewCore(t7741Config(), tone.Silent{}, t7741ROM(), nil)
	test.DemandSuccess(t, err)
	_, ok = core.(hardware.PinNotifier)
	test.ExpectSuccess(t, ok)

	core, err = hardware.NewCore(&device.Config{Core: device.SPLB20, Clock: 32768}, tone.Silent{}, make([]uint8, 0x1000), nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, core != nil)

	// a failed core is never a non-nil interface
	core, err = hardware.NewCore(ht943(), tone.Silent{}, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, core == nil)
}

func TestTickBudget(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), ht943(), nil, haltROM, nil)
	test.DemandSuccess(t, err)

	// nothing happens until the brick is started
	test.ExpectEquality(t, b.Tick(time.Second), 0.0)

	b.Start()
	test.ExpectSuccess(t, b.Running())

	// the final instruction overshoots the budget of 40 cycles
	test.ExpectEquality(t, b.Tick(time.Second), 4.0+8.0*5)

	// the overshoot is carried into the next tick
	test.ExpectEquality(t, b.Tick(time.Second), 8.0*5)
	test.ExpectEquality(t, b.Cycles(), 84.0)
	test.ExpectEquality(t, b.EmulatedSeconds(), 84.0/40.0)

	// negative time is ignored
	test.ExpectEquality(t, b.Tick(-time.Second), 0.0)

	// speed is applied to the budget
	test.ExpectSuccess(t, b.SetSpeed(2))
	test.ExpectEquality(t, b.Tick(time.Second), 8.0*10)

	test.ExpectFailure(t, b.SetSpeed(0))

	b.Pause()
	test.ExpectFailure(t, b.Running())
	test.ExpectEquality(t, b.Tick(time.Second), 0.0)
}

func TestTickCap(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.Set("scheduler.cyclecap", 100))

	b, err := hardware.NewBrick(env, ht943(), nil, haltROM, nil)
	test.DemandSuccess(t, err)
	b.Start()

	// a budget of 400 cycles is cut short by the cap
	test.ExpectEquality(t, b.Tick(10*time.Second), 100.0)

	// and the remainder is discarded
	test.ExpectEquality(t, b.Tick(0), 0.0)

	// the final instruction of a tick can take it over the cap but never by
	// a whole instruction
	test.DemandSuccess(t, env.Prefs.Set("scheduler.cyclecap", 98))
	ran := b.Tick(10 * time.Second)
	test.ExpectEquality(t, ran, 104.0)
	test.ExpectSuccess(t, ran-98 < 8)
}

func TestStepAndReset(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), ht943(), nil, haltROM, nil)
	test.DemandSuccess(t, err)

	// stepping does not require the brick to be running
	test.ExpectEquality(t, b.Step(3), 4.0+8.0+8.0)
	test.ExpectEquality(t, b.Cycles(), 20.0)

	s, ok := b.Examine()
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, strings.Contains(s.String(), "HALT=1"))

	b.Reset()
	test.ExpectEquality(t, b.Cycles(), 0.0)
	test.ExpectEquality(t, b.Step(1), 4.0)
}

func TestResetSoundTime(t *testing.T) {
	var rec tone.Recorder

	b, err := hardware.NewBrick(newEnv(t), ht943(), &rec, haltROM, nil)
	test.DemandSuccess(t, err)

	// most of this time is spent halted
	b.RunFor(10)
	b.Reset()
	base := b.Timeline().Last()
	rec.Clear()

	// MOV A,#5 ; HALT. the sound is stopped at the start of the HALT
	// instruction, four cycles after the reset
	b.Step(2)
	test.DemandEquality(t, len(rec.Events), 1)
	test.ExpectEquality(t, rec.Events[0].Kind, tone.Stop)
	test.ExpectApproximate(t, rec.Events[0].At, base+4.0/40.0, 0.000001)

	// pausing stops the sound at the current time
	b.Step(10)
	rec.Clear()
	b.Pause()
	test.DemandEquality(t, len(rec.Events), 1)
	test.ExpectApproximate(t, rec.Events[0].At, base+b.EmulatedSeconds(), 0.000001)
}

func TestPause(t *testing.T) {
	var rec tone.Recorder

	b, err := hardware.NewBrick(newEnv(t), ht943(), &rec, haltROM, nil)
	test.DemandSuccess(t, err)

	b.Start()
	b.Tick(time.Second)
	rec.Clear()

	b.Pause()
	test.DemandEquality(t, len(rec.Events), 1)
	test.ExpectEquality(t, rec.Events[0].Kind, tone.Stop)
}

func TestButtons(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), ht943(), nil, haltROM, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, b.Press(device.Button{Name: "A", Port: "PP", Pin: 1, Level: pins.Low}))
	test.ExpectSuccess(t, b.Release(device.Button{Name: "A", Port: "PP", Pin: 1}))

	err = b.Press(device.Button{Name: "B", Port: "XX", Pin: 1})
	test.ExpectSuccess(t, errors.Is(err, pins.ErrInvalidPort))
}

func TestMatrixRelay(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), t7741Config(), nil, t7741ROM(
		0x0e1, // OUT OUTP,#1
		0x0e0, // OUT OUTP,#0
		0x0e1, // OUT OUTP,#1
	), nil)
	test.DemandSuccess(t, err)

	mc := b.Core().(*t7741.CPU)

	through := &pins.Ref{Port: "OUTP", Pin: 0}
	btnA := device.Button{Name: "A", Port: "INP", Pin: 0, Through: through}
	btnB := device.Button{Name: "B", Port: "INP", Pin: 1, Through: through}

	// the level of the output pin is not yet known
	test.ExpectSuccess(t, b.Press(btnA))
	test.ExpectEquality(t, mc.Examine().INP, uint8(0))

	// the output pin goes high and is relayed to the pressed button
	b.Step(1)
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x01))

	// a button pressed after the output pin has changed receives the level
	// immediately
	test.ExpectSuccess(t, b.Press(btnB))
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x03))

	// the released button no longer receives changes
	test.ExpectSuccess(t, b.Release(btnA))
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x02))
	b.Step(1)
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x00))

	// a reset forgets the matrix. button B is not pressed again and so only
	// button A receives the next change to the output pin
	b.Reset()
	test.ExpectSuccess(t, b.Press(btnA))
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x00))
	b.Step(1)
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x01))
}

func TestMatrixReleaseByPlainButton(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), t7741Config(), nil, t7741ROM(
		0x0e1, // OUT OUTP,#1
		0x0e0, // OUT OUTP,#0
		0x0e1, // OUT OUTP,#1
	), nil)
	test.DemandSuccess(t, err)

	mc := b.Core().(*t7741.CPU)

	matrixBtn := device.Button{Name: "A", Port: "INP", Pin: 0, Through: &pins.Ref{Port: "OUTP", Pin: 0}}
	plainBtn := device.Button{Name: "fire", Port: "INP", Pin: 0, Level: pins.High}

	test.ExpectSuccess(t, b.Press(matrixBtn))
	b.Step(1)
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x01))

	// releasing a plain button on the same pin also stops the relay
	test.ExpectSuccess(t, b.Release(plainBtn))
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x00))
	b.Step(2)
	test.ExpectEquality(t, mc.Examine().INP, uint8(0x00))
}

func TestRun(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), ht943(), nil, haltROM, nil)
	test.DemandSuccess(t, err)

	var ticks int
	err = b.Run(context.Background(), 100, func() bool {
		ticks++
		return ticks < 3
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ticks, 3)
	test.ExpectFailure(t, b.Running())

	// a cancelled context stops the emulation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, b.Run(ctx, 100, nil))

	test.ExpectFailure(t, b.Run(context.Background(), 0, nil))
}

func TestRunFor(t *testing.T) {
	b, err := hardware.NewBrick(newEnv(t), ht943(), nil, haltROM, nil)
	test.DemandSuccess(t, err)

	b.RunFor(0.5)
	test.ExpectSuccess(t, b.EmulatedSeconds() >= 0.5)
	test.ExpectFailure(t, b.Running())
}
