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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherbrick/environment"
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/logger"
)

// Brick is the root of the emulation. It contains the core and schedules it
// against wall time.
type Brick struct {
	env *environment.Environment
	cfg *device.Config

	core     Core
	timeline *tone.Timeline

	running bool

	// total number of cycles executed since the last reset
	cycles float64

	// cycles executed since the brick was created. the cores timestamp sound
	// events with this count and never reset it, not even on a reset
	coreCycles float64

	// the number of cycles still to be run. can be negative if the last
	// instruction of a tick overshot the budget
	budget float64

	matrix matrix
}

// NewBrick is the preferred method of initialisation for the Brick type. The
// tone generator is wrapped in a Timeline before being given to the core.
func NewBrick(env *environment.Environment, cfg *device.Config, gen tone.Generator, rom []uint8, srom []uint8) (*Brick, error) {
	if gen == nil {
		gen = tone.Silent{}
	}

	b := &Brick{
		env: env,
		cfg: cfg,
		timeline: tone.NewTimeline(gen,
			env.Prefs.AudioEpsilon.Get().(float64),
			env.Prefs.AudioLeadTime.Get().(float64)),
		matrix: newMatrix(),
	}

	var err error
	b.core, err = NewCore(cfg, b.timeline, rom, srom)
	if err != nil {
		return nil, fmt.Errorf("brick: %w", err)
	}

	if pn, ok := b.core.(PinNotifier); ok {
		pn.Pins().Attach(b)
	}

	logger.Logf(env, "brick", "created %s", cfg)

	return b, nil
}

func (b *Brick) String() string {
	return fmt.Sprintf("%s %.3fs", b.cfg.Core, b.EmulatedSeconds())
}

// Core returns the core of the brick.
func (b *Brick) Core() Core {
	return b.core
}

// Config returns the configuration used to create the brick.
func (b *Brick) Config() *device.Config {
	return b.cfg
}

// Timeline returns the audio timeline of the brick.
func (b *Brick) Timeline() *tone.Timeline {
	return b.timeline
}

// Start the emulation. The audio timeline is rebased so that sound resumes
// from the current emulated time.
func (b *Brick) Start() {
	b.timeline.SetEpsilon(b.env.Prefs.AudioEpsilon.Get().(float64))
	b.timeline.Rebase(b.coreTime())
	b.running = true
}

// Pause the emulation. Any sound is stopped.
func (b *Brick) Pause() {
	b.running = false
	b.timeline.Stop(b.coreTime())
}

// Running returns true if the emulation has been started and not paused.
func (b *Brick) Running() bool {
	return b.running
}

// Reset the core and the scheduler. The running state is not affected.
func (b *Brick) Reset() {
	b.core.Reset()
	b.cycles = 0
	b.budget = 0
	b.matrix.clear()
	b.timeline.Rebase(b.coreTime())
	logger.Log(b.env, "brick", "reset")
}

// Frame returns a copy of the display memory of the core.
func (b *Brick) Frame() []uint8 {
	return b.core.VRAM()
}

// EmulatedSeconds returns the amount of emulated time since the last reset.
func (b *Brick) EmulatedSeconds() float64 {
	return b.cycles / b.cfg.Clock
}

// the time used by the core for sound events. unlike EmulatedSeconds() this
// is not affected by Reset()
func (b *Brick) coreTime() float64 {
	return b.coreCycles / b.cfg.Clock
}

// Cycles returns the number of cycles executed since the last reset.
func (b *Brick) Cycles() float64 {
	return b.cycles
}

// SetSpeed changes the speed multiplier applied by Tick().
func (b *Brick) SetSpeed(speed float64) error {
	return b.env.Prefs.Speed.Set(speed)
}

// Examine returns a snapshot of the core state. Returns false if the core
// does not support examination.
func (b *Brick) Examine() (fmt.Stringer, bool) {
	ex, ok := examinerFor(b.core)
	if !ok {
		return nil, false
	}
	return ex.Examine(), true
}

// Press the button. An error is returned if the core does not have the pin
// specified by the button.
func (b *Brick) Press(btn device.Button) error {
	if btn.IsMatrix() {
		return b.matrix.press(b.core, btn)
	}
	return b.core.PinSet(btn.Port, btn.Pin, btn.Level)
}

// Release the button. The pin of the button stops listening to any output
// pin, whichever button connected it.
func (b *Brick) Release(btn device.Button) error {
	b.matrix.release(btn)
	return b.core.PinRelease(btn.Port, btn.Pin)
}

// PinChanged implements the pins.Listener interface. The level of the pin is
// relayed to every pressed button that is connected to it.
func (b *Brick) PinChanged(port string, pin int, level pins.Level) {
	for _, err := range b.matrix.changed(b.core, pins.Ref{Port: port, Pin: pin}, level) {
		logger.Log(b.env, "brick", err)
	}
}
