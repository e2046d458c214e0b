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
	"github.com/jetsetilly/gopherbrick/hardware/tone"
)

// Sound is the tone generated by the timer counter. The frequency is derived
// from the system clock, the clock divider and the timer preset.
type Sound struct {
	gen   tone.Generator
	clock float64

	clockDiv float64
	tcDiv    float64
	enable   bool
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound(clock float64, gen tone.Generator) *Sound {
	return &Sound{
		gen:      gen,
		clock:    clock,
		clockDiv: 1,
		tcDiv:    1,
	}
}

// SetClockDiv changes the clock divider and updates the tone.
func (snd *Sound) SetClockDiv(div float64, cycle float64) {
	snd.clockDiv = div
	snd.tone(cycle)
}

// SetTcDiv changes the timer divider and updates the tone. A value of zero
// silences the tone.
func (snd *Sound) SetTcDiv(div float64, cycle float64) {
	snd.tcDiv = div
	snd.tone(cycle)
}

// SetEnable turns the tone on or off.
func (snd *Sound) SetEnable(enable bool, cycle float64) {
	snd.enable = enable
	snd.tone(cycle)
}

// IsOn returns true if the tone is currently audible.
func (snd *Sound) IsOn() bool {
	return snd.enable && snd.tcDiv > 0
}

// Frequency of the tone. Only meaningful if IsOn() is true.
func (snd *Sound) Frequency() float64 {
	return snd.clock / snd.clockDiv / snd.tcDiv / 2
}

func (snd *Sound) tone(cycle float64) {
	t := cycle / snd.clock
	if snd.IsOn() {
		snd.gen.Play(snd.Frequency(), false, 1, t)
	} else {
		snd.gen.Stop(t)
	}
}
