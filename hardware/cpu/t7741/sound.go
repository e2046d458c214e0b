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
	"github.com/jetsetilly/gopherbrick/hardware/tone"
)

// PinToggle is the sound of a piezo connected to an output pin. The
// amplitude of the generated tone is a DC level that follows the pin.
type PinToggle struct {
	gen   tone.Generator
	clock float64
}

// NewPinToggle is the preferred method of initialisation for the PinToggle
// type.
func NewPinToggle(clock float64, gen tone.Generator) *PinToggle {
	return &PinToggle{
		gen:   gen,
		clock: clock,
	}
}

// Toggle the piezo. The first half wave takes precedence over the second. If
// neither are set then the piezo is silent.
func (snd *PinToggle) Toggle(halfWave1 bool, halfWave2 bool, cycle float64) {
	t := cycle / snd.clock
	switch {
	case halfWave1:
		snd.gen.Play(0, false, 1, t)
	case halfWave2:
		snd.gen.Play(0, false, -1, t)
	default:
		snd.gen.Stop(t)
	}
}
