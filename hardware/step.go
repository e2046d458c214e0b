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
	"time"
)

// Step executes n instructions regardless of whether the emulation is
// running. Returns the number of cycles consumed.
func (b *Brick) Step(n int) float64 {
	var ran float64
	for range n {
		c := b.core.Clock()
		ran += c
		b.advance(c)
	}
	return ran
}

// Tick advances the emulation by the amount of wall time that has elapsed
// since the previous tick. The number of cycles is scaled by the speed
// preference and limited by the cycle cap preference. Returns the number of
// cycles consumed.
//
// The cap is checked before each instruction so the cycles consumed can
// exceed it by less than the cost of the final instruction.
//
// Has no effect if the emulation is not running.
func (b *Brick) Tick(delta time.Duration) float64 {
	if !b.running {
		return 0
	}

	b.budget += max(0, delta.Seconds()) * b.cfg.Clock * b.env.Prefs.Speed.Get().(float64)
	limit := float64(b.env.Prefs.CycleCap.Get().(int))

	var ran float64
	for b.budget > 0 && ran < limit {
		c := b.core.Clock()
		b.budget -= c
		ran += c
		b.advance(c)
	}

	// the cap was reached before the budget was spent. the remainder is
	// discarded rather than carried into the next tick
	if ran >= limit && b.budget > 0 {
		b.budget = 0
	}

	return ran
}

func (b *Brick) advance(cycles float64) {
	b.cycles += cycles
	b.coreCycles += cycles
}
