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

package tone

import "math"

// the minimum gap between now (according to the output clock) and the time
// of a new event
const safetyMargin = 0.01

// Timeline sits between a core and a Generator and maps emulated time onto
// the output timeline of the Generator. Timestamps forwarded to the Generator
// are guaranteed to be monotonic, each one at least epsilon after the
// previous one, however much jitter there is in the emulated timestamps.
//
// Timeline implements the Generator interface.
type Timeline struct {
	gen Generator

	epsilon  float64
	leadTime float64

	// output clock of the generator. can be nil, in which case the most
	// recent output timestamp is used as the current time
	clock func() float64

	baseEmu float64
	baseOut float64
	last    float64
}

// NewTimeline is the preferred method of initialisation for the Timeline type.
func NewTimeline(gen Generator, epsilon float64, leadTime float64) *Timeline {
	return &Timeline{
		gen:      gen,
		epsilon:  epsilon,
		leadTime: leadTime,
	}
}

// SetOutputClock sets the function that returns the current time of the
// output device, in seconds.
func (tl *Timeline) SetOutputClock(clock func() float64) {
	tl.clock = clock
}

// SetEpsilon changes the minimum gap between output events.
func (tl *Timeline) SetEpsilon(epsilon float64) {
	tl.epsilon = epsilon
}

func (tl *Timeline) now() float64 {
	if tl.clock == nil {
		return tl.last
	}
	return tl.clock()
}

// Rebase anchors the emulated time emuNow to the current output time, plus
// the lead time. Should be called whenever emulation resumes after a pause or
// a reset.
func (tl *Timeline) Rebase(emuNow float64) {
	tl.baseEmu = emuNow
	tl.baseOut = tl.now() + tl.leadTime
	tl.last = tl.baseOut
}

// Map converts emulated seconds to output seconds. Every call advances the
// timeline, even if the result is not used.
func (tl *Timeline) Map(emu float64) float64 {
	when := tl.baseOut + math.Max(0, emu-tl.baseEmu)
	if tl.clock != nil {
		when = math.Max(when, tl.clock()+safetyMargin)
	}
	when = math.Max(when, tl.last+tl.epsilon)
	tl.last = when
	return when
}

// Last returns the most recent output timestamp.
func (tl *Timeline) Last() float64 {
	return tl.last
}

// Play implements the Generator interface.
func (tl *Timeline) Play(freq float64, noise bool, amplitude float64, at float64) {
	tl.gen.Play(freq, noise, amplitude, tl.Map(at))
}

// Stop implements the Generator interface.
func (tl *Timeline) Stop(at float64) {
	tl.gen.Stop(tl.Map(at))
}
