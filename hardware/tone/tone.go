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

// Package tone defines the contract between the sound subsystems of the CPU
// cores and whatever is responsible for turning tone events into sound.
//
// Timestamps are expressed in emulated seconds, which is the number of
// executed cycles divided by the system clock of the device. The Timeline
// type maps emulated seconds onto a monotonic output timeline.
package tone

import (
	"fmt"
	"strings"
)

// Generator is implemented by anything that can produce sound from tone
// events.
//
// A frequency of zero with noise false is a DC level at the given amplitude
// and is not an error. Amplitude is in the range -1 to 1.
type Generator interface {
	Play(freq float64, noise bool, amplitude float64, at float64)
	Stop(at float64)
}

// Kind of Event.
type Kind int

// List of valid Kind values.
const (
	Play Kind = iota
	Stop
)

// Event records a single call to a Generator.
type Event struct {
	Kind      Kind
	Freq      float64
	Noise     bool
	Amplitude float64
	At        float64
}

func (e Event) String() string {
	if e.Kind == Stop {
		return fmt.Sprintf("%.6f stop", e.At)
	}
	if e.Noise {
		return fmt.Sprintf("%.6f noise %.2fHz amp=%.2f", e.At, e.Freq, e.Amplitude)
	}
	return fmt.Sprintf("%.6f play %.2fHz amp=%.2f", e.At, e.Freq, e.Amplitude)
}

// Recorder is a Generator that keeps a list of every event it receives.
type Recorder struct {
	Events []Event
}

// Play implements the Generator interface.
func (rec *Recorder) Play(freq float64, noise bool, amplitude float64, at float64) {
	rec.Events = append(rec.Events, Event{Kind: Play, Freq: freq, Noise: noise, Amplitude: amplitude, At: at})
}

// Stop implements the Generator interface.
func (rec *Recorder) Stop(at float64) {
	rec.Events = append(rec.Events, Event{Kind: Stop, At: at})
}

// Clear the list of recorded events.
func (rec *Recorder) Clear() {
	rec.Events = rec.Events[:0]
}

func (rec *Recorder) String() string {
	s := strings.Builder{}
	for _, e := range rec.Events {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Silent is a Generator that discards all events.
type Silent struct{}

// Play implements the Generator interface.
func (Silent) Play(freq float64, noise bool, amplitude float64, at float64) {}

// Stop implements the Generator interface.
func (Silent) Stop(at float64) {}
