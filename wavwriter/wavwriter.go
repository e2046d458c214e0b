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

// Package wavwriter allows the output of a brick's sound hardware to be
// written to disk as a WAV file. Audio data is synthesised and buffered in
// memory in its entirety and written to disk when Write() is called. It is
// therefore probably only suitable for recording short sessions and for
// testing.
package wavwriter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherbrick/logger"
)

// output format of the WAV file
const (
	SampleRate = 44100
	BitDepth   = 16
	NumChans   = 1
)

// full scale of a tone with an amplitude of one. leaves headroom below the
// maximum of a 16 bit sample
const volume = 0x2000

// the PCM format tag in the WAV header
const formatPCM = 1

// ErrTimeReversed is returned if events are received out of order.
var ErrTimeReversed = errors.New("wavwriter: event is earlier than previous event")

// WavWriter implements the tone.Generator interface.
type WavWriter struct {
	filename string
	data     []int

	// the tone currently being synthesised
	playing   bool
	freq      float64
	noise     bool
	amplitude float64

	// number of samples since the current tone started
	elapsed int

	// noise is generated by a 15 bit shift register clocked at the frequency
	// of the tone
	lfsr  uint16
	steps int

	// an event has been received out of order
	err error
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename specified")
	}

	aw := &WavWriter{
		filename: filename,
		data:     make([]int, 0, SampleRate),
		lfsr:     0x7fff,
	}

	return aw, nil
}

// sample index for a time in seconds
func index(at float64) int {
	return int(math.Max(0, at) * SampleRate)
}

// synthesise the current tone up to the specified time
func (aw *WavWriter) render(at float64) {
	n := index(at)
	if n < len(aw.data) {
		if aw.err == nil {
			aw.err = fmt.Errorf("%w: %.6f", ErrTimeReversed, at)
		}
		return
	}

	level := int(math.Max(-1, math.Min(1, aw.amplitude)) * volume)

	for len(aw.data) < n {
		var v int

		switch {
		case !aw.playing:
		case aw.freq <= 0 && !aw.noise:
			// DC
			v = level
		case aw.noise:
			// the shift register is clocked at the frequency of the tone
			t := int(float64(aw.elapsed) * aw.freq / SampleRate)
			for ; aw.steps < t; aw.steps++ {
				b := (aw.lfsr ^ (aw.lfsr >> 1)) & 0x01
				aw.lfsr = (aw.lfsr >> 1) | (b << 14)
			}
			if aw.lfsr&0x01 == 0x01 {
				v = level
			} else {
				v = -level
			}
		default:
			// the elapsed count is used rather than an accumulated phase so
			// that the edges of the waveform do not drift
			t := float64(aw.elapsed) * aw.freq / SampleRate
			if t-math.Floor(t) < 0.5 {
				v = level
			} else {
				v = -level
			}
		}

		aw.data = append(aw.data, v)
		aw.elapsed++
	}
}

// Play implements the tone.Generator interface.
func (aw *WavWriter) Play(freq float64, noise bool, amplitude float64, at float64) {
	aw.render(at)
	aw.playing = true
	aw.freq = freq
	aw.noise = noise
	aw.amplitude = amplitude
	aw.elapsed = 0
	aw.steps = 0
}

// Stop implements the tone.Generator interface.
func (aw *WavWriter) Stop(at float64) {
	aw.render(at)
	aw.playing = false
}

// Samples returns the number of samples synthesised so far.
func (aw *WavWriter) Samples() int {
	return len(aw.data)
}

// Seconds returns the length of the audio synthesised so far.
func (aw *WavWriter) Seconds() float64 {
	return float64(len(aw.data)) / SampleRate
}

// Encode the synthesised audio, up to the end time, as a WAV stream.
func (aw *WavWriter) Encode(w io.WriteSeeker, end float64) error {
	aw.render(end)
	if aw.err != nil {
		return aw.err
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChans,
			SampleRate:  SampleRate,
		},
		Data:           aw.data,
		SourceBitDepth: BitDepth,
	}

	enc := wav.NewEncoder(w, SampleRate, BitDepth, NumChans, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}

// Write the synthesised audio, up to the end time, to the file named when the
// WavWriter was created.
func (aw *WavWriter) Write(end float64) (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	return aw.Encode(f, end)
}
