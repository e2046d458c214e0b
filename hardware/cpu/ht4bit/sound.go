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

package ht4bit

import (
	"fmt"

	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
)

// the sound ROM is divided into channels of notes. the first twelve channels
// are single sized and the remaining four are double sized
const (
	singleChannelSize  = 32
	singleChannelCount = 12
	maxChannels        = 16
	soundROMSize       = singleChannelSize * 20
)

// lfsr2div converts the LFSR value stored in the sound ROM (and the speed
// divider mask option) into a divider
var lfsr2div = [128]int{
	0, 2, 123, 3, 124, 75, 117, 4, 125, 101, 111, 76, 118, 42, 69, 5,
	126, 66, 63, 102, 112, 86, 36, 77, 119, 21, 95, 43, 70, 25, 105, 6,
	127, 115, 99, 67, 64, 34, 19, 103, 113, 17, 15, 87, 37, 55, 89, 78,
	120, 39, 60, 22, 96, 52, 57, 44, 71, 91, 30, 26, 106, 47, 80, 7,
	1, 122, 74, 116, 100, 110, 41, 68, 65, 62, 85, 35, 20, 94, 24, 104,
	114, 98, 33, 18, 16, 14, 54, 88, 38, 59, 51, 56, 90, 29, 46, 79,
	121, 73, 109, 40, 61, 84, 93, 23, 97, 32, 13, 53, 58, 50, 28, 45,
	72, 108, 83, 92, 31, 12, 49, 27, 107, 82, 11, 48, 81, 10, 9, 8,
}

// Sound is the note sequencer of the HT4BIT family. Notes are read from the
// sound ROM one at a time, at a rate decided by the speed divider of the
// selected channel.
type Sound struct {
	gen   tone.Generator
	clock float64

	freqDiv  float64
	speedDiv [maxChannels]int
	effect   [maxChannels]int
	srom     [soundROMSize]uint8

	// number of cycles since the sound was created. used to timestamp events
	cycles float64

	// cycles remaining until the next note
	countdown float64

	note    int
	channel int
	repeat  bool
	on      bool
}

// NewSound is the preferred method of initialisation for the Sound type. The
// sound ROM data can be shorter than the full sound ROM, or nil. Missing
// data is treated as silent notes.
func NewSound(clock float64, mask device.MaskOptions, srom []uint8, gen tone.Generator) (*Sound, error) {
	if len(mask.SoundSpeedDiv) > maxChannels {
		return nil, fmt.Errorf("%w: too many sound_speed_div entries", device.ErrInvalidConfig)
	}
	if len(mask.SoundEffect) > maxChannels {
		return nil, fmt.Errorf("%w: too many sound_effect entries", device.ErrInvalidConfig)
	}
	if len(srom) > 0 && mask.SoundFreqDiv <= 0 {
		return nil, fmt.Errorf("%w: sound_freq_div must be greater than zero", device.ErrInvalidConfig)
	}

	snd := &Sound{
		gen:     gen,
		clock:   clock,
		freqDiv: mask.SoundFreqDiv,
	}

	for i, d := range mask.SoundSpeedDiv {
		if d < 0 || d >= len(lfsr2div) {
			return nil, fmt.Errorf("%w: sound_speed_div entry %d out of range", device.ErrInvalidConfig, d)
		}
		snd.speedDiv[i] = d
	}
	copy(snd.effect[:], mask.SoundEffect)
	copy(snd.srom[:], srom)

	return snd, nil
}

func (snd *Sound) String() string {
	if !snd.on {
		return "off"
	}
	mode := "one"
	if snd.repeat {
		mode = "loop"
	}
	return fmt.Sprintf("ch%d note %d (%s)", snd.channel, snd.note, mode)
}

// the current time in seconds
func (snd *Sound) now() float64 {
	return snd.cycles / snd.clock
}

// Clock the sound sequencer by the number of cycles consumed by the most
// recent instruction.
func (snd *Sound) Clock(cycles float64) {
	snd.cycles += cycles
	if !snd.on {
		return
	}

	snd.countdown -= cycles
	if snd.countdown > 0 {
		return
	}

	snd.countdown += float64(lfsr2div[snd.speedDiv[snd.channel]]) * snd.freqDiv * 16

	size := singleChannelSize
	if snd.channel >= singleChannelCount {
		size *= 2
	}

	t := snd.now()
	if freq := snd.frequency(); freq > 0 {
		snd.gen.Play(freq, snd.effect[snd.channel]&0x01 == 0x01, 1.0, t)
	} else {
		snd.gen.Stop(t)
	}

	snd.note = (snd.note + 1) % size
	if snd.note == 0 && !snd.repeat {
		snd.on = false
		snd.gen.Stop(t)
	}
}

// frequency of the current note. a value of zero indicates silence
func (snd *Sound) frequency() float64 {
	offset := snd.channel * singleChannelSize
	if snd.channel > singleChannelCount {
		offset += (snd.channel - singleChannelCount) * singleChannelSize
	}

	n := int(snd.srom[offset+snd.note])
	if n == 0 || n >= len(lfsr2div) {
		return 0
	}

	return snd.clock / snd.freqDiv / float64(lfsr2div[n]) * 2
}

// Off stops the sound immediately.
func (snd *Sound) Off() {
	snd.on = false
	snd.gen.Stop(snd.now())
}

// Channel selects a sound channel and starts playing from the first note.
func (snd *Sound) Channel(ch uint8) {
	snd.on = true
	snd.note = 0
	snd.channel = int(ch & 0x0f)
}

// OneShot sets the sequencer to stop at the end of the channel.
func (snd *Sound) OneShot() {
	snd.repeat = false
}

// Loop sets the sequencer to repeat the channel.
func (snd *Sound) Loop() {
	snd.repeat = true
}

// IsOn returns true if a channel is playing.
func (snd *Sound) IsOn() bool {
	return snd.on
}
