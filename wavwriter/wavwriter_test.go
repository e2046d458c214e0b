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

package wavwriter_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherbrick/test"
	"github.com/jetsetilly/gopherbrick/wavwriter"
)

// write the audio to a temporary file and decode it again
func decode(t *testing.T, aw *wavwriter.WavWriter, end float64) []int {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "test.wav")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, aw.Encode(f, end))
	test.DemandSuccess(t, f.Close())

	f, err = os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(wavwriter.SampleRate))
	test.ExpectEquality(t, dec.BitDepth, uint16(wavwriter.BitDepth))
	test.ExpectEquality(t, dec.NumChans, uint16(wavwriter.NumChans))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	return buf.Data
}

func TestSquare(t *testing.T) {
	aw, err := wavwriter.New("unused.wav")
	test.DemandSuccess(t, err)

	// 100 samples per period
	aw.Play(441, false, 1.0, 0)
	aw.Stop(0.5)
	test.ExpectEquality(t, aw.Samples(), 22050)

	data := decode(t, aw, 1.0)
	test.DemandEquality(t, len(data), 44100)

	test.ExpectEquality(t, data[25], 0x2000)
	test.ExpectEquality(t, data[75], -0x2000)
	test.ExpectEquality(t, data[125], 0x2000)

	// silence after the tone has stopped
	test.ExpectEquality(t, data[30000], 0)
}

func TestDC(t *testing.T) {
	aw, err := wavwriter.New("unused.wav")
	test.DemandSuccess(t, err)

	aw.Stop(0.25)
	aw.Play(0, false, 0.5, 0.25)
	aw.Stop(0.5)

	data := decode(t, aw, 0.5)
	test.DemandEquality(t, len(data), 22050)
	test.ExpectEquality(t, data[100], 0)
	test.ExpectEquality(t, data[11100], 0x1000)
	test.ExpectEquality(t, data[22000], 0x1000)
}

func TestNoise(t *testing.T) {
	aw, err := wavwriter.New("unused.wav")
	test.DemandSuccess(t, err)

	aw.Play(1000, true, 1.0, 0)

	data := decode(t, aw, 0.5)
	test.DemandEquality(t, len(data), 22050)

	var high, low int
	for _, v := range data {
		switch v {
		case 0x2000:
			high++
		case -0x2000:
			low++
		}
	}
	test.ExpectEquality(t, high+low, len(data))
	test.ExpectSuccess(t, high > 0)
	test.ExpectSuccess(t, low > 0)
}

func TestTimeReversed(t *testing.T) {
	aw, err := wavwriter.New("unused.wav")
	test.DemandSuccess(t, err)

	aw.Play(441, false, 1.0, 0.5)
	aw.Stop(0.25)

	fn := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	err = aw.Encode(f, 1.0)
	test.ExpectSuccess(t, errors.Is(err, wavwriter.ErrTimeReversed))
}

func TestWrite(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "test.wav")
	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	aw.Play(441, false, 1.0, 0)
	test.ExpectSuccess(t, aw.Write(0.5))
	test.ExpectEquality(t, aw.Seconds(), 0.5)

	st, err := os.Stat(fn)
	test.DemandSuccess(t, err)

	// 44 byte header and two bytes per sample
	test.ExpectEquality(t, st.Size(), int64(44+22050*2))
}
