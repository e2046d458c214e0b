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

package tone_test

import (
	"testing"

	"github.com/jetsetilly/gopherbrick/hardware/tone"
	"github.com/jetsetilly/gopherbrick/test"
)

func TestRecorder(t *testing.T) {
	var rec tone.Recorder
	rec.Play(440, false, 1, 0.5)
	rec.Play(100, true, 0.5, 0.75)
	rec.Stop(1)
	test.ExpectEquality(t, rec.String(), "0.500000 play 440.00Hz amp=1.00\n0.750000 noise 100.00Hz amp=0.50\n1.000000 stop\n")

	rec.Clear()
	test.ExpectEquality(t, len(rec.Events), 0)
}

func TestTimelineMonotonic(t *testing.T) {
	var rec tone.Recorder
	tl := tone.NewTimeline(&rec, 0.00025, 0.05)
	tl.Rebase(0)

	// timestamps out of order and some identical
	for _, at := range []float64{0.1, 0.1, 0.05, 0.2, 0.2, 0.0, 0.3} {
		tl.Play(1000, false, 1, at)
	}

	test.DemandEquality(t, len(rec.Events), 7)
	for i := 1; i < len(rec.Events); i++ {
		gap := rec.Events[i].At - rec.Events[i-1].At
		test.ExpectSuccess(t, gap >= 0.00025-1e-12, i)
	}

	// the first event is mapped relative to the rebase point
	test.ExpectApproximate(t, rec.Events[0].At, 0.15, 0.0001)
}

func TestTimelineRebase(t *testing.T) {
	var rec tone.Recorder
	tl := tone.NewTimeline(&rec, 0.00025, 0.05)
	tl.Rebase(0)

	tl.Play(1000, false, 1, 1.0)
	test.ExpectApproximate(t, tl.Last(), 1.05, 0.0001)

	// pause for a while and rebase. the emulated time hasn't advanced but the
	// output time must continue forwards
	tl.Rebase(1.0)
	tl.Stop(1.0)
	test.DemandEquality(t, len(rec.Events), 2)
	test.ExpectSuccess(t, rec.Events[1].At > rec.Events[0].At)
	test.ExpectApproximate(t, rec.Events[1].At, 1.10025, 0.0001)
}

func TestTimelineOutputClock(t *testing.T) {
	var rec tone.Recorder
	tl := tone.NewTimeline(&rec, 0.00025, 0.05)

	now := 10.0
	tl.SetOutputClock(func() float64 { return now })
	tl.Rebase(0)

	tl.Play(1000, false, 1, 0.0)
	test.ExpectApproximate(t, rec.Events[0].At, 10.05025, 0.00001)

	// the output clock has moved past the emulated timeline. events are never
	// scheduled in the past
	now = 20.0
	tl.Play(1000, false, 1, 0.001)
	test.ExpectApproximate(t, rec.Events[1].At, 20.01, 0.00001)
}
