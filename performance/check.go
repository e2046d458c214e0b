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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherbrick/environment"
	"github.com/jetsetilly/gopherbrick/hardware"
	"github.com/jetsetilly/gopherbrick/hardware/device"
)

// sentinal error returned by the runner loop.
var timedOut = errors.New("performance timed out")

// the label of the environment used by Check()
const Label = environment.Label("performance")

// the period of emulation before measurement begins
const leadTime = 2 * time.Second

// the number of instructions executed between checks of the timer channel.
// checking the channel on every instruction is relatively expensive
const performanceBrake = 10000

// Check the performance of the emulator using the supplied brick.
//
// Emulation will run as quickly as possible for the specified duration and
// will create a cpu, memory profile, a trace (or a combination of those) as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, bnd *device.Bundle, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be greater than zero")
	}

	env, err := environment.NewEnvironment(Label, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// sound is not required for performance measurement
	b, err := hardware.NewBrick(env, bnd.Config, nil, bnd.ROM, bnd.SoundROM)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startCycles float64

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// the lead time allows the emulation to settle down before the
		// measurement begins
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			b.Step(performanceBrake)

			select {
			case v := <-timerChan:
				// measurement period has finished
				if v {
					return timedOut
				}

				// lead time has concluded and the measurement has begun
				startCycles = b.Cycles()
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	cycles := b.Cycles() - startCycles
	hz, accuracy := CalcSpeed(cycles, dur.Seconds(), bnd.Config.Clock)
	output.Write([]byte(fmt.Sprintf("%.2f kHz (%.0f cycles in %.2f seconds) %.1f%%\n", hz/1000, cycles, dur.Seconds(), accuracy)))

	return nil
}
