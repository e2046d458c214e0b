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
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/gopherbrick/performance/limiter"
)

// Run the emulation in real time at the specified number of ticks per
// second. The limit function is called after every tick and the emulation
// will stop when it returns false. A nil limit function means the emulation
// will run until the context is cancelled.
//
// The emulation is paused when Run() returns.
func (b *Brick) Run(ctx context.Context, fps int, limit func() bool) error {
	lim, err := limiter.New(fps)
	if err != nil {
		return fmt.Errorf("brick: %w", err)
	}
	defer lim.Close()

	b.Start()
	defer b.Pause()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-lim.C():
		}

		now := time.Now()
		b.Tick(now.Sub(last))
		last = now

		if limit != nil && !limit() {
			return nil
		}
	}
}

// the fixed step used by RunFor()
const headlessStep = time.Second / 60

// RunFor runs the emulation as quickly as possible until the specified
// number of emulated seconds have passed. The running state of the brick is
// restored before returning.
func (b *Brick) RunFor(seconds float64) {
	target := b.EmulatedSeconds() + seconds

	if !b.running {
		b.Start()
		defer b.Pause()
	}

	for b.EmulatedSeconds() < target {
		b.Tick(headlessStep)
	}
}
