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

// Package limiter paces the real time emulation loop. A Limiter triggers a
// fixed number of times per second:
//
//	lim, _ := limiter.New(60)
//	defer lim.Close()
//
//	for now := range lim.C() {
//		tickBrick(now)
//	}
//
// Triggers are scheduled against absolute deadlines so that a late trigger
// does not push back those that follow. If the consumer falls more than one
// second behind then the schedule is restarted rather than bursting to catch
// up.
package limiter

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidRate is returned by New() for rates less than one.
var ErrInvalidRate = errors.New("limiter: rate must be greater than zero")

// Limiter triggers at a fixed rate.
type Limiter struct {
	tick chan time.Time
	done chan struct{}
	once sync.Once

	crit   sync.Mutex
	period time.Duration
}

// New is the preferred method of initialisation for the Limiter type. The
// first trigger is immediate.
func New(rate int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan time.Time),
		done: make(chan struct{}),
	}
	if err := lim.SetRate(rate); err != nil {
		return nil, err
	}
	go lim.loop()
	return lim, nil
}

func (lim *Limiter) loop() {
	next := time.Now()
	for {
		select {
		case lim.tick <- next:
		case <-lim.done:
			return
		}

		lim.crit.Lock()
		next = next.Add(lim.period)
		lim.crit.Unlock()

		now := time.Now()
		if now.Sub(next) > time.Second {
			next = now
		}

		t := time.NewTimer(time.Until(next))
		select {
		case <-t.C:
		case <-lim.done:
			t.Stop()
			return
		}
	}
}

// SetRate changes the number of triggers per second. The change takes effect
// after the next trigger.
func (lim *Limiter) SetRate(rate int) error {
	if rate <= 0 {
		return ErrInvalidRate
	}
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.period = time.Second / time.Duration(rate)
	return nil
}

// Wait blocks until the next trigger.
func (lim *Limiter) Wait() time.Time {
	return <-lim.tick
}

// C returns the channel on which triggers are sent. The value is the
// scheduled time of the trigger. The channel is never closed.
func (lim *Limiter) C() <-chan time.Time {
	return lim.tick
}

// Close stops the limiter. It is safe to call more than once.
func (lim *Limiter) Close() {
	lim.once.Do(func() { close(lim.done) })
}
