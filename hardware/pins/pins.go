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

// Package pins defines the types shared by the CPU cores and the scheduler
// when talking about the physical pins of a device.
//
// Pins are addressed by port name and pin number. Cores that drive pins as
// outputs notify interested parties through a Broadcaster. The scheduler uses
// this to relay button-matrix wiring without the core knowing about it.
package pins

import (
	"errors"
	"fmt"
)

// ErrInvalidPort is returned by PinSet() and PinRelease() implementations
// when the port or pin is not recognised.
var ErrInvalidPort = errors.New("pins: invalid port reference")

// Level of a pin.
type Level uint8

// List of valid Level values.
const (
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	if l == Low {
		return "low"
	}
	return "high"
}

// Ref identifies a single pin of a named port.
type Ref struct {
	Port string
	Pin  int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.Port, r.Pin)
}

// Listener implementations are notified when a core changes the level of an
// output pin.
type Listener interface {
	PinChanged(port string, pin int, level Level)
}

// ListenerFunc allows a function to be used as a Listener.
type ListenerFunc func(port string, pin int, level Level)

// PinChanged implements the Listener interface.
func (f ListenerFunc) PinChanged(port string, pin int, level Level) {
	f(port, pin, level)
}

type registration struct {
	id int
	l  Listener
}

// Broadcaster sends pin changes to every attached Listener in the order they
// were attached. The zero value is ready to use.
type Broadcaster struct {
	listeners []registration
	nextID    int
}

// Attach a listener. The returned value should be used with Detach().
func (b *Broadcaster) Attach(l Listener) int {
	b.nextID++
	b.listeners = append(b.listeners, registration{id: b.nextID, l: l})
	return b.nextID
}

// Detach the listener with the specified ID. Unknown IDs are ignored.
func (b *Broadcaster) Detach(id int) {
	for i := range b.listeners {
		if b.listeners[i].id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of attached listeners.
func (b *Broadcaster) Len() int {
	return len(b.listeners)
}

// Notify all listeners of a pin change.
func (b *Broadcaster) Notify(port string, pin int, level Level) {
	for _, r := range b.listeners {
		r.l.PinChanged(port, pin, level)
	}
}
