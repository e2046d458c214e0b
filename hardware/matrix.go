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
	"slices"

	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
)

// matrix relays the level of an output pin to the input pins of the buttons
// that connect to it
type matrix struct {
	// the most recent level of every output pin that has changed
	driven map[pins.Ref]pins.Level

	// the buttons listening to an output pin, in the order they were pressed
	listeners map[pins.Ref][]pins.Ref
}

func newMatrix() matrix {
	return matrix{
		driven:    make(map[pins.Ref]pins.Level),
		listeners: make(map[pins.Ref][]pins.Ref),
	}
}

func (m *matrix) clear() {
	clear(m.driven)
	clear(m.listeners)
}

// register interest in the output pin and apply the level of the pin if it
// is known
func (m *matrix) press(core Core, btn device.Button) error {
	self := pins.Ref{Port: btn.Port, Pin: btn.Pin}
	through := *btn.Through

	if !slices.Contains(m.listeners[through], self) {
		m.listeners[through] = append(m.listeners[through], self)
	}

	if level, ok := m.driven[through]; ok {
		return core.PinSet(btn.Port, btn.Pin, level)
	}
	return nil
}

// remove the button from every output pin
func (m *matrix) release(btn device.Button) {
	self := pins.Ref{Port: btn.Port, Pin: btn.Pin}
	for through, l := range m.listeners {
		l = slices.DeleteFunc(l, func(r pins.Ref) bool {
			return r == self
		})
		if len(l) == 0 {
			delete(m.listeners, through)
		} else {
			m.listeners[through] = l
		}
	}
}

// record the new level of the output pin and relay it to the listeners.
// returns any errors from the core
func (m *matrix) changed(core Core, ref pins.Ref, level pins.Level) []error {
	m.driven[ref] = level

	var errs []error
	for _, l := range m.listeners[ref] {
		if err := core.PinSet(l.Port, l.Pin, level); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
