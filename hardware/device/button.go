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

package device

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gopherbrick/hardware/pins"
)

// Button describes how a logical control is wired to the CPU.
//
// A direct button drives Port/Pin to Level when pressed. A matrix button is
// wired through another pin (Through) which the CPU itself drives as an
// output. When pressed, Port/Pin follows the level of the Through pin.
type Button struct {
	Name    string
	Port    string
	Pin     int
	Level   pins.Level
	Through *pins.Ref
	HotKeys []int
}

func (b Button) String() string {
	if b.Through != nil {
		return fmt.Sprintf("%s: %s:%d through %s", b.Name, b.Port, b.Pin, b.Through)
	}
	return fmt.Sprintf("%s: %s:%d %s", b.Name, b.Port, b.Pin, b.Level)
}

// IsMatrix returns true if the button is wired through another pin.
func (b Button) IsMatrix() bool {
	return b.Through != nil
}

// the JSON representation of a button. the level field can be a number or an
// object
type jsonButton struct {
	Port    string          `json:"port"`
	Pin     int             `json:"pin"`
	Level   json.RawMessage `json:"level"`
	HotKeys []int           `json:"hot_keys"`
}

type jsonRef struct {
	Port string `json:"port"`
	Pin  int    `json:"pin"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *Button) UnmarshalJSON(data []byte) error {
	var jb jsonButton
	if err := json.Unmarshal(data, &jb); err != nil {
		return err
	}

	b.Port = jb.Port
	b.Pin = jb.Pin
	b.HotKeys = jb.HotKeys
	b.Level = pins.Low
	b.Through = nil

	lvl := bytes.TrimSpace(jb.Level)
	if len(lvl) == 0 || bytes.Equal(lvl, []byte("null")) {
		return nil
	}

	if lvl[0] == '{' {
		var ref jsonRef
		if err := json.Unmarshal(lvl, &ref); err != nil {
			return fmt.Errorf("button level: %w", err)
		}
		b.Through = &pins.Ref{Port: ref.Port, Pin: ref.Pin}
		return nil
	}

	var n int
	if err := json.Unmarshal(lvl, &n); err != nil {
		return fmt.Errorf("button level: %w", err)
	}
	b.Level = pins.Level(n & 1)

	return nil
}

// Flag is a boolean that can be decoded from either a JSON boolean or a JSON
// number. Any non-zero number is true.
type Flag bool

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag: %w", err)
	}
	*f = n != 0
	return nil
}
