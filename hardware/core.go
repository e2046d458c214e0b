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
	"fmt"

	"github.com/jetsetilly/gopherbrick/hardware/cpu/ht4bit"
	"github.com/jetsetilly/gopherbrick/hardware/cpu/splb20"
	"github.com/jetsetilly/gopherbrick/hardware/cpu/t7741"
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/hardware/tone"
)

// Core is the interface implemented by every CPU core.
type Core interface {
	// Clock executes one instruction and returns the number of cycles
	// consumed
	Clock() float64

	// Reset does not rewind the clock used to timestamp sound events. that
	// clock is the sum of every value returned by Clock()
	Reset()
	PinSet(port string, pin int, level pins.Level) error
	PinRelease(port string, pin int) error

	// VRAM returns a copy of the display memory. the format depends on the
	// core
	VRAM() []uint8
}

// PinNotifier is implemented by cores that report changes to output pins.
type PinNotifier interface {
	Pins() *pins.Broadcaster
}

// Examiner is implemented by cores that can produce a snapshot of their
// state.
type Examiner interface {
	Examine() fmt.Stringer
}

// the cores return concrete State types from their Examine() functions
type examiner[S fmt.Stringer] struct {
	examine func() S
}

func (e examiner[S]) Examine() fmt.Stringer {
	return e.examine()
}

// NewCore creates the core specified by the configuration. The srom argument
// is only used by cores that have a sound ROM and can be nil otherwise.
func NewCore(cfg *device.Config, gen tone.Generator, rom []uint8, srom []uint8) (Core, error) {
	switch cfg.Core {
	case device.HT943:
		mc, err := ht4bit.NewHT943(cfg, gen, rom, srom)
		if err != nil {
			return nil, err
		}
		return mc, nil
	case device.T7741:
		mc, err := t7741.NewCPU(cfg, gen, rom)
		if err != nil {
			return nil, err
		}
		return mc, nil
	case device.SPLB20:
		mc, err := splb20.NewCPU(cfg, gen, rom)
		if err != nil {
			return nil, err
		}
		return mc, nil
	}
	return nil, fmt.Errorf("%w: %s", device.ErrUnsupportedArchitecture, cfg.Core)
}

// examinerFor returns an Examiner for the core. Returns false if the core
// does not support examination.
func examinerFor(core Core) (Examiner, bool) {
	switch mc := core.(type) {
	case *ht4bit.CPU:
		return examiner[ht4bit.State]{examine: mc.Examine}, true
	case *t7741.CPU:
		return examiner[t7741.State]{examine: mc.Examine}, true
	case *splb20.CPU:
		return examiner[splb20.State]{examine: mc.Examine}, true
	case Examiner:
		return mc, true
	}
	return nil, false
}
