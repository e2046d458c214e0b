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

// Package device describes a brick: the CPU architecture, the system clock,
// the mask options that were fixed when the chip was manufactured and the
// wiring of the buttons.
//
// The description is usually decoded from a .brick file, which is a JSON
// document. For example (abbreviated):
//
//	{
//		"core": "HT943",
//		"clock": 400000,
//		"face_path": "assets/face.svg",
//		"mask_options": {
//			"rom_path": "assets/game.bin",
//			"sound_rom_path": "assets/game.srom",
//			"timer_clock_div": 128,
//			"port_pullup": {"PP": 15, "PS": 15, "PM": 15},
//			"port_wakeup": {"PP": 15, "PS": 0, "PM": 0},
//			...
//		},
//		"buttons": {
//			"btnLeft": {"port": "PP", "pin": 0, "level": 0, "hot_keys": [65]},
//			"btnFire": {"port": "PS", "pin": 1, "level": {"port": "IOP", "pin": 2}}
//		}
//	}
//
// A button with an object for a level is a matrix button. See the Button type
// for details.
package device

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by the device package.
var (
	ErrUnsupportedArchitecture = errors.New("device: unsupported architecture")
	ErrInvalidConfig           = errors.New("device: invalid configuration")
	ErrMissingROM              = errors.New("device: rom missing")
	ErrMissingSoundROM         = errors.New("device: sound rom missing")
)

// Architecture selects the CPU core of a device.
type Architecture string

// List of supported architectures.
const (
	HT943  Architecture = "HT943"
	T7741  Architecture = "T7741"
	SPLB20 Architecture = "SPLB20"
)

// Supported returns true if the architecture is one that can be emulated.
func (a Architecture) Supported() bool {
	switch a {
	case HT943, T7741, SPLB20:
		return true
	}
	return false
}

// MaskOptions are the options fixed in the chip at the time of manufacture.
// Not all fields are relevant to all architectures.
type MaskOptions struct {
	ROMPath      string `json:"rom_path"`
	SoundROMPath string `json:"sound_rom_path"`

	// HT943
	TimerClockDiv float64          `json:"timer_clock_div"`
	PortPullup    map[string]uint8 `json:"port_pullup"`
	PortWakeup    map[string]uint8 `json:"port_wakeup"`
	SoundFreqDiv  float64          `json:"sound_freq_div"`
	SoundSpeedDiv []int            `json:"sound_speed_div"`
	SoundEffect   []int            `json:"sound_effect"`

	// T7741
	ComDiv       float64   `json:"com_div"`
	SoundGnd     uint8     `json:"sound_gnd"`
	SubClock     float64   `json:"sub_clock"`
	PrescalerDiv []float64 `json:"prescaler_div"`

	// SPLB20. also uses PortPullup
	NonCrystalMode Flag `json:"non_crystal_mode"`
}

// Config is the complete description of a device.
type Config struct {
	Core     Architecture      `json:"core"`
	Clock    float64           `json:"clock"`
	FacePath string            `json:"face_path"`
	Mask     MaskOptions       `json:"mask_options"`
	Buttons  map[string]Button `json:"buttons"`
}

func (cfg *Config) String() string {
	return fmt.Sprintf("%s @ %.0fHz (%d buttons)", cfg.Core, cfg.Clock, len(cfg.Buttons))
}

// ButtonList returns the buttons of the device sorted by name.
func (cfg *Config) ButtonList() []Button {
	l := make([]Button, 0, len(cfg.Buttons))
	for _, b := range cfg.Buttons {
		l = append(l, b)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Name < l[j].Name
	})
	return l
}

// Validate checks that the configuration is usable for the selected
// architecture.
func (cfg *Config) Validate() error {
	if !cfg.Core.Supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedArchitecture, cfg.Core)
	}

	if cfg.Clock <= 0 {
		return fmt.Errorf("%w: clock must be greater than zero", ErrInvalidConfig)
	}

	switch cfg.Core {
	case HT943:
		if cfg.Mask.TimerClockDiv <= 0 {
			return fmt.Errorf("%w: timer_clock_div must be greater than zero", ErrInvalidConfig)
		}
	case T7741:
		if cfg.Mask.ComDiv <= 0 {
			return fmt.Errorf("%w: com_div must be greater than zero", ErrInvalidConfig)
		}
		if cfg.Mask.SubClock <= 0 {
			return fmt.Errorf("%w: sub_clock must be greater than zero", ErrInvalidConfig)
		}
		if len(cfg.Mask.PrescalerDiv) != 3 {
			return fmt.Errorf("%w: prescaler_div must have three entries", ErrInvalidConfig)
		}
		for _, d := range cfg.Mask.PrescalerDiv {
			if d <= 0 {
				return fmt.Errorf("%w: prescaler_div entries must be greater than zero", ErrInvalidConfig)
			}
		}
	}

	for name, b := range cfg.Buttons {
		if b.Port == "" {
			return fmt.Errorf("%w: button %s has no port", ErrInvalidConfig, name)
		}
	}

	return nil
}
