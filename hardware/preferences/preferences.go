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

// Package preferences collates the preference values that affect how a brick
// is scheduled. Values can be overridden from the command line with the prefs
// command line stack. For example:
//
//	prefs.PushCommandLineStack("scheduler.speed::2; scheduler.cyclecap::40000")
//
// must be called before NewPreferences().
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopherbrick/prefs"
)

// Default values for the preferences.
const (
	DefaultSpeed         = 1.0
	DefaultCycleCap      = 20000
	DefaultAudioEpsilon  = 0.00025
	DefaultAudioLeadTime = 0.05
)

// Preferences defines and collates all the preference values used by the
// scheduler.
type Preferences struct {
	grp *prefs.Group

	// speed multiplier applied to the cycle budget of every tick
	Speed prefs.Float

	// maximum number of cycles that will be run in a single tick. protects
	// against catch-up bursts after a long stall
	CycleCap prefs.Int

	// minimum gap, in seconds, between two scheduled audio events
	AudioEpsilon prefs.Float

	// the amount of time, in seconds, between a timeline rebase and the first
	// audio event
	AudioLeadTime prefs.Float
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.Speed.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("preferences: speed must be greater than zero")
		}
		return nil
	})

	p.CycleCap.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("preferences: cycle cap must be greater than zero")
		}
		return nil
	})

	p.AudioEpsilon.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return fmt.Errorf("preferences: audio epsilon must not be negative")
		}
		return nil
	})

	err := p.grp.Add("scheduler.speed", &p.Speed, DefaultSpeed)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("scheduler.cyclecap", &p.CycleCap, DefaultCycleCap)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("audio.epsilon", &p.AudioEpsilon, DefaultAudioEpsilon)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("audio.leadtime", &p.AudioLeadTime, DefaultAudioLeadTime)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	return p.grp.Reset()
}

// Set the preference with the given key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}
