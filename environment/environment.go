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

// Package environment describes the context in which a brick is emulated.
// More than one brick can be emulated at once, for example when measuring
// performance alongside an interactive session, and the environment decides
// which of them may log and whether they share preferences.
package environment

import (
	"fmt"

	"github.com/jetsetilly/gopherbrick/hardware/preferences"
)

// Label names an environment.
type Label string

// MainEmulation is the label of the emulation the user is interacting with.
const MainEmulation = Label("")

// Environment is passed to a brick on creation.
type Environment struct {
	Label Label
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil then the environment gets preferences of
// its own. Otherwise the preferences are shared.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	if prefs == nil {
		var err error
		if prefs, err = preferences.NewPreferences(); err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}
	return &Environment{Label: label, Prefs: prefs}, nil
}

func (env *Environment) String() string {
	if env.IsMainEmulation() {
		return "main"
	}
	return string(env.Label)
}

// Normalise returns the preferences to their defaults so that every run
// starts from the same state.
func (env *Environment) Normalise() error {
	return env.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation logs.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}

// IsMainEmulation returns true if the environment has the MainEmulation
// label.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}
