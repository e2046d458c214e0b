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

package prefs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKey is returned by Group.Set() when the key has not been added to
// the group.
var ErrUnknownKey = errors.New("prefs: unknown key")

type entry struct {
	p   pref
	def Value
}

// Group collates a number of preference values under string keys. Each
// preference has a default value which is applied when it is added and when
// the group is reset.
type Group struct {
	entries map[string]entry
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]entry),
	}
}

func (grp *Group) String() string {
	keys := grp.Keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, grp.entries[k].p))
	}
	return s.String()
}

// Add a preference value to the group with a default value. The preference
// is set to the default value immediately.
//
// If the key is present in the current command line group (see
// PushCommandLineStack()) then the command line value is used instead of the
// default value.
func (grp *Group) Add(key string, p pref, def Value) error {
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: %s already added", key)
	}
	grp.entries[key] = entry{p: p, def: def}

	if err := p.Set(def); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// Set the value of the preference with the given key.
func (grp *Group) Set(key string, v Value) error {
	e, ok := grp.entries[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := e.p.Set(v); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	return nil
}

// Reset all preferences in the group to their default values.
func (grp *Group) Reset() error {
	for _, k := range grp.Keys() {
		e := grp.entries[k]
		if err := e.p.Set(e.def); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// Keys returns the sorted list of keys in the group.
func (grp *Group) Keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
