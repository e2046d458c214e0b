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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
	"time"
)

// the state for the mode currently being parsed. replaced by every call to
// NewMode()
type mode struct {
	flags *flag.FlagSet

	// upper case. the first entry is the default
	subModes []string

	help   string
	parsed bool
}

func newMode() mode {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return mode{flags: fs}
}

// Modes parses a command line made up of nested modes, each with their own
// flags. Help messages are written to Output, which should be set before the
// first call to Parse().
type Modes struct {
	Output io.Writer

	// the mode being set up with the Add*() functions
	current mode

	// arguments yet to be consumed by Parse()
	args []string

	// arguments left over after the most recent Parse()
	remaining []string

	// sub-modes selected so far
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode or the empty string if no
// sub-mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every sub-mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs starts again with a new list of arguments. The selected sub-modes
// are forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.remaining = nil
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode forgets the flags, sub-modes and additional help of the previous
// mode. The arguments not consumed by the previous Parse() carry over.
func (md *Modes) NewMode() {
	md.current = newMode()
}

// AdditionalHelp sets text to be printed after the list of flags when help
// is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.current.help = help
}

// Parsed returns true if Parse() has been called for the current mode, even
// if it returned an error.
func (md *Modes) Parsed() bool {
	return md.current.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. check Mode() if sub-modes
	// were added
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned alongside
	ParseError
)

// Parse consumes the flags of the current mode and then, if sub-modes have
// been added, the name of a sub-mode. Sub-mode names are not case sensitive.
// If the next argument is not a sub-mode name then the default is selected
// and the argument is left alone.
//
// An unknown flag is an error for a mode without sub-modes. Otherwise the
// default sub-mode is selected and every argument is left for the next mode.
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	m := &md.current
	m.parsed = true

	if err := m.flags.Parse(md.args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			writeHelp(md.Output, md.Path(), flagDefaults(m.flags), m.subModes, m.help)
			return ParseHelp, nil
		}
		if len(m.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, m.subModes[0])
		md.remaining = md.args
		return ParseContinue, nil
	}

	md.args = m.flags.Args()
	if len(m.subModes) > 0 {
		md.path = append(md.path, md.selectSubMode())
	}
	md.remaining = md.args

	return ParseContinue, nil
}

// consume the next argument if it names a sub-mode. the default sub-mode is
// returned otherwise
func (md *Modes) selectSubMode() string {
	if len(md.args) > 0 {
		if s := strings.ToUpper(md.args[0]); slices.Contains(md.current.subModes, s) {
			md.args = md.args[1:]
			return s
		}
	}
	return md.current.subModes[0]
}

// RemainingArgs returns the arguments left over after the most recent
// Parse().
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns a remaining argument by index or the empty string if there
// is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}

// AddSubModes adds to the sub-modes of the current mode. The first sub-mode
// ever added is the default unless AddDefaultSubMode() is used.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.current.subModes = append(md.current.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode adds a sub-mode and makes it the default.
func (md *Modes) AddDefaultSubMode(subMode string) {
	md.current.subModes = slices.Insert(md.current.subModes, 0, strings.ToUpper(subMode))
}

// The Add functions define a flag for the current mode. The returned pointer
// holds the value after Parse().

func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.current.flags.Bool(name, value, usage)
}

func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.current.flags.Duration(name, value, usage)
}

func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.current.flags.Float64(name, value, usage)
}

func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.current.flags.Int(name, value, usage)
}

func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.current.flags.String(name, value, usage)
}

// Visit calls fn with the name of every flag set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.current.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
