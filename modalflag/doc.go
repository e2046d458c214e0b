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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes (and sub-modes), each with its own set of flags.
//
// Arguments are supplied once with NewArgs(). Each call to Parse() consumes
// the flags it recognises and, if sub-modes have been added, the name of the
// selected sub-mode. The arguments that remain are available through
// RemainingArgs() and GetArg(). For example, handling exactly one argument:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	if len(md.RemainingArgs()) != 1 {
//		return fmt.Errorf("exactly one argument required")
//	}
//	process(md.GetArg(0), *verbose)
//
// Sub-modes are added with AddSubModes(). The first sub-mode is the default
// and is selected if the first argument after the flags does not name a
// sub-mode. Sub-mode names are case insensitive and Mode() always returns the
// upper case name.
//
//	md.AddSubModes("run", "record", "examine")
//	md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		runMode(md)
//	case "RECORD":
//		recordMode(md)
//	}
//
// A mode function begins with NewMode(), which replaces the flags and
// sub-modes of the previous Parse(), adds its own flags and then calls
// Parse() again:
//
//	func runMode(md *modalflag.Modes) error {
//		md.NewMode()
//		runtime := md.AddDuration("runtime", 10*time.Second, "max run time")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		return run(md.RemainingArgs(), *runtime)
//	}
//
// Modes can be nested as deeply as required. Path() returns every mode
// selected so far, separated by a slash.
//
// Help is printed automatically when the -help flag is given, listing the
// flags and sub-modes of the current mode.
package modalflag
