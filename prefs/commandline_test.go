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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherbrick/prefs"
	"github.com/jetsetilly/gopherbrick/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("scheduler.speed::2")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scheduler.speed::2")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// white space around keys and values is removed
	prefs.PushCommandLineStack("   scheduler.speed:: 2 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scheduler.speed::2")

	// unused pairs are returned sorted by key
	prefs.PushCommandLineStack("scheduler.speed::2; audio.epsilon::0.001")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "audio.epsilon::0.001; scheduler.speed::2")

	// pairs without a separator are ignored
	prefs.PushCommandLineStack("scheduler.speed")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("scheduler.speed;audio.epsilon::0.001")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "audio.epsilon::0.001")
}

func TestCommandLinePref(t *testing.T) {
	prefs.PushCommandLineStack("scheduler.speed::2;audio_epsilon")

	ok, _ := prefs.GetCommandLinePref("audio_epsilon")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("scheduler.speed")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "2")

	// the value is only returned once
	ok, _ = prefs.GetCommandLinePref("scheduler.speed")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("scheduler.speed::2")
	prefs.PushCommandLineStack("scheduler.cyclecap::100")

	// only the top of the stack is consulted
	ok, _ := prefs.GetCommandLinePref("scheduler.speed")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scheduler.cyclecap::100")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "scheduler.speed::2")
}
