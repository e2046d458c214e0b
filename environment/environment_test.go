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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gopherbrick/environment"
	"github.com/jetsetilly/gopherbrick/test"
)

func TestEnvironment(t *testing.T) {
	mainEnv, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mainEnv.AllowLogging())
	test.ExpectSuccess(t, mainEnv.IsMainEmulation())

	// a second emulation shares the preferences of the main emulation
	perf, err := environment.NewEnvironment("performance", mainEnv.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, perf.AllowLogging())
	test.ExpectEquality(t, perf.String(), "performance")
	test.ExpectEquality(t, mainEnv.String(), "main")

	test.ExpectSuccess(t, mainEnv.Prefs.Set("scheduler.speed", 2.0))
	test.ExpectEquality(t, perf.Prefs.Speed.Get().(float64), 2.0)

	test.ExpectSuccess(t, perf.Normalise())
	test.ExpectEquality(t, mainEnv.Prefs.Speed.Get().(float64), 1.0)
}
