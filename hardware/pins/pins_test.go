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

package pins_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherbrick/hardware/pins"
	"github.com/jetsetilly/gopherbrick/test"
)

func TestBroadcaster(t *testing.T) {
	var b pins.Broadcaster
	var log []string

	a := b.Attach(pins.ListenerFunc(func(port string, pin int, level pins.Level) {
		log = append(log, fmt.Sprintf("a %s:%d %s", port, pin, level))
	}))
	b.Attach(pins.ListenerFunc(func(port string, pin int, level pins.Level) {
		log = append(log, fmt.Sprintf("b %s:%d %s", port, pin, level))
	}))
	test.ExpectEquality(t, b.Len(), 2)

	b.Notify("OUTP", 2, pins.High)
	test.DemandEquality(t, len(log), 2)
	test.ExpectEquality(t, log[0], "a OUTP:2 high")
	test.ExpectEquality(t, log[1], "b OUTP:2 high")

	b.Detach(a)
	b.Detach(a)
	test.ExpectEquality(t, b.Len(), 1)

	log = log[:0]
	b.Notify("IOP", 0, pins.Low)
	test.DemandEquality(t, len(log), 1)
	test.ExpectEquality(t, log[0], "b IOP:0 low")
}

func TestRef(t *testing.T) {
	r := pins.Ref{Port: "PP", Pin: 3}
	test.ExpectEquality(t, r.String(), "PP:3")
}
