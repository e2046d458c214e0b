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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherbrick/logger"
	"github.com/jetsetilly/gopherbrick/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Write(w)
	test.ExpectSuccess(t, w.Compare(""))

	log.Log(logger.Allow, "HT943", "reset")
	log.Log(logger.Allow, "HT943", "wakeup from PP:0")

	for _, tc := range []struct {
		n   int
		out string
	}{
		{n: 10, out: "HT943: reset\nHT943: wakeup from PP:0\n"},
		{n: 2, out: "HT943: reset\nHT943: wakeup from PP:0\n"},
		{n: 1, out: "HT943: wakeup from PP:0\n"},
		{n: 0, out: ""},
	} {
		w.Clear()
		log.Tail(w, tc.n)
		test.ExpectEquality(t, w.String(), tc.out, fmt.Sprintf("tail %d", tc.n))
	}
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	var primary bool
	perm := logger.PermissionFunc(func() bool { return primary })

	log.Log(perm, "T7741", "reset")
	log.Log(logger.Deny, "T7741", "reset")
	log.Write(w)
	test.ExpectSuccess(t, w.Compare(""))

	primary = true
	log.Log(perm, "T7741", "reset")
	log.Write(w)
	test.ExpectSuccess(t, w.Compare("T7741: reset\n"))
}

type pcValue uint16

func (pc pcValue) String() string {
	return fmt.Sprintf("PC=%03x", uint16(pc))
}

func TestDetailTypes(t *testing.T) {
	err := errors.New("unknown opcode")

	for _, tc := range []struct {
		detail any
		out    string
	}{
		{detail: err, out: "tag: unknown opcode\n"},
		{detail: fmt.Errorf("splb20: %w", err), out: "tag: splb20: unknown opcode\n"},
		{detail: pcValue(0xf00), out: "tag: PC=f00\n"},
		{detail: 100, out: "tag: 100\n"},
		{detail: "multiple\nlines", out: "tag: multiplelines\n"},
	} {
		log := logger.NewLogger(10)
		w := &strings.Builder{}
		log.Log(logger.Allow, "tag", tc.detail)
		log.Write(w)
		test.ExpectEquality(t, w.String(), tc.out)
	}
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for range 3 {
		log.Logf(logger.Allow, "SPLB20", "restart from %s", "NMI")
	}
	log.Log(logger.Allow, "SPLB20", "reset")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "SPLB20: restart from NMI (repeat x3)\nSPLB20: reset\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")

	n := 0
	log.BorrowLog(func(e []logger.Entry) { n = len(e) })
	test.ExpectEquality(t, n, 2)
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "early", "entry")
	log.SetEcho(w, true)
	test.ExpectEquality(t, w.String(), "early: entry\n")

	w.Reset()
	log.Log(logger.Allow, "later", "entry")
	test.ExpectEquality(t, w.String(), "later: entry\n")

	w.Reset()
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "silent", "entry")
	test.ExpectEquality(t, w.String(), "")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	c.Write([]byte("single line\n"))
	test.ExpectEquality(t, w.String(), "single line\n")

	w.Reset()
	c.Write([]byte("  first\nsecond\nthird\n"))
	test.ExpectEquality(t, w.String(), "first\n\033[2;31msecond\nthird\n\033[0m")
}
