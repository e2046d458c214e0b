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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherbrick/test"
)

const testBrick = `{
	"core": "HT943",
	"clock": 400000,
	"buttons": {
		"power": {"port": "PP", "pin": 0, "level": 0}
	},
	"mask_options": {
		"rom_path": "halt.bin",
		"timer_clock_div": 8,
		"port_pullup": {"PP": 15, "PS": 15, "PM": 15}
	}
}`

// write a .brick file and its ROM to a temporary directory
func brickFile(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	// MOV A,#5 ; HALT
	err := os.WriteFile(filepath.Join(dir, "halt.bin"), []uint8{0x75, 0x37, 0x00}, 0o644)
	test.DemandSuccess(t, err)

	fn := filepath.Join(dir, "test.brick")
	err = os.WriteFile(fn, []byte(testBrick), 0o644)
	test.DemandSuccess(t, err)

	return fn
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, tw), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "RUN, RECORD, EXAMINE, PERFORMANCE"))
}

func TestMissingBrick(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"EXAMINE"}, tw), exitModeError)

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"EXAMINE", "missing.brick"}, tw), exitModeError)
}

func TestExamine(t *testing.T) {
	fn := brickFile(t)

	tw := &test.CompareWriter{}
	exit := launch(context.Background(), []string{"EXAMINE", "-steps", "3", "-hold", "power", fn}, tw)
	test.ExpectEquality(t, exit, exitOK)

	out := tw.String()
	test.ExpectSuccess(t, strings.Contains(out, "HT943 @ 400000Hz (1 buttons)"))
	test.ExpectSuccess(t, strings.Contains(out, "power: PP:0"))
	test.ExpectSuccess(t, strings.Contains(out, "HALT=1"))

	// the brick logs its creation
	tw.Clear()
	exit = launch(context.Background(), []string{"EXAMINE", "-log", "5", fn}, tw)
	test.ExpectEquality(t, exit, exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "brick: created HT943"))

	tw.Clear()
	exit = launch(context.Background(), []string{"EXAMINE", "-hold", "fire", fn}, tw)
	test.ExpectEquality(t, exit, exitModeError)
}

func TestRun(t *testing.T) {
	fn := brickFile(t)

	tw := &test.CompareWriter{}
	exit := launch(context.Background(), []string{"-seconds", "0.1", "-speed", "2", fn}, tw)
	test.ExpectEquality(t, exit, exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "VRAM:"))

	tw.Clear()
	exit = launch(context.Background(), []string{"RUN", "-seconds", "0", fn}, tw)
	test.ExpectEquality(t, exit, exitModeError)

	// realtime run ends when the context is cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tw.Clear()
	exit = launch(ctx, []string{"RUN", "-realtime", "-seconds", "0", fn}, tw)
	test.ExpectEquality(t, exit, exitOK)
}

func TestRecord(t *testing.T) {
	fn := brickFile(t)
	wavFile := filepath.Join(t.TempDir(), "out.wav")

	tw := &test.CompareWriter{}
	exit := launch(context.Background(), []string{"RECORD", "-seconds", "0.5", "-o", wavFile, fn}, tw)
	test.DemandEquality(t, exit, exitOK)

	f, err := os.Open(wavFile)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(buf.Data) >= 22050)
}
