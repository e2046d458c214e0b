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
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherbrick/environment"
	"github.com/jetsetilly/gopherbrick/hardware"
	"github.com/jetsetilly/gopherbrick/hardware/device"
	"github.com/jetsetilly/gopherbrick/logger"
	"github.com/jetsetilly/gopherbrick/modalflag"
	"github.com/jetsetilly/gopherbrick/performance"
	"github.com/jetsetilly/gopherbrick/prefs"
	"github.com/jetsetilly/gopherbrick/statsview"
	"github.com/jetsetilly/gopherbrick/wavwriter"
	"golang.org/x/term"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc stops the emulation cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)

	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "RECORD", "EXAMINE", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "RECORD":
		err = record(md)

	case "EXAMINE":
		err = examine(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// the single argument of every mode is the path to a .brick file
func loadBrick(md *modalflag.Modes) (*device.Bundle, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf(".brick file required for %s mode", md)
	case 1:
		return device.Load(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// echo the log to the output. the output is colorized if it is a terminal
func setEcho(output io.Writer, echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output), true)
	} else {
		logger.SetEcho(output, true)
	}
}

// press every button in the comma separated list
func hold(b *hardware.Brick, cfg *device.Config, buttons string) error {
	if buttons == "" {
		return nil
	}
	for _, n := range strings.Split(buttons, ",") {
		n = strings.TrimSpace(n)
		btn, ok := cfg.Buttons[n]
		if !ok {
			return fmt.Errorf("no button named %q", n)
		}
		if err := b.Press(btn); err != nil {
			return err
		}
	}
	return nil
}

func writeFrame(output io.Writer, b *hardware.Brick) {
	fmt.Fprintf(output, "%s\n", b)
	fmt.Fprintf(output, "VRAM: % 02x\n", b.Frame())
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	seconds := md.AddFloat64("seconds", 1.0, "emulated seconds to run for. zero runs until interrupted (realtime only)")
	realtime := md.AddBool("realtime", false, "run in step with the wall clock")
	fps := md.AddInt("fps", 60, "host frame rate when running in realtime")
	speed := md.AddFloat64("speed", 1.0, "emulation speed multiplier")
	buttons := md.AddString("hold", "", "comma separated list of buttons held for the duration of the run")
	prefsOverride := md.AddString("prefs", "", "preferences override, eg. \"scheduler.cyclecap::40000\"")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp("available preferences: scheduler.speed, scheduler.cyclecap, audio.epsilon, audio.leadtime")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(md.Output, *log)

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	bnd, err := loadBrick(md)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	b, err := hardware.NewBrick(env, bnd.Config, nil, bnd.ROM, bnd.SoundROM)
	if err != nil {
		return err
	}

	// the speed flag is only applied if it has been set explicitly. this
	// allows the -prefs flag to set the speed
	var speedSet bool
	md.Visit(func(flag string) {
		speedSet = speedSet || flag == "speed"
	})
	if speedSet {
		if err := b.SetSpeed(*speed); err != nil {
			return err
		}
	}

	if err := hold(b, bnd.Config, *buttons); err != nil {
		return err
	}

	if *realtime {
		target := b.EmulatedSeconds() + *seconds
		err = b.Run(ctx, *fps, func() bool {
			return *seconds <= 0 || b.EmulatedSeconds() < target
		})
		if err != nil {
			return err
		}
	} else {
		if *seconds <= 0 {
			return fmt.Errorf("seconds must be greater than zero when not running in realtime")
		}
		b.RunFor(*seconds)
	}

	writeFrame(md.Output, b)

	return nil
}

func record(md *modalflag.Modes) error {
	md.NewMode()

	seconds := md.AddFloat64("seconds", 5.0, "emulated seconds to record")
	wav := md.AddString("o", "", "wav file to write to (default is the name of the .brick file)")
	buttons := md.AddString("hold", "", "comma separated list of buttons held for the duration of the recording")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *seconds <= 0 {
		return fmt.Errorf("seconds must be greater than zero")
	}

	bnd, err := loadBrick(md)
	if err != nil {
		return err
	}

	if *wav == "" {
		fn := md.GetArg(0)
		*wav = fmt.Sprintf("%s.wav", strings.TrimSuffix(fn, filepath.Ext(fn)))
	}

	aw, err := wavwriter.New(*wav)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	b, err := hardware.NewBrick(env, bnd.Config, aw, bnd.ROM, bnd.SoundROM)
	if err != nil {
		return err
	}

	if err := hold(b, bnd.Config, *buttons); err != nil {
		return err
	}

	b.RunFor(*seconds)

	// RunFor() pauses the brick on return, which stops any sound. the last
	// timestamp of the timeline is therefore the end of the recording
	err = aw.Write(b.Timeline().Last())
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%.2f seconds of audio written to %s\n", aw.Seconds(), *wav)

	return nil
}

func examine(md *modalflag.Modes) error {
	md.NewMode()

	seconds := md.AddFloat64("seconds", 0.0, "emulated seconds to run before examining")
	steps := md.AddInt("steps", 0, "number of instructions to step after running")
	buttons := md.AddString("hold", "", "comma separated list of buttons held while running")
	tail := md.AddInt("log", 0, "number of recent log entries to print")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	bnd, err := loadBrick(md)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	b, err := hardware.NewBrick(env, bnd.Config, nil, bnd.ROM, bnd.SoundROM)
	if err != nil {
		return err
	}

	if err := hold(b, bnd.Config, *buttons); err != nil {
		return err
	}

	if *seconds > 0 {
		b.RunFor(*seconds)
	}
	if *steps > 0 {
		b.Step(*steps)
	}

	fmt.Fprintf(md.Output, "%s\n", bnd.Config)
	for _, btn := range bnd.Config.ButtonList() {
		fmt.Fprintf(md.Output, "  %s\n", btn)
	}

	if s, ok := b.Examine(); ok {
		fmt.Fprintf(md.Output, "%s\n", s)
	}

	writeFrame(md.Output, b)

	if *tail > 0 {
		logger.Tail(md.Output, *tail)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	bnd, err := loadBrick(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, bnd, *duration)
}
