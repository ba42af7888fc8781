// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/gui/otoaudio"
	"github.com/jetsetilly/gopher8/gui/sdl"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// exit values.
const (
	exitFlagError  = 10
	exitFatalError = 20
)

// number of log entries to show after a fatal error.
const logTailOnError = 10

func init() {
	// SDL requires that all calls are made from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFlagError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "HEADLESS":
		err = headless(md, output)

	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		logger.Tail(logger.NewColorizer(os.Stderr), logTailOnError)
		return exitFatalError
	}

	return 0
}

// programFromArgs returns the loader for the single remaining argument.
func programFromArgs(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return romloader.Loader{}, err
	}
	return ld, nil
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

// vmFlags are the flags that change interpreter preferences. they are common
// to more than one mode.
type vmFlags struct {
	ipf      *int
	tickRate *int
	wrap     *bool
}

func addVMFlags(md *modalflag.Modes) vmFlags {
	return vmFlags{
		ipf:      md.AddInt("ipf", 0, "instructions per frame (0 uses the preferences value)"),
		tickRate: md.AddInt("tickrate", 0, "frames per second (0 uses the preferences value)"),
		wrap:     md.AddBool("wrap", false, "wrap sprites at the screen edges"),
	}
}

// apply flags that have been set on the command line to the preferences.
func (f vmFlags) apply(md *modalflag.Modes, p *preferences.Preferences) error {
	var err error
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "ipf":
			err = p.InstructionsPerFrame.Set(*f.ipf)
		case "tickrate":
			err = p.TickRate.Set(*f.tickRate)
		case "wrap":
			err = p.WrapSprites.Set(*f.wrap)
		}
	})
	return err
}

// newVM creates a VM with preferences loaded from disk, overridden by the
// command line.
func newVM(md *modalflag.Modes, f vmFlags) (*hardware.VM, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	if err := p.Load(); err != nil {
		return nil, err
	}
	if err := f.apply(md, p); err != nil {
		return nil, err
	}
	return hardware.NewVM(p)
}

const keypadHelp = `keypad layout:
  1 2 3 4        1 2 3 C
  Q W E R   ->   4 5 6 D
  A S D F        7 8 9 E
  Z X C V        A 0 B F
Escape stops the program`

// sampler is implemented by audio backends that can play a custom sample.
type sampler interface {
	SetSample(*audio.Sample)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	displayType := md.AddString("display", "SDL", "display type: SDL, TERMINAL")
	audioType := md.AddString("audio", "SDL", "audio type: SDL, OTO, NONE")
	scale := md.AddInt("scale", 0, "window scale (SDL display only)")
	vf := addVMFlags(md)
	volume := md.AddFloat64("volume", -1, "beep volume between 0 and 1 (negative uses the preferences value)")
	beep := md.AddString("beep", "", "WAV or MP3 file to use for the beep")
	wav := md.AddString("wav", "", "record audio to wav file")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the tick rate")
	prefsStr := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(keypadHelp)

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if *prefsStr != "" {
		prefs.PushCommandLineStack(*prefsStr)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	ld, err := programFromArgs(md)
	if err != nil {
		return err
	}

	vm, err := newVM(md, vf)
	if err != nil {
		return err
	}
	vm.SetFPSCap(*fpsCap)

	err = vm.LoadProgram(ld.Data)
	if err != nil {
		return err
	}

	tickRate := vm.Prefs.TickRate.Get().(int)

	var display hardware.Display
	var input hardware.Input

	switch strings.ToUpper(*displayType) {
	case "SDL":
		sp, err := sdl.NewPreferences()
		if err != nil {
			return err
		}
		if err := sp.Load(); err != nil {
			return err
		}
		if *scale > 0 {
			if err := sp.Scale.Set(*scale); err != nil {
				return err
			}
		}

		wnd, err := sdl.NewWindow(sp)
		if err != nil {
			return err
		}
		defer wnd.Destroy(os.Stderr)

		display = wnd
		input = wnd

	case "TERMINAL":
		trm, err := terminal.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer func() {
			if err := trm.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}()

		// log echo would corrupt the terminal display
		setLogEcho(false)

		display = trm
		input = trm

	default:
		return fmt.Errorf("unknown display type (%s)", *displayType)
	}

	ap, err := audio.NewPreferences()
	if err != nil {
		return err
	}
	if err := ap.Load(); err != nil {
		return err
	}
	if *volume >= 0 {
		if err := ap.Volume.Set(*volume); err != nil {
			return err
		}
	}

	var mix audio.Mix

	switch strings.ToUpper(*audioType) {
	case "SDL":
		aud, err := sdlaudio.NewAudio(ap, tickRate)
		if err != nil {
			return err
		}
		defer aud.Close()
		mix = append(mix, aud)

	case "OTO":
		aud, err := otoaudio.NewAudio(ap)
		if err != nil {
			return err
		}
		defer aud.Close()
		mix = append(mix, aud)

	case "NONE":

	default:
		return fmt.Errorf("unknown audio type (%s)", *audioType)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, ap, tickRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}()
		mix = append(mix, aw)
	}

	if *beep != "" {
		s, err := audio.LoadSample(*beep)
		if err != nil {
			return err
		}
		for _, a := range mix {
			if sm, ok := a.(sampler); ok {
				sm.SetSample(s)
			}
		}
	}

	var aud hardware.Audio
	if len(mix) > 0 {
		aud = mix
	}

	vm.Plumb(display, aud, input)

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	// ctrl-c stops the VM cleanly so that deferred functions are run
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	return vm.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: NONE, CPU, MEM, ALL")
	ipf := md.AddInt("ipf", 0, "instructions per frame (0 uses the default)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	ld, err := programFromArgs(md)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, ld, *ipf, *duration)
}
