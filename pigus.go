// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/pigus/pigus/audio"
	"github.com/pigus/pigus/audio/filesource"
	"github.com/pigus/pigus/audio/sinks"
	"github.com/pigus/pigus/environment"
	"github.com/pigus/pigus/hardware"
	"github.com/pigus/pigus/hardware/memory/psram"
	"github.com/pigus/pigus/logger"
	"github.com/pigus/pigus/modalflag"
	"github.com/pigus/pigus/performance"
	"github.com/pigus/pigus/prefs"
	"github.com/pigus/pigus/statsview"
	"github.com/pigus/pigus/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the command line and runs the selected mode. The return value
// is the exit status.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "AUDIOTEST", "PSRAMTEST", "PORTS", "DOT", "VERSION")
	md.AdditionalHelp(modeHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "AUDIOTEST":
		err = audioTest(md)

	case "PSRAMTEST":
		err = psramTest(md)

	case "PORTS":
		err = ports(md)

	case "DOT":
		err = dot(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

const modeHelp = `  RUN        impersonate the card on the bus
  AUDIOTEST  play a tone or file through the audio sink
  PSRAMTEST  check a range of PSRAM
  PORTS      list the port map for the configured base
  DOT        print the port map as a graphviz graph`

// number of log entries shown when the card fails to start and the log is
// not being echoed
const failureTail = 10

// whether the log is currently echoed to stdout
var echoing bool

func setEcho(on bool) {
	echoing = on
	if on {
		logger.SetEcho(logger.EchoWriter(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}
}

// the flags shared by every mode that creates a card
type cardFlags struct {
	prefs *string
	log   *bool
	base  *uint16
}

func addCardFlags(md *modalflag.Modes) cardFlags {
	return cardFlags{
		prefs: md.AddString("prefs", "", "preferences for this run only (key::value; ...)"),
		log:   md.AddBool("log", false, "echo log to stdout"),
		base:  md.AddPort("base", 0, "card i/o base (eg. 0x240)"),
	}
}

// newCard creates the main card. The command line preferences and the log
// echo are applied first. The -base flag overrides the card.base preference
// only when it is given.
func newCard(md *modalflag.Modes, flgs cardFlags, opts hardware.Options) (*hardware.Card, error) {
	setEcho(*flgs.log)

	if len(md.RemainingArgs()) > 0 {
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*flgs.prefs)
	defer prefs.PopCommandLineStack()

	env, err := environment.NewEnvironment(environment.MainCard, nil)
	if err != nil {
		return nil, err
	}

	if env.Prefs.LogEcho.Get().(bool) {
		setEcho(true)
	}

	md.Visit(func(flag string) {
		if flag == "base" && err == nil {
			err = env.Prefs.Base.Set(int(*flgs.base))
		}
	})
	if err != nil {
		return nil, err
	}

	return hardware.NewCard(env, opts)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCardFlags(md)
	profile := md.AddString("profile", "none", "run through profiler: cpu, mem, block, mutex, trace")
	profilePath := md.AddString("profilepath", ".", "directory for profile output")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	card, err := newCard(md, flgs, hardware.Options{Keyboard: true})
	if err != nil {
		return err
	}
	defer card.Close()

	if err := card.Initialize(); err != nil {
		if !echoing {
			logger.Tail(os.Stdout, failureTail)
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("* %s\n", card)

	return performance.Profile(*profile, *profilePath, func() error {
		return card.Run(ctx)
	})
}

// deadline stops the audio pump when the time is reached or the context is
// done.
type deadline struct {
	ctx context.Context
	end time.Time
}

func (d deadline) ShuttingDown() bool {
	return d.ctx.Err() != nil || time.Now().After(d.end)
}

func audioTest(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCardFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "length of the test")
	freq := md.AddInt("freq", 440, "frequency of the test tone (Hz)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*flgs.log)

	prefs.PushCommandLineStack(*flgs.prefs)
	env, err := environment.NewEnvironment(environment.MainCard, nil)
	prefs.PopCommandLineStack()
	if err != nil {
		return err
	}

	rate := env.Prefs.AudioRate.Get().(int)
	frames := env.Prefs.AudioFrames.Get().(int)

	var src audio.Source

	switch len(md.RemainingArgs()) {
	case 0:
		src = audio.NewTone(rate, float64(*freq))
		fmt.Printf("* %dHz tone\n", *freq)
	case 1:
		fs, err := filesource.Load(md.GetArg(0), rate)
		if err != nil {
			return err
		}
		src = fs
		fmt.Printf("* %s\n", md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sink, err := sinks.New(env.Prefs.AudioSink.String(), sinks.Options{
		Rate:    rate,
		Frames:  frames,
		WavFile: env.Prefs.WavFile.String(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pump := audio.NewPump(src, sink, frames)
	err = pump.Run(deadline{ctx: ctx, end: time.Now().Add(*duration)})

	if cerr := sink.Close(); err == nil {
		err = cerr
	}

	fmt.Printf("* %d batches of %d frames\n", pump.Batches(), pump.Frames())

	return err
}

func psramTest(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCardFlags(md)
	start := md.AddUint64("start", 0, "first address to check")
	length := md.AddUint64("length", 0x10000, "number of bytes to check")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	card, err := newCard(md, flgs, hardware.Options{})
	if err != nil {
		return err
	}
	defer card.Close()

	if err := card.Memory.Reset(psram.MinTimings); err != nil {
		return err
	}

	res, err := card.Memory.Check(uint32(*start), uint32(*length))
	if err != nil {
		return err
	}

	fmt.Printf("* %s\n", card.Memory)
	fmt.Printf("* %s\n", res)

	return nil
}

func ports(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	card, err := newCard(md, flgs, hardware.Options{})
	if err != nil {
		return err
	}
	defer card.Close()

	fmt.Print(card.Describe())

	return nil
}

func dot(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCardFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	card, err := newCard(md, flgs, hardware.Options{})
	if err != nil {
		return err
	}
	defer card.Close()

	memviz.Map(os.Stdout, &card.Layout, card.Ports)

	return nil
}
