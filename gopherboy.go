// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wrenhold/gopherboy/cartfix"
	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/debugger"
	"github.com/wrenhold/gopherboy/debugger/terminal"
	"github.com/wrenhold/gopherboy/debugger/terminal/colorterm"
	"github.com/wrenhold/gopherboy/debugger/terminal/plainterm"
	"github.com/wrenhold/gopherboy/disassembly"
	"github.com/wrenhold/gopherboy/logger"
	"github.com/wrenhold/gopherboy/modalflag"
	"github.com/wrenhold/gopherboy/performance"
	"github.com/wrenhold/gopherboy/playmode"
	"github.com/wrenhold/gopherboy/regression"
	"github.com/wrenhold/gopherboy/statsview"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/version"
)

// SDL wants window creation and event handling to happen on the main
// thread. every mode that opens a window runs its emulation loop from this
// goroutine.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "FIX", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough
	case "PLAY":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "FIX":
		err = fix(md)
	case "PERFORMANCE":
		err = perform(md)
	case "REGRESS":
		err = regress(md)
	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vrs, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scaling := md.AddFloat64("scale", 4.0, "window scaling")
	fpsIndicator := md.AddBool("fps", false, "show fps indicator in window title")
	wavFile := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		return playmode.Play(ld, float32(*scaling), *fpsIndicator, *wavFile)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		tv := television.NewTelevision()
		defer tv.End()

		dbg := debugger.NewDebugger(tv, term)
		return dbg.Start(ld)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromCartridge(ld)
		if err != nil {
			return err
		}

		return dsm.Write(md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func fix(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "", "output file (default is to overwrite the input file)")
	title := md.AddString("title", "", "set the title field in the header")
	validate := md.AddBool("validate", false, "report problems without fixing anything")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}

		problems := cartfix.Validate(data)
		for _, s := range problems {
			fmt.Fprintf(md.Output, "! %s\n", s)
		}

		if *validate {
			if len(problems) == 0 {
				fmt.Fprintln(md.Output, "no problems found")
			}
			return nil
		}

		opts := cartfix.DefaultOptions()
		if *title != "" {
			opts.Title = *title
			opts.SetTitle = true
		}

		fixed, err := cartfix.Fix(data, opts)
		if err != nil {
			return err
		}

		fn := *outFile
		if fn == "" {
			fn = md.GetArg(0)
		}

		return os.WriteFile(fn, fixed, 0644)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	display := md.AddBool("display", false, "display emulation output")
	scaling := md.AddFloat64("scale", 4.0, "window scaling (only valid if -display=true)")
	fpsCap := md.AddBool("fpscap", false, "cap fps to hardware rate (only valid if -display=true)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run with profiling: NONE, CPU, MEM, BOTH")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		return performance.Check(md.Output, prf, ld, *display, !*fpsCap, float32(*scaling), *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// yesReader is used to automatically confirm database deletions.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop the run on the first test error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "video", "digest mode: VIDEO, AUDIO")
	numFrames := md.AddInt("frames", 10, "number of frames to run")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// asking for log output suppresses the regression progress meter
	if *log {
		logger.SetEcho(os.Stdout)
		md.Output = io.Discard
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		dig, err := regression.ParseDigestMode(*mode)
		if err != nil {
			return err
		}

		reg := regression.NewFrameRegression(ld, dig, *numFrames)

		err = regression.RegressAdd(md.Output, reg)
		if err != nil {
			// carriage return so the error message overwrites the last
			// output from RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %v", err)
		}

		return nil
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}
}