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

// Package modalflag handles command line arguments that are divided into
// modes. A mode is a word that changes which flags and arguments are valid
// from that point on. For example:
//
//	gopherboy debug -termcolor roms/tetris.gb
//
// selects the DEBUG mode, with flags that only apply to the debugger. Modes
// can in principle nest but this project only uses a single level.
package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes provides a way of handling command line arguments that are grouped
// into modes. The Output field should be specified before calling Parse() or
// help messages will not be seen.
type Modes struct {
	// where to print help messages etc. defaults to io.Discard
	Output io.Writer

	// the underlying flagset. a new flagset is created on every call to
	// NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args    []string
	argsIdx int

	// the list of sub-modes valid for the next call to Parse(). the first
	// entry is the default
	subModes []string

	// the series of modes encountered during subsequent calls to Parse().
	// never reset
	path []string

	// additional text to display after the flag help
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing, joined into one
// string.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes struct with a list of arguments (from the
// command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// by definition, a newly initialised Modes struct begins with a new mode
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp adds text to be displayed after the regular help on
// available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes valid for the next call to Parse(). The first sub-mode in the
// list is considered to be the default. Sub-mode comparison is case
// insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified
	// before the call to Parse() then the Mode() function says which one was
	// selected.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the next layer of arguments. Help messages are written to the Output
// field, which must be set for them to be seen.
func (md *Modes) Parse() (ParseResult, error) {
	// gather help output from the flag package rather than letting it print
	// immediately. this way the mode path and sub-mode list can be included
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.output(), md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		hw.flush(md.output())
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// check to see if the first argument is in the list of sub-modes,
		// starting off assuming the default
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse(). ie. arguments that aren't flags or
// a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

func (md *Modes) output() io.Writer {
	if md.Output == nil {
		return io.Discard
	}
	return md.Output
}
