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

package debugger

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/debugger/terminal"
)

// list of debugger commands and the help text for each.
var commandHelp = map[string]string{
	"BREAK":  "toggle a breakpoint at an address. with no argument, list breakpoints",
	"CART":   "show cartridge and mapper state",
	"CLEAR":  "remove all breakpoints",
	"CPU":    "show the state of the CPU registers",
	"DISASM": "print the cartridge disassembly",
	"HELP":   "list commands or show help for a command",
	"LAST":   "show the result of the last instruction execution",
	"PEEK":   "show the contents of one or more memory addresses",
	"POKE":   "write a value directly to a memory address",
	"PPU":    "show the state of the video hardware",
	"QUIT":   "leave the debugger",
	"RESET":  "reset the console to its power-on state",
	"RUN":    "run until a breakpoint matches or ctrl-c is pressed",
	"STEP":   "execute the next instruction. an argument repeats the step",
	"TIMER":  "show the state of the timer",
}

// parseCommand tokenises the input and dispatches the command.
func (dbg *Debugger) parseCommand(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}
	args := toks[1:]

	// echo the command back for the benefit of terminals that care
	dbg.printLine(terminal.StyleEcho, strings.Join(toks, " "))

	switch strings.ToUpper(toks[0]) {
	case "HELP":
		dbg.help(args)

	case "STEP":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return curated.Errorf("debugger: not a step count (%s)", args[0])
			}
			n = v
		}
		for i := 0; i < n; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}

	case "RUN":
		return dbg.run()

	case "BREAK":
		if len(args) == 0 {
			dbg.breakpoints.list()
			return nil
		}
		for _, a := range args {
			addr, err := parseAddress(a)
			if err != nil {
				return err
			}
			dbg.breakpoints.toggle(addr)
		}

	case "CLEAR":
		dbg.breakpoints.clear()

	case "CPU":
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.CPU.String())

	case "PPU":
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.PPU.String())

	case "TIMER":
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.Timer.String())

	case "CART":
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.Mem.Cart.String())

	case "PEEK":
		if len(args) == 0 {
			return curated.Errorf("debugger: PEEK requires an address")
		}
		for _, a := range args {
			addr, err := parseAddress(a)
			if err != nil {
				return err
			}
			v, err := dbg.dmg.Mem.Peek(addr)
			if err != nil {
				return err
			}
			dbg.printLine(terminal.StyleInstrument, "$%04x -> $%02x", addr, v)
		}

	case "POKE":
		if len(args) != 2 {
			return curated.Errorf("debugger: POKE requires an address and a value")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		val, err := parseValue(args[1])
		if err != nil {
			return err
		}
		if err := dbg.dmg.Mem.Poke(addr, val); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "$%04x <- $%02x", addr, val)

	case "DISASM":
		if dbg.disasm == nil {
			return curated.Errorf("debugger: no disassembly available")
		}
		return dbg.disasm.Write(&termWriter{dbg: dbg})

	case "LAST":
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.CPU.LastResult.String())

	case "RESET":
		if err := dbg.dmg.Reset(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "console reset")

	case "QUIT", "EXIT":
		return curated.Errorf(terminal.UserQuit)

	default:
		return curated.Errorf("debugger: unrecognised command (%s)", toks[0])
	}

	return nil
}

// help prints the command list, or the help text for a single command.
func (dbg *Debugger) help(args []string) {
	if len(args) > 0 {
		c := strings.ToUpper(args[0])
		if h, ok := commandHelp[c]; ok {
			dbg.printLine(terminal.StyleHelp, "%s: %s", c, h)
		} else {
			dbg.printLine(terminal.StyleHelp, "no help for %s", c)
		}
		return
	}

	cmds := make([]string, 0, len(commandHelp))
	for c := range commandHelp {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	dbg.printLine(terminal.StyleHelp, strings.Join(cmds, " "))
}

// parseAddress converts a numeric token to a 16 bit address. a $ prefix
// indicates hexadecimal, in keeping with the assembler notation used in
// the disassembly.
func parseAddress(s string) (uint16, error) {
	t := s
	if strings.HasPrefix(t, "$") {
		t = "0x" + t[1:]
	}
	v, err := strconv.ParseUint(t, 0, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: not an address (%s)", s)
	}
	return uint16(v), nil
}

// parseValue converts a numeric token to an 8 bit value.
func parseValue(s string) (uint8, error) {
	t := s
	if strings.HasPrefix(t, "$") {
		t = "0x" + t[1:]
	}
	v, err := strconv.ParseUint(t, 0, 8)
	if err != nil {
		return 0, curated.Errorf("debugger: not an 8 bit value (%s)", s)
	}
	return uint8(v), nil
}

// termWriter lets the disassembly's Write function print through the
// terminal, one line per call to TermPrintLine.
type termWriter struct {
	dbg *Debugger
}

func (w *termWriter) Write(p []byte) (int, error) {
	w.dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
