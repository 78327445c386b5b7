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

// Package debugger is a terminal front-end onto the hardware package. It
// steps the console one instruction at a time, runs it until a breakpoint
// matches and presents the state of the individual components on request.
package debugger

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/debugger/terminal"
	"github.com/wrenhold/gopherboy/disassembly"
	"github.com/wrenhold/gopherboy/hardware"
	"github.com/wrenhold/gopherboy/logger"
	"github.com/wrenhold/gopherboy/television"
)

// Debugger is the core of the terminal debugger.
type Debugger struct {
	dmg    *hardware.DMG
	disasm *disassembly.Disassembly

	term        terminal.Terminal
	breakpoints *breakpoints

	// set to true to cause the debugger to end at the top of the input
	// loop
	quit bool

	// interrupt signals from the operating system. SIGINT is notified on
	// this channel so that ctrl-c during a RUN halts the machine rather
	// than killing the debugger
	intChan chan os.Signal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(tv *television.Television, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		dmg:  hardware.NewDMG(tv),
		term: term,
	}
	dbg.breakpoints = newBreakpoints(dbg)

	dbg.intChan = make(chan os.Signal, 1)
	signal.Notify(dbg.intChan, syscall.SIGINT)

	return dbg
}

// Start the main debugger loop with the supplied cartridge. Returns when
// the user has asked to QUIT.
func (dbg *Debugger) Start(ld cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	err = dbg.dmg.AttachCartridge(ld)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	// battery-backed cartridge RAM is written out when the session ends
	defer func() {
		if err := dbg.dmg.End(); err != nil {
			logger.Logf("debugger", "%v", err)
		}
	}()

	dbg.disasm, err = disassembly.FromCartridge(ld)
	if err != nil {
		// being unable to disassemble is not fatal for the debugger
		logger.Logf("debugger", "%v", err)
	}

	dbg.printLine(terminal.StyleFeedback, dbg.dmg.Mem.Cart.String())

	return dbg.inputLoop()
}

// inputLoop reads a command from the terminal, dispatches it and goes
// around again until the quit flag is raised.
func (dbg *Debugger) inputLoop() error {
	input := make([]byte, 255)

	for !dbg.quit {
		dbg.printInstrument()

		prompt := terminal.Prompt{Content: dbg.promptContent()}

		n, err := dbg.term.TermRead(input, prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to leave the debugger")
				continue // for loop
			}
			return curated.Errorf("debugger: %v", err)
		}

		if n <= 1 {
			// empty input repeats the STEP command
			err = dbg.step()
		} else {
			err = dbg.parseCommand(string(input[:n-1]))
		}

		if err != nil {
			if curated.Is(err, terminal.UserQuit) {
				dbg.quit = true
				continue // for loop
			}
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// promptContent puts the next instruction to be executed into the prompt,
// when the disassembly knows about it.
func (dbg *Debugger) promptContent() string {
	pc := dbg.dmg.CPU.PC.Value()
	if dbg.disasm != nil {
		if e, ok := dbg.disasm.Get(pc); ok {
			return e.String()
		}
	}
	return fmt.Sprintf("%04x", pc)
}

// step the console one instruction and report the result.
func (dbg *Debugger) step() error {
	err := dbg.dmg.Step()
	if err != nil {
		return err
	}

	// a halted CPU executes nothing so the last result does not describe
	// the step that just happened
	if dbg.dmg.CPU.Halted {
		dbg.printLine(terminal.StyleInstrument, "(halted)")
		return nil
	}

	dbg.printLine(terminal.StyleInstrument, dbg.dmg.CPU.LastResult.String())
	return nil
}

// the number of instructions between checks of the interrupt channel
// during a RUN. checking every instruction is measurably slow.
const intCheckInterval = 256

// run the console until a breakpoint matches or the user interrupts.
// breakpoints are checked after every instruction.
func (dbg *Debugger) run() error {
	count := 0
	for {
		if err := dbg.dmg.Step(); err != nil {
			return err
		}

		pc := dbg.dmg.CPU.PC.Value()
		if dbg.breakpoints.check(pc) {
			dbg.printLine(terminal.StyleFeedback, "break at $%04x", pc)
			return nil
		}

		count++
		if count >= intCheckInterval {
			count = 0
			select {
			case <-dbg.intChan:
				dbg.printLine(terminal.StyleFeedback, "interrupted")
				return nil
			default:
			}
		}
	}
}

// printLine forwards formatted output to the attached terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// printInstrument shows the CPU state ahead of every prompt.
func (dbg *Debugger) printInstrument() {
	dbg.printLine(terminal.StyleInstrument, dbg.dmg.CPU.String())
}
