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

package debugger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/debugger"
	"github.com/wrenhold/gopherboy/debugger/terminal"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
	"github.com/wrenhold/gopherboy/television"
	"github.com/wrenhold/gopherboy/test"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	s := <-trm.inp
	copy(buffer, s)
	return len(s) + 1, nil
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so a
		// timeout is necessary. a matter of milliseconds should be
		// sufficient
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput checks that the string argument appears somewhere in the most
// recent output. the debugger follows every command with an instrument
// line so comparing the last line only would never see the command result.
func (trm *mockTerm) cmpOutput(s string) {
	trm.t.Helper()
	trm.rcvOutput()

	for _, l := range trm.output {
		if l == s {
			return
		}
	}

	trm.t.Errorf(fmt.Sprintf("unexpected debugger output (%v) should contain (%s)", trm.output, s))
}

// buildROM creates a minimal but valid cartridge with the supplied program
// at address 0x0150, reached through a jump at the entry point.
func buildROM(program ...uint8) []byte {
	data := make([]byte, 0x8000)

	// entry point: JP $0150
	data[0x0100] = 0xc3
	data[0x0101] = 0x50
	data[0x0102] = 0x01

	copy(data[0x0150:], program)

	copy(data[cartridge.LogoStart:], cartridge.Logo[:])
	copy(data[cartridge.TitleStart:], "TEST")
	data[cartridge.HeaderChecksumAddr] = cartridge.HeaderChecksum(data)

	return data
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()

	// entry point jump has not run yet
	trm.sndInput("PEEK $0100")
	trm.cmpOutput("$0100 -> $c3")

	// empty input steps one instruction. the first instruction is the
	// jump to the body of the program
	trm.sndInput("")
	trm.cmpOutput("0100 JP $0150")

	trm.sndInput("BREAK $0152")
	trm.cmpOutput("added breakpoint at $0152")

	trm.sndInput("RUN")
	trm.cmpOutput("break at $0152")

	trm.sndInput("BREAK $0152")
	trm.cmpOutput("removed breakpoint at $0152")

	trm.sndInput("POKE $c000 $aa")
	trm.cmpOutput("$c000 <- $aa")

	trm.sndInput("PEEK $c000")
	trm.cmpOutput("$c000 -> $aa")

	trm.sndInput("NOSUCHCOMMAND")
	trm.cmpOutput("debugger: unrecognised command (NOSUCHCOMMAND)")
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)

	dbg := debugger.NewDebugger(television.NewTelevision(), trm)

	ld, err := cartridgeloader.NewLoader("test.gb")
	test.ExpectSuccess(t, err)
	ld.Data = buildROM(
		0x00,       // 0150 NOP
		0x00,       // 0151 NOP
		0x00,       // 0152 NOP
		0xc3, 0x50, 0x01, // 0153 JP $0150
	)

	go trm.testSequence()

	test.ExpectSuccess(t, dbg.Start(ld))
}

func (trm *mockTerm) haltSequence() {
	defer func() { trm.sndInput("QUIT") }()

	trm.sndInput("") // JP $0150
	trm.sndInput("") // DI
	trm.sndInput("")
	trm.cmpOutput("0151 HALT")

	// the CPU is asleep now. stepping must not echo the HALT again
	trm.sndInput("")
	trm.cmpOutput("(halted)")
	trm.sndInput("")
	trm.cmpOutput("(halted)")
}

func TestDebuggerHaltedStep(t *testing.T) {
	trm := newMockTerm(t)

	dbg := debugger.NewDebugger(television.NewTelevision(), trm)

	ld, err := cartridgeloader.NewLoader("test.gb")
	test.ExpectSuccess(t, err)
	ld.Data = buildROM(
		0xf3, // 0150 DI
		0x76, // 0151 HALT
		0x00, // 0152 NOP
	)

	go trm.haltSequence()

	test.ExpectSuccess(t, dbg.Start(ld))
}
