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

// Package plainterm implements the Terminal interface for the debugger.
// It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/wrenhold/gopherboy/debugger/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps
// the terminal in whatever mode it started, probably canonical mode. As
// such, it offers only rudimentary editing facility and little control
// over output.
type PlainTerminal struct {
	input    io.Reader
	output   io.Writer
	reader   *bufio.Reader
	silenced bool
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.reader = bufio.NewReader(pt.input)
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// no need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if pt.silenced {
		return 0, io.EOF
	}

	fmt.Fprint(pt.output, prompt.String())

	s, err := pt.reader.ReadString('\n')
	if err != nil {
		return 0, err
	}

	n := copy(buffer, s)
	return n, nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return true
}
