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

// Package colorterm implements the Terminal interface for the debugger.
// It supports color output and command history.
package colorterm

import (
	"os"

	"github.com/wrenhold/gopherboy/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the debugger's Terminal interface with a basic
// ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader         runeReader
	commandHistory []command

	silenced bool
}

type command struct {
	input []byte
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]command, 0)
	ct.reader = initRuneReader(os.Stdin)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}
