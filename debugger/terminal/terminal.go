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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

// Input defines the operations required by an interface that allows
// input.
type Input interface {
	// TermRead returns the number of characters inserted into the
	// buffer, or an error, when completed.
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive returns true for implementations that expect user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will
	// need to do anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible.
	CleanUp()

	// Silence all input and output except error messages.
	Silence(silenced bool)
}

// Sentinal errors. Returned by TermRead() if caught whilst waiting for
// input.
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// Prompt specifies the prompt text and style.
type Prompt struct {
	Content string
}

// String returns the prompt with "standard" decoration, suitable for
// terminals with no graphical capability at all.
func (p Prompt) String() string {
	return "[ " + p.Content + " ] >> "
}

// Style is used to hint at what the output content is. The terminal
// implementation is free to ignore the hint.
type Style int

// List of terminal styles.
const (
	StyleInput Style = iota
	StyleEcho
	StyleHelp
	StyleFeedback
	StyleInstrument
	StyleError
	StyleLog
)
