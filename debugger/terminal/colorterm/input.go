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

package colorterm

import (
	"bufio"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/debugger/terminal"
	"github.com/wrenhold/gopherboy/debugger/terminal/colorterm/easyterm"
	"github.com/wrenhold/gopherboy/debugger/terminal/colorterm/easyterm/ansi"
)

type runeReader struct {
	*bufio.Reader
}

func initRuneReader(f *os.File) runeReader {
	return runeReader{Reader: bufio.NewReader(f)}
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt) (int, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	p := prompt.String()

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user
	// wants to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before the loop starts
	ct.TermPrint("\r%s", ansi.CursorMove(len(p)))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrint("%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], p, ansi.NormalPen)
		ct.TermPrint(string(input[:n]))
		ct.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return n + 1, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then
			// append a new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.TermPrint("\n")
			return n + 1, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			switch r {
			case easyterm.EscCursor:
				r, _, err := ct.reader.ReadRune()
				if err != nil {
					return n, err
				}

				switch r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for
						// possible later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscDelete:
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}

					// eat the tilde that accompanies the delete code
					_, _, _ = ct.reader.ReadRune()

				case easyterm.EscHome:
					ct.TermPrint(ansi.CursorMove(-cursor))
					cursor = 0

				case easyterm.EscEnd:
					ct.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) && n < len(input)-utf8.UTFMax {
				ct.TermPrint("%c", r)
				m := utf8.EncodeRune(er, r)
				copy(input[cursor+m:], input[cursor:])
				copy(input[cursor:], er[:m])
				cursor++
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
