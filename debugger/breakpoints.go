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

	"github.com/wrenhold/gopherboy/debugger/terminal"
)

// breakpoints keeps track of the currently defined program counter breaks.
// a breakpoint halts a RUN when the program counter reaches the given
// address.
type breakpoints struct {
	dbg    *Debugger
	breaks map[uint16]bool
}

func newBreakpoints(dbg *Debugger) *breakpoints {
	return &breakpoints{
		dbg:    dbg,
		breaks: make(map[uint16]bool),
	}
}

// check returns true if a breakpoint is defined for the address.
func (bp *breakpoints) check(pc uint16) bool {
	return bp.breaks[pc]
}

// toggle a breakpoint for the address. adding an address that already has
// a breakpoint removes it, matching how most debuggers treat a repeated
// break command.
func (bp *breakpoints) toggle(addr uint16) {
	if bp.breaks[addr] {
		delete(bp.breaks, addr)
		bp.dbg.printLine(terminal.StyleFeedback, "removed breakpoint at $%04x", addr)
		return
	}
	bp.breaks[addr] = true
	bp.dbg.printLine(terminal.StyleFeedback, "added breakpoint at $%04x", addr)
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make(map[uint16]bool)
	bp.dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
}

// list the current breakpoints in address order.
func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}

	addrs := make([]int, 0, len(bp.breaks))
	for a := range bp.breaks {
		addrs = append(addrs, int(a))
	}
	sort.Ints(addrs)

	for _, a := range addrs {
		s := ""
		if bp.dbg.disasm != nil {
			if e, ok := bp.dbg.disasm.Get(uint16(a)); ok {
				s = e.String()
			}
		}
		if s == "" {
			bp.dbg.printLine(terminal.StyleFeedback, "$%04x", a)
		} else {
			bp.dbg.printLine(terminal.StyleFeedback, "%s", s)
		}
	}
}
