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

// Package cpu emulates the SM83, the Sharp core at the heart of the Game
// Boy. It is often described as a cut-down Z80 but the description is
// loose: the SM83 has the 8080's register file, a handful of Z80
// instructions, and load/store and bit instructions of its own.
//
// The CPU is driven with the ExecuteInstruction() function. Timing is
// instruction atomic: the callback passed to ExecuteInstruction() is
// called once per machine cycle after the instruction has completed,
// which is accurate enough for everything except the most exotic test
// ROMs.
//
// Interrupt dispatch is the responsibility of the caller via the
// ServiceInterrupts() function, called before each instruction.
package cpu
