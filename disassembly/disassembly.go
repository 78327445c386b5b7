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

// Package disassembly turns cartridge data back into instruction
// mnemonics. The decoding is a linear sweep from the entry point: it
// makes no attempt to separate code from data, so regions that hold
// graphics will disassemble to nonsense. The line has to be drawn
// somewhere and a linear sweep is genuinely useful for the majority of
// cartridges.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/wrenhold/gopherboy/cartridgeloader"
	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/hardware/cpu/instructions"
	"github.com/wrenhold/gopherboy/hardware/memory/cartridge"
)

// Error patterns for the disassembly package.
const (
	DisasmError = "disassembly: %v"
)

// Entry is one disassembled instruction.
type Entry struct {
	Address uint16

	// the bytes the instruction occupies, including the opcode and any
	// prefix
	Raw []uint8

	Mnemonic string
	Operand  string

	// whether the entry is from the 0xcb prefix page
	Prefixed bool
}

// String returns the entry in the same notation as execution results.
func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04x %s", e.Address, e.Mnemonic)
	}
	return fmt.Sprintf("%04x %s %s", e.Address, e.Mnemonic, e.Operand)
}

// Disassembly is the result of disassembling a cartridge.
type Disassembly struct {
	Entries []Entry
}

// FromCartridge disassembles the cartridge referenced by the loader.
// Decoding starts at the entry point and stops at the end of the fixed
// bank, covering the code the console can reach without a bank switch.
func FromCartridge(ld cartridgeloader.Loader) (*Disassembly, error) {
	err := ld.Load()
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	if len(ld.Data) < cartridge.HeaderEnd {
		return nil, curated.Errorf(DisasmError, "data too short to be a cartridge")
	}

	end := len(ld.Data)
	if end > 0x8000 {
		end = 0x8000
	}

	return FromData(ld.Data[:end], cartridge.HeaderEnd), nil
}

// FromData disassembles raw data. The origin argument is the address of
// the first byte of data; decoding starts at that address.
func FromData(data []byte, origin uint16) *Disassembly {
	dsm := &Disassembly{}

	defs := instructions.GetDefinitions()
	prefixedDefs := instructions.GetPrefixedDefinitions()

	addr := int(origin)
	for addr < len(data) {
		opcode := data[addr]

		defn := &defs[opcode]
		prefixed := false
		if opcode == 0xcb {
			if addr+1 >= len(data) {
				break
			}
			defn = &prefixedDefs[data[addr+1]]
			prefixed = true
		}

		if defn.Mnemonic == "" {
			// unused opcode. represent the byte and move on
			dsm.Entries = append(dsm.Entries, Entry{
				Address:  uint16(addr),
				Raw:      []uint8{opcode},
				Mnemonic: "DB",
				Operand:  fmt.Sprintf("$%02x", opcode),
			})
			addr++
			continue
		}

		if addr+defn.Bytes > len(data) {
			break
		}

		e := Entry{
			Address:  uint16(addr),
			Raw:      data[addr : addr+defn.Bytes],
			Mnemonic: defn.Mnemonic,
			Prefixed: prefixed,
		}
		e.Operand = resolveOperand(defn, e.Raw)

		dsm.Entries = append(dsm.Entries, e)
		addr += defn.Bytes
	}

	return dsm
}

// resolveOperand replaces the value placeholders in the operand notation
// with the bytes that follow the opcode.
func resolveOperand(defn *instructions.Definition, raw []uint8) string {
	operand := defn.Operand

	switch {
	case strings.Contains(operand, "n16"):
		v := uint16(raw[2])<<8 | uint16(raw[1])
		operand = strings.Replace(operand, "n16", fmt.Sprintf("$%04x", v), 1)
	case strings.Contains(operand, "n8"):
		operand = strings.Replace(operand, "n8", fmt.Sprintf("$%02x", raw[1]), 1)
	case strings.Contains(operand, "e8"):
		operand = strings.Replace(operand, "e8", fmt.Sprintf("%+d", int8(raw[1])), 1)
	}

	return operand
}

// Get returns the entry at the given address, or false if the address is
// inside another instruction or beyond the disassembly.
func (dsm *Disassembly) Get(addr uint16) (Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Address == addr {
			return e, true
		}
		if e.Address > addr {
			break
		}
	}
	return Entry{}, false
}

// Write the disassembly in a raw byte annotated listing format.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		raw := make([]string, len(e.Raw))
		for i, b := range e.Raw {
			raw[i] = fmt.Sprintf("%02x", b)
		}
		_, err := fmt.Fprintf(w, "%04x  %-8s  %s %s\n", e.Address, strings.Join(raw, " "), e.Mnemonic, e.Operand)
		if err != nil {
			return curated.Errorf(DisasmError, err)
		}
	}
	return nil
}
