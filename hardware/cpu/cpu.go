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

package cpu

import (
	"fmt"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/hardware/bus"
	"github.com/wrenhold/gopherboy/hardware/cpu/execution"
	"github.com/wrenhold/gopherboy/hardware/cpu/instructions"
	"github.com/wrenhold/gopherboy/hardware/cpu/registers"
	"github.com/wrenhold/gopherboy/hardware/interrupts"
)

// Error patterns for the cpu package.
const (
	UnusedOpCode = "cpu: unused opcode (%#02x) at %#04x"
)

// register addresses for the IF and IE registers. the CPU accesses these
// directly when servicing interrupts.
const (
	addrIF = 0xff0f
	addrIE = 0xffff
)

// CPU implements the SM83 core found in the Game Boy. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC *registers.ProgramCounter
	SP *registers.StackPointer

	A *registers.Register
	B *registers.Register
	C *registers.Register
	D *registers.Register
	E *registers.Register
	H *registers.Register
	L *registers.Register

	// the F half of the AF pair
	Status *registers.Status

	// 16 bit views onto the 8 bit registers above
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	mem bus.CPUBus

	defs         *[256]instructions.Definition
	prefixedDefs *[256]instructions.Definition

	// interrupt master enable. IME is not memory mapped and can only be
	// changed by the EI, DI and RETI instructions and by interrupt dispatch
	ime bool

	// EI enables interrupts after the *following* instruction. imePending
	// bridges the gap
	imePending bool

	// the CPU is halted and is waiting for an interrupt
	Halted bool

	// executing HALT with interrupts pending while IME is clear causes the
	// next opcode fetch to skip the program counter increment
	haltBug bool

	// last instruction result. the Defn field is nil when the CPU has just
	// been reset
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers are loaded with the values the DMG boot ROM leaves behind.
func NewCPU(mem bus.CPUBus) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		SP:           registers.NewStackPointer(0),
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		C:            registers.NewRegister(0, "C"),
		D:            registers.NewRegister(0, "D"),
		E:            registers.NewRegister(0, "E"),
		H:            registers.NewRegister(0, "H"),
		L:            registers.NewRegister(0, "L"),
		Status:       registers.NewStatus(),
		defs:         instructions.GetDefinitions(),
		prefixedDefs: instructions.GetPrefixedDefinitions(),
	}
	mc.BC = registers.NewPair(mc.B, mc.C, "BC")
	mc.DE = registers.NewPair(mc.D, mc.E, "DE")
	mc.HL = registers.NewPair(mc.H, mc.L, "HL")
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s=%#02x %s %s %s %s %v IME=%v",
		mc.PC, mc.SP, mc.A.Label(), mc.A.Value(),
		mc.BC, mc.DE, mc.HL, mc.Status, mc.Halted, mc.ime)
}

// Plumb a new CPUBus into the CPU.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.mem = mem
}

// Reset the CPU to the state at the end of the DMG boot sequence.
// https://gbdev.io/pandocs/Power_Up_Sequence.html#cpu-registers
func (mc *CPU) Reset() {
	mc.A.Load(0x01)
	mc.Status.Load(0xb0)
	mc.BC.Load(0x0013)
	mc.DE.Load(0x00d8)
	mc.HL.Load(0x014d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
	mc.ime = false
	mc.imePending = false
	mc.Halted = false
	mc.haltBug = false
	mc.LastResult.Reset()
}

// IME returns the state of the interrupt master enable flip-flop.
func (mc *CPU) IME() bool {
	return mc.ime
}

func (mc *CPU) read8(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write8(address uint16, data uint8) error {
	return mc.mem.Write(address, data)
}

func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) write16(address uint16, data uint16) error {
	if err := mc.mem.Write(address, uint8(data)); err != nil {
		return err
	}
	return mc.mem.Write(address+1, uint8(data>>8))
}

func (mc *CPU) push16(data uint16) error {
	mc.SP.Decrement()
	if err := mc.write8(mc.SP.Value(), uint8(data>>8)); err != nil {
		return err
	}
	mc.SP.Decrement()
	return mc.write8(mc.SP.Value(), uint8(data))
}

func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.read8(mc.SP.Value())
	if err != nil {
		return 0, err
	}
	mc.SP.Increment()
	hi, err := mc.read8(mc.SP.Value())
	if err != nil {
		return 0, err
	}
	mc.SP.Increment()
	return uint16(hi)<<8 | uint16(lo), nil
}

// registerByIndex reads the 8 bit register identified by the three bit
// field found in many opcodes. index six is the byte at (HL).
func (mc *CPU) registerByIndex(idx uint8) (uint8, error) {
	switch idx {
	case 0:
		return mc.B.Value(), nil
	case 1:
		return mc.C.Value(), nil
	case 2:
		return mc.D.Value(), nil
	case 3:
		return mc.E.Value(), nil
	case 4:
		return mc.H.Value(), nil
	case 5:
		return mc.L.Value(), nil
	case 6:
		return mc.read8(mc.HL.Value())
	}
	return mc.A.Value(), nil
}

func (mc *CPU) setRegisterByIndex(idx uint8, data uint8) error {
	switch idx {
	case 0:
		mc.B.Load(data)
	case 1:
		mc.C.Load(data)
	case 2:
		mc.D.Load(data)
	case 3:
		mc.E.Load(data)
	case 4:
		mc.H.Load(data)
	case 5:
		mc.L.Load(data)
	case 6:
		return mc.write8(mc.HL.Value(), data)
	default:
		mc.A.Load(data)
	}
	return nil
}

// pairByIndex reads the 16 bit register identified by the two bit field of
// the opcode. the final index is the SP for most instructions but the AF
// pair for PUSH and POP.
func (mc *CPU) pairByIndex(idx uint8, af bool) uint16 {
	switch idx {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		return mc.HL.Value()
	}
	if af {
		return uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
	}
	return mc.SP.Value()
}

func (mc *CPU) setPairByIndex(idx uint8, data uint16, af bool) {
	switch idx {
	case 0:
		mc.BC.Load(data)
	case 1:
		mc.DE.Load(data)
	case 2:
		mc.HL.Load(data)
	default:
		if af {
			mc.A.Load(uint8(data >> 8))
			mc.Status.Load(uint8(data))
		} else {
			mc.SP.Load(data)
		}
	}
}

// condition tests the two bit condition field of conditional instructions:
// NZ, Z, NC, C in that order.
func (mc *CPU) condition(idx uint8) bool {
	switch idx {
	case 0:
		return !mc.Status.Zero
	case 1:
		return mc.Status.Zero
	case 2:
		return !mc.Status.Carry
	}
	return mc.Status.Carry
}

// ServiceInterrupts dispatches the highest priority pending interrupt, if
// any. Returns the number of machine cycles consumed (zero when no
// interrupt was dispatched).
//
// A pending interrupt always wakes the CPU from a HALT, even when the
// master enable is clear; in that case the interrupt is not dispatched.
func (mc *CPU) ServiceInterrupts() (int, error) {
	iei, err := mc.read8(addrIE)
	if err != nil {
		return 0, err
	}
	ifl, err := mc.read8(addrIF)
	if err != nil {
		return 0, err
	}

	pending := iei & ifl & interrupts.Mask
	if pending == 0 {
		return 0, nil
	}

	mc.Halted = false

	if !mc.ime {
		return 0, nil
	}

	// lowest bit value wins
	for _, irq := range []interrupts.Interrupt{
		interrupts.VBlank, interrupts.Stat, interrupts.Timer,
		interrupts.Serial, interrupts.Joypad,
	} {
		if pending&uint8(irq) == 0 {
			continue
		}

		mc.ime = false
		mc.imePending = false

		if err := mc.write8(addrIF, ifl&^uint8(irq)); err != nil {
			return 0, err
		}
		if err := mc.push16(mc.PC.Value()); err != nil {
			return 0, err
		}
		mc.PC.Load(irq.Vector())

		// two wait cycles, two push cycles and the jump
		return 5, nil
	}

	return 0, nil
}

// ExecuteInstruction executes the instruction at the current program
// counter. The cycleCallback is called once for every machine cycle the
// instruction consumes, allowing the caller to keep the rest of the
// hardware in step.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	cycle := func(n int) error {
		if cycleCallback == nil {
			return nil
		}
		for i := 0; i < n; i++ {
			if err := cycleCallback(); err != nil {
				return err
			}
		}
		return nil
	}

	// EI enables the master flag after the instruction that follows it
	enableAfter := mc.imePending

	if mc.Halted {
		// halted CPU still consumes time. wake-up is handled by
		// ServiceInterrupts()
		return cycle(1)
	}

	opcodeAddr := mc.PC.Value()
	opcode, err := mc.read8(opcodeAddr)
	if err != nil {
		return err
	}

	if mc.haltBug {
		// the program counter fails to advance for one fetch
		mc.haltBug = false
	} else {
		mc.PC.Increment()
	}

	defn := &mc.defs[opcode]

	if defn.Mnemonic == "PREFIX" {
		prefixed, err := mc.read8(mc.PC.Value())
		if err != nil {
			return err
		}
		mc.PC.Increment()

		defn = &mc.prefixedDefs[prefixed]
		if err := mc.executePrefixed(prefixed); err != nil {
			return err
		}

		mc.LastResult = execution.Result{
			Address: opcodeAddr,
			Defn:    defn,
			Cycles:  defn.Cycles,
		}
		if enableAfter && mc.imePending {
			mc.ime = true
			mc.imePending = false
		}
		return cycle(defn.Cycles)
	}

	if defn.Mnemonic == "" {
		return curated.Errorf(UnusedOpCode, opcode, opcodeAddr)
	}

	// operand bytes
	var operand [2]uint8
	for i := 0; i < defn.Bytes-1; i++ {
		operand[i], err = mc.read8(mc.PC.Value())
		if err != nil {
			return err
		}
		mc.PC.Increment()
	}

	branchTaken, err := mc.execute(opcode, operand)
	if err != nil {
		return err
	}

	cycles := defn.Cycles
	if branchTaken && defn.IsConditional() {
		cycles = defn.CyclesTaken
	}

	mc.LastResult = execution.Result{
		Address:     opcodeAddr,
		Defn:        defn,
		Operand:     operand,
		Cycles:      cycles,
		BranchTaken: branchTaken,
	}

	// a DI in the executed instruction cancels the pending enable
	if enableAfter && mc.imePending {
		mc.ime = true
		mc.imePending = false
	}

	return cycle(cycles)
}

// execute the unprefixed instruction. the returned bool indicates whether
// a conditional instruction took its branch.
func (mc *CPU) execute(opcode uint8, operand [2]uint8) (bool, error) {
	n8 := operand[0]
	n16 := uint16(operand[1])<<8 | uint16(operand[0])

	// the bit fields of the opcode, following the conventional breakdown
	// of the SM83 opcode space
	x := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07
	p := y >> 1
	q := y & 0x01

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0: // NOP
			case 1: // LD (n16),SP
				return false, mc.write16(n16, mc.SP.Value())
			case 2: // STOP
				// STOP is essentially a deeper HALT. on the DMG the only
				// way out is a joypad interrupt so treating it as HALT is
				// close enough
				mc.Halted = true
			case 3: // JR e8
				mc.PC.Add(int8(n8))
			default: // JR cc,e8
				if mc.condition(y - 4) {
					mc.PC.Add(int8(n8))
					return true, nil
				}
			}
		case 1:
			if q == 0 { // LD rr,n16
				mc.setPairByIndex(p, n16, false)
			} else { // ADD HL,rr
				mc.addHL(mc.pairByIndex(p, false))
			}
		case 2:
			addr := mc.indirectAddress(p)
			if q == 0 { // LD (rr),A
				return false, mc.write8(addr, mc.A.Value())
			}
			// LD A,(rr)
			v, err := mc.read8(addr)
			if err != nil {
				return false, err
			}
			mc.A.Load(v)
		case 3:
			rr := mc.pairByIndex(p, false)
			if q == 0 { // INC rr
				mc.setPairByIndex(p, rr+1, false)
			} else { // DEC rr
				mc.setPairByIndex(p, rr-1, false)
			}
		case 4: // INC r
			v, err := mc.registerByIndex(y)
			if err != nil {
				return false, err
			}
			return false, mc.setRegisterByIndex(y, mc.inc8(v))
		case 5: // DEC r
			v, err := mc.registerByIndex(y)
			if err != nil {
				return false, err
			}
			return false, mc.setRegisterByIndex(y, mc.dec8(v))
		case 6: // LD r,n8
			return false, mc.setRegisterByIndex(y, n8)
		case 7:
			switch y {
			case 0:
				mc.rlca()
			case 1:
				mc.rrca()
			case 2:
				mc.rla()
			case 3:
				mc.rra()
			case 4:
				mc.daa()
			case 5: // CPL
				mc.A.Load(^mc.A.Value())
				mc.Status.Negative = true
				mc.Status.HalfCarry = true
			case 6: // SCF
				mc.Status.Negative = false
				mc.Status.HalfCarry = false
				mc.Status.Carry = true
			case 7: // CCF
				mc.Status.Negative = false
				mc.Status.HalfCarry = false
				mc.Status.Carry = !mc.Status.Carry
			}
		}

	case 1:
		if opcode == 0x76 { // HALT
			iei, err := mc.read8(addrIE)
			if err != nil {
				return false, err
			}
			ifl, err := mc.read8(addrIF)
			if err != nil {
				return false, err
			}
			if !mc.ime && iei&ifl&interrupts.Mask != 0 {
				// the infamous halt bug: the CPU does not halt and the
				// next opcode fetch repeats the program counter
				mc.haltBug = true
			} else {
				mc.Halted = true
			}
			return false, nil
		}

		// LD r,r
		v, err := mc.registerByIndex(z)
		if err != nil {
			return false, err
		}
		return false, mc.setRegisterByIndex(y, v)

	case 2:
		// ALU A,r
		v, err := mc.registerByIndex(z)
		if err != nil {
			return false, err
		}
		mc.alu(y, v)

	case 3:
		switch z {
		case 0:
			switch y {
			case 0, 1, 2, 3: // RET cc
				if mc.condition(y) {
					addr, err := mc.pop16()
					if err != nil {
						return false, err
					}
					mc.PC.Load(addr)
					return true, nil
				}
			case 4: // LDH (n8),A
				return false, mc.write8(0xff00|uint16(n8), mc.A.Value())
			case 5: // ADD SP,e8
				mc.SP.Load(mc.addSPe8(int8(n8)))
			case 6: // LDH A,(n8)
				v, err := mc.read8(0xff00 | uint16(n8))
				if err != nil {
					return false, err
				}
				mc.A.Load(v)
			case 7: // LD HL,SP+e8
				mc.HL.Load(mc.addSPe8(int8(n8)))
			}
		case 1:
			if q == 0 { // POP rr
				v, err := mc.pop16()
				if err != nil {
					return false, err
				}
				mc.setPairByIndex(p, v, true)
			} else {
				switch p {
				case 0: // RET
					addr, err := mc.pop16()
					if err != nil {
						return false, err
					}
					mc.PC.Load(addr)
				case 1: // RETI
					addr, err := mc.pop16()
					if err != nil {
						return false, err
					}
					mc.PC.Load(addr)
					mc.ime = true
				case 2: // JP HL
					mc.PC.Load(mc.HL.Value())
				case 3: // LD SP,HL
					mc.SP.Load(mc.HL.Value())
				}
			}
		case 2:
			switch y {
			case 0, 1, 2, 3: // JP cc,n16
				if mc.condition(y) {
					mc.PC.Load(n16)
					return true, nil
				}
			case 4: // LDH (C),A
				return false, mc.write8(0xff00|uint16(mc.C.Value()), mc.A.Value())
			case 5: // LD (n16),A
				return false, mc.write8(n16, mc.A.Value())
			case 6: // LDH A,(C)
				v, err := mc.read8(0xff00 | uint16(mc.C.Value()))
				if err != nil {
					return false, err
				}
				mc.A.Load(v)
			case 7: // LD A,(n16)
				v, err := mc.read8(n16)
				if err != nil {
					return false, err
				}
				mc.A.Load(v)
			}
		case 3:
			switch y {
			case 0: // JP n16
				mc.PC.Load(n16)
			case 6: // DI
				mc.ime = false
				mc.imePending = false
			case 7: // EI
				mc.imePending = true
			}
		case 4: // CALL cc,n16
			if mc.condition(y) {
				if err := mc.push16(mc.PC.Value()); err != nil {
					return false, err
				}
				mc.PC.Load(n16)
				return true, nil
			}
		case 5:
			if q == 0 { // PUSH rr
				return false, mc.push16(mc.pairByIndex(p, true))
			}
			// CALL n16
			if err := mc.push16(mc.PC.Value()); err != nil {
				return false, err
			}
			mc.PC.Load(n16)
		case 6: // ALU A,n8
			mc.alu(y, n8)
		case 7: // RST
			if err := mc.push16(mc.PC.Value()); err != nil {
				return false, err
			}
			mc.PC.Load(uint16(y) * 8)
		}
	}

	return false, nil
}

// indirectAddress resolves the (BC), (DE), (HL+) and (HL-) addressing
// forms. the post increment/decrement of HL happens here.
func (mc *CPU) indirectAddress(p uint8) uint16 {
	switch p {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		addr := mc.HL.Value()
		mc.HL.Increment()
		return addr
	}
	addr := mc.HL.Value()
	mc.HL.Decrement()
	return addr
}

// alu performs the 8 bit accumulator operation identified by the three bit
// field of the opcode: ADD, ADC, SUB, SBC, AND, XOR, OR, CP.
func (mc *CPU) alu(op uint8, v uint8) {
	switch op {
	case 0:
		mc.A.Load(mc.add8(mc.A.Value(), v, false))
	case 1:
		mc.A.Load(mc.add8(mc.A.Value(), v, mc.Status.Carry))
	case 2:
		mc.A.Load(mc.sub8(mc.A.Value(), v, false))
	case 3:
		mc.A.Load(mc.sub8(mc.A.Value(), v, mc.Status.Carry))
	case 4: // AND
		r := mc.A.Value() & v
		mc.A.Load(r)
		mc.Status.Clear()
		mc.Status.Zero = r == 0
		mc.Status.HalfCarry = true
	case 5: // XOR
		r := mc.A.Value() ^ v
		mc.A.Load(r)
		mc.Status.Clear()
		mc.Status.Zero = r == 0
	case 6: // OR
		r := mc.A.Value() | v
		mc.A.Load(r)
		mc.Status.Clear()
		mc.Status.Zero = r == 0
	case 7: // CP
		mc.sub8(mc.A.Value(), v, false)
	}
}
