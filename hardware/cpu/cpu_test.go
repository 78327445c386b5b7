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

package cpu_test

import (
	"testing"

	"github.com/wrenhold/gopherboy/curated"
	"github.com/wrenhold/gopherboy/hardware/cpu"
	"github.com/wrenhold/gopherboy/test"
)

// mockMem is a flat 64KiB memory with none of the address decoding of the
// real bus. good enough for instruction tests.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// put a program at the reset address and return a CPU ready to run it.
func prepare(mem *mockMem, program ...uint8) *cpu.CPU {
	mc := cpu.NewCPU(mem)
	copy(mem.internal[mc.PC.Value():], program)
	return mc
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadImmediate(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x06, 0x42, // LD B,$42
		0x21, 0x34, 0x12, // LD HL,$1234
	)

	step(t, mc)
	test.Equate(t, mc.B.Value(), 0x42)

	step(t, mc)
	test.Equate(t, mc.HL.Value(), 0x1234)
	test.Equate(t, mc.H.Value(), 0x12)
	test.Equate(t, mc.L.Value(), 0x34)
}

func TestAddFlags(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0x0f, // LD A,$0f
		0xc6, 0x01, // ADD A,$01
		0xc6, 0xf0, // ADD A,$f0
		0xc6, 0x10, // ADD A,$10
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x10)
	test.ExpectSuccess(t, mc.Status.HalfCarry)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.HalfCarry)

	// carry flag does not feed into a plain ADD
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x10)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestAdcCarryChain(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0xff, // LD A,$ff
		0xc6, 0x01, // ADD A,$01    ; sets carry
		0xce, 0x00, // ADC A,$00    ; consumes carry
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestSubCompare(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0x10, // LD A,$10
		0xd6, 0x01, // SUB A,$01
		0xfe, 0x0f, // CP A,$0f
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x0f)
	test.ExpectSuccess(t, mc.Status.Negative)
	test.ExpectSuccess(t, mc.Status.HalfCarry)
	test.ExpectFailure(t, mc.Status.Carry)

	// CP leaves the accumulator alone
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x0f)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestIncDecLeaveCarry(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0xff, // LD A,$ff
		0xc6, 0x01, // ADD A,$01   ; sets carry
		0x3c,       // INC A
		0x3d,       // DEC A
	)

	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestDaa(t *testing.T) {
	// 0x15 + 0x27 = 0x3c, adjusted to 0x42 in BCD
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0x15, // LD A,$15
		0xc6, 0x27, // ADD A,$27
		0x27, // DAA
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x42)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestRelativeJump(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x18, 0x02, // JR +2
		0x00, 0x00, // skipped
		0x18, 0xfc, // JR -4
	)
	start := mc.PC.Value()

	step(t, mc)
	test.Equate(t, mc.PC.Value(), start+4)

	step(t, mc)
	test.Equate(t, mc.PC.Value(), start+2)
}

func TestConditionalCycles(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0xaf,       // XOR A,A     ; sets zero
		0x20, 0x02, // JR NZ,+2    ; not taken
		0x28, 0x02, // JR Z,+2     ; taken
	)

	var cycles int
	count := func() error {
		cycles++
		return nil
	}

	if err := mc.ExecuteInstruction(count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, cycles, 1)

	cycles = 0
	if err := mc.ExecuteInstruction(count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, cycles, 2)
	test.ExpectFailure(t, mc.LastResult.BranchTaken)

	cycles = 0
	if err := mc.ExecuteInstruction(count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test.Equate(t, cycles, 3)
	test.ExpectSuccess(t, mc.LastResult.BranchTaken)
}

func TestCallRet(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0xcd, 0x00, 0x20, // CALL $2000
	)
	mem.internal[0x2000] = 0xc9 // RET

	sp := mc.SP.Value()
	ret := mc.PC.Value() + 3

	step(t, mc)
	test.Equate(t, mc.PC.Value(), 0x2000)
	test.Equate(t, mc.SP.Value(), sp-2)

	step(t, mc)
	test.Equate(t, mc.PC.Value(), ret)
	test.Equate(t, mc.SP.Value(), sp)
}

func TestPopAfMasksLowerNibble(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x01, 0xff, 0x12, // LD BC,$12ff
		0xc5, // PUSH BC
		0xf1, // POP AF
		0xf5, // PUSH AF
		0xd1, // POP DE
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x12)
	// only the flag bits of the F register exist
	test.Equate(t, mc.Status.Value(), 0xf0)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.DE.Value(), 0x12f0)
}

func TestLoadHLIncDec(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x21, 0x00, 0x80, // LD HL,$8000
		0x3e, 0xaa, // LD A,$aa
		0x22, // LD (HL+),A
		0x32, // LD (HL-),A
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mem.internal[0x8000], 0xaa)
	test.Equate(t, mc.HL.Value(), 0x8001)

	step(t, mc)
	test.Equate(t, mem.internal[0x8001], 0xaa)
	test.Equate(t, mc.HL.Value(), 0x8000)
}

func TestPrefixedBitOps(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x06, 0x80, // LD B,$80
		0xcb, 0x78, // BIT 7,B
		0xcb, 0xb8, // RES 7,B
		0xcb, 0x40, // BIT 0,B
		0xcb, 0xc0, // SET 0,B
	)

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.HalfCarry)

	step(t, mc)
	test.Equate(t, mc.B.Value(), 0x00)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.Equate(t, mc.B.Value(), 0x01)
}

func TestSwap(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0xf1, // LD A,$f1
		0xcb, 0x37, // SWAP A
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x1f)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestRotateThroughCarry(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x3e, 0x80, // LD A,$80
		0xa7, // AND A,A      ; the power-up F value has carry set; clear it
		0x17, // RLA          ; carry out, bit in is old carry (0)
		0x17, // RLA          ; carry in
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	// accumulator rotates never set the zero flag
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestAddSPe8(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x31, 0xff, 0xdf, // LD SP,$dfff
		0xe8, 0x01, // ADD SP,+1
		0xe8, 0xfe, // ADD SP,-2
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.SP.Value(), 0xe000)
	// flags come from the low byte addition
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.HalfCarry)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc)
	test.Equate(t, mc.SP.Value(), 0xdffe)
}

func TestInterruptDispatch(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0xfb, // EI
		0x00, // NOP
		0x00, // NOP
	)

	// enable and request the vblank interrupt
	mem.internal[0xffff] = 0x01
	mem.internal[0xff0f] = 0x01

	// EI does not take effect until after the following instruction
	step(t, mc)
	cycles, err := mc.ServiceInterrupts()
	test.ExpectSuccess(t, err)
	test.Equate(t, cycles, 0)

	step(t, mc)
	cycles, err = mc.ServiceInterrupts()
	test.ExpectSuccess(t, err)
	test.Equate(t, cycles, 5)
	test.Equate(t, mc.PC.Value(), 0x0040)
	test.ExpectFailure(t, mc.IME())

	// the request flag has been acknowledged
	test.Equate(t, mem.internal[0xff0f], 0x00)
}

func TestDelayedEICancelledByDI(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0xfb, // EI
		0xf3, // DI
		0x00, // NOP
	)

	// the pending enable from EI must not survive the DI
	step(t, mc)
	test.ExpectFailure(t, mc.IME())
	step(t, mc)
	test.ExpectFailure(t, mc.IME())
	step(t, mc)
	test.ExpectFailure(t, mc.IME())
}

func TestDelayedEIRepeatedThenDI(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0xfb, // EI
		0xfb, // EI
		0xf3, // DI
		0x00, // NOP
	)

	// the first EI takes effect after the second
	step(t, mc)
	test.ExpectFailure(t, mc.IME())
	step(t, mc)
	test.ExpectSuccess(t, mc.IME())

	// and DI disables as normal
	step(t, mc)
	test.ExpectFailure(t, mc.IME())
	step(t, mc)
	test.ExpectFailure(t, mc.IME())
}

func TestHaltWakeWithoutIME(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem,
		0x76, // HALT
		0x00, // NOP
	)
	mem.internal[0xffff] = 0x04

	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)

	// an interrupt request wakes the CPU but is not dispatched because
	// the master enable is clear
	mem.internal[0xff0f] = 0x04
	cycles, err := mc.ServiceInterrupts()
	test.ExpectSuccess(t, err)
	test.Equate(t, cycles, 0)
	test.ExpectFailure(t, mc.Halted)
	test.Equate(t, mem.internal[0xff0f], 0x04)
}

func TestUnusedOpcode(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0xd3)

	err := mc.ExecuteInstruction(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnusedOpCode))
}

func TestResultString(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0xc3, 0x50, 0x01) // JP $0150

	step(t, mc)
	test.Equate(t, mc.LastResult.String(), "0100 JP $0150")
}
