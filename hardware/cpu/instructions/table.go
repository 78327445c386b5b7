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

package instructions

// The tables below cover the whole SM83 instruction set. Entries with an
// empty mnemonic are unused opcodes; executing one is an error.
//
// Cycle counts are in machine cycles (one machine cycle is four dots of the
// 4.194MHz clock). For conditional instructions the Cycles field is the
// count when the condition fails and CyclesTaken the count when it
// succeeds.
// definitions is the unprefixed page of the instruction set.
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Cycles: 1},
	{OpCode: 0x01, Mnemonic: "LD", Operand: "BC,n16", Bytes: 3, Cycles: 3},
	{OpCode: 0x02, Mnemonic: "LD", Operand: "(BC),A", Bytes: 1, Cycles: 2},
	{OpCode: 0x03, Mnemonic: "INC", Operand: "BC", Bytes: 1, Cycles: 2},
	{OpCode: 0x04, Mnemonic: "INC", Operand: "B", Bytes: 1, Cycles: 1},
	{OpCode: 0x05, Mnemonic: "DEC", Operand: "B", Bytes: 1, Cycles: 1},
	{OpCode: 0x06, Mnemonic: "LD", Operand: "B,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x07, Mnemonic: "RLCA", Bytes: 1, Cycles: 1},
	{OpCode: 0x08, Mnemonic: "LD", Operand: "(n16),SP", Bytes: 3, Cycles: 5},
	{OpCode: 0x09, Mnemonic: "ADD", Operand: "HL,BC", Bytes: 1, Cycles: 2},
	{OpCode: 0x0a, Mnemonic: "LD", Operand: "A,(BC)", Bytes: 1, Cycles: 2},
	{OpCode: 0x0b, Mnemonic: "DEC", Operand: "BC", Bytes: 1, Cycles: 2},
	{OpCode: 0x0c, Mnemonic: "INC", Operand: "C", Bytes: 1, Cycles: 1},
	{OpCode: 0x0d, Mnemonic: "DEC", Operand: "C", Bytes: 1, Cycles: 1},
	{OpCode: 0x0e, Mnemonic: "LD", Operand: "C,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x0f, Mnemonic: "RRCA", Bytes: 1, Cycles: 1},
	{OpCode: 0x10, Mnemonic: "STOP", Bytes: 2, Cycles: 1},
	{OpCode: 0x11, Mnemonic: "LD", Operand: "DE,n16", Bytes: 3, Cycles: 3},
	{OpCode: 0x12, Mnemonic: "LD", Operand: "(DE),A", Bytes: 1, Cycles: 2},
	{OpCode: 0x13, Mnemonic: "INC", Operand: "DE", Bytes: 1, Cycles: 2},
	{OpCode: 0x14, Mnemonic: "INC", Operand: "D", Bytes: 1, Cycles: 1},
	{OpCode: 0x15, Mnemonic: "DEC", Operand: "D", Bytes: 1, Cycles: 1},
	{OpCode: 0x16, Mnemonic: "LD", Operand: "D,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x17, Mnemonic: "RLA", Bytes: 1, Cycles: 1},
	{OpCode: 0x18, Mnemonic: "JR", Operand: "e8", Bytes: 2, Cycles: 3, Effect: Flow},
	{OpCode: 0x19, Mnemonic: "ADD", Operand: "HL,DE", Bytes: 1, Cycles: 2},
	{OpCode: 0x1a, Mnemonic: "LD", Operand: "A,(DE)", Bytes: 1, Cycles: 2},
	{OpCode: 0x1b, Mnemonic: "DEC", Operand: "DE", Bytes: 1, Cycles: 2},
	{OpCode: 0x1c, Mnemonic: "INC", Operand: "E", Bytes: 1, Cycles: 1},
	{OpCode: 0x1d, Mnemonic: "DEC", Operand: "E", Bytes: 1, Cycles: 1},
	{OpCode: 0x1e, Mnemonic: "LD", Operand: "E,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x1f, Mnemonic: "RRA", Bytes: 1, Cycles: 1},
	{OpCode: 0x20, Mnemonic: "JR", Operand: "NZ,e8", Bytes: 2, Cycles: 2, CyclesTaken: 3, Effect: Flow},
	{OpCode: 0x21, Mnemonic: "LD", Operand: "HL,n16", Bytes: 3, Cycles: 3},
	{OpCode: 0x22, Mnemonic: "LD", Operand: "(HL+),A", Bytes: 1, Cycles: 2},
	{OpCode: 0x23, Mnemonic: "INC", Operand: "HL", Bytes: 1, Cycles: 2},
	{OpCode: 0x24, Mnemonic: "INC", Operand: "H", Bytes: 1, Cycles: 1},
	{OpCode: 0x25, Mnemonic: "DEC", Operand: "H", Bytes: 1, Cycles: 1},
	{OpCode: 0x26, Mnemonic: "LD", Operand: "H,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Cycles: 1},
	{OpCode: 0x28, Mnemonic: "JR", Operand: "Z,e8", Bytes: 2, Cycles: 2, CyclesTaken: 3, Effect: Flow},
	{OpCode: 0x29, Mnemonic: "ADD", Operand: "HL,HL", Bytes: 1, Cycles: 2},
	{OpCode: 0x2a, Mnemonic: "LD", Operand: "A,(HL+)", Bytes: 1, Cycles: 2},
	{OpCode: 0x2b, Mnemonic: "DEC", Operand: "HL", Bytes: 1, Cycles: 2},
	{OpCode: 0x2c, Mnemonic: "INC", Operand: "L", Bytes: 1, Cycles: 1},
	{OpCode: 0x2d, Mnemonic: "DEC", Operand: "L", Bytes: 1, Cycles: 1},
	{OpCode: 0x2e, Mnemonic: "LD", Operand: "L,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x2f, Mnemonic: "CPL", Bytes: 1, Cycles: 1},
	{OpCode: 0x30, Mnemonic: "JR", Operand: "NC,e8", Bytes: 2, Cycles: 2, CyclesTaken: 3, Effect: Flow},
	{OpCode: 0x31, Mnemonic: "LD", Operand: "SP,n16", Bytes: 3, Cycles: 3},
	{OpCode: 0x32, Mnemonic: "LD", Operand: "(HL-),A", Bytes: 1, Cycles: 2},
	{OpCode: 0x33, Mnemonic: "INC", Operand: "SP", Bytes: 1, Cycles: 2},
	{OpCode: 0x34, Mnemonic: "INC", Operand: "(HL)", Bytes: 1, Cycles: 3},
	{OpCode: 0x35, Mnemonic: "DEC", Operand: "(HL)", Bytes: 1, Cycles: 3},
	{OpCode: 0x36, Mnemonic: "LD", Operand: "(HL),n8", Bytes: 2, Cycles: 3},
	{OpCode: 0x37, Mnemonic: "SCF", Bytes: 1, Cycles: 1},
	{OpCode: 0x38, Mnemonic: "JR", Operand: "C,e8", Bytes: 2, Cycles: 2, CyclesTaken: 3, Effect: Flow},
	{OpCode: 0x39, Mnemonic: "ADD", Operand: "HL,SP", Bytes: 1, Cycles: 2},
	{OpCode: 0x3a, Mnemonic: "LD", Operand: "A,(HL-)", Bytes: 1, Cycles: 2},
	{OpCode: 0x3b, Mnemonic: "DEC", Operand: "SP", Bytes: 1, Cycles: 2},
	{OpCode: 0x3c, Mnemonic: "INC", Operand: "A", Bytes: 1, Cycles: 1},
	{OpCode: 0x3d, Mnemonic: "DEC", Operand: "A", Bytes: 1, Cycles: 1},
	{OpCode: 0x3e, Mnemonic: "LD", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0x3f, Mnemonic: "CCF", Bytes: 1, Cycles: 1},
	{OpCode: 0x40, Mnemonic: "LD", Operand: "B,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x41, Mnemonic: "LD", Operand: "B,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x42, Mnemonic: "LD", Operand: "B,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x43, Mnemonic: "LD", Operand: "B,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x44, Mnemonic: "LD", Operand: "B,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x45, Mnemonic: "LD", Operand: "B,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x46, Mnemonic: "LD", Operand: "B,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x47, Mnemonic: "LD", Operand: "B,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x48, Mnemonic: "LD", Operand: "C,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x49, Mnemonic: "LD", Operand: "C,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x4a, Mnemonic: "LD", Operand: "C,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x4b, Mnemonic: "LD", Operand: "C,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x4c, Mnemonic: "LD", Operand: "C,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x4d, Mnemonic: "LD", Operand: "C,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x4e, Mnemonic: "LD", Operand: "C,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x4f, Mnemonic: "LD", Operand: "C,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x50, Mnemonic: "LD", Operand: "D,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x51, Mnemonic: "LD", Operand: "D,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x52, Mnemonic: "LD", Operand: "D,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x53, Mnemonic: "LD", Operand: "D,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x54, Mnemonic: "LD", Operand: "D,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x55, Mnemonic: "LD", Operand: "D,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x56, Mnemonic: "LD", Operand: "D,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x57, Mnemonic: "LD", Operand: "D,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x58, Mnemonic: "LD", Operand: "E,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x59, Mnemonic: "LD", Operand: "E,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x5a, Mnemonic: "LD", Operand: "E,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x5b, Mnemonic: "LD", Operand: "E,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x5c, Mnemonic: "LD", Operand: "E,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x5d, Mnemonic: "LD", Operand: "E,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x5e, Mnemonic: "LD", Operand: "E,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x5f, Mnemonic: "LD", Operand: "E,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x60, Mnemonic: "LD", Operand: "H,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x61, Mnemonic: "LD", Operand: "H,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x62, Mnemonic: "LD", Operand: "H,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x63, Mnemonic: "LD", Operand: "H,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x64, Mnemonic: "LD", Operand: "H,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x65, Mnemonic: "LD", Operand: "H,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x66, Mnemonic: "LD", Operand: "H,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x67, Mnemonic: "LD", Operand: "H,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x68, Mnemonic: "LD", Operand: "L,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x69, Mnemonic: "LD", Operand: "L,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x6a, Mnemonic: "LD", Operand: "L,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x6b, Mnemonic: "LD", Operand: "L,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x6c, Mnemonic: "LD", Operand: "L,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x6d, Mnemonic: "LD", Operand: "L,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x6e, Mnemonic: "LD", Operand: "L,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x6f, Mnemonic: "LD", Operand: "L,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x70, Mnemonic: "LD", Operand: "(HL),B", Bytes: 1, Cycles: 2},
	{OpCode: 0x71, Mnemonic: "LD", Operand: "(HL),C", Bytes: 1, Cycles: 2},
	{OpCode: 0x72, Mnemonic: "LD", Operand: "(HL),D", Bytes: 1, Cycles: 2},
	{OpCode: 0x73, Mnemonic: "LD", Operand: "(HL),E", Bytes: 1, Cycles: 2},
	{OpCode: 0x74, Mnemonic: "LD", Operand: "(HL),H", Bytes: 1, Cycles: 2},
	{OpCode: 0x75, Mnemonic: "LD", Operand: "(HL),L", Bytes: 1, Cycles: 2},
	{OpCode: 0x76, Mnemonic: "HALT", Bytes: 1, Cycles: 1},
	{OpCode: 0x77, Mnemonic: "LD", Operand: "(HL),A", Bytes: 1, Cycles: 2},
	{OpCode: 0x78, Mnemonic: "LD", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x79, Mnemonic: "LD", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x7a, Mnemonic: "LD", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x7b, Mnemonic: "LD", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x7c, Mnemonic: "LD", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x7d, Mnemonic: "LD", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x7e, Mnemonic: "LD", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x7f, Mnemonic: "LD", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x80, Mnemonic: "ADD", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x81, Mnemonic: "ADD", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x82, Mnemonic: "ADD", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x83, Mnemonic: "ADD", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x84, Mnemonic: "ADD", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x85, Mnemonic: "ADD", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x86, Mnemonic: "ADD", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x87, Mnemonic: "ADD", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x88, Mnemonic: "ADC", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x89, Mnemonic: "ADC", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x8a, Mnemonic: "ADC", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x8b, Mnemonic: "ADC", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x8c, Mnemonic: "ADC", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x8d, Mnemonic: "ADC", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x8e, Mnemonic: "ADC", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x8f, Mnemonic: "ADC", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x90, Mnemonic: "SUB", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x91, Mnemonic: "SUB", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x92, Mnemonic: "SUB", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x93, Mnemonic: "SUB", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x94, Mnemonic: "SUB", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x95, Mnemonic: "SUB", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x96, Mnemonic: "SUB", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x97, Mnemonic: "SUB", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0x98, Mnemonic: "SBC", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0x99, Mnemonic: "SBC", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0x9a, Mnemonic: "SBC", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0x9b, Mnemonic: "SBC", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0x9c, Mnemonic: "SBC", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0x9d, Mnemonic: "SBC", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0x9e, Mnemonic: "SBC", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0x9f, Mnemonic: "SBC", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0xa0, Mnemonic: "AND", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0xa1, Mnemonic: "AND", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0xa2, Mnemonic: "AND", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0xa3, Mnemonic: "AND", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0xa4, Mnemonic: "AND", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0xa5, Mnemonic: "AND", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0xa6, Mnemonic: "AND", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0xa7, Mnemonic: "AND", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0xa8, Mnemonic: "XOR", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0xa9, Mnemonic: "XOR", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0xaa, Mnemonic: "XOR", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0xab, Mnemonic: "XOR", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0xac, Mnemonic: "XOR", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0xad, Mnemonic: "XOR", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0xae, Mnemonic: "XOR", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0xaf, Mnemonic: "XOR", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0xb0, Mnemonic: "OR", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0xb1, Mnemonic: "OR", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0xb2, Mnemonic: "OR", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0xb3, Mnemonic: "OR", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0xb4, Mnemonic: "OR", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0xb5, Mnemonic: "OR", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0xb6, Mnemonic: "OR", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0xb7, Mnemonic: "OR", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0xb8, Mnemonic: "CP", Operand: "A,B", Bytes: 1, Cycles: 1},
	{OpCode: 0xb9, Mnemonic: "CP", Operand: "A,C", Bytes: 1, Cycles: 1},
	{OpCode: 0xba, Mnemonic: "CP", Operand: "A,D", Bytes: 1, Cycles: 1},
	{OpCode: 0xbb, Mnemonic: "CP", Operand: "A,E", Bytes: 1, Cycles: 1},
	{OpCode: 0xbc, Mnemonic: "CP", Operand: "A,H", Bytes: 1, Cycles: 1},
	{OpCode: 0xbd, Mnemonic: "CP", Operand: "A,L", Bytes: 1, Cycles: 1},
	{OpCode: 0xbe, Mnemonic: "CP", Operand: "A,(HL)", Bytes: 1, Cycles: 2},
	{OpCode: 0xbf, Mnemonic: "CP", Operand: "A,A", Bytes: 1, Cycles: 1},
	{OpCode: 0xc0, Mnemonic: "RET", Operand: "NZ", Bytes: 1, Cycles: 2, CyclesTaken: 5, Effect: Return},
	{OpCode: 0xc1, Mnemonic: "POP", Operand: "BC", Bytes: 1, Cycles: 3},
	{OpCode: 0xc2, Mnemonic: "JP", Operand: "NZ,n16", Bytes: 3, Cycles: 3, CyclesTaken: 4, Effect: Flow},
	{OpCode: 0xc3, Mnemonic: "JP", Operand: "n16", Bytes: 3, Cycles: 4, Effect: Flow},
	{OpCode: 0xc4, Mnemonic: "CALL", Operand: "NZ,n16", Bytes: 3, Cycles: 3, CyclesTaken: 6, Effect: Subroutine},
	{OpCode: 0xc5, Mnemonic: "PUSH", Operand: "BC", Bytes: 1, Cycles: 4},
	{OpCode: 0xc6, Mnemonic: "ADD", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xc7, Mnemonic: "RST", Operand: "00h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xc8, Mnemonic: "RET", Operand: "Z", Bytes: 1, Cycles: 2, CyclesTaken: 5, Effect: Return},
	{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Cycles: 4, Effect: Return},
	{OpCode: 0xca, Mnemonic: "JP", Operand: "Z,n16", Bytes: 3, Cycles: 3, CyclesTaken: 4, Effect: Flow},
	{OpCode: 0xcb, Mnemonic: "PREFIX", Bytes: 1, Cycles: 1},
	{OpCode: 0xcc, Mnemonic: "CALL", Operand: "Z,n16", Bytes: 3, Cycles: 3, CyclesTaken: 6, Effect: Subroutine},
	{OpCode: 0xcd, Mnemonic: "CALL", Operand: "n16", Bytes: 3, Cycles: 6, Effect: Subroutine},
	{OpCode: 0xce, Mnemonic: "ADC", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xcf, Mnemonic: "RST", Operand: "08h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xd0, Mnemonic: "RET", Operand: "NC", Bytes: 1, Cycles: 2, CyclesTaken: 5, Effect: Return},
	{OpCode: 0xd1, Mnemonic: "POP", Operand: "DE", Bytes: 1, Cycles: 3},
	{OpCode: 0xd2, Mnemonic: "JP", Operand: "NC,n16", Bytes: 3, Cycles: 3, CyclesTaken: 4, Effect: Flow},
	{OpCode: 0xd3},
	{OpCode: 0xd4, Mnemonic: "CALL", Operand: "NC,n16", Bytes: 3, Cycles: 3, CyclesTaken: 6, Effect: Subroutine},
	{OpCode: 0xd5, Mnemonic: "PUSH", Operand: "DE", Bytes: 1, Cycles: 4},
	{OpCode: 0xd6, Mnemonic: "SUB", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xd7, Mnemonic: "RST", Operand: "10h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xd8, Mnemonic: "RET", Operand: "C", Bytes: 1, Cycles: 2, CyclesTaken: 5, Effect: Return},
	{OpCode: 0xd9, Mnemonic: "RETI", Bytes: 1, Cycles: 4, Effect: Return},
	{OpCode: 0xda, Mnemonic: "JP", Operand: "C,n16", Bytes: 3, Cycles: 3, CyclesTaken: 4, Effect: Flow},
	{OpCode: 0xdb},
	{OpCode: 0xdc, Mnemonic: "CALL", Operand: "C,n16", Bytes: 3, Cycles: 3, CyclesTaken: 6, Effect: Subroutine},
	{OpCode: 0xdd},
	{OpCode: 0xde, Mnemonic: "SBC", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xdf, Mnemonic: "RST", Operand: "18h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xe0, Mnemonic: "LDH", Operand: "(n8),A", Bytes: 2, Cycles: 3},
	{OpCode: 0xe1, Mnemonic: "POP", Operand: "HL", Bytes: 1, Cycles: 3},
	{OpCode: 0xe2, Mnemonic: "LDH", Operand: "(C),A", Bytes: 1, Cycles: 2},
	{OpCode: 0xe3},
	{OpCode: 0xe4},
	{OpCode: 0xe5, Mnemonic: "PUSH", Operand: "HL", Bytes: 1, Cycles: 4},
	{OpCode: 0xe6, Mnemonic: "AND", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xe7, Mnemonic: "RST", Operand: "20h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xe8, Mnemonic: "ADD", Operand: "SP,e8", Bytes: 2, Cycles: 4},
	{OpCode: 0xe9, Mnemonic: "JP", Operand: "HL", Bytes: 1, Cycles: 1, Effect: Flow},
	{OpCode: 0xea, Mnemonic: "LD", Operand: "(n16),A", Bytes: 3, Cycles: 4},
	{OpCode: 0xeb},
	{OpCode: 0xec},
	{OpCode: 0xed},
	{OpCode: 0xee, Mnemonic: "XOR", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xef, Mnemonic: "RST", Operand: "28h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xf0, Mnemonic: "LDH", Operand: "A,(n8)", Bytes: 2, Cycles: 3},
	{OpCode: 0xf1, Mnemonic: "POP", Operand: "AF", Bytes: 1, Cycles: 3},
	{OpCode: 0xf2, Mnemonic: "LDH", Operand: "A,(C)", Bytes: 1, Cycles: 2},
	{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Cycles: 1},
	{OpCode: 0xf4},
	{OpCode: 0xf5, Mnemonic: "PUSH", Operand: "AF", Bytes: 1, Cycles: 4},
	{OpCode: 0xf6, Mnemonic: "OR", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xf7, Mnemonic: "RST", Operand: "30h", Bytes: 1, Cycles: 4, Effect: Subroutine},
	{OpCode: 0xf8, Mnemonic: "LD", Operand: "HL,SP+e8", Bytes: 2, Cycles: 3},
	{OpCode: 0xf9, Mnemonic: "LD", Operand: "SP,HL", Bytes: 1, Cycles: 2},
	{OpCode: 0xfa, Mnemonic: "LD", Operand: "A,(n16)", Bytes: 3, Cycles: 4},
	{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Cycles: 1},
	{OpCode: 0xfc},
	{OpCode: 0xfd},
	{OpCode: 0xfe, Mnemonic: "CP", Operand: "A,n8", Bytes: 2, Cycles: 2},
	{OpCode: 0xff, Mnemonic: "RST", Operand: "38h", Bytes: 1, Cycles: 4, Effect: Subroutine},
}

// prefixedDefinitions is the page selected by the 0xcb prefix opcode.
var prefixedDefinitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "RLC", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x01, Mnemonic: "RLC", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x02, Mnemonic: "RLC", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x03, Mnemonic: "RLC", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x04, Mnemonic: "RLC", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x05, Mnemonic: "RLC", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x06, Mnemonic: "RLC", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x07, Mnemonic: "RLC", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x08, Mnemonic: "RRC", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x09, Mnemonic: "RRC", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x0a, Mnemonic: "RRC", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x0b, Mnemonic: "RRC", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x0c, Mnemonic: "RRC", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x0d, Mnemonic: "RRC", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x0e, Mnemonic: "RRC", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x0f, Mnemonic: "RRC", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x10, Mnemonic: "RL", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x11, Mnemonic: "RL", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x12, Mnemonic: "RL", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x13, Mnemonic: "RL", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x14, Mnemonic: "RL", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x15, Mnemonic: "RL", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x16, Mnemonic: "RL", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x17, Mnemonic: "RL", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x18, Mnemonic: "RR", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x19, Mnemonic: "RR", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x1a, Mnemonic: "RR", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x1b, Mnemonic: "RR", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x1c, Mnemonic: "RR", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x1d, Mnemonic: "RR", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x1e, Mnemonic: "RR", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x1f, Mnemonic: "RR", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x20, Mnemonic: "SLA", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x21, Mnemonic: "SLA", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x22, Mnemonic: "SLA", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x23, Mnemonic: "SLA", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x24, Mnemonic: "SLA", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x25, Mnemonic: "SLA", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x26, Mnemonic: "SLA", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x27, Mnemonic: "SLA", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x28, Mnemonic: "SRA", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x29, Mnemonic: "SRA", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x2a, Mnemonic: "SRA", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x2b, Mnemonic: "SRA", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x2c, Mnemonic: "SRA", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x2d, Mnemonic: "SRA", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x2e, Mnemonic: "SRA", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x2f, Mnemonic: "SRA", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x30, Mnemonic: "SWAP", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x31, Mnemonic: "SWAP", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x32, Mnemonic: "SWAP", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x33, Mnemonic: "SWAP", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x34, Mnemonic: "SWAP", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x35, Mnemonic: "SWAP", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x36, Mnemonic: "SWAP", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x37, Mnemonic: "SWAP", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x38, Mnemonic: "SRL", Operand: "B", Bytes: 2, Cycles: 2},
	{OpCode: 0x39, Mnemonic: "SRL", Operand: "C", Bytes: 2, Cycles: 2},
	{OpCode: 0x3a, Mnemonic: "SRL", Operand: "D", Bytes: 2, Cycles: 2},
	{OpCode: 0x3b, Mnemonic: "SRL", Operand: "E", Bytes: 2, Cycles: 2},
	{OpCode: 0x3c, Mnemonic: "SRL", Operand: "H", Bytes: 2, Cycles: 2},
	{OpCode: 0x3d, Mnemonic: "SRL", Operand: "L", Bytes: 2, Cycles: 2},
	{OpCode: 0x3e, Mnemonic: "SRL", Operand: "(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x3f, Mnemonic: "SRL", Operand: "A", Bytes: 2, Cycles: 2},
	{OpCode: 0x40, Mnemonic: "BIT", Operand: "0,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x41, Mnemonic: "BIT", Operand: "0,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x42, Mnemonic: "BIT", Operand: "0,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x43, Mnemonic: "BIT", Operand: "0,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x44, Mnemonic: "BIT", Operand: "0,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x45, Mnemonic: "BIT", Operand: "0,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x46, Mnemonic: "BIT", Operand: "0,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x47, Mnemonic: "BIT", Operand: "0,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x48, Mnemonic: "BIT", Operand: "1,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x49, Mnemonic: "BIT", Operand: "1,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x4a, Mnemonic: "BIT", Operand: "1,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x4b, Mnemonic: "BIT", Operand: "1,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x4c, Mnemonic: "BIT", Operand: "1,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x4d, Mnemonic: "BIT", Operand: "1,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x4e, Mnemonic: "BIT", Operand: "1,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x4f, Mnemonic: "BIT", Operand: "1,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x50, Mnemonic: "BIT", Operand: "2,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x51, Mnemonic: "BIT", Operand: "2,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x52, Mnemonic: "BIT", Operand: "2,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x53, Mnemonic: "BIT", Operand: "2,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x54, Mnemonic: "BIT", Operand: "2,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x55, Mnemonic: "BIT", Operand: "2,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x56, Mnemonic: "BIT", Operand: "2,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x57, Mnemonic: "BIT", Operand: "2,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x58, Mnemonic: "BIT", Operand: "3,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x59, Mnemonic: "BIT", Operand: "3,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x5a, Mnemonic: "BIT", Operand: "3,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x5b, Mnemonic: "BIT", Operand: "3,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x5c, Mnemonic: "BIT", Operand: "3,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x5d, Mnemonic: "BIT", Operand: "3,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x5e, Mnemonic: "BIT", Operand: "3,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x5f, Mnemonic: "BIT", Operand: "3,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x60, Mnemonic: "BIT", Operand: "4,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x61, Mnemonic: "BIT", Operand: "4,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x62, Mnemonic: "BIT", Operand: "4,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x63, Mnemonic: "BIT", Operand: "4,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x64, Mnemonic: "BIT", Operand: "4,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x65, Mnemonic: "BIT", Operand: "4,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x66, Mnemonic: "BIT", Operand: "4,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x67, Mnemonic: "BIT", Operand: "4,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x68, Mnemonic: "BIT", Operand: "5,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x69, Mnemonic: "BIT", Operand: "5,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x6a, Mnemonic: "BIT", Operand: "5,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x6b, Mnemonic: "BIT", Operand: "5,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x6c, Mnemonic: "BIT", Operand: "5,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x6d, Mnemonic: "BIT", Operand: "5,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x6e, Mnemonic: "BIT", Operand: "5,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x6f, Mnemonic: "BIT", Operand: "5,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x70, Mnemonic: "BIT", Operand: "6,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x71, Mnemonic: "BIT", Operand: "6,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x72, Mnemonic: "BIT", Operand: "6,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x73, Mnemonic: "BIT", Operand: "6,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x74, Mnemonic: "BIT", Operand: "6,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x75, Mnemonic: "BIT", Operand: "6,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x76, Mnemonic: "BIT", Operand: "6,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x77, Mnemonic: "BIT", Operand: "6,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x78, Mnemonic: "BIT", Operand: "7,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x79, Mnemonic: "BIT", Operand: "7,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x7a, Mnemonic: "BIT", Operand: "7,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x7b, Mnemonic: "BIT", Operand: "7,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x7c, Mnemonic: "BIT", Operand: "7,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x7d, Mnemonic: "BIT", Operand: "7,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x7e, Mnemonic: "BIT", Operand: "7,(HL)", Bytes: 2, Cycles: 3},
	{OpCode: 0x7f, Mnemonic: "BIT", Operand: "7,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x80, Mnemonic: "RES", Operand: "0,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x81, Mnemonic: "RES", Operand: "0,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x82, Mnemonic: "RES", Operand: "0,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x83, Mnemonic: "RES", Operand: "0,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x84, Mnemonic: "RES", Operand: "0,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x85, Mnemonic: "RES", Operand: "0,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x86, Mnemonic: "RES", Operand: "0,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x87, Mnemonic: "RES", Operand: "0,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x88, Mnemonic: "RES", Operand: "1,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x89, Mnemonic: "RES", Operand: "1,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x8a, Mnemonic: "RES", Operand: "1,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x8b, Mnemonic: "RES", Operand: "1,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x8c, Mnemonic: "RES", Operand: "1,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x8d, Mnemonic: "RES", Operand: "1,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x8e, Mnemonic: "RES", Operand: "1,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x8f, Mnemonic: "RES", Operand: "1,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x90, Mnemonic: "RES", Operand: "2,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x91, Mnemonic: "RES", Operand: "2,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x92, Mnemonic: "RES", Operand: "2,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x93, Mnemonic: "RES", Operand: "2,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x94, Mnemonic: "RES", Operand: "2,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x95, Mnemonic: "RES", Operand: "2,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x96, Mnemonic: "RES", Operand: "2,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x97, Mnemonic: "RES", Operand: "2,A", Bytes: 2, Cycles: 2},
	{OpCode: 0x98, Mnemonic: "RES", Operand: "3,B", Bytes: 2, Cycles: 2},
	{OpCode: 0x99, Mnemonic: "RES", Operand: "3,C", Bytes: 2, Cycles: 2},
	{OpCode: 0x9a, Mnemonic: "RES", Operand: "3,D", Bytes: 2, Cycles: 2},
	{OpCode: 0x9b, Mnemonic: "RES", Operand: "3,E", Bytes: 2, Cycles: 2},
	{OpCode: 0x9c, Mnemonic: "RES", Operand: "3,H", Bytes: 2, Cycles: 2},
	{OpCode: 0x9d, Mnemonic: "RES", Operand: "3,L", Bytes: 2, Cycles: 2},
	{OpCode: 0x9e, Mnemonic: "RES", Operand: "3,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0x9f, Mnemonic: "RES", Operand: "3,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xa0, Mnemonic: "RES", Operand: "4,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xa1, Mnemonic: "RES", Operand: "4,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xa2, Mnemonic: "RES", Operand: "4,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xa3, Mnemonic: "RES", Operand: "4,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xa4, Mnemonic: "RES", Operand: "4,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xa5, Mnemonic: "RES", Operand: "4,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xa6, Mnemonic: "RES", Operand: "4,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xa7, Mnemonic: "RES", Operand: "4,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xa8, Mnemonic: "RES", Operand: "5,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xa9, Mnemonic: "RES", Operand: "5,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xaa, Mnemonic: "RES", Operand: "5,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xab, Mnemonic: "RES", Operand: "5,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xac, Mnemonic: "RES", Operand: "5,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xad, Mnemonic: "RES", Operand: "5,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xae, Mnemonic: "RES", Operand: "5,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xaf, Mnemonic: "RES", Operand: "5,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xb0, Mnemonic: "RES", Operand: "6,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xb1, Mnemonic: "RES", Operand: "6,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xb2, Mnemonic: "RES", Operand: "6,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xb3, Mnemonic: "RES", Operand: "6,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xb4, Mnemonic: "RES", Operand: "6,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xb5, Mnemonic: "RES", Operand: "6,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xb6, Mnemonic: "RES", Operand: "6,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xb7, Mnemonic: "RES", Operand: "6,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xb8, Mnemonic: "RES", Operand: "7,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xb9, Mnemonic: "RES", Operand: "7,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xba, Mnemonic: "RES", Operand: "7,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xbb, Mnemonic: "RES", Operand: "7,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xbc, Mnemonic: "RES", Operand: "7,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xbd, Mnemonic: "RES", Operand: "7,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xbe, Mnemonic: "RES", Operand: "7,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xbf, Mnemonic: "RES", Operand: "7,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xc0, Mnemonic: "SET", Operand: "0,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xc1, Mnemonic: "SET", Operand: "0,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xc2, Mnemonic: "SET", Operand: "0,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xc3, Mnemonic: "SET", Operand: "0,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xc4, Mnemonic: "SET", Operand: "0,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xc5, Mnemonic: "SET", Operand: "0,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xc6, Mnemonic: "SET", Operand: "0,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xc7, Mnemonic: "SET", Operand: "0,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xc8, Mnemonic: "SET", Operand: "1,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xc9, Mnemonic: "SET", Operand: "1,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xca, Mnemonic: "SET", Operand: "1,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xcb, Mnemonic: "SET", Operand: "1,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xcc, Mnemonic: "SET", Operand: "1,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xcd, Mnemonic: "SET", Operand: "1,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xce, Mnemonic: "SET", Operand: "1,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xcf, Mnemonic: "SET", Operand: "1,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xd0, Mnemonic: "SET", Operand: "2,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xd1, Mnemonic: "SET", Operand: "2,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xd2, Mnemonic: "SET", Operand: "2,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xd3, Mnemonic: "SET", Operand: "2,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xd4, Mnemonic: "SET", Operand: "2,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xd5, Mnemonic: "SET", Operand: "2,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xd6, Mnemonic: "SET", Operand: "2,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xd7, Mnemonic: "SET", Operand: "2,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xd8, Mnemonic: "SET", Operand: "3,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xd9, Mnemonic: "SET", Operand: "3,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xda, Mnemonic: "SET", Operand: "3,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xdb, Mnemonic: "SET", Operand: "3,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xdc, Mnemonic: "SET", Operand: "3,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xdd, Mnemonic: "SET", Operand: "3,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xde, Mnemonic: "SET", Operand: "3,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xdf, Mnemonic: "SET", Operand: "3,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xe0, Mnemonic: "SET", Operand: "4,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xe1, Mnemonic: "SET", Operand: "4,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xe2, Mnemonic: "SET", Operand: "4,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xe3, Mnemonic: "SET", Operand: "4,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xe4, Mnemonic: "SET", Operand: "4,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xe5, Mnemonic: "SET", Operand: "4,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xe6, Mnemonic: "SET", Operand: "4,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xe7, Mnemonic: "SET", Operand: "4,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xe8, Mnemonic: "SET", Operand: "5,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xe9, Mnemonic: "SET", Operand: "5,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xea, Mnemonic: "SET", Operand: "5,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xeb, Mnemonic: "SET", Operand: "5,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xec, Mnemonic: "SET", Operand: "5,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xed, Mnemonic: "SET", Operand: "5,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xee, Mnemonic: "SET", Operand: "5,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xef, Mnemonic: "SET", Operand: "5,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xf0, Mnemonic: "SET", Operand: "6,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xf1, Mnemonic: "SET", Operand: "6,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xf2, Mnemonic: "SET", Operand: "6,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xf3, Mnemonic: "SET", Operand: "6,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xf4, Mnemonic: "SET", Operand: "6,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xf5, Mnemonic: "SET", Operand: "6,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xf6, Mnemonic: "SET", Operand: "6,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xf7, Mnemonic: "SET", Operand: "6,A", Bytes: 2, Cycles: 2},
	{OpCode: 0xf8, Mnemonic: "SET", Operand: "7,B", Bytes: 2, Cycles: 2},
	{OpCode: 0xf9, Mnemonic: "SET", Operand: "7,C", Bytes: 2, Cycles: 2},
	{OpCode: 0xfa, Mnemonic: "SET", Operand: "7,D", Bytes: 2, Cycles: 2},
	{OpCode: 0xfb, Mnemonic: "SET", Operand: "7,E", Bytes: 2, Cycles: 2},
	{OpCode: 0xfc, Mnemonic: "SET", Operand: "7,H", Bytes: 2, Cycles: 2},
	{OpCode: 0xfd, Mnemonic: "SET", Operand: "7,L", Bytes: 2, Cycles: 2},
	{OpCode: 0xfe, Mnemonic: "SET", Operand: "7,(HL)", Bytes: 2, Cycles: 4},
	{OpCode: 0xff, Mnemonic: "SET", Operand: "7,A", Bytes: 2, Cycles: 2},
}
