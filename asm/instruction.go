// Package asm assembles T34 source text into raw machine code. It is a
// two-pass assembler in the teacher's mold: pass one walks the source
// collecting label addresses, pass two re-walks it emitting bytes with
// symbols resolved. Addressing is limited to the T34 instruction set's
// seven modes — there is no indexed or indirect-indexed addressing.
package asm

import "github.com/chezka-gaddi/t34/cpu"

// AddressMode mirrors cpu.AddrMode, duplicated here because the assembler
// reasons about modes before any bytes exist to decode.
type AddressMode int

const (
	Implicit AddressMode = iota
	Accumulator
	Immediate
	ZeroPage
	Absolute
	Indirect
	Relative
)

// Instruction is one addressing-mode variant of a mnemonic: its opcode and
// encoded size (opcode byte plus operand bytes).
type Instruction struct {
	Opcode byte
	Size   int
	Mode   AddressMode
}

// InstructionEntry is every addressing-mode variant a mnemonic supports.
type InstructionEntry struct {
	Modes map[AddressMode]Instruction
}

var instructionSet = map[string]InstructionEntry{
	"LDA": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.LDA_IMM, 2, Immediate}, ZeroPage: {cpu.LDA_ZP, 2, ZeroPage}, Absolute: {cpu.LDA_ABS, 3, Absolute},
	}},
	"LDX": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.LDX_IMM, 2, Immediate}, ZeroPage: {cpu.LDX_ZP, 2, ZeroPage}, Absolute: {cpu.LDX_ABS, 3, Absolute},
	}},
	"LDY": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.LDY_IMM, 2, Immediate}, ZeroPage: {cpu.LDY_ZP, 2, ZeroPage}, Absolute: {cpu.LDY_ABS, 3, Absolute},
	}},
	"STA": {Modes: map[AddressMode]Instruction{
		ZeroPage: {cpu.STA_ZP, 2, ZeroPage}, Absolute: {cpu.STA_ABS, 3, Absolute},
	}},
	"STX": {Modes: map[AddressMode]Instruction{
		ZeroPage: {cpu.STX_ZP, 2, ZeroPage}, Absolute: {cpu.STX_ABS, 3, Absolute},
	}},
	"STY": {Modes: map[AddressMode]Instruction{
		ZeroPage: {cpu.STY_ZP, 2, ZeroPage}, Absolute: {cpu.STY_ABS, 3, Absolute},
	}},

	"TAX": {Modes: map[AddressMode]Instruction{Implicit: {cpu.TAX, 1, Implicit}}},
	"TAY": {Modes: map[AddressMode]Instruction{Implicit: {cpu.TAY, 1, Implicit}}},
	"TSX": {Modes: map[AddressMode]Instruction{Implicit: {cpu.TSX, 1, Implicit}}},
	"TXA": {Modes: map[AddressMode]Instruction{Implicit: {cpu.TXA, 1, Implicit}}},
	"TXS": {Modes: map[AddressMode]Instruction{Implicit: {cpu.TXS, 1, Implicit}}},
	"TYA": {Modes: map[AddressMode]Instruction{Implicit: {cpu.TYA, 1, Implicit}}},

	"PHA": {Modes: map[AddressMode]Instruction{Implicit: {cpu.PHA, 1, Implicit}}},
	"PHP": {Modes: map[AddressMode]Instruction{Implicit: {cpu.PHP, 1, Implicit}}},
	"PLA": {Modes: map[AddressMode]Instruction{Implicit: {cpu.PLA, 1, Implicit}}},
	"PLP": {Modes: map[AddressMode]Instruction{Implicit: {cpu.PLP, 1, Implicit}}},

	"AND": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.AND_IMM, 2, Immediate}, ZeroPage: {cpu.AND_ZP, 2, ZeroPage}, Absolute: {cpu.AND_ABS, 3, Absolute},
	}},
	"ORA": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.ORA_IMM, 2, Immediate}, ZeroPage: {cpu.ORA_ZP, 2, ZeroPage}, Absolute: {cpu.ORA_ABS, 3, Absolute},
	}},
	"EOR": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.EOR_IMM, 2, Immediate}, ZeroPage: {cpu.EOR_ZP, 2, ZeroPage}, Absolute: {cpu.EOR_ABS, 3, Absolute},
	}},
	"BIT": {Modes: map[AddressMode]Instruction{
		ZeroPage: {cpu.BIT_ZP, 2, ZeroPage}, Absolute: {cpu.BIT_ABS, 3, Absolute},
	}},

	"ADC": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.ADC_IMM, 2, Immediate}, ZeroPage: {cpu.ADC_ZP, 2, ZeroPage}, Absolute: {cpu.ADC_ABS, 3, Absolute},
	}},
	"SBC": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.SBC_IMM, 2, Immediate}, ZeroPage: {cpu.SBC_ZP, 2, ZeroPage}, Absolute: {cpu.SBC_ABS, 3, Absolute},
	}},
	"CMP": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.CMP_IMM, 2, Immediate}, ZeroPage: {cpu.CMP_ZP, 2, ZeroPage}, Absolute: {cpu.CMP_ABS, 3, Absolute},
	}},
	"CPX": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.CPX_IMM, 2, Immediate}, ZeroPage: {cpu.CPX_ZP, 2, ZeroPage}, Absolute: {cpu.CPX_ABS, 3, Absolute},
	}},
	"CPY": {Modes: map[AddressMode]Instruction{
		Immediate: {cpu.CPY_IMM, 2, Immediate}, ZeroPage: {cpu.CPY_ZP, 2, ZeroPage}, Absolute: {cpu.CPY_ABS, 3, Absolute},
	}},

	"INC": {Modes: map[AddressMode]Instruction{ZeroPage: {cpu.INC_ZP, 2, ZeroPage}, Absolute: {cpu.INC_ABS, 3, Absolute}}},
	"DEC": {Modes: map[AddressMode]Instruction{ZeroPage: {cpu.DEC_ZP, 2, ZeroPage}, Absolute: {cpu.DEC_ABS, 3, Absolute}}},
	"INX": {Modes: map[AddressMode]Instruction{Implicit: {cpu.INX, 1, Implicit}}},
	"INY": {Modes: map[AddressMode]Instruction{Implicit: {cpu.INY, 1, Implicit}}},
	"DEX": {Modes: map[AddressMode]Instruction{Implicit: {cpu.DEX, 1, Implicit}}},
	"DEY": {Modes: map[AddressMode]Instruction{Implicit: {cpu.DEY, 1, Implicit}}},

	"ASL": {Modes: map[AddressMode]Instruction{
		Accumulator: {cpu.ASL_ACC, 1, Accumulator}, ZeroPage: {cpu.ASL_ZP, 2, ZeroPage}, Absolute: {cpu.ASL_ABS, 3, Absolute},
	}},
	"LSR": {Modes: map[AddressMode]Instruction{
		Accumulator: {cpu.LSR_ACC, 1, Accumulator}, ZeroPage: {cpu.LSR_ZP, 2, ZeroPage}, Absolute: {cpu.LSR_ABS, 3, Absolute},
	}},
	"ROL": {Modes: map[AddressMode]Instruction{
		Accumulator: {cpu.ROL_ACC, 1, Accumulator}, ZeroPage: {cpu.ROL_ZP, 2, ZeroPage}, Absolute: {cpu.ROL_ABS, 3, Absolute},
	}},
	"ROR": {Modes: map[AddressMode]Instruction{
		Accumulator: {cpu.ROR_ACC, 1, Accumulator}, ZeroPage: {cpu.ROR_ZP, 2, ZeroPage}, Absolute: {cpu.ROR_ABS, 3, Absolute},
	}},

	"JMP": {Modes: map[AddressMode]Instruction{Absolute: {cpu.JMP_ABS, 3, Absolute}, Indirect: {cpu.JMP_IND, 3, Indirect}}},
	"JSR": {Modes: map[AddressMode]Instruction{Absolute: {cpu.JSR_ABS, 3, Absolute}}},
	"RTS": {Modes: map[AddressMode]Instruction{Implicit: {cpu.RTS, 1, Implicit}}},
	"BRK": {Modes: map[AddressMode]Instruction{Implicit: {cpu.BRK, 1, Implicit}}},

	"BPL": {Modes: map[AddressMode]Instruction{Relative: {cpu.BPL, 2, Relative}}},
	"BMI": {Modes: map[AddressMode]Instruction{Relative: {cpu.BMI, 2, Relative}}},
	"BVC": {Modes: map[AddressMode]Instruction{Relative: {cpu.BVC, 2, Relative}}},
	"BVS": {Modes: map[AddressMode]Instruction{Relative: {cpu.BVS, 2, Relative}}},
	"BCC": {Modes: map[AddressMode]Instruction{Relative: {cpu.BCC, 2, Relative}}},
	"BCS": {Modes: map[AddressMode]Instruction{Relative: {cpu.BCS, 2, Relative}}},
	"BNE": {Modes: map[AddressMode]Instruction{Relative: {cpu.BNE, 2, Relative}}},
	"BEQ": {Modes: map[AddressMode]Instruction{Relative: {cpu.BEQ, 2, Relative}}},

	"CLC": {Modes: map[AddressMode]Instruction{Implicit: {cpu.CLC, 1, Implicit}}},
	"SEC": {Modes: map[AddressMode]Instruction{Implicit: {cpu.SEC, 1, Implicit}}},
	"CLI": {Modes: map[AddressMode]Instruction{Implicit: {cpu.CLI, 1, Implicit}}},
	"SEI": {Modes: map[AddressMode]Instruction{Implicit: {cpu.SEI, 1, Implicit}}},
	"CLV": {Modes: map[AddressMode]Instruction{Implicit: {cpu.CLV, 1, Implicit}}},
	"CLD": {Modes: map[AddressMode]Instruction{Implicit: {cpu.CLD, 1, Implicit}}},
	"SED": {Modes: map[AddressMode]Instruction{Implicit: {cpu.SED, 1, Implicit}}},

	"NOP": {Modes: map[AddressMode]Instruction{Implicit: {cpu.NOP, 1, Implicit}}},
}
