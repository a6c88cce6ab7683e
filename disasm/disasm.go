// Package disasm produces static, non-executing disassembly listings of
// T34 memory, for front ends like the monitor's TUI disassembly pane. It
// never calls cpu.Step and never mutates a CPU; it only reads bytes and
// looks them up in a mnemonic table that mirrors the opcode table the cpu
// package dispatches on.
package disasm

import (
	"fmt"
	"strings"

	"github.com/chezka-gaddi/t34/cpu"
)

// Instruction is a static opcode/mode pairing, independent of the operand
// bytes a particular occurrence happens to carry.
type Instruction struct {
	Mnemonic string
	Mode     cpu.AddrMode
}

// operandBytes reports how many bytes follow the opcode for mode.
func operandBytes(mode cpu.AddrMode) int {
	switch mode {
	case cpu.Immediate, cpu.ZeroPage, cpu.Relative:
		return 1
	case cpu.Absolute, cpu.Indirect:
		return 2
	default:
		return 0
	}
}

// instructionSet mirrors the cpu package's opcode table: every entry there
// has a matching entry here naming its mnemonic and addressing mode.
var instructionSet = map[byte]Instruction{
	cpu.LDA_IMM: {"LDA", cpu.Immediate}, cpu.LDA_ZP: {"LDA", cpu.ZeroPage}, cpu.LDA_ABS: {"LDA", cpu.Absolute},
	cpu.LDX_IMM: {"LDX", cpu.Immediate}, cpu.LDX_ZP: {"LDX", cpu.ZeroPage}, cpu.LDX_ABS: {"LDX", cpu.Absolute},
	cpu.LDY_IMM: {"LDY", cpu.Immediate}, cpu.LDY_ZP: {"LDY", cpu.ZeroPage}, cpu.LDY_ABS: {"LDY", cpu.Absolute},

	cpu.STA_ZP: {"STA", cpu.ZeroPage}, cpu.STA_ABS: {"STA", cpu.Absolute},
	cpu.STX_ZP: {"STX", cpu.ZeroPage}, cpu.STX_ABS: {"STX", cpu.Absolute},
	cpu.STY_ZP: {"STY", cpu.ZeroPage}, cpu.STY_ABS: {"STY", cpu.Absolute},

	cpu.TAX: {"TAX", cpu.Implied}, cpu.TAY: {"TAY", cpu.Implied}, cpu.TSX: {"TSX", cpu.Implied},
	cpu.TXA: {"TXA", cpu.Implied}, cpu.TXS: {"TXS", cpu.Implied}, cpu.TYA: {"TYA", cpu.Implied},

	cpu.PHA: {"PHA", cpu.Implied}, cpu.PHP: {"PHP", cpu.Implied},
	cpu.PLA: {"PLA", cpu.Implied}, cpu.PLP: {"PLP", cpu.Implied},

	cpu.AND_IMM: {"AND", cpu.Immediate}, cpu.AND_ZP: {"AND", cpu.ZeroPage}, cpu.AND_ABS: {"AND", cpu.Absolute},
	cpu.ORA_IMM: {"ORA", cpu.Immediate}, cpu.ORA_ZP: {"ORA", cpu.ZeroPage}, cpu.ORA_ABS: {"ORA", cpu.Absolute},
	cpu.EOR_IMM: {"EOR", cpu.Immediate}, cpu.EOR_ZP: {"EOR", cpu.ZeroPage}, cpu.EOR_ABS: {"EOR", cpu.Absolute},
	cpu.BIT_ZP: {"BIT", cpu.ZeroPage}, cpu.BIT_ABS: {"BIT", cpu.Absolute},

	cpu.ADC_IMM: {"ADC", cpu.Immediate}, cpu.ADC_ZP: {"ADC", cpu.ZeroPage}, cpu.ADC_ABS: {"ADC", cpu.Absolute},
	cpu.SBC_IMM: {"SBC", cpu.Immediate}, cpu.SBC_ZP: {"SBC", cpu.ZeroPage}, cpu.SBC_ABS: {"SBC", cpu.Absolute},
	cpu.CMP_IMM: {"CMP", cpu.Immediate}, cpu.CMP_ZP: {"CMP", cpu.ZeroPage}, cpu.CMP_ABS: {"CMP", cpu.Absolute},
	cpu.CPX_IMM: {"CPX", cpu.Immediate}, cpu.CPX_ZP: {"CPX", cpu.ZeroPage}, cpu.CPX_ABS: {"CPX", cpu.Absolute},
	cpu.CPY_IMM: {"CPY", cpu.Immediate}, cpu.CPY_ZP: {"CPY", cpu.ZeroPage}, cpu.CPY_ABS: {"CPY", cpu.Absolute},

	cpu.INC_ZP: {"INC", cpu.ZeroPage}, cpu.INC_ABS: {"INC", cpu.Absolute},
	cpu.DEC_ZP: {"DEC", cpu.ZeroPage}, cpu.DEC_ABS: {"DEC", cpu.Absolute},
	cpu.INX: {"INX", cpu.Implied}, cpu.INY: {"INY", cpu.Implied},
	cpu.DEX: {"DEX", cpu.Implied}, cpu.DEY: {"DEY", cpu.Implied},

	cpu.ASL_ACC: {"ASL", cpu.Accumulator}, cpu.ASL_ZP: {"ASL", cpu.ZeroPage}, cpu.ASL_ABS: {"ASL", cpu.Absolute},
	cpu.LSR_ACC: {"LSR", cpu.Accumulator}, cpu.LSR_ZP: {"LSR", cpu.ZeroPage}, cpu.LSR_ABS: {"LSR", cpu.Absolute},
	cpu.ROL_ACC: {"ROL", cpu.Accumulator}, cpu.ROL_ZP: {"ROL", cpu.ZeroPage}, cpu.ROL_ABS: {"ROL", cpu.Absolute},
	cpu.ROR_ACC: {"ROR", cpu.Accumulator}, cpu.ROR_ZP: {"ROR", cpu.ZeroPage}, cpu.ROR_ABS: {"ROR", cpu.Absolute},

	cpu.JMP_ABS: {"JMP", cpu.Absolute}, cpu.JMP_IND: {"JMP", cpu.Indirect},
	cpu.JSR_ABS: {"JSR", cpu.Absolute}, cpu.RTS: {"RTS", cpu.Implied}, cpu.BRK: {"BRK", cpu.Implied},

	cpu.BPL: {"BPL", cpu.Relative}, cpu.BMI: {"BMI", cpu.Relative},
	cpu.BVC: {"BVC", cpu.Relative}, cpu.BVS: {"BVS", cpu.Relative},
	cpu.BCC: {"BCC", cpu.Relative}, cpu.BCS: {"BCS", cpu.Relative},
	cpu.BNE: {"BNE", cpu.Relative}, cpu.BEQ: {"BEQ", cpu.Relative},

	cpu.CLC: {"CLC", cpu.Implied}, cpu.SEC: {"SEC", cpu.Implied},
	cpu.CLI: {"CLI", cpu.Implied}, cpu.SEI: {"SEI", cpu.Implied},
	cpu.CLV: {"CLV", cpu.Implied}, cpu.CLD: {"CLD", cpu.Implied}, cpu.SED: {"SED", cpu.Implied},

	cpu.NOP: {"NOP", cpu.Implied},
}

// Decode looks up the static mnemonic/mode pairing for opcode.
func Decode(opcode byte) (Instruction, bool) {
	inst, ok := instructionSet[opcode]
	return inst, ok
}

// Location is one disassembled instruction: its address, raw bytes, and
// (if the opcode was recognized) its decoded Instruction.
type Location struct {
	PC       uint16
	Opcode   byte
	Operands []byte
	Inst     *Instruction
}

// Size is the number of bytes this instruction occupies, including the
// opcode byte. Unrecognized opcodes occupy 1 byte.
func (l Location) Size() int {
	if l.Inst == nil {
		return 1
	}
	return 1 + operandBytes(l.Inst.Mode)
}

// operandText renders the operand portion of the mnemonic line, resolving
// relative branch targets against l.PC.
func (l Location) operandText() string {
	if l.Inst == nil {
		return ""
	}
	switch l.Inst.Mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", l.Operands[0])
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", l.Operands[0])
	case cpu.Absolute:
		return fmt.Sprintf("$%02X%02X", l.Operands[1], l.Operands[0])
	case cpu.Indirect:
		return fmt.Sprintf("($%02X%02X)", l.Operands[1], l.Operands[0])
	case cpu.Relative:
		target := l.PC + 2 + uint16(int8(l.Operands[0]))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

// String renders one listing line: address, raw hex bytes, and the
// mnemonic with its resolved operand text.
func (l Location) String() string {
	hexBytes := make([]string, 0, 3)
	hexBytes = append(hexBytes, fmt.Sprintf("%02X", l.Opcode))
	for _, b := range l.Operands {
		hexBytes = append(hexBytes, fmt.Sprintf("%02X", b))
	}
	hexDump := strings.Join(hexBytes, " ")

	if l.Inst == nil {
		return fmt.Sprintf("$%04X: %-8s  ??? (unrecognized opcode)", l.PC, hexDump)
	}
	text := l.Inst.Mnemonic
	if operand := l.operandText(); operand != "" {
		text = text + " " + operand
	}
	return fmt.Sprintf("$%04X: %-8s  %s", l.PC, hexDump, text)
}

func decodeAt(mem *cpu.Memory, pc uint16) Location {
	opcode := mem.Read(pc)
	loc := Location{PC: pc, Opcode: opcode}

	inst, ok := instructionSet[opcode]
	if !ok {
		return loc
	}
	loc.Inst = &inst

	switch operandBytes(inst.Mode) {
	case 1:
		loc.Operands = []byte{mem.Read(pc + 1)}
	case 2:
		_, lo, hi := cpu.AssembleAddress(mem, pc+1)
		loc.Operands = []byte{lo, hi}
	}
	return loc
}

// Range disassembles count instructions starting at start.
func Range(mem *cpu.Memory, start uint16, count int) []Location {
	locs := make([]Location, 0, count)
	pc := start
	for i := 0; i < count; i++ {
		loc := decodeAt(mem, pc)
		locs = append(locs, loc)
		pc += uint16(loc.Size())
	}
	return locs
}
