// Package trace renders CPU execution as the fixed-width trace text the
// monitor's run command returns. Formatting is a pure function of a
// cpu.Step plus the post-step register snapshot; it never touches memory
// or registers itself.
package trace

import (
	"fmt"

	"github.com/chezka-gaddi/t34/cpu"
)

// Header is the fixed column-heading line every trace begins with.
const Header = " PC  OPC  INS   AMOD OPRND  AC XR YR SP NV-BDIZC\n"

// Snapshot is the post-step register state a trace line reports alongside
// the instruction that produced it.
type Snapshot struct {
	AC, X, Y, SP, SR byte
}

// operandField renders one operand byte as 2-hex, or "--" when the
// instruction's addressing mode didn't consume a byte at that position.
func operandField(b byte, present bool) string {
	if !present {
		return "--"
	}
	return fmt.Sprintf("%02X", b)
}

// operandCount reports how many operand bytes a mode's trace line shows.
func operandCount(mode cpu.AddrMode) int {
	switch mode {
	case cpu.Immediate, cpu.ZeroPage, cpu.Relative:
		return 1
	case cpu.Absolute, cpu.Indirect:
		return 2
	default:
		return 0
	}
}

// FormatLine renders one trace line for step, with snap holding the
// register values as they stood immediately after step executed.
func FormatLine(step cpu.Step, snap Snapshot) string {
	n := operandCount(step.Mode)

	var op1, op2 byte
	if n >= 1 {
		op1 = step.Operands[0]
	}
	if n >= 2 {
		op2 = step.Operands[1]
	}

	return fmt.Sprintf("%4X  %02X  %-3s   %4s %2s %2s  %02X %02X %02X %02X %08b\n",
		step.PC, step.Opcode, step.Mnemonic, step.Mode.Tag(),
		operandField(op1, n >= 1), operandField(op2, n >= 2),
		snap.AC, snap.X, snap.Y, snap.SP, snap.SR)
}
