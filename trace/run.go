package trace

import (
	"strings"

	"github.com/chezka-gaddi/t34/cpu"
)

// Run sets c.PC to start and steps the CPU until a BRK instruction's trace
// line has been emitted or a decode error is hit. The returned text always
// begins with Header. A decode error still returns the trace accumulated
// up to the failing fetch, alongside the error.
func Run(c *cpu.CPU, start uint16) (string, error) {
	c.PC = start

	var out strings.Builder
	out.WriteString(Header)

	for {
		step, err := c.Step()
		if err != nil {
			return out.String(), err
		}

		out.WriteString(FormatLine(step, Snapshot{
			AC: c.AC,
			X:  c.X,
			Y:  c.Y,
			SP: c.SP,
			SR: c.SR(),
		}))

		if step.Opcode == cpu.BRK {
			return out.String(), nil
		}
	}
}
