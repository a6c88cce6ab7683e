package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chezka-gaddi/t34/cpu"
)

// REPL is the line-mode command loop, modeled on the original emulator's
// input loop: one command per line, terminated by "exit".
//
// Command grammar:
//
//	AAAA      inspect the byte at AAAA
//	AAAA.BBBB dump the range [AAAA, BBBB]
//	AAAA:bb.. deposit whitespace-separated hex bytes starting at AAAA
//	AAAAR     run from AAAA and print the trace
type REPL struct {
	CPU *cpu.CPU
	In  *bufio.Scanner
	Out io.Writer
}

// NewREPL wires a REPL to the given CPU, reading commands from in and
// writing output to out.
func NewREPL(c *cpu.CPU, in io.Reader, out io.Writer) *REPL {
	return &REPL{CPU: c, In: bufio.NewScanner(in), Out: out}
}

// Run reads and dispatches commands until "exit" or EOF.
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.Out, "> ")
		if !r.In.Scan() {
			return r.In.Err()
		}
		command := strings.TrimSpace(r.In.Text())
		if command == "exit" {
			return nil
		}
		if command == "" {
			continue
		}
		if err := r.dispatch(command); err != nil {
			fmt.Fprintln(r.Out, err)
		}
	}
}

func (r *REPL) dispatch(command string) error {
	switch {
	case strings.HasSuffix(command, "R"):
		out, err := RunFrom(r.CPU, command[:len(command)-1])
		if err != nil {
			return err
		}
		fmt.Fprint(r.Out, out)

	case strings.Contains(command, "."):
		i := strings.Index(command, ".")
		out, err := RangeDump(r.CPU.Mem, command[:i], command[i+1:])
		if err != nil {
			return err
		}
		fmt.Fprint(r.Out, out)

	case strings.Contains(command, ":"):
		i := strings.Index(command, ":")
		return Deposit(r.CPU.Mem, command[:i], command[i+1:])

	default:
		out, err := InspectByte(r.CPU.Mem, command)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, out)
	}
	return nil
}
