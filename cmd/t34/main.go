// Command t34 loads a hex-record program into T34 memory and either runs
// it to completion, printing the trace, or drops into an interactive
// monitor (line-mode with -repl, full-screen with -interactive).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chezka-gaddi/t34/cpu"
	"github.com/chezka-gaddi/t34/hexfile"
	"github.com/chezka-gaddi/t34/monitor"
	"github.com/chezka-gaddi/t34/trace"
)

func parseAddr(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

func main() {
	inputFile := flag.String("i", "", "input hex-record program file")
	start := flag.String("start", "", "start address in hex, e.g. 0300")
	flag.StringVar(start, "a", "", "alias for -start")
	interactive := flag.Bool("interactive", false, "launch the full-screen monitor instead of a batch run")
	repl := flag.Bool("repl", false, "drop into the line-mode monitor instead of a batch run")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	mem := &cpu.Memory{}
	if err := hexfile.Load(f, mem); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading hex file: %v\n", err)
		os.Exit(1)
	}

	c := cpu.New(mem)

	startAddr := uint16(0)
	if *start != "" {
		startAddr, err = parseAddr(*start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	c.PC = startAddr

	switch {
	case *interactive:
		p := tea.NewProgram(monitor.NewTUI(c))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running monitor: %v\n", err)
			os.Exit(1)
		}

	case *repl:
		r := monitor.NewREPL(c, os.Stdin, os.Stdout)
		if err := r.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running monitor: %v\n", err)
			os.Exit(1)
		}

	default:
		out, err := trace.Run(c, startAddr)
		fmt.Print(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error during run: %v\n", err)
			os.Exit(1)
		}
	}
}
