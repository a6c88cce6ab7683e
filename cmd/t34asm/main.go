// Command t34asm assembles T34 source text into a raw binary, grounded on
// the teacher's as/main.go CLI shape.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chezka-gaddi/t34/asm"
)

func main() {
	inputFile := flag.String("i", "", "input assembly file")
	outputFile := flag.String("o", "", "output binary file")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		flag.Usage()
		os.Exit(1)
	}

	if *outputFile == "" {
		*outputFile = strings.TrimSuffix(*inputFile, filepath.Ext(*inputFile)) + ".bin"
	}

	source, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	output, err := asm.Assemble(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, output, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully assembled %s to %s (%d bytes)\n", *inputFile, *outputFile, len(output))
}
