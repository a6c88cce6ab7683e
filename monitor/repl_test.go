package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chezka-gaddi/t34/cpu"
)

func TestREPLDepositInspectAndRun(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	c := cpu.New(mem)

	input := strings.NewReader(
		"300:EA 00\n" +
			"300\n" +
			"300R\n" +
			"exit\n",
	)
	var out bytes.Buffer
	repl := NewREPL(c, input, &out)

	err := repl.Run()

	assert.NoError(err)
	got := out.String()
	assert.Contains(got, "300\tEA")
	assert.Contains(got, " 300  EA  NOP   impl -- --")
	assert.Contains(got, " 301  00  BRK   impl -- --")
}

func TestREPLRangeDump(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	mem.Write(0x300, []byte{0x01, 0x02, 0x03})
	c := cpu.New(mem)

	input := strings.NewReader("300.302\nexit\n")
	var out bytes.Buffer
	repl := NewREPL(c, input, &out)

	err := repl.Run()

	assert.NoError(err)
	assert.Contains(out.String(), "300\t01 02 03")
}

func TestREPLReportsErrorsWithoutStopping(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	c := cpu.New(mem)

	input := strings.NewReader("ZZZZ\n300\nexit\n")
	var out bytes.Buffer
	repl := NewREPL(c, input, &out)

	err := repl.Run()

	assert.NoError(err)
	assert.Contains(out.String(), "malformed address")
	assert.Contains(out.String(), "300\t00")
}
