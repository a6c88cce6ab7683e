package monitor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chezka-gaddi/t34/cpu"
)

func TestInspectByte(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	mem.Write(0x1000, []byte{0xAB})

	got, err := InspectByte(mem, "1000")

	assert.NoError(err)
	assert.Equal("1000\tAB", got)
}

func TestInspectByteRejectsMalformedAddress(t *testing.T) {
	mem := &cpu.Memory{}
	_, err := InspectByte(mem, "ZZZZ")
	assert.Error(t, err)
}

func TestDepositThenInspect(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	err := Deposit(mem, "300", "A9 04 85 07")
	assert.NoError(err)

	got, err := InspectByte(mem, "301")
	assert.NoError(err)
	assert.Equal("301\t04", got)
}

func TestDepositRejectsNonHexToken(t *testing.T) {
	mem := &cpu.Memory{}
	err := Deposit(mem, "300", "A9 ZZ 85")
	assert.Error(t, err)
	assert.Equal(t, byte(0), mem.Read(0x300), "memory must be unchanged on a rejected deposit")
}

func TestRangeDumpRoundTrip(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	err := Deposit(mem, "300", "A9 04 85 07 A0 00 84 06 A9 A0 91 06 C8 D0 FB E6 07")
	assert.NoError(err)

	got, err := RangeDump(mem, "300", "310")
	assert.NoError(err)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Len(lines, 3)
	assert.Equal("300\tA9 04 85 07 A0 00 84 06", lines[0])
	assert.Equal("308\tA9 A0 91 06 C8 D0 FB E6", lines[1])
	assert.Equal("310\t07", lines[2])
}

func TestRangeDumpAddressZeroHasNoLeadingZeros(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	mem.Write(0, []byte{0x01, 0x02})

	got, err := RangeDump(mem, "0", "1")

	assert.NoError(err)
	assert.Equal("0\t01 02\n", got)
}

func TestRunFrom(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	c := cpu.New(mem)
	mem.Write(0x300, []byte{0xEA, 0x00})

	out, err := RunFrom(c, "300")

	assert.NoError(err)
	assert.Contains(out, " 300  EA  NOP   impl -- --")
	assert.Contains(out, " 301  00  BRK   impl -- --")
}
