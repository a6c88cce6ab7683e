package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPHAAndPLA(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.SetAC(0x42)
	c.Mem.Write(0, []byte{PHA})
	_, err := c.Step()
	assert.NoError(err)
	assert.Equal(byte(0xFE), c.SP)

	c.SetAC(0x00)
	c.PC = 1
	c.Mem.Write(1, []byte{PLA})
	_, err = c.Step()
	assert.NoError(err)
	assert.Equal(byte(0x42), c.AC)
	assert.Equal(byte(0xFF), c.SP)
}

func TestPHPSetsBreakBitWithoutChangingLiveSR(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.ClearBreak()
	liveSR := c.SR()
	c.Mem.Write(0, []byte{PHP})

	_, err := c.Step()

	assert.NoError(err)
	assert.Equal(liveSR, c.SR(), "PHP must not mutate the live status register")
	pushed := c.Mem.Read(0x01FF)
	assert.NotZero(pushed&FlagB, "pushed copy has the break bit forced on")
}

func TestPLPRestoresFlagsAndForcesUnusedBit(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.Push1(0x00) // no bits set in the pushed byte
	c.Mem.Write(0, []byte{PLP})

	_, err := c.Step()

	assert.NoError(err)
	assert.Equal(flagU, c.SR(), "bit 5 is always forced on regardless of what was pushed")
}

func TestStackWrapsAtPageBoundary(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.SP = 0x00
	c.Push1(0xAB)
	assert.Equal(byte(0xFF), c.SP)
	assert.Equal(byte(0xAB), c.Mem.Read(0x0100))
}
