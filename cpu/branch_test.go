package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchTakenForward(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.PC = 0x0200
	c.Mem.Write(0x0200, []byte{BEQ, 0x05})
	c.SetZero()

	_, err := c.Step()

	assert.NoError(err)
	assert.Equal(uint16(0x0207), c.PC, "0x0202 (after operand) + 0x05")
}

func TestBranchTakenBackward(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.PC = 0x0200
	c.Mem.Write(0x0200, []byte{BNE, 0xFB}) // -5
	c.ClearZero()

	_, err := c.Step()

	assert.NoError(err)
	assert.Equal(uint16(0x01FD), c.PC)
}

func TestBranchNotTaken(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.PC = 0x0200
	c.Mem.Write(0x0200, []byte{BCC, 0x10})
	c.SetCarry()

	_, err := c.Step()

	assert.NoError(err)
	assert.Equal(uint16(0x0202), c.PC, "untaken branch only advances past its operand")
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.PC = 0x0200
	c.Mem.Write(0x0200, []byte{JSR_ABS, 0x00, 0x03})
	c.Mem.Write(0x0300, []byte{RTS})

	_, err := c.Step()
	assert.NoError(err)
	assert.Equal(uint16(0x0300), c.PC)
	assert.Equal(byte(0xFD), c.SP, "two bytes pushed")

	_, err = c.Step()
	assert.NoError(err)
	assert.Equal(uint16(0x0203), c.PC, "resumes just past the JSR instruction")
	assert.Equal(byte(0xFF), c.SP)
}

func TestJMPAbsoluteAndIndirect(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.Mem.Write(0, []byte{JMP_ABS, 0x00, 0x04})
	_, err := c.Step()
	assert.NoError(err)
	assert.Equal(uint16(0x0400), c.PC)

	c.Mem.Write(0x0400, []byte{JMP_IND, 0x10, 0x00})
	c.Mem.Write(0x0010, []byte{0x34, 0x12})
	_, err = c.Step()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), c.PC)
}

func TestBRKPushesPCPlus2AndSetsInterrupt(t *testing.T) {
	assert := assert.New(t)
	c := newTestCPU()
	c.PC = 0x0200
	c.Mem.Write(0x0200, []byte{BRK})

	_, err := c.Step()

	assert.NoError(err)
	assert.True(c.Interrupt())
	assert.True(c.Break())
	assert.Equal(byte(0xFC), c.SP, "return address and status both pushed")

	pushedSR := c.Mem.Read(0x01FD)
	assert.NotZero(pushedSR & FlagB)

	lo := c.Mem.Read(0x01FE)
	hi := c.Mem.Read(0x01FF)
	retAddr := uint16(lo) | uint16(hi)<<8
	assert.Equal(uint16(0x0202), retAddr)
}
