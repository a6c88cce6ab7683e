package cpu

// CPU is the T34 register file plus the memory it operates on. It is
// created once, reset to its power-on state, and then mutated exclusively
// by instruction handlers and the external deposit operation.
type CPU struct {
	PC uint16
	AC byte
	X  byte
	Y  byte
	SP byte
	sr byte

	Mem *Memory
}

// New creates a CPU backed by mem and resets it to the power-on state.
func New(mem *Memory) *CPU {
	c := &CPU{Mem: mem}
	c.Reset()
	return c
}

// Reset sets SP=0xFF, SR=0x20 (bit 5 only), and AC/X/Y/PC to zero.
func (c *CPU) Reset() {
	c.PC = 0
	c.AC = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFF
	c.sr = flagU
}

// SetAC stores v in the accumulator and updates Z/N.
func (c *CPU) SetAC(v byte) {
	c.AC = v
	c.updateZN(v)
}

// SetX stores v in the X register and updates Z/N.
func (c *CPU) SetX(v byte) {
	c.X = v
	c.updateZN(v)
}

// SetY stores v in the Y register and updates Z/N.
func (c *CPU) SetY(v byte) {
	c.Y = v
	c.updateZN(v)
}

const stackPage = uint16(0x0100)

// Push1 deposits b at 0x0100+SP, then decrements SP (mod 256).
func (c *CPU) Push1(b byte) {
	c.Mem.Write(stackPage+uint16(c.SP), []byte{b})
	c.SP--
}

// Pop1 increments SP (mod 256), then reads 0x0100+SP.
func (c *CPU) Pop1() byte {
	c.SP++
	return c.Mem.Read(stackPage + uint16(c.SP))
}

// Push2 pushes word high-byte first, then low-byte, so the low byte ends
// up at the lower stack address.
func (c *CPU) Push2(word uint16) {
	c.Push1(byte(word >> 8))
	c.Push1(byte(word))
}

// Pop2 is the inverse of Push2: it reads low then high and assembles the
// 16-bit word.
func (c *CPU) Pop2() uint16 {
	lo := c.Pop1()
	hi := c.Pop1()
	return uint16(lo) | uint16(hi)<<8
}

// AssembleAddress reads the two bytes at addr and addr+1 from mem as a
// little-endian address, returning the assembled address along with the
// raw (low, high) bytes for callers that also need them (absolute-mode
// operand fetch, disassembly).
func AssembleAddress(mem *Memory, addr uint16) (word uint16, lo, hi byte) {
	lo = mem.Read(addr)
	hi = mem.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8, lo, hi
}

// SignExtend8 interprets b's bit 7 as its sign, producing a value in
// [-128, 127] for relative-branch displacement arithmetic.
func SignExtend8(b byte) int8 {
	return int8(b)
}
