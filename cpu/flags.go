package cpu

// Status register bit layout, MSB to LSB: N V - B D I Z C. Bit 5 is
// unused and always reads as 1.
const (
	FlagC byte = 1 << 0 // Carry
	FlagZ byte = 1 << 1 // Zero
	FlagI byte = 1 << 2 // Interrupt disable
	FlagD byte = 1 << 3 // Decimal mode (carried for trace fidelity; ADC/SBC ignore it)
	FlagB byte = 1 << 4 // Break
	flagU byte = 1 << 5 // Unused, always 1
	FlagV byte = 1 << 6 // Overflow
	FlagN byte = 1 << 7 // Negative
)

// SR returns the status register with bit 5 forced on, per spec.
func (c *CPU) SR() byte {
	return c.sr | flagU
}

// SetSR loads the status register wholesale (PLP), forcing bit 5 on.
func (c *CPU) SetSR(v byte) {
	c.sr = v | flagU
}

func (c *CPU) setFlag(mask byte, on bool) {
	if on {
		c.sr |= mask
	} else {
		c.sr &^= mask
	}
}

func (c *CPU) Carry() bool      { return c.sr&FlagC != 0 }
func (c *CPU) Zero() bool       { return c.sr&FlagZ != 0 }
func (c *CPU) Interrupt() bool  { return c.sr&FlagI != 0 }
func (c *CPU) Decimal() bool    { return c.sr&FlagD != 0 }
func (c *CPU) Break() bool      { return c.sr&FlagB != 0 }
func (c *CPU) Overflow() bool   { return c.sr&FlagV != 0 }
func (c *CPU) Negative() bool   { return c.sr&FlagN != 0 }

func (c *CPU) SetCarry()   { c.setFlag(FlagC, true) }
func (c *CPU) ClearCarry() { c.setFlag(FlagC, false) }

func (c *CPU) SetZero()   { c.setFlag(FlagZ, true) }
func (c *CPU) ClearZero() { c.setFlag(FlagZ, false) }

func (c *CPU) SetInterrupt()   { c.setFlag(FlagI, true) }
func (c *CPU) ClearInterrupt() { c.setFlag(FlagI, false) }

func (c *CPU) SetDecimal()   { c.setFlag(FlagD, true) }
func (c *CPU) ClearDecimal() { c.setFlag(FlagD, false) }

func (c *CPU) SetBreak()   { c.setFlag(FlagB, true) }
func (c *CPU) ClearBreak() { c.setFlag(FlagB, false) }

func (c *CPU) SetOverflow()   { c.setFlag(FlagV, true) }
func (c *CPU) ClearOverflow() { c.setFlag(FlagV, false) }

func (c *CPU) SetNegative()   { c.setFlag(FlagN, true) }
func (c *CPU) ClearNegative() { c.setFlag(FlagN, false) }

// updateZN sets Z and N from a value just written to AC, X, Y, or memory.
func (c *CPU) updateZN(v byte) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

// updateCOnAdd sets carry from a wide addition result: C iff the sum
// overflowed an unsigned byte.
func (c *CPU) updateCOnAdd(sum uint16) {
	c.setFlag(FlagC, sum > 0xFF)
}

// updateVOnAdd sets overflow per the 2's-complement rule: V iff a and b
// share a sign and the result's sign differs from theirs.
func (c *CPU) updateVOnAdd(a, b, result byte) {
	aNeg := a&0x80 != 0
	bNeg := b&0x80 != 0
	rNeg := result&0x80 != 0
	c.setFlag(FlagV, aNeg == bNeg && aNeg != rNeg)
}
