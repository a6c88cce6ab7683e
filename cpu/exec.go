package cpu

// Addressing-mode operand fetch helpers. Each is called with c.PC already
// advanced past the opcode byte; each returns the operand bytes the
// tracer needs alongside whatever the handler needs to do its work, and
// leaves c.PC pointing just past the operand(s) it consumed.

func (c *CPU) fetchImmediate() (value byte, operands []byte) {
	value = c.Mem.Read(c.PC)
	operands = []byte{value}
	c.PC++
	return value, operands
}

func (c *CPU) fetchZeroPageAddr() (addr uint16, operands []byte) {
	zp := c.Mem.Read(c.PC)
	operands = []byte{zp}
	c.PC++
	return uint16(zp), operands
}

func (c *CPU) fetchZeroPage() (addr uint16, value byte, operands []byte) {
	addr, operands = c.fetchZeroPageAddr()
	value = c.Mem.Read(addr)
	return addr, value, operands
}

func (c *CPU) fetchAbsoluteAddr() (addr uint16, operands []byte) {
	addr, lo, hi := AssembleAddress(c.Mem, c.PC)
	operands = []byte{lo, hi}
	c.PC += 2
	return addr, operands
}

func (c *CPU) fetchAbsolute() (addr uint16, value byte, operands []byte) {
	addr, operands = c.fetchAbsoluteAddr()
	value = c.Mem.Read(addr)
	return addr, value, operands
}

func (c *CPU) fetchRelative() (disp int8, operands []byte) {
	b := c.Mem.Read(c.PC)
	operands = []byte{b}
	c.PC++
	return SignExtend8(b), operands
}

// --- Loads / stores ---

func (c *CPU) ldaImm() Step { v, ops := c.fetchImmediate(); c.SetAC(v); return Step{Mnemonic: "LDA", Mode: Immediate, Operands: ops} }
func (c *CPU) ldaZP() Step  { _, v, ops := c.fetchZeroPage(); c.SetAC(v); return Step{Mnemonic: "LDA", Mode: ZeroPage, Operands: ops} }
func (c *CPU) ldaAbs() Step { _, v, ops := c.fetchAbsolute(); c.SetAC(v); return Step{Mnemonic: "LDA", Mode: Absolute, Operands: ops} }

func (c *CPU) ldxImm() Step { v, ops := c.fetchImmediate(); c.SetX(v); return Step{Mnemonic: "LDX", Mode: Immediate, Operands: ops} }
func (c *CPU) ldxZP() Step  { _, v, ops := c.fetchZeroPage(); c.SetX(v); return Step{Mnemonic: "LDX", Mode: ZeroPage, Operands: ops} }
func (c *CPU) ldxAbs() Step { _, v, ops := c.fetchAbsolute(); c.SetX(v); return Step{Mnemonic: "LDX", Mode: Absolute, Operands: ops} }

func (c *CPU) ldyImm() Step { v, ops := c.fetchImmediate(); c.SetY(v); return Step{Mnemonic: "LDY", Mode: Immediate, Operands: ops} }
func (c *CPU) ldyZP() Step  { _, v, ops := c.fetchZeroPage(); c.SetY(v); return Step{Mnemonic: "LDY", Mode: ZeroPage, Operands: ops} }
func (c *CPU) ldyAbs() Step { _, v, ops := c.fetchAbsolute(); c.SetY(v); return Step{Mnemonic: "LDY", Mode: Absolute, Operands: ops} }

func (c *CPU) staZP() Step {
	addr, ops := c.fetchZeroPageAddr()
	c.Mem.Write(addr, []byte{c.AC})
	return Step{Mnemonic: "STA", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) staAbs() Step {
	addr, ops := c.fetchAbsoluteAddr()
	c.Mem.Write(addr, []byte{c.AC})
	return Step{Mnemonic: "STA", Mode: Absolute, Operands: ops}
}
func (c *CPU) stxZP() Step {
	addr, ops := c.fetchZeroPageAddr()
	c.Mem.Write(addr, []byte{c.X})
	return Step{Mnemonic: "STX", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) stxAbs() Step {
	addr, ops := c.fetchAbsoluteAddr()
	c.Mem.Write(addr, []byte{c.X})
	return Step{Mnemonic: "STX", Mode: Absolute, Operands: ops}
}
func (c *CPU) styZP() Step {
	addr, ops := c.fetchZeroPageAddr()
	c.Mem.Write(addr, []byte{c.Y})
	return Step{Mnemonic: "STY", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) styAbs() Step {
	addr, ops := c.fetchAbsoluteAddr()
	c.Mem.Write(addr, []byte{c.Y})
	return Step{Mnemonic: "STY", Mode: Absolute, Operands: ops}
}

// --- Transfers ---
// TAX/TAY/TXA/TYA/TSX update Z,N from the moved value; TXS does not.

func (c *CPU) tax() Step { c.SetX(c.AC); return Step{Mnemonic: "TAX", Mode: Implied} }
func (c *CPU) tay() Step { c.SetY(c.AC); return Step{Mnemonic: "TAY", Mode: Implied} }
func (c *CPU) tsx() Step { c.SetX(c.SP); return Step{Mnemonic: "TSX", Mode: Implied} }
func (c *CPU) txa() Step { c.SetAC(c.X); return Step{Mnemonic: "TXA", Mode: Implied} }
func (c *CPU) txs() Step { c.SP = c.X; return Step{Mnemonic: "TXS", Mode: Implied} }
func (c *CPU) tya() Step { c.SetAC(c.Y); return Step{Mnemonic: "TYA", Mode: Implied} }

// --- Stack ---

func (c *CPU) pha() Step { c.Push1(c.AC); return Step{Mnemonic: "PHA", Mode: Implied} }

// php pushes the status register with the break bit forced on, the
// standard 6502 behavior; the live SR is left untouched.
func (c *CPU) php() Step { c.Push1(c.SR() | FlagB); return Step{Mnemonic: "PHP", Mode: Implied} }
func (c *CPU) pla() Step { c.SetAC(c.Pop1()); return Step{Mnemonic: "PLA", Mode: Implied} }
func (c *CPU) plp() Step { c.SetSR(c.Pop1()); return Step{Mnemonic: "PLP", Mode: Implied} }

// --- Logical ---

func (c *CPU) andImm() Step { v, ops := c.fetchImmediate(); c.SetAC(c.AC & v); return Step{Mnemonic: "AND", Mode: Immediate, Operands: ops} }
func (c *CPU) andZP() Step  { _, v, ops := c.fetchZeroPage(); c.SetAC(c.AC & v); return Step{Mnemonic: "AND", Mode: ZeroPage, Operands: ops} }
func (c *CPU) andAbs() Step { _, v, ops := c.fetchAbsolute(); c.SetAC(c.AC & v); return Step{Mnemonic: "AND", Mode: Absolute, Operands: ops} }

func (c *CPU) oraImm() Step { v, ops := c.fetchImmediate(); c.SetAC(c.AC | v); return Step{Mnemonic: "ORA", Mode: Immediate, Operands: ops} }
func (c *CPU) oraZP() Step  { _, v, ops := c.fetchZeroPage(); c.SetAC(c.AC | v); return Step{Mnemonic: "ORA", Mode: ZeroPage, Operands: ops} }
func (c *CPU) oraAbs() Step { _, v, ops := c.fetchAbsolute(); c.SetAC(c.AC | v); return Step{Mnemonic: "ORA", Mode: Absolute, Operands: ops} }

func (c *CPU) eorImm() Step { v, ops := c.fetchImmediate(); c.SetAC(c.AC ^ v); return Step{Mnemonic: "EOR", Mode: Immediate, Operands: ops} }
func (c *CPU) eorZP() Step  { _, v, ops := c.fetchZeroPage(); c.SetAC(c.AC ^ v); return Step{Mnemonic: "EOR", Mode: ZeroPage, Operands: ops} }
func (c *CPU) eorAbs() Step { _, v, ops := c.fetchAbsolute(); c.SetAC(c.AC ^ v); return Step{Mnemonic: "EOR", Mode: Absolute, Operands: ops} }

// bit sets Z from AC&M, and N/V from M's own bit 7/6, without touching AC.
func (c *CPU) bit(v byte) {
	c.setFlag(FlagZ, c.AC&v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
	c.setFlag(FlagV, v&0x40 != 0)
}
func (c *CPU) bitZP() Step  { _, v, ops := c.fetchZeroPage(); c.bit(v); return Step{Mnemonic: "BIT", Mode: ZeroPage, Operands: ops} }
func (c *CPU) bitAbs() Step { _, v, ops := c.fetchAbsolute(); c.bit(v); return Step{Mnemonic: "BIT", Mode: Absolute, Operands: ops} }

// --- Arithmetic ---

// adc is the canonical 6502 add-with-carry rule: the low 8 bits of
// AC+M+C become the new AC, C is set on unsigned overflow past 0xFF, and
// V is set on signed overflow.
func (c *CPU) adc(v byte) {
	a := c.AC
	carry := uint16(0)
	if c.Carry() {
		carry = 1
	}
	sum := uint16(a) + uint16(v) + carry
	result := byte(sum)
	c.updateCOnAdd(sum)
	c.updateVOnAdd(a, v, result)
	c.SetAC(result)
}

// sbc is ADC with the operand bitwise-inverted, per spec.
func (c *CPU) sbc(v byte) { c.adc(^v) }

func (c *CPU) adcImm() Step { v, ops := c.fetchImmediate(); c.adc(v); return Step{Mnemonic: "ADC", Mode: Immediate, Operands: ops} }
func (c *CPU) adcZP() Step  { _, v, ops := c.fetchZeroPage(); c.adc(v); return Step{Mnemonic: "ADC", Mode: ZeroPage, Operands: ops} }
func (c *CPU) adcAbs() Step { _, v, ops := c.fetchAbsolute(); c.adc(v); return Step{Mnemonic: "ADC", Mode: Absolute, Operands: ops} }

func (c *CPU) sbcImm() Step { v, ops := c.fetchImmediate(); c.sbc(v); return Step{Mnemonic: "SBC", Mode: Immediate, Operands: ops} }
func (c *CPU) sbcZP() Step  { _, v, ops := c.fetchZeroPage(); c.sbc(v); return Step{Mnemonic: "SBC", Mode: ZeroPage, Operands: ops} }
func (c *CPU) sbcAbs() Step { _, v, ops := c.fetchAbsolute(); c.sbc(v); return Step{Mnemonic: "SBC", Mode: Absolute, Operands: ops} }

// compare computes reg-M for flags only; neither operand is modified.
func (c *CPU) compare(reg, m byte) {
	result := reg - m
	c.setFlag(FlagC, reg >= m)
	c.setFlag(FlagZ, reg == m)
	c.setFlag(FlagN, result&0x80 != 0)
}

func (c *CPU) cmpImm() Step { v, ops := c.fetchImmediate(); c.compare(c.AC, v); return Step{Mnemonic: "CMP", Mode: Immediate, Operands: ops} }
func (c *CPU) cmpZP() Step  { _, v, ops := c.fetchZeroPage(); c.compare(c.AC, v); return Step{Mnemonic: "CMP", Mode: ZeroPage, Operands: ops} }
func (c *CPU) cmpAbs() Step { _, v, ops := c.fetchAbsolute(); c.compare(c.AC, v); return Step{Mnemonic: "CMP", Mode: Absolute, Operands: ops} }

func (c *CPU) cpxImm() Step { v, ops := c.fetchImmediate(); c.compare(c.X, v); return Step{Mnemonic: "CPX", Mode: Immediate, Operands: ops} }
func (c *CPU) cpxZP() Step  { _, v, ops := c.fetchZeroPage(); c.compare(c.X, v); return Step{Mnemonic: "CPX", Mode: ZeroPage, Operands: ops} }
func (c *CPU) cpxAbs() Step { _, v, ops := c.fetchAbsolute(); c.compare(c.X, v); return Step{Mnemonic: "CPX", Mode: Absolute, Operands: ops} }

func (c *CPU) cpyImm() Step { v, ops := c.fetchImmediate(); c.compare(c.Y, v); return Step{Mnemonic: "CPY", Mode: Immediate, Operands: ops} }
func (c *CPU) cpyZP() Step  { _, v, ops := c.fetchZeroPage(); c.compare(c.Y, v); return Step{Mnemonic: "CPY", Mode: ZeroPage, Operands: ops} }
func (c *CPU) cpyAbs() Step { _, v, ops := c.fetchAbsolute(); c.compare(c.Y, v); return Step{Mnemonic: "CPY", Mode: Absolute, Operands: ops} }

// --- Increment / decrement ---

func (c *CPU) incZP() Step {
	addr, v, ops := c.fetchZeroPage()
	nv := v + 1
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "INC", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) incAbs() Step {
	addr, v, ops := c.fetchAbsolute()
	nv := v + 1
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "INC", Mode: Absolute, Operands: ops}
}
func (c *CPU) decZP() Step {
	addr, v, ops := c.fetchZeroPage()
	nv := v - 1
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "DEC", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) decAbs() Step {
	addr, v, ops := c.fetchAbsolute()
	nv := v - 1
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "DEC", Mode: Absolute, Operands: ops}
}

func (c *CPU) inx() Step { c.SetX(c.X + 1); return Step{Mnemonic: "INX", Mode: Implied} }
func (c *CPU) iny() Step { c.SetY(c.Y + 1); return Step{Mnemonic: "INY", Mode: Implied} }
func (c *CPU) dex() Step { c.SetX(c.X - 1); return Step{Mnemonic: "DEX", Mode: Implied} }
func (c *CPU) dey() Step { c.SetY(c.Y - 1); return Step{Mnemonic: "DEY", Mode: Implied} }

// --- Shifts / rotates ---

func (c *CPU) asl(v byte) byte {
	c.setFlag(FlagC, v&0x80 != 0)
	return v << 1
}
func (c *CPU) lsr(v byte) byte {
	c.setFlag(FlagC, v&0x01 != 0)
	return v >> 1
}
func (c *CPU) rol(v byte) byte {
	oldCarry := byte(0)
	if c.Carry() {
		oldCarry = 1
	}
	c.setFlag(FlagC, v&0x80 != 0)
	return (v << 1) | oldCarry
}
func (c *CPU) ror(v byte) byte {
	oldCarry := byte(0)
	if c.Carry() {
		oldCarry = 1
	}
	c.setFlag(FlagC, v&0x01 != 0)
	return (v >> 1) | (oldCarry << 7)
}

func (c *CPU) aslAcc() Step { c.SetAC(c.asl(c.AC)); return Step{Mnemonic: "ASL", Mode: Accumulator} }
func (c *CPU) aslZP() Step {
	addr, v, ops := c.fetchZeroPage()
	nv := c.asl(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "ASL", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) aslAbs() Step {
	addr, v, ops := c.fetchAbsolute()
	nv := c.asl(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "ASL", Mode: Absolute, Operands: ops}
}

func (c *CPU) lsrAcc() Step { c.SetAC(c.lsr(c.AC)); return Step{Mnemonic: "LSR", Mode: Accumulator} }
func (c *CPU) lsrZP() Step {
	addr, v, ops := c.fetchZeroPage()
	nv := c.lsr(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "LSR", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) lsrAbs() Step {
	addr, v, ops := c.fetchAbsolute()
	nv := c.lsr(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "LSR", Mode: Absolute, Operands: ops}
}

func (c *CPU) rolAcc() Step { c.SetAC(c.rol(c.AC)); return Step{Mnemonic: "ROL", Mode: Accumulator} }
func (c *CPU) rolZP() Step {
	addr, v, ops := c.fetchZeroPage()
	nv := c.rol(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "ROL", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) rolAbs() Step {
	addr, v, ops := c.fetchAbsolute()
	nv := c.rol(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "ROL", Mode: Absolute, Operands: ops}
}

func (c *CPU) rorAcc() Step { c.SetAC(c.ror(c.AC)); return Step{Mnemonic: "ROR", Mode: Accumulator} }
func (c *CPU) rorZP() Step {
	addr, v, ops := c.fetchZeroPage()
	nv := c.ror(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "ROR", Mode: ZeroPage, Operands: ops}
}
func (c *CPU) rorAbs() Step {
	addr, v, ops := c.fetchAbsolute()
	nv := c.ror(v)
	c.Mem.Write(addr, []byte{nv})
	c.updateZN(nv)
	return Step{Mnemonic: "ROR", Mode: Absolute, Operands: ops}
}

// --- Control flow ---

func (c *CPU) jmpAbs() Step {
	target, ops := c.fetchAbsoluteAddr()
	c.PC = target
	return Step{Mnemonic: "JMP", Mode: Absolute, Operands: ops}
}

// jmpInd reads the 16-bit target from the pointer address. The real 6502's
// page-boundary wraparound bug on this mode is an undocumented quirk of a
// documented opcode, not one of the undocumented opcodes this spec
// excludes, but it is cycle/hardware trivia outside this emulator's scope;
// this implementation does the straightforward 16-bit read.
func (c *CPU) jmpInd() Step {
	ptr, ops := c.fetchAbsoluteAddr()
	target, _, _ := AssembleAddress(c.Mem, ptr)
	c.PC = target
	return Step{Mnemonic: "JMP", Mode: Indirect, Operands: ops}
}

// jsrAbs pushes the address of JSR's last operand byte (PC+2 relative to
// the opcode), then jumps.
func (c *CPU) jsrAbs() Step {
	target, ops := c.fetchAbsoluteAddr()
	retAddr := c.PC - 1
	c.Push2(retAddr)
	c.PC = target
	return Step{Mnemonic: "JSR", Mode: Absolute, Operands: ops}
}

func (c *CPU) rts() Step {
	addr := c.Pop2()
	c.PC = addr + 1
	return Step{Mnemonic: "RTS", Mode: Implied}
}

// brk pushes PC+2 (the 6502 rule), pushes SR with the break bit set, and
// sets the interrupt-disable flag. The executor treats BRK's trace line
// as the terminator of a run.
func (c *CPU) brk() Step {
	retAddr := c.PC + 1
	c.Push2(retAddr)
	c.SetBreak()
	c.Push1(c.SR())
	c.SetInterrupt()
	return Step{Mnemonic: "BRK", Mode: Implied}
}

func (c *CPU) branch(mnemonic string, taken bool) Step {
	disp, ops := c.fetchRelative()
	if taken {
		c.PC = uint16(int32(c.PC) + int32(disp))
	}
	return Step{Mnemonic: mnemonic, Mode: Relative, Operands: ops}
}

func (c *CPU) bpl() Step { return c.branch("BPL", !c.Negative()) }
func (c *CPU) bmi() Step { return c.branch("BMI", c.Negative()) }
func (c *CPU) bvc() Step { return c.branch("BVC", !c.Overflow()) }
func (c *CPU) bvs() Step { return c.branch("BVS", c.Overflow()) }
func (c *CPU) bcc() Step { return c.branch("BCC", !c.Carry()) }
func (c *CPU) bcs() Step { return c.branch("BCS", c.Carry()) }
func (c *CPU) bne() Step { return c.branch("BNE", !c.Zero()) }
func (c *CPU) beq() Step { return c.branch("BEQ", c.Zero()) }

// --- Flag operations ---

func (c *CPU) clc() Step { c.ClearCarry(); return Step{Mnemonic: "CLC", Mode: Implied} }
func (c *CPU) sec() Step { c.SetCarry(); return Step{Mnemonic: "SEC", Mode: Implied} }
func (c *CPU) cli() Step { c.ClearInterrupt(); return Step{Mnemonic: "CLI", Mode: Implied} }
func (c *CPU) sei() Step { c.SetInterrupt(); return Step{Mnemonic: "SEI", Mode: Implied} }
func (c *CPU) clv() Step { c.ClearOverflow(); return Step{Mnemonic: "CLV", Mode: Implied} }
func (c *CPU) cld() Step { c.ClearDecimal(); return Step{Mnemonic: "CLD", Mode: Implied} }
func (c *CPU) sed() Step { c.SetDecimal(); return Step{Mnemonic: "SED", Mode: Implied} }

// --- Other ---

func (c *CPU) nop() Step { return Step{Mnemonic: "NOP", Mode: Implied} }
