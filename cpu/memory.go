// Package cpu implements the T34 processor core: the 64 KiB memory space,
// the register file, and the instruction set. It has no knowledge of the
// hex loader or the monitor; both are external collaborators that poke
// at a *CPU through the methods in this package.
package cpu

// Memory is the T34's flat, byte-addressable address space. There is no
// memory protection and no bounds error: every effective address wraps
// modulo 65536.
type Memory [65536]byte

// Read returns the byte at addr. Reads never modify state.
func (m *Memory) Read(addr uint16) byte {
	return m[addr]
}

// ReadRange returns the bytes in [start, end], inclusive, wrapping the
// addresses modulo 65536.
func (m *Memory) ReadRange(start, end uint16) []byte {
	out := make([]byte, 0, int(end-start)+1)
	addr := start
	for {
		out = append(out, m[addr])
		if addr == end {
			break
		}
		addr++
	}
	return out
}

// Write deposits data starting at addr, wrapping at the top of the address
// space. A write never fails: there is no bounds check beyond the wrap.
func (m *Memory) Write(addr uint16, data []byte) {
	for i, b := range data {
		m[addr+uint16(i)] = b
	}
}
