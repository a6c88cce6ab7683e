// Package monitor implements the external interfaces a front end uses to
// poke at a running CPU: inspecting and depositing bytes, dumping a range,
// and kicking off a traced run. None of these operations retain state of
// their own; they all act directly on the *cpu.CPU and *cpu.Memory passed
// in, the same way the original line-mode emulator's command loop did.
package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chezka-gaddi/t34/cpu"
	"github.com/chezka-gaddi/t34/trace"
)

// InspectByte returns "A\tVV" for the byte at hex address addrHex, where
// VV is uppercase 2-hex. A malformed address is rejected at the boundary.
func InspectByte(mem *cpu.Memory, addrHex string) (string, error) {
	addr, err := parseAddr(addrHex)
	if err != nil {
		return "", fmt.Errorf("monitor: malformed address %q: %w", addrHex, err)
	}
	return fmt.Sprintf("%s\t%02X", addrHex, mem.Read(addr)), nil
}

// RangeDump emits one line per row of up to 8 bytes covering [begin, end].
// Each line starts with the row's address in lowercase hex with no
// leading zeros (address 0 renders as "0"), a tab, then the row's bytes
// as uppercase 2-hex separated by single spaces. The final row may be
// short; rows advance 8 bytes at a time from begin.
func RangeDump(mem *cpu.Memory, beginHex, endHex string) (string, error) {
	begin, err := parseAddr(beginHex)
	if err != nil {
		return "", fmt.Errorf("monitor: malformed address %q: %w", beginHex, err)
	}
	end, err := parseAddr(endHex)
	if err != nil {
		return "", fmt.Errorf("monitor: malformed address %q: %w", endHex, err)
	}
	if begin > end {
		return "", fmt.Errorf("monitor: range start %04X is after end %04X", begin, end)
	}

	var out strings.Builder
	for row := int(begin); row <= int(end); row += 8 {
		rowEnd := row + 7
		if rowEnd > int(end) {
			rowEnd = int(end)
		}
		bytes := mem.ReadRange(uint16(row), uint16(rowEnd))
		fields := make([]string, len(bytes))
		for i, b := range bytes {
			fields[i] = fmt.Sprintf("%02X", b)
		}
		fmt.Fprintf(&out, "%x\t%s\n", row, strings.Join(fields, " "))
	}
	return out.String(), nil
}

// Deposit writes the whitespace-separated 2-hex bytes in data consecutively
// starting at addrHex. A malformed address or a non-hex token rejects the
// whole call before any byte is written.
func Deposit(mem *cpu.Memory, addrHex, data string) error {
	addr, err := parseAddr(addrHex)
	if err != nil {
		return fmt.Errorf("monitor: malformed address %q: %w", addrHex, err)
	}

	fields := strings.Fields(data)
	bytes := make([]byte, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return fmt.Errorf("monitor: malformed byte %q: %w", f, err)
		}
		bytes[i] = byte(v)
	}

	mem.Write(addr, bytes)
	return nil
}

// RunFrom starts a traced run at hex address addrHex and returns its trace
// text, per trace.Run.
func RunFrom(c *cpu.CPU, addrHex string) (string, error) {
	addr, err := parseAddr(addrHex)
	if err != nil {
		return "", fmt.Errorf("monitor: malformed address %q: %w", addrHex, err)
	}
	return trace.Run(c, addr)
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
