package monitor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/chezka-gaddi/t34/cpu"
)

func TestNewTUIStartsPausedAtPC(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	mem.Write(0, []byte{0xEA, 0xEA, 0x00})
	c := cpu.New(mem)

	m := NewTUI(c)

	assert.True(m.paused)
	assert.Equal(0, m.selectedLocation)
}

func TestTUISingleStepAdvancesAndTracksChange(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	mem.Write(0, []byte{0xA9, 0x42, 0x00}) // LDA #$42, BRK
	c := cpu.New(mem)
	m := NewTUI(c)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	next := updated.(TUI)

	assert.Equal(byte(0x42), next.cpu.AC)
	assert.Equal(byte(0x00), next.last.AC, "snapshot captured before the step")
	assert.Equal(uint16(2), next.cpu.PC)
}

func TestTUIToggleBreakpoint(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	mem.Write(0, []byte{0xEA, 0x00})
	c := cpu.New(mem)
	m := NewTUI(c)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	next := updated.(TUI)
	assert.True(next.breakpoints[0])

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	next = updated.(TUI)
	assert.False(next.breakpoints[0])
}

func TestTUITabSwitchesActivePane(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}
	c := cpu.New(mem)
	m := NewTUI(c)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next := updated.(TUI)
	assert.Equal("memory", next.activePane)
}
