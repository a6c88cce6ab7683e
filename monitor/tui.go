package monitor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chezka-gaddi/t34/cpu"
	"github.com/chezka-gaddi/t34/disasm"
)

// regSnapshot is the register state captured just before a step, so the
// TUI can highlight whatever the step just changed.
type regSnapshot struct {
	AC, X, Y, SP byte
	PC           uint16
	SR           byte
}

type stepTick struct{}

func doStep() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return stepTick{}
	})
}

// TUI is the interactive full-screen monitor, modeled on the teacher's
// bubbletea disassembly/register/stack/memory panel layout.
type TUI struct {
	cpu    *cpu.CPU
	paused bool
	width  int
	height int

	locations        []disasm.Location
	locationIndex    map[uint16]int
	selectedLocation int

	last regSnapshot

	memoryAddress uint16
	activePane    string // "disasm" or "memory"

	gotoInput   textinput.Model
	showingGoto bool

	breakpoints map[uint16]bool
}

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(30)

	changedStyle = lipgloss.NewStyle().Foreground(changed).Bold(true)

	stackStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(30)

	disasmStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1)

	currentLineStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#ffffff"))

	selectedLineStyle = lipgloss.NewStyle().Foreground(highlight)

	memoryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(50)

	breakpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

// NewTUI builds a TUI over c, disassembling 0x2000 instructions starting at
// address 0 once up front. This is a one-shot pass, not a live view: code
// beyond those instructions is not listed, and later memory changes are not
// reflected in the listing.
func NewTUI(c *cpu.CPU) *TUI {
	ti := textinput.New()
	ti.Placeholder = "hex address, e.g. 0300"
	ti.CharLimit = 4
	ti.Width = 6

	locs := disasm.Range(c.Mem, 0, 0x2000)
	index := make(map[uint16]int, len(locs))
	for i, l := range locs {
		index[l.PC] = i
	}

	m := &TUI{
		cpu:           c,
		paused:        true,
		locations:     locs,
		locationIndex: index,
		memoryAddress: 0,
		activePane:    "disasm",
		gotoInput:     ti,
		breakpoints:   make(map[uint16]bool),
	}
	m.relocate()
	return m
}

func (m *TUI) snapshot() regSnapshot {
	return regSnapshot{AC: m.cpu.AC, X: m.cpu.X, Y: m.cpu.Y, SP: m.cpu.SP, PC: m.cpu.PC, SR: m.cpu.SR()}
}

func (m *TUI) relocate() {
	if i, ok := m.locationIndex[m.cpu.PC]; ok {
		m.selectedLocation = i
	}
}

func (m *TUI) step() {
	m.last = m.snapshot()
	m.cpu.Step()
	m.relocate()
}

func (m TUI) Init() tea.Cmd { return nil }

func (m TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTick:
		if m.paused || m.breakpoints[m.cpu.PC] {
			m.paused = true
			return m, nil
		}
		m.step()
		return m, doStep()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.memoryAddress = uint16(addr)
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.paused {
				m.step()
			}
		case "b":
			addr := m.locations[m.selectedLocation].PC
			if m.breakpoints[addr] {
				delete(m.breakpoints, addr)
			} else {
				m.breakpoints[addr] = true
			}
		case "n":
			if m.paused && len(m.breakpoints) > 0 {
				m.paused = false
				return m, doStep()
			}
		case "p":
			m.paused = !m.paused
			if !m.paused {
				return m, doStep()
			}
		case "tab":
			if m.activePane == "disasm" {
				m.activePane = "memory"
			} else {
				m.activePane = "disasm"
			}
		case "up":
			if m.activePane == "disasm" {
				if m.selectedLocation > 0 {
					m.selectedLocation--
				}
			} else if m.memoryAddress >= 8 {
				m.memoryAddress -= 8
			}
		case "down":
			if m.activePane == "disasm" {
				if m.selectedLocation < len(m.locations)-1 {
					m.selectedLocation++
				}
			} else if m.memoryAddress <= 0xFFF8 {
				m.memoryAddress += 8
			}
		case "pgup":
			if m.activePane == "disasm" {
				m.selectedLocation -= 20
				if m.selectedLocation < 0 {
					m.selectedLocation = 0
				}
			} else if m.memoryAddress >= 64 {
				m.memoryAddress -= 64
			} else {
				m.memoryAddress = 0
			}
		case "pgdown":
			if m.activePane == "disasm" {
				m.selectedLocation += 20
				if m.selectedLocation > len(m.locations)-1 {
					m.selectedLocation = len(m.locations) - 1
				}
			} else if m.memoryAddress <= 0xFFC0 {
				m.memoryAddress += 64
			} else {
				m.memoryAddress = 0xFFC0
			}
		}
	}
	return m, nil
}

func (m TUI) formatReg8(name string, current, last byte) string {
	value := fmt.Sprintf("%s: $%02X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m TUI) formatReg16(name string, current, last uint16) string {
	value := fmt.Sprintf("%s: $%04X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m TUI) formatFlags() string {
	flags := []struct {
		name string
		flag byte
	}{
		{"N", cpu.FlagN}, {"V", cpu.FlagV}, {"B", cpu.FlagB},
		{"D", cpu.FlagD}, {"I", cpu.FlagI}, {"Z", cpu.FlagZ}, {"C", cpu.FlagC},
	}
	sr := m.cpu.SR()
	var result strings.Builder
	for _, f := range flags {
		current := sr&f.flag != 0
		last := m.last.SR&f.flag != 0
		if !current {
			result.WriteString("- ")
			continue
		}
		if current != last {
			result.WriteString(changedStyle.Render(f.name + " "))
		} else {
			result.WriteString(f.name + " ")
		}
	}
	return result.String()
}

func (m TUI) disassembleView() string {
	var result strings.Builder
	rows := 20
	for i := 0; i < rows && m.selectedLocation+i < len(m.locations); i++ {
		l := m.locations[m.selectedLocation+i]
		line := l.String()
		switch {
		case m.breakpoints[l.PC] && l.PC == m.cpu.PC:
			line = currentLineStyle.Render("● " + line)
		case m.breakpoints[l.PC]:
			line = breakpointStyle.Render("● " + line)
		case l.PC == m.cpu.PC:
			line = currentLineStyle.Render(line)
		case i == 0:
			line = selectedLineStyle.Render(line)
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

func (m TUI) formatStack() string {
	var result strings.Builder
	for i := uint16(0xFF); i >= uint16(m.cpu.SP); i-- {
		result.WriteString(fmt.Sprintf("$%02X: %02X\n", i, m.cpu.Mem.Read(0x100+i)))
		if i == 0 {
			break
		}
	}
	return result.String()
}

func (m TUI) formatMemory() string {
	var result strings.Builder
	addr := m.memoryAddress
	for row := 0; row < 8; row++ {
		result.WriteString(fmt.Sprintf("$%04X: ", addr))
		for col := 0; col < 8; col++ {
			result.WriteString(fmt.Sprintf("%02X ", m.cpu.Mem.Read(addr+uint16(col))))
		}
		result.WriteString(" | ")
		for col := 0; col < 8; col++ {
			v := m.cpu.Mem.Read(addr + uint16(col))
			if v >= 32 && v <= 126 {
				result.WriteString(string(v))
			} else {
				result.WriteString(".")
			}
		}
		result.WriteString("\n")
		addr += 8
	}
	return result.String()
}

func (m TUI) View() string {
	rightColumnWidth := 32
	leftColumnWidth := 44

	infoStyle := infoStyle.Width(rightColumnWidth)
	stackStyle := stackStyle.Width(rightColumnWidth)
	disasmStyle := disasmStyle.Width(leftColumnWidth)

	disasmPanel := disasmStyle.Render(fmt.Sprintf("Disassembly\n\n%s", m.disassembleView()))

	cpuState := infoStyle.Render(fmt.Sprintf(
		"CPU State\n\n%s    %s    %s\n%s  %s\n\nFlags: %s\n",
		m.formatReg8("A", m.cpu.AC, m.last.AC),
		m.formatReg8("X", m.cpu.X, m.last.X),
		m.formatReg8("Y", m.cpu.Y, m.last.Y),
		m.formatReg16("PC", m.cpu.PC, m.last.PC),
		m.formatReg8("SP", m.cpu.SP, m.last.SP),
		m.formatFlags(),
	))

	stack := stackStyle.Render(fmt.Sprintf("Stack\n\n%s", m.formatStack()))
	memory := memoryStyle.Render(fmt.Sprintf("Memory (↑↓ to scroll)\n\n%s", m.formatMemory()))

	right := lipgloss.JoinVertical(lipgloss.Left, cpuState, stack, memory)

	var help string
	if !m.paused {
		help = titleStyle.Render("p: pause • q: quit")
	} else {
		help = titleStyle.Render(
			"s: step • n: run to break • p: pause/resume • b: toggle break • " +
				"↑↓: scroll • pgup/pgdn: page • tab: switch pane • g: goto • q: quit")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, disasmPanel, lipgloss.PlaceHorizontal(3, lipgloss.Left, right))

	if m.showingGoto {
		dialog := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).
			Width(30).
			Render("Go to address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Center, content, help, dialog)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}
