// Interactive terminal UI for browsing tables and making change.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
	"github.com/Oichkatzelesfrettschen/CoinSorter/registry"
	"github.com/Oichkatzelesfrettschen/CoinSorter/render"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse tables and make change interactively",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newTuiModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B8860B")).
			Padding(0, 1)

	tuiSelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B8860B"))

	tuiObjectiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	tuiResultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	tuiErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	tuiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type tuiState int

const (
	tuiSelectSystem tuiState = iota
	tuiEnterAmount
	tuiShowResult
)

type tuiModel struct {
	err       error
	systems   []*coins.System
	selected  int
	objective coins.Objective
	input     textinput.Model
	state     tuiState
	result    string
}

func newTuiModel() *tuiModel {
	ti := textinput.New()
	ti.Placeholder = "137"
	ti.Prompt = "Amount: "
	ti.Width = 12

	return &tuiModel{
		input: ti,
		state: tuiSelectSystem,
	}
}

// tuiSystemsMsg carries the table list loaded at startup.
type tuiSystemsMsg struct {
	systems []*coins.System
}

// tuiSolvedMsg carries one solve outcome back into the model.
type tuiSolvedMsg struct {
	err    error
	output string
}

func (m *tuiModel) Init() tea.Cmd {
	return loadTuiSystems
}

// loadTuiSystems collects builtin tables plus whatever the store holds.
// A missing or broken store degrades to builtins only.
func loadTuiSystems() tea.Msg {
	systems := registry.All()

	store, err := openStore()
	if err != nil {
		return tuiSystemsMsg{systems: systems}
	}
	defer store.Close()

	names, err := store.StoredNames()
	if err != nil {
		return tuiSystemsMsg{systems: systems}
	}
	for _, name := range names {
		sys, err := store.Load(name)
		if err != nil {
			continue
		}
		systems = append(systems, sys)
	}
	return tuiSystemsMsg{systems: systems}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == tuiSelectSystem && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == tuiSelectSystem && m.selected < len(m.systems)-1 {
				m.selected++
			}

		case "tab":
			m.cycleObjective()

		case "enter":
			switch m.state {
			case tuiSelectSystem:
				if len(m.systems) == 0 {
					return m, nil
				}
				m.input.SetValue("")
				m.input.Focus()
				m.state = tuiEnterAmount

			case tuiEnterAmount:
				return m, m.solve

			case tuiShowResult:
				m.state = tuiSelectSystem
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case tuiEnterAmount:
				m.input.Blur()
				m.state = tuiSelectSystem
			case tuiShowResult:
				m.state = tuiSelectSystem
				m.result = ""
				m.err = nil
			}
		}

	case tuiSystemsMsg:
		m.systems = msg.systems

	case tuiSolvedMsg:
		m.result = msg.output
		m.err = msg.err
		m.state = tuiShowResult
	}

	if m.state == tuiEnterAmount {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *tuiModel) cycleObjective() {
	switch m.objective {
	case coins.MinCount:
		m.objective = coins.MinMass
	case coins.MinMass:
		m.objective = coins.MinDiameter
	case coins.MinDiameter:
		m.objective = coins.MinArea
	default:
		m.objective = coins.MinCount
	}
}

func (m *tuiModel) solve() tea.Msg {
	amount, err := parseAmount(strings.TrimSpace(m.input.Value()))
	if err != nil {
		return tuiSolvedMsg{err: err}
	}

	sys := m.systems[m.selected]
	res, err := coins.Solve(sys, amount, coins.Options{Objective: m.objective})
	if err != nil {
		return tuiSolvedMsg{err: err}
	}

	var b strings.Builder
	if err := render.Text(&b, sys, amount, res); err != nil {
		return tuiSolvedMsg{err: err}
	}
	return tuiSolvedMsg{output: b.String()}
}

func (m *tuiModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("CoinSorter"))
	b.WriteString("  objective: ")
	b.WriteString(tuiObjectiveStyle.Render(m.objective.String()))
	b.WriteString("\n\n")

	switch m.state {
	case tuiSelectSystem:
		if len(m.systems) == 0 {
			b.WriteString("Loading tables...")
			return b.String()
		}

		b.WriteString("Select a denomination table:\n\n")
		for i, sys := range m.systems {
			line := fmt.Sprintf("%s (%d coins)", sys.Name, len(sys.Coins))
			if i == m.selected {
				b.WriteString(tuiSelectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(tuiHelpStyle.Render("↑/↓ select • enter choose • tab objective • q quit"))

	case tuiEnterAmount:
		sys := m.systems[m.selected]
		b.WriteString(fmt.Sprintf("Making change in %s smallest units\n\n", sys.Name))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(tuiHelpStyle.Render("enter solve • tab objective • esc back • ctrl+c quit"))

	case tuiShowResult:
		if m.err != nil {
			b.WriteString(tuiErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(tuiResultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(tuiHelpStyle.Render("enter tables • esc back • q quit"))
	}

	return b.String()
}
