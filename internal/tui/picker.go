// Package tui provides terminal user interface components for skills-ctl
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionHydrate
	ActionInstall
	ActionNew
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Skill  skills.Skill
}

// skillItem implements list.Item for skill display
type skillItem struct {
	skill skills.Skill
}

func (i skillItem) Title() string {
	return i.skill.Name
}

func (i skillItem) Description() string {
	state := "✓ ready"
	if !i.skill.Hydrated() {
		state = fmt.Sprintf("○ %d pending", i.skill.Pending)
	}

	detail := i.skill.Description
	if detail == "" {
		detail = truncatePath(i.skill.Dir, 40)
	}

	return fmt.Sprintf("%s | %s", state, detail)
}

func (i skillItem) FilterValue() string {
	return i.skill.Name
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the skill picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new skill picker
func NewPicker(skillList []skills.Skill) Model {
	items := buildGroupedItems(skillList)

	l := list.New(items, newGroupedDelegate(), 80, 20)
	l.Title = "Firefly Styleguide - Select Skill"
	// The built-in status bar counts header rows as items, so the skill
	// count is rendered in the help line instead.
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	// The first item is always a group header
	skipHeaders(&l, 1)

	return Model{
		list: l,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(skillItem); ok {
				m.result = PickerResult{
					Action: ActionHydrate,
					Skill:  item.skill,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "i":
			if item, ok := m.list.SelectedItem().(skillItem); ok {
				m.result = PickerResult{
					Action: ActionInstall,
					Skill:  item.skill,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "n":
			m.result = PickerResult{Action: ActionNew}
			m.quitting = true
			return m, tea.Quit

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if isHeaderSelected(&m.list) {
			skipHeaders(&m.list, navigationDirection(msg))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	items := m.list.Items()
	count := len(items) - headerCount(items)
	label := fmt.Sprintf("%d skills", count)
	if count == 1 {
		label = "1 skill"
	}

	help := helpStyle.Render(label + "  |  [enter] Hydrate  [i] Install  [n] New  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive skill picker
func RunPicker(skillList []skills.Skill) (PickerResult, error) {
	if len(skillList) == 0 {
		return PickerResult{Action: ActionNew}, nil
	}

	m := NewPicker(skillList)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive picker that just lists skills
func SimplePicker(skillList []skills.Skill) string {
	var sb strings.Builder

	sb.WriteString("Firefly Styleguide - Skills\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(skillList) == 0 {
		sb.WriteString("No skills found.\n")
		sb.WriteString("Create one with: skills-ctl new <name>\n")
		return sb.String()
	}

	for i, s := range skillList {
		statusIcon := "✓"
		state := "ready"
		if !s.Hydrated() {
			statusIcon = "○"
			state = fmt.Sprintf("%d pending", s.Pending)
		}

		sb.WriteString(fmt.Sprintf("%d. %s %s (%s)\n",
			i+1, statusIcon, s.Name, state))

		detail := truncatePath(s.Dir, 40)
		if s.Description != "" {
			detail = s.Description + " | " + detail
		}
		sb.WriteString(fmt.Sprintf("   %s\n\n", detail))
	}

	return sb.String()
}
