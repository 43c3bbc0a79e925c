package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepName wizardStep = iota
	stepDescription
	stepConfirm
)

// ScaffoldOptions carries the values collected by the creation wizard.
type ScaffoldOptions struct {
	Name        string
	Description string
}

// wizardModel drives the skill creation wizard.
type wizardModel struct {
	step wizardStep

	// Step 1: name
	nameInput textinput.Model

	// Step 2: description
	descInput textinput.Model

	// Collected values
	selectedName        string
	selectedDescription string
}

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func newWizardModel() wizardModel {
	ni := textinput.New()
	ni.Placeholder = "skill-name"
	ni.Focus()
	ni.CharLimit = 63
	ni.Width = 40

	di := textinput.New()
	di.Placeholder = "One-line description of what the skill covers"
	di.CharLimit = 200
	di.Width = 60

	return wizardModel{
		step:      stepName,
		nameInput: ni,
		descInput: di,
	}
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, opts, cmd).
// done=true with non-nil opts means wizard completed successfully.
// done=true with nil opts means wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *ScaffoldOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepName:
		return w.updateName(msg)
	case stepDescription:
		return w.updateDescription(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *ScaffoldOptions, tea.Cmd) {
	switch w.step {
	case stepName:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepDescription:
		w.step = stepName
		w.descInput.Blur()
		w.nameInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepDescription
		w.descInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *wizardModel) updateName(msg tea.Msg) (bool, *ScaffoldOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		name := strings.TrimSpace(w.nameInput.Value())
		if name == "" {
			return false, nil, nil
		}
		if err := skills.ValidateSkillName(name); err != nil {
			return false, nil, nil
		}
		w.selectedName = name
		w.step = stepDescription
		w.nameInput.Blur()
		w.descInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateDescription(msg tea.Msg) (bool, *ScaffoldOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		w.selectedDescription = strings.TrimSpace(w.descInput.Value())
		w.step = stepConfirm
		w.descInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.descInput, cmd = w.descInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *ScaffoldOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			return true, &ScaffoldOptions{
				Name:        w.selectedName,
				Description: w.selectedDescription,
			}, nil
		case "n":
			// Restart wizard
			w.step = stepName
			w.nameInput.SetValue("")
			w.nameInput.Focus()
			w.descInput.SetValue("")
			w.selectedName = ""
			w.selectedDescription = ""
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Create New Skill"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepName:
		b.WriteString(wizardLabelStyle.Render("Skill name:"))
		b.WriteString("\n")
		b.WriteString(w.nameInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Lowercase letters, digits, underscores, hyphens. Enter to continue."))
	case stepDescription:
		b.WriteString(wizardLabelStyle.Render("Description:"))
		b.WriteString("\n")
		b.WriteString(w.descInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("One line for the manifest frontmatter. Enter to continue, may be empty."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Name:        %s\n", wizardValueStyle.Render(w.selectedName)))
		if w.selectedDescription != "" {
			b.WriteString(fmt.Sprintf("  Description: %s\n", wizardValueStyle.Render(w.selectedDescription)))
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to create, n to restart, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Name"},
		{2, "Description"},
		{3, "Confirm"},
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == int(w.step)+1 {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

// wizardHost adapts wizardModel to the tea.Model interface so the wizard
// can run as a standalone program.
type wizardHost struct {
	wizard *wizardModel
	opts   *ScaffoldOptions
	done   bool
}

func (h wizardHost) Init() tea.Cmd {
	return h.wizard.Init()
}

func (h wizardHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, opts, cmd := h.wizard.Update(msg)
	if done {
		h.done = true
		h.opts = opts
		return h, tea.Quit
	}
	return h, cmd
}

func (h wizardHost) View() string {
	if h.done {
		return ""
	}
	return h.wizard.View()
}

// RunWizard runs the interactive skill creation wizard. A nil result with
// a nil error means the wizard was cancelled.
func RunWizard() (*ScaffoldOptions, error) {
	m := newWizardModel()
	p := tea.NewProgram(wizardHost{wizard: &m}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(wizardHost).opts, nil
}
