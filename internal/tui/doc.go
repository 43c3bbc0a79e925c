// Package tui provides terminal user interface components for skills-ctl.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces, primarily for the skill picker behind "skills-ctl pick".
//
// # Skill Picker
//
// The picker displays discovered skills grouped by parent directory and
// allows selection:
//
//	result, err := tui.RunPicker(found)
//	switch result.Action {
//	case tui.ActionHydrate:
//	    // Hydrate result.Skill.Dir
//	case tui.ActionInstall:
//	    // Install result.Skill into a project
//	case tui.ActionNew:
//	    // Run the creation wizard
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Picker Features
//
//   - Lists all skills grouped by parent directory
//   - Keyboard navigation (j/k or arrows), headers auto-skipped
//   - Quick actions: Enter (hydrate), i (install), n (new/wizard), q (quit)
//   - Hydration state indicator per skill
//   - Creation wizard collecting skill name and description
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
