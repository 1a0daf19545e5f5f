package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cameronehrlich/gwtm/pkg/git"
)

// selectModel represents the Bubble Tea model for worktree selection.
type selectModel struct {
	entries  []git.WorktreeEntry
	cursor   int
	selected *git.WorktreeEntry
	quitting bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(entries []git.WorktreeEntry) selectModel {
	return selectModel{
		entries: entries,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.entries) {
			selected := m.entries[m.cursor]
			m.selected = &selected
		}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	}

	return m, nil
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString("? Choose worktree:  [Use arrows to move]\n\n")

	for i, entry := range m.entries {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		label := entry.Path
		if entry.Branch != "" {
			label = fmt.Sprintf("%s [%s]", entry.Path, entry.Branch)
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, label))
	}

	s.WriteString("\nPress Enter to select, q to quit")
	return s.String()
}
