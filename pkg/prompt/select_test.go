//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/cameronehrlich/gwtm/pkg/git"
)

func testEntries() []git.WorktreeEntry {
	return []git.WorktreeEntry{
		{Path: "/repo", Branch: "main"},
		{Path: "/repo/wt", Branch: "feature"},
		{Path: "/repo/det", Branch: ""},
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestSelectModel_EnterSelectsCurrent(t *testing.T) {
	model := initialSelectModel(testEntries())

	updated, _ := model.Update(keyMsg("down"))
	updated, _ = updated.(selectModel).Update(keyMsg("enter"))

	final := updated.(selectModel)
	assert.NotNil(t, final.selected)
	assert.Equal(t, "/repo/wt", final.selected.Path)
}

func TestSelectModel_CursorBounds(t *testing.T) {
	model := initialSelectModel(testEntries())

	// Up at the top stays at the top
	updated, _ := model.Update(keyMsg("up"))
	assert.Equal(t, 0, updated.(selectModel).cursor)

	// Down past the end stays at the end
	for i := 0; i < 10; i++ {
		updated, _ = updated.(selectModel).Update(keyMsg("down"))
	}
	assert.Equal(t, 2, updated.(selectModel).cursor)
}

func TestSelectModel_QuitWithoutSelection(t *testing.T) {
	model := initialSelectModel(testEntries())

	updated, _ := model.Update(keyMsg("q"))
	final := updated.(selectModel)
	assert.True(t, final.quitting)
	assert.Nil(t, final.selected)
}

func TestSelectModel_ViewShowsBranchLabels(t *testing.T) {
	model := initialSelectModel(testEntries())

	view := model.View()
	assert.Contains(t, view, "/repo [main]")
	assert.Contains(t, view, "/repo/wt [feature]")
	assert.Contains(t, view, "/repo/det\n")
}

func TestPrompter_EmptyEntries(t *testing.T) {
	prompter := NewPrompter()
	_, err := prompter.SelectWorktree(nil)
	assert.ErrorIs(t, err, ErrNoWorktrees)
}
