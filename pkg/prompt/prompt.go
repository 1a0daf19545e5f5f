// Package prompt provides interactive selection of worktrees.
package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cameronehrlich/gwtm/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides interactive worktree selection.
type Prompter interface {
	// SelectWorktree presents the entries and returns the chosen one.
	SelectWorktree(entries []git.WorktreeEntry) (git.WorktreeEntry, error)
}

type realPrompter struct {
	// No fields needed for basic prompting
}

// NewPrompter creates a new Prompter instance.
func NewPrompter() Prompter {
	return &realPrompter{}
}

// SelectWorktree presents an interactive picker over the given entries.
func (p *realPrompter) SelectWorktree(entries []git.WorktreeEntry) (git.WorktreeEntry, error) {
	if len(entries) == 0 {
		return git.WorktreeEntry{}, ErrNoWorktrees
	}

	program := tea.NewProgram(initialSelectModel(entries))
	finalModel, err := program.Run()
	if err != nil {
		return git.WorktreeEntry{}, fmt.Errorf("selection prompt failed: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok || model.selected == nil {
		return git.WorktreeEntry{}, ErrSelectionAborted
	}

	return *model.selected, nil
}
