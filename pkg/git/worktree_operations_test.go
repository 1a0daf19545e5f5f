//go:build integration

package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGit_AddWorktree_NewBranch(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	worktreePath := filepath.Join(t.TempDir(), "feature-wt")
	err := git.AddWorktree(repoDir, AddWorktreeParams{
		Path:      worktreePath,
		Branch:    "feature",
		NewBranch: true,
	})
	if err != nil {
		t.Fatalf("Expected no error creating worktree: %v", err)
	}

	if _, err := os.Stat(worktreePath); os.IsNotExist(err) {
		t.Errorf("Expected worktree directory %s to exist", worktreePath)
	}

	// Creating the same worktree again should fail
	err = git.AddWorktree(repoDir, AddWorktreeParams{
		Path:      worktreePath,
		Branch:    "feature",
		NewBranch: true,
	})
	if err == nil {
		t.Error("Expected error when creating duplicate worktree")
	}
}

func TestGit_AddWorktree_ExistingBranch(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	runTestGit(t, repoDir, "branch", "existing")

	worktreePath := filepath.Join(t.TempDir(), "existing-wt")
	err := git.AddWorktree(repoDir, AddWorktreeParams{
		Path:   worktreePath,
		Branch: "existing",
	})
	if err != nil {
		t.Fatalf("Expected no error creating worktree: %v", err)
	}
}

func TestGit_ListWorktrees(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	worktreePath := filepath.Join(t.TempDir(), "listed-wt")
	err := git.AddWorktree(repoDir, AddWorktreeParams{
		Path:      worktreePath,
		Branch:    "listed",
		NewBranch: true,
	})
	if err != nil {
		t.Fatalf("Expected no error creating worktree: %v", err)
	}

	entries, err := git.ListWorktrees(repoDir)
	if err != nil {
		t.Fatalf("Expected no error listing worktrees: %v", err)
	}
	// Main working tree plus the new worktree
	if len(entries) != 2 {
		t.Fatalf("Expected 2 worktree entries, got %d", len(entries))
	}
}

func TestGit_ListWorktreesPorcelain(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	worktreePath := filepath.Join(t.TempDir(), "porcelain-wt")
	err := git.AddWorktree(repoDir, AddWorktreeParams{
		Path:      worktreePath,
		Branch:    "porcelain-branch",
		NewBranch: true,
	})
	if err != nil {
		t.Fatalf("Expected no error creating worktree: %v", err)
	}

	entries, err := git.ListWorktreesPorcelain(repoDir)
	if err != nil {
		t.Fatalf("Expected no error listing worktrees: %v", err)
	}

	found := false
	for _, entry := range entries {
		if entry.Branch == "porcelain-branch" {
			found = true
			// Porcelain paths are absolute and the refs/heads/ prefix is stripped
			if !filepath.IsAbs(entry.Path) {
				t.Errorf("Expected absolute path, got %s", entry.Path)
			}
		}
	}
	if !found {
		t.Error("Expected porcelain listing to contain the new worktree's branch")
	}
}

func TestGit_RemoveWorktree(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	worktreePath := filepath.Join(t.TempDir(), "removed-wt")
	err := git.AddWorktree(repoDir, AddWorktreeParams{
		Path:      worktreePath,
		Branch:    "removed",
		NewBranch: true,
	})
	if err != nil {
		t.Fatalf("Expected no error creating worktree: %v", err)
	}

	if err := git.RemoveWorktree(repoDir, worktreePath); err != nil {
		t.Fatalf("Expected no error removing worktree: %v", err)
	}

	if err := git.PruneWorktrees(repoDir); err != nil {
		t.Errorf("Expected no error pruning worktrees: %v", err)
	}

	// Removing again should fail
	if err := git.RemoveWorktree(repoDir, worktreePath); err == nil {
		t.Error("Expected error removing nonexistent worktree")
	}
}
