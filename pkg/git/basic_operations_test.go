//go:build integration

package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGit_IsInsideWorkTree(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	if !git.IsInsideWorkTree(repoDir) {
		t.Error("Expected repository directory to be inside a work tree")
	}

	if git.IsInsideWorkTree(t.TempDir()) {
		t.Error("Expected plain temp directory to not be inside a work tree")
	}
}

func TestGit_RepositoryRoot(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	subDir := filepath.Join(repoDir, "sub")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	root, err := git.RepositoryRoot(subDir)
	if err != nil {
		t.Fatalf("Expected no error resolving root: %v", err)
	}

	// macOS tempdirs resolve through symlinks, compare resolved paths
	wantRoot, err := filepath.EvalSymlinks(repoDir)
	if err != nil {
		t.Fatalf("Failed to resolve repo dir: %v", err)
	}
	gotRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("Failed to resolve reported root: %v", err)
	}
	if gotRoot != wantRoot {
		t.Errorf("Expected root %s, got %s", wantRoot, gotRoot)
	}
}

func TestGit_CurrentBranch(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	branch, err := git.CurrentBranch(repoDir)
	if err != nil {
		t.Fatalf("Expected no error getting current branch: %v", err)
	}
	if branch == "" {
		t.Error("Expected a current branch name")
	}

	// Detached HEAD yields empty branch without error
	runTestGit(t, repoDir, "checkout", "--detach")
	branch, err = git.CurrentBranch(repoDir)
	if err != nil {
		t.Fatalf("Expected no error on detached HEAD: %v", err)
	}
	if branch != "" {
		t.Errorf("Expected empty branch on detached HEAD, got %q", branch)
	}
}

func TestGit_StatusPorcelain(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	output, err := git.StatusPorcelain(repoDir)
	if err != nil {
		t.Fatalf("Expected no error getting status: %v", err)
	}
	if strings.TrimSpace(output) != "" {
		t.Errorf("Expected clean status, got: %s", output)
	}

	if err := os.WriteFile(filepath.Join(repoDir, "dirty.txt"), []byte("dirty"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	output, err = git.StatusPorcelain(repoDir)
	if err != nil {
		t.Fatalf("Expected no error getting status: %v", err)
	}
	if strings.TrimSpace(output) == "" {
		t.Error("Expected non-empty status for dirty tree")
	}
}

func TestGit_BranchExists(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	runTestGit(t, repoDir, "branch", "known-branch")

	exists, err := git.BranchExists(repoDir, "known-branch")
	if err != nil {
		t.Fatalf("Expected no error checking branch: %v", err)
	}
	if !exists {
		t.Error("Expected known-branch to exist")
	}

	exists, err = git.BranchExists(repoDir, "missing-branch")
	if err != nil {
		t.Fatalf("Expected no error checking branch: %v", err)
	}
	if exists {
		t.Error("Expected missing-branch to not exist")
	}
}

func TestGit_CheckoutAndMerge(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	main, err := git.CurrentBranch(repoDir)
	if err != nil {
		t.Fatalf("Expected no error getting current branch: %v", err)
	}

	runTestGit(t, repoDir, "checkout", "-b", "side")
	CommitFile(t, repoDir, "side.txt", "side content")

	if err := git.Checkout(repoDir, main); err != nil {
		t.Fatalf("Expected no error checking out %s: %v", main, err)
	}

	output, err := git.Merge(repoDir, "side")
	if err != nil {
		t.Fatalf("Expected no error merging: %v", err)
	}
	if strings.Contains(output, "Already up to date") {
		t.Error("Expected a real merge, not already-up-to-date")
	}

	// Merging again reports already up to date
	output, err = git.Merge(repoDir, "side")
	if err != nil {
		t.Fatalf("Expected no error merging twice: %v", err)
	}
	if !strings.Contains(output, "Already up to date") {
		t.Errorf("Expected already-up-to-date output, got: %s", output)
	}

	summary, err := git.LastCommitStat(repoDir)
	if err != nil {
		t.Fatalf("Expected no error getting log summary: %v", err)
	}
	if !strings.Contains(summary, "side.txt") {
		t.Errorf("Expected summary to mention side.txt, got: %s", summary)
	}
}

func TestGit_Fetch_NoRemote(t *testing.T) {
	git := NewGit()
	repoDir := SetupTestRepo(t)

	if err := git.Fetch(repoDir, "origin", "main"); err == nil {
		t.Error("Expected error fetching from missing remote")
	}
}
