//go:build unit

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorktreeList(t *testing.T) {
	entries := parseWorktreeList("/repo [main]\n/repo/wt [feature]")
	assert.Equal(t, []WorktreeEntry{
		{Path: "/repo", Branch: "main"},
		{Path: "/repo/wt", Branch: "feature"},
	}, entries)
}

func TestParseWorktreeList_Empty(t *testing.T) {
	assert.Empty(t, parseWorktreeList(""))
	assert.Empty(t, parseWorktreeList("\n\n"))
}

func TestParseWorktreeList_SkipsShortLines(t *testing.T) {
	entries := parseWorktreeList("/repo [main]\nmalformed\n/repo/wt [feature]")
	assert.Equal(t, []WorktreeEntry{
		{Path: "/repo", Branch: "main"},
		{Path: "/repo/wt", Branch: "feature"},
	}, entries)
}

func TestParseWorktreeListPorcelain(t *testing.T) {
	output := "worktree /repo\nHEAD 0123456789abcdef\nbranch refs/heads/main\n\n" +
		"worktree /repo/wt\nHEAD fedcba9876543210\nbranch refs/heads/feature\n\n"

	entries := parseWorktreeListPorcelain(output)
	assert.Equal(t, []WorktreeEntry{
		{Path: "/repo", Branch: "main"},
		{Path: "/repo/wt", Branch: "feature"},
	}, entries)
}

func TestParseWorktreeListPorcelain_Detached(t *testing.T) {
	output := "worktree /repo\nHEAD 0123456789abcdef\nbranch refs/heads/main\n\n" +
		"worktree /repo/wt\nHEAD fedcba9876543210\ndetached\n\n"

	entries := parseWorktreeListPorcelain(output)
	assert.Equal(t, []WorktreeEntry{
		{Path: "/repo", Branch: "main"},
		{Path: "/repo/wt", Branch: ""},
	}, entries)
}

func TestParseWorktreeListPorcelain_SkipsUnknownLines(t *testing.T) {
	output := "worktree /repo\nlocked reason\nbranch refs/heads/main\nunknown-prefix value\n"

	entries := parseWorktreeListPorcelain(output)
	assert.Equal(t, []WorktreeEntry{
		{Path: "/repo", Branch: "main"},
	}, entries)
}

func TestParseWorktreeListPorcelain_Empty(t *testing.T) {
	assert.Empty(t, parseWorktreeListPorcelain(""))
}
