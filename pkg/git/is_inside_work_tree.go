package git

// IsInsideWorkTree checks whether workDir is inside a Git working tree.
func (g *realGit) IsInsideWorkTree(workDir string) bool {
	res, err := run(workDir, true, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return res.exitCode == 0
}
