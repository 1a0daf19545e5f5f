// Package forge provides issue lookup against code forges for branch naming.
package forge

import "github.com/cameronehrlich/gwtm/pkg/issue"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// ParseIssueReference parses various issue reference formats
	ParseIssueReference(issueRef string) (*issue.Reference, error)

	// GetIssueInfo fetches issue information from the forge
	GetIssueInfo(issueRef string) (*issue.Info, error)

	// GenerateBranchName generates a branch name from issue information
	GenerateBranchName(info *issue.Info) string
}
