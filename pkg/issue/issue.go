// Package issue provides data structures and error types for forge issues.
package issue

import "errors"

// Info represents information about a forge issue.
type Info struct {
	Number     int
	Title      string
	State      string
	URL        string
	Repository string
	Owner      string
}

// Reference represents a parsed issue reference.
type Reference struct {
	Owner       string
	Repository  string
	IssueNumber int
	URL         string
}

// Issue-specific error types.
var (
	ErrIssueNotFound              = errors.New("issue not found")
	ErrIssueClosed                = errors.New("issue is closed, only open issues are supported")
	ErrInvalidIssueReference      = errors.New("invalid issue reference format")
	ErrIssueNumberRequiresContext = errors.New("issue number format requires repository context")
)
