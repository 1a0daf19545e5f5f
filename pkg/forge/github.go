package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"

	"github.com/cameronehrlich/gwtm/pkg/git"
	"github.com/cameronehrlich/gwtm/pkg/issue"
)

const (
	// GitHubName is the name identifier for the GitHub forge.
	GitHubName = "github"
	// MaxTitleLength is the maximum length of the sanitized title used in branch names.
	MaxTitleLength = 60
)

var (
	issueNumberRegexp = regexp.MustCompile(`^\d+$`)
	issueURLRegexp    = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/issues/(\d+)`)
	remoteURLRegexp   = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
	git    git.Git
}

// NewGitHub creates a new GitHub forge instance. GITHUB_TOKEN is used for
// authentication when set; public issues work unauthenticated.
func NewGitHub(gitClient git.Git) *GitHub {
	var client *github.Client
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
		git:    gitClient,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ParseIssueReference parses issue URLs, owner/repo#n references and bare
// issue numbers. Bare numbers resolve owner and repository from the current
// repository's origin remote.
func (g *GitHub) ParseIssueReference(issueRef string) (*issue.Reference, error) {
	switch {
	case strings.Contains(issueRef, "github.com") && strings.Contains(issueRef, "/issues/"):
		return parseIssueURL(issueRef)
	case strings.Contains(issueRef, "#"):
		return parseOwnerRepoReference(issueRef)
	case issueNumberRegexp.MatchString(issueRef):
		return g.parseIssueNumber(issueRef)
	default:
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, issueRef)
	}
}

// GetIssueInfo fetches issue information from the GitHub API.
func (g *GitHub) GetIssueInfo(issueRef string) (*issue.Info, error) {
	ref, err := g.ParseIssueReference(issueRef)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ghIssue, resp, err := g.client.Issues.Get(ctx, ref.Owner, ref.Repository, ref.IssueNumber)
	if err != nil {
		return nil, g.apiError(err, resp, ref.IssueNumber)
	}

	if ghIssue.GetState() != "open" {
		return nil, fmt.Errorf("%w: issue #%d", issue.ErrIssueClosed, ghIssue.GetNumber())
	}

	return &issue.Info{
		Number:     ghIssue.GetNumber(),
		Title:      ghIssue.GetTitle(),
		State:      ghIssue.GetState(),
		URL:        ghIssue.GetHTMLURL(),
		Repository: ref.Repository,
		Owner:      ref.Owner,
	}, nil
}

// GenerateBranchName builds "issue-<n>-<kebab-title>" from issue information.
func (g *GitHub) GenerateBranchName(info *issue.Info) string {
	title := strings.ToLower(info.Title)
	title = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(title, "-")
	title = strings.Trim(title, "-")
	if len(title) > MaxTitleLength {
		title = strings.Trim(title[:MaxTitleLength], "-")
	}

	if title == "" {
		return fmt.Sprintf("issue-%d", info.Number)
	}
	return fmt.Sprintf("issue-%d-%s", info.Number, title)
}

// apiError maps GitHub API failures onto the forge error taxonomy.
func (g *GitHub) apiError(err error, resp *github.Response, issueNumber int) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: issue #%d", issue.ErrIssueNotFound, issueNumber)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to fetch issue: %w", err)
}

// parseIssueNumber resolves a bare issue number against the origin remote.
func (g *GitHub) parseIssueNumber(issueRef string) (*issue.Reference, error) {
	originURL, err := g.git.RemoteURL(".", "origin")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", issue.ErrIssueNumberRequiresContext, err)
	}

	matches := remoteURLRegexp.FindStringSubmatch(originURL)
	if len(matches) != 3 {
		return nil, fmt.Errorf("%w: origin remote %s is not a GitHub repository",
			issue.ErrIssueNumberRequiresContext, originURL)
	}

	number, err := strconv.Atoi(issueRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, issueRef)
	}

	owner, repo := matches[1], matches[2]
	return &issue.Reference{
		Owner:       owner,
		Repository:  repo,
		IssueNumber: number,
		URL:         fmt.Sprintf("https://github.com/%s/%s/issues/%d", owner, repo, number),
	}, nil
}

// parseIssueURL parses https://github.com/owner/repo/issues/123 URLs.
func parseIssueURL(urlStr string) (*issue.Reference, error) {
	matches := issueURLRegexp.FindStringSubmatch(urlStr)
	if len(matches) != 4 {
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, urlStr)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, urlStr)
	}

	return &issue.Reference{
		Owner:       matches[1],
		Repository:  matches[2],
		IssueNumber: number,
		URL:         urlStr,
	}, nil
}

// parseOwnerRepoReference parses owner/repo#123 references.
func parseOwnerRepoReference(ref string) (*issue.Reference, error) {
	parts := strings.Split(ref, "#")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, ref)
	}

	ownerRepo := strings.Split(parts[0], "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, ref)
	}

	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", issue.ErrInvalidIssueReference, ref)
	}

	owner, repo := ownerRepo[0], ownerRepo[1]
	return &issue.Reference{
		Owner:       owner,
		Repository:  repo,
		IssueNumber: number,
		URL:         fmt.Sprintf("https://github.com/%s/%s/issues/%d", owner, repo, number),
	}, nil
}
