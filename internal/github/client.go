package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const userAgent = "GitMind-App"

var (
	ErrRepoNotFound = errors.New("repository not found or private")
	ErrRepoFetch    = errors.New("failed to fetch repository information")
)

// URL shapes accepted for linking: an exact owner/name tail (optionally
// with a .git suffix), or owner/name followed by extra path segments.
var repoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(\.git)?/?$`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`),
}

// ParseRepoURL extracts (owner, name) from a GitHub repository URL.
func ParseRepoURL(url string) (owner, name string, ok bool) {
	for _, pattern := range repoURLPatterns {
		m := pattern.FindStringSubmatch(url)
		if m != nil {
			return m[1], strings.TrimSuffix(m[2], ".git"), true
		}
	}
	return "", "", false
}

// RepoInfo is the subset of the GitHub repository payload the app uses.
// Description and Language are null for plenty of real repositories.
type RepoInfo struct {
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Description *string   `json:"description"`
	Language    *string   `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

// Client is a thin wrapper around the GitHub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRepo fetches repository metadata and distinguishes a missing repo
// from any other upstream failure. Used by the project creation flow.
func (c *Client) FetchRepo(ctx context.Context, owner, name string) (*RepoInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRepoFetch, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRepoFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrRepoNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrRepoFetch, resp.StatusCode)
	}

	var info RepoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRepoFetch, err)
	}
	return &info, nil
}

// LookupRepo resolves a repository URL to its metadata, returning nil on
// any failure. Callers on read paths treat a nil result as "no info".
func (c *Client) LookupRepo(ctx context.Context, repoURL string) *RepoInfo {
	owner, name, ok := ParseRepoURL(repoURL)
	if !ok {
		return nil
	}
	info, err := c.FetchRepo(ctx, owner, name)
	if err != nil {
		return nil
	}
	return info
}

// FetchReadme fetches the raw README text for a repository URL. A missing
// README is not an error anywhere in the app, so any failure returns nil.
func (c *Client) FetchReadme(ctx context.Context, repoURL string) *string {
	owner, name, ok := ParseRepoURL(repoURL)
	if !ok {
		return nil
	}

	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github.v3.raw")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	text := string(body)
	return &text
}
