package services

import (
	"context"

	"github.com/gitmindapp/gitmind-backend/internal/github"
)

// RepoSource is what the services need from the GitHub gateway.
type RepoSource interface {
	FetchRepo(ctx context.Context, owner, name string) (*github.RepoInfo, error)
	LookupRepo(ctx context.Context, repoURL string) *github.RepoInfo
	FetchReadme(ctx context.Context, repoURL string) *string
}

// AnswerSource is what the question flow needs from the AI gateway.
type AnswerSource interface {
	Ask(ctx context.Context, question, repoContext string) (string, error)
}
