package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	GithubURL string `json:"githubUrl"`
}

// RepoInfoResponse is the metadata snapshot echoed to clients. UpdatedAt
// is only present on listing responses.
type RepoInfoResponse struct {
	Description *string    `json:"description"`
	Language    *string    `json:"language"`
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	Owner       string     `json:"owner"`
	Avatar      string     `json:"avatar"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type ProjectResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	GithubURL string            `json:"githubUrl"`
	CreatedAt *time.Time        `json:"createdAt,omitempty"`
	RepoInfo  *RepoInfoResponse `json:"repoInfo"`
}

type CreateProjectResponse struct {
	Success bool            `json:"success"`
	Project ProjectResponse `json:"project"`
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
