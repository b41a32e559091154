package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a linked GitHub repository. GithubURL holds the canonical
// html_url reported by the GitHub API, not the URL the user typed.
type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	GithubURL string    `gorm:"size:512;not null;index" json:"githubUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserToProject links a user to a project (many-to-many ownership).
type UserToProject struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_project" json:"userId"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_project" json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}
