package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/github"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrInvalidRepoURL   = errors.New("invalid GitHub URL format")
	ErrProjectNotFound  = errors.New("project not found")
	ErrDuplicateProject = errors.New("this repository is already added to your projects")
)

type ProjectService struct {
	db    *gorm.DB
	repos RepoSource
}

func NewProjectService(db *gorm.DB, repos RepoSource) *ProjectService {
	return &ProjectService{db: db, repos: repos}
}

// Create links a GitHub repository to the user. The canonical html_url
// from the API is stored, so two spellings of the same repo dedupe.
func (s *ProjectService) Create(ctx context.Context, user *models.User, githubURL string) (*models.Project, *github.RepoInfo, error) {
	owner, name, ok := github.ParseRepoURL(githubURL)
	if !ok {
		return nil, nil, ErrInvalidRepoURL
	}

	info, err := s.repos.FetchRepo(ctx, owner, name)
	if err != nil {
		return nil, nil, err
	}

	var existing models.Project
	err = s.db.
		Joins("JOIN user_to_projects ON user_to_projects.project_id = projects.id").
		Where("projects.github_url = ? AND user_to_projects.user_id = ?", info.HTMLURL, user.ID).
		First(&existing).Error
	if err == nil {
		return nil, nil, ErrDuplicateProject
	}

	project := models.Project{
		ID:        uuid.New(),
		Name:      info.Name,
		GithubURL: info.HTMLURL,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		link := models.UserToProject{
			ID:        uuid.New(),
			UserID:    user.ID,
			ProjectID: project.ID,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &project, info, nil
}

// GetOwned loads a project only if it is linked to the given user.
func (s *ProjectService) GetOwned(user *models.User, projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := s.db.
		Joins("JOIN user_to_projects ON user_to_projects.project_id = projects.id").
		Where("projects.id = ? AND user_to_projects.user_id = ?", projectID, user.ID).
		First(&project).Error
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return &project, nil
}

// List returns the user's projects newest-first, each with a best-effort
// live metadata refresh. A failed refresh leaves repoInfo null.
func (s *ProjectService) List(ctx context.Context, user *models.User) ([]dto.ProjectResponse, error) {
	var projects []models.Project
	err := s.db.
		Joins("JOIN user_to_projects ON user_to_projects.project_id = projects.id").
		Where("user_to_projects.user_id = ?", user.ID).
		Order("user_to_projects.created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	entries := make([]dto.ProjectResponse, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(5)

	for i := range projects {
		i := i
		p := projects[i]
		createdAt := p.CreatedAt
		entries[i] = dto.ProjectResponse{
			ID:        p.ID,
			Name:      p.Name,
			GithubURL: p.GithubURL,
			CreatedAt: &createdAt,
		}
		g.Go(func() error {
			if info := s.repos.LookupRepo(gctx, p.GithubURL); info != nil {
				updatedAt := info.UpdatedAt
				entries[i].RepoInfo = &dto.RepoInfoResponse{
					Description: info.Description,
					Language:    info.Language,
					Stars:       info.Stars,
					Forks:       info.Forks,
					Owner:       info.Owner.Login,
					Avatar:      info.Owner.AvatarURL,
					UpdatedAt:   &updatedAt,
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return entries, nil
}
