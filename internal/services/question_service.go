package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitmindapp/gitmind-backend/internal/github"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// README text beyond this many characters is truncated before it is
	// handed to the answer gateway.
	maxReadmeChars = 8000

	historyLimit = 20
)

type QuestionService struct {
	db       *gorm.DB
	users    *UserService
	projects *ProjectService
	repos    RepoSource
	ai       AnswerSource
}

func NewQuestionService(db *gorm.DB, users *UserService, projects *ProjectService, repos RepoSource, ai AnswerSource) *QuestionService {
	return &QuestionService{db: db, users: users, projects: projects, repos: repos, ai: ai}
}

// Ask runs the credit-gated question flow: balance check, ownership
// check, concurrent context assembly, answer generation, then persistence
// and charge as one transaction. Returns the saved question and the
// caller's remaining balance.
func (s *QuestionService) Ask(ctx context.Context, user *models.User, projectID uuid.UUID, questionText string) (*models.Question, int, error) {
	if user.Credits < 1 {
		return nil, 0, ErrInsufficientCredits
	}

	project, err := s.projects.GetOwned(user, projectID)
	if err != nil {
		return nil, 0, err
	}

	// Metadata and README fetches run concurrently; each failure is
	// tolerated independently and surfaces as a nil result.
	var info *github.RepoInfo
	var readme *string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info = s.repos.LookupRepo(gctx, project.GithubURL)
		return nil
	})
	g.Go(func() error {
		readme = s.repos.FetchReadme(gctx, project.GithubURL)
		return nil
	})
	_ = g.Wait()

	answer, err := s.ai.Ask(ctx, questionText, buildRepoContext(project, info, readme))
	if err != nil {
		return nil, 0, err
	}

	question := models.Question{
		ID:        uuid.New(),
		Question:  questionText,
		Answer:    answer,
		ProjectID: project.ID,
		UserID:    user.ID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return s.users.ChargeCredit(tx, user.ID)
	})
	if err != nil {
		return nil, 0, err
	}

	// Computed from the balance read at the top of the flow, not re-fetched.
	return &question, user.Credits - 1, nil
}

// History returns the 20 most recent questions the user asked about one
// project, newest first. Read-only; no credit cost.
func (s *QuestionService) History(user *models.User, projectID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.
		Where("project_id = ? AND user_id = ?", projectID, user.ID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	return questions, nil
}

func buildRepoContext(project *models.Project, info *github.RepoInfo, readme *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s\nGitHub URL: %s\n", project.Name, project.GithubURL)

	if info != nil {
		fmt.Fprintf(&b, "Description: %s\n", stringOr(info.Description, "No description"))
		fmt.Fprintf(&b, "Language: %s\n", stringOr(info.Language, "Unknown"))
		fmt.Fprintf(&b, "Stars: %d\n", info.Stars)
		fmt.Fprintf(&b, "Forks: %d\n", info.Forks)
		topics := "None"
		if len(info.Topics) > 0 {
			topics = strings.Join(info.Topics, ", ")
		}
		fmt.Fprintf(&b, "Topics: %s\n", topics)
	}

	if readme != nil {
		text := *readme
		if len(text) > maxReadmeChars {
			text = text[:maxReadmeChars] + "..."
		}
		fmt.Fprintf(&b, "\nREADME:\n%s\n", text)
	}

	return b.String()
}

func stringOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
