package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gitmindapp/gitmind-backend/internal/github"
	"github.com/gitmindapp/gitmind-backend/internal/identity"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with all models migrated.
// Open connections are capped at 1 so every query sees the same memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.UserToProject{},
		&models.Question{},
		&models.WebhookEvent{},
	))
	return db
}

func testCaller(clerkID string) *identity.Caller {
	return &identity.Caller{ClerkID: clerkID, Email: clerkID + "@example.com"}
}

// fakeRepoSource is an in-memory RepoSource.
type fakeRepoSource struct {
	info       *github.RepoInfo
	readme     *string
	fetchErr   error
	fetchCalls int
}

func (f *fakeRepoSource) FetchRepo(_ context.Context, owner, name string) (*github.RepoInfo, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.info, nil
}

func (f *fakeRepoSource) LookupRepo(_ context.Context, repoURL string) *github.RepoInfo {
	return f.info
}

func (f *fakeRepoSource) FetchReadme(_ context.Context, repoURL string) *string {
	return f.readme
}

// fakeAnswerSource records the prompt context it was handed.
type fakeAnswerSource struct {
	answer      string
	err         error
	calls       int
	lastContext string
}

func (f *fakeAnswerSource) Ask(_ context.Context, question, repoContext string) (string, error) {
	f.calls++
	f.lastContext = repoContext
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func repoInfoFixture(name, owner string) *github.RepoInfo {
	desc := "A demo app"
	lang := "Go"
	info := &github.RepoInfo{
		Name:        name,
		HTMLURL:     "https://github.com/" + owner + "/" + name,
		Description: &desc,
		Language:    &lang,
		Stars:       42,
		Forks:       7,
	}
	info.Owner.Login = owner
	info.Owner.AvatarURL = "https://avatars.example/" + owner
	return info
}

var errUpstream = errors.New("upstream exploded")
