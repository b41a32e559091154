package services

import (
	"log/slog"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookService struct {
	db    *gorm.DB
	users *UserService
}

func NewWebhookService(db *gorm.DB, users *UserService) *WebhookService {
	return &WebhookService{db: db, users: users}
}

// HandleEvent records the verified delivery and applies the user
// lifecycle change. Unrecognized event types are acknowledged untouched.
func (s *WebhookService) HandleEvent(svixID string, payload []byte, event *dto.ClerkWebhookEvent) error {
	record := models.WebhookEvent{
		ID:        uuid.New(),
		SvixID:    svixID,
		EventType: event.Type,
		Payload:   datatypes.JSON(payload),
	}
	if err := s.db.Create(&record).Error; err != nil {
		// The audit row is best-effort; the event itself still applies.
		slog.Error("failed to record webhook event", "svix_id", svixID, "error", err)
	}

	switch event.Type {
	case "user.created":
		return s.users.CreateFromWebhook(event.Data)
	case "user.updated":
		return s.users.UpdateFromWebhook(event.Data)
	case "user.deleted":
		return s.users.DeleteFromWebhook(event.Data.ID)
	default:
		return nil
	}
}
