package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/identity"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientCredits = errors.New("insufficient credits, please upgrade your plan")
	ErrEmailRequired       = errors.New("no email found")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreate resolves the local user for a verified caller, creating the
// row lazily on first authenticated request. Keyed on the immutable Clerk
// subject id; every authenticated handler goes through this.
func (s *UserService) GetOrCreate(caller *identity.Caller) (*models.User, error) {
	if caller == nil || caller.ClerkID == "" {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.db.Where("clerk_id = ?", caller.ClerkID).First(&user).Error; err == nil {
		return &user, nil
	}

	user = models.User{
		ID:        uuid.New(),
		ClerkID:   caller.ClerkID,
		Email:     caller.Email,
		FirstName: caller.FirstName,
		LastName:  caller.LastName,
		ImageURL:  caller.ImageURL,
		Credits:   models.DefaultCredits,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent request may have won the race on the unique index.
		var existing models.User
		if lookupErr := s.db.Where("clerk_id = ?", caller.ClerkID).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created lazily", "user_id", user.ID.String())
	return &user, nil
}

// ChargeCredit decrements the balance by 1 as a conditional atomic update.
// Zero rows affected means the balance was already exhausted.
func (s *UserService) ChargeCredit(tx *gorm.DB, userID uuid.UUID) error {
	result := tx.Model(&models.User{}).
		Where("id = ? AND credits >= ?", userID, 1).
		UpdateColumn("credits", gorm.Expr("credits - ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// CreateFromWebhook applies a user.created event.
func (s *UserService) CreateFromWebhook(data dto.ClerkUserData) error {
	email := data.PrimaryEmail()
	if email == "" {
		return ErrEmailRequired
	}

	user := models.User{
		ID:        uuid.New(),
		ClerkID:   data.ID,
		Email:     email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		ImageURL:  data.ImageURL,
		Credits:   models.DefaultCredits,
	}
	return s.db.Create(&user).Error
}

// UpdateFromWebhook applies a user.updated event.
func (s *UserService) UpdateFromWebhook(data dto.ClerkUserData) error {
	email := data.PrimaryEmail()
	if email == "" {
		return ErrEmailRequired
	}

	result := s.db.Model(&models.User{}).
		Where("clerk_id = ?", data.ID).
		Updates(map[string]interface{}{
			"email":      email,
			"first_name": data.FirstName,
			"last_name":  data.LastName,
			"image_url":  data.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteFromWebhook applies a user.deleted event. Clerk redelivers
// webhooks, so deleting an already-deleted user is a no-op.
func (s *UserService) DeleteFromWebhook(clerkID string) error {
	result := s.db.Where("clerk_id = ?", clerkID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		slog.Info("webhook delete for unknown user", "clerk_id", clerkID)
	}
	return nil
}
