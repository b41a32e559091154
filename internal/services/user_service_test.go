package services

import (
	"testing"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.GetOrCreate(testCaller("user_abc"))
	require.NoError(t, err)
	assert.Equal(t, "user_abc", user.ClerkID)
	assert.Equal(t, models.DefaultCredits, user.Credits)

	// Second call must return the same row, not create a new one
	again, err := svc.GetOrCreate(testCaller("user_abc"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateNoIdentity(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.GetOrCreate(nil)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetOrCreate(testCaller(""))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChargeCredit(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.GetOrCreate(testCaller("user_abc"))
	require.NoError(t, err)
	require.NoError(t, db.Model(user).UpdateColumn("credits", 1).Error)

	require.NoError(t, svc.ChargeCredit(db, user.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, 0, reloaded.Credits)

	// Balance exhausted: the conditional update must refuse to go below 0
	err = svc.ChargeCredit(db, user.ID)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, 0, reloaded.Credits)
}

func webhookUser(id, email string) dto.ClerkUserData {
	data := dto.ClerkUserData{ID: id}
	if email != "" {
		data.EmailAddresses = []dto.ClerkEmailAddress{{EmailAddress: email}}
	}
	return data
}

func TestWebhookCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	err := svc.CreateFromWebhook(webhookUser("user_wh", ""))
	assert.ErrorIs(t, err, ErrEmailRequired)

	require.NoError(t, svc.CreateFromWebhook(webhookUser("user_wh", "wh@example.com")))

	var user models.User
	require.NoError(t, db.First(&user, "clerk_id = ?", "user_wh").Error)
	assert.Equal(t, "wh@example.com", user.Email)
	assert.Equal(t, models.DefaultCredits, user.Credits)
}

func TestWebhookUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	require.NoError(t, svc.CreateFromWebhook(webhookUser("user_wh", "old@example.com")))

	data := webhookUser("user_wh", "new@example.com")
	first := "Ada"
	data.FirstName = &first
	require.NoError(t, svc.UpdateFromWebhook(data))

	var user models.User
	require.NoError(t, db.First(&user, "clerk_id = ?", "user_wh").Error)
	assert.Equal(t, "new@example.com", user.Email)
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Ada", *user.FirstName)

	err := svc.UpdateFromWebhook(webhookUser("user_unknown", "x@example.com"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestWebhookDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	require.NoError(t, svc.CreateFromWebhook(webhookUser("user_wh", "wh@example.com")))
	require.NoError(t, svc.DeleteFromWebhook("user_wh"))

	var count int64
	db.Model(&models.User{}).Where("clerk_id = ?", "user_wh").Count(&count)
	assert.EqualValues(t, 0, count)

	// Redelivery of the same event must not fail
	require.NoError(t, svc.DeleteFromWebhook("user_wh"))
}
