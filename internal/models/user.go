package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCredits is granted to every newly created user.
const DefaultCredits = 150

// User mirrors the Clerk user record. ClerkID is the immutable link to the
// identity provider; everything else may be rewritten by webhook events.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkID   string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	FirstName *string   `gorm:"size:255" json:"firstName"`
	LastName  *string   `gorm:"size:255" json:"lastName"`
	ImageURL  *string   `json:"imageUrl"`
	Credits   int       `gorm:"not null;default:150" json:"credits"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
