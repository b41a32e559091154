package dto

// ClerkWebhookEvent is the envelope Clerk posts for user lifecycle events.
type ClerkWebhookEvent struct {
	Type string        `json:"type"`
	Data ClerkUserData `json:"data"`
}

type ClerkUserData struct {
	ID             string              `json:"id"`
	EmailAddresses []ClerkEmailAddress `json:"email_addresses"`
	FirstName      *string             `json:"first_name"`
	LastName       *string             `json:"last_name"`
	ImageURL       *string             `json:"image_url"`
}

type ClerkEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first listed email address, or "".
func (d ClerkUserData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
