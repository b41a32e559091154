package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Caller is the verified identity extracted from a Clerk session token.
// Profile fields are best-effort: Clerk only includes them when the
// instance's session token template is configured to emit them.
type Caller struct {
	ClerkID   string
	Email     string
	FirstName *string
	LastName  *string
	ImageURL  *string
}

// FromContext extracts the caller from JWT claims in the Fiber context.
func FromContext(c *fiber.Ctx) (*Caller, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("missing sub claim")
	}

	caller := &Caller{ClerkID: sub}
	if email, ok := claims["email"].(string); ok {
		caller.Email = email
	}
	caller.FirstName = optionalClaim(claims, "first_name")
	caller.LastName = optionalClaim(claims, "last_name")
	caller.ImageURL = optionalClaim(claims, "image_url")

	return caller, nil
}

func optionalClaim(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
