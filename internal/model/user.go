package model

import "github.com/google/uuid"

// User is the identity of a signed-in caller. Users are owned by the identity provider
// and are never created or deleted by this service.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role,omitempty"`
	// Metadata holds provider-specific profile fields when the provider was queried.
	Metadata map[string]interface{} `json:"user_metadata,omitempty"`
}
