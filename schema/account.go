package schema

import (
	"time"
)

// Account mirrors a user of the identity provider. The id is the provider uid.
type Account struct {
	ID                string     `json:"id" gorm:"primary_key"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	EmailVerified     bool       `json:"email_verified"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastSeenAt        *time.Time `json:"last_seen_at,omitempty"`
}

// DisplayName is the name shown as the author of cards, posts and comments
func (a *Account) DisplayName() string {
	if a == nil || a.Name == "" {
		return "Unknown"
	}
	return a.Name
}
