package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	DeckCollection = "decks"
)

const (
	DeckSystem      = "system"
	DeckUserPublic  = "userPublic"
	DeckUserPrivate = "userPrivate"
)

const DefaultDeckIcon = "rectangle.stack.fill"

// Deck is a sub-community with its own membership. Private decks are joined
// with an invite code.
type Deck struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	IconName    string    `json:"icon_name" bson:"icon_name"`
	Type        string    `json:"type" bson:"type"`
	CreatorID   *string   `json:"creator_id,omitempty" bson:"creator_id,omitempty"`
	AdminIDs    []string  `json:"admin_ids" bson:"admin_ids"`
	MemberIDs   []string  `json:"member_ids" bson:"member_ids"`
	InviteCode  *string   `json:"invite_code,omitempty" bson:"invite_code,omitempty"`
	IsPublic    bool      `json:"is_public" bson:"is_public"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// NewUserDeck builds a deck created by a user. The creator is its only admin
// and member. inviteCode must be empty for public decks.
func NewUserDeck(creatorID, name, description string, isPublic bool, inviteCode string, createdAt time.Time) Deck {
	d := Deck{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		IconName:    DefaultDeckIcon,
		Type:        DeckUserPublic,
		CreatorID:   &creatorID,
		AdminIDs:    []string{creatorID},
		MemberIDs:   []string{creatorID},
		IsPublic:    isPublic,
		CreatedAt:   createdAt.UTC(),
	}

	if !isPublic {
		d.Type = DeckUserPrivate
		d.InviteCode = &inviteCode
	}

	return d
}

// HasMember reports whether user is in the member set
func (d Deck) HasMember(user string) bool {
	return containsString(d.MemberIDs, user)
}

// SystemDecks are seeded by the migrate command
var SystemDecks = []Deck{
	{ID: "system-urgent", Name: "Urgent Today", Description: "Requests that need help before the day ends", IconName: "exclamationmark.triangle.fill"},
	{ID: "system-nearby", Name: "Near You", Description: "Requests close to where you are", IconName: "location.fill"},
	{ID: "system-skills", Name: "Your Skills", Description: "Requests matching the skills you offer", IconName: "star.fill"},
}
