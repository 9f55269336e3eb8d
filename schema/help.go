package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	HelpCardCollection = "helpCards"
)

const (
	CardOpen    = "open"
	CardMatched = "matched"
	CardClosed  = "closed"
)

const (
	UrgencyNormal = "normal"
	UrgencyUrgent = "urgent"
)

// Decision is a viewer's swipe on a help card
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Valid reports whether the decision is one of accept or reject
func (d Decision) Valid() bool {
	return d == DecisionAccept || d == DecisionReject
}

// Field is the card field holding viewers who made this decision
func (d Decision) Field() string {
	if d == DecisionAccept {
		return "accepted_by"
	}
	return "declined_by"
}

// Opposite returns the other decision
func (d Decision) Opposite() Decision {
	if d == DecisionAccept {
		return DecisionReject
	}
	return DecisionAccept
}

// Skills are the categories a help card can ask for
var Skills = []string{
	"Rides",
	"Tutoring",
	"Groceries",
	"Tech Help",
	"Job Referrals",
	"Legal",
	"Medical",
	"Moving",
	"Repairs",
	"Childcare",
	"Translation",
	"Other",
}

// CanonicalSkill returns the skill as spelled in Skills, matched case-insensitively
func CanonicalSkill(skill string) (string, bool) {
	for _, s := range Skills {
		if strings.EqualFold(s, strings.TrimSpace(skill)) {
			return s, true
		}
	}
	return "", false
}

// HelpCard is a request for help which other users accept or decline by swiping
type HelpCard struct {
	ID               string     `json:"id" bson:"_id"`
	AuthorID         string     `json:"author_id" bson:"author_id"`
	AuthorName       string     `json:"author_name" bson:"author_name"`
	AuthorProfilePic *string    `json:"author_profile_pic,omitempty" bson:"author_profile_pic,omitempty"`
	Title            string     `json:"title" bson:"title"`
	Description      string     `json:"description" bson:"description"`
	Skill            string     `json:"skill" bson:"skill"`
	Urgency          string     `json:"urgency" bson:"urgency"`
	IsRemote         bool       `json:"is_remote" bson:"is_remote"`
	Latitude         *float64   `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Location         *GeoJSON   `json:"-" bson:"location,omitempty"`
	LocationName     *string    `json:"location_name,omitempty" bson:"location_name,omitempty"`
	DeckID           *string    `json:"deck_id,omitempty" bson:"deck_id,omitempty"`
	Status           string     `json:"status" bson:"status"`
	AcceptedBy       []string   `json:"accepted_by" bson:"accepted_by"`
	DeclinedBy       []string   `json:"declined_by" bson:"declined_by"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
}

// NewHelpCard fills the generated fields of a card. Urgent cards expire at the
// last second of their creation day in loc.
func NewHelpCard(card HelpCard, createdAt time.Time, loc *time.Location) HelpCard {
	card.ID = uuid.New().String()
	card.Status = CardOpen
	card.AcceptedBy = []string{}
	card.DeclinedBy = []string{}
	card.CreatedAt = createdAt.UTC()

	if card.Latitude != nil && card.Longitude != nil {
		card.Location = NewPoint(*card.Latitude, *card.Longitude)
	}

	if card.Urgency == UrgencyUrgent {
		expiresAt := EndOfDay(createdAt, loc)
		card.ExpiresAt = &expiresAt
	}

	return card
}

// EndOfDay returns 23:59:59 of the day t falls on in loc
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 0, loc).UTC()
}

// HasCoordinates reports whether both latitude and longitude are set
func (c HelpCard) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Coordinates returns the card position if it has one
func (c HelpCard) Coordinates() (Location, bool) {
	if !c.HasCoordinates() {
		return Location{}, false
	}
	return Location{Latitude: *c.Latitude, Longitude: *c.Longitude}, true
}

// DecidedBy reports whether viewer already swiped the card in either direction
func (c HelpCard) DecidedBy(viewer string) bool {
	return containsString(c.AcceptedBy, viewer) || containsString(c.DeclinedBy, viewer)
}

// InDecisionSet reports whether viewer is recorded under the given decision
func (c HelpCard) InDecisionSet(d Decision, viewer string) bool {
	if d == DecisionAccept {
		return containsString(c.AcceptedBy, viewer)
	}
	return containsString(c.DeclinedBy, viewer)
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
