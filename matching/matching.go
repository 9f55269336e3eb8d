package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// Mode selects which help cards a viewer is shown
type Mode string

const (
	ModeAll    Mode = "all"
	ModeUrgent Mode = "urgent"
	ModeNearby Mode = "nearby"
	ModeSkills Mode = "skills"
	ModeDeck   Mode = "deck"
)

const earthRadiusMiles = 3958.8

var ErrInvalidQuery = fmt.Errorf("invalid card query")

// Query describes a card listing request. Only the fields of the selected
// mode are consulted.
type Query struct {
	Mode        Mode
	Origin      *schema.Location
	RadiusMiles float64
	Skills      []string
	DeckID      string
}

// Validate checks the query has everything its mode needs
func (q Query) Validate() error {
	switch q.Mode {
	case ModeAll, ModeUrgent, ModeSkills:
		return nil
	case ModeNearby:
		if q.Origin == nil || !q.Origin.Valid() || q.RadiusMiles < 0 {
			return ErrInvalidQuery
		}
	case ModeDeck:
		if q.DeckID == "" {
			return ErrInvalidQuery
		}
	default:
		return ErrInvalidQuery
	}
	return nil
}

// Eligible reports whether viewer may be shown card under q at time now. An
// empty viewer has swiped nothing and authored nothing.
func Eligible(card schema.HelpCard, viewer string, q Query, now time.Time) bool {
	if card.Status != schema.CardOpen {
		return false
	}

	if viewer != "" && (card.AuthorID == viewer || card.DecidedBy(viewer)) {
		return false
	}

	switch q.Mode {
	case ModeAll:
		return true
	case ModeUrgent:
		return card.Urgency == schema.UrgencyUrgent &&
			(card.ExpiresAt == nil || card.ExpiresAt.After(now))
	case ModeNearby:
		if card.IsRemote {
			return true
		}
		loc, ok := card.Coordinates()
		if !ok || q.Origin == nil {
			return false
		}
		return DistanceMiles(*q.Origin, loc) <= q.RadiusMiles
	case ModeSkills:
		skill := strings.ToLower(card.Skill)
		for _, s := range q.Skills {
			if strings.ToLower(strings.TrimSpace(s)) == skill {
				return true
			}
		}
		return false
	case ModeDeck:
		return card.DeckID != nil && *card.DeckID == q.DeckID
	}

	return false
}

// Filter keeps the eligible cards and orders them newest first, ties by id
func Filter(cards []schema.HelpCard, viewer string, q Query, now time.Time) []schema.HelpCard {
	result := make([]schema.HelpCard, 0, len(cards))
	for _, c := range cards {
		if Eligible(c, viewer, q, now) {
			result = append(result, c)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// DistanceMiles is the great-circle distance between a and b
func DistanceMiles(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}
