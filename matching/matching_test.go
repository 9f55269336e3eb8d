package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func TestQueryValidate(t *testing.T) {
	origin := &schema.Location{Latitude: 40.7128, Longitude: -74.006}

	assert.NoError(t, Query{Mode: ModeAll}.Validate())
	assert.NoError(t, Query{Mode: ModeUrgent}.Validate())
	assert.NoError(t, Query{Mode: ModeNearby, Origin: origin, RadiusMiles: 10}.Validate())
	assert.NoError(t, Query{Mode: ModeSkills, Skills: []string{"Rides"}}.Validate())
	assert.NoError(t, Query{Mode: ModeDeck, DeckID: "d1"}.Validate())

	assert.Equal(t, ErrInvalidQuery, Query{Mode: "sideways"}.Validate())
	assert.Equal(t, ErrInvalidQuery, Query{Mode: ModeNearby}.Validate())
	assert.Equal(t, ErrInvalidQuery, Query{Mode: ModeNearby, Origin: origin, RadiusMiles: -1}.Validate())
	assert.Equal(t, ErrInvalidQuery, Query{Mode: ModeNearby, Origin: &schema.Location{Latitude: 95}}.Validate())
	assert.NoError(t, Query{Mode: ModeSkills}.Validate())
	assert.Equal(t, ErrInvalidQuery, Query{Mode: ModeDeck}.Validate())
}

func TestEligibleExcludesOwnAndDecided(t *testing.T) {
	now := time.Now()
	q := Query{Mode: ModeAll}

	card := schema.HelpCard{
		ID:         "c1",
		AuthorID:   "alice",
		Status:     schema.CardOpen,
		AcceptedBy: []string{"bob"},
		DeclinedBy: []string{"carol"},
	}

	assert.False(t, Eligible(card, "alice", q, now))
	assert.False(t, Eligible(card, "bob", q, now))
	assert.False(t, Eligible(card, "carol", q, now))
	assert.True(t, Eligible(card, "dave", q, now))
	assert.True(t, Eligible(card, "", q, now))

	card.Status = schema.CardMatched
	assert.False(t, Eligible(card, "dave", q, now))
}

func TestEligibleUrgent(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)
	earlier := now.Add(-time.Minute)
	q := Query{Mode: ModeUrgent}

	assert.True(t, Eligible(schema.HelpCard{Status: schema.CardOpen, Urgency: schema.UrgencyUrgent, ExpiresAt: &later}, "", q, now))
	assert.False(t, Eligible(schema.HelpCard{Status: schema.CardOpen, Urgency: schema.UrgencyUrgent, ExpiresAt: &earlier}, "", q, now))
	assert.False(t, Eligible(schema.HelpCard{Status: schema.CardOpen, Urgency: schema.UrgencyUrgent, ExpiresAt: &now}, "", q, now))
	assert.False(t, Eligible(schema.HelpCard{Status: schema.CardOpen, Urgency: schema.UrgencyNormal}, "", q, now))
}

func TestEligibleNearby(t *testing.T) {
	now := time.Now()
	nyc := schema.Location{Latitude: 40.7128, Longitude: -74.006}
	q := Query{Mode: ModeNearby, Origin: &nyc, RadiusMiles: 50}

	philly := schema.HelpCard{Status: schema.CardOpen, Latitude: floatPtr(39.9526), Longitude: floatPtr(-75.1652)}
	newark := schema.HelpCard{Status: schema.CardOpen, Latitude: floatPtr(40.7357), Longitude: floatPtr(-74.1724)}
	remote := schema.HelpCard{Status: schema.CardOpen, IsRemote: true}
	nowhere := schema.HelpCard{Status: schema.CardOpen}

	assert.False(t, Eligible(philly, "", q, now))
	assert.True(t, Eligible(newark, "", q, now))
	assert.True(t, Eligible(remote, "", q, now))
	assert.False(t, Eligible(nowhere, "", q, now))

	q.RadiusMiles = 100
	assert.True(t, Eligible(philly, "", q, now))
}

func TestEligibleSkillsAndDeck(t *testing.T) {
	now := time.Now()

	card := schema.HelpCard{Status: schema.CardOpen, Skill: "Tech Help", DeckID: stringPtr("d1")}

	assert.True(t, Eligible(card, "", Query{Mode: ModeSkills, Skills: []string{"tech help "}}, now))
	assert.False(t, Eligible(card, "", Query{Mode: ModeSkills, Skills: []string{"Legal"}}, now))

	assert.True(t, Eligible(card, "", Query{Mode: ModeDeck, DeckID: "d1"}, now))
	assert.False(t, Eligible(card, "", Query{Mode: ModeDeck, DeckID: "d2"}, now))
	assert.False(t, Eligible(schema.HelpCard{Status: schema.CardOpen}, "", Query{Mode: ModeDeck, DeckID: "d1"}, now))
}

func TestFilterOrdersNewestFirst(t *testing.T) {
	now := time.Now()
	t1 := now.Add(-3 * time.Hour)
	t2 := now.Add(-time.Hour)

	cards := []schema.HelpCard{
		{ID: "b", Status: schema.CardOpen, CreatedAt: t1},
		{ID: "a", Status: schema.CardOpen, CreatedAt: t1},
		{ID: "c", Status: schema.CardOpen, CreatedAt: t2},
		{ID: "mine", AuthorID: "alice", Status: schema.CardOpen, CreatedAt: t2},
	}

	result := Filter(cards, "alice", Query{Mode: ModeAll}, now)

	ids := make([]string, 0, len(result))
	for _, c := range result {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestFilterEmptyIsNotNil(t *testing.T) {
	result := Filter(nil, "", Query{Mode: ModeAll}, time.Now())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestDistanceMiles(t *testing.T) {
	nyc := schema.Location{Latitude: 40.7128, Longitude: -74.006}
	philly := schema.Location{Latitude: 39.9526, Longitude: -75.1652}

	assert.InDelta(t, 80.6, DistanceMiles(nyc, philly), 1.0)
	assert.InDelta(t, DistanceMiles(nyc, philly), DistanceMiles(philly, nyc), 1e-9)
	assert.Equal(t, 0.0, DistanceMiles(nyc, nyc))
}
