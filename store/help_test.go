package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

func TestClassifyDecisionFailure(t *testing.T) {
	card := schema.HelpCard{
		AuthorID:   "author",
		Status:     schema.CardOpen,
		AcceptedBy: []string{"helper"},
		DeclinedBy: []string{"passer"},
	}

	assert.Equal(t, ErrOwnCard, classifyDecisionFailure(card, "author", schema.DecisionAccept))
	assert.Equal(t, ErrDecisionConflict, classifyDecisionFailure(card, "helper", schema.DecisionReject))
	assert.Equal(t, ErrDecisionConflict, classifyDecisionFailure(card, "passer", schema.DecisionAccept))
	assert.NoError(t, classifyDecisionFailure(card, "helper", schema.DecisionAccept))

	card.Status = schema.CardClosed
	assert.Equal(t, ErrCardNotOpen, classifyDecisionFailure(card, "stranger", schema.DecisionAccept))
}

func TestCardFilterQuery(t *testing.T) {
	q := CardFilter{}.query()
	assert.Equal(t, bson.M{"status": schema.CardOpen}, q)

	q = CardFilter{Viewer: "v", DeckID: "deck-1", Skills: []string{"Rides"}}.query()
	assert.Equal(t, bson.M{"$ne": "v"}, q["author_id"])
	assert.Equal(t, bson.M{"$ne": "v"}, q["accepted_by"])
	assert.Equal(t, bson.M{"$ne": "v"}, q["declined_by"])
	assert.Equal(t, "deck-1", q["deck_id"])
	assert.Equal(t, bson.M{"$in": []string{"Rides"}}, q["skill"])
	assert.NotContains(t, q, "$or")

	q = CardFilter{Near: &schema.Location{Latitude: 1, Longitude: 2}, RadiusMiles: earthRadiusMiles}.query()
	or, ok := q["$or"].(bson.A)
	if assert.True(t, ok) {
		assert.Len(t, or, 2)
		assert.Equal(t, bson.M{"is_remote": true}, or[0])
	}
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(ErrCardNotFound))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.True(t, IsTransient(context.Canceled))
}

type CardTestSuite struct {
	mongoSuite
	now time.Time
}

func NewCardTestSuite(connURI, dbName string) *CardTestSuite {
	return &CardTestSuite{
		mongoSuite: mongoSuite{connURI: connURI, testDBName: dbName},
		now:        time.Now().UTC(),
	}
}

// SetupTest resets the cards before every test so each one starts from the
// same fixtures
func (s *CardTestSuite) SetupTest() {
	if _, err := s.testDatabase.Collection(schema.HelpCardCollection).DeleteMany(context.Background(), bson.M{}); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *CardTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()
	past := s.now.Add(-time.Hour)
	lat, lng := 40.7128, -74.0060

	_, err := s.testDatabase.Collection(schema.HelpCardCollection).InsertMany(ctx, []interface{}{
		schema.HelpCard{
			ID: "card-open", AuthorID: "author", Title: "ride", Skill: "Rides", Urgency: schema.UrgencyNormal,
			Status: schema.CardOpen, AcceptedBy: []string{}, DeclinedBy: []string{}, CreatedAt: s.now.Add(-3 * time.Minute),
			Latitude: &lat, Longitude: &lng, Location: schema.NewPoint(lat, lng),
		},
		schema.HelpCard{
			ID: "card-expired", AuthorID: "author", Title: "urgent", Skill: "Medical", Urgency: schema.UrgencyUrgent,
			Status: schema.CardOpen, AcceptedBy: []string{}, DeclinedBy: []string{}, CreatedAt: s.now.Add(-2 * time.Hour),
			ExpiresAt: &past,
		},
		schema.HelpCard{
			ID: "card-closed", AuthorID: "author", Title: "done", Skill: "Moving", Urgency: schema.UrgencyNormal,
			Status: schema.CardClosed, AcceptedBy: []string{}, DeclinedBy: []string{}, CreatedAt: s.now.Add(-time.Minute),
		},
		schema.HelpCard{
			ID: "card-remote", AuthorID: "other", Title: "tutoring", Skill: "Tutoring", Urgency: schema.UrgencyNormal,
			IsRemote: true, Status: schema.CardOpen, AcceptedBy: []string{}, DeclinedBy: []string{}, CreatedAt: s.now.Add(-time.Minute),
		},
	})
	return err
}

func (s *CardTestSuite) TestRecordDecisionIsIdempotent() {
	ctx := context.Background()

	card, err := s.store.RecordDecision(ctx, "viewer-a", "card-open", schema.DecisionAccept)
	s.NoError(err)
	s.Equal([]string{"viewer-a"}, card.AcceptedBy)

	card, err = s.store.RecordDecision(ctx, "viewer-a", "card-open", schema.DecisionAccept)
	s.NoError(err)
	s.Equal([]string{"viewer-a"}, card.AcceptedBy)
	s.Empty(card.DeclinedBy)
}

func (s *CardTestSuite) TestRecordDecisionNeverInBothSets() {
	ctx := context.Background()

	_, err := s.store.RecordDecision(ctx, "viewer-b", "card-open", schema.DecisionReject)
	s.NoError(err)

	_, err = s.store.RecordDecision(ctx, "viewer-b", "card-open", schema.DecisionAccept)
	s.Equal(ErrDecisionConflict, err)

	card, err := s.store.GetCard(ctx, "card-open")
	s.NoError(err)
	s.True(card.InDecisionSet(schema.DecisionReject, "viewer-b"))
	s.False(card.InDecisionSet(schema.DecisionAccept, "viewer-b"))
}

func (s *CardTestSuite) TestRecordDecisionFailures() {
	ctx := context.Background()

	_, err := s.store.RecordDecision(ctx, "viewer", "card-missing", schema.DecisionAccept)
	s.Equal(ErrCardNotFound, err)

	_, err = s.store.RecordDecision(ctx, "author", "card-open", schema.DecisionAccept)
	s.Equal(ErrOwnCard, err)

	_, err = s.store.RecordDecision(ctx, "viewer", "card-closed", schema.DecisionAccept)
	s.Equal(ErrCardNotOpen, err)
}

func (s *CardTestSuite) TestListCandidateCardsExcludesOwnAndClosed() {
	cards, err := s.store.ListCandidateCards(context.Background(), CardFilter{Viewer: "author", Limit: 10})
	s.NoError(err)

	s.Len(cards, 1)
	s.Equal("card-remote", cards[0].ID)
}

func (s *CardTestSuite) TestListCandidateCardsNearby() {
	// roughly Philadelphia, about 80 miles away from the fixture card
	origin := schema.Location{Latitude: 39.9526, Longitude: -75.1652}

	cards, err := s.store.ListCandidateCards(context.Background(), CardFilter{
		Viewer: "nobody", Near: &origin, RadiusMiles: 10,
	})
	s.NoError(err)
	s.Len(cards, 1)
	s.Equal("card-remote", cards[0].ID)

	cards, err = s.store.ListCandidateCards(context.Background(), CardFilter{
		Viewer: "nobody", Near: &origin, RadiusMiles: 100,
	})
	s.NoError(err)
	s.Len(cards, 2)
}

func (s *CardTestSuite) TestUpdateCardStatus() {
	ctx := context.Background()

	_, err := s.store.UpdateCardStatus(ctx, "other", "card-closed", schema.CardMatched)
	s.Equal(ErrNotCardAuthor, err)

	_, err = s.store.UpdateCardStatus(ctx, "author", "card-closed", schema.CardMatched)
	s.Equal(ErrCardNotOpen, err)

	_, err = s.store.UpdateCardStatus(ctx, "author", "card-missing", schema.CardMatched)
	s.Equal(ErrCardNotFound, err)
}

func (s *CardTestSuite) TestCloseExpiredCards() {
	ctx := context.Background()

	n, err := s.store.CloseExpiredCards(ctx, s.now)
	s.NoError(err)
	s.Equal(int64(1), n)

	card, err := s.store.GetCard(ctx, "card-expired")
	s.NoError(err)
	s.Equal(schema.CardClosed, card.Status)

	n, err = s.store.CloseExpiredCards(ctx, s.now)
	s.NoError(err)
	s.Equal(int64(0), n)
}

func (s *CardTestSuite) TestFixturesResetBetweenTests() {
	card, err := s.store.GetCard(context.Background(), "card-expired")
	s.NoError(err)
	s.Equal(schema.CardOpen, card.Status)

	card, err = s.store.GetCard(context.Background(), "card-open")
	s.NoError(err)
	s.Empty(card.AcceptedBy)
	s.Empty(card.DeclinedBy)
}

func TestCardTestSuite(t *testing.T) {
	suite.Run(t, NewCardTestSuite(mongoTestURI(t), testDBName))
}
