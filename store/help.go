package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// earthRadiusMiles converts a distance in miles into radians for $centerSphere
const earthRadiusMiles = 3958.8

// CardStore - help card persistence and swipe decisions
type CardStore interface {
	CreateCard(ctx context.Context, card schema.HelpCard) error
	GetCard(ctx context.Context, cardID string) (*schema.HelpCard, error)
	ListCandidateCards(ctx context.Context, filter CardFilter) ([]schema.HelpCard, error)
	RecordDecision(ctx context.Context, viewer, cardID string, decision schema.Decision) (*schema.HelpCard, error)
	UpdateCardStatus(ctx context.Context, author, cardID, status string) (*schema.HelpCard, error)
	SetCardLocationName(ctx context.Context, cardID, name string) error
	CloseExpiredCards(ctx context.Context, now time.Time) (int64, error)
	CountDeckCards(ctx context.Context, deckID string) (int64, error)
}

// CardFilter narrows the open cards returned by ListCandidateCards. Every
// field is optional and only reduces the candidate set.
type CardFilter struct {
	Viewer       string
	Urgency      string
	ExpiresAfter *time.Time
	DeckID       string
	Skills       []string
	Near         *schema.Location
	RadiusMiles  float64
	Limit        int64
}

func (f CardFilter) query() bson.M {
	query := bson.M{"status": schema.CardOpen}

	if f.Viewer != "" {
		query["author_id"] = bson.M{"$ne": f.Viewer}
		query["accepted_by"] = bson.M{"$ne": f.Viewer}
		query["declined_by"] = bson.M{"$ne": f.Viewer}
	}

	if f.Urgency != "" {
		query["urgency"] = f.Urgency
	}

	if f.DeckID != "" {
		query["deck_id"] = f.DeckID
	}

	if len(f.Skills) > 0 {
		query["skill"] = bson.M{"$in": f.Skills}
	}

	or := bson.A{}
	if f.ExpiresAfter != nil {
		or = append(or,
			bson.M{"expires_at": nil},
			bson.M{"expires_at": bson.M{"$gt": *f.ExpiresAfter}},
		)
	}

	if f.Near != nil {
		or = append(or,
			bson.M{"is_remote": true},
			bson.M{"location": bson.M{
				"$geoWithin": bson.M{
					"$centerSphere": bson.A{
						bson.A{f.Near.Longitude, f.Near.Latitude},
						f.RadiusMiles / earthRadiusMiles,
					},
				},
			}},
		)
	}

	// urgency and location never apply together, so a single $or is enough
	if len(or) > 0 {
		query["$or"] = or
	}

	return query
}

// CreateCard inserts a new help card
func (m *mongoDB) CreateCard(ctx context.Context, card schema.HelpCard) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.HelpCardCollection).InsertOne(ctx, card); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert help card")
		return err
	}

	return nil
}

// GetCard returns a help card by id
func (m *mongoDB) GetCard(ctx context.Context, cardID string) (*schema.HelpCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var card schema.HelpCard
	if err := m.collection(schema.HelpCardCollection).FindOne(ctx, bson.M{"_id": cardID}).Decode(&card); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return &card, nil
}

// ListCandidateCards returns the newest open cards matching the filter
func (m *mongoDB) ListCandidateCards(ctx context.Context, filter CardFilter) ([]schema.HelpCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{"created_at", -1}, {"_id", 1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cur, err := m.collection(schema.HelpCardCollection).Find(ctx, filter.query(), opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query candidate cards with error: %s", err)
		return nil, err
	}

	cards := make([]schema.HelpCard, 0)
	if err := cur.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("decode help cards with error: %w", err)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("candidate cards: %d", len(cards))

	return cards, nil
}

// RecordDecision adds viewer into the accepted or declined set of an open
// card. The viewer is never added when already present in the other set.
func (m *mongoDB) RecordDecision(ctx context.Context, viewer, cardID string, decision schema.Decision) (*schema.HelpCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.recordDecision(ctx, viewer, cardID, decision, true)
}

func (m *mongoDB) recordDecision(ctx context.Context, viewer, cardID string, decision schema.Decision, retry bool) (*schema.HelpCard, error) {
	c := m.collection(schema.HelpCardCollection)

	filter := bson.M{
		"_id":                       cardID,
		"status":                    schema.CardOpen,
		"author_id":                 bson.M{"$ne": viewer},
		decision.Opposite().Field(): bson.M{"$ne": viewer},
	}
	update := bson.M{"$addToSet": bson.M{decision.Field(): viewer}}

	var card schema.HelpCard
	err := c.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&card)
	if err == nil {
		return &card, nil
	}

	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	if err := c.FindOne(ctx, bson.M{"_id": cardID}).Decode(&card); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	if err := classifyDecisionFailure(card, viewer, decision); err != nil {
		return nil, err
	}

	// the card changed between the two reads and now accepts the decision
	if retry {
		return m.recordDecision(ctx, viewer, cardID, decision, false)
	}
	return nil, ErrDecisionConflict
}

// classifyDecisionFailure explains why a decision update did not match the card
func classifyDecisionFailure(card schema.HelpCard, viewer string, decision schema.Decision) error {
	switch {
	case card.AuthorID == viewer:
		return ErrOwnCard
	case card.Status != schema.CardOpen:
		return ErrCardNotOpen
	case card.InDecisionSet(decision.Opposite(), viewer):
		return ErrDecisionConflict
	}
	return nil
}

// UpdateCardStatus moves an open card into another status. Only the author can do that.
func (m *mongoDB) UpdateCardStatus(ctx context.Context, author, cardID, status string) (*schema.HelpCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.HelpCardCollection)

	var card schema.HelpCard
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": cardID, "author_id": author, "status": schema.CardOpen},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&card)
	if err == nil {
		return &card, nil
	}

	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	if err := c.FindOne(ctx, bson.M{"_id": cardID}).Decode(&card); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	if card.AuthorID != author {
		return nil, ErrNotCardAuthor
	}

	return nil, ErrCardNotOpen
}

// SetCardLocationName stores the reverse geocoded label of a card
func (m *mongoDB) SetCardLocationName(ctx context.Context, cardID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.HelpCardCollection).UpdateOne(ctx,
		bson.M{"_id": cardID},
		bson.M{"$set": bson.M{"location_name": name}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrCardNotFound
	}

	return nil
}

// CloseExpiredCards closes every open urgent card whose expiry has passed
func (m *mongoDB) CloseExpiredCards(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.HelpCardCollection).UpdateMany(ctx,
		bson.M{
			"status":     schema.CardOpen,
			"urgency":    schema.UrgencyUrgent,
			"expires_at": bson.M{"$lt": now.UTC()},
		},
		bson.M{"$set": bson.M{"status": schema.CardClosed}},
	)
	if err != nil {
		return 0, err
	}

	log.WithField("prefix", mongoLogPrefix).Infof("closed %d expired urgent cards", result.ModifiedCount)

	return result.ModifiedCount, nil
}

// CountDeckCards returns the number of open cards scoped to a deck
func (m *mongoDB) CountDeckCards(ctx context.Context, deckID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.collection(schema.HelpCardCollection).CountDocuments(ctx, bson.M{
		"deck_id": deckID,
		"status":  schema.CardOpen,
	})
}
