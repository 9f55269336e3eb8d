package store

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

const inviteCodeAttempts = 5

// DeckStore - deck membership
type DeckStore interface {
	CreateDeck(ctx context.Context, deck schema.Deck, newInviteCode func() (string, error)) (*schema.Deck, error)
	GetDeck(ctx context.Context, deckID string) (*schema.Deck, error)
	JoinDeck(ctx context.Context, deckID, viewer string) (*schema.Deck, error)
	JoinDeckByInviteCode(ctx context.Context, code, viewer string) (*schema.Deck, error)
	LeaveDeck(ctx context.Context, deckID, viewer string) (*schema.Deck, error)
	ListMyDecks(ctx context.Context, viewer string) ([]schema.Deck, error)
	ListPublicDecks(ctx context.Context) ([]schema.Deck, error)
}

// CreateDeck inserts a deck. A private deck whose invite code collides with an
// existing one gets a fresh code from newInviteCode.
func (m *mongoDB) CreateDeck(ctx context.Context, deck schema.Deck, newInviteCode func() (string, error)) (*schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.DeckCollection)

	for i := 0; i < inviteCodeAttempts; i++ {
		_, err := c.InsertOne(ctx, deck)
		if err == nil {
			return &deck, nil
		}

		if !isDuplicateKeyError(err) || deck.InviteCode == nil || newInviteCode == nil {
			return nil, err
		}

		log.WithField("prefix", mongoLogPrefix).Warnf("invite code %s already used, regenerate", *deck.InviteCode)

		code, err := newInviteCode()
		if err != nil {
			return nil, err
		}
		deck.InviteCode = &code
	}

	return nil, ErrInviteCodeExhausted
}

// GetDeck returns a deck by id
func (m *mongoDB) GetDeck(ctx context.Context, deckID string) (*schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var deck schema.Deck
	if err := m.collection(schema.DeckCollection).FindOne(ctx, bson.M{"_id": deckID}).Decode(&deck); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}

	return &deck, nil
}

// JoinDeck adds viewer into the member set of a deck
func (m *mongoDB) JoinDeck(ctx context.Context, deckID, viewer string) (*schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.updateDeck(ctx, bson.M{"_id": deckID}, bson.M{"$addToSet": bson.M{"member_ids": viewer}})
}

// JoinDeckByInviteCode adds viewer into the private deck owning the code.
// Codes are compared in upper case.
func (m *mongoDB) JoinDeckByInviteCode(ctx context.Context, code, viewer string) (*schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrDeckNotFound
	}

	return m.updateDeck(ctx, bson.M{"invite_code": code}, bson.M{"$addToSet": bson.M{"member_ids": viewer}})
}

// LeaveDeck removes viewer from the member set of a deck
func (m *mongoDB) LeaveDeck(ctx context.Context, deckID, viewer string) (*schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.updateDeck(ctx, bson.M{"_id": deckID}, bson.M{"$pull": bson.M{"member_ids": viewer}})
}

func (m *mongoDB) updateDeck(ctx context.Context, filter, update bson.M) (*schema.Deck, error) {
	var deck schema.Deck
	err := m.collection(schema.DeckCollection).FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&deck)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDeckNotFound
		}
		return nil, err
	}

	return &deck, nil
}

// ListMyDecks returns the decks viewer is a member of, newest first
func (m *mongoDB) ListMyDecks(ctx context.Context, viewer string) ([]schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := m.collection(schema.DeckCollection).Find(ctx,
		bson.M{"member_ids": viewer},
		options.Find().SetSort(bson.D{{"created_at", -1}, {"_id", 1}}),
	)
	if err != nil {
		return nil, err
	}

	decks := make([]schema.Deck, 0)
	if err := cur.All(ctx, &decks); err != nil {
		return nil, fmt.Errorf("decode decks with error: %w", err)
	}

	return decks, nil
}

// ListPublicDecks returns public decks, the most populated first
func (m *mongoDB) ListPublicDecks(ctx context.Context) ([]schema.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{"$match", bson.M{"is_public": true}}},
		bson.D{{"$addFields", bson.M{"member_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$member_ids", bson.A{}}}}}}},
		bson.D{{"$sort", bson.D{{"member_count", -1}, {"created_at", -1}, {"_id", 1}}}},
		bson.D{{"$project", bson.M{"member_count": 0}}},
	}

	cur, err := m.collection(schema.DeckCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("aggregate public decks with error: %s", err)
		return nil, err
	}

	decks := make([]schema.Deck, 0)
	if err := cur.All(ctx, &decks); err != nil {
		return nil, fmt.Errorf("decode decks with error: %w", err)
	}

	return decks, nil
}
