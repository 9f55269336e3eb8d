package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// ProfileStore - the social context of a viewer
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*schema.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
	Follow(ctx context.Context, userID, targetID string) (*schema.Profile, error)
	Unfollow(ctx context.Context, userID, targetID string) (*schema.Profile, error)
	JoinGroup(ctx context.Context, userID, categoryKey string) (*schema.Profile, error)
	LeaveGroup(ctx context.Context, userID, categoryKey string) (*schema.Profile, error)
	SetSkills(ctx context.Context, userID string, skills []string) (*schema.Profile, error)
	UpdateProfileLocation(ctx context.Context, userID string, loc schema.Location) error
}

// ensureProfile creates the default profile of a user when missing
func (m *mongoDB) ensureProfile(ctx context.Context, userID string) error {
	p := schema.NewProfile(userID)

	_, err := m.collection(schema.ProfileCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"following_user_ids": p.FollowingUserIDs,
			"joined_group_ids":   p.JoinedGroupIDs,
			"blocked_user_ids":   p.BlockedUserIDs,
			"skills":             p.Skills,
			"updated_at":         p.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetProfile returns the profile of a user, creating the default one on first access
func (m *mongoDB) GetProfile(ctx context.Context, userID string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := m.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	var p schema.Profile
	if err := m.collection(schema.ProfileCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// DeleteProfile removes the profile of a user
func (m *mongoDB) DeleteProfile(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.ProfileCollection).DeleteOne(ctx, bson.M{"_id": userID})
	return err
}

// Follow adds targetID into the following set of userID
func (m *mongoDB) Follow(ctx context.Context, userID, targetID string) (*schema.Profile, error) {
	if userID == targetID {
		return nil, ErrSelfFollow
	}
	return m.updateProfile(ctx, userID, bson.M{"$addToSet": bson.M{"following_user_ids": targetID}})
}

// Unfollow removes targetID from the following set of userID
func (m *mongoDB) Unfollow(ctx context.Context, userID, targetID string) (*schema.Profile, error) {
	return m.updateProfile(ctx, userID, bson.M{"$pull": bson.M{"following_user_ids": targetID}})
}

// JoinGroup adds a case-folded category into the joined groups
func (m *mongoDB) JoinGroup(ctx context.Context, userID, categoryKey string) (*schema.Profile, error) {
	return m.updateProfile(ctx, userID, bson.M{"$addToSet": bson.M{"joined_group_ids": categoryKey}})
}

// LeaveGroup removes a case-folded category from the joined groups
func (m *mongoDB) LeaveGroup(ctx context.Context, userID, categoryKey string) (*schema.Profile, error) {
	return m.updateProfile(ctx, userID, bson.M{"$pull": bson.M{"joined_group_ids": categoryKey}})
}

// SetSkills replaces the skills a user offers
func (m *mongoDB) SetSkills(ctx context.Context, userID string, skills []string) (*schema.Profile, error) {
	if skills == nil {
		skills = []string{}
	}
	return m.updateProfile(ctx, userID, bson.M{"$set": bson.M{"skills": skills}})
}

// UpdateProfileLocation records the last reported position of a user
func (m *mongoDB) UpdateProfileLocation(ctx context.Context, userID string, loc schema.Location) error {
	_, err := m.updateProfile(ctx, userID, bson.M{"$set": bson.M{
		"location": schema.NewPoint(loc.Latitude, loc.Longitude),
	}})
	return err
}

func (m *mongoDB) updateProfile(ctx context.Context, userID string, update bson.M) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := m.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	if set, ok := update["$set"].(bson.M); ok {
		set["updated_at"] = time.Now().UTC()
	} else {
		update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	}

	var p schema.Profile
	err := m.collection(schema.ProfileCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// deleted between the two calls
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &p, nil
}
