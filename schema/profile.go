package schema

import (
	"time"
)

const (
	ProfileCollection = "profiles"
)

// Profile - the social context of a user: who they follow, which boards they
// joined and where they were last seen
type Profile struct {
	ID               string    `json:"id" bson:"_id"`
	FollowingUserIDs []string  `json:"following_user_ids" bson:"following_user_ids"`
	JoinedGroupIDs   []string  `json:"joined_group_ids" bson:"joined_group_ids"`
	BlockedUserIDs   []string  `json:"blocked_user_ids" bson:"blocked_user_ids"`
	Skills           []string  `json:"skills" bson:"skills"`
	Location         *GeoJSON  `json:"-" bson:"location,omitempty"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}

// NewProfile returns the profile a user starts with. Every group category is
// joined by default.
func NewProfile(userID string) Profile {
	joined := make([]string, 0, len(GroupCategories))
	for _, c := range GroupCategories {
		joined = append(joined, CategoryKey(c))
	}

	return Profile{
		ID:               userID,
		FollowingUserIDs: []string{},
		JoinedGroupIDs:   joined,
		BlockedUserIDs:   []string{},
		Skills:           []string{},
		UpdatedAt:        time.Now().UTC(),
	}
}

// LastLocation returns the last reported position if any
func (p Profile) LastLocation() (Location, bool) {
	if p.Location == nil || len(p.Location.Coordinates) != 2 {
		return Location{}, false
	}
	return Location{
		Longitude: p.Location.Coordinates[0],
		Latitude:  p.Location.Coordinates[1],
	}, true
}

// Location is a plain latitude / longitude pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are within range
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// NewPoint builds a GeoJSON point. GeoJSON stores longitude first.
func NewPoint(latitude, longitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}
