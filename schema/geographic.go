package schema

import "time"

const (
	LocationLabelCollection = "locationLabels"
)

// LocationLabel caches a reverse geocoded name of a point
type LocationLabel struct {
	Location  GeoJSON   `bson:"location"`
	Name      string    `bson:"name"`
	UpdatedAt time.Time `bson:"updated_at"`
}
