package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

const (
	defaultTimeout = 5 * time.Second

	// labels cached within this distance are reused
	cacheRadiusMeters = 800
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "geo")
}

// LocationResolver - interface for naming a location
type LocationResolver interface {
	GetLocationName(context.Context, schema.Location) (string, error)
}

// LocationRecorder is implemented by resolvers able to remember names found by others
type LocationRecorder interface {
	RememberLocationName(context.Context, schema.Location, string) error
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// geocoder is the part of *maps.Client used here
type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type GeocodingLocationResolver struct {
	client geocoder
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

// GetLocationName reverse geocodes loc into "city, state, country"
func (g *GeocodingLocationResolver) GetLocationName(ctx context.Context, loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if nil != err {
		return "", err
	}

	name := locationName(geos)
	if name == "" {
		return "", ErrNoGeoInfoFound
	}

	return name, nil
}

// locationName picks city, state and country out of geocoding results
func locationName(geos []maps.GeocodingResult) string {
	var locality, postalTown, level2, level1, country string

	for _, g := range geos {
		for _, a := range g.AddressComponents {
			for _, t := range a.Types {
				switch t {
				case "locality":
					if locality == "" {
						locality = a.LongName
					}
				case "postal_town":
					if postalTown == "" {
						postalTown = a.LongName
					}
				case "administrative_area_level_2":
					if level2 == "" {
						level2 = a.LongName
					}
				case "administrative_area_level_1":
					if level1 == "" {
						level1 = a.ShortName
					}
				case "country":
					if country == "" {
						country = a.LongName
					}
				}
			}
		}
	}

	city := locality
	if city == "" {
		city = postalTown
	}
	if city == "" {
		city = level2
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{city, level1, country} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// MongodbLocationResolver reuses names resolved earlier for nearby points
type MongodbLocationResolver struct {
	client   *mongo.Client
	database string
}

func NewMongodbLocationResolver(client *mongo.Client, database string) *MongodbLocationResolver {
	return &MongodbLocationResolver{
		client:   client,
		database: database,
	}
}

func (g *MongodbLocationResolver) GetLocationName(ctx context.Context, loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var label schema.LocationLabel
	if err := g.client.Database(g.database).Collection(schema.LocationLabelCollection).FindOne(ctx, bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry":    schema.NewPoint(loc.Latitude, loc.Longitude),
				"$maxDistance": cacheRadiusMeters,
			},
		},
	}).Decode(&label); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrNoGeoInfoFound
		}
		return "", err
	}

	return label.Name, nil
}

func (g *MongodbLocationResolver) RememberLocationName(ctx context.Context, loc schema.Location, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	point := schema.NewPoint(loc.Latitude, loc.Longitude)
	_, err := g.client.Database(g.database).Collection(schema.LocationLabelCollection).UpdateOne(ctx,
		bson.M{"location": point},
		bson.M{"$set": schema.LocationLabel{
			Location:  *point,
			Name:      name,
			UpdatedAt: time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// MultipleLocationResolver asks each resolver in order. A name found by a later
// resolver is handed to the earlier ones that can remember it.
type MultipleLocationResolver struct {
	resolvers []LocationResolver
}

func NewMultipleLocationResolver(resolvers ...LocationResolver) *MultipleLocationResolver {
	return &MultipleLocationResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleLocationResolver) GetLocationName(ctx context.Context, loc schema.Location) (string, error) {
	var errors []error
	for i, resolver := range r.resolvers {
		name, err := resolver.GetLocationName(ctx, loc)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		for _, earlier := range r.resolvers[:i] {
			if recorder, ok := earlier.(LocationRecorder); ok {
				if err := recorder.RememberLocationName(ctx, loc, name); err != nil {
					log.WithError(err).Warn("remember location name")
				}
			}
		}

		return name, nil
	}

	return "", NewMultipleResolverErrors(errors)
}
