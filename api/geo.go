package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	if !(schema.Location{Latitude: lat, Longitude: long}).Valid() {
		return 0, 0, fmt.Errorf("geo-position out of range")
	}

	return lat, long, nil
}

// headerLocation returns the position sent in the Geo-Position header
func headerLocation(c *gin.Context) (*schema.Location, bool) {
	gp := c.GetHeader("Geo-Position")
	if gp == "" {
		return nil, false
	}

	lat, long, err := parseGeoPosition(gp)
	if err != nil {
		return nil, false
	}

	return &schema.Location{Latitude: lat, Longitude: long}, true
}

// updateGeoPositionMiddleware is a middleware to store geo-position for every
// api requests from users
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	requester := c.GetString("requester")

	if gp != "" && requester != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			loc := schema.Location{Latitude: lat, Longitude: long}
			if err := s.mongoStore.UpdateProfileLocation(c.Request.Context(), requester, loc); err != nil {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}
