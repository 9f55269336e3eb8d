package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

var gmtOffset = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns the location of a timezone. It accepts the GMT-X and
// GMT+X:MM formats as well as IANA names like "America/New_York". It returns
// nil when the timezone is unknown.
func GetLocation(timezone string) *time.Location {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return nil
	}

	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}

	if m := gmtOffset.FindStringSubmatch(strings.ToUpper(timezone)); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil
		}

		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(strings.ToUpper(timezone), offset)
	}

	if loc, err := time.LoadLocation(timezone); err == nil {
		return loc
	}

	return nil
}
