package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/helpdesk-community/helpdesk-api/background"
	"github.com/helpdesk-community/helpdesk-api/consts"
	"github.com/helpdesk-community/helpdesk-api/matching"
	"github.com/helpdesk-community/helpdesk-api/schema"
	"github.com/helpdesk-community/helpdesk-api/utils"
)

// cardTimezone picks the zone an urgent card's day ends in
func cardTimezone(requested string) *time.Location {
	if requested != "" {
		if loc := utils.GetLocation(requested); loc != nil {
			return loc
		}
	}
	if loc := utils.GetLocation(viper.GetString("card.timezone")); loc != nil {
		return loc
	}
	return time.UTC
}

// nearbyRadius returns the radius in miles asked for, capped
func nearbyRadius(raw string) (float64, bool) {
	radius := viper.GetFloat64("card.nearby_radius_miles")
	if radius <= 0 {
		radius = consts.DefaultNearbyRadiusMiles
	}

	if raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r < 0 {
			return 0, false
		}
		radius = r
	}

	if radius > consts.MaxNearbyRadiusMiles {
		radius = consts.MaxNearbyRadiusMiles
	}
	return radius, true
}

// queryLocation parses the lat and lng query parameters
func queryLocation(c *gin.Context) (*schema.Location, bool, error) {
	lat, lng := c.Query("lat"), c.Query("lng")
	if lat == "" && lng == "" {
		return nil, false, nil
	}

	latitude, longitude, err := parseGeoPosition(lat + ";" + lng)
	if err != nil {
		return nil, false, err
	}
	return &schema.Location{Latitude: latitude, Longitude: longitude}, true, nil
}

// createCard is the API for asking help from others
func (s *Server) createCard(c *gin.Context) {
	ctx := c.Request.Context()
	requester := c.GetString("requester")

	var params struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Skill       string   `json:"skill"`
		Urgency     string   `json:"urgency"`
		IsRemote    bool     `json:"is_remote"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		DeckID      *string  `json:"deck_id"`
		Timezone    string   `json:"timezone"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	title := strings.TrimSpace(params.Title)
	skill, ok := schema.CanonicalSkill(params.Skill)
	if title == "" || !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	urgency := strings.ToLower(strings.TrimSpace(params.Urgency))
	switch urgency {
	case "":
		urgency = schema.UrgencyNormal
	case schema.UrgencyNormal, schema.UrgencyUrgent:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if (params.Latitude == nil) != (params.Longitude == nil) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if params.Latitude != nil && !(schema.Location{Latitude: *params.Latitude, Longitude: *params.Longitude}).Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.DeckID != nil && *params.DeckID != "" {
		if _, err := s.mongoStore.GetDeck(ctx, *params.DeckID); shouldInterupt(err, c) {
			return
		}
	} else {
		params.DeckID = nil
	}

	name, picture := s.author(requester)
	card := schema.NewHelpCard(schema.HelpCard{
		AuthorID:         requester,
		AuthorName:       name,
		AuthorProfilePic: picture,
		Title:            title,
		Description:      strings.TrimSpace(params.Description),
		Skill:            skill,
		Urgency:          urgency,
		IsRemote:         params.IsRemote,
		Latitude:         params.Latitude,
		Longitude:        params.Longitude,
		DeckID:           params.DeckID,
	}, now(), cardTimezone(params.Timezone))

	if err := s.mongoStore.CreateCard(ctx, card); shouldInterupt(err, c) {
		return
	}
	s.metrics.CardCreated(card.Urgency)

	if card.HasCoordinates() && !card.IsRemote && s.background != nil {
		if err := background.EnqueueResolveCardLocation(s.background, card.ID); err != nil {
			log.WithError(err).WithField("card", card.ID).Warn("enqueue location lookup")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": card})
}

// listCards is the API listing the cards a viewer can swipe in a mode
func (s *Server) listCards(c *gin.Context) {
	ctx := c.Request.Context()
	requester := c.GetString("requester")

	q := matching.Query{
		Mode:   matching.Mode(strings.ToLower(c.Query("mode"))),
		DeckID: c.Query("deck_id"),
	}

	switch q.Mode {
	case matching.ModeNearby:
		origin, ok, err := queryLocation(c)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		if !ok {
			origin, ok = headerLocation(c)
		}
		if !ok && requester != "" {
			profile, err := s.mongoStore.GetProfile(ctx, requester)
			if err != nil {
				abortListWithStoreError(c, err)
				return
			}
			if loc, found := profile.LastLocation(); found {
				origin = &loc
			}
		}
		q.Origin = origin

		radius, ok := nearbyRadius(c.Query("radius"))
		if !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		q.RadiusMiles = radius

	case matching.ModeSkills:
		if raw := c.Query("skills"); raw != "" {
			q.Skills = strings.Split(raw, ",")
		} else if requester != "" {
			profile, err := s.mongoStore.GetProfile(ctx, requester)
			if err != nil {
				abortListWithStoreError(c, err)
				return
			}
			q.Skills = profile.Skills
		}
	}

	cards, err := s.matcher.Match(ctx, requester, q)
	if err == matching.ErrInvalidQuery {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCardQuery, err)
		return
	} else if err != nil {
		abortListWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cards})
}

// cardDetail returns one card, with its distance when the client sent a position
func (s *Server) cardDetail(c *gin.Context) {
	card, err := s.mongoStore.GetCard(c.Request.Context(), c.Param("cardID"))
	if shouldInterupt(err, c) {
		return
	}

	resp := gin.H{"result": card}
	if origin, ok := headerLocation(c); ok {
		if loc, ok := card.Coordinates(); ok {
			resp["distance_miles"] = matching.DistanceMiles(*origin, loc)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// updateCardStatus lets the author mark a card matched or closed
func (s *Server) updateCardStatus(c *gin.Context) {
	var params struct {
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	status := strings.ToLower(strings.TrimSpace(params.Status))
	if status != schema.CardMatched && status != schema.CardClosed {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	card, err := s.mongoStore.UpdateCardStatus(c.Request.Context(), c.GetString("requester"), c.Param("cardID"), status)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": card})
}

// decideCard records a swipe of the requester
func (s *Server) decideCard(c *gin.Context) {
	var params struct {
		Decision schema.Decision `json:"decision"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	decision := schema.Decision(strings.ToLower(string(params.Decision)))
	if !decision.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	card, err := s.mongoStore.RecordDecision(c.Request.Context(), c.GetString("requester"), c.Param("cardID"), decision)
	if shouldInterupt(err, c) {
		return
	}
	s.metrics.Decision(string(decision))

	c.JSON(http.StatusOK, gin.H{"result": card})
}

// adminExpireCards is an internal only api to trigger the task to close
// expired urgent cards
func (s *Server) adminExpireCards(c *gin.Context) {
	if err := background.EnqueueCloseExpiredCards(s.background); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
