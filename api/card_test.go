package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/helpdesk-community/helpdesk-api/schema"
	"github.com/helpdesk-community/helpdesk-api/store"
)

func TestDecideCardUnauthenticated(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	w := ts.do("POST", "/api/cards/c1/decision", "", gin.H{"decision": "accept"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int64(1004), decodeError(t, w).Code)

	w = ts.do("POST", "/api/cards/c1/decision", "tok-unknown", gin.H{"decision": "accept"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int64(1003), decodeError(t, w).Code)
}

func TestDecideCard(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().
		RecordDecision(gomock.Any(), "bob", "c1", schema.DecisionAccept).
		Return(&schema.HelpCard{ID: "c1", Status: schema.CardOpen, AcceptedBy: []string{"bob"}, DeclinedBy: []string{}}, nil).
		Times(1)

	w := ts.do("POST", "/api/cards/c1/decision", "tok-bob", gin.H{"decision": "ACCEPT"})
	assert.Equal(t, http.StatusOK, w.Code)

	var card schema.HelpCard
	decodeResult(t, w, &card)
	assert.Equal(t, []string{"bob"}, card.AcceptedBy)

	counters := ts.metrics.Counters()
	if assert.Len(t, counters, 1) {
		assert.Equal(t, "accept", counters[0].Tags["decision"])
	}
}

func TestDecideCardInvalidDecision(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	w := ts.do("POST", "/api/cards/c1/decision", "tok-bob", gin.H{"decision": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestDecideCardStoreErrors(t *testing.T) {
	testCases := []struct {
		err       error
		status    int
		code      int64
		retryable bool
	}{
		{store.ErrCardNotFound, http.StatusNotFound, 1200, false},
		{store.ErrOwnCard, http.StatusConflict, 1201, false},
		{store.ErrCardNotOpen, http.StatusConflict, 1202, false},
		{store.ErrDecisionConflict, http.StatusConflict, 1203, false},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, 998, true},
		{fmt.Errorf("boom"), http.StatusInternalServerError, 999, false},
	}

	for _, tc := range testCases {
		ts, ctl := newTestServer(t)

		ts.mongo.EXPECT().RecordDecision(gomock.Any(), "bob", "c1", schema.DecisionReject).Return(nil, tc.err).Times(1)

		w := ts.do("POST", "/api/cards/c1/decision", "tok-bob", gin.H{"decision": "reject"})
		assert.Equal(t, tc.status, w.Code, tc.err.Error())

		e := decodeError(t, w)
		assert.Equal(t, tc.code, e.Code, tc.err.Error())
		assert.Equal(t, tc.retryable, e.Retryable, tc.err.Error())

		ctl.Finish()
	}
}

func TestListCardsUrgentForGuest(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	later := time.Now().Add(time.Hour)
	earlier := time.Now().Add(-time.Hour)
	created := time.Now().Add(-2 * time.Hour)

	ts.mongo.EXPECT().
		ListCandidateCards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f store.CardFilter) ([]schema.HelpCard, error) {
			assert.Equal(t, "", f.Viewer)
			assert.Equal(t, schema.UrgencyUrgent, f.Urgency)
			return []schema.HelpCard{
				{ID: "live", Status: schema.CardOpen, Urgency: schema.UrgencyUrgent, ExpiresAt: &later, CreatedAt: created},
				{ID: "expired", Status: schema.CardOpen, Urgency: schema.UrgencyUrgent, ExpiresAt: &earlier, CreatedAt: created},
				{ID: "normal", Status: schema.CardOpen, Urgency: schema.UrgencyNormal, CreatedAt: created},
			}, nil
		}).
		Times(1)

	w := ts.do("GET", "/api/cards?mode=urgent", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cards []schema.HelpCard
	decodeResult(t, w, &cards)
	if assert.Len(t, cards, 1) {
		assert.Equal(t, "live", cards[0].ID)
	}
}

func TestListCardsNearbyFromHeader(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().
		ListCandidateCards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f store.CardFilter) ([]schema.HelpCard, error) {
			if assert.NotNil(t, f.Near) {
				assert.Equal(t, 40.7128, f.Near.Latitude)
				assert.Equal(t, -74.006, f.Near.Longitude)
			}
			assert.Equal(t, 10.0, f.RadiusMiles)
			return []schema.HelpCard{}, nil
		}).
		Times(1)

	w := ts.do("GET", "/api/cards?mode=nearby&radius=10", "", nil, "Geo-Position", "40.7128;-74.006")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCardsInvalidQuery(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	w := ts.do("GET", "/api/cards?mode=sideways", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1205), decodeError(t, w).Code)

	w = ts.do("GET", "/api/cards?mode=nearby", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1205), decodeError(t, w).Code)

	w = ts.do("GET", "/api/cards?mode=deck", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCardsTransientFailure(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().ListCandidateCards(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded).Times(1)

	w := ts.do("GET", "/api/cards", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Result []interface{} `json:"result"`
		Error  errorBody     `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Result)
	assert.Empty(t, body.Result)
	assert.Equal(t, int64(998), body.Error.Code)
	assert.True(t, body.Error.Retryable)
}

func TestCreateUrgentCard(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.core.EXPECT().GetAccount("alice").Return(&schema.Account{ID: "alice", Name: "Alice"}, nil).Times(1)
	ts.mongo.EXPECT().
		CreateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, card schema.HelpCard) error {
			assert.Equal(t, "Alice", card.AuthorName)
			assert.Equal(t, "Rides", card.Skill)
			assert.Equal(t, schema.CardOpen, card.Status)
			if assert.NotNil(t, card.ExpiresAt) {
				local := card.ExpiresAt.In(time.FixedZone("GMT+8", 8*3600))
				assert.Equal(t, 23, local.Hour())
				assert.Equal(t, 59, local.Minute())
				assert.Equal(t, 59, local.Second())
			}
			return nil
		}).
		Times(1)
	ts.sender.EXPECT().
		SendTask(gomock.Any()).
		DoAndReturn(func(sig *tasks.Signature) (*result.AsyncResult, error) {
			assert.Equal(t, "resolve_card_location", sig.Name)
			return nil, nil
		}).
		Times(1)

	w := ts.do("POST", "/api/cards", "tok-alice", gin.H{
		"title":     "Ride to the clinic",
		"skill":     "rides",
		"urgency":   "urgent",
		"latitude":  40.7128,
		"longitude": -74.006,
		"timezone":  "GMT+8",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateCardValidation(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	for _, body := range []gin.H{
		{"title": "", "skill": "Rides"},
		{"title": "x", "skill": "Juggling"},
		{"title": "x", "skill": "Rides", "urgency": "soon"},
		{"title": "x", "skill": "Rides", "latitude": 10.0},
		{"title": "x", "skill": "Rides", "latitude": 100.0, "longitude": 0.0},
	} {
		w := ts.do("POST", "/api/cards", "tok-alice", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprint(body))
	}
}

func TestCardDetailDistance(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	lat, lng := 40.7128, -74.006
	ts.mongo.EXPECT().GetCard(gomock.Any(), "c1").Return(&schema.HelpCard{ID: "c1", Latitude: &lat, Longitude: &lng}, nil).Times(1)

	w := ts.do("GET", "/api/cards/c1", "", nil, "Geo-Position", "39.9526;-75.1652")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		DistanceMiles float64 `json:"distance_miles"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 80.6, body.DistanceMiles, 1.0)
}

func TestUpdateCardStatus(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().UpdateCardStatus(gomock.Any(), "bob", "c1", schema.CardMatched).Return(nil, store.ErrNotCardAuthor).Times(1)

	w := ts.do("POST", "/api/cards/c1/status", "tok-bob", gin.H{"status": "matched"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1204), decodeError(t, w).Code)

	w = ts.do("POST", "/api/cards/c1/status", "tok-bob", gin.H{"status": "open"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCardsSkillsWithoutProfileSkills(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().GetProfile(gomock.Any(), "bob").Return(&schema.Profile{ID: "bob", Skills: []string{}}, nil).Times(1)

	w := ts.do("GET", "/api/cards?mode=skills", "tok-bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cards []schema.HelpCard
	decodeResult(t, w, &cards)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	w = ts.do("GET", "/api/cards?mode=skills&skills=Knitting", "tok-bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decodeResult(t, w, &cards)
	assert.Empty(t, cards)
}
