package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/helpdesk-community/helpdesk-api/schema"
	"github.com/helpdesk-community/helpdesk-api/store"
)

func TestHomeFeed(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	ts.mongo.EXPECT().GetProfile(gomock.Any(), "alice").Return(&schema.Profile{
		ID:               "alice",
		JoinedGroupIDs:   []string{"doctors"},
		FollowingUserIDs: []string{},
	}, nil).Times(1)
	ts.mongo.EXPECT().
		ListPostsByCategories(gomock.Any(), []string{"doctors"}, int64(50)).
		Return([]schema.Post{
			{ID: "p1", GroupCategory: "Doctors", AuthorID: "bob", CreatedAt: created},
			{ID: "p2", GroupCategory: "Giveaway", AuthorID: "bob", CreatedAt: created},
		}, nil).
		Times(1)

	w := ts.do("GET", "/api/feed", "tok-alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []schema.Post
	decodeResult(t, w, &posts)
	if assert.Len(t, posts, 1) {
		assert.Equal(t, "p1", posts[0].ID)
	}
}

func TestGroupPostsUnknownCategory(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	w := ts.do("GET", "/api/groups/pets/posts", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1402), decodeError(t, w).Code)
}

func TestJoinGroupUsesCategoryKey(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().JoinGroup(gomock.Any(), "alice", "attorneys").Return(&schema.Profile{ID: "alice"}, nil).Times(1)

	w := ts.do("POST", "/api/groups/Attorneys/membership", "tok-alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFollowSelf(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().Follow(gomock.Any(), "alice", "alice").Return(nil, store.ErrSelfFollow).Times(1)

	w := ts.do("POST", "/api/following/alice", "tok-alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1401), decodeError(t, w).Code)
}

func TestSetSkills(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().
		SetSkills(gomock.Any(), "alice", []string{"Tech Help", "Legal"}).
		Return(&schema.Profile{ID: "alice", Skills: []string{"Tech Help", "Legal"}}, nil).
		Times(1)

	w := ts.do("PUT", "/api/profile/skills", "tok-alice", gin.H{"skills": []string{"tech help", "Legal", "LEGAL"}})
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("PUT", "/api/profile/skills", "tok-alice", gin.H{"skills": []string{"Knitting"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePost(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.core.EXPECT().GetAccount("alice").Return(nil, store.ErrAccountNotFound).Times(1)
	ts.mongo.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p schema.Post) error {
			assert.Equal(t, "Education", p.GroupCategory)
			assert.Equal(t, "education", p.CategoryKey)
			assert.Equal(t, "Unknown", p.AuthorName)
			assert.Empty(t, p.Likes)
			return nil
		}).
		Times(1)

	w := ts.do("POST", "/api/posts", "tok-alice", gin.H{
		"group_category": "education",
		"title":          "Math tutoring",
		"body":           "Free sessions on Sunday",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("POST", "/api/posts", "tok-alice", gin.H{"group_category": "pets", "title": "x", "body": "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1402), decodeError(t, w).Code)
}

func TestLikePost(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().ToggleLike(gomock.Any(), "p1", "bob").Return(&schema.Post{ID: "p1", Likes: []string{"bob"}}, nil).Times(1)
	ts.mongo.EXPECT().Unlike(gomock.Any(), "p1", "bob").Return(&schema.Post{ID: "p1", Likes: []string{}}, nil).Times(1)

	w := ts.do("POST", "/api/posts/p1/like", "tok-bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Liked bool `json:"liked"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Liked)

	w = ts.do("POST", "/api/posts/p1/like", "tok-bob", gin.H{"liked": false})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Liked)
}

func TestAddComment(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.core.EXPECT().GetAccount("bob").Return(&schema.Account{ID: "bob", Name: "Bob"}, nil).Times(1)
	ts.mongo.EXPECT().
		AddComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c schema.Comment) (*schema.Comment, error) {
			assert.Equal(t, "p-missing", c.PostID)
			return nil, store.ErrPostNotFound
		}).
		Times(1)

	w := ts.do("POST", "/api/posts/p-missing/comments", "tok-bob", gin.H{"text": "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1400), decodeError(t, w).Code)

	w = ts.do("POST", "/api/posts/p1/comments", "tok-bob", gin.H{"text": strings.Repeat("a", 2001)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do("POST", "/api/posts/p1/comments", "tok-bob", gin.H{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePrivateDeck(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().
		CreateDeck(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d schema.Deck, regenerate func() (string, error)) (*schema.Deck, error) {
			assert.Equal(t, schema.DeckUserPrivate, d.Type)
			if assert.NotNil(t, d.InviteCode) {
				assert.Equal(t, testInviteCode, *d.InviteCode)
			}
			assert.Equal(t, []string{"alice"}, d.MemberIDs)
			assert.Equal(t, []string{"alice"}, d.AdminIDs)
			assert.NotNil(t, regenerate)
			return &d, nil
		}).
		Times(1)

	w := ts.do("POST", "/api/decks", "tok-alice", gin.H{"name": "Block 12", "is_public": false})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePublicDeck(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().
		CreateDeck(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d schema.Deck, regenerate func() (string, error)) (*schema.Deck, error) {
			assert.Equal(t, schema.DeckUserPublic, d.Type)
			assert.Nil(t, d.InviteCode)
			assert.Nil(t, regenerate)
			return &d, nil
		}).
		Times(1)

	w := ts.do("POST", "/api/decks", "tok-alice", gin.H{"name": "Runners", "is_public": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("POST", "/api/decks", "tok-alice", gin.H{"name": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinDeckByInviteCode(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().JoinDeckByInviteCode(gomock.Any(), "zzzzzz", "bob").Return(nil, store.ErrDeckNotFound).Times(1)
	ts.mongo.EXPECT().JoinDeckByInviteCode(gomock.Any(), "abc234", "bob").Return(&schema.Deck{ID: "d1", MemberIDs: []string{"bob"}}, nil).Times(1)

	w := ts.do("POST", "/api/invitations", "tok-bob", gin.H{"invite_code": "zzzzzz"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1300), decodeError(t, w).Code)

	w = ts.do("POST", "/api/invitations", "tok-bob", gin.H{"invite_code": "abc234"})
	assert.Equal(t, http.StatusOK, w.Code)

	counters := ts.metrics.Counters()
	if assert.Len(t, counters, 1) {
		assert.Equal(t, "invite_code", counters[0].Tags["via"])
	}
}

func TestDeckRoutes(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.mongo.EXPECT().ListPublicDecks(gomock.Any()).Return([]schema.Deck{{ID: "d1"}}, nil).Times(1)
	ts.mongo.EXPECT().CountDeckCards(gomock.Any(), "d1").Return(int64(4), nil).Times(1)
	ts.mongo.EXPECT().LeaveDeck(gomock.Any(), "d1", "bob").Return(&schema.Deck{ID: "d1"}, nil).Times(1)
	ts.core.EXPECT().GetAccount("bob").Return(&schema.Account{ID: "bob"}, nil).Times(1)
	ts.mongo.EXPECT().ListMyDecks(gomock.Any(), "bob").Return(nil, context.DeadlineExceeded).Times(1)

	w := ts.do("GET", "/api/decks", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("GET", "/api/decks/d1/cards/count", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var count struct {
		Count int64 `json:"count"`
	}
	decodeResult(t, w, &count)
	assert.Equal(t, int64(4), count.Count)

	w = ts.do("DELETE", "/api/decks/d1/membership", "tok-bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("GET", "/api/accounts/me/decks", "tok-bob", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricCounters(t *testing.T) {
	viper.Set("server.apikey.metric", "metric-key")
	defer viper.Set("server.apikey.metric", "")

	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.metrics.FeedComposition()

	w := ts.do("GET", "/metrics/counters", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do("GET", "/metrics/counters", "", nil, "Api-Token", "metric-key")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test.feed.compositions")
}

func TestAdminExpireCards(t *testing.T) {
	viper.Set("server.apikey.admin", "admin-key")
	defer viper.Set("server.apikey.admin", "")

	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.sender.EXPECT().SendTask(gomock.Any()).Return(nil, nil).Times(1)

	w := ts.do("POST", "/secret/cards/expire", "", nil, "Api-Token", "admin-key")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthz(t *testing.T) {
	ts, ctl := newTestServer(t)
	defer ctl.Finish()

	ts.core.EXPECT().Ping().Return(nil).Times(1)
	ts.mongo.EXPECT().Ping().Return(nil).Times(1)

	w := ts.do("GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
