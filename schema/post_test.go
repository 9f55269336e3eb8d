package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	c, ok := CanonicalCategory("classifieds")
	assert.True(t, ok)
	assert.Equal(t, "Classifieds", c)

	_, ok = CanonicalCategory("sports")
	assert.False(t, ok)
}

func TestNewPost(t *testing.T) {
	p := NewPost(Post{GroupCategory: "Education", Title: "t", Body: "b"}, time.Now())

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "education", p.CategoryKey)
	assert.Equal(t, []string{}, p.Likes)
	assert.False(t, p.LikedBy("anyone"))
}

func TestNewProfileJoinsEveryCategory(t *testing.T) {
	p := NewProfile("u1")

	assert.Equal(t, "u1", p.ID)
	assert.ElementsMatch(t, []string{"classifieds", "attorneys", "doctors", "professionals", "education", "giveaway"}, p.JoinedGroupIDs)
	assert.Empty(t, p.FollowingUserIDs)

	_, ok := p.LastLocation()
	assert.False(t, ok)
}

func TestNewUserDeck(t *testing.T) {
	public := NewUserDeck("creator", "Book club", "", true, "", time.Now())
	assert.Equal(t, DeckUserPublic, public.Type)
	assert.Nil(t, public.InviteCode)
	assert.Equal(t, []string{"creator"}, public.AdminIDs)
	assert.True(t, public.HasMember("creator"))

	private := NewUserDeck("creator", "Neighbours", "", false, "ABC234", time.Now())
	assert.Equal(t, DeckUserPrivate, private.Type)
	if assert.NotNil(t, private.InviteCode) {
		assert.Equal(t, "ABC234", *private.InviteCode)
	}
}
