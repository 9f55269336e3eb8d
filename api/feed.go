package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-community/helpdesk-api/feed"
)

// homeFeed is the API for the posts of joined groups and followed users
func (s *Server) homeFeed(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := s.mongoStore.GetProfile(ctx, c.GetString("requester"))
	if err != nil {
		abortListWithStoreError(c, err)
		return
	}

	posts, err := s.composer.Compose(ctx, feed.NewViewer(profile))
	if err != nil {
		abortListWithStoreError(c, err)
		return
	}
	s.metrics.FeedComposition()

	c.JSON(http.StatusOK, gin.H{"result": posts})
}

// groupPosts lists the posts of one group board
func (s *Server) groupPosts(c *gin.Context) {
	category, ok := groupCategory(c)
	if !ok {
		return
	}

	posts, err := s.composer.GroupPosts(c.Request.Context(), category)
	if err != nil {
		abortListWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": posts})
}
