package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-community/helpdesk-api/consts"
	"github.com/helpdesk-community/helpdesk-api/schema"
)

// createPost is the API to publish a post on a group board
func (s *Server) createPost(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		GroupCategory string  `json:"group_category"`
		GroupID       string  `json:"group_id"`
		Title         string  `json:"title"`
		Body          string  `json:"body"`
		ImageURL      *string `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	category, ok := schema.CanonicalCategory(params.GroupCategory)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory)
		return
	}

	title := strings.TrimSpace(params.Title)
	body := strings.TrimSpace(params.Body)
	if title == "" || body == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	groupID := params.GroupID
	if groupID == "" {
		groupID = schema.CategoryKey(category)
	}

	name, picture := s.author(requester)
	post := schema.NewPost(schema.Post{
		GroupID:          groupID,
		GroupCategory:    category,
		AuthorID:         requester,
		AuthorName:       name,
		AuthorProfilePic: picture,
		Title:            title,
		Body:             body,
		ImageURL:         params.ImageURL,
	}, now())

	if err := s.mongoStore.CreatePost(c.Request.Context(), post); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": post})
}

// likePost toggles the like of the requester. Sending `{"liked": true|false}`
// sets the state instead of flipping it.
func (s *Server) likePost(c *gin.Context) {
	ctx := c.Request.Context()
	requester := c.GetString("requester")
	postID := c.Param("postID")

	var params struct {
		Liked *bool `json:"liked"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&params); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
	}

	var post *schema.Post
	var err error
	switch {
	case params.Liked == nil:
		post, err = s.mongoStore.ToggleLike(ctx, postID, requester)
	case *params.Liked:
		post, err = s.mongoStore.Like(ctx, postID, requester)
	default:
		post, err = s.mongoStore.Unlike(ctx, postID, requester)
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": post,
		"liked":  post.LikedBy(requester),
	})
}

func (s *Server) sharePost(c *gin.Context) {
	post, err := s.mongoStore.IncrementShare(c.Request.Context(), c.Param("postID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": post})
}

// listComments lists the comments of a post, oldest first
func (s *Server) listComments(c *gin.Context) {
	comments, err := s.mongoStore.ListComments(c.Request.Context(), c.Param("postID"))
	if err != nil {
		abortListWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": comments})
}

func (s *Server) addComment(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	text := strings.TrimSpace(params.Text)
	if text == "" || utf8.RuneCountInString(text) > consts.CommentMaxLength {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	name, picture := s.author(requester)
	comment := schema.NewComment(schema.Comment{
		PostID:           c.Param("postID"),
		AuthorID:         requester,
		AuthorName:       name,
		AuthorProfilePic: picture,
		Text:             text,
	}, now())

	saved, err := s.mongoStore.AddComment(c.Request.Context(), comment)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": saved})
}
