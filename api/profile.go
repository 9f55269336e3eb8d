package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

func (s *Server) profileDetail(c *gin.Context) {
	profile, err := s.mongoStore.GetProfile(c.Request.Context(), c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// profileSetSkills replaces the skills the requester offers
func (s *Server) profileSetSkills(c *gin.Context) {
	var params struct {
		Skills []string `json:"skills"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	skills := make([]string, 0, len(params.Skills))
	seen := map[string]bool{}
	for _, skill := range params.Skills {
		canonical, ok := schema.CanonicalSkill(skill)
		if !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		if !seen[canonical] {
			seen[canonical] = true
			skills = append(skills, canonical)
		}
	}

	profile, err := s.mongoStore.SetSkills(c.Request.Context(), c.GetString("requester"), skills)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

func (s *Server) follow(c *gin.Context) {
	profile, err := s.mongoStore.Follow(c.Request.Context(), c.GetString("requester"), c.Param("userID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

func (s *Server) unfollow(c *gin.Context) {
	profile, err := s.mongoStore.Unfollow(c.Request.Context(), c.GetString("requester"), c.Param("userID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

// groupCategory validates the :category path parameter
func groupCategory(c *gin.Context) (string, bool) {
	category, ok := schema.CanonicalCategory(c.Param("category"))
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory)
		return "", false
	}
	return category, true
}

func (s *Server) joinGroup(c *gin.Context) {
	category, ok := groupCategory(c)
	if !ok {
		return
	}

	profile, err := s.mongoStore.JoinGroup(c.Request.Context(), c.GetString("requester"), schema.CategoryKey(category))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

func (s *Server) leaveGroup(c *gin.Context) {
	category, ok := groupCategory(c)
	if !ok {
		return
	}

	profile, err := s.mongoStore.LeaveGroup(c.Request.Context(), c.GetString("requester"), schema.CategoryKey(category))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}
