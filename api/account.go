package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	identity := requesterIdentity(c)

	var params struct {
		Email             string  `json:"email"`
		Name              string  `json:"name"`
		ProfilePictureURL *string `json:"profile_picture_url"`
	}

	if err := c.ShouldBindJSON(&params); err != nil && c.Request.ContentLength > 0 {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	email := strings.TrimSpace(params.Email)
	if email == "" {
		email = identity.Email
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = identity.Name
	}
	picture := params.ProfilePictureURL
	if picture == nil {
		picture = identity.Picture
	}

	a, err := s.store.CreateAccount(identity.UID, email, name, picture, identity.EmailVerified)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if err := s.store.TouchLastSeen(account.ID); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdate is the API to update the display name or the picture of a user
func (s *Server) accountUpdate(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name              *string `json:"name"`
		ProfilePictureURL *string `json:"profile_picture_url"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		fields["name"] = name
	}
	if params.ProfilePictureURL != nil {
		fields["profile_picture_url"] = *params.ProfilePictureURL
	}

	account, err := s.store.UpdateAccount(requester, fields)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

// accountVerified marks the email of the account verified once the identity
// provider says so
func (s *Server) accountVerified(c *gin.Context) {
	identity := requesterIdentity(c)
	if !identity.EmailVerified {
		abortWithEncoding(c, http.StatusBadRequest, errorEmailNotVerified)
		return
	}

	if err := s.store.MarkEmailVerified(identity.UID); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.mongoStore.DeleteProfile(c.Request.Context(), requester); shouldInterupt(err, c) {
		return
	}

	if err := s.store.DeleteAccount(requester); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// author returns the display name and picture stamped on new content
func (s *Server) author(uid string) (string, *string) {
	account, err := s.store.GetAccount(uid)
	if err != nil {
		return (*schema.Account)(nil).DisplayName(), nil
	}
	return account.DisplayName(), account.ProfilePictureURL
}
