package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// createDeck is the API for creating a user deck. Private decks get an
// invite code.
func (s *Server) createDeck(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsPublic    bool   `json:"is_public"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var code string
	var regenerate func() (string, error)
	if !params.IsPublic {
		var err error
		if code, err = s.inviteCode(); shouldInterupt(err, c) {
			return
		}
		regenerate = s.inviteCode
	}

	deck := schema.NewUserDeck(requester, name, strings.TrimSpace(params.Description), params.IsPublic, code, now())

	created, err := s.mongoStore.CreateDeck(c.Request.Context(), deck, regenerate)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": created})
}

func (s *Server) listMyDecks(c *gin.Context) {
	decks, err := s.mongoStore.ListMyDecks(c.Request.Context(), c.GetString("requester"))
	if err != nil {
		abortListWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": decks})
}

// listPublicDecks lists public decks, the most populated first
func (s *Server) listPublicDecks(c *gin.Context) {
	decks, err := s.mongoStore.ListPublicDecks(c.Request.Context())
	if err != nil {
		abortListWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": decks})
}

func (s *Server) joinDeck(c *gin.Context) {
	deck, err := s.mongoStore.JoinDeck(c.Request.Context(), c.Param("deckID"), c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}
	s.metrics.DeckJoin("id")

	c.JSON(http.StatusOK, gin.H{"result": deck})
}

func (s *Server) leaveDeck(c *gin.Context) {
	deck, err := s.mongoStore.LeaveDeck(c.Request.Context(), c.Param("deckID"), c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": deck})
}

// joinDeckByInviteCode adds the requester into the private deck owning the code
func (s *Server) joinDeckByInviteCode(c *gin.Context) {
	var params struct {
		InviteCode string `json:"invite_code"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	deck, err := s.mongoStore.JoinDeckByInviteCode(c.Request.Context(), params.InviteCode, c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}
	s.metrics.DeckJoin("invite_code")

	c.JSON(http.StatusOK, gin.H{"result": deck})
}

// deckCardCount returns the number of open cards in a deck
func (s *Server) deckCardCount(c *gin.Context) {
	count, err := s.mongoStore.CountDeckCards(c.Request.Context(), c.Param("deckID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"count": count}})
}
