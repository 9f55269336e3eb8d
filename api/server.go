package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/helpdesk-community/helpdesk-api/background"
	"github.com/helpdesk-community/helpdesk-api/feed"
	"github.com/helpdesk-community/helpdesk-api/logmodule"
	"github.com/helpdesk-community/helpdesk-api/matching"
	"github.com/helpdesk-community/helpdesk-api/metrics"
	"github.com/helpdesk-community/helpdesk-api/store"
	"github.com/helpdesk-community/helpdesk-api/utils"
)

var log *logrus.Entry

var now = time.Now

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.HelpDeskCore
	mongoStore store.MongoStore

	// Bearer token verification
	verifier TokenVerifier

	// job enqueuer
	background background.TaskSender

	matcher  *matching.Engine
	composer *feed.Composer
	metrics  *metrics.Recorder

	inviteCode func() (string, error)
}

// NewServer new instance of server
func NewServer(
	core store.HelpDeskCore,
	mongoStore store.MongoStore,
	taskSender background.TaskSender,
	verifier TokenVerifier) *Server {
	return &Server{
		store:      core,
		mongoStore: mongoStore,
		verifier:   verifier,
		background: taskSender,
		matcher:    matching.NewEngine(mongoStore),
		composer:   feed.NewComposer(mongoStore),
		metrics:    metrics.NewRecorder("helpdesk"),
		inviteCode: utils.GenerateInviteCode,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.clientVersionGateway())

	authed := apiRoute.Group("")
	authed.Use(s.authMiddleware())
	authed.Use(s.updateGeoPositionMiddleware)

	guest := apiRoute.Group("")
	guest.Use(s.optionalAuthMiddleware())

	authed.POST("/accounts", s.accountRegister)
	meRoute := authed.Group("/accounts/me")
	meRoute.Use(s.recognizeAccountMiddleware())
	{
		meRoute.GET("", s.accountDetail)
		meRoute.PATCH("", s.accountUpdate)
		meRoute.DELETE("", s.accountDelete)
		meRoute.POST("/verified", s.accountVerified)
		meRoute.GET("/decks", s.listMyDecks)
	}

	authed.GET("/profile", s.profileDetail)
	authed.PUT("/profile/skills", s.profileSetSkills)
	authed.POST("/following/:userID", s.follow)
	authed.DELETE("/following/:userID", s.unfollow)
	authed.POST("/groups/:category/membership", s.joinGroup)
	authed.DELETE("/groups/:category/membership", s.leaveGroup)
	guest.GET("/groups/:category/posts", s.groupPosts)

	authed.GET("/feed", s.homeFeed)

	authed.POST("/posts", s.createPost)
	authed.POST("/posts/:postID/like", s.likePost)
	authed.POST("/posts/:postID/share", s.sharePost)
	guest.GET("/posts/:postID/comments", s.listComments)
	authed.POST("/posts/:postID/comments", s.addComment)

	authed.POST("/cards", s.createCard)
	guest.GET("/cards", s.listCards)
	guest.GET("/cards/:cardID", s.cardDetail)
	authed.POST("/cards/:cardID/status", s.updateCardStatus)
	authed.POST("/cards/:cardID/decision", s.decideCard)

	authed.POST("/decks", s.createDeck)
	guest.GET("/decks", s.listPublicDecks)
	authed.POST("/decks/:deckID/membership", s.joinDeck)
	authed.DELETE("/decks/:deckID/membership", s.leaveDeck)
	guest.GET("/decks/:deckID/cards/count", s.deckCardCount)
	authed.POST("/invitations", s.joinDeckByInviteCode)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/cards/expire", s.adminExpireCards)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/counters", s.metricCounters)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithStoreError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "HelpDesk 1.0",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj interface{}) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

// localize translates the error message into the language the client accepts
func localize(c *gin.Context, obj ErrorResponse) ErrorResponse {
	if lang := c.GetHeader("Accept-Language"); lang != "" {
		obj.Message = utils.Translate(lang, obj.messageID(), obj.Message)
	}
	return obj
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, localize(c, obj))
	c.Abort()
}

// abortWithStoreError answers with the status and error code matching a store error
func abortWithStoreError(c *gin.Context, err error) {
	switch err {
	case store.ErrCardNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorCardNotFound, err)
	case store.ErrOwnCard:
		abortWithEncoding(c, http.StatusConflict, errorOwnCard, err)
	case store.ErrCardNotOpen:
		abortWithEncoding(c, http.StatusConflict, errorCardNotOpen, err)
	case store.ErrDecisionConflict:
		abortWithEncoding(c, http.StatusConflict, errorDecisionConflict, err)
	case store.ErrNotCardAuthor:
		abortWithEncoding(c, http.StatusForbidden, errorNotCardAuthor, err)
	case store.ErrDeckNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorDeckNotFound, err)
	case store.ErrInviteCodeExhausted:
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInviteCodeExhausted, err)
	case store.ErrPostNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorPostNotFound, err)
	case store.ErrSelfFollow:
		abortWithEncoding(c, http.StatusBadRequest, errorSelfFollow, err)
	case store.ErrAccountNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound, err)
	case store.ErrAccountTaken:
		abortWithEncoding(c, http.StatusConflict, errorAccountTaken, err)
	default:
		if store.IsTransient(err) {
			abortWithEncoding(c, http.StatusServiceUnavailable, errorServiceUnavailable, err)
			return
		}
		log.WithError(err).Error("unexpected store error")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// abortListWithStoreError is abortWithStoreError for listing endpoints. A
// transient failure still carries an empty result so clients render nothing.
func abortListWithStoreError(c *gin.Context, err error) {
	if store.IsTransient(err) {
		c.Error(err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"result": []interface{}{},
			"error":  localize(c, errorServiceUnavailable),
		})
		return
	}
	abortWithStoreError(c, err)
}
