package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// metricCounters reports the counters recorded since the server started
func (s *Server) metricCounters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"counters": s.metrics.Counters(),
	})
}
