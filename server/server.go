// Package server exposes the interval algebra and free/busy queries over
// HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"freebusy/interval"
	"freebusy/schedule"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	planner *schedule.Planner
}

func New(planner *schedule.Planner) *Server {
	return &Server{planner: planner}
}

// Handler returns the gin engine serving the API.
func (s *Server) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(requestLogger(), gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/v1")
	v1.POST("/algebra/:op", s.Algebra)
	v1.GET("/freebusy", s.FreeBusy)
	return engine
}

// requestLogger tags each request with an ID and logs it once served.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Warn("request failed")
			return
		}
		entry.Info("request served")
	}
}

// fail aborts the request with the status matching err.
func fail(c *gin.Context, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, schedule.ErrUnknownParty):
		return http.StatusNotFound
	case errors.Is(err, interval.ErrInvalidInterval),
		errors.Is(err, interval.ErrUnsorted),
		errors.Is(err, interval.ErrOverlap),
		errors.Is(err, interval.ErrUnclassifiable),
		errors.Is(err, interval.ErrOutOfDomain),
		errors.Is(err, interval.ErrUnknownStrategy),
		errors.Is(err, schedule.ErrUnknownMode),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

var errBadRequest = errors.New("bad request")
