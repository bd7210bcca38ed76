package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"freebusy/interval"
	"freebusy/schedule"
)

// FreeBusy answers an availability query about parties a and b.
func (s *Server) FreeBusy(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := s.planner.Answer(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	if result == nil {
		result = schedule.Busy{}
	}
	c.JSON(http.StatusOK, gin.H{
		"a":      q.A,
		"b":      q.B,
		"mode":   q.Mode,
		"result": result,
	})
}

func parseQuery(c *gin.Context) (schedule.Query, error) {
	q := schedule.Query{
		A:      c.Query("a"),
		B:      c.Query("b"),
		Window: interval.TimeOfDayDomain(),
	}
	if q.A == "" || q.B == "" {
		return q, errors.Wrap(errBadRequest, "parties a and b are required")
	}

	mode, err := schedule.ParseMode(c.Query("mode"))
	if err != nil {
		return q, err
	}
	q.Mode = mode

	if from := c.Query("from"); from != "" {
		if q.Window.Min, err = interval.ParseTimeOfDay(from); err != nil {
			return q, errors.Wrap(errBadRequest, err.Error())
		}
	}
	if to := c.Query("to"); to != "" {
		if q.Window.Max, err = interval.ParseTimeOfDay(to); err != nil {
			return q, errors.Wrap(errBadRequest, err.Error())
		}
	}
	return q, nil
}
