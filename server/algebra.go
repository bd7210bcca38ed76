package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"freebusy/interval"
)

type algebraRequest struct {
	A        interval.Set[int64]     `json:"a"`
	B        interval.Set[int64]     `json:"b"`
	Strategy string                  `json:"strategy"`
	Domain   *interval.Domain[int64] `json:"domain"`
}

// Algebra applies the operation named by the :op path parameter to the
// integer sets in the request body.
func (s *Server) Algebra(c *gin.Context) {
	var req algebraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errors.Wrap(errBadRequest, err.Error()))
		return
	}

	strategy := s.planner.Strategy()
	if req.Strategy != "" {
		var err error
		if strategy, err = interval.ParseStrategy(req.Strategy); err != nil {
			fail(c, err)
			return
		}
	}
	domain := interval.IntegerDomain()
	if req.Domain != nil {
		domain = *req.Domain
	}

	var (
		result interval.Set[int64]
		err    error
	)
	switch op := c.Param("op"); op {
	case "invert":
		result, err = interval.Invert(req.A, domain)
	case "union":
		result, err = interval.Union(req.A, req.B)
	case "intersect":
		result, err = interval.IntersectWith(req.A, req.B, strategy)
	case "subtract":
		result, err = interval.SubtractWith(req.A, req.B, domain, strategy)
	default:
		fail(c, errors.Wrapf(errBadRequest, "unknown operation %q", op))
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	if result == nil {
		result = interval.Set[int64]{}
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
