// internal/api/router.go

// Package api is the HTTP boundary of the search service: it
// deserializes query parameters or JSON bodies into raw filter input,
// resolves parameter aliases, and renders the resulting page together
// with the echoed canonical filters.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/Suryateja-byte/Roomshare-sub010/internal/common/errors"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/logger"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/observability"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/filters"
)

type Server struct {
	service *search.Service
	obs     *observability.Observability
	logger  logger.Logger
}

func NewServer(service *search.Service, obs *observability.Observability, log logger.Logger) *Server {
	return &Server{
		service: service,
		obs:     obs,
		logger:  log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/search", s.handleSearchGet)
	v1.POST("/search", s.handleSearchPost)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearchGet(c *gin.Context) {
	raw := RawFromQuery(c.Request.URL.Query())
	s.runSearch(c, raw)
}

func (s *Server) handleSearchPost(c *gin.Context) {
	// An unparseable body degrades to an unconstrained search rather
	// than a failure; only the inverted price range is a client error.
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		raw = nil
	}
	s.runSearch(c, ResolveAliases(raw))
}

func (s *Server) runSearch(c *gin.Context, raw map[string]interface{}) {
	start := time.Now()

	result, err := s.service.Search(c.Request.Context(), raw)
	if err != nil {
		s.writeError(c, err)
		s.obs.RecordSearch(c.Request.Context(), "error")
		s.obs.RecordSearchDuration(c.Request.Context(), time.Since(start), "error")
		return
	}

	s.obs.RecordSearch(c.Request.Context(), "ok")
	s.obs.RecordSearchDuration(c.Request.Context(), time.Since(start), "ok")
	c.JSON(http.StatusOK, result)
}

func (s *Server) writeError(c *gin.Context, err error) {
	var stdErr *apperrors.StandardError
	switch {
	case errors.Is(err, filters.ErrInvalidPriceRange):
		stdErr = apperrors.NewInvalidPriceRangeError(err.Error())
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		stdErr = apperrors.NewSearchTimeoutError(err.Error())
	default:
		stdErr = apperrors.NewListingFetchFailedError(err.Error())
	}

	s.logger.Error("search request failed", map[string]interface{}{
		"code":  stdErr.Code,
		"error": err.Error(),
	})
	c.JSON(stdErr.HTTPStatus(), gin.H{"error": stdErr})
}
