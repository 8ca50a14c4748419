// internal/search/service.go

// Package search orchestrates one search request: normalize the raw
// criteria, fetch candidates, run the predicate pipeline, sort and
// paginate. The stages themselves are pure; this layer adds storage,
// caching, logging and metrics around them.
package search

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/logger"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/common/metrics"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/models"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/filters"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/paging"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/pipeline"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/sorting"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/store"
)

// Cache is the optional result cache consumed by the service.
type Cache interface {
	Get(ctx context.Context, fingerprint string, dest interface{}) bool
	Set(ctx context.Context, fingerprint string, value interface{})
}

// Result is one executed search: the echoed canonical filters plus the
// requested page.
type Result struct {
	Filters filters.NormalizedFilters   `json:"filters"`
	Page    paging.Page[models.Listing] `json:"page"`
}

type Service struct {
	store          store.ListingStore
	cache          Cache
	candidateLimit int
	logger         logger.Logger
}

// NewService builds a search service. cache may be nil to disable
// caching.
func NewService(st store.ListingStore, cache Cache, candidateLimit int, log logger.Logger) *Service {
	return &Service{
		store:          st,
		cache:          cache,
		candidateLimit: candidateLimit,
		logger:         log.WithFields(map[string]interface{}{"component": "search-service"}),
	}
}

// Search runs the full pipeline for one raw filter input. The only
// client error it can return is filters.ErrInvalidPriceRange; store
// failures surface as-is.
func (s *Service) Search(ctx context.Context, raw any) (Result, error) {
	start := time.Now()
	log := s.logger.WithFields(map[string]interface{}{
		"requestId": uuid.NewString(),
	})

	f, err := filters.Normalize(raw)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("invalid").Inc()
		log.Warn("filter normalization rejected input", map[string]interface{}{
			"error": err.Error(),
		})
		return Result{}, err
	}

	fingerprint := f.Fingerprint()
	if s.cache != nil {
		var cached Result
		if s.cache.Get(ctx, fingerprint, &cached) {
			metrics.SearchRequests.WithLabelValues("cached").Inc()
			metrics.SearchDuration.WithLabelValues("cached").Observe(time.Since(start).Seconds())
			return cached, nil
		}
	}

	candidates, err := s.store.FindCandidates(ctx, f.Bounds, s.candidateLimit)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		log.Error("candidate fetch failed", map[string]interface{}{
			"error": err.Error(),
		})
		return Result{}, err
	}

	matched := pipeline.Apply(candidates, f)
	sorted := sorting.Sort(matched, f.Sort)
	page := paging.Paginate(sorted, f.Page, f.Limit)

	result := Result{Filters: f, Page: page}
	if s.cache != nil {
		s.cache.Set(ctx, fingerprint, result)
	}

	metrics.SearchRequests.WithLabelValues("ok").Inc()
	metrics.SearchDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	metrics.SearchResults.Observe(float64(len(page.Items)))

	log.Info("search completed", map[string]interface{}{
		"candidates": len(candidates),
		"matched":    len(matched),
		"page":       f.Page,
		"returned":   len(page.Items),
		"durationMs": time.Since(start).Milliseconds(),
	})

	return result, nil
}
