// internal/store/store.go

// Package store supplies the candidate listing collection the search
// core filters. The store only applies a coarse bounding-box restriction;
// all precise filtering happens in the pipeline.
package store

import (
	"context"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/models"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/geo"
)

// ListingStore materializes candidate listings for one search request.
type ListingStore interface {
	// FindCandidates returns up to limit active listings, optionally
	// restricted to a coarse bounding box.
	FindCandidates(ctx context.Context, bounds *geo.Bounds, limit int) ([]models.Listing, error)
}
