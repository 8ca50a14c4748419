// internal/search/sorting/sorting.go
package sorting

import (
	"sort"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/models"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/filters"
)

// Sort returns a new slice ordered by the requested key. The input is
// never mutated and the sort is stable: ties keep their original relative
// order, which pagination consistency depends on. An unknown key falls
// back to the default ordering.
func Sort(listings []models.Listing, key filters.SortKey) []models.Listing {
	sorted := make([]models.Listing, len(listings))
	copy(sorted, listings)

	switch key {
	case filters.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case filters.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case filters.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return rating(sorted[i]) > rating(sorted[j])
		})
	default: // filters.SortNewest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}

// rating treats an unrated listing as 0 so it sorts below any rated one.
func rating(l models.Listing) float64 {
	if l.AvgRating == nil {
		return 0
	}
	return *l.AvgRating
}
