// internal/search/pipeline/pipeline.go
package pipeline

import (
	"strings"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/models"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/filters"
)

// Predicate is a single per-field membership test.
type Predicate func(*models.Listing) bool

// Apply returns a new slice holding exactly the listings that satisfy
// every active filter field; absent fields contribute no constraint.
// The conjunction is commutative, so the result is independent of the
// order fields were supplied. It never fails for any well-formed
// NormalizedFilters, however contradictory.
func Apply(listings []models.Listing, f filters.NormalizedFilters) []models.Listing {
	preds := buildPredicates(f)

	result := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if matchesAll(&listings[i], preds) {
			result = append(result, listings[i])
		}
	}
	return result
}

func matchesAll(l *models.Listing, preds []Predicate) bool {
	for _, p := range preds {
		if !p(l) {
			return false
		}
	}
	return true
}

func buildPredicates(f filters.NormalizedFilters) []Predicate {
	var preds []Predicate

	if f.MinPrice != nil || f.MaxPrice != nil {
		preds = append(preds, pricePredicate(f.MinPrice, f.MaxPrice))
	}
	if f.RoomType != nil {
		preds = append(preds, equalsFold(string(*f.RoomType), func(l *models.Listing) string { return l.RoomType }))
	}
	if f.LeaseDuration != nil {
		preds = append(preds, equalsFold(string(*f.LeaseDuration), func(l *models.Listing) string { return l.LeaseDuration }))
	}
	if f.GenderPreference != nil {
		preds = append(preds, equalsFold(string(*f.GenderPreference), func(l *models.Listing) string { return l.GenderPreference }))
	}
	if f.HouseholdGender != nil {
		preds = append(preds, equalsFold(string(*f.HouseholdGender), func(l *models.Listing) string { return l.HouseholdGender }))
	}
	if len(f.Amenities) > 0 {
		preds = append(preds, containsAll(f.Amenities, func(l *models.Listing) []string { return l.Amenities }))
	}
	if len(f.HouseRules) > 0 {
		preds = append(preds, containsAll(f.HouseRules, func(l *models.Listing) []string { return l.HouseRules }))
	}
	if len(f.Languages) > 0 {
		preds = append(preds, matchesAnyLanguage(f.Languages))
	}
	if f.MoveInDate != nil {
		want := *f.MoveInDate
		preds = append(preds, func(l *models.Listing) bool {
			// a listing without a move-in date is available any time
			return l.MoveInDate == nil || !l.MoveInDate.After(want)
		})
	}
	if f.Bounds != nil {
		b := *f.Bounds
		preds = append(preds, func(l *models.Listing) bool {
			return b.Contains(l.Location.Lat, l.Location.Lng)
		})
	}
	if f.Query != nil {
		preds = append(preds, queryPredicate(*f.Query))
	}

	return preds
}

func pricePredicate(min, max *float64) Predicate {
	return func(l *models.Listing) bool {
		if min != nil && l.Price < *min {
			return false
		}
		if max != nil && l.Price > *max {
			return false
		}
		return true
	}
}

func equalsFold(want string, field func(*models.Listing) string) Predicate {
	return func(l *models.Listing) bool {
		return strings.EqualFold(field(l), want)
	}
}

// containsAll is the AND semantics for amenities/houseRules: every
// requested item must case-insensitively substring-match some entry of
// the listing's array, so a short token like "AC" matches a longer label
// containing it.
func containsAll(wanted []string, field func(*models.Listing) []string) Predicate {
	return func(l *models.Listing) bool {
		have := field(l)
		for _, want := range wanted {
			w := strings.ToLower(want)
			found := false
			for _, h := range have {
				if strings.Contains(strings.ToLower(h), w) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
}

// matchesAnyLanguage is the OR semantics for languages: at least one
// requested code must case-insensitively equal an entry exactly.
func matchesAnyLanguage(wanted []string) Predicate {
	return func(l *models.Listing) bool {
		for _, want := range wanted {
			for _, have := range l.Languages {
				if strings.EqualFold(have, want) {
					return true
				}
			}
		}
		return false
	}
}

func queryPredicate(query string) Predicate {
	q := strings.ToLower(query)
	return func(l *models.Listing) bool {
		return strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(l.Description), q) ||
			strings.Contains(strings.ToLower(l.City), q) ||
			strings.Contains(strings.ToLower(l.State), q)
	}
}
