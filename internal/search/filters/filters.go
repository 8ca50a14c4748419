// internal/search/filters/filters.go
package filters

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/geo"
)

// Domain ceilings for numeric filter fields.
const (
	MaxSafePrice    = 1_000_000.0
	MaxSafePage     = 10_000
	MaxPageSize     = 50
	DefaultPage     = 1
	DefaultPageSize = 20
)

// ErrInvalidPriceRange is the single hard validation failure: an
// explicitly supplied minPrice greater than an explicitly supplied
// maxPrice. Every other malformed field degrades to "no constraint".
var ErrInvalidPriceRange = errors.New("minPrice cannot exceed maxPrice")

// NormalizedFilters is the canonical output of Normalize. A nil pointer
// or nil slice means the field imposes no constraint. Sort, Page and
// Limit are always set.
type NormalizedFilters struct {
	Query            *string           `json:"query,omitempty"`
	MinPrice         *float64          `json:"minPrice,omitempty"`
	MaxPrice         *float64          `json:"maxPrice,omitempty"`
	RoomType         *RoomType         `json:"roomType,omitempty"`
	Amenities        []string          `json:"amenities,omitempty"`
	HouseRules       []string          `json:"houseRules,omitempty"`
	Languages        []string          `json:"languages,omitempty"`
	LeaseDuration    *LeaseDuration    `json:"leaseDuration,omitempty"`
	MoveInDate       *time.Time        `json:"moveInDate,omitempty"`
	GenderPreference *GenderPreference `json:"genderPreference,omitempty"`
	HouseholdGender  *HouseholdGender  `json:"householdGender,omitempty"`
	Bounds           *geo.Bounds       `json:"bounds,omitempty"`
	Sort             SortKey           `json:"sort"`
	Page             int               `json:"page"`
	Limit            int               `json:"limit"`
}

// Default returns a NormalizedFilters with no constraints and default
// sort/pagination.
func Default() NormalizedFilters {
	return NormalizedFilters{
		Sort:  DefaultSort,
		Page:  DefaultPage,
		Limit: DefaultPageSize,
	}
}

// Fingerprint returns a stable digest of the filter value. Equal
// normalized filters always produce equal fingerprints, since array
// fields are canonically ordered and struct encoding order is fixed.
func (f NormalizedFilters) Fingerprint() string {
	data, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
