// internal/search/filters/enums.go
package filters

import "strings"

// Closed enumerations for listing attributes. Each enum has exactly one
// parse function; raw values that match no variant are dropped by the
// normalizer rather than rejected.

type RoomType string

const (
	RoomTypePrivate RoomType = "private"
	RoomTypeShared  RoomType = "shared"
	RoomTypeEntire  RoomType = "entire"
)

func ParseRoomType(raw string) (RoomType, bool) {
	switch RoomType(strings.ToLower(strings.TrimSpace(raw))) {
	case RoomTypePrivate:
		return RoomTypePrivate, true
	case RoomTypeShared:
		return RoomTypeShared, true
	case RoomTypeEntire:
		return RoomTypeEntire, true
	}
	return "", false
}

type LeaseDuration string

const (
	LeaseMonthToMonth LeaseDuration = "month-to-month"
	LeaseThreeMonths  LeaseDuration = "3-months"
	LeaseSixMonths    LeaseDuration = "6-months"
	LeaseTwelveMonths LeaseDuration = "12-months"
)

func ParseLeaseDuration(raw string) (LeaseDuration, bool) {
	switch LeaseDuration(strings.ToLower(strings.TrimSpace(raw))) {
	case LeaseMonthToMonth:
		return LeaseMonthToMonth, true
	case LeaseThreeMonths:
		return LeaseThreeMonths, true
	case LeaseSixMonths:
		return LeaseSixMonths, true
	case LeaseTwelveMonths:
		return LeaseTwelveMonths, true
	}
	return "", false
}

type GenderPreference string

const (
	GenderPrefMale   GenderPreference = "male"
	GenderPrefFemale GenderPreference = "female"
	GenderPrefAny    GenderPreference = "any"
)

func ParseGenderPreference(raw string) (GenderPreference, bool) {
	switch GenderPreference(strings.ToLower(strings.TrimSpace(raw))) {
	case GenderPrefMale:
		return GenderPrefMale, true
	case GenderPrefFemale:
		return GenderPrefFemale, true
	case GenderPrefAny:
		return GenderPrefAny, true
	}
	return "", false
}

type HouseholdGender string

const (
	HouseholdMale   HouseholdGender = "male"
	HouseholdFemale HouseholdGender = "female"
	HouseholdMixed  HouseholdGender = "mixed"
)

func ParseHouseholdGender(raw string) (HouseholdGender, bool) {
	switch HouseholdGender(strings.ToLower(strings.TrimSpace(raw))) {
	case HouseholdMale:
		return HouseholdMale, true
	case HouseholdFemale:
		return HouseholdFemale, true
	case HouseholdMixed:
		return HouseholdMixed, true
	}
	return "", false
}

type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// DefaultSort is applied when the requested key matches no variant.
const DefaultSort = SortNewest

func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPriceAsc:
		return SortPriceAsc, true
	case SortPriceDesc:
		return SortPriceDesc, true
	case SortNewest:
		return SortNewest, true
	case SortRating:
		return SortRating, true
	}
	return "", false
}

// ValidAmenities and ValidHouseRules are the canonical catalogs for the
// two enum-restricted array fields. The slices carry canonical casing;
// lookup is case-insensitive.
var ValidAmenities = []string{
	"AC", "Balcony", "Dishwasher", "Furnished", "Gym", "Heating",
	"Kitchen", "Laundry", "Parking", "Pool", "TV", "Wifi",
}

var ValidHouseRules = []string{
	"420 friendly", "Guests allowed", "No guests", "No parties",
	"No pets", "No smoking", "Pets allowed", "Quiet hours",
}

var (
	amenityCanonical   = canonicalIndex(ValidAmenities)
	houseRuleCanonical = canonicalIndex(ValidHouseRules)
)

func canonicalIndex(catalog []string) map[string]string {
	idx := make(map[string]string, len(catalog))
	for _, v := range catalog {
		idx[strings.ToLower(v)] = v
	}
	return idx
}
