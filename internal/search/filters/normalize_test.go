// internal/search/filters/normalize_test.go
package filters

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func mustNormalize(t *testing.T, raw any) NormalizedFilters {
	t.Helper()
	f, err := Normalize(raw)
	require.NoError(t, err)
	return f
}

func floatPtr(v float64) *float64 { return &v }

// ==========================
// Core Functionality Tests
// ==========================

func TestNormalize_Empty(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil input", nil},
		{"empty map", map[string]any{}},
		{"non-object string", "not an object"},
		{"non-object number", 42},
		{"non-object bool", true},
		{"slice input", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, tt.raw)
			assert.Equal(t, Default(), f)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	f := mustNormalize(t, map[string]any{})
	assert.Equal(t, DefaultSort, f.Sort)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultPageSize, f.Limit)
	assert.Nil(t, f.Query)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.Bounds)
}

func TestNormalize_Query(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want *string
	}{
		{"valid query sanitized", "sunny room", strPtr("sunny room")},
		{"hostile query stripped", "room'; DROP TABLE--", strPtr("room DROP TABLE")},
		{"too short after cleaning", "a'", nil},
		{"empty string", "", nil},
		{"non-string dropped", 12345, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, map[string]any{"query": tt.raw})
			if tt.want == nil {
				assert.Nil(t, f.Query)
			} else {
				require.NotNil(t, f.Query)
				assert.Equal(t, *tt.want, *f.Query)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestNormalize_PriceCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want *float64
	}{
		{"plain number", 750.0, floatPtr(750)},
		{"integer", 750, floatPtr(750)},
		{"numeric string", "750", floatPtr(750)},
		{"negative clamped to zero", -50.0, floatPtr(0)},
		{"above ceiling clamped", 5e9, floatPtr(MaxSafePrice)},
		{"NaN dropped", math.NaN(), nil},
		{"Inf dropped", math.Inf(1), nil},
		{"non-numeric string dropped", "cheap", nil},
		{"bool dropped", true, nil},
		{"nil dropped", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, map[string]any{"minPrice": tt.raw})
			if tt.want == nil {
				assert.Nil(t, f.MinPrice)
			} else {
				require.NotNil(t, f.MinPrice)
				assert.Equal(t, *tt.want, *f.MinPrice)
			}
		})
	}
}

func TestNormalize_InvertedPriceRangeFails(t *testing.T) {
	_, err := Normalize(map[string]any{"minPrice": 2000, "maxPrice": 1000})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPriceRange)
	assert.Contains(t, err.Error(), "minPrice cannot exceed maxPrice")
}

func TestNormalize_PriceRangeEdgeCases(t *testing.T) {
	// equal min and max is allowed
	f := mustNormalize(t, map[string]any{"minPrice": 1000, "maxPrice": 1000})
	assert.Equal(t, 1000.0, *f.MinPrice)
	assert.Equal(t, 1000.0, *f.MaxPrice)

	// an uncoercible max means the range conflict cannot be explicit
	f = mustNormalize(t, map[string]any{"minPrice": 2000, "maxPrice": "nonsense"})
	assert.Equal(t, 2000.0, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)

	// min alone is fine
	f = mustNormalize(t, map[string]any{"minPrice": 2000})
	assert.Equal(t, 2000.0, *f.MinPrice)
}

func TestNormalize_EnumFields(t *testing.T) {
	f := mustNormalize(t, map[string]any{
		"roomType":         "PRIVATE",
		"leaseDuration":    " 6-Months ",
		"genderPreference": "Any",
		"householdGender":  "mixed",
	})

	require.NotNil(t, f.RoomType)
	assert.Equal(t, RoomTypePrivate, *f.RoomType)
	require.NotNil(t, f.LeaseDuration)
	assert.Equal(t, LeaseSixMonths, *f.LeaseDuration)
	require.NotNil(t, f.GenderPreference)
	assert.Equal(t, GenderPrefAny, *f.GenderPreference)
	require.NotNil(t, f.HouseholdGender)
	assert.Equal(t, HouseholdMixed, *f.HouseholdGender)
}

func TestNormalize_UnknownEnumValuesDropped(t *testing.T) {
	f := mustNormalize(t, map[string]any{
		"roomType":         "castle",
		"leaseDuration":    "forever",
		"genderPreference": 42,
		"householdGender":  nil,
	})

	assert.Nil(t, f.RoomType)
	assert.Nil(t, f.LeaseDuration)
	assert.Nil(t, f.GenderPreference)
	assert.Nil(t, f.HouseholdGender)
}

func TestNormalize_Amenities(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{"dedup and canonical order", []any{"Wifi", "Wifi", "AC"}, []string{"AC", "Wifi"}},
		{"case-insensitive catalog match", []any{"wifi", "PARKING"}, []string{"Parking", "Wifi"}},
		{"unknown members filtered", []any{"Wifi", "Moat"}, []string{"Wifi"}},
		{"all unknown becomes absent", []any{"Moat", "Drawbridge"}, nil},
		{"comma-separated string", "Wifi, AC", []string{"AC", "Wifi"}},
		{"non-array dropped", 42, nil},
		{"mixed types keep strings", []any{"Wifi", 7, true}, []string{"Wifi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, map[string]any{"amenities": tt.raw})
			assert.Equal(t, tt.want, f.Amenities)
		})
	}
}

func TestNormalize_HouseRules(t *testing.T) {
	f := mustNormalize(t, map[string]any{
		"houseRules": []any{"no smoking", "Pets Allowed", "no smoking", "bring swords"},
	})
	assert.Equal(t, []string{"No smoking", "Pets allowed"}, f.HouseRules)
}

func TestNormalize_Languages(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{"free-form accepted", []any{"en", "es"}, []string{"en", "es"}},
		{"lowercased and deduped", []any{"EN", "en", "Es"}, []string{"en", "es"}},
		{"canonically ordered", []any{"zh", "en", "hi"}, []string{"en", "hi", "zh"}},
		{"empty members skipped", []any{"", "  ", "fr"}, []string{"fr"}},
		{"empty array absent", []any{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, map[string]any{"languages": tt.raw})
			assert.Equal(t, tt.want, f.Languages)
		})
	}
}

func TestNormalize_MoveInDate(t *testing.T) {
	f := mustNormalize(t, map[string]any{"moveInDate": "2026-09-01"})
	require.NotNil(t, f.MoveInDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *f.MoveInDate)

	f = mustNormalize(t, map[string]any{"moveInDate": "2026-09-01T10:30:00Z"})
	require.NotNil(t, f.MoveInDate)

	for _, bad := range []any{"soon", "2026-13-45", 20260901, nil, true} {
		f = mustNormalize(t, map[string]any{"moveInDate": bad})
		assert.Nil(t, f.MoveInDate, "input %v", bad)
	}
}

func TestNormalize_Bounds(t *testing.T) {
	t.Run("lat swapped lng untouched", func(t *testing.T) {
		f := mustNormalize(t, map[string]any{
			"bounds": map[string]any{"minLat": 40, "maxLat": 30, "minLng": -122, "maxLng": -120},
		})
		require.NotNil(t, f.Bounds)
		assert.Equal(t, 30.0, f.Bounds.MinLat)
		assert.Equal(t, 40.0, f.Bounds.MaxLat)
		assert.Equal(t, -122.0, f.Bounds.MinLng)
		assert.Equal(t, -120.0, f.Bounds.MaxLng)
		assert.False(t, f.Bounds.Wraps)
	})

	t.Run("wrapping rectangle", func(t *testing.T) {
		f := mustNormalize(t, map[string]any{
			"bounds": map[string]any{"minLat": -10, "maxLat": 10, "minLng": 170, "maxLng": -150},
		})
		require.NotNil(t, f.Bounds)
		assert.True(t, f.Bounds.Wraps)
	})

	t.Run("partial bounds dropped entirely", func(t *testing.T) {
		f := mustNormalize(t, map[string]any{
			"bounds": map[string]any{"minLat": 30, "maxLat": 40, "minLng": -122},
		})
		assert.Nil(t, f.Bounds)
	})

	t.Run("non-finite component drops whole object", func(t *testing.T) {
		f := mustNormalize(t, map[string]any{
			"bounds": map[string]any{"minLat": 30, "maxLat": 40, "minLng": math.NaN(), "maxLng": -120},
		})
		assert.Nil(t, f.Bounds)
	})

	t.Run("non-object dropped", func(t *testing.T) {
		f := mustNormalize(t, map[string]any{"bounds": "everywhere"})
		assert.Nil(t, f.Bounds)
	})
}

func TestNormalize_Sort(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want SortKey
	}{
		{"valid key", "price_asc", SortPriceAsc},
		{"case insensitive", "PRICE_DESC", SortPriceDesc},
		{"rating", "rating", SortRating},
		{"invalid falls back", "random", DefaultSort},
		{"non-string falls back", 7, DefaultSort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, map[string]any{"sort": tt.raw})
			assert.Equal(t, tt.want, f.Sort)
		})
	}
}

func TestNormalize_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		page      any
		limit     any
		wantPage  int
		wantLimit int
	}{
		{"plain values", 3, 25, 3, 25},
		{"string values coerced", "3", "25", 3, 25},
		{"float truncated", 2.9, 10.7, 2, 10},
		{"zero clamped to one", 0, 0, 1, 1},
		{"negative clamped to one", -5, -5, 1, 1},
		{"above ceilings clamped", 99999999, 9999, MaxSafePage, MaxPageSize},
		{"non-numeric fall back to defaults", "first", "a lot", DefaultPage, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNormalize(t, map[string]any{"page": tt.page, "limit": tt.limit})
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

// ==========================
// Property Tests
// ==========================

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []map[string]any{
		{},
		{"query": "sunny'; room", "minPrice": "100", "maxPrice": 900.5},
		{
			"amenities":  []any{"wifi", "AC", "wifi"},
			"houseRules": []any{"NO SMOKING"},
			"languages":  []any{"EN", "es", "en"},
		},
		{
			"bounds":     map[string]any{"minLat": 40, "maxLat": 30, "minLng": 170, "maxLng": -150},
			"moveInDate": "2026-09-01",
			"roomType":   "Shared",
			"sort":       "rating",
			"page":       "7",
			"limit":      200,
		},
	}

	for _, input := range inputs {
		once := mustNormalize(t, input)
		twice := mustNormalize(t, once)
		assert.Equal(t, once, twice)
		assert.Equal(t, once.Fingerprint(), twice.Fingerprint())
	}
}

func TestNormalize_OrderIndependence(t *testing.T) {
	a := mustNormalize(t, map[string]any{
		"amenities": []any{"AC", "Wifi", "Parking"},
		"languages": []any{"es", "en"},
	})
	b := mustNormalize(t, map[string]any{
		"languages": []any{"en", "es"},
		"amenities": []any{"Wifi", "Parking", "AC"},
	})

	assert.Equal(t, a, b)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestNormalize_Safety(t *testing.T) {
	// arbitrary malformed input never fails except the inverted range
	inputs := []any{
		nil,
		"",
		"'; DROP TABLE listings; --",
		-1,
		math.NaN(),
		[]any{map[string]any{"x": 1}},
		map[string]any{"query": map[string]any{"nested": "object"}},
		map[string]any{"amenities": map[string]any{}},
		map[string]any{"bounds": []any{1, 2, 3, 4}},
		map[string]any{"page": "NaN", "limit": math.Inf(-1)},
		map[string]any{"minPrice": "free", "maxPrice": []any{}},
		map[string]any{"__proto__": map[string]any{"polluted": true}},
		func() any {
			m := map[string]any{"a": 1}
			m["self"] = m // cyclic-looking; only flat keys are traversed
			return m
		}(),
	}

	for _, input := range inputs {
		_, err := Normalize(input)
		assert.NoError(t, err)
	}
}

func TestNormalize_Determinism(t *testing.T) {
	input := map[string]any{
		"query":     "room near park",
		"amenities": []any{"Wifi", "AC"},
		"minPrice":  100,
		"maxPrice":  900,
		"sort":      "price_asc",
	}

	first := mustNormalize(t, input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, mustNormalize(t, input))
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	amenities := []any{"Wifi", "Wifi", "AC"}
	input := map[string]any{"amenities": amenities, "minPrice": -5}

	mustNormalize(t, input)

	assert.Equal(t, []any{"Wifi", "Wifi", "AC"}, amenities)
	assert.Equal(t, -5, input["minPrice"])
}

// ==========================
// Enum Parser Tests
// ==========================

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"price_asc", "price_desc", "newest", "rating"} {
		key, ok := ParseSortKey(valid)
		assert.True(t, ok)
		assert.Equal(t, SortKey(valid), key)
	}

	_, ok := ParseSortKey("cheapest")
	assert.False(t, ok)
}

func TestParseRoomType(t *testing.T) {
	rt, ok := ParseRoomType("  Entire ")
	assert.True(t, ok)
	assert.Equal(t, RoomTypeEntire, rt)

	_, ok = ParseRoomType("penthouse")
	assert.False(t, ok)
}
