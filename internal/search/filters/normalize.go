// internal/search/filters/normalize.go
package filters

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/geo"
	"github.com/Suryateja-byte/Roomshare-sub010/internal/search/sanitize"
)

// Accepted layouts for moveInDate, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Normalize turns an untrusted, arbitrarily-shaped value into the
// canonical NormalizedFilters. It accepts literally anything: non-objects
// and nil normalize to Default(). It never mutates its input, is
// deterministic and idempotent, and fails only for an explicitly supplied
// inverted price range.
func Normalize(raw any) (NormalizedFilters, error) {
	out := Default()

	m := rawMap(raw)
	if m == nil {
		return out, nil
	}

	if v, ok := m["query"]; ok {
		if s, ok := v.(string); ok && sanitize.IsValidQuery(s) {
			q := sanitize.Clean(s)
			out.Query = &q
		}
	}

	if v, ok := m["minPrice"]; ok {
		if n, ok := toNumber(v); ok {
			n = clampPrice(n)
			out.MinPrice = &n
		}
	}
	if v, ok := m["maxPrice"]; ok {
		if n, ok := toNumber(v); ok {
			n = clampPrice(n)
			out.MaxPrice = &n
		}
	}
	if out.MinPrice != nil && out.MaxPrice != nil && *out.MinPrice > *out.MaxPrice {
		return NormalizedFilters{}, fmt.Errorf("%w (min=%v, max=%v)",
			ErrInvalidPriceRange, *out.MinPrice, *out.MaxPrice)
	}

	if v, ok := m["roomType"]; ok {
		if s, ok := v.(string); ok {
			if rt, ok := ParseRoomType(s); ok {
				out.RoomType = &rt
			}
		}
	}
	if v, ok := m["leaseDuration"]; ok {
		if s, ok := v.(string); ok {
			if ld, ok := ParseLeaseDuration(s); ok {
				out.LeaseDuration = &ld
			}
		}
	}
	if v, ok := m["genderPreference"]; ok {
		if s, ok := v.(string); ok {
			if gp, ok := ParseGenderPreference(s); ok {
				out.GenderPreference = &gp
			}
		}
	}
	if v, ok := m["householdGender"]; ok {
		if s, ok := v.(string); ok {
			if hg, ok := ParseHouseholdGender(s); ok {
				out.HouseholdGender = &hg
			}
		}
	}

	if v, ok := m["amenities"]; ok {
		out.Amenities = normalizeCatalogArray(v, amenityCanonical)
	}
	if v, ok := m["houseRules"]; ok {
		out.HouseRules = normalizeCatalogArray(v, houseRuleCanonical)
	}
	if v, ok := m["languages"]; ok {
		out.Languages = normalizeLanguages(v)
	}

	if v, ok := m["moveInDate"]; ok {
		if t, ok := toDate(v); ok {
			out.MoveInDate = &t
		}
	}

	if v, ok := m["bounds"]; ok {
		if b, ok := toBounds(v); ok {
			out.Bounds = &b
		}
	}

	if v, ok := m["sort"]; ok {
		if s, ok := v.(string); ok {
			if key, ok := ParseSortKey(s); ok {
				out.Sort = key
			}
		}
	}

	if v, ok := m["page"]; ok {
		if n, ok := toInt(v); ok {
			out.Page = clampInt(n, 1, MaxSafePage)
		}
	}
	if v, ok := m["limit"]; ok {
		if n, ok := toInt(v); ok {
			out.Limit = clampInt(n, 1, MaxPageSize)
		}
	}

	return out, nil
}

// rawMap reduces any input to a flat key/value view. Already-normalized
// values round-trip through JSON so Normalize(Normalize(x)) sees the same
// field surface; scalars, nil and unencodable values yield no fields.
func rawMap(raw any) map[string]any {
	switch v := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	case NormalizedFilters:
		return structMap(v)
	case *NormalizedFilters:
		if v == nil {
			return nil
		}
		return structMap(*v)
	default:
		return structMap(v)
	}
}

func structMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// normalizeCatalogArray filters raw members against a closed catalog,
// maps them to canonical casing, deduplicates and sorts. An array that
// ends up empty is treated as absent.
func normalizeCatalogArray(raw any, catalog map[string]string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, s := range toStringSlice(raw) {
		canonical, ok := catalog[strings.ToLower(strings.TrimSpace(s))]
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		result = append(result, canonical)
	}
	sort.Strings(result)
	return result
}

// normalizeLanguages lowercases free-form language codes, deduplicates
// and sorts; the set is not enum-restricted.
func normalizeLanguages(raw any) []string {
	var result []string
	seen := make(map[string]bool)
	for _, s := range toStringSlice(raw) {
		code := strings.ToLower(strings.TrimSpace(s))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		result = append(result, code)
	}
	sort.Strings(result)
	return result
}

func toStringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// single value or comma-separated list
		return strings.Split(v, ",")
	}
	return nil
}

func toNumber(raw any) (float64, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func toInt(raw any) (int, bool) {
	n, ok := toNumber(raw)
	if !ok {
		return 0, false
	}
	return int(n), true
}

func toDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), true
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// toBounds requires all four components to be finite numbers; a partial
// or malformed rectangle drops the whole bounds rather than applying a
// fragment of it.
func toBounds(raw any) (geo.Bounds, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		if m = structMap(raw); m == nil {
			return geo.Bounds{}, false
		}
	}

	coords := make([]float64, 4)
	for i, key := range []string{"minLat", "maxLat", "minLng", "maxLng"} {
		v, ok := m[key]
		if !ok {
			return geo.Bounds{}, false
		}
		n, ok := toNumber(v)
		if !ok {
			return geo.Bounds{}, false
		}
		coords[i] = n
	}

	return geo.NewBounds(coords[0], coords[1], coords[2], coords[3])
}

func clampPrice(n float64) float64 {
	return math.Min(math.Max(n, 0), MaxSafePrice)
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
