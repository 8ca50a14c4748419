// internal/api/params.go
package api

import "net/url"

// aliasParams maps legacy/alternate parameter names to canonical ones.
// Aliases are resolved before normalization; a canonical name always
// wins when both are supplied.
var aliasParams = map[string]string{
	"budgetMin": "minPrice",
	"budgetMax": "maxPrice",
	"q":         "query",
	"keyword":   "query",
	"perPage":   "limit",
	"pageSize":  "limit",
}

// arrayParams are accepted either repeated (?amenities=a&amenities=b) or
// comma-separated.
var arrayParams = map[string]bool{
	"amenities":  true,
	"houseRules": true,
	"languages":  true,
}

// boundsParams are flat query keys folded into the nested bounds object.
var boundsParams = []string{"minLat", "maxLat", "minLng", "maxLng"}

// ResolveAliases rewrites alias keys to their canonical names. The input
// map is not mutated.
func ResolveAliases(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if canonical, ok := aliasParams[k]; ok {
			k = canonical
		}
		out[k] = v
	}
	// canonical names take precedence over their aliases
	for alias, canonical := range aliasParams {
		if v, ok := raw[canonical]; ok {
			out[canonical] = v
			delete(out, alias)
		}
	}
	return out
}

// RawFromQuery converts URL query parameters into the loosely-typed
// filter input the normalizer consumes. Values stay strings; coercion is
// the normalizer's job.
func RawFromQuery(values url.Values) map[string]interface{} {
	raw := make(map[string]interface{})

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if arrayParams[key] || arrayParams[aliasParams[key]] {
			if len(vals) == 1 {
				raw[key] = vals[0] // may still be comma-separated
			} else {
				items := make([]interface{}, len(vals))
				for i, v := range vals {
					items[i] = v
				}
				raw[key] = items
			}
			continue
		}
		raw[key] = vals[0]
	}

	// fold flat coordinates into a bounds object
	bounds := make(map[string]interface{})
	for _, key := range boundsParams {
		if v, ok := raw[key]; ok {
			bounds[key] = v
			delete(raw, key)
		}
	}
	if len(bounds) > 0 {
		raw["bounds"] = bounds
	}

	return ResolveAliases(raw)
}
