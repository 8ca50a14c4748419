// internal/search/paging/paging.go
package paging

// Page is one slice of an ordered collection plus metadata describing the
// whole collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices an ordered collection into the 1-indexed page of the
// given size. An out-of-range page (≤0 or past the last page) yields an
// empty Items while Total and TotalPages still describe the full
// collection; callers detect invalid pages by comparing page against
// TotalPages, never via an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	result := Page[T]{
		Items:      []T{},
		Total:      total,
		TotalPages: totalPages,
	}

	if page < 1 || page > totalPages {
		return result
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	result.Items = append(result.Items, items[start:end]...)
	return result
}
