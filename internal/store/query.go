package store

import (
	"sort"
	"strings"
)

// Query carries the caller-supplied view parameters for a list call. The
// zero value means "everything, first page of ten".
type Query struct {
	Search    string
	SortBy    string
	SortOrder string // "asc" (default) or "desc"
	Page      int
	Limit     int
}

// Page is the sliced, counted result of a list query.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// Descriptor names the queryable surface of a record type: which string
// fields a search term is matched against, and how each sortable field
// compares two records. Sort keys not present in SortFields are
// ignored rather than rejected.
type Descriptor[T any] struct {
	SearchFields []func(T) string
	SortFields   map[string]func(a, b T) int
}

// Apply runs a query against a snapshot of a collection: filter, then
// stable sort, then paginate, in that order. It never mutates the input
// slice and is deterministic for a given snapshot and query. Total is
// the match count before pagination; a page past the end of the data is
// empty, not an error.
func Apply[T any](items []T, q Query, d Descriptor[T]) Page[T] {
	filtered := filter(items, q.Search, d.SearchFields)

	if cmp, ok := d.SortFields[q.SortBy]; ok {
		sorted := make([]T, len(filtered))
		copy(sorted, filtered)
		desc := q.SortOrder == "desc"
		sort.SliceStable(sorted, func(i, j int) bool {
			c := cmp(sorted[i], sorted[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
		filtered = sorted
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, filtered[start:end])

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func filter[T any](items []T, search string, fields []func(T) string) []T {
	if search == "" || len(fields) == 0 {
		return items
	}
	term := strings.ToLower(search)
	var out []T
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
