package finance

import "strings"

// MatchesSearch reports whether any of the fields contains the term,
// case-insensitively. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Filter re-filters an already-fetched page by a free-text term. The
// dashboard applies this pass on top of the server-side query filters for
// fields the query does not cover (invoice number, customer name); the
// behavior is kept here so both layers stay consistent. The function is a
// pure function of its inputs and therefore idempotent.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchesSearch(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}
