package common

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the page size applied when the client does not send one.
const DefaultLimit = 20

// ListParams carries the query parameters of a collection GET.
type ListParams struct {
	Limit    int
	Offset   int
	Name     string
	Category string
	Sort     string
}

// ExtractListParams reads limit/offset/page plus the exact-match filters and
// the sort expression from the request. An explicit offset takes precedence;
// otherwise a 1-based page derives the offset as (page-1)*limit. Values that
// fail to parse fall back to the defaults.
func ExtractListParams(r *http.Request) ListParams {
	q := r.URL.Query()

	params := ListParams{
		Limit:    DefaultLimit,
		Name:     q.Get("name"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}

	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if raw := q.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			params.Offset = offset
			return params
		}
	}

	if raw := q.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Offset = (page - 1) * params.Limit
		}
	}

	return params
}
