package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/showtrack/pkg/pagination"
)

// maxPageSize bounds the pageSize query parameter
const maxPageSize = 500

// ParsePaginationParams extracts and validates pagination params from request.
// Without a pageSize every item is returned.
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{
		Page: 1,
	}

	qp := r.URL.Query()

	if raw := qp.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter %q: must be positive integer", raw)
		}
		params.Page = page
	}

	if raw := qp.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 0 || pageSize > maxPageSize {
			return params, fmt.Errorf("invalid pageSize parameter %q: must be between 0 and %d", raw, maxPageSize)
		}
		params.PageSize = pageSize
	}

	return params, nil
}
