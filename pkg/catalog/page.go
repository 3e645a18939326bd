package catalog

import (
	"strconv"
	"strings"
)

// PageWindow is the slice of a result set served for one page.
// Limit 0 means no limit.
type PageWindow struct {
	Page       int
	Skip       int
	Limit      int
	TotalPages int
}

// Window computes the skip/limit window for page and the total page count
// for totalCount results. Pages below 1 are clamped to 1. A pageSize of 0
// (or less) puts every result on a single page.
func Window(page, pageSize, totalCount int) PageWindow {
	page = max(page, 1)
	totalCount = max(totalCount, 0)

	if pageSize <= 0 {
		w := PageWindow{Page: page}
		if totalCount > 0 {
			w.TotalPages = 1
		}
		return w
	}

	return PageWindow{
		Page:       page,
		Skip:       (page - 1) * pageSize,
		Limit:      pageSize,
		TotalPages: (totalCount + pageSize - 1) / pageSize,
	}
}

// ParsePage parses a page query parameter. Missing, non-numeric and
// non-positive values yield 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
