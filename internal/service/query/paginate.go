package query

// DefaultMaxButtons is how many numbered page buttons a listing renders
// before collapsing the edges behind ellipses.
const DefaultMaxButtons = 5

// Page returns the 1-indexed page slice of items. Pages past the end come
// back empty; callers reset to page 1 whenever a mutation or filter change
// shrinks the result set.
func Page[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return nil
	}

	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Layout describes which pagination controls a listing should render.
type Layout struct {
	TotalItems        int   `json:"totalItems"`
	TotalPages        int   `json:"totalPages"`
	Pages             []int `json:"pages"`
	ShowFirstEllipsis bool  `json:"showFirstEllipsis"`
	ShowLastEllipsis  bool  `json:"showLastEllipsis"`
	HasPrev           bool  `json:"hasPrev"`
	HasNext           bool  `json:"hasNext"`
}

// DescribeLayout computes the page-button layout for a listing: a window of
// up to maxButtons pages centered on the current page, with the first and
// last page always reachable and ellipses marking collapsed stretches. When
// the total fits within maxButtons+2 every page is listed with no ellipsis.
// A single page (or none) renders no buttons at all.
func DescribeLayout(totalItems, currentPage, pageSize, maxButtons int) Layout {
	if maxButtons <= 0 {
		maxButtons = DefaultMaxButtons
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	layout := Layout{TotalItems: totalItems, TotalPages: totalPages}
	if totalPages <= 1 {
		return layout
	}

	layout.HasPrev = currentPage > 1
	layout.HasNext = currentPage < totalPages

	if totalPages <= maxButtons+2 {
		for p := 1; p <= totalPages; p++ {
			layout.Pages = append(layout.Pages, p)
		}
		return layout
	}

	before := (maxButtons - 1) / 2
	after := maxButtons - 1 - before

	start := currentPage - before
	end := currentPage + after
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > totalPages {
		start -= end - totalPages
		end = totalPages
	}

	if start > 1 {
		layout.Pages = append(layout.Pages, 1)
		layout.ShowFirstEllipsis = start > 2
	}
	for p := start; p <= end; p++ {
		layout.Pages = append(layout.Pages, p)
	}
	if end < totalPages {
		layout.ShowLastEllipsis = end < totalPages-1
		layout.Pages = append(layout.Pages, totalPages)
	}

	return layout
}
