package kernel

// PaginationOptions carries the requested page window.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPaginationOptions clamps the requested window to sane bounds. Pages are
// 1-based; page sizes are capped at 100.
func NewPaginationOptions(page, pageSize int) PaginationOptions {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return PaginationOptions{Page: page, PageSize: pageSize}
}

// Page describes the window a paginated result covers.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// Paginated wraps a page of items with its window metadata.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}
