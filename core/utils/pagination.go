// Package utils contains small helpers shared across features.
package utils

// Pagination bounds. Offset pagination drifts under concurrent writes;
// that is accepted for list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Meta describes one page of a paginated listing.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewMeta builds pagination metadata for a result set.
func NewMeta(total int64, page, limit int) Meta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// ClampPagination normalizes raw page/limit query values.
func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
