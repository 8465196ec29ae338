package pagination

import "math"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Normalize clamps page and size into their allowed ranges.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	// keep Offset within int32 for every backend
	if maxPage := math.MaxInt32 / r.Size; r.Page > maxPage {
		r.Page = maxPage
	}
}

// Offset returns the number of items preceding the page.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
