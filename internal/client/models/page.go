package models

// Page is one page of a paginated collection as returned by the API.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages,omitempty"`
	Number        int   `json:"number,omitempty"`
	Size          int   `json:"size,omitempty"`
}

// PageRequest selects a page. A zero Size lets the server pick its default.
type PageRequest struct {
	Page int
	Size int
}
