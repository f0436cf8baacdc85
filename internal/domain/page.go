package domain

// Page is the list envelope returned by paged endpoints.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}

	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}
