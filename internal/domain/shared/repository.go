package shared

import "context"

// TxManager runs a function inside a storage transaction. The handle
// passed to fn is implementation specific and is meant to be fed to
// WithTx on the repositories taking part in the transaction.
type TxManager interface {
	Transaction(ctx context.Context, fn func(tx any) error) error
}

// Filter carries the paging, ordering and search options shared by the
// list queries. Domain packages embed it in their own filter types.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// Paginated is one page of a list query.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated wraps items with their paging counts.
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
