package entity

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Pagination é offset/limit sem cursor; o total não é calculado.
type Pagination struct {
	Offset int
	Limit  int
}

func DefaultPagination() Pagination {
	return Pagination{Offset: 0, Limit: DefaultLimit}
}
