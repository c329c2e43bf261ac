package pagination

// DefaultLimit is applied when a request does not ask for a specific limit.
const DefaultLimit = 20

// MaxLimit caps the page size a single request may ask for.
const MaxLimit = 100

// LimitOffsetParams represents limit/offset pagination input. A zero value is
// usable: Validate fills in the defaults.
type LimitOffsetParams struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// Validate ensures the parameters are within valid ranges
func (p *LimitOffsetParams) Validate() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ListResult represents a paginated list with its item count
type ListResult[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListResult creates a new list result
func NewListResult[T any](items []T) *ListResult[T] {
	return &ListResult[T]{
		Items: items,
		Count: len(items),
	}
}
