package repository

import (
	"context"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog data operations.
// Create must surface a duplicate-name conflict as ErrDuplicate so the
// resolver can fall back to the now-existing row.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
