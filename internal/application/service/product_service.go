package service

import (
	"context"
	"errors"
	"log"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"github.com/daniiloleshchuk/checkbox-api/pkg/apperror"
)

// ProductService resolves product names to stable catalog entries, creating
// them on first sight. The catalog price is fixed at creation: resubmitting a
// name with a different price never mutates the existing entry.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Exists reports whether a catalog entry with that exact name exists
func (s *ProductService) Exists(ctx context.Context, name string) (bool, error) {
	return s.productRepo.ExistsByName(ctx, name)
}

// ResolveOrCreate returns the catalog entry for a name, creating it with the
// given price (cents) when absent. The check-then-create sequence races under
// concurrent identical submissions; the uniqueness constraint is the backstop
// and a conflict is retried exactly once by re-reading the winning row.
func (s *ProductService) ResolveOrCreate(ctx context.Context, name string, priceCents int64) (*entity.Product, error) {
	product, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}

	product = &entity.Product{
		Name:  name,
		Price: priceCents,
	}
	err = s.productRepo.Create(ctx, product)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, err
	}

	// Lost the creation race: the row must exist now.
	product, err = s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		log.Printf("product %q missing after duplicate-key conflict", name)
		return nil, apperror.NewConsistencyError()
	}
	return product, nil
}
