package service

import (
	"context"
	"testing"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
)

func TestResolveOrCreateCreatesOnFirstSight(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	product, err := svc.ResolveOrCreate(context.Background(), "Bread", 2000)
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if product.ID == 0 {
		t.Error("product was not assigned an id")
	}
	if product.Price != 2000 {
		t.Errorf("price = %d, want 2000", product.Price)
	}

	exists, err := svc.Exists(context.Background(), "Bread")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Error("created product not found by Exists")
	}
}

func TestResolveOrCreateReturnsExisting(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	first, err := svc.ResolveOrCreate(context.Background(), "Bread", 2000)
	if err != nil {
		t.Fatalf("first ResolveOrCreate: %v", err)
	}

	second, err := svc.ResolveOrCreate(context.Background(), "Bread", 2500)
	if err != nil {
		t.Fatalf("second ResolveOrCreate: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("resolved id %d, want %d", second.ID, first.ID)
	}
	if second.Price != 2000 {
		t.Errorf("price = %d, want the original 2000", second.Price)
	}
	if repo.createCalls != 1 {
		t.Errorf("create called %d times, want 1", repo.createCalls)
	}
}

// racingProductRepo simulates a concurrent writer that inserts the same name
// between the existence check and the create.
type racingProductRepo struct {
	winner      entity.Product
	getCalls    int
	createCalls int
}

func (r *racingProductRepo) Create(_ context.Context, _ *entity.Product) error {
	r.createCalls++
	return repository.ErrDuplicate
}

func (r *racingProductRepo) GetByName(_ context.Context, _ string) (*entity.Product, error) {
	r.getCalls++
	if r.getCalls == 1 {
		return nil, nil
	}
	winner := r.winner
	return &winner, nil
}

func (r *racingProductRepo) ExistsByName(_ context.Context, _ string) (bool, error) {
	return r.getCalls > 1, nil
}

func TestResolveOrCreateRecoversFromLostRace(t *testing.T) {
	repo := &racingProductRepo{winner: entity.Product{ID: 7, Name: "Bread", Price: 1800}}
	svc := NewProductService(repo)

	product, err := svc.ResolveOrCreate(context.Background(), "Bread", 2000)
	if err != nil {
		t.Fatalf("ResolveOrCreate after lost race: %v", err)
	}
	if product.ID != 7 {
		t.Errorf("resolved id %d, want the winner's 7", product.ID)
	}
	if product.Price != 1800 {
		t.Errorf("price = %d, want the winner's 1800", product.Price)
	}
	if repo.createCalls != 1 {
		t.Errorf("create called %d times, want 1", repo.createCalls)
	}
	if repo.getCalls != 2 {
		t.Errorf("lookup called %d times, want 2", repo.getCalls)
	}
}
