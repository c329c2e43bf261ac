package repository

import (
	"context"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations. Lookups
// return (nil, nil) when no row matches; a non-nil error always means a
// storage failure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
}
