package repository

import (
	"context"
	"time"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/enum"
	"github.com/daniiloleshchuk/checkbox-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	// Create persists a receipt header together with its line items in a
	// single transaction: a crash can never leave an orphaned header.
	Create(ctx context.Context, receipt *entity.Receipt) error
	// GetByID returns the fully joined receipt (items and their products)
	// or (nil, nil) when it does not exist.
	GetByID(ctx context.Context, id uint) (*entity.Receipt, error)
	// List returns fully joined receipts matching every present filter,
	// ordered by internal identifier ascending.
	List(ctx context.Context, filters *ReceiptFilters) ([]entity.Receipt, error)
}

// ReceiptFilters contains the optional constraints a receipt listing may
// apply. A nil field imposes no constraint. All bounds are inclusive.
type ReceiptFilters struct {
	pagination.LimitOffsetParams

	UserID       *uint
	PublicToken  *string
	MinCreatedAt *time.Time
	MaxCreatedAt *time.Time
	MinTotal     *int64 // cents
	MaxTotal     *int64 // cents
	PaymentType  *enum.PaymentType
}
