package repository

import (
	"context"
	"errors"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	domainRepo "github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create inserts the receipt header and its items in one transaction.
// GORM's create-with-associations wraps both inserts; Items must carry
// resolved ProductIDs, their Product association is never written here.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	err := r.db.WithContext(ctx).
		Omit("Items.Product", "User").
		Create(receipt).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicate
	}
	return err
}

func (r *receiptRepository) GetByID(ctx context.Context, id uint) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) List(ctx context.Context, filters *domainRepo.ReceiptFilters) ([]entity.Receipt, error) {
	if filters == nil {
		filters = &domainRepo.ReceiptFilters{}
	}
	filters.Validate()

	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Model(&entity.Receipt{}).
		Scopes(ReceiptFilterScope(filters)).
		Order("id ASC").
		Limit(filters.Limit).
		Offset(filters.Offset).
		Preload("Items.Product").
		Find(&receipts).Error
	return receipts, err
}
