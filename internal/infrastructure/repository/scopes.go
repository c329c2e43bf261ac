package repository

import (
	domainRepo "github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"gorm.io/gorm"
)

// ReceiptFilterScope translates a filter set into a composable GORM scope.
// Every present field adds one AND-ed constraint; nil fields add nothing.
// Pagination and ordering are applied by the repository, not here, so the
// same scope can back both listing and counting queries.
func ReceiptFilterScope(f *domainRepo.ReceiptFilters) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		if f.UserID != nil {
			db = db.Where("user_id = ?", *f.UserID)
		}
		if f.PublicToken != nil {
			db = db.Where("public_token = ?", *f.PublicToken)
		}
		if f.MinCreatedAt != nil {
			db = db.Where("created_at >= ?", *f.MinCreatedAt)
		}
		if f.MaxCreatedAt != nil {
			db = db.Where("created_at <= ?", *f.MaxCreatedAt)
		}
		if f.MinTotal != nil {
			db = db.Where("total >= ?", *f.MinTotal)
		}
		if f.MaxTotal != nil {
			db = db.Where("total <= ?", *f.MaxTotal)
		}
		if f.PaymentType != nil {
			db = db.Where("payment_type = ?", *f.PaymentType)
		}
		return db
	}
}
