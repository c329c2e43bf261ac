package entity

import (
	"encoding/json"
	"time"
)

// Product is a catalog entry, created lazily the first time a receipt
// references a previously unseen name. The catalog price is a default for
// future receipts; the transaction-time price lives on the receipt item.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
