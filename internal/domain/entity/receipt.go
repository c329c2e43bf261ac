package entity

import (
	"encoding/json"
	"time"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/enum"
)

// Receipt is an immutable record of a completed purchase. The total and rest
// are derived at creation time and must always equal the sum of the item
// totals and amount_paid - total respectively. The serial primary key doubles
// as the stable insertion order used by listings.
type Receipt struct {
	ID          uint             `gorm:"primaryKey"`
	UserID      uint             `gorm:"not null;index"`
	Total       int64            `gorm:"not null"` // cents
	AmountPaid  int64            `gorm:"not null"` // cents
	PaymentType enum.PaymentType `gorm:"size:50;not null"`
	Rest        int64            `gorm:"not null"` // cents
	PublicToken string           `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	User  User          `gorm:"foreignKey:UserID"`
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID"`
}

// ReceiptItem associates a receipt with a product, carrying the
// transaction-time snapshot of quantity or weight, the unit price as
// submitted, and the computed line total. Items are created atomically with
// their parent receipt and never mutated afterwards.
type ReceiptItem struct {
	ID        uint     `gorm:"primaryKey"`
	ReceiptID uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Quantity  int      `gorm:"not null;default:1"`
	Weight    *float64 // nil unless the item is weight-tracked
	UnitPrice int64    `gorm:"not null"` // cents
	Total     int64    `gorm:"not null"` // cents

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID"`
	Product Product `gorm:"foreignKey:ProductID"`
}

// MarshalJSON renders the aggregated receipt view: nested payment, item list
// joined with product names, cents converted to decimal.
func (r Receipt) MarshalJSON() ([]byte, error) {
	items := make([]ReceiptItem, len(r.Items))
	copy(items, r.Items)

	return json.Marshal(&struct {
		ID       uint          `json:"id"`
		Products []ReceiptItem `json:"products"`
		Payment  struct {
			Type   enum.PaymentType `json:"type"`
			Amount float64          `json:"amount"`
		} `json:"payment"`
		Total       float64   `json:"total"`
		Rest        float64   `json:"rest"`
		CreatedAt   time.Time `json:"created_at"`
		PublicToken string    `json:"public_token"`
	}{
		ID:       r.ID,
		Products: items,
		Payment: struct {
			Type   enum.PaymentType `json:"type"`
			Amount float64          `json:"amount"`
		}{Type: r.PaymentType, Amount: float64(r.AmountPaid) / 100},
		Total:       float64(r.Total) / 100,
		Rest:        float64(r.Rest) / 100,
		CreatedAt:   r.CreatedAt,
		PublicToken: r.PublicToken,
	})
}

// MarshalJSON renders a line item as seen by API clients: the joined product
// name plus the transaction-time price, quantity/weight and line total.
func (i ReceiptItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name     string   `json:"name"`
		Price    float64  `json:"price"`
		Quantity int      `json:"quantity"`
		Weight   *float64 `json:"weight"`
		Total    float64  `json:"total"`
	}{
		Name:     i.Product.Name,
		Price:    float64(i.UnitPrice) / 100,
		Quantity: i.Quantity,
		Weight:   i.Weight,
		Total:    float64(i.Total) / 100,
	})
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
