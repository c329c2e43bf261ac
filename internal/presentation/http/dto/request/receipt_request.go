package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ProductCreateRequest is one submitted line item. Exactly one of quantity
// and weight must be present; the rule is enforced by a struct-level
// validation registered with the binding engine.
type ProductCreateRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gt=0"`
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0"`
}

// PaymentRequest represents the submitted payment
type PaymentRequest struct {
	Type   string  `json:"type" binding:"required,oneof=cash cashless"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ReceiptCreateRequest represents a receipt creation request
type ReceiptCreateRequest struct {
	Products []ProductCreateRequest `json:"products" binding:"required,min=1,dive"`
	Payment  PaymentRequest         `json:"payment" binding:"required"`
}

// RegisterValidations registers the quantity/weight exclusivity rule with
// Gin's validator engine. Must be called once at startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(productQuantityWeight, ProductCreateRequest{})
	}
}

func productQuantityWeight(sl validator.StructLevel) {
	p := sl.Current().Interface().(ProductCreateRequest)
	if (p.Quantity == nil) == (p.Weight == nil) {
		sl.ReportError(p.Quantity, "quantity", "Quantity", "quantity_xor_weight", "")
		sl.ReportError(p.Weight, "weight", "Weight", "quantity_xor_weight", "")
	}
}
