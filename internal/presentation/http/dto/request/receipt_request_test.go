package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func validationEngine(t *testing.T) *validator.Validate {
	t.Helper()
	RegisterValidations()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("binding validator is not a validator.Validate")
	}
	return v
}

func TestProductCreateRequestQuantityWeightExclusivity(t *testing.T) {
	quantity := 2
	weight := 1.5

	tests := []struct {
		name    string
		req     ProductCreateRequest
		wantErr bool
	}{
		{"quantity only", ProductCreateRequest{Name: "Bread", Price: 20, Quantity: &quantity}, false},
		{"weight only", ProductCreateRequest{Name: "Cheese", Price: 30, Weight: &weight}, false},
		{"both set", ProductCreateRequest{Name: "Cheese", Price: 30, Quantity: &quantity, Weight: &weight}, true},
		{"neither set", ProductCreateRequest{Name: "Cheese", Price: 30}, true},
	}

	v := validationEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProductCreateRequestFieldRules(t *testing.T) {
	quantity := 1
	zeroQuantity := 0

	tests := []struct {
		name string
		req  ProductCreateRequest
	}{
		{"missing name", ProductCreateRequest{Price: 20, Quantity: &quantity}},
		{"zero price", ProductCreateRequest{Name: "Bread", Quantity: &quantity}},
		{"negative price", ProductCreateRequest{Name: "Bread", Price: -1, Quantity: &quantity}},
		{"zero quantity", ProductCreateRequest{Name: "Bread", Price: 20, Quantity: &zeroQuantity}},
	}

	v := validationEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Struct(tt.req); err == nil {
				t.Error("invalid request passed validation")
			}
		})
	}
}

func TestReceiptCreateRequestRules(t *testing.T) {
	quantity := 1
	valid := ReceiptCreateRequest{
		Products: []ProductCreateRequest{
			{Name: "Bread", Price: 20, Quantity: &quantity},
		},
		Payment: PaymentRequest{Type: "cash", Amount: 50},
	}

	v := validationEngine(t)
	if err := v.Struct(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	empty := valid
	empty.Products = nil
	if err := v.Struct(empty); err == nil {
		t.Error("request without products passed validation")
	}

	badType := valid
	badType.Payment.Type = "credit"
	if err := v.Struct(badType); err == nil {
		t.Error("unknown payment type passed validation")
	}
}
