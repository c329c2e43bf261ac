package enum

import "database/sql/driver"

// PaymentType represents how a receipt was paid
type PaymentType string

const (
	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeCashless PaymentType = "cashless"
)

func (t PaymentType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known payment types
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeCash || t == PaymentTypeCashless
}

func (t PaymentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*t = PaymentTypeCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PaymentType(v)
	case []byte:
		*t = PaymentType(v)
	}
	return nil
}
