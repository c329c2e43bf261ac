package service

import (
	"strings"
	"testing"
	"time"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/enum"
)

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		ID:          1,
		UserID:      1,
		Total:       4000,
		AmountPaid:  5000,
		Rest:        1000,
		PaymentType: enum.PaymentTypeCash,
		PublicToken: "token",
		CreatedAt:   time.Date(2026, 8, 2, 14, 30, 0, 0, time.UTC),
		Items: []entity.ReceiptItem{
			{
				Quantity:  2,
				UnitPrice: 2000,
				Total:     4000,
				Product:   entity.Product{Name: "Bread"},
			},
		},
	}
}

func TestFormatReceiptGolden(t *testing.T) {
	got := FormatReceipt(sampleReceipt(), 32)

	sep := strings.Repeat("=", 32)
	want := strings.Join([]string{
		strings.Repeat(" ", 6) + "ФОП Джонсонюк Борис" + strings.Repeat(" ", 7),
		sep,
		"2.00 x 20.00",
		"Bread" + strings.Repeat(" ", 22) + "40.00",
		sep,
		"СУМА" + strings.Repeat(" ", 23) + "40.00",
		"cash" + strings.Repeat(" ", 23) + "50.00",
		"Решта" + strings.Repeat(" ", 22) + "10.00",
		sep,
		strings.Repeat(" ", 8) + "02.08.2026 14:30" + strings.Repeat(" ", 8),
		strings.Repeat(" ", 6) + "Дякуємо за покупку!" + strings.Repeat(" ", 7),
	}, "\n")

	if got != want {
		t.Errorf("rendered receipt mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatReceiptLineWidths(t *testing.T) {
	for _, width := range []int{20, 32, 40} {
		got := FormatReceipt(sampleReceipt(), width)
		for i, line := range strings.Split(got, "\n") {
			if n := len([]rune(line)); n > width {
				t.Errorf("width %d: line %d is %d runes: %q", width, i, n, line)
			}
		}
	}
}

func TestFormatReceiptWrapsLongName(t *testing.T) {
	receipt := sampleReceipt()
	receipt.Items[0].Product.Name = "Sourdough bread with sunflower seeds"

	got := FormatReceipt(receipt, 32)
	lines := strings.Split(got, "\n")

	// Lines 3 and 4 carry the wrapped name, line 4 ends with the total.
	if want := "Sourdough bread with sunflower "; lines[3] != want {
		t.Errorf("first name chunk = %q, want %q", lines[3], want)
	}
	if want := "seeds" + strings.Repeat(" ", 22) + "40.00"; lines[4] != want {
		t.Errorf("final name chunk = %q, want %q", lines[4], want)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > 32 {
			t.Errorf("line %d is %d runes: %q", i, n, line)
		}
	}
}

func TestFormatReceiptWeightItem(t *testing.T) {
	weight := 1.5
	receipt := sampleReceipt()
	receipt.Items = []entity.ReceiptItem{
		{
			Quantity:  1,
			Weight:    &weight,
			UnitPrice: 3000,
			Total:     3000,
			Product:   entity.Product{Name: "Cheese"},
		},
	}
	receipt.Total = 3000
	receipt.AmountPaid = 3000
	receipt.Rest = 0

	got := FormatReceipt(receipt, 32)
	lines := strings.Split(got, "\n")

	if want := "1.00 x 30.00"; lines[2] != want {
		t.Errorf("quantity line = %q, want %q", lines[2], want)
	}
	if want := "Решта" + strings.Repeat(" ", 23) + "0.00"; lines[7] != want {
		t.Errorf("change line = %q, want %q", lines[7], want)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{2000, "20.00"},
		{123450, "1 234.50"},
		{100050, "1 000.50"},
		{123456789, "1 234 567.89"},
		{-2500, "-25.00"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.cents); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
