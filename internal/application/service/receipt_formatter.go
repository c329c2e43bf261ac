package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
)

// DefaultLineWidth is the printable width used when a caller does not ask for
// a specific one (32 characters fits 58mm thermal paper).
const DefaultLineWidth = 32

const (
	sellerName  = "ФОП Джонсонюк Борис"
	footerLine  = "Дякуємо за покупку!"
	totalLabel  = "СУМА"
	changeLabel = "Решта"
)

// FormatReceipt renders a fully joined receipt into a fixed-width printable
// text block. The layout is deterministic: the same receipt and width always
// produce the same bytes. All padding is rune-aware since labels and product
// names may be Cyrillic.
func FormatReceipt(receipt *entity.Receipt, lineWidth int) string {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}

	separator := strings.Repeat("=", lineWidth)
	half := lineWidth / 2

	lines := make([]string, 0, 8+2*len(receipt.Items))
	lines = append(lines, center(sellerName, lineWidth), separator)

	for _, item := range receipt.Items {
		lines = append(lines, fmt.Sprintf("%s x %s",
			formatAmount(int64(item.Quantity)*100),
			formatAmount(item.UnitPrice),
		))
		lines = append(lines, nameTotalLines(item.Product.Name, formatAmount(item.Total), lineWidth)...)
	}

	lines = append(lines,
		separator,
		ljust(totalLabel, half)+rjust(formatAmount(receipt.Total), half),
		ljust(receipt.PaymentType.String(), half)+rjust(formatAmount(receipt.AmountPaid), half),
		ljust(changeLabel, half)+rjust(formatAmount(receipt.Rest), half),
		separator,
		center(receipt.CreatedAt.Format("02.01.2006 15:04"), lineWidth),
		center(footerLine, lineWidth),
	)

	return strings.Join(lines, "\n")
}

// nameTotalLines pairs a product name with its right-justified line total.
// A name too long for one line is hard-wrapped into chunks of lineWidth-1
// runes; every chunk but the last becomes a standalone line and the final
// chunk shares a line with the total.
func nameTotalLines(name, total string, lineWidth int) []string {
	runes := []rune(name)
	if len(runes)+len(total)+1 <= lineWidth {
		return []string{ljust(name, lineWidth-len(total)) + total}
	}

	chunkSize := lineWidth - 1
	var chunks []string
	for i := 0; i < len(runes); i += chunkSize {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}

	lines := chunks[:len(chunks)-1]
	last := chunks[len(chunks)-1]
	return append(lines, ljust(last, lineWidth-len(total))+total)
}

// formatAmount renders cents as a decimal with two fraction digits and
// space-separated thousands, e.g. 123450 -> "1 234.50".
func formatAmount(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	out := fmt.Sprintf("%s.%02d", grouped.String(), cents%100)
	if negative {
		out = "-" + out
	}
	return out
}

func center(s string, width int) string {
	margin := width - len([]rune(s))
	if margin <= 0 {
		return s
	}
	left := margin / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

func ljust(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

func rjust(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
