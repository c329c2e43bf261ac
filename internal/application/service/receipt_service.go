package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/enum"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"github.com/daniiloleshchuk/checkbox-api/pkg/apperror"
	"github.com/daniiloleshchuk/checkbox-api/pkg/utils"
)

// ReceiptService computes receipt aggregates and owns the creation pipeline:
// validate funds, resolve catalog entries, persist header plus items
// atomically, then re-read the fully joined record.
type ReceiptService struct {
	receiptRepo    repository.ReceiptRepository
	productService *ProductService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, productService *ProductService) *ReceiptService {
	return &ReceiptService{
		receiptRepo:    receiptRepo,
		productService: productService,
	}
}

// ReceiptItemInput is one submitted line item. Exactly one of Quantity and
// Weight must be set.
type ReceiptItemInput struct {
	Name     string
	Price    float64
	Quantity *int
	Weight   *float64
}

// PaymentInput is the submitted payment
type PaymentInput struct {
	Type   enum.PaymentType
	Amount float64
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	UserID  uint
	Items   []ReceiptItemInput
	Payment PaymentInput
}

// toCents converts a decimal amount to integer cents
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// validate rejects malformed input before any write happens
func (s *ReceiptService) validate(input *CreateReceiptInput) error {
	var fieldErrors []apperror.FieldError

	if !input.Payment.Type.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment.type",
			Message: "must be cash or cashless",
		})
	}
	if input.Payment.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment.amount",
			Message: "must be greater than zero",
		})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "products",
			Message: "at least one product is required",
		})
	}

	for i, item := range input.Items {
		field := fmt.Sprintf("products[%d]", i)
		if item.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   field + ".name",
				Message: "must not be empty",
			})
		}
		if item.Price <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   field + ".price",
				Message: "must be greater than zero",
			})
		}
		if (item.Quantity == nil) == (item.Weight == nil) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   field,
				Message: "product can have either weight or quantity",
			})
			continue
		}
		if item.Quantity != nil && *item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   field + ".quantity",
				Message: "must be greater than zero",
			})
		}
		if item.Weight != nil && *item.Weight <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   field + ".weight",
				Message: "must be greater than zero",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// itemQuantity is the quantity used for totals: weight-based items count as 1
func itemQuantity(item *ReceiptItemInput) int {
	if item.Quantity != nil {
		return *item.Quantity
	}
	return 1
}

// Create validates a receipt, persists it with its line items and returns the
// re-read aggregated view. The total is derived, never user-supplied; creation
// fails before any write when the paid amount does not cover it.
func (s *ReceiptService) Create(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	var total int64
	lineTotals := make([]int64, len(input.Items))
	for i := range input.Items {
		lineTotals[i] = toCents(input.Items[i].Price) * int64(itemQuantity(&input.Items[i]))
		total += lineTotals[i]
	}

	amountPaid := toCents(input.Payment.Amount)
	if amountPaid < total {
		return nil, apperror.NewInsufficientFundsError()
	}

	items := make([]entity.ReceiptItem, len(input.Items))
	for i := range input.Items {
		item := &input.Items[i]
		product, err := s.productService.ResolveOrCreate(ctx, item.Name, toCents(item.Price))
		if err != nil {
			return nil, err
		}
		items[i] = entity.ReceiptItem{
			ProductID: product.ID,
			Quantity:  itemQuantity(item),
			Weight:    item.Weight,
			UnitPrice: toCents(item.Price),
			Total:     lineTotals[i],
		}
	}

	receipt := &entity.Receipt{
		UserID:      input.UserID,
		Total:       total,
		AmountPaid:  amountPaid,
		PaymentType: input.Payment.Type,
		Rest:        amountPaid - total,
		PublicToken: utils.NewPublicToken(),
		Items:       items,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	created, err := s.receiptRepo.GetByID(ctx, receipt.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		log.Printf("receipt %d missing right after creation", receipt.ID)
		return nil, apperror.NewConsistencyError()
	}
	return created, nil
}

// List returns aggregated receipts matching the filters, ordered by id
func (s *ReceiptService) List(ctx context.Context, filters *repository.ReceiptFilters) ([]entity.Receipt, error) {
	return s.receiptRepo.List(ctx, filters)
}

// GetByPublicToken returns the receipt behind a share token, independent of
// who requests it
func (s *ReceiptService) GetByPublicToken(ctx context.Context, token string) (*entity.Receipt, error) {
	receipts, err := s.receiptRepo.List(ctx, &repository.ReceiptFilters{
		PublicToken: &token,
	})
	if err != nil {
		return nil, err
	}
	if len(receipts) == 0 {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return &receipts[0], nil
}
