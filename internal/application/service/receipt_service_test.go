package service

import (
	"context"
	"testing"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/entity"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/enum"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"github.com/daniiloleshchuk/checkbox-api/pkg/apperror"
)

// fakeProductRepo is an in-memory ProductRepository for service tests.
type fakeProductRepo struct {
	products    map[string]*entity.Product
	nextID      uint
	createCalls int
	createErr   error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.createCalls++
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	if _, ok := r.products[product.Name]; ok {
		return repository.ErrDuplicate
	}
	product.ID = r.nextID
	r.nextID++
	stored := *product
	r.products[product.Name] = &stored
	return nil
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	product, ok := r.products[name]
	if !ok {
		return nil, nil
	}
	found := *product
	return &found, nil
}

func (r *fakeProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.products[name]
	return ok, nil
}

// fakeReceiptRepo is an in-memory ReceiptRepository for service tests.
type fakeReceiptRepo struct {
	receipts    []entity.Receipt
	nextID      uint
	createCalls int
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{nextID: 1}
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	r.createCalls++
	receipt.ID = r.nextID
	r.nextID++
	for i := range receipt.Items {
		receipt.Items[i].ReceiptID = receipt.ID
	}
	r.receipts = append(r.receipts, *receipt)
	return nil
}

func (r *fakeReceiptRepo) GetByID(_ context.Context, id uint) (*entity.Receipt, error) {
	for i := range r.receipts {
		if r.receipts[i].ID == id {
			found := r.receipts[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) List(_ context.Context, filters *repository.ReceiptFilters) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for _, receipt := range r.receipts {
		if filters.PublicToken != nil && receipt.PublicToken != *filters.PublicToken {
			continue
		}
		if filters.UserID != nil && receipt.UserID != *filters.UserID {
			continue
		}
		out = append(out, receipt)
	}
	return out, nil
}

func newTestReceiptService() (*ReceiptService, *fakeReceiptRepo, *fakeProductRepo) {
	receiptRepo := newFakeReceiptRepo()
	productRepo := newFakeProductRepo()
	svc := NewReceiptService(receiptRepo, NewProductService(productRepo))
	return svc, receiptRepo, productRepo
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCreateReceiptComputesTotals(t *testing.T) {
	svc, _, _ := newTestReceiptService()

	receipt, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Bread", Price: 20, Quantity: intPtr(2)},
			{Name: "Milk", Price: 15.50, Quantity: intPtr(1)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 100},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if receipt.Total != 5550 {
		t.Errorf("total = %d, want 5550", receipt.Total)
	}
	if receipt.AmountPaid != 10000 {
		t.Errorf("amount paid = %d, want 10000", receipt.AmountPaid)
	}
	if receipt.Rest != 4450 {
		t.Errorf("rest = %d, want 4450", receipt.Rest)
	}
	if receipt.PublicToken == "" {
		t.Error("public token not generated")
	}
	if len(receipt.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(receipt.Items))
	}
	if receipt.Items[0].Total != 4000 {
		t.Errorf("first line total = %d, want 4000", receipt.Items[0].Total)
	}
	if receipt.Items[0].UnitPrice != 2000 {
		t.Errorf("first line unit price = %d, want 2000", receipt.Items[0].UnitPrice)
	}
}

func TestCreateReceiptExactPayment(t *testing.T) {
	svc, _, _ := newTestReceiptService()

	receipt, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Bread", Price: 20, Quantity: intPtr(2)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCashless, Amount: 40},
	})
	if err != nil {
		t.Fatalf("Create with exact payment: %v", err)
	}
	if receipt.Rest != 0 {
		t.Errorf("rest = %d, want 0", receipt.Rest)
	}
}

func TestCreateReceiptInsufficientFunds(t *testing.T) {
	svc, receiptRepo, productRepo := newTestReceiptService()

	_, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Bread", Price: 20, Quantity: intPtr(3)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 59.99},
	})
	if err == nil {
		t.Fatal("expected insufficient funds error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 400 {
		t.Errorf("code = %d, want 400", appErr.Code)
	}
	if receiptRepo.createCalls != 0 {
		t.Error("receipt was persisted despite insufficient funds")
	}
	if productRepo.createCalls != 0 {
		t.Error("product was created despite insufficient funds")
	}
}

func TestCreateReceiptQuantityWeightExclusivity(t *testing.T) {
	tests := []struct {
		name string
		item ReceiptItemInput
	}{
		{"both set", ReceiptItemInput{Name: "Cheese", Price: 30, Quantity: intPtr(1), Weight: floatPtr(1.5)}},
		{"neither set", ReceiptItemInput{Name: "Cheese", Price: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, receiptRepo, _ := newTestReceiptService()

			_, err := svc.Create(context.Background(), &CreateReceiptInput{
				UserID:  1,
				Items:   []ReceiptItemInput{tt.item},
				Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 100},
			})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if appErr := apperror.GetAppError(err); appErr.Code != 422 {
				t.Errorf("code = %d, want 422", appErr.Code)
			}
			if receiptRepo.createCalls != 0 {
				t.Error("receipt was persisted despite invalid input")
			}
		})
	}
}

func TestCreateReceiptWeightItemCountsOnce(t *testing.T) {
	svc, _, _ := newTestReceiptService()

	receipt, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Cheese", Price: 30, Weight: floatPtr(1.5)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 30},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if receipt.Total != 3000 {
		t.Errorf("total = %d, want 3000", receipt.Total)
	}
	if receipt.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", receipt.Items[0].Quantity)
	}
	if receipt.Items[0].Weight == nil || *receipt.Items[0].Weight != 1.5 {
		t.Errorf("weight = %v, want 1.5", receipt.Items[0].Weight)
	}
}

func TestCreateReceiptReusesCatalogEntries(t *testing.T) {
	svc, _, productRepo := newTestReceiptService()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), &CreateReceiptInput{
			UserID: 1,
			Items: []ReceiptItemInput{
				{Name: "Bread", Price: 20, Quantity: intPtr(1)},
			},
			Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 20},
		})
		if err != nil {
			t.Fatalf("Create #%d: %v", i+1, err)
		}
	}

	if len(productRepo.products) != 1 {
		t.Errorf("catalog has %d entries, want 1", len(productRepo.products))
	}
	// The catalog price is fixed at first sight; a later different price
	// must not mutate it.
	_, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Bread", Price: 25, Quantity: intPtr(1)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 25},
	})
	if err != nil {
		t.Fatalf("Create with drifted price: %v", err)
	}
	if got := productRepo.products["Bread"].Price; got != 2000 {
		t.Errorf("catalog price = %d, want 2000", got)
	}
}

// vanishingReceiptRepo accepts the write but never finds the row again,
// simulating a lost write.
type vanishingReceiptRepo struct {
	fakeReceiptRepo
}

func (r *vanishingReceiptRepo) GetByID(_ context.Context, _ uint) (*entity.Receipt, error) {
	return nil, nil
}

func TestCreateReceiptLostWriteIsConsistencyError(t *testing.T) {
	receiptRepo := &vanishingReceiptRepo{fakeReceiptRepo: *newFakeReceiptRepo()}
	svc := NewReceiptService(receiptRepo, NewProductService(newFakeProductRepo()))

	_, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Bread", Price: 20, Quantity: intPtr(1)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 20},
	})
	if err == nil {
		t.Fatal("expected consistency error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 500 {
		t.Errorf("code = %d, want 500", appErr.Code)
	}
}

func TestGetByPublicToken(t *testing.T) {
	svc, _, _ := newTestReceiptService()

	created, err := svc.Create(context.Background(), &CreateReceiptInput{
		UserID: 1,
		Items: []ReceiptItemInput{
			{Name: "Bread", Price: 20, Quantity: intPtr(1)},
		},
		Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 20},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := svc.GetByPublicToken(context.Background(), created.PublicToken)
	if err != nil {
		t.Fatalf("GetByPublicToken: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("found receipt %d, want %d", found.ID, created.ID)
	}

	_, err = svc.GetByPublicToken(context.Background(), "no-such-token")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestListFiltersByUser(t *testing.T) {
	svc, _, _ := newTestReceiptService()

	for _, userID := range []uint{1, 1, 2} {
		_, err := svc.Create(context.Background(), &CreateReceiptInput{
			UserID: userID,
			Items: []ReceiptItemInput{
				{Name: "Bread", Price: 20, Quantity: intPtr(1)},
			},
			Payment: PaymentInput{Type: enum.PaymentTypeCash, Amount: 20},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	userID := uint(1)
	receipts, err := svc.List(context.Background(), &repository.ReceiptFilters{UserID: &userID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(receipts) != 2 {
		t.Errorf("got %d receipts, want 2", len(receipts))
	}
	for _, receipt := range receipts {
		if receipt.UserID != 1 {
			t.Errorf("receipt %d belongs to user %d", receipt.ID, receipt.UserID)
		}
	}
}
