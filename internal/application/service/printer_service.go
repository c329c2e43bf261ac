package service

import (
	"context"
	"fmt"
	"log"

	"github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"github.com/daniiloleshchuk/checkbox-api/pkg/apperror"
	"github.com/daniiloleshchuk/checkbox-api/pkg/printer"
)

// PrinterService sends rendered receipts to a thermal printer
type PrinterService struct {
	printer     printer.Printer
	receiptRepo repository.ReceiptRepository
	printerType string
	lineWidth   int
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, receiptRepo repository.ReceiptRepository, printerType string, lineWidth int) *PrinterService {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	return &PrinterService{
		printer:     p,
		receiptRepo: receiptRepo,
		printerType: printerType,
		lineWidth:   lineWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt fetches a receipt, renders it with the configured width and
// sends it to the printer. Only the owning user may print a receipt.
func (s *PrinterService) PrintReceipt(ctx context.Context, receiptID, userID uint) (string, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return "", err
	}
	if receipt == nil {
		return "", apperror.NewNotFoundError("Receipt")
	}
	if receipt.UserID != userID {
		return "", apperror.ErrForbidden
	}

	text := FormatReceipt(receipt, s.lineWidth)

	doc := printer.NewDocument()
	doc.SetAlign(printer.AlignLeft).
		Block(text).
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		log.Printf("Printer error (receipt %d): %v", receiptID, err)
		return text, fmt.Errorf("failed to print receipt: %w", err)
	}

	return text, nil
}
