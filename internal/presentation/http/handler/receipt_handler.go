package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/daniiloleshchuk/checkbox-api/internal/application/service"
	"github.com/daniiloleshchuk/checkbox-api/internal/domain/enum"
	domainRepo "github.com/daniiloleshchuk/checkbox-api/internal/domain/repository"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/dto/request"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/dto/response"
	"github.com/daniiloleshchuk/checkbox-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	printerService *service.PrinterService
	lineWidth      int
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, printerService *service.PrinterService, lineWidth int) *ReceiptHandler {
	if lineWidth <= 0 {
		lineWidth = service.DefaultLineWidth
	}
	return &ReceiptHandler{
		receiptService: receiptService,
		printerService: printerService,
		lineWidth:      lineWidth,
	}
}

// Create handles receipt creation
// @Summary Create receipt
// @Description Create a receipt with its line items
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body request.ReceiptCreateRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.ReceiptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.ReceiptItemInput, len(req.Products))
	for i, p := range req.Products {
		items[i] = service.ReceiptItemInput{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
			Weight:   p.Weight,
		}
	}

	receipt, err := h.receiptService.Create(c.Request.Context(), &service.CreateReceiptInput{
		UserID: *userID,
		Items:  items,
		Payment: service.PaymentInput{
			Type:   enum.PaymentType(req.Payment.Type),
			Amount: req.Payment.Amount,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// List handles filtered receipt listing for the authenticated user
// @Summary List receipts
// @Description List the authenticated user's receipts with optional filters
// @Tags receipts
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Skip count"
// @Param min_created_at query string false "Inclusive lower creation bound (RFC3339)"
// @Param max_created_at query string false "Inclusive upper creation bound (RFC3339)"
// @Param min_total query number false "Inclusive lower total bound"
// @Param max_total query number false "Inclusive upper total bound"
// @Param payment_type query string false "cash or cashless"
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	filters, err := h.parseFilters(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filters.UserID = userID

	receipts, err := h.receiptService.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts retrieved", pagination.NewListResult(receipts))
}

// parseFilters reads the optional listing constraints from the query string.
// Monetary bounds arrive as decimal amounts and are converted to cents.
func (h *ReceiptHandler) parseFilters(c *gin.Context) (*domainRepo.ReceiptFilters, error) {
	filters := &domainRepo.ReceiptFilters{
		LimitOffsetParams: pagination.LimitOffsetParams{
			Limit:  pagination.DefaultLimit,
			Offset: 0,
		},
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return nil, errInvalidQueryParam("limit")
		}
		filters.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return nil, errInvalidQueryParam("offset")
		}
		filters.Offset = offset
	}
	if v := c.Query("min_created_at"); v != "" {
		t, err := parseTimeParam(v)
		if err != nil {
			return nil, errInvalidQueryParam("min_created_at")
		}
		filters.MinCreatedAt = &t
	}
	if v := c.Query("max_created_at"); v != "" {
		t, err := parseTimeParam(v)
		if err != nil {
			return nil, errInvalidQueryParam("max_created_at")
		}
		filters.MaxCreatedAt = &t
	}
	if v := c.Query("min_total"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errInvalidQueryParam("min_total")
		}
		cents := int64(math.Round(amount * 100))
		filters.MinTotal = &cents
	}
	if v := c.Query("max_total"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errInvalidQueryParam("max_total")
		}
		cents := int64(math.Round(amount * 100))
		filters.MaxTotal = &cents
	}
	if v := c.Query("payment_type"); v != "" {
		pt := enum.PaymentType(v)
		if !pt.IsValid() {
			return nil, errInvalidQueryParam("payment_type")
		}
		filters.PaymentType = &pt
	}

	return filters, nil
}

// GetByPublicToken serves the shared plain-text view of a receipt. No
// authentication is required, only knowledge of the token.
// @Summary Public receipt view
// @Description Get the rendered plain-text receipt by its public token
// @Tags receipts
// @Produce plain
// @Param public_token path string true "Public token"
// @Param line_width query int false "Render width in characters"
// @Success 200 {string} string
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{public_token} [get]
func (h *ReceiptHandler) GetByPublicToken(c *gin.Context) {
	token := c.Param("public_token")

	lineWidth := h.lineWidth
	if v := c.Query("line_width"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w <= 0 {
			response.BadRequest(c, "Invalid query parameter: line_width")
			return
		}
		lineWidth = w
	}

	receipt, err := h.receiptService.GetByPublicToken(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, service.FormatReceipt(receipt, lineWidth))
}

// Print renders a receipt and sends it to the configured printer
// @Summary Print receipt
// @Description Send the rendered receipt to the thermal printer
// @Tags receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id}/print [post]
func (h *ReceiptHandler) Print(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	text, err := h.printerService.PrintReceipt(c.Request.Context(), uint(id), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", gin.H{
		"text": text,
	})
}

// PrinterStatus returns the printer connection status
// @Summary Printer status
// @Tags receipts
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// parseTimeParam accepts RFC3339 timestamps and bare dates
func parseTimeParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

type queryParamError struct {
	param string
}

func (e *queryParamError) Error() string {
	return "Invalid query parameter: " + e.param
}

func errInvalidQueryParam(param string) error {
	return &queryParamError{param: param}
}
