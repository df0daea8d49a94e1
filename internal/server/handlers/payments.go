package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/views"
)

// PaymentHandler serves the payment listing and mutations.
type PaymentHandler struct {
	store  *ledger.Store
	views  *views.Service
	logger *zap.Logger
}

// NewPaymentHandler constructs the HTTP handler adapter.
func NewPaymentHandler(store *ledger.Store, viewSvc *views.Service, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{store: store, views: viewSvc, logger: logger}
}

type paymentRequest struct {
	CustomerID string          `json:"customerId"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
}

func (r paymentRequest) input() ledger.PaymentInput {
	return ledger.PaymentInput{
		CustomerID: r.CustomerID,
		Type:       models.PaymentType(r.Type),
		Amount:     r.Amount,
		Date:       r.Date,
	}
}

// List returns one filtered, sorted page of payments.
func (h *PaymentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.Payments(parseListQuery(c)))
}

// Create adds a payment.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid payment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.store.AddPayment(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// Update replaces an existing payment's editable fields.
func (h *PaymentHandler) Update(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid payment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.store.UpdatePayment(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// Delete removes a payment.
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.store.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
