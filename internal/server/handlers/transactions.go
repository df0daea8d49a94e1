package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/views"
)

// TransactionHandler serves the transaction listing and mutations.
type TransactionHandler struct {
	store  *ledger.Store
	views  *views.Service
	logger *zap.Logger
}

// NewTransactionHandler constructs the HTTP handler adapter.
func NewTransactionHandler(store *ledger.Store, viewSvc *views.Service, logger *zap.Logger) *TransactionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionHandler{store: store, views: viewSvc, logger: logger}
}

// transactionRequest omits the transaction type on purpose; the store derives
// it from the customer.
type transactionRequest struct {
	CustomerID string          `json:"customerId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	MilkType   string          `json:"milkType"`
	Shift      string          `json:"shift"`
	Date       string          `json:"date"`
}

func (r transactionRequest) input() ledger.TransactionInput {
	return ledger.TransactionInput{
		CustomerID: r.CustomerID,
		Quantity:   r.Quantity,
		Rate:       r.Rate,
		MilkType:   r.MilkType,
		Shift:      r.Shift,
		Date:       r.Date,
	}
}

// List returns one filtered, sorted page of transactions with milk totals.
func (h *TransactionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.Transactions(parseListQuery(c)))
}

// Create adds a transaction.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid transaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	transaction, err := h.store.AddTransaction(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// Update replaces an existing transaction's editable fields.
func (h *TransactionHandler) Update(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid transaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	transaction, err := h.store.UpdateTransaction(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
