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

// CustomerHandler serves the customer listing and mutations.
type CustomerHandler struct {
	store  *ledger.Store
	views  *views.Service
	logger *zap.Logger
}

// NewCustomerHandler constructs the HTTP handler adapter.
func NewCustomerHandler(store *ledger.Store, viewSvc *views.Service, logger *zap.Logger) *CustomerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerHandler{store: store, views: viewSvc, logger: logger}
}

type customerRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Phone           string          `json:"phone"`
	DefaultQuantity decimal.Decimal `json:"defaultQuantity"`
	DefaultRate     decimal.Decimal `json:"defaultRate"`
	DefaultMilkType string          `json:"defaultMilkType"`
}

func (r customerRequest) input() ledger.CustomerInput {
	return ledger.CustomerInput{
		Name:            r.Name,
		Type:            models.CustomerType(r.Type),
		Phone:           r.Phone,
		DefaultQuantity: r.DefaultQuantity,
		DefaultRate:     r.DefaultRate,
		DefaultMilkType: r.DefaultMilkType,
	}
}

// List returns one filtered, sorted page of customers.
func (h *CustomerHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.Customers(parseListQuery(c)))
}

// Create adds a customer.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.store.AddCustomer(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Update replaces an existing customer's editable fields.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.store.UpdateCustomer(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer and cascades to their transactions and payments.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
