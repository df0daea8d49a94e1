package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/query"
	"github.com/mamadbah2/dairyledger/internal/service/reporting"
)

// ReportHandler serves period aggregates and the missing-deliveries check.
type ReportHandler struct {
	store *ledger.Store
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(store *ledger.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// Period returns traded totals, settlements and the daily series for the
// requested date range.
func (h *ReportHandler) Period(c *gin.Context) {
	snap := h.store.Snapshot()
	r := query.DateRange{Start: c.Query("start"), End: c.Query("end")}
	c.JSON(http.StatusOK, reporting.GeneratePeriodReport(snap.Transactions, snap.Payments, r))
}

// Missing lists customers with no transaction on the given date.
func (h *ReportHandler) Missing(c *gin.Context) {
	snap := h.store.Snapshot()
	missing := reporting.CustomersWithoutTransactionsOn(snap.Customers, snap.Transactions, c.Query("date"))
	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "customers": missing})
}
