package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/dairyledger/internal/service/views"
)

// DashboardHandler serves the balances overview.
type DashboardHandler struct {
	views *views.Service
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(viewSvc *views.Service) *DashboardHandler {
	return &DashboardHandler{views: viewSvc}
}

// Overview returns the headline totals plus one filtered, sorted page of
// customer balances.
func (h *DashboardHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.views.Dashboard(parseListQuery(c)))
}
