// Package handlers adapts the ledger services to HTTP. Handlers only parse
// request state, call into the store or view pipeline, and translate errors;
// all computation lives in the service packages.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/query"
	"github.com/mamadbah2/dairyledger/internal/service/views"
)

// parseListQuery extracts the shared listing view-state from query params.
func parseListQuery(c *gin.Context) views.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return views.Query{
		Search: c.Query("search"),
		Range: query.DateRange{
			Start: c.Query("start"),
			End:   c.Query("end"),
		},
		Sort: query.SortConfig{
			Column:    c.Query("sort"),
			Direction: query.Direction(c.Query("dir")),
		},
		Page: page,
	}
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var validation *ledger.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validation.Message,
			"field": validation.Field,
		})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, ledger.ErrImportFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
