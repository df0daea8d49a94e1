package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/service/ledger"
)

// DataHandler serves export, import and the full reset.
type DataHandler struct {
	store  *ledger.Store
	logger *zap.Logger
}

// NewDataHandler constructs the HTTP handler adapter.
func NewDataHandler(store *ledger.Store, logger *zap.Logger) *DataHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataHandler{store: store, logger: logger}
}

// Export returns all three collections as a single backup document.
func (h *DataHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="milk_trade_data_backup.json"`)
	c.JSON(http.StatusOK, h.store.Export())
}

// Import merges an uploaded backup into the ledger. Records with matching IDs
// overwrite in place, new IDs append; a malformed payload aborts with no
// partial merge.
func (h *DataHandler) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	backup, err := ledger.ParseBackup(body)
	if err != nil {
		h.logger.Warn("import rejected", zap.Error(err))
		respondError(c, err)
		return
	}

	if err := h.store.ImportBackup(c.Request.Context(), backup); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}

// DeleteAll clears every collection and resets the ID counters. Whether to
// confirm first is the caller's concern, not the ledger's.
func (h *DataHandler) DeleteAll(c *gin.Context) {
	if err := h.store.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
