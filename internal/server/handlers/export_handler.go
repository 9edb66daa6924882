package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/service/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves ledger downloads.
type ExportHandler struct {
	svc    *export.Service
	logger *zap.Logger
}

// NewExportHandler constructs the export HTTP adapter.
func NewExportHandler(svc *export.Service, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{svc: svc, logger: logger}
}

// ExportEoD streams the EoD ledger as an .xlsx download.
func (h *ExportHandler) ExportEoD(c *gin.Context) {
	data, err := h.svc.ExportEoDLedger(c.Request.Context())
	if err != nil {
		if errors.Is(err, export.ErrEmptyLedger) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ledger is empty"})
			return
		}
		h.logger.Error("failed exporting eod ledger", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read the ledger"})
		return
	}

	filename := fmt.Sprintf("eod_ledger_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
