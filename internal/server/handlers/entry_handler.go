package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/domain/models"
	"github.com/pier41/crabhouse/internal/service/entries"
)

// EntryHandler exposes the three spreadsheet write paths.
type EntryHandler struct {
	svc    *entries.Service
	logger *zap.Logger
}

// NewEntryHandler constructs the entry logging HTTP adapter.
func NewEntryHandler(svc *entries.Service, logger *zap.Logger) *EntryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryHandler{svc: svc, logger: logger}
}

// SubmitInvoices logs a batch of distributor invoice entries.
func (h *EntryHandler) SubmitInvoices(c *gin.Context) {
	var payload struct {
		Entries []models.InvoiceEntry `json:"entries" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid invoice payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.SubmitInvoices(c.Request.Context(), payload.Entries); err != nil {
		if errors.Is(err, entries.ErrNoEntries) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no entries provided"})
			return
		}
		h.logger.Error("failed logging invoices", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to sync with the ledger"})
		return
	}

	c.Status(http.StatusCreated)
}

// SubmitEndOfDay logs the closing report.
func (h *EntryHandler) SubmitEndOfDay(c *gin.Context) {
	var report models.EndOfDayReport
	if err := c.ShouldBindJSON(&report); err != nil {
		h.logger.Warn("invalid eod payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.SubmitEndOfDay(c.Request.Context(), report); err != nil {
		h.logger.Error("failed logging eod report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to sync with the ledger"})
		return
	}

	c.Status(http.StatusCreated)
}

// SubmitWeeklyBreakdown logs the per-worker grading breakdown.
func (h *EntryHandler) SubmitWeeklyBreakdown(c *gin.Context) {
	var breakdown models.WeeklyBreakdown
	if err := c.ShouldBindJSON(&breakdown); err != nil {
		h.logger.Warn("invalid breakdown payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.SubmitWeeklyBreakdown(c.Request.Context(), breakdown); err != nil {
		h.logger.Error("failed logging weekly breakdown", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to sync with the ledger"})
		return
	}

	c.Status(http.StatusCreated)
}
