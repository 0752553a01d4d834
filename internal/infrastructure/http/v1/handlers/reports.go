package handlers

import (
	"github.com/gin-gonic/gin"

	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/infrastructure/http/v1/dto"
)

// ReportHandler serves the derived views of the registers.
type ReportHandler struct {
	*BaseHandler
	inventory *inventory.Service
	hardening *hardening.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, inv *inventory.Service, hard *hardening.Service) *ReportHandler {
	return &ReportHandler{
		BaseHandler: base,
		inventory:   inv,
		hardening:   hard,
	}
}

// InventoryBalances returns the on-hand quantity of every item.
// GET /api/v1/registers/inventory/balances
func (h *ReportHandler) InventoryBalances(c *gin.Context) {
	balances, err := h.inventory.Balances(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.BalanceListResponse{Items: balances})
}

// HardeningSummary returns survival per hardening stage.
// GET /api/v1/registers/hardening/summary
func (h *ReportHandler) HardeningSummary(c *gin.Context) {
	summary, err := h.hardening.Summary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": summary})
}
