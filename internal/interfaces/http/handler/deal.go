package handler

import (
	"github.com/gin-gonic/gin"
	crmapp "github.com/onboard/backend/internal/application/crm"
)

// DealHandler handles read-only CRM deal endpoints
type DealHandler struct {
	BaseHandler
	dealService *crmapp.DealService
}

// NewDealHandler creates a new DealHandler
func NewDealHandler(dealService *crmapp.DealService) *DealHandler {
	return &DealHandler{
		dealService: dealService,
	}
}

// List returns all closed-won deals from the CRM
func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.dealService.ListClosedWon(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, deals)
}

// Get returns a single deal by its CRM record ID
func (h *DealHandler) Get(c *gin.Context) {
	deal, err := h.dealService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, deal)
}
