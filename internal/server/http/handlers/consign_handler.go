package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/dto"
	"github.com/AlexisMGL/HappyCheese/internal/store"
)

// ConsignHandler manages deposit-tracking endpoints.
type ConsignHandler struct {
	facade ConsignFacade
}

// NewConsignHandler constructs ConsignHandler.
func NewConsignHandler(facade ConsignFacade) *ConsignHandler {
	return &ConsignHandler{facade: facade}
}

// ListTypes handles GET /api/consigns/types.
func (h *ConsignHandler) ListTypes(c *gin.Context) {
	types := h.facade.ConsignTypes()
	resp := make([]dto.ConsignTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, dto.NewConsignTypeResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateType handles POST /api/consigns/types.
func (h *ConsignHandler) CreateType(c *gin.Context) {
	var req dto.ConsignTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	t, err := h.facade.AddConsignType(c.Request.Context(), req.Label)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewConsignTypeResponse(*t))
}

// DeleteType handles DELETE /api/consigns/types/:id.
func (h *ConsignHandler) DeleteType(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveConsignType(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Totals handles GET /api/consigns/totals. Net-zero pairs never appear.
func (h *ConsignHandler) Totals(c *gin.Context) {
	totals := h.facade.ConsignTotals()
	resp := make([]dto.ConsignTotalResponse, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, dto.ConsignTotalResponse{ClientID: t.ClientID, TypeID: t.TypeID, Quantity: t.Quantity})
	}
	c.JSON(http.StatusOK, resp)
}

// Assign handles POST /api/consigns/assign.
func (h *ConsignHandler) Assign(c *gin.Context) {
	tx, ok := h.bindTransaction(c)
	if !ok {
		return
	}
	if err := h.facade.AssignConsigns(c.Request.Context(), tx); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Return handles POST /api/consigns/return. Over-returns are rejected whole.
func (h *ConsignHandler) Return(c *gin.Context) {
	tx, ok := h.bindTransaction(c)
	if !ok {
		return
	}
	if err := h.facade.ReturnConsigns(c.Request.Context(), tx); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *ConsignHandler) bindTransaction(c *gin.Context) (store.ConsignTransaction, bool) {
	var req dto.ConsignTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return store.ConsignTransaction{}, false
	}

	items := make([]model.ConsignItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.ConsignItemInput{TypeID: it.TypeID, Quantity: it.Quantity})
	}
	return store.ConsignTransaction{ClientID: req.ClientID, Note: req.Note, Items: items}, true
}
