package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/dto"
	"github.com/AlexisMGL/HappyCheese/internal/store"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. Orders come back newest first with derived
// financials attached.
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.facade.Orders()
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.NewOrderResponse(o, h.facade.OrderFinancials(o)))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entries := make([]store.OrderEntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, store.OrderEntryInput{
			ItemID:          e.ItemID,
			DisplayQuantity: e.Quantity,
			Comment:         e.Comment,
		})
	}

	order, err := h.facade.AddOrder(c.Request.Context(), store.OrderInput{
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Notes:        req.Notes,
		ClientID:     req.ClientID,
		Entries:      entries,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(*order, h.facade.OrderFinancials(*order)))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveOrder(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
