package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/dto"
	"github.com/AlexisMGL/HappyCheese/internal/store"
)

// CatalogHandler manages catalog item endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/items.
func (h *CatalogHandler) List(c *gin.Context) {
	items := h.facade.Items()
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.NewItemResponse(it, h.facade.InputStep(it)))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/items.
func (h *CatalogHandler) Create(c *gin.Context) {
	in, ok := h.bindItem(c)
	if !ok {
		return
	}

	item, err := h.facade.AddItem(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewItemResponse(*item, h.facade.InputStep(*item)))
}

// Update handles PUT /api/items/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	in, ok := h.bindItem(c)
	if !ok {
		return
	}

	item, err := h.facade.UpdateItem(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponse(*item, h.facade.InputStep(*item)))
}

// Delete handles DELETE /api/items/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveItem(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) bindItem(c *gin.Context) (store.ItemInput, bool) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return store.ItemInput{}, false
	}
	return store.ItemInput{
		Name:           req.Name,
		Price:          req.Price,
		QuantityType:   model.QuantityType(req.QuantityType),
		Multiple:       req.Multiple,
		Step:           req.Step,
		CommentEnabled: req.CommentEnabled,
	}, true
}
