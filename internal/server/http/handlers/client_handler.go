package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/server/http/dto"
)

// ClientHandler manages client endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

// List handles GET /api/clients, sorted alphabetically.
func (h *ClientHandler) List(c *gin.Context) {
	clients := h.facade.Clients()
	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		resp = append(resp, dto.NewClientResponse(cl))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.AddClient(c.Request.Context(), req.Name, req.Contact)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewClientResponse(*client))
}

// Delete handles DELETE /api/clients/:id. Removal cascades: the client's
// orders lose their reference and their movements disappear.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveClient(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
