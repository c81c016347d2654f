package dto

import (
	"time"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// ClientRequest is the payload for creating a client.
type ClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// ClientResponse mirrors one client.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   *string   `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClientResponse maps a model client.
func NewClientResponse(c model.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Contact: c.Contact, CreatedAt: c.CreatedAt}
}
