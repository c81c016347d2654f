package dto

import (
	"time"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// ConsignTypeRequest is the payload for creating a container kind.
type ConsignTypeRequest struct {
	Label string `json:"label"`
}

// ConsignTypeResponse mirrors one container kind.
type ConsignTypeResponse struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// NewConsignTypeResponse maps a model consign type.
func NewConsignTypeResponse(t model.ConsignType) ConsignTypeResponse {
	return ConsignTypeResponse{ID: t.ID, Label: t.Label, CreatedAt: t.CreatedAt}
}

// ConsignItemRequest is one (type, quantity) line of a transaction.
type ConsignItemRequest struct {
	TypeID   int64   `json:"type_id"`
	Quantity float64 `json:"quantity"`
}

// ConsignTransactionRequest is the payload for assign/return operations.
type ConsignTransactionRequest struct {
	ClientID int64                `json:"client_id"`
	Note     string               `json:"note,omitempty"`
	Items    []ConsignItemRequest `json:"items"`
}

// ConsignTotalResponse mirrors one outstanding balance.
type ConsignTotalResponse struct {
	ClientID int64 `json:"client_id"`
	TypeID   int64 `json:"type_id"`
	Quantity int64 `json:"quantity"`
}
