package dto

import "github.com/AlexisMGL/HappyCheese/internal/domain/model"

// ItemRequest is the payload for creating or updating a catalog item.
type ItemRequest struct {
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	QuantityType   string   `json:"quantity_type"`
	Multiple       *float64 `json:"multiple,omitempty"`
	Step           *float64 `json:"step,omitempty"`
	CommentEnabled bool     `json:"comment_enabled"`
}

// ItemResponse mirrors one catalog item, including the resolved UI step.
type ItemResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	QuantityType   string   `json:"quantity_type"`
	Multiple       *float64 `json:"multiple,omitempty"`
	Step           *float64 `json:"step,omitempty"`
	CommentEnabled bool     `json:"comment_enabled"`
	InputStep      float64  `json:"input_step"`
}

// NewItemResponse maps a model item to its response form.
func NewItemResponse(item model.CheeseItem, inputStep float64) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Price:          item.Price,
		QuantityType:   string(item.QuantityType),
		Multiple:       item.Multiple,
		Step:           item.Step,
		CommentEnabled: item.CommentEnabled,
		InputStep:      inputStep,
	}
}
