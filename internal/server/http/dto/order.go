package dto

import (
	"time"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// OrderEntryRequest is one requested line, quantity in display units.
type OrderEntryRequest struct {
	ItemID   int64   `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Comment  string  `json:"comment,omitempty"`
}

// OrderRequest is the payload for creating an order.
type OrderRequest struct {
	CustomerName string              `json:"customer_name"`
	Contact      string              `json:"contact,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	ClientID     *int64              `json:"client_id,omitempty"`
	Entries      []OrderEntryRequest `json:"entries"`
}

// OrderStatusRequest carries a status transition.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderEntryResponse mirrors one stored line entry.
type OrderEntryResponse struct {
	ID           int64   `json:"id"`
	ItemID       int64   `json:"item_id"`
	Name         string  `json:"name"`
	QuantityType string  `json:"quantity_type"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     float64 `json:"quantity"`
	Comment      string  `json:"comment,omitempty"`
}

// FinancialsResponse carries the derived money amounts of an order.
type FinancialsResponse struct {
	ProductTotal float64 `json:"product_total"`
	TransportFee float64 `json:"transport_fee"`
	GrandTotal   float64 `json:"grand_total"`
}

// OrderResponse mirrors one order with entries and financials.
type OrderResponse struct {
	ID           int64                `json:"id"`
	CustomerName string               `json:"customer_name"`
	Contact      string               `json:"contact,omitempty"`
	Notes        string               `json:"notes,omitempty"`
	ClientID     *int64               `json:"client_id,omitempty"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	Entries      []OrderEntryResponse `json:"entries"`
	Financials   FinancialsResponse   `json:"financials"`
}

// NewOrderResponse maps a model order plus derived financials.
func NewOrderResponse(order model.Order, fin model.OrderFinancials) OrderResponse {
	entries := make([]OrderEntryResponse, 0, len(order.Entries))
	for _, e := range order.Entries {
		entries = append(entries, OrderEntryResponse{
			ID:           e.ID,
			ItemID:       e.ItemID,
			Name:         e.Name,
			QuantityType: string(e.QuantityType),
			UnitPrice:    e.UnitPrice,
			Quantity:     e.Quantity,
			Comment:      e.Comment,
		})
	}
	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Contact:      order.Contact,
		Notes:        order.Notes,
		ClientID:     order.ClientID,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
		Entries:      entries,
		Financials: FinancialsResponse{
			ProductTotal: fin.ProductTotal,
			TransportFee: fin.TransportFee,
			GrandTotal:   fin.GrandTotal,
		},
	}
}
