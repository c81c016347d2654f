package repository

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// OrderRepository describes persistence operations for orders and their
// line entries. Create inserts the header and all entries atomically.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	Delete(ctx context.Context, id int64) error
	ClearClient(ctx context.Context, clientID int64) error
}
