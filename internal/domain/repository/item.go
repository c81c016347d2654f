package repository

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// ItemRepository describes persistence operations for catalog items.
type ItemRepository interface {
	List(ctx context.Context) ([]model.CheeseItem, error)
	Create(ctx context.Context, item model.CheeseItem) (*model.CheeseItem, error)
	Update(ctx context.Context, item model.CheeseItem) (*model.CheeseItem, error)
	Delete(ctx context.Context, id int64) error
}
