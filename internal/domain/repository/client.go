package repository

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// ClientRepository describes persistence operations for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	Create(ctx context.Context, name string, contact *string) (*model.Client, error)
	Delete(ctx context.Context, id int64) error
}
