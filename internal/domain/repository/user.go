package repository

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, profile model.Profile) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, profile model.Profile) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
