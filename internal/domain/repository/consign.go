package repository

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// ConsignTypeRepository describes persistence of returnable container kinds.
type ConsignTypeRepository interface {
	List(ctx context.Context) ([]model.ConsignType, error)
	Create(ctx context.Context, label string) (*model.ConsignType, error)
	Delete(ctx context.Context, id int64) error
}

// ConsignMovementRepository manages the append-only deposit ledger.
// InsertBatch writes all rows of one transaction atomically; the delete
// methods exist only for cascading client/type removal.
type ConsignMovementRepository interface {
	List(ctx context.Context) ([]model.ConsignMovement, error)
	InsertBatch(ctx context.Context, movements []model.ConsignMovement) ([]model.ConsignMovement, error)
	DeleteByClient(ctx context.Context, clientID int64) error
	DeleteByType(ctx context.Context, typeID int64) error
}
