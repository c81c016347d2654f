package handlers

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/store"
)

// AuthFacade describes identity capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, email, password string, profile model.Profile) (*model.User, string, error)
	SignIn(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	User(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, profile model.Profile) error
	ChangePassword(ctx context.Context, id int64, current, next string) error
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	Items() []model.CheeseItem
	AddItem(ctx context.Context, in store.ItemInput) (*model.CheeseItem, error)
	UpdateItem(ctx context.Context, id int64, in store.ItemInput) (*model.CheeseItem, error)
	RemoveItem(ctx context.Context, id int64) error
	InputStep(item model.CheeseItem) float64
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders() []model.Order
	AddOrder(ctx context.Context, in store.OrderInput) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error
	RemoveOrder(ctx context.Context, id int64) error
	OrderFinancials(order model.Order) model.OrderFinancials
}

// ClientFacade encapsulates client operations exposed via HTTP.
type ClientFacade interface {
	Clients() []model.Client
	AddClient(ctx context.Context, name, contact string) (*model.Client, error)
	RemoveClient(ctx context.Context, id int64) error
}

// ConsignFacade encapsulates deposit operations exposed via HTTP.
type ConsignFacade interface {
	ConsignTypes() []model.ConsignType
	AddConsignType(ctx context.Context, label string) (*model.ConsignType, error)
	RemoveConsignType(ctx context.Context, id int64) error
	ConsignTotals() []model.ConsignTotal
	AssignConsigns(ctx context.Context, tx store.ConsignTransaction) error
	ReturnConsigns(ctx context.Context, tx store.ConsignTransaction) error
}

// DairyFacade aggregates the full set of operations used across handlers.
type DairyFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	ClientFacade
	ConsignFacade
	Loading() bool
}
