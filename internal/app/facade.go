package app

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/config"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/domain/repository"
	"github.com/AlexisMGL/HappyCheese/internal/store"
	"github.com/AlexisMGL/HappyCheese/internal/usecase"
)

// DairyFacade aggregates the store, auth use case and derived value helpers
// behind one surface consumed by handlers and the reconciler.
type DairyFacade struct {
	store      *store.Store
	auth       *usecase.AuthUseCase
	movements  repository.ConsignMovementRepository
	rules      usecase.QuantityRules
	feePerLine float64
}

// NewDairyFacade constructs DairyFacade.
func NewDairyFacade(st *store.Store, auth *usecase.AuthUseCase, movements repository.ConsignMovementRepository, cfg *config.Config, rules usecase.QuantityRules) *DairyFacade {
	return &DairyFacade{
		store:      st,
		auth:       auth,
		movements:  movements,
		rules:      rules,
		feePerLine: cfg.TransportFeePerLine,
	}
}

// --- identity ---

func (f *DairyFacade) SignUp(ctx context.Context, email, password string, profile model.Profile) (*model.User, string, error) {
	return f.auth.SignUp(ctx, email, password, profile)
}

func (f *DairyFacade) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.SignIn(ctx, email, password)
}

func (f *DairyFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *DairyFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *DairyFacade) UpdateProfile(ctx context.Context, id int64, profile model.Profile) error {
	return f.auth.UpdateProfile(ctx, id, profile)
}

func (f *DairyFacade) ChangePassword(ctx context.Context, id int64, current, next string) error {
	return f.auth.ChangePassword(ctx, id, current, next)
}

// --- catalog ---

func (f *DairyFacade) Items() []model.CheeseItem { return f.store.Items() }

func (f *DairyFacade) AddItem(ctx context.Context, in store.ItemInput) (*model.CheeseItem, error) {
	return f.store.AddItem(ctx, in)
}

func (f *DairyFacade) UpdateItem(ctx context.Context, id int64, in store.ItemInput) (*model.CheeseItem, error) {
	return f.store.UpdateItem(ctx, id, in)
}

func (f *DairyFacade) RemoveItem(ctx context.Context, id int64) error {
	return f.store.RemoveItem(ctx, id)
}

// InputStep returns the UI increment for an item.
func (f *DairyFacade) InputStep(item model.CheeseItem) float64 {
	return f.rules.InputStep(item)
}

// --- orders ---

func (f *DairyFacade) Orders() []model.Order { return f.store.Orders() }

func (f *DairyFacade) AddOrder(ctx context.Context, in store.OrderInput) (*model.Order, error) {
	return f.store.AddOrder(ctx, in)
}

func (f *DairyFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return f.store.UpdateOrderStatus(ctx, id, status)
}

func (f *DairyFacade) RemoveOrder(ctx context.Context, id int64) error {
	return f.store.RemoveOrder(ctx, id)
}

// OrderFinancials derives the money amounts of one order.
func (f *DairyFacade) OrderFinancials(order model.Order) model.OrderFinancials {
	return usecase.ComputeOrderFinancials(order, f.feePerLine)
}

// --- clients ---

func (f *DairyFacade) Clients() []model.Client { return f.store.Clients() }

func (f *DairyFacade) AddClient(ctx context.Context, name, contact string) (*model.Client, error) {
	return f.store.AddClient(ctx, name, contact)
}

func (f *DairyFacade) RemoveClient(ctx context.Context, id int64) error {
	return f.store.RemoveClient(ctx, id)
}

// --- consigns ---

func (f *DairyFacade) ConsignTypes() []model.ConsignType { return f.store.ConsignTypes() }

func (f *DairyFacade) AddConsignType(ctx context.Context, label string) (*model.ConsignType, error) {
	return f.store.AddConsignType(ctx, label)
}

func (f *DairyFacade) RemoveConsignType(ctx context.Context, id int64) error {
	return f.store.RemoveConsignType(ctx, id)
}

func (f *DairyFacade) ConsignTotals() []model.ConsignTotal { return f.store.ConsignTotals() }

func (f *DairyFacade) AssignConsigns(ctx context.Context, tx store.ConsignTransaction) error {
	return f.store.AssignConsigns(ctx, tx)
}

func (f *DairyFacade) ReturnConsigns(ctx context.Context, tx store.ConsignTransaction) error {
	return f.store.ReturnConsigns(ctx, tx)
}

// MovementLog reads the full deposit movement log for reconciliation.
func (f *DairyFacade) MovementLog(ctx context.Context) ([]model.ConsignMovement, error) {
	return f.movements.List(ctx)
}

// ReplaceConsignTotals swaps the store's balance cache for an authoritative fold.
func (f *DairyFacade) ReplaceConsignTotals(totals []model.ConsignTotal) {
	f.store.ReplaceConsignTotals(totals)
}

// Loading reports whether the initial load has settled.
func (f *DairyFacade) Loading() bool { return f.store.Loading() }
