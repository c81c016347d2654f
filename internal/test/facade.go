package test

import (
	"context"

	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/store"
)

// FacadeStub implements the handlers' facade interfaces with overridable
// functions. The zero value answers every call with empty data and success.
type FacadeStub struct {
	SignUpFn            func(ctx context.Context, email, password string, profile model.Profile) (*model.User, string, error)
	SignInFn            func(ctx context.Context, email, password string) (*model.User, string, error)
	ParseTokenFn        func(token string) (int64, error)
	UserFn              func(ctx context.Context, id int64) (*model.User, error)
	UpdateProfileFn     func(ctx context.Context, id int64, profile model.Profile) error
	ChangePasswordFn    func(ctx context.Context, id int64, current, next string) error
	ItemsFn             func() []model.CheeseItem
	AddItemFn           func(ctx context.Context, in store.ItemInput) (*model.CheeseItem, error)
	UpdateItemFn        func(ctx context.Context, id int64, in store.ItemInput) (*model.CheeseItem, error)
	RemoveItemFn        func(ctx context.Context, id int64) error
	OrdersFn            func() []model.Order
	AddOrderFn          func(ctx context.Context, in store.OrderInput) (*model.Order, error)
	UpdateOrderStatusFn func(ctx context.Context, id int64, status model.OrderStatus) error
	RemoveOrderFn       func(ctx context.Context, id int64) error
	ClientsFn           func() []model.Client
	AddClientFn         func(ctx context.Context, name, contact string) (*model.Client, error)
	RemoveClientFn      func(ctx context.Context, id int64) error
	ConsignTypesFn      func() []model.ConsignType
	AddConsignTypeFn    func(ctx context.Context, label string) (*model.ConsignType, error)
	RemoveConsignTypeFn func(ctx context.Context, id int64) error
	ConsignTotalsFn     func() []model.ConsignTotal
	AssignConsignsFn    func(ctx context.Context, tx store.ConsignTransaction) error
	ReturnConsignsFn    func(ctx context.Context, tx store.ConsignTransaction) error
	LoadingVal          bool
}

func (f FacadeStub) SignUp(ctx context.Context, email, password string, profile model.Profile) (*model.User, string, error) {
	if f.SignUpFn != nil {
		return f.SignUpFn(ctx, email, password, profile)
	}
	return &model.User{ID: 1, Email: email, Profile: profile}, "token", nil
}

func (f FacadeStub) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	if f.SignInFn != nil {
		return f.SignInFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

func (f FacadeStub) ParseToken(token string) (int64, error) {
	if f.ParseTokenFn != nil {
		return f.ParseTokenFn(token)
	}
	return 1, nil
}

func (f FacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if f.UserFn != nil {
		return f.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "stub@example.com"}, nil
}

func (f FacadeStub) UpdateProfile(ctx context.Context, id int64, profile model.Profile) error {
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(ctx, id, profile)
	}
	return nil
}

func (f FacadeStub) ChangePassword(ctx context.Context, id int64, current, next string) error {
	if f.ChangePasswordFn != nil {
		return f.ChangePasswordFn(ctx, id, current, next)
	}
	return nil
}

func (f FacadeStub) Items() []model.CheeseItem {
	if f.ItemsFn != nil {
		return f.ItemsFn()
	}
	return nil
}

func (f FacadeStub) AddItem(ctx context.Context, in store.ItemInput) (*model.CheeseItem, error) {
	if f.AddItemFn != nil {
		return f.AddItemFn(ctx, in)
	}
	return &model.CheeseItem{ID: 1, Name: in.Name, Price: in.Price, QuantityType: in.QuantityType}, nil
}

func (f FacadeStub) UpdateItem(ctx context.Context, id int64, in store.ItemInput) (*model.CheeseItem, error) {
	if f.UpdateItemFn != nil {
		return f.UpdateItemFn(ctx, id, in)
	}
	return &model.CheeseItem{ID: id, Name: in.Name, Price: in.Price, QuantityType: in.QuantityType}, nil
}

func (f FacadeStub) RemoveItem(ctx context.Context, id int64) error {
	if f.RemoveItemFn != nil {
		return f.RemoveItemFn(ctx, id)
	}
	return nil
}

func (f FacadeStub) InputStep(model.CheeseItem) float64 { return 1 }

func (f FacadeStub) Orders() []model.Order {
	if f.OrdersFn != nil {
		return f.OrdersFn()
	}
	return nil
}

func (f FacadeStub) AddOrder(ctx context.Context, in store.OrderInput) (*model.Order, error) {
	if f.AddOrderFn != nil {
		return f.AddOrderFn(ctx, in)
	}
	return &model.Order{ID: 1, CustomerName: in.CustomerName, Status: model.OrderStatusNew}, nil
}

func (f FacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if f.UpdateOrderStatusFn != nil {
		return f.UpdateOrderStatusFn(ctx, id, status)
	}
	return nil
}

func (f FacadeStub) RemoveOrder(ctx context.Context, id int64) error {
	if f.RemoveOrderFn != nil {
		return f.RemoveOrderFn(ctx, id)
	}
	return nil
}

func (f FacadeStub) OrderFinancials(model.Order) model.OrderFinancials {
	return model.OrderFinancials{}
}

func (f FacadeStub) Clients() []model.Client {
	if f.ClientsFn != nil {
		return f.ClientsFn()
	}
	return nil
}

func (f FacadeStub) AddClient(ctx context.Context, name, contact string) (*model.Client, error) {
	if f.AddClientFn != nil {
		return f.AddClientFn(ctx, name, contact)
	}
	return &model.Client{ID: 1, Name: name}, nil
}

func (f FacadeStub) RemoveClient(ctx context.Context, id int64) error {
	if f.RemoveClientFn != nil {
		return f.RemoveClientFn(ctx, id)
	}
	return nil
}

func (f FacadeStub) ConsignTypes() []model.ConsignType {
	if f.ConsignTypesFn != nil {
		return f.ConsignTypesFn()
	}
	return nil
}

func (f FacadeStub) AddConsignType(ctx context.Context, label string) (*model.ConsignType, error) {
	if f.AddConsignTypeFn != nil {
		return f.AddConsignTypeFn(ctx, label)
	}
	return &model.ConsignType{ID: 1, Label: label}, nil
}

func (f FacadeStub) RemoveConsignType(ctx context.Context, id int64) error {
	if f.RemoveConsignTypeFn != nil {
		return f.RemoveConsignTypeFn(ctx, id)
	}
	return nil
}

func (f FacadeStub) ConsignTotals() []model.ConsignTotal {
	if f.ConsignTotalsFn != nil {
		return f.ConsignTotalsFn()
	}
	return nil
}

func (f FacadeStub) AssignConsigns(ctx context.Context, tx store.ConsignTransaction) error {
	if f.AssignConsignsFn != nil {
		return f.AssignConsignsFn(ctx, tx)
	}
	return nil
}

func (f FacadeStub) ReturnConsigns(ctx context.Context, tx store.ConsignTransaction) error {
	if f.ReturnConsignsFn != nil {
		return f.ReturnConsignsFn(ctx, tx)
	}
	return nil
}

func (f FacadeStub) Loading() bool { return f.LoadingVal }
