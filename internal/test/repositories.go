package test

import (
	"context"
	"time"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/domain/repository"
)

// RepositoryStub is an in-memory repository.Factory for store and usecase
// tests. Every operation can be failed via the Err fields, and remote write
// counters let tests assert that validation errors never reach the backend.
type RepositoryStub struct {
	ItemsData     []model.CheeseItem
	OrdersData    []model.Order
	ClientsData   []model.Client
	TypesData     []model.ConsignType
	MovementsData []model.ConsignMovement
	UsersData     []model.User

	NextID int64

	ListErr   error
	WriteErr  error
	DeleteErr error

	Writes      int
	ClearCalls  []int64
	DeleteCalls []string
}

// NewRepositoryStub constructs an empty stub factory.
func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{NextID: 1}
}

func (s *RepositoryStub) nextID() int64 {
	id := s.NextID
	s.NextID++
	return id
}

func (s *RepositoryStub) Items() repository.ItemRepository                       { return (*stubItems)(s) }
func (s *RepositoryStub) Orders() repository.OrderRepository                     { return (*stubOrders)(s) }
func (s *RepositoryStub) Clients() repository.ClientRepository                   { return (*stubClients)(s) }
func (s *RepositoryStub) ConsignTypes() repository.ConsignTypeRepository         { return (*stubTypes)(s) }
func (s *RepositoryStub) ConsignMovements() repository.ConsignMovementRepository { return (*stubMovements)(s) }
func (s *RepositoryStub) Users() repository.UserRepository                       { return (*stubUsers)(s) }

type stubItems RepositoryStub

func (s *stubItems) List(context.Context) ([]model.CheeseItem, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.CheeseItem(nil), s.ItemsData...), nil
}

func (s *stubItems) Create(_ context.Context, item model.CheeseItem) (*model.CheeseItem, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	s.Writes++
	item.ID = (*RepositoryStub)(s).nextID()
	item.CreatedAt = time.Now()
	s.ItemsData = append(s.ItemsData, item)
	return &item, nil
}

func (s *stubItems) Update(_ context.Context, item model.CheeseItem) (*model.CheeseItem, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	s.Writes++
	for i := range s.ItemsData {
		if s.ItemsData[i].ID == item.ID {
			item.CreatedAt = s.ItemsData[i].CreatedAt
			s.ItemsData[i] = item
			return &item, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubItems) Delete(_ context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.DeleteCalls = append(s.DeleteCalls, "item")
	next := s.ItemsData[:0]
	for _, it := range s.ItemsData {
		if it.ID != id {
			next = append(next, it)
		}
	}
	s.ItemsData = next
	return nil
}

type stubOrders RepositoryStub

func (s *stubOrders) List(context.Context) ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Order(nil), s.OrdersData...), nil
}

func (s *stubOrders) Create(_ context.Context, order model.Order) (*model.Order, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	s.Writes++
	order.ID = (*RepositoryStub)(s).nextID()
	order.CreatedAt = time.Now()
	for i := range order.Entries {
		order.Entries[i].ID = (*RepositoryStub)(s).nextID()
		order.Entries[i].OrderID = order.ID
	}
	s.OrdersData = append([]model.Order{order}, s.OrdersData...)
	return &order, nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Writes++
	for i := range s.OrdersData {
		if s.OrdersData[i].ID == id {
			s.OrdersData[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *stubOrders) Delete(_ context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.DeleteCalls = append(s.DeleteCalls, "order")
	next := s.OrdersData[:0]
	for _, o := range s.OrdersData {
		if o.ID != id {
			next = append(next, o)
		}
	}
	s.OrdersData = next
	return nil
}

func (s *stubOrders) ClearClient(_ context.Context, clientID int64) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.ClearCalls = append(s.ClearCalls, clientID)
	for i := range s.OrdersData {
		if s.OrdersData[i].ClientID != nil && *s.OrdersData[i].ClientID == clientID {
			s.OrdersData[i].ClientID = nil
		}
	}
	return nil
}

type stubClients RepositoryStub

func (s *stubClients) List(context.Context) ([]model.Client, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Client(nil), s.ClientsData...), nil
}

func (s *stubClients) Create(_ context.Context, name string, contact *string) (*model.Client, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	s.Writes++
	c := model.Client{ID: (*RepositoryStub)(s).nextID(), Name: name, Contact: contact, CreatedAt: time.Now()}
	s.ClientsData = append(s.ClientsData, c)
	return &c, nil
}

func (s *stubClients) Delete(_ context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.DeleteCalls = append(s.DeleteCalls, "client")
	next := s.ClientsData[:0]
	for _, c := range s.ClientsData {
		if c.ID != id {
			next = append(next, c)
		}
	}
	s.ClientsData = next
	return nil
}

type stubTypes RepositoryStub

func (s *stubTypes) List(context.Context) ([]model.ConsignType, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.ConsignType(nil), s.TypesData...), nil
}

func (s *stubTypes) Create(_ context.Context, label string) (*model.ConsignType, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	s.Writes++
	t := model.ConsignType{ID: (*RepositoryStub)(s).nextID(), Label: label, CreatedAt: time.Now()}
	s.TypesData = append(s.TypesData, t)
	return &t, nil
}

func (s *stubTypes) Delete(_ context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.DeleteCalls = append(s.DeleteCalls, "consign_type")
	next := s.TypesData[:0]
	for _, t := range s.TypesData {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.TypesData = next
	return nil
}

type stubMovements RepositoryStub

func (s *stubMovements) List(context.Context) ([]model.ConsignMovement, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.ConsignMovement(nil), s.MovementsData...), nil
}

func (s *stubMovements) InsertBatch(_ context.Context, movements []model.ConsignMovement) ([]model.ConsignMovement, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	s.Writes++
	inserted := make([]model.ConsignMovement, 0, len(movements))
	for _, m := range movements {
		m.ID = (*RepositoryStub)(s).nextID()
		m.CreatedAt = time.Now()
		s.MovementsData = append(s.MovementsData, m)
		inserted = append(inserted, m)
	}
	return inserted, nil
}

func (s *stubMovements) DeleteByClient(_ context.Context, clientID int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.DeleteCalls = append(s.DeleteCalls, "movements_by_client")
	next := s.MovementsData[:0]
	for _, m := range s.MovementsData {
		if m.ClientID != clientID {
			next = append(next, m)
		}
	}
	s.MovementsData = next
	return nil
}

func (s *stubMovements) DeleteByType(_ context.Context, typeID int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.DeleteCalls = append(s.DeleteCalls, "movements_by_type")
	next := s.MovementsData[:0]
	for _, m := range s.MovementsData {
		if m.TypeID != typeID {
			next = append(next, m)
		}
	}
	s.MovementsData = next
	return nil
}

type stubUsers RepositoryStub

func (s *stubUsers) Create(_ context.Context, email, passwordHash string, profile model.Profile) (*model.User, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	for _, u := range s.UsersData {
		if u.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	u := model.User{
		ID:           (*RepositoryStub)(s).nextID(),
		Email:        email,
		PasswordHash: passwordHash,
		Profile:      profile,
		CreatedAt:    time.Now(),
	}
	s.UsersData = append(s.UsersData, u)
	return &u, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.UsersData {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range s.UsersData {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubUsers) UpdateProfile(_ context.Context, id int64, profile model.Profile) error {
	for i := range s.UsersData {
		if s.UsersData[i].ID == id {
			s.UsersData[i].Profile = profile
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *stubUsers) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	for i := range s.UsersData {
		if s.UsersData[i].ID == id {
			s.UsersData[i].PasswordHash = passwordHash
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
