package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/domain/repository"
	"github.com/AlexisMGL/HappyCheese/internal/usecase"
)

// Store is the single source of truth for catalog, orders, clients, consign
// types and derived consign totals. Every mutating operation validates input,
// performs the remote write, and only merges the authoritative result into
// the in-memory snapshots on success; a failed write leaves local state
// untouched. Collections are replaced wholesale so concurrent readers always
// observe a full prior or next snapshot.
type Store struct {
	repos  repository.Factory
	rules  usecase.QuantityRules
	logger *slog.Logger

	mu           sync.RWMutex
	loading      bool
	items        []model.CheeseItem
	orders       []model.Order
	clients      []model.Client
	consignTypes []model.ConsignType
	totals       []model.ConsignTotal
}

// ItemInput carries the caller-supplied fields of a catalog item.
type ItemInput struct {
	Name           string
	Price          float64
	QuantityType   model.QuantityType
	Multiple       *float64
	Step           *float64
	CommentEnabled bool
}

// OrderEntryInput is one requested order line, quantity in display units.
type OrderEntryInput struct {
	ItemID          int64
	DisplayQuantity float64
	Comment         string
}

// OrderInput carries the caller-supplied fields of a new order.
type OrderInput struct {
	CustomerName string
	Contact      string
	Notes        string
	ClientID     *int64
	Entries      []OrderEntryInput
}

// ConsignTransaction is one assign or return request.
type ConsignTransaction struct {
	ClientID int64
	Note     string
	Items    []model.ConsignItemInput
}

// New constructs an empty store over the given repositories.
func New(repos repository.Factory, rules usecase.QuantityRules, logger *slog.Logger) *Store {
	return &Store{repos: repos, rules: rules, logger: logger, loading: true}
}

// Load fetches all five collections concurrently and replaces the snapshots.
// The loading flag stays up until every fetch has settled, success or not.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		wg        sync.WaitGroup
		items     []model.CheeseItem
		orders    []model.Order
		clients   []model.Client
		types     []model.ConsignType
		movements []model.ConsignMovement
		errs      [5]error
	)

	wg.Add(5)
	go func() { defer wg.Done(); items, errs[0] = s.repos.Items().List(ctx) }()
	go func() { defer wg.Done(); orders, errs[1] = s.repos.Orders().List(ctx) }()
	go func() { defer wg.Done(); clients, errs[2] = s.repos.Clients().List(ctx) }()
	go func() { defer wg.Done(); types, errs[3] = s.repos.ConsignTypes().List(ctx) }()
	go func() { defer wg.Done(); movements, errs[4] = s.repos.ConsignMovements().List(ctx) }()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err := errors.Join(errs[:]...); err != nil {
		return err
	}

	s.items = items
	s.orders = orders
	s.clients = clients
	s.consignTypes = types
	s.totals = usecase.BuildConsignTotals(movements)
	return nil
}

// Loading reports whether the initial load has not settled yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Items returns a copy of the catalog snapshot.
func (s *Store) Items() []model.CheeseItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.CheeseItem(nil), s.items...)
}

// Orders returns a copy of the order snapshot, newest first.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Order(nil), s.orders...)
}

// Clients returns a copy of the client snapshot, sorted by name.
func (s *Store) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Client(nil), s.clients...)
}

// ConsignTypes returns a copy of the consign type snapshot, sorted by label.
func (s *Store) ConsignTypes() []model.ConsignType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ConsignType(nil), s.consignTypes...)
}

// ConsignTotals returns a copy of the outstanding balance cache.
func (s *Store) ConsignTotals() []model.ConsignTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ConsignTotal(nil), s.totals...)
}

// ReplaceConsignTotals swaps the balance cache for an authoritative fold.
// Used by the ledger reconciler to self-heal after partial cascade failures.
func (s *Store) ReplaceConsignTotals(totals []model.ConsignTotal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = append([]model.ConsignTotal(nil), totals...)
}

func (s *Store) normalizeItem(in ItemInput) (model.CheeseItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.CheeseItem{}, domainErrors.ErrNameRequired
	}
	if in.Price <= 0 {
		return model.CheeseItem{}, domainErrors.ErrInvalidPrice
	}

	item := model.CheeseItem{
		Name:           name,
		Price:          in.Price,
		QuantityType:   in.QuantityType,
		CommentEnabled: in.CommentEnabled,
	}
	if in.Multiple != nil && *in.Multiple > 0 {
		m := *in.Multiple
		item.Multiple = &m
	}
	if in.Step != nil && *in.Step > 0 {
		st := *in.Step
		item.Step = &st
	}
	return item, nil
}

// AddItem creates a catalog item and appends the stored row to the snapshot.
func (s *Store) AddItem(ctx context.Context, in ItemInput) (*model.CheeseItem, error) {
	item, err := s.normalizeItem(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repos.Items().Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(append([]model.CheeseItem(nil), s.items...), *created)
	return created, nil
}

// UpdateItem rewrites a catalog item and replaces it in the snapshot by ID.
// Existing order entries keep their snapshotted values.
func (s *Store) UpdateItem(ctx context.Context, id int64, in ItemInput) (*model.CheeseItem, error) {
	item, err := s.normalizeItem(in)
	if err != nil {
		return nil, err
	}
	item.ID = id

	updated, err := s.repos.Items().Update(ctx, item)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]model.CheeseItem(nil), s.items...)
	for i := range next {
		if next[i].ID == id {
			next[i] = *updated
			break
		}
	}
	s.items = next
	return updated, nil
}

// RemoveItem deletes a catalog item. Order entries referencing it are
// historical records and stay as they are.
func (s *Store) RemoveItem(ctx context.Context, id int64) error {
	if err := s.repos.Items().Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.CheeseItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	s.items = next
	return nil
}

// AddOrder validates and creates an order atomically: every requested entry
// must resolve to a catalog item before anything is written, and the line
// rows snapshot the item's name, quantity type and price at this moment.
// The composed order is prepended so the snapshot stays newest-first.
func (s *Store) AddOrder(ctx context.Context, in OrderInput) (*model.Order, error) {
	if len(in.Entries) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		return nil, domainErrors.ErrNameRequired
	}

	s.mu.RLock()
	catalog := s.items
	s.mu.RUnlock()

	entries := make([]model.OrderEntry, 0, len(in.Entries))
	for _, req := range in.Entries {
		item, ok := findItem(catalog, req.ItemID)
		if !ok {
			return nil, domainErrors.ErrItemNotFound
		}
		if req.DisplayQuantity <= 0 || math.IsNaN(req.DisplayQuantity) || math.IsInf(req.DisplayQuantity, 0) {
			return nil, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrInvalidQuantity)
		}
		if err := s.rules.ValidateMultiple(item, req.DisplayQuantity); err != nil {
			return nil, err
		}
		entries = append(entries, model.OrderEntry{
			ItemID:       item.ID,
			Name:         item.Name,
			QuantityType: item.QuantityType,
			UnitPrice:    item.Price,
			Quantity:     s.rules.ToUnitQuantity(item.QuantityType, req.DisplayQuantity),
			Comment:      req.Comment,
		})
	}

	created, err := s.repos.Orders().Create(ctx, model.Order{
		CustomerName: customer,
		Contact:      strings.TrimSpace(in.Contact),
		Notes:        strings.TrimSpace(in.Notes),
		ClientID:     in.ClientID,
		Status:       model.OrderStatusNew,
		Entries:      entries,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]model.Order{*created}, s.orders...)
	return created, nil
}

// UpdateOrderStatus writes the new status and patches only that field on the
// matching local order.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, string(status))
	}
	if err := s.repos.Orders().UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]model.Order(nil), s.orders...)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
			break
		}
	}
	s.orders = next
	return nil
}

// RemoveOrder deletes an order while it is still in an early status.
func (s *Store) RemoveOrder(ctx context.Context, id int64) error {
	s.mu.RLock()
	var status model.OrderStatus
	found := false
	for _, o := range s.orders {
		if o.ID == id {
			status, found = o.Status, true
			break
		}
	}
	s.mu.RUnlock()

	if !found {
		return domainErrors.ErrNotFound
	}
	if !status.Deletable() {
		return domainErrors.ErrOrderNotDeletable
	}

	if err := s.repos.Orders().Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if o.ID != id {
			next = append(next, o)
		}
	}
	s.orders = next
	return nil
}

// AddClient creates a client and keeps the snapshot alphabetically sorted.
func (s *Store) AddClient(ctx context.Context, name, contact string) (*model.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrNameRequired
	}
	var contactPtr *string
	if c := strings.TrimSpace(contact); c != "" {
		contactPtr = &c
	}

	created, err := s.repos.Clients().Create(ctx, name, contactPtr)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]model.Client(nil), s.clients...), *created)
	sortClients(next)
	s.clients = next
	return created, nil
}

// RemoveClient cascades in dependency order: orders lose their client
// reference, the client's movements are deleted, then the client row itself.
// A failure partway through aborts and leaves local state unmodified; remote
// steps already done are not rolled back, the ledger reconciler re-folds the
// totals on its next pass.
func (s *Store) RemoveClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrClientRequired
	}

	if err := s.repos.Orders().ClearClient(ctx, id); err != nil {
		return err
	}
	if err := s.repos.ConsignMovements().DeleteByClient(ctx, id); err != nil {
		return err
	}
	if err := s.repos.Clients().Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients := make([]model.Client, 0, len(s.clients))
	for _, c := range s.clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	s.clients = clients

	totals := make([]model.ConsignTotal, 0, len(s.totals))
	for _, t := range s.totals {
		if t.ClientID != id {
			totals = append(totals, t)
		}
	}
	s.totals = totals

	orders := append([]model.Order(nil), s.orders...)
	for i := range orders {
		if orders[i].ClientID != nil && *orders[i].ClientID == id {
			orders[i].ClientID = nil
		}
	}
	s.orders = orders
	return nil
}

// AddConsignType creates a container kind, keeping the snapshot sorted by label.
func (s *Store) AddConsignType(ctx context.Context, label string) (*model.ConsignType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domainErrors.ErrLabelRequired
	}

	created, err := s.repos.ConsignTypes().Create(ctx, label)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]model.ConsignType(nil), s.consignTypes...), *created)
	sort.Slice(next, func(i, j int) bool {
		return strings.ToLower(next[i].Label) < strings.ToLower(next[j].Label)
	})
	s.consignTypes = next
	return created, nil
}

// RemoveConsignType deletes the type's movements first, then the type, and
// drops related balances locally.
func (s *Store) RemoveConsignType(ctx context.Context, id int64) error {
	if err := s.repos.ConsignMovements().DeleteByType(ctx, id); err != nil {
		return err
	}
	if err := s.repos.ConsignTypes().Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	types := make([]model.ConsignType, 0, len(s.consignTypes))
	for _, t := range s.consignTypes {
		if t.ID != id {
			types = append(types, t)
		}
	}
	s.consignTypes = types

	totals := make([]model.ConsignTotal, 0, len(s.totals))
	for _, t := range s.totals {
		if t.TypeID != id {
			totals = append(totals, t)
		}
	}
	s.totals = totals
	return nil
}

// AssignConsigns hands containers out to a client.
func (s *Store) AssignConsigns(ctx context.Context, tx ConsignTransaction) error {
	return s.applyConsignTransaction(ctx, tx, 1)
}

// ReturnConsigns takes containers back, capped by outstanding balances.
func (s *Store) ReturnConsigns(ctx context.Context, tx ConsignTransaction) error {
	return s.applyConsignTransaction(ctx, tx, -1)
}

// applyConsignTransaction is the shared assign/return routine: sanitize,
// validate against the current snapshot, insert all movement rows in one
// remote write, then apply the identical delta to the local cache.
func (s *Store) applyConsignTransaction(ctx context.Context, tx ConsignTransaction, multiplier int64) error {
	if tx.ClientID <= 0 {
		return domainErrors.ErrClientRequired
	}
	items := usecase.SanitizeConsignItems(tx.Items)
	if len(items) == 0 {
		return domainErrors.ErrNoConsignItems
	}

	s.mu.RLock()
	totals := s.totals
	s.mu.RUnlock()

	if multiplier < 0 {
		if err := usecase.ValidateConsignReturn(totals, tx.ClientID, items); err != nil {
			return err
		}
	}

	var notePtr *string
	if n := strings.TrimSpace(tx.Note); n != "" {
		notePtr = &n
	}
	movements := make([]model.ConsignMovement, 0, len(items))
	for _, it := range items {
		movements = append(movements, model.ConsignMovement{
			ClientID: tx.ClientID,
			TypeID:   it.TypeID,
			Quantity: it.Quantity * multiplier,
			Note:     notePtr,
		})
	}

	if _, err := s.repos.ConsignMovements().InsertBatch(ctx, movements); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = usecase.ApplyConsignDelta(s.totals, tx.ClientID, items, multiplier)
	return nil
}

func findItem(items []model.CheeseItem, id int64) (model.CheeseItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return model.CheeseItem{}, false
}

func sortClients(clients []model.Client) {
	sort.Slice(clients, func(i, j int) bool {
		return strings.ToLower(clients[i].Name) < strings.ToLower(clients[j].Name)
	})
}
