package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
	"github.com/AlexisMGL/HappyCheese/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; pgxmock
// satisfies it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type itemRepository struct{ storage *Storage }

type orderRepository struct{ storage *Storage }

type clientRepository struct{ storage *Storage }

type consignTypeRepository struct{ storage *Storage }

type consignMovementRepository struct{ storage *Storage }

type userRepository struct{ storage *Storage }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Items() repository.ItemRepository { return &itemRepository{storage: s} }

func (s *Storage) Orders() repository.OrderRepository { return &orderRepository{storage: s} }

func (s *Storage) Clients() repository.ClientRepository { return &clientRepository{storage: s} }

func (s *Storage) ConsignTypes() repository.ConsignTypeRepository {
	return &consignTypeRepository{storage: s}
}

func (s *Storage) ConsignMovements() repository.ConsignMovementRepository {
	return &consignMovementRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository { return &userRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            quantity_type TEXT NOT NULL,
            multiple DOUBLE PRECISION,
            step DOUBLE PRECISION,
            comment_enabled BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS clients (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            contact TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_name TEXT NOT NULL,
            contact TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            client_id BIGINT REFERENCES clients(id),
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_entries (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            item_id BIGINT NOT NULL,
            item_name TEXT NOT NULL,
            quantity_type TEXT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            quantity DOUBLE PRECISION NOT NULL,
            comment TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS consign_types (
            id SERIAL PRIMARY KEY,
            label TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS consign_movements (
            id SERIAL PRIMARY KEY,
            client_id BIGINT NOT NULL REFERENCES clients(id),
            type_id BIGINT NOT NULL REFERENCES consign_types(id),
            quantity BIGINT NOT NULL,
            note TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            display_name TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            company TEXT NOT NULL DEFAULT '',
            delivery_location TEXT NOT NULL DEFAULT '',
            admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_entries_order ON order_entries(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_consign_movements_client ON consign_movements(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_consign_movements_type ON consign_movements(type_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ItemRepository implementation ---

func (r *itemRepository) List(ctx context.Context) ([]model.CheeseItem, error) {
	const query = `SELECT id, name, price, quantity_type, multiple, step, comment_enabled, created_at
                   FROM items ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CheeseItem
	for rows.Next() {
		var it model.CheeseItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.QuantityType, &it.Multiple, &it.Step, &it.CommentEnabled, &it.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *itemRepository) Create(ctx context.Context, item model.CheeseItem) (*model.CheeseItem, error) {
	const query = `INSERT INTO items (name, price, quantity_type, multiple, step, comment_enabled)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		item.Name, item.Price, item.QuantityType, item.Multiple, item.Step, item.CommentEnabled,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item model.CheeseItem) (*model.CheeseItem, error) {
	const query = `UPDATE items SET name=$1, price=$2, quantity_type=$3, multiple=$4, step=$5, comment_enabled=$6
                   WHERE id=$7 RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		item.Name, item.Price, item.QuantityType, item.Multiple, item.Step, item.CommentEnabled, item.ID,
	).Scan(&item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	return err
}

// --- OrderRepository implementation ---

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const ordersQuery = `SELECT id, customer_name, contact, notes, client_id, status, created_at
                         FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, ordersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[int64]int)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Contact, &o.Notes, &o.ClientID, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const entriesQuery = `SELECT id, order_id, item_id, item_name, quantity_type, unit_price, quantity, comment
                          FROM order_entries ORDER BY order_id, id`
	entryRows, err := r.storage.pool.Query(ctx, entriesQuery)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var e model.OrderEntry
		if err := entryRows.Scan(&e.ID, &e.OrderID, &e.ItemID, &e.Name, &e.QuantityType, &e.UnitPrice, &e.Quantity, &e.Comment); err != nil {
			return nil, err
		}
		if i, ok := index[e.OrderID]; ok {
			orders[i].Entries = append(orders[i].Entries, e)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (customer_name, contact, notes, client_id, status)
                             VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertOrder,
			order.CustomerName, order.Contact, order.Notes, order.ClientID, order.Status,
		).Scan(&order.ID, &order.CreatedAt); err != nil {
			return err
		}

		const insertEntry = `INSERT INTO order_entries (order_id, item_id, item_name, quantity_type, unit_price, quantity, comment)
                             VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		for i := range order.Entries {
			e := &order.Entries[i]
			e.OrderID = order.ID
			if err := tx.QueryRow(ctx, insertEntry,
				e.OrderID, e.ItemID, e.Name, e.QuantityType, e.UnitPrice, e.Quantity, e.Comment,
			).Scan(&e.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

func (r *orderRepository) ClearClient(ctx context.Context, clientID int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE orders SET client_id=NULL WHERE client_id=$1`, clientID)
	return err
}

// --- ClientRepository implementation ---

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	const query = `SELECT id, name, contact, created_at FROM clients ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clientRepository) Create(ctx context.Context, name string, contact *string) (*model.Client, error) {
	const query = `INSERT INTO clients (name, contact) VALUES ($1, $2) RETURNING id, created_at`
	c := model.Client{Name: name, Contact: contact}
	if err := r.storage.pool.QueryRow(ctx, query, name, contact).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	return err
}

// --- ConsignTypeRepository implementation ---

func (r *consignTypeRepository) List(ctx context.Context) ([]model.ConsignType, error) {
	const query = `SELECT id, label, created_at FROM consign_types ORDER BY label`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ConsignType
	for rows.Next() {
		var t model.ConsignType
		if err := rows.Scan(&t.ID, &t.Label, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *consignTypeRepository) Create(ctx context.Context, label string) (*model.ConsignType, error) {
	const query = `INSERT INTO consign_types (label) VALUES ($1) RETURNING id, created_at`
	t := model.ConsignType{Label: label}
	if err := r.storage.pool.QueryRow(ctx, query, label).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *consignTypeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM consign_types WHERE id=$1`, id)
	return err
}

// --- ConsignMovementRepository implementation ---

func (r *consignMovementRepository) List(ctx context.Context) ([]model.ConsignMovement, error) {
	const query = `SELECT id, client_id, type_id, quantity, note, created_at
                   FROM consign_movements ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ConsignMovement
	for rows.Next() {
		var m model.ConsignMovement
		if err := rows.Scan(&m.ID, &m.ClientID, &m.TypeID, &m.Quantity, &m.Note, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *consignMovementRepository) InsertBatch(ctx context.Context, movements []model.ConsignMovement) ([]model.ConsignMovement, error) {
	inserted := make([]model.ConsignMovement, len(movements))
	copy(inserted, movements)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO consign_movements (client_id, type_id, quantity, note)
                       VALUES ($1, $2, $3, $4) RETURNING id, created_at`
		for i := range inserted {
			m := &inserted[i]
			if err := tx.QueryRow(ctx, query, m.ClientID, m.TypeID, m.Quantity, m.Note).Scan(&m.ID, &m.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *consignMovementRepository) DeleteByClient(ctx context.Context, clientID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM consign_movements WHERE client_id=$1`, clientID)
	return err
}

func (r *consignMovementRepository) DeleteByType(ctx context.Context, typeID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM consign_movements WHERE type_id=$1`, typeID)
	return err
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, profile model.Profile) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, display_name, phone, company, delivery_location)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, admin, created_at`
	u := model.User{Email: email, PasswordHash: passwordHash, Profile: profile}
	err := r.storage.pool.QueryRow(ctx, query,
		email, passwordHash, profile.DisplayName, profile.Phone, profile.Company, profile.DeliveryLocation,
	).Scan(&u.ID, &u.Admin, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, display_name, phone, company, delivery_location, admin, created_at
                   FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, display_name, phone, company, delivery_location, admin, created_at
                   FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash,
		&u.Profile.DisplayName, &u.Profile.Phone, &u.Profile.Company, &u.Profile.DeliveryLocation,
		&u.Admin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, profile model.Profile) error {
	const query = `UPDATE users SET display_name=$1, phone=$2, company=$3, delivery_location=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query,
		profile.DisplayName, profile.Phone, profile.Company, profile.DeliveryLocation, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
