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

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Vendors() repository.VendorRepository {
	return &vendorRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Catalogs returns one catalog per business type.
func (s *Storage) Catalogs() []repository.ProductCatalog {
	catalogs := make([]repository.ProductCatalog, 0, len(catalogTables))
	for _, kind := range model.CatalogPriority {
		catalogs = append(catalogs, &catalogRepository{storage: s, kind: kind, table: catalogTables[kind]})
	}
	return catalogs
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vendor_users (
            id TEXT PRIMARY KEY,
            mobile TEXT UNIQUE NOT NULL,
            owner_name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS vendors (
            id TEXT PRIMARY KEY,
            owner_user_id TEXT UNIQUE NOT NULL REFERENCES vendor_users(id),
            business_type TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'draft',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id TEXT PRIMARY KEY,
            mobile TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            push_token TEXT NOT NULL DEFAULT '',
            used_coupons TEXT[] NOT NULL DEFAULT '{}',
            free_deliveries_count INTEGER NOT NULL DEFAULT 0,
            eligible_for_welcome50 BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS grocery_products (
            id TEXT PRIMARY KEY,
            vendor_id TEXT NOT NULL REFERENCES vendors(id),
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            stock_status TEXT NOT NULL DEFAULT 'In Stock',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurant_menu (
            id TEXT PRIMARY KEY,
            vendor_id TEXT NOT NULL REFERENCES vendors(id),
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            stock_status TEXT NOT NULL DEFAULT 'In Stock',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS supermarket_products (
            id TEXT PRIMARY KEY,
            vendor_id TEXT NOT NULL REFERENCES vendors(id),
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            stock_status TEXT NOT NULL DEFAULT 'In Stock',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_id TEXT NOT NULL,
            vendor_id TEXT NOT NULL REFERENCES vendors(id),
            items JSONB NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            order_type TEXT NOT NULL,
            status TEXT NOT NULL,
            cancellation_reason TEXT,
            applied_coupon TEXT NOT NULL DEFAULT '',
            discount_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            delivery_address TEXT NOT NULL DEFAULT '',
            note TEXT NOT NULL DEFAULT '',
            latitude DOUBLE PRECISION,
            longitude DOUBLE PRECISION,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_vendor ON orders(vendor_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}
