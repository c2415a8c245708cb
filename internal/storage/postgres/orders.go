package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

const orderColumns = `id, customer_id, vendor_id, items, total_amount, order_type, status, cancellation_reason,
                      applied_coupon, discount_amount, delivery_address, note, latitude, longitude, created_at, updated_at`

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	const query = `INSERT INTO orders (` + orderColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.storage.pool.Exec(ctx, query,
		order.ID, order.CustomerID, order.VendorID, items, order.TotalAmount,
		string(order.OrderType), string(order.Status), order.CancellationReason,
		order.AppliedCoupon, order.DiscountAmount, order.DeliveryAddress, order.Note,
		order.Latitude, order.Longitude, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders SET status=$1, cancellation_reason=$2, updated_at=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, string(order.Status), order.CancellationReason, order.UpdatedAt, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ListByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE vendor_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, vendorID)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, customerID)
}

func (r *orderRepository) list(ctx context.Context, query, arg string) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o         model.Order
		items     []byte
		orderType string
		status    string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.VendorID, &items, &o.TotalAmount, &orderType, &status, &o.CancellationReason,
		&o.AppliedCoupon, &o.DiscountAmount, &o.DeliveryAddress, &o.Note, &o.Latitude, &o.Longitude,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items of order %s: %w", o.ID, err)
	}
	o.OrderType = model.BusinessType(orderType)
	o.Status = model.OrderStatus(status)
	return &o, nil
}
