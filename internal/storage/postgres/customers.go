package postgres

import (
	"context"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

type customerRepository struct {
	storage *Storage
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	const query = `SELECT id, mobile, name, push_token, used_coupons, free_deliveries_count, eligible_for_welcome50, created_at
                   FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Mobile, &c.Name, &c.PushToken,
		&c.Ledger.UsedCoupons, &c.Ledger.FreeDeliveriesCount, &c.Ledger.EligibleForWelcome50,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *customerRepository) UpdatePromotions(ctx context.Context, customerID string, ledger model.PromotionLedger) error {
	const query = `UPDATE customers
                   SET used_coupons=$1, free_deliveries_count=$2, eligible_for_welcome50=$3
                   WHERE id=$4`
	coupons := ledger.UsedCoupons
	if coupons == nil {
		coupons = []string{}
	}
	tag, err := r.storage.pool.Exec(ctx, query, coupons, ledger.FreeDeliveriesCount, ledger.EligibleForWelcome50, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
