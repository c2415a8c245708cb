package postgres

import (
	"context"
	"fmt"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

var catalogTables = map[model.BusinessType]string{
	model.BusinessTypeGrocery:     "grocery_products",
	model.BusinessTypeRestaurant:  "restaurant_menu",
	model.BusinessTypeSupermarket: "supermarket_products",
}

// catalogRepository serves one product table. The table name comes from
// catalogTables only, never from input.
type catalogRepository struct {
	storage *Storage
	kind    model.BusinessType
	table   string
}

func (r *catalogRepository) Kind() model.BusinessType {
	return r.kind
}

func (r *catalogRepository) FindProductOwner(ctx context.Context, productID string) (*model.ProductOwner, error) {
	query := fmt.Sprintf(`SELECT id, vendor_id, price FROM %s WHERE id=$1`, r.table)
	owner := model.ProductOwner{Kind: r.kind}
	err := r.storage.pool.QueryRow(ctx, query, productID).Scan(&owner.ProductID, &owner.VendorID, &owner.UnitPrice)
	if err != nil {
		return nil, notFound(err)
	}
	return &owner, nil
}

func (r *catalogRepository) UpdateStockStatus(ctx context.Context, productID string, status model.StockStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET stock_status=$1, updated_at=NOW() WHERE id=$2`, r.table)
	tag, err := r.storage.pool.Exec(ctx, query, string(status), productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
