package repository

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// ProductCatalog is one of the product collections, keyed by business type.
type ProductCatalog interface {
	Kind() model.BusinessType
	FindProductOwner(ctx context.Context, productID string) (*model.ProductOwner, error)
	UpdateStockStatus(ctx context.Context, productID string, status model.StockStatus) error
}
