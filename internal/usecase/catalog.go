package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
)

// CatalogChain resolves product references across catalogs in model.CatalogPriority order.
type CatalogChain struct {
	catalogs []repository.ProductCatalog
}

// NewCatalogChain orders catalogs by priority. Catalogs of unknown kind are appended last.
func NewCatalogChain(catalogs []repository.ProductCatalog) *CatalogChain {
	sorted := slices.Clone(catalogs)
	slices.SortStableFunc(sorted, func(a, b repository.ProductCatalog) int {
		return priorityOf(a.Kind()) - priorityOf(b.Kind())
	})
	return &CatalogChain{catalogs: sorted}
}

func priorityOf(kind model.BusinessType) int {
	if i := slices.Index(model.CatalogPriority, kind); i >= 0 {
		return i
	}
	return len(model.CatalogPriority)
}

// Kinds lists catalog kinds in lookup order.
func (c *CatalogChain) Kinds() []model.BusinessType {
	kinds := make([]model.BusinessType, 0, len(c.catalogs))
	for _, cat := range c.catalogs {
		kinds = append(kinds, cat.Kind())
	}
	return kinds
}

// Catalog returns the catalog serving kind.
func (c *CatalogChain) Catalog(kind model.BusinessType) (repository.ProductCatalog, bool) {
	for _, cat := range c.catalogs {
		if cat.Kind() == kind {
			return cat, true
		}
	}
	return nil, false
}

// Resolve returns the owner of productID from the first catalog that knows it.
// ErrNotFound is returned only when no catalog matches.
func (c *CatalogChain) Resolve(ctx context.Context, productID string) (*model.ProductOwner, error) {
	for _, cat := range c.catalogs {
		owner, err := cat.FindProductOwner(ctx, productID)
		if err == nil {
			if owner.Kind == "" {
				owner.Kind = cat.Kind()
			}
			return owner, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("lookup %s in %s catalog: %w", productID, cat.Kind(), err)
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CatalogUseCase covers vendor-side product operations that fan out to live clients.
type CatalogUseCase struct {
	chain   *CatalogChain
	vendors repository.VendorRepository
	live    LiveChannel
	logger  *slog.Logger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(chain *CatalogChain, vendors repository.VendorRepository, live LiveChannel, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{chain: chain, vendors: vendors, live: live, logger: logger}
}

// UpdateStockStatus flips a product's availability and broadcasts the change.
// The actor must own the vendor that owns the product, and the vendor must trade in kind.
func (u *CatalogUseCase) UpdateStockStatus(ctx context.Context, actor model.Identity, kind model.BusinessType, productID string, status model.StockStatus) (*model.ProductStatusChange, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown catalog %q", domainErrors.ErrValidation, kind)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown stock status %q", domainErrors.ErrValidation, status)
	}
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", domainErrors.ErrValidation)
	}

	catalog, ok := u.chain.Catalog(kind)
	if !ok {
		return nil, fmt.Errorf("%w: catalog %q is not configured", domainErrors.ErrNotFound, kind)
	}

	vendor, err := u.vendors.GetByOwner(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotAuthorized
		}
		return nil, err
	}
	if vendor.BusinessType != kind {
		return nil, domainErrors.ErrNotAuthorized
	}

	owner, err := catalog.FindProductOwner(ctx, productID)
	if err != nil {
		return nil, err
	}
	if owner.VendorID != vendor.ID {
		return nil, domainErrors.ErrNotAuthorized
	}

	if err := catalog.UpdateStockStatus(ctx, productID, status); err != nil {
		return nil, err
	}

	change := &model.ProductStatusChange{
		ProductID:   productID,
		VendorID:    vendor.ID,
		Kind:        kind,
		StockStatus: status,
	}
	if err := u.live.PublishGlobal(ctx, model.EventProductStatusChanged, change); err != nil {
		u.logger.Warn("publish product status failed",
			slog.String("product_id", productID),
			slog.String("vendor_id", vendor.ID),
			slog.String("error", err.Error()))
	}

	return change, nil
}
