package app

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
	"github.com/zepcart/marketplace/internal/usecase"
)

// VendorStream opens a live event subscription for one vendor.
type VendorStream interface {
	SubscribeVendor(ctx context.Context, vendorID string) (<-chan model.LiveEvent, func(), error)
}

// MarketplaceFacade exposes use cases to the HTTP layer.
type MarketplaceFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	status  *usecase.StatusUseCase
	catalog *usecase.CatalogUseCase
	vendors repository.VendorRepository
	stream  VendorStream
}

// NewMarketplaceFacade constructs MarketplaceFacade.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	status *usecase.StatusUseCase,
	catalog *usecase.CatalogUseCase,
	vendors repository.VendorRepository,
	stream VendorStream,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:    auth,
		orders:  orders,
		status:  status,
		catalog: catalog,
		vendors: vendors,
		stream:  stream,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, mobile, password, ownerName string, role model.Role) (*model.VendorUser, string, error) {
	return f.auth.Register(ctx, mobile, password, ownerName, role)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, mobile, password string) (*model.VendorUser, string, error) {
	return f.auth.Authenticate(ctx, mobile, password)
}

func (f *MarketplaceFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketplaceFacade) CreateOrders(ctx context.Context, sub model.CartSubmission) ([]model.Order, error) {
	return f.orders.Submit(ctx, sub)
}

func (f *MarketplaceFacade) UpdateOrderStatus(ctx context.Context, actor model.Identity, orderID string, status model.OrderStatus, reason string) (*model.Order, error) {
	return f.status.UpdateStatus(ctx, actor, orderID, status, reason)
}

func (f *MarketplaceFacade) VendorOrders(ctx context.Context, actor model.Identity) ([]model.Order, error) {
	return f.orders.VendorOrders(ctx, actor)
}

func (f *MarketplaceFacade) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return f.orders.CustomerOrders(ctx, customerID)
}

func (f *MarketplaceFacade) UpdateStockStatus(ctx context.Context, actor model.Identity, kind model.BusinessType, productID string, status model.StockStatus) (*model.ProductStatusChange, error) {
	return f.catalog.UpdateStockStatus(ctx, actor, kind, productID, status)
}

// SubscribeVendor streams live events of the vendor owned by actor.
func (f *MarketplaceFacade) SubscribeVendor(ctx context.Context, actor model.Identity) (<-chan model.LiveEvent, func(), error) {
	vendor, err := f.vendors.GetByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, nil, err
	}
	return f.stream.SubscribeVendor(ctx, vendor.ID)
}
