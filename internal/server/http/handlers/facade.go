package handlers

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, mobile, password, ownerName string, role model.Role) (*model.VendorUser, string, error)
	Authenticate(ctx context.Context, mobile, password string) (*model.VendorUser, string, error)
	ParseToken(token string) (model.Identity, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrders(ctx context.Context, sub model.CartSubmission) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, actor model.Identity, orderID string, status model.OrderStatus, reason string) (*model.Order, error)
	VendorOrders(ctx context.Context, actor model.Identity) ([]model.Order, error)
	CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error)
}

// CatalogFacade exposes product availability changes.
type CatalogFacade interface {
	UpdateStockStatus(ctx context.Context, actor model.Identity, kind model.BusinessType, productID string, status model.StockStatus) (*model.ProductStatusChange, error)
}

// StreamFacade opens live event subscriptions for vendor dashboards.
type StreamFacade interface {
	SubscribeVendor(ctx context.Context, actor model.Identity) (<-chan model.LiveEvent, func(), error)
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	OrderFacade
	CatalogFacade
	StreamFacade
}
