package test

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn         func(context.Context, model.CartSubmission) ([]model.Order, error)
	UpdateStatusFn   func(context.Context, model.Identity, string, model.OrderStatus, string) (*model.Order, error)
	VendorOrdersFn   func(context.Context, model.Identity) ([]model.Order, error)
	CustomerOrdersFn func(context.Context, string) ([]model.Order, error)
}

// CreateOrders delegates to provided function or returns one pending order per vendor tag.
func (s OrderFacadeStub) CreateOrders(ctx context.Context, sub model.CartSubmission) ([]model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, sub)
	}
	return []model.Order{{ID: "o-1", CustomerID: sub.CustomerID, VendorID: "v-1", Status: model.OrderStatusPending}}, nil
}

// UpdateOrderStatus delegates to provided function or echoes the target status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, actor model.Identity, orderID string, status model.OrderStatus, reason string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, actor, orderID, status, reason)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// VendorOrders returns predefined orders for the actor's vendor.
func (s OrderFacadeStub) VendorOrders(ctx context.Context, actor model.Identity) ([]model.Order, error) {
	if s.VendorOrdersFn != nil {
		return s.VendorOrdersFn(ctx, actor)
	}
	return []model.Order{{ID: "o-1", VendorID: "v-1"}}, nil
}

// CustomerOrders returns predefined orders for given customer.
func (s OrderFacadeStub) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: "o-1", CustomerID: customerID}}, nil
}

// CatalogFacadeStub simulates stock status updates.
type CatalogFacadeStub struct {
	UpdateStockFn func(context.Context, model.Identity, model.BusinessType, string, model.StockStatus) (*model.ProductStatusChange, error)
}

// UpdateStockStatus executes configured handler or echoes the request.
func (s CatalogFacadeStub) UpdateStockStatus(ctx context.Context, actor model.Identity, kind model.BusinessType, productID string, status model.StockStatus) (*model.ProductStatusChange, error) {
	if s.UpdateStockFn != nil {
		return s.UpdateStockFn(ctx, actor, kind, productID, status)
	}
	return &model.ProductStatusChange{ProductID: productID, VendorID: "v-1", Kind: kind, StockStatus: status}, nil
}

// StreamFacadeStub simulates vendor live event subscriptions.
type StreamFacadeStub struct {
	SubscribeFn func(context.Context, model.Identity) (<-chan model.LiveEvent, func(), error)
}

// SubscribeVendor executes configured handler or returns a closed channel.
func (s StreamFacadeStub) SubscribeVendor(ctx context.Context, actor model.Identity) (<-chan model.LiveEvent, func(), error) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx, actor)
	}
	ch := make(chan model.LiveEvent)
	close(ch)
	return ch, func() {}, nil
}
