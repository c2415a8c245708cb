package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
	"github.com/zepcart/marketplace/internal/metrics"
)

// resolveConcurrency bounds parallel catalog lookups per submission.
const resolveConcurrency = 8

// OrderUseCase splits carts into per-vendor orders and serves order listings.
type OrderUseCase struct {
	orders    repository.OrderRepository
	vendors   repository.VendorRepository
	customers repository.CustomerRepository
	catalogs  *CatalogChain
	live      LiveChannel
	metrics   *metrics.Metrics
	logger    *slog.Logger

	newID func() string
	now   func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	vendors repository.VendorRepository,
	customers repository.CustomerRepository,
	catalogs *CatalogChain,
	live LiveChannel,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		vendors:   vendors,
		customers: customers,
		catalogs:  catalogs,
		live:      live,
		metrics:   m,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

type resolvedItem struct {
	vendorID string
	price    float64
}

type vendorGroup struct {
	vendorID string
	items    []model.OrderItem
	total    decimal.Decimal
}

// Submit creates one Pending order per resolvable vendor in the cart.
//
// Groups keep the order in which their vendor first appears in the cart; the
// first group that is persisted carries the whole discount. Items whose vendor
// cannot be resolved and groups whose vendor does not exist are skipped. Orders
// already written stay written when a later group fails.
func (u *OrderUseCase) Submit(ctx context.Context, sub model.CartSubmission) ([]model.Order, error) {
	if err := ValidateSubmission(sub); err != nil {
		return nil, err
	}

	resolved, err := u.resolveItems(ctx, sub)
	if err != nil {
		return nil, err
	}

	groups := groupByVendor(sub.Items, resolved)
	coupon := strings.TrimSpace(sub.AppliedCoupon)

	created := make([]model.Order, 0, len(groups))
	var lastErr error
	for _, g := range groups {
		vendor, err := u.vendors.GetByID(ctx, g.vendorID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				u.logger.Info("skipping group of unknown vendor",
					slog.String("vendor_id", g.vendorID),
					slog.String("customer_id", sub.CustomerID))
			} else {
				lastErr = err
				u.logger.Error("vendor lookup failed",
					slog.String("vendor_id", g.vendorID),
					slog.String("error", err.Error()))
			}
			continue
		}

		discount := 0.0
		if len(created) == 0 {
			discount = sub.DiscountAmount
		}

		ts := u.now().UTC()
		order := model.Order{
			ID:              u.newID(),
			CustomerID:      sub.CustomerID,
			VendorID:        vendor.ID,
			Items:           g.items,
			TotalAmount:     g.total.InexactFloat64(),
			OrderType:       vendor.BusinessType,
			Status:          model.OrderStatusPending,
			AppliedCoupon:   coupon,
			DiscountAmount:  discount,
			DeliveryAddress: sub.DeliveryAddress,
			Note:            sub.Note,
			Latitude:        sub.Latitude,
			Longitude:       sub.Longitude,
			CreatedAt:       ts,
			UpdatedAt:       ts,
		}

		if err := u.orders.Create(ctx, &order); err != nil {
			lastErr = err
			u.logger.Error("create vendor order failed",
				slog.String("vendor_id", vendor.ID),
				slog.String("customer_id", sub.CustomerID),
				slog.String("error", err.Error()))
			continue
		}

		created = append(created, order)
		u.metrics.OrderCreated(string(order.OrderType))
	}

	if len(created) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("create orders: %w", lastErr)
		}
		return nil, domainErrors.ErrNoValidOrders
	}

	for i := range created {
		order := &created[i]
		if err := u.live.PublishToVendor(ctx, order.VendorID, model.EventOrderCreated, order); err != nil {
			u.logger.Warn("publish order created failed",
				slog.String("order_id", order.ID),
				slog.String("vendor_id", order.VendorID),
				slog.String("error", err.Error()))
		}
	}

	if coupon != "" {
		u.consumeCoupon(ctx, sub.CustomerID, coupon)
	}

	return created, nil
}

// resolveItems attributes each cart line to a vendor. Lines left with an empty
// vendor are dropped by the caller.
func (u *OrderUseCase) resolveItems(ctx context.Context, sub model.CartSubmission) ([]resolvedItem, error) {
	out := make([]resolvedItem, len(sub.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)

	for i, item := range sub.Items {
		if item.VendorID != "" {
			out[i] = resolvedItem{vendorID: item.VendorID, price: item.Price}
			continue
		}

		g.Go(func() error {
			owner, err := u.catalogs.Resolve(gctx, item.ProductRef)
			switch {
			case err == nil:
				price := item.Price
				if price == 0 {
					price = owner.UnitPrice
				}
				out[i] = resolvedItem{vendorID: owner.VendorID, price: price}
			case errors.Is(err, domainErrors.ErrNotFound):
				if sub.FallbackVendorID != "" {
					out[i] = resolvedItem{vendorID: sub.FallbackVendorID, price: item.Price}
					return nil
				}
				u.logger.Info("dropping unresolvable cart item",
					slog.String("product_ref", item.ProductRef),
					slog.String("customer_id", sub.CustomerID))
			default:
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve cart items: %w", err)
	}
	return out, nil
}

func groupByVendor(items []model.CartItem, resolved []resolvedItem) []*vendorGroup {
	var groups []*vendorGroup
	index := make(map[string]*vendorGroup)

	for i, item := range items {
		r := resolved[i]
		if r.vendorID == "" {
			continue
		}
		g, ok := index[r.vendorID]
		if !ok {
			g = &vendorGroup{vendorID: r.vendorID, total: decimal.Zero}
			index[r.vendorID] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, model.OrderItem{
			ProductRef: item.ProductRef,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  r.price,
		})
		g.total = g.total.Add(decimal.NewFromFloat(r.price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return groups
}

// consumeCoupon records code in the customer's ledger. It is a plain
// read-modify-write: two concurrent submissions may both see the code as unused.
func (u *OrderUseCase) consumeCoupon(ctx context.Context, customerID, code string) {
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Error("load customer for coupon failed",
				slog.String("customer_id", customerID),
				slog.String("error", err.Error()))
		}
		return
	}

	customer.Ledger.Apply(code)

	if err := u.customers.UpdatePromotions(ctx, customer.ID, customer.Ledger); err != nil {
		u.logger.Error("update promotion ledger failed",
			slog.String("customer_id", customerID),
			slog.String("coupon", code),
			slog.String("error", err.Error()))
	}
}

// VendorOrders lists orders of the vendor owned by actor, newest first.
func (u *OrderUseCase) VendorOrders(ctx context.Context, actor model.Identity) ([]model.Order, error) {
	vendor, err := u.vendors.GetByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return u.orders.ListByVendor(ctx, vendor.ID)
}

// CustomerOrders lists orders placed by customerID, newest first.
func (u *OrderUseCase) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", domainErrors.ErrValidation)
	}
	return u.orders.ListByCustomer(ctx, customerID)
}
