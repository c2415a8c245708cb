package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
	"github.com/zepcart/marketplace/internal/metrics"
)

// StatusUseCase advances vendor orders through their lifecycle.
type StatusUseCase struct {
	orders    repository.OrderRepository
	vendors   repository.VendorRepository
	customers repository.CustomerRepository
	notifier  Notifier
	live      LiveChannel
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase(
	orders repository.OrderRepository,
	vendors repository.VendorRepository,
	customers repository.CustomerRepository,
	notifier Notifier,
	live LiveChannel,
	m *metrics.Metrics,
	logger *slog.Logger,
) *StatusUseCase {
	return &StatusUseCase{
		orders:    orders,
		vendors:   vendors,
		customers: customers,
		notifier:  notifier,
		live:      live,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// UpdateStatus moves orderID to status on behalf of actor, who must own the order's vendor.
// A non-empty reason is stored whatever the target status. The customer is notified
// in the background; notification problems never fail the call.
func (u *StatusUseCase) UpdateStatus(ctx context.Context, actor model.Identity, orderID string, status model.OrderStatus, reason string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	vendor, err := u.vendors.GetByID(ctx, order.VendorID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotAuthorized
		}
		return nil, err
	}
	if !vendor.OwnedBy(actor.UserID) {
		return nil, domainErrors.ErrNotAuthorized
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}
	if !model.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, order.Status, status)
	}

	previous := order.Status
	order.Status = status
	if reason = strings.TrimSpace(reason); reason != "" {
		order.CancellationReason = &reason
	}
	order.UpdatedAt = u.now().UTC()

	if err := u.orders.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}
	u.metrics.StatusChanged(string(previous), string(status))

	u.notifyCustomer(ctx, order)

	if err := u.live.PublishToVendor(ctx, order.VendorID, model.EventOrderStatusChanged, order); err != nil {
		u.logger.Warn("publish status change failed",
			slog.String("order_id", order.ID),
			slog.String("vendor_id", order.VendorID),
			slog.String("error", err.Error()))
	}

	return order, nil
}

func (u *StatusUseCase) notifyCustomer(ctx context.Context, order *model.Order) {
	customer, err := u.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Warn("load customer for notification failed",
				slog.String("order_id", order.ID),
				slog.String("customer_id", order.CustomerID),
				slog.String("error", err.Error()))
		}
		return
	}
	if customer.PushToken == "" {
		u.logger.Debug("customer has no push token",
			slog.String("order_id", order.ID),
			slog.String("customer_id", order.CustomerID))
		return
	}

	if !u.notifier.Dispatch(NewStatusPush(customer.PushToken, order)) {
		u.logger.Warn("status notification not queued",
			slog.String("order_id", order.ID),
			slog.String("customer_id", order.CustomerID))
	}
}
