package repository

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// CustomerRepository reads customers and persists their promotion ledger.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	UpdatePromotions(ctx context.Context, customerID string, ledger model.PromotionLedger) error
}
