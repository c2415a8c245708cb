package repository

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// VendorRepository resolves vendors by identifier or owning user.
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*model.Vendor, error)
	GetByOwner(ctx context.Context, userID string) (*model.Vendor, error)
}
