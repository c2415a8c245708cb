package repository

import (
	"context"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// UserRepository describes persistence operations for vendor users.
type UserRepository interface {
	Create(ctx context.Context, user model.VendorUser) (*model.VendorUser, error)
	GetByMobile(ctx context.Context, mobile string) (*model.VendorUser, error)
	GetByID(ctx context.Context, id string) (*model.VendorUser, error)
}
