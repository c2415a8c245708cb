package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

type vendorRepository struct {
	storage *Storage
}

func (r *userRepository) Create(ctx context.Context, user model.VendorUser) (*model.VendorUser, error) {
	const query = `INSERT INTO vendor_users (id, mobile, owner_name, password_hash, role, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		user.ID, user.Mobile, user.OwnerName, user.PasswordHash, string(user.Role), user.CreatedAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByMobile(ctx context.Context, mobile string) (*model.VendorUser, error) {
	const query = `SELECT id, mobile, owner_name, password_hash, role, created_at FROM vendor_users WHERE mobile=$1`
	return r.scanOne(ctx, query, mobile)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.VendorUser, error) {
	const query = `SELECT id, mobile, owner_name, password_hash, role, created_at FROM vendor_users WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *userRepository) scanOne(ctx context.Context, query string, arg string) (*model.VendorUser, error) {
	var (
		u    model.VendorUser
		role string
	)
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Mobile, &u.OwnerName, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	u.Role = model.Role(role)
	return &u, nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*model.Vendor, error) {
	const query = `SELECT id, owner_user_id, business_type, status, created_at FROM vendors WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *vendorRepository) GetByOwner(ctx context.Context, userID string) (*model.Vendor, error) {
	const query = `SELECT id, owner_user_id, business_type, status, created_at FROM vendors WHERE owner_user_id=$1`
	return r.scanOne(ctx, query, userID)
}

func (r *vendorRepository) scanOne(ctx context.Context, query string, arg string) (*model.Vendor, error) {
	var (
		v            model.Vendor
		businessType string
		status       string
	)
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&v.ID, &v.OwnerUserID, &businessType, &status, &v.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	v.BusinessType = model.BusinessType(businessType)
	v.Status = model.VendorStatus(status)
	return &v, nil
}
