package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
	pkgAuth "github.com/zepcart/marketplace/internal/pkg/auth"
)

// AuthUseCase handles vendor user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	now    func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, now: time.Now}
}

// Register creates a vendor account and returns auth token. An empty role defaults to vendor.
func (u *AuthUseCase) Register(ctx context.Context, mobile, password, ownerName string, role model.Role) (*model.VendorUser, string, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if role == "" {
		role = model.RoleVendor
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", domainErrors.ErrValidation, role)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrWeakPassword) {
			return nil, "", fmt.Errorf("%w: %v", domainErrors.ErrValidation, err)
		}
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.VendorUser{
		ID:           uuid.NewString(),
		Mobile:       mobile,
		OwnerName:    strings.TrimSpace(ownerName),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(model.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, mobile, password string) (*model.VendorUser, string, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(model.Identity{UserID: usr.ID, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts caller identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches vendor user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.VendorUser, error) {
	return u.users.GetByID(ctx, id)
}
