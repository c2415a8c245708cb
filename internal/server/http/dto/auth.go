package dto

import (
	"time"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// RegisterRequest describes vendor user sign up payload.
type RegisterRequest struct {
	Mobile    string `json:"mobile" binding:"required"`
	Password  string `json:"password" binding:"required"`
	OwnerName string `json:"ownerName"`
	Role      string `json:"role"`
}

// LoginRequest describes mobile/password payload.
type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a vendor user.
type UserResponse struct {
	ID        string    `json:"id"`
	Mobile    string    `json:"mobile"`
	OwnerName string    `json:"ownerName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse carries issued session token.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewAuthResponse hides the password hash of usr.
func NewAuthResponse(usr *model.VendorUser, token string) AuthResponse {
	resp := AuthResponse{Token: token}
	if usr != nil {
		resp.User = UserResponse{
			ID:        usr.ID,
			Mobile:    usr.Mobile,
			OwnerName: usr.OwnerName,
			Role:      string(usr.Role),
			CreatedAt: usr.CreatedAt,
		}
	}
	return resp
}
