package dto

import (
	"github.com/zepcart/marketplace/internal/domain/model"
)

// CartItemRequest is a single cart line.
type CartItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	VendorID  string  `json:"vendorId"`
}

// CreateOrderRequest is the checkout payload.
// OrderType is accepted from clients but ignored: each order takes the business type of its vendor.
type CreateOrderRequest struct {
	UserID          string            `json:"userId" binding:"required"`
	OrderType       string            `json:"orderType"`
	Items           []CartItemRequest `json:"items" binding:"required"`
	VendorID        string            `json:"vendorId"`
	UserNote        string            `json:"userNote"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Latitude        *float64          `json:"latitude"`
	Longitude       *float64          `json:"longitude"`
	AppliedCoupon   string            `json:"appliedCoupon"`
	DiscountAmount  float64           `json:"discountAmount"`
}

// Submission converts the payload into a cart submission.
func (r CreateOrderRequest) Submission() model.CartSubmission {
	items := make([]model.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.CartItem{
			ProductRef: it.ProductID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
			VendorID:   it.VendorID,
		})
	}
	return model.CartSubmission{
		CustomerID:       r.UserID,
		Items:            items,
		FallbackVendorID: r.VendorID,
		DeliveryAddress:  r.DeliveryAddress,
		Note:             r.UserNote,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		AppliedCoupon:    r.AppliedCoupon,
		DiscountAmount:   r.DiscountAmount,
	}
}

// UpdateStatusRequest changes the status of a single order.
type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	CancellationReason string `json:"cancellationReason"`
}
