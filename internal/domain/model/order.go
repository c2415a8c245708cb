package model

import "time"

// OrderStatus describes fulfillment lifecycle of a vendor order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusAccepted       OrderStatus = "Accepted"
	OrderStatusRejected       OrderStatus = "Rejected"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusReady          OrderStatus = "Ready"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusRejected,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether status is one of the known lifecycle values.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is allowed from status.
func (s OrderStatus) Terminal() bool {
	next, ok := validNext[s]
	return ok && len(next) == 0
}

// OrderItem is a single cart line attributed to the order's vendor.
type OrderItem struct {
	ProductRef string  `json:"productRef"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// Order is one vendor's share of a customer's cart.
type Order struct {
	ID                 string       `json:"id"`
	CustomerID         string       `json:"customerId"`
	VendorID           string       `json:"vendorId"`
	Items              []OrderItem  `json:"items"`
	TotalAmount        float64      `json:"totalAmount"`
	OrderType          BusinessType `json:"orderType"`
	Status             OrderStatus  `json:"status"`
	CancellationReason *string      `json:"cancellationReason,omitempty"`
	AppliedCoupon      string       `json:"appliedCoupon,omitempty"`
	DiscountAmount     float64      `json:"discountAmount"`
	DeliveryAddress    string       `json:"deliveryAddress"`
	Note               string       `json:"userNote"`
	Latitude           *float64     `json:"latitude,omitempty"`
	Longitude          *float64     `json:"longitude,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}
