package model

// CartItem is a line of a submitted cart. VendorID is optional.
type CartItem struct {
	ProductRef string
	Name       string
	Quantity   int
	Price      float64
	VendorID   string
}

// CartSubmission carries everything a customer sends when checking out.
type CartSubmission struct {
	CustomerID       string
	Items            []CartItem
	FallbackVendorID string
	DeliveryAddress  string
	Note             string
	Latitude         *float64
	Longitude        *float64
	AppliedCoupon    string
	DiscountAmount   float64
}
