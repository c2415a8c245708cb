package model

// StockStatus is the availability flag shown on product listings.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
)

// Valid reports whether s is a known stock status.
func (s StockStatus) Valid() bool {
	return s == StockStatusInStock || s == StockStatusOutOfStock
}

// ProductOwner is the result of resolving a product reference in a catalog.
type ProductOwner struct {
	ProductID string
	VendorID  string
	UnitPrice float64
	Kind      BusinessType
}

// ProductStatusChange is broadcast after a vendor flips a product's stock status.
type ProductStatusChange struct {
	ProductID   string       `json:"productId"`
	VendorID    string       `json:"vendorId"`
	Kind        BusinessType `json:"kind"`
	StockStatus StockStatus  `json:"stockStatus"`
}
