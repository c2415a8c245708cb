package model

import "time"

// BusinessType is the vendor category; it also selects the product catalog.
type BusinessType string

const (
	BusinessTypeGrocery     BusinessType = "grocery"
	BusinessTypeRestaurant  BusinessType = "restaurant"
	BusinessTypeSupermarket BusinessType = "supermarket"
)

// CatalogPriority is the order in which catalogs are searched for an untagged product.
var CatalogPriority = []BusinessType{
	BusinessTypeGrocery,
	BusinessTypeRestaurant,
	BusinessTypeSupermarket,
}

// Valid reports whether t is a known business type.
func (t BusinessType) Valid() bool {
	switch t {
	case BusinessTypeGrocery, BusinessTypeRestaurant, BusinessTypeSupermarket:
		return true
	}
	return false
}

// VendorStatus tracks admin approval.
type VendorStatus string

const (
	VendorStatusDraft    VendorStatus = "draft"
	VendorStatusPending  VendorStatus = "pending"
	VendorStatusApproved VendorStatus = "approved"
	VendorStatusRejected VendorStatus = "rejected"
)

// Vendor is a business owned by exactly one vendor user.
type Vendor struct {
	ID           string
	OwnerUserID  string
	BusinessType BusinessType
	Status       VendorStatus
	CreatedAt    time.Time
}

// OwnedBy reports whether the vendor belongs to the given user.
func (v *Vendor) OwnedBy(userID string) bool {
	return v != nil && userID != "" && v.OwnerUserID == userID
}
