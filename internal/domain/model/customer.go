package model

import (
	"slices"
	"time"
)

const (
	// WelcomeCoupon is the single-use welcome bonus code.
	WelcomeCoupon = "WELCOME50"
	// WelcomeFreeDeliveries is the credit granted by WelcomeCoupon.
	WelcomeFreeDeliveries = 3
)

// PromotionLedger records consumed coupons and delivery credits of a customer.
type PromotionLedger struct {
	UsedCoupons          []string
	FreeDeliveriesCount  int
	EligibleForWelcome50 bool
}

// HasUsed reports whether code was already consumed.
func (l *PromotionLedger) HasUsed(code string) bool {
	return slices.Contains(l.UsedCoupons, code)
}

// Apply records consumption of code. The welcome coupon also grants delivery credits.
func (l *PromotionLedger) Apply(code string) {
	if code == "" {
		return
	}
	if !l.HasUsed(code) {
		l.UsedCoupons = append(l.UsedCoupons, code)
	}
	if code == WelcomeCoupon {
		l.EligibleForWelcome50 = false
		l.FreeDeliveriesCount += WelcomeFreeDeliveries
	}
}

// Customer is a shopper placing orders.
type Customer struct {
	ID        string
	Mobile    string
	Name      string
	PushToken string
	Ledger    PromotionLedger
	CreatedAt time.Time
}
