package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

// ValidateSubmission checks required cart fields before any lookup happens.
// Every item needs a product reference, including items already tagged with a vendor.
func ValidateSubmission(sub model.CartSubmission) error {
	if strings.TrimSpace(sub.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", domainErrors.ErrValidation)
	}
	if len(sub.Items) == 0 {
		return fmt.Errorf("%w: cart has no items", domainErrors.ErrValidation)
	}
	for i, item := range sub.Items {
		if strings.TrimSpace(item.ProductRef) == "" {
			return fmt.Errorf("%w: item %d has no product reference", domainErrors.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", domainErrors.ErrValidation, i)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %d price must not be negative", domainErrors.ErrValidation, i)
		}
	}
	if sub.DiscountAmount < 0 {
		return fmt.Errorf("%w: discount must not be negative", domainErrors.ErrValidation)
	}
	return nil
}
