package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

func TestValidateSubmission(t *testing.T) {
	valid := model.CartSubmission{
		CustomerID: "c1",
		Items:      []model.CartItem{{ProductRef: "p1", Quantity: 1, Price: 2}},
	}
	if err := ValidateSubmission(valid); err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}

	cases := map[string]func(*model.CartSubmission){
		"missing customer":  func(s *model.CartSubmission) { s.CustomerID = " " },
		"no items":          func(s *model.CartSubmission) { s.Items = nil },
		"missing product":   func(s *model.CartSubmission) { s.Items = []model.CartItem{{Quantity: 1}} },
		"tagged no product": func(s *model.CartSubmission) { s.Items = []model.CartItem{{Quantity: 1, VendorID: "v1"}} },
		"zero quantity":     func(s *model.CartSubmission) { s.Items = []model.CartItem{{ProductRef: "p", Quantity: 0}} },
		"negative price":    func(s *model.CartSubmission) { s.Items = []model.CartItem{{ProductRef: "p", Quantity: 1, Price: -1}} },
		"negative discount": func(s *model.CartSubmission) { s.DiscountAmount = -5 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			sub := valid
			sub.Items = append([]model.CartItem(nil), valid.Items...)
			mutate(&sub)
			if err := ValidateSubmission(sub); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
