package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/zepcart/marketplace/internal/domain/errors"
	"github.com/zepcart/marketplace/internal/domain/model"
)

// UserRepositoryStub stores vendor users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.VendorUser
	ByID  map[string]*model.VendorUser
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.VendorUser),
		ByID:  make(map[string]*model.VendorUser),
		Next:  1,
	}
}

// Create registers user unless the mobile is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.VendorUser) (*model.VendorUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.VendorUser)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.VendorUser)
	}
	if _, exists := s.Users[user.Mobile]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if user.ID == "" {
		if s.Next == 0 {
			s.Next = 1
		}
		user.ID = fmt.Sprintf("u-%d", s.Next)
		s.Next++
	}
	stored := user
	s.Users[user.Mobile] = &stored
	s.ByID[user.ID] = &stored
	return &stored, nil
}

// GetByMobile fetches user by mobile or returns not found.
func (s *UserRepositoryStub) GetByMobile(ctx context.Context, mobile string) (*model.VendorUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[mobile]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.VendorUser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// VendorRepositoryStub resolves vendors from a map unless overridden.
type VendorRepositoryStub struct {
	Vendors      map[string]*model.Vendor
	GetByIDFn    func(context.Context, string) (*model.Vendor, error)
	GetByOwnerFn func(context.Context, string) (*model.Vendor, error)
}

// NewVendorRepositoryStub indexes the supplied vendors by id.
func NewVendorRepositoryStub(vendors ...model.Vendor) *VendorRepositoryStub {
	s := &VendorRepositoryStub{Vendors: make(map[string]*model.Vendor, len(vendors))}
	for i := range vendors {
		v := vendors[i]
		s.Vendors[v.ID] = &v
	}
	return s
}

// GetByID returns vendor or not found.
func (s *VendorRepositoryStub) GetByID(ctx context.Context, id string) (*model.Vendor, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if v, ok := s.Vendors[id]; ok {
		return v, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByOwner returns the vendor owned by userID or not found.
func (s *VendorRepositoryStub) GetByOwner(ctx context.Context, userID string) (*model.Vendor, error) {
	if s.GetByOwnerFn != nil {
		return s.GetByOwnerFn(ctx, userID)
	}
	for _, v := range s.Vendors {
		if v.OwnerUserID == userID {
			return v, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// PromotionUpdate records a persisted ledger.
type PromotionUpdate struct {
	CustomerID string
	Ledger     model.PromotionLedger
}

// CustomerRepositoryStub keeps customers in-memory and records ledger writes.
type CustomerRepositoryStub struct {
	Customers          map[string]*model.Customer
	GetByIDFn          func(context.Context, string) (*model.Customer, error)
	UpdatePromotionsFn func(context.Context, string, model.PromotionLedger) error
	Updates            []PromotionUpdate
}

// NewCustomerRepositoryStub indexes the supplied customers by id.
func NewCustomerRepositoryStub(customers ...model.Customer) *CustomerRepositoryStub {
	s := &CustomerRepositoryStub{Customers: make(map[string]*model.Customer, len(customers))}
	for i := range customers {
		c := customers[i]
		s.Customers[c.ID] = &c
	}
	return s
}

// GetByID returns a copy of the stored customer.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if c, ok := s.Customers[id]; ok {
		cp := *c
		cp.Ledger.UsedCoupons = append([]string(nil), c.Ledger.UsedCoupons...)
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdatePromotions stores the ledger and records the call.
func (s *CustomerRepositoryStub) UpdatePromotions(ctx context.Context, customerID string, ledger model.PromotionLedger) error {
	s.Updates = append(s.Updates, PromotionUpdate{CustomerID: customerID, Ledger: ledger})
	if s.UpdatePromotionsFn != nil {
		return s.UpdatePromotionsFn(ctx, customerID, ledger)
	}
	if c, ok := s.Customers[customerID]; ok {
		c.Ledger = ledger
	}
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn         func(context.Context, *model.Order) error
	GetByIDFn        func(context.Context, string) (*model.Order, error)
	UpdateStatusFn   func(context.Context, *model.Order) error
	ListByVendorFn   func(context.Context, string) ([]model.Order, error)
	ListByCustomerFn func(context.Context, string) ([]model.Order, error)

	Created []model.Order
	Updated []model.Order
	Orders  []model.Order
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		if err := s.CreateFn(ctx, order); err != nil {
			return err
		}
	}
	s.Created = append(s.Created, *order)
	return nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, order *model.Order) error {
	if s.UpdateStatusFn != nil {
		if err := s.UpdateStatusFn(ctx, order); err != nil {
			return err
		}
	}
	s.Updated = append(s.Updated, *order)
	return nil
}

// ListByVendor returns stored orders of the vendor.
func (s *OrderRepositoryStub) ListByVendor(ctx context.Context, vendorID string) ([]model.Order, error) {
	if s.ListByVendorFn != nil {
		return s.ListByVendorFn(ctx, vendorID)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.VendorID == vendorID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListByCustomer returns stored orders of the customer.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// StockUpdate records an UpdateStockStatus call.
type StockUpdate struct {
	ProductID string
	Status    model.StockStatus
}

// CatalogStub is an in-memory product catalog safe for concurrent lookups.
type CatalogStub struct {
	KindVal  model.BusinessType
	Products map[string]model.ProductOwner
	FindFn   func(context.Context, string) (*model.ProductOwner, error)
	UpdateFn func(context.Context, string, model.StockStatus) error

	mu      sync.Mutex
	lookups []string
	Updates []StockUpdate
}

// NewCatalogStub builds catalog of kind holding products.
func NewCatalogStub(kind model.BusinessType, products ...model.ProductOwner) *CatalogStub {
	s := &CatalogStub{KindVal: kind, Products: make(map[string]model.ProductOwner, len(products))}
	for _, p := range products {
		p.Kind = kind
		s.Products[p.ProductID] = p
	}
	return s
}

// Kind returns configured business type.
func (s *CatalogStub) Kind() model.BusinessType { return s.KindVal }

// FindProductOwner looks up a product and records the lookup.
func (s *CatalogStub) FindProductOwner(ctx context.Context, productID string) (*model.ProductOwner, error) {
	s.mu.Lock()
	s.lookups = append(s.lookups, productID)
	s.mu.Unlock()

	if s.FindFn != nil {
		return s.FindFn(ctx, productID)
	}
	if p, ok := s.Products[productID]; ok {
		return &p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStockStatus records the call.
func (s *CatalogStub) UpdateStockStatus(ctx context.Context, productID string, status model.StockStatus) error {
	if s.UpdateFn != nil {
		if err := s.UpdateFn(ctx, productID, status); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, StockUpdate{ProductID: productID, Status: status})
	return nil
}

// Lookups returns product ids queried so far.
func (s *CatalogStub) Lookups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lookups...)
}
