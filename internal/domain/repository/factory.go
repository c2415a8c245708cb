package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Vendors() VendorRepository
	Customers() CustomerRepository
	Orders() OrderRepository
	Catalogs() []ProductCatalog
}
