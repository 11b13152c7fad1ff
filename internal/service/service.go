package service

import (
	"context"

	"puntos-store/internal/model"
)

// CustomerService defines operations for customer registration and lookup.
type CustomerService interface {
	// Register validates and creates a new customer with a zero balance.
	Register(ctx context.Context, name, identity string) (*model.Customer, error)

	// Login resolves an identity number to an existing customer.
	// Returns model.ErrCustomerNotFound for an unknown identity.
	Login(ctx context.Context, identity string) (*model.Customer, error)

	// Profile retrieves the customer behind an authenticated identity.
	Profile(ctx context.Context, identity string) (*model.Customer, error)
}

// ProductService defines operations for the catalog.
type ProductService interface {
	// Catalog retrieves all products in catalog order.
	Catalog(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product.
	// Returns model.ErrProductNotFound for an unknown ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
}

// PurchaseService defines the purchase flow: validation, points
// redemption, accrual, and the balance write.
type PurchaseService interface {
	// Purchase buys a product for the given customer, redeeming
	// pointsRaw points (the raw form value, "0" when absent).
	Purchase(ctx context.Context, identity string, productID int64, pointsRaw string) (*model.Receipt, error)
}
