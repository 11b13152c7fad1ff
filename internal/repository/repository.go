package repository

import (
	"context"

	"puntos-store/internal/model"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// FindByIdentity retrieves a customer by identity number.
	// Returns (nil, nil) when no customer matches.
	FindByIdentity(ctx context.Context, identity string) (*model.Customer, error)

	// Create inserts a new customer with a zero points balance.
	// Returns model.ErrAlreadyRegistered when the identity is taken;
	// uniqueness of the identity is the only constraint enforced at the
	// storage boundary.
	Create(ctx context.Context, name, identity string) (*model.Customer, error)

	// SetBalance overwrites the customer's points balance. It is a
	// silent no-op when the identity is absent; callers are expected to
	// have already resolved the customer.
	SetBalance(ctx context.Context, identity string, balance int) error
}

// ProductRepository defines the interface for catalog data access operations.
type ProductRepository interface {
	// GetAll retrieves the full catalog in insertion order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns (nil, nil) when no product matches.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// SeedIfEmpty inserts the given products when the catalog is empty.
	// It is a no-op on an already-seeded store.
	SeedIfEmpty(ctx context.Context, products []model.Product) error
}
