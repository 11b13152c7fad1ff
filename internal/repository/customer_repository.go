package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"puntos-store/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// customerRepository implements CustomerRepository on the embedded store.
type customerRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewCustomerRepository creates a new sqlite-backed customer repository.
func NewCustomerRepository(db *sqlx.DB, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// FindByIdentity retrieves a customer by identity number.
func (r *customerRepository) FindByIdentity(ctx context.Context, identity string) (*model.Customer, error) {
	query := `
		SELECT identity, name, balance, created_at
		FROM customers
		WHERE identity = ?
	`

	var c model.Customer
	if err := r.db.GetContext(ctx, &c, query, identity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Str("identity", identity).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("identity", identity).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// Create inserts a new customer with a zero points balance.
func (r *customerRepository) Create(ctx context.Context, name, identity string) (*model.Customer, error) {
	query := `
		INSERT INTO customers (identity, name, balance, created_at)
		VALUES (?, ?, 0, ?)
	`

	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query, identity, name, now); err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug().Str("identity", identity).Msg("identity already registered")
			return nil, model.ErrAlreadyRegistered
		}
		r.logger.Error().Err(err).Str("identity", identity).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Str("identity", identity).Msg("customer created")

	return &model.Customer{
		Identity:  identity,
		Name:      name,
		Balance:   0,
		CreatedAt: now,
	}, nil
}

// SetBalance overwrites the customer's points balance.
func (r *customerRepository) SetBalance(ctx context.Context, identity string, balance int) error {
	query := `
		UPDATE customers
		SET balance = ?
		WHERE identity = ?
	`

	res, err := r.db.ExecContext(ctx, query, balance, identity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("identity", identity).
			Int("balance", balance).
			Msg("failed to update balance")
		return fmt.Errorf("failed to update balance: %w", err)
	}

	// Zero rows means the identity is absent; the write is silently
	// dropped to match the store's contract.
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		r.logger.Warn().Str("identity", identity).Msg("balance update matched no customer")
	}

	r.logger.Debug().
		Str("identity", identity).
		Int("balance", balance).
		Msg("balance updated")

	return nil
}

// isUniqueViolation reports whether err is a sqlite unique-constraint
// failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
