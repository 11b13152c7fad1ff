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
)

// productRepository implements ProductRepository on the embedded store.
type productRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewProductRepository creates a new sqlite-backed product repository.
func NewProductRepository(db *sqlx.DB, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves the full catalog in insertion order.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, image_url, created_at
		FROM products
		ORDER BY id
	`

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, price, image_url, created_at
		FROM products
		WHERE id = ?
	`

	var p model.Product
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// SeedIfEmpty inserts the given products when the catalog is empty.
func (r *productRepository) SeedIfEmpty(ctx context.Context, products []model.Product) error {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		r.logger.Debug().Int("count", count).Msg("catalog already seeded")
		return nil
	}

	query := `
		INSERT INTO products (name, price, image_url, created_at)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now().UTC()
	for _, p := range products {
		if _, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.ImageURL, now); err != nil {
			r.logger.Error().Err(err).Str("name", p.Name).Msg("failed to seed product")
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	r.logger.Info().Int("count", len(products)).Msg("catalog seeded")

	return nil
}
