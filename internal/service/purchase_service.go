package service

import (
	"context"
	"fmt"

	"puntos-store/internal/loyalty"
	"puntos-store/internal/model"
	"puntos-store/internal/repository"

	"github.com/rs/zerolog"
)

// purchaseService implements PurchaseService.
type purchaseService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) PurchaseService {
	return &purchaseService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "purchase").Logger(),
	}
}

// Purchase buys a product for the given customer, redeeming pointsRaw
// points. Validation failures leave the stored balance untouched.
//
// Known gap: the balance is read, priced in memory, and written back in
// separate store calls, so two concurrent purchases against the same
// identity can race and lose an update. The original system behaves the
// same way; closing the window would be a behavior change.
func (s *purchaseService) Purchase(ctx context.Context, identity string, productID int64, pointsRaw string) (*model.Receipt, error) {
	customer, err := s.customerRepo.FindByIdentity(ctx, identity)
	if err != nil {
		s.logger.Error().Err(err).Str("identity", identity).Msg("failed to resolve customer")
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to resolve product")
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	// Balance sufficiency is checked before the price gate; a customer
	// overdrawing their points is an input error, a discount larger than
	// the price is a business constraint.
	points, err := loyalty.ParseRedemption(pointsRaw, customer.Balance)
	if err != nil {
		s.logger.Warn().
			Str("identity", identity).
			Str("points_raw", pointsRaw).
			Int("balance", customer.Balance).
			Err(err).
			Msg("redemption rejected")
		return nil, err
	}

	quote, err := loyalty.Price(product.Price, customer.Balance, points)
	if err != nil {
		s.logger.Warn().
			Str("identity", identity).
			Int64("product_id", productID).
			Int("points", points).
			Err(err).
			Msg("quote rejected")
		return nil, err
	}

	if err := s.customerRepo.SetBalance(ctx, identity, quote.NewBalance); err != nil {
		s.logger.Error().Err(err).Str("identity", identity).Msg("failed to persist new balance")
		return nil, fmt.Errorf("failed to persist new balance: %w", err)
	}

	s.logger.Info().
		Str("identity", identity).
		Int64("product_id", productID).
		Int("points_used", points).
		Int("points_earned", quote.PointsEarned).
		Int("final_price", quote.FinalPrice).
		Int("new_balance", quote.NewBalance).
		Msg("purchase completed")

	return &model.Receipt{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Price:        product.Price,
		PointsUsed:   points,
		Discount:     quote.Discount,
		FinalPrice:   quote.FinalPrice,
		PointsEarned: quote.PointsEarned,
		NewBalance:   quote.NewBalance,
	}, nil
}
