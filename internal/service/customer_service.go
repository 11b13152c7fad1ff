package service

import (
	"context"
	"fmt"

	"puntos-store/internal/loyalty"
	"puntos-store/internal/model"
	"puntos-store/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Register validates and creates a new customer with a zero balance.
func (s *customerService) Register(ctx context.Context, name, identity string) (*model.Customer, error) {
	if err := loyalty.ValidateDisplayName(name); err != nil {
		s.logger.Warn().Str("name", name).Msg("invalid display name")
		return nil, err
	}

	if err := loyalty.ValidateIdentity(identity); err != nil {
		s.logger.Warn().Str("identity", identity).Msg("invalid identity format")
		return nil, err
	}

	customer, err := s.customerRepo.Create(ctx, name, identity)
	if err != nil {
		if err == model.ErrAlreadyRegistered {
			s.logger.Warn().Str("identity", identity).Msg("identity already registered")
			return nil, err
		}
		s.logger.Error().Err(err).Str("identity", identity).Msg("failed to register customer")
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	s.logger.Info().Str("identity", identity).Msg("customer registered")

	return customer, nil
}

// Login resolves an identity number to an existing customer.
func (s *customerService) Login(ctx context.Context, identity string) (*model.Customer, error) {
	if err := loyalty.ValidateIdentity(identity); err != nil {
		s.logger.Warn().Str("identity", identity).Msg("invalid identity format")
		return nil, err
	}

	customer, err := s.customerRepo.FindByIdentity(ctx, identity)
	if err != nil {
		s.logger.Error().Err(err).Str("identity", identity).Msg("failed to look up customer")
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	if customer == nil {
		s.logger.Debug().Str("identity", identity).Msg("unknown identity")
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// Profile retrieves the customer behind an authenticated identity.
func (s *customerService) Profile(ctx context.Context, identity string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByIdentity(ctx, identity)
	if err != nil {
		s.logger.Error().Err(err).Str("identity", identity).Msg("failed to load profile")
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}
