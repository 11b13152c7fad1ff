package service

import (
	"context"
	"testing"
	"time"

	"puntos-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Register_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	created := &model.Customer{Identity: "123456", Name: "Maria Lopez", Balance: 0, CreatedAt: time.Now()}
	customerRepo.On("Create", ctx, "Maria Lopez", "123456").Return(created, nil)

	svc := NewCustomerService(customerRepo, logger)

	customer, err := svc.Register(ctx, "Maria Lopez", "123456")

	require.NoError(t, err)
	assert.Equal(t, "123456", customer.Identity)
	assert.Equal(t, 0, customer.Balance)
	customerRepo.AssertExpectations(t)
}

func TestCustomerService_Register_InvalidIdentity(t *testing.T) {
	logger := zerolog.Nop()
	customerRepo := new(MockCustomerRepository)

	svc := NewCustomerService(customerRepo, logger)

	_, err := svc.Register(context.Background(), "Maria Lopez", "abc123")

	assert.Equal(t, model.ErrInvalidIdentity, err)
	customerRepo.AssertNotCalled(t, "Create")
}

func TestCustomerService_Register_InvalidName(t *testing.T) {
	logger := zerolog.Nop()
	customerRepo := new(MockCustomerRepository)

	svc := NewCustomerService(customerRepo, logger)

	_, err := svc.Register(context.Background(), "M4ria", "123456")

	assert.Equal(t, model.ErrInvalidDisplayName, err)
	customerRepo.AssertNotCalled(t, "Create")
}

func TestCustomerService_Register_Duplicate(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Create", ctx, "Maria Lopez", "123456").Return(nil, model.ErrAlreadyRegistered)

	svc := NewCustomerService(customerRepo, logger)

	_, err := svc.Register(ctx, "Maria Lopez", "123456")

	assert.Equal(t, model.ErrAlreadyRegistered, err)
}

func TestCustomerService_Login_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	existing := &model.Customer{Identity: "123456", Name: "Maria Lopez", Balance: 495}
	customerRepo.On("FindByIdentity", ctx, "123456").Return(existing, nil)

	svc := NewCustomerService(customerRepo, logger)

	customer, err := svc.Login(ctx, "123456")

	require.NoError(t, err)
	assert.Equal(t, 495, customer.Balance)
}

func TestCustomerService_Login_Unknown(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	customerRepo.On("FindByIdentity", ctx, "654321").Return(nil, nil)

	svc := NewCustomerService(customerRepo, logger)

	_, err := svc.Login(ctx, "654321")

	assert.Equal(t, model.ErrCustomerNotFound, err)
}

func TestCustomerService_Login_InvalidFormat(t *testing.T) {
	logger := zerolog.Nop()
	customerRepo := new(MockCustomerRepository)

	svc := NewCustomerService(customerRepo, logger)

	_, err := svc.Login(context.Background(), "abc123")

	assert.Equal(t, model.ErrInvalidIdentity, err)
	customerRepo.AssertNotCalled(t, "FindByIdentity")
}

func TestCustomerService_Profile(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	existing := &model.Customer{Identity: "123456", Name: "Maria Lopez", Balance: 100}
	customerRepo.On("FindByIdentity", ctx, "123456").Return(existing, nil)

	svc := NewCustomerService(customerRepo, logger)

	customer, err := svc.Profile(ctx, "123456")

	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", customer.Name)
}
