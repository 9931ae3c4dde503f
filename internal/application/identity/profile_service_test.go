package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sunset/storefront/internal/domain/identity"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/domain/trade"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter trade.OrderFilter) (shared.Paginated[trade.Order], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[trade.Order]), args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]trade.Order, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) CustomerStats(ctx context.Context, customerID uuid.UUID) (*trade.CustomerStats, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.CustomerStats), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) WithTx(tx any) trade.OrderRepository {
	m.Called(tx)
	return m
}

func newTestProfileService(customers *MockCustomerRepository, orders *MockOrderRepository) *ProfileService {
	return NewProfileService(customers, orders, zap.NewNop())
}

func TestProfileAggregatesOrderHistory(t *testing.T) {
	customer, _ := identity.NewCustomer("ana@example.com", "secreto123", "Ana")
	order, err := trade.NewOrder(customer.ID, []trade.OrderItem{
		{ProductID: uuid.New(), Name: "Collar", Price: decimal.NewFromInt(450), Quantity: 2},
	}, "")
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

	orders := new(MockOrderRepository)
	orders.On("CustomerStats", mock.Anything, customer.ID).Return(&trade.CustomerStats{
		OrderCount: 3,
		TotalSpent: decimal.NewFromInt(2700),
	}, nil)
	orders.On("FindAll", mock.Anything, mock.MatchedBy(func(f trade.OrderFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == customer.ID && f.PageSize == 5
	})).Return(shared.NewPaginated([]trade.Order{*order}, 3, 1, 5), nil)

	svc := newTestProfileService(customers, orders)
	result, err := svc.Profile(context.Background(), customer.ID)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.OrderCount)
	assert.True(t, result.TotalSpent.Equal(decimal.NewFromInt(2700)))
	assert.Len(t, result.RecentOrders, 1)
	assert.Equal(t, 1, result.RecentOrders[0].ItemCount)
}

func TestUpdateProfileTrimsName(t *testing.T) {
	customer, _ := identity.NewCustomer("ana@example.com", "secreto123", "Ana")

	customers := new(MockCustomerRepository)
	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	customers.On("Save", mock.Anything, customer).Return(nil)

	svc := newTestProfileService(customers, new(MockOrderRepository))
	info, err := svc.UpdateProfile(context.Background(), customer.ID, UpdateProfileInput{Name: "  Ana María  "})

	assert.NoError(t, err)
	assert.Equal(t, "Ana María", info.Name)
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	customer, _ := identity.NewCustomer("ana@example.com", "secreto123", "Ana")

	customers := new(MockCustomerRepository)
	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

	svc := newTestProfileService(customers, new(MockOrderRepository))
	_, err := svc.UpdateProfile(context.Background(), customer.ID, UpdateProfileInput{Name: "   "})

	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	customer, _ := identity.NewCustomer("ana@example.com", "secreto123", "Ana")

	customers := new(MockCustomerRepository)
	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	customers.On("Save", mock.Anything, customer).Return(nil)

	svc := newTestProfileService(customers, new(MockOrderRepository))
	err := svc.ChangePassword(context.Background(), customer.ID, ChangePasswordInput{
		CurrentPassword: "secreto123",
		NewPassword:     "nueva456",
	})

	assert.NoError(t, err)
	assert.True(t, customer.CheckPassword("nueva456"))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	customer, _ := identity.NewCustomer("ana@example.com", "secreto123", "Ana")

	customers := new(MockCustomerRepository)
	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

	svc := newTestProfileService(customers, new(MockOrderRepository))
	err := svc.ChangePassword(context.Background(), customer.ID, ChangePasswordInput{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva456",
	})

	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	assert.True(t, customer.CheckPassword("secreto123"))
}

func TestChangePasswordOAuthAccountRejected(t *testing.T) {
	customer, _ := identity.NewOAuthCustomer("luis@example.com", "Luis", "google", "g-1")

	customers := new(MockCustomerRepository)
	customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

	svc := newTestProfileService(customers, new(MockOrderRepository))
	err := svc.ChangePassword(context.Background(), customer.ID, ChangePasswordInput{
		CurrentPassword: "",
		NewPassword:     "nueva456",
	})

	assert.Error(t, err)
	customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
