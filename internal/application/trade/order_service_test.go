package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

// MockPaymentRepository is a mock implementation of trade.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]trade.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *trade.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func newOrder(t *testing.T) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(uuid.New(), []trade.OrderItem{
		{ProductID: uuid.New(), Name: "Collar de jade", Price: decimal.NewFromInt(450), Quantity: 2},
	}, "Av. Reforma 123")
	require.NoError(t, err)
	return order
}

func newTestOrderService(orders *MockOrderRepository, payments *MockPaymentRepository) *OrderService {
	return NewOrderService(orders, payments, zap.NewNop())
}

func TestUpdateStatusFollowsTransitionGraph(t *testing.T) {
	orders := new(MockOrderRepository)
	order := newOrder(t)

	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orders.On("Save", mock.Anything, order).Return(nil)

	svc := newTestOrderService(orders, new(MockPaymentRepository))
	resp, err := svc.UpdateStatus(context.Background(), order.ID, UpdateStatusInput{Status: "Procesando"})

	assert.NoError(t, err)
	assert.Equal(t, "Procesando", resp.Status)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	orders := new(MockOrderRepository)
	order := newOrder(t)

	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	svc := newTestOrderService(orders, new(MockPaymentRepository))
	_, err := svc.UpdateStatus(context.Background(), order.ID, UpdateStatusInput{Status: "Entregado"})

	assert.Error(t, err)
	assert.Equal(t, trade.StatusPending, order.Status)
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	orders := new(MockOrderRepository)
	order := newOrder(t)
	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	svc := newTestOrderService(orders, new(MockPaymentRepository))
	_, err := svc.UpdateStatus(context.Background(), order.ID, UpdateStatusInput{Status: "Perdido"})

	assert.Error(t, err)
}

func TestRecordPayment(t *testing.T) {
	orders := new(MockOrderRepository)
	payments := new(MockPaymentRepository)
	order := newOrder(t)

	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	payments.On("Save", mock.Anything, mock.MatchedBy(func(p *trade.Payment) bool {
		return p.OrderID == order.ID && p.Method == "transferencia"
	})).Return(nil)

	svc := newTestOrderService(orders, payments)
	resp, err := svc.RecordPayment(context.Background(), order.ID, RecordPaymentInput{
		Amount: decimal.NewFromInt(900),
		Method: "transferencia",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(900)))
	payments.AssertExpectations(t)
}

func TestRecordPaymentUnknownOrder(t *testing.T) {
	orders := new(MockOrderRepository)
	id := uuid.New()
	orders.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	payments := new(MockPaymentRepository)
	svc := newTestOrderService(orders, payments)
	_, err := svc.RecordPayment(context.Background(), id, RecordPaymentInput{
		Amount: decimal.NewFromInt(100),
		Method: "efectivo",
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	payments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	orders := new(MockOrderRepository)
	order := newOrder(t)
	orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	svc := newTestOrderService(orders, new(MockPaymentRepository))
	_, err := svc.RecordPayment(context.Background(), order.ID, RecordPaymentInput{
		Amount: decimal.Zero,
		Method: "efectivo",
	})

	assert.Error(t, err)
}

func TestListRecent(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("ListRecent", mock.Anything, 5).Return([]trade.Order{*newOrder(t), *newOrder(t)}, nil)

	svc := newTestOrderService(orders, new(MockPaymentRepository))
	resp, err := svc.ListRecent(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.True(t, resp[0].Total.Equal(decimal.NewFromInt(900)))
}

func TestListByCustomerPassesFilter(t *testing.T) {
	orders := new(MockOrderRepository)
	customerID := uuid.New()
	orders.On("FindAll", mock.Anything, mock.MatchedBy(func(f trade.OrderFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == customerID
	})).Return(shared.NewPaginated([]trade.Order{*newOrder(t)}, 1, 1, 20), nil)

	svc := newTestOrderService(orders, new(MockPaymentRepository))
	resp, total, err := svc.ListByCustomer(context.Background(), customerID, 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, resp, 1)
}
