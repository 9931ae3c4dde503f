package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderService handles back-office order operations
type OrderService struct {
	orders   trade.OrderRepository
	payments trade.PaymentRepository
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orders trade.OrderRepository, payments trade.PaymentRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		payments: payments,
		logger:   logger,
	}
}

// Get returns an order with its items
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// ListRecent returns the latest orders for the admin panel
func (s *OrderService) ListRecent(ctx context.Context, limit int) ([]OrderResponse, error) {
	orders, err := s.orders.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = toOrderResponse(&orders[i])
	}
	return responses, nil
}

// ListByCustomer returns a customer's orders, newest first
func (s *OrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID, page, pageSize int) ([]OrderResponse, int64, error) {
	filter := trade.OrderFilter{CustomerID: &customerID}
	filter.Page = page
	filter.PageSize = pageSize

	result, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]OrderResponse, len(result.Items))
	for i := range result.Items {
		responses[i] = toOrderResponse(&result.Items[i])
	}
	return responses, result.Total, nil
}

// UpdateStatus moves an order through the fulfillment states
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.Transition(trade.OrderStatus(input.Status)); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", input.Status))

	resp := toOrderResponse(order)
	return &resp, nil
}

// RecordPayment stores a manually recorded payment against an order
func (s *OrderService) RecordPayment(ctx context.Context, orderID uuid.UUID, input RecordPaymentInput) (*PaymentResponse, error) {
	// Verify the order exists before attaching money to it.
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	payment, err := trade.NewPayment(orderID, input.Amount, input.Method, input.Note)
	if err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("order_id", orderID.String()),
		zap.String("method", payment.Method))

	resp := toPaymentResponse(payment)
	return &resp, nil
}

// ListPayments returns the payments recorded against an order
func (s *OrderService) ListPayments(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.payments.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = toPaymentResponse(&payments[i])
	}
	return responses, nil
}
