package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/shared"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	shared.Filter
	CustomerID *uuid.UUID
	Status     *OrderStatus
}

// CustomerStats summarizes a customer's purchase history. Cancelled
// orders are excluded from both figures.
type CustomerStats struct {
	OrderCount int
	TotalSpent decimal.Decimal
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) (shared.Paginated[Order], error)
	// ListRecent returns the latest orders across all customers.
	ListRecent(ctx context.Context, limit int) ([]Order, error)
	// CustomerStats aggregates order count and total spent for a customer.
	CustomerStats(ctx context.Context, customerID uuid.UUID) (*CustomerStats, error)
	Save(ctx context.Context, order *Order) error
	WithTx(tx any) OrderRepository
}

// PaymentRepository persists manually recorded payments.
type PaymentRepository interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
