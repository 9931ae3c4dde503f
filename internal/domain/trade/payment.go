package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/shared"
)

// Payment is a manually recorded payment against an order. There is no
// gateway integration; staff record transfers and cash on delivery.
type Payment struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Amount     decimal.Decimal
	Method     string
	Note       string
	RecordedAt time.Time
}

// NewPayment records a payment for an order.
func NewPayment(orderID uuid.UUID, amount decimal.Decimal, method, note string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Payment amount must be positive")
	}
	if strings.TrimSpace(method) == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Payment method is required")
	}
	return &Payment{
		ID:         uuid.New(),
		OrderID:    orderID,
		Amount:     amount,
		Method:     strings.TrimSpace(method),
		Note:       note,
		RecordedAt: time.Now(),
	}, nil
}
