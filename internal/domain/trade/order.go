package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/shared"
)

// OrderStatus is the fulfillment state of an order. Values are the
// Spanish labels shown in the admin panel.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pendiente"
	StatusProcessing OrderStatus = "Procesando"
	StatusShipped    OrderStatus = "Enviado"
	StatusDelivered  OrderStatus = "Entregado"
	StatusCancelled  OrderStatus = "Cancelado"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions lists the allowed status moves. Cancelled and delivered
// orders are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// OrderItem is a priced line captured at checkout time. Price is the
// unit price snapshot, independent of later catalog changes.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Size      string
	Color     string
}

// Subtotal returns price times quantity for the item.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a customer purchase.
type Order struct {
	shared.BaseEntity
	CustomerID      uuid.UUID
	Items           []OrderItem
	Total           decimal.Decimal
	Status          OrderStatus
	ShippingAddress string
	Notes           string
}

// NewOrder creates a pending order from priced items.
func NewOrder(customerID uuid.UUID, items []OrderItem, shippingAddress string) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "An order needs at least one item")
	}
	total := decimal.Zero
	for i := range items {
		if items[i].Quantity < 1 {
			return nil, shared.ErrInvalidInput
		}
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		total = total.Add(items[i].Subtotal())
	}
	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		CustomerID:      customerID,
		Items:           items,
		Total:           total,
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
	}, nil
}

// Transition moves the order to a new status, enforcing the allowed
// status graph.
func (o *Order) Transition(next OrderStatus) error {
	if !ValidStatus(next) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			o.Status = next
			o.Touch()
			return nil
		}
	}
	return shared.NewDomainError("INVALID_TRANSITION", "Order cannot move from "+string(o.Status)+" to "+string(next))
}
