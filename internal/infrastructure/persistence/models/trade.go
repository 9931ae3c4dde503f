package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/trade"
)

// OrderModel maps orders to the orders table
type OrderModel struct {
	BaseModel
	CustomerID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Total           decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Status          string           `gorm:"type:varchar(32);not null;index"`
	ShippingAddress string           `gorm:"type:text"`
	Notes           string           `gorm:"type:text"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel maps order items to the order_items table
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Size      string          `gorm:"type:varchar(32);not null;default:''"`
	Color     string          `gorm:"type:varchar(32);not null;default:''"`
}

// TableName specifies the table name
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel maps payments to the payments table
type PaymentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method     string          `gorm:"type:varchar(64);not null"`
	Note       string          `gorm:"type:text"`
	RecordedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the model to a domain payment
func (m *PaymentModel) ToDomain() *trade.Payment {
	return &trade.Payment{
		ID:         m.ID,
		OrderID:    m.OrderID,
		Amount:     m.Amount,
		Method:     m.Method,
		Note:       m.Note,
		RecordedAt: m.RecordedAt,
	}
}

// FromDomain populates the model from a domain payment
func (m *PaymentModel) FromDomain(p *trade.Payment) {
	m.ID = p.ID
	m.OrderID = p.OrderID
	m.Amount = p.Amount
	m.Method = p.Method
	m.Note = p.Note
	m.RecordedAt = p.RecordedAt
}

// ToDomain converts the model to a domain order
func (m *OrderModel) ToDomain() *trade.Order {
	items := make([]trade.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = trade.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}
	return &trade.Order{
		BaseEntity:      m.BaseModel.ToDomain(),
		CustomerID:      m.CustomerID,
		Items:           items,
		Total:           m.Total,
		Status:          trade.OrderStatus(m.Status),
		ShippingAddress: m.ShippingAddress,
		Notes:           m.Notes,
	}
}

// FromDomain populates the model from a domain order
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerID = o.CustomerID
	m.Total = o.Total
	m.Status = string(o.Status)
	m.ShippingAddress = o.ShippingAddress
	m.Notes = o.Notes
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}
}
