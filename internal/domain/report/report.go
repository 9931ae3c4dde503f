// Package report defines read models for the admin dashboard.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesSummary aggregates non-cancelled orders over a period.
type SalesSummary struct {
	TotalSales  decimal.Decimal `json:"total_sales"`
	OrderCount  int64           `json:"order_count"`
	ItemsSold   int64           `json:"items_sold"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
}

// StatusCount is an order count bucketed by status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopProduct is a best seller by units sold.
type TopProduct struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// LowStockProduct flags inventory that needs restocking.
type LowStockProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
}

// KPISummary is the headline figures of the admin dashboard. Cancelled
// orders are excluded from order and revenue totals.
type KPISummary struct {
	Customers      int64           `json:"customers"`
	ActiveProducts int64           `json:"active_products"`
	Orders         int64           `json:"orders"`
	Revenue        decimal.Decimal `json:"revenue"`
	AvgTicket      decimal.Decimal `json:"avg_ticket"`
	PendingOrders  int64           `json:"pending_orders"`
}

// CategorySales aggregates revenue per category.
type CategorySales struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	UnitsSold  int64           `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// MonthlyRevenue is one month of sales.
type MonthlyRevenue struct {
	Month   time.Time       `json:"month"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CustomerValue is a customer's lifetime order figures.
type CustomerValue struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Orders     int64           `json:"orders"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// PendingShipment is an order waiting to be sent out.
type PendingShipment struct {
	OrderID    uuid.UUID       `json:"order_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Repository answers dashboard queries straight from storage.
type Repository interface {
	KPIs(ctx context.Context) (*KPISummary, error)
	SalesSummary(ctx context.Context, from, to time.Time) (*SalesSummary, error)
	OrdersByStatus(ctx context.Context) ([]StatusCount, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
	MonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
	LowStock(ctx context.Context, threshold int) ([]LowStockProduct, error)
	CustomerOrders(ctx context.Context, page, pageSize int) ([]CustomerValue, int64, error)
	PendingShipments(ctx context.Context) ([]PendingShipment, error)
}
