package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/report"
	"github.com/sunset/storefront/internal/domain/trade"
	"gorm.io/gorm"
)

// GormReportRepository answers dashboard queries using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// KPIs returns the dashboard headline figures
func (r *GormReportRepository) KPIs(ctx context.Context) (*report.KPISummary, error) {
	kpis := &report.KPISummary{}

	if err := r.db.WithContext(ctx).Table("customers").Count(&kpis.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Table("products").Where("active = ?", true).Count(&kpis.ActiveProducts).Error; err != nil {
		return nil, err
	}

	var row struct {
		Orders  int64
		Revenue decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("status <> ?", trade.StatusCancelled).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	kpis.Orders = row.Orders
	kpis.Revenue = row.Revenue
	if row.Orders > 0 {
		kpis.AvgTicket = row.Revenue.Div(decimal.NewFromInt(row.Orders)).Round(2)
	}

	err = r.db.WithContext(ctx).
		Table("orders").
		Where("status = ?", trade.StatusPending).
		Count(&kpis.PendingOrders).Error
	if err != nil {
		return nil, err
	}
	return kpis, nil
}

// SalesSummary aggregates non-cancelled orders in the period
func (r *GormReportRepository) SalesSummary(ctx context.Context, from, to time.Time) (*report.SalesSummary, error) {
	var row struct {
		TotalSales decimal.Decimal
		OrderCount int64
	}
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("COALESCE(SUM(total), 0) AS total_sales, COUNT(*) AS order_count").
		Where("status <> ? AND created_at >= ? AND created_at < ?", trade.StatusCancelled, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	var itemsSold *int64
	err = r.db.WithContext(ctx).
		Table("order_items").
		Select("SUM(order_items.quantity)").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status <> ? AND orders.created_at >= ? AND orders.created_at < ?", trade.StatusCancelled, from, to).
		Scan(&itemsSold).Error
	if err != nil {
		return nil, err
	}

	summary := &report.SalesSummary{
		TotalSales:  row.TotalSales,
		OrderCount:  row.OrderCount,
		PeriodStart: from,
		PeriodEnd:   to,
	}
	if itemsSold != nil {
		summary.ItemsSold = *itemsSold
	}
	return summary, nil
}

// OrdersByStatus buckets all orders by status
func (r *GormReportRepository) OrdersByStatus(ctx context.Context) ([]report.StatusCount, error) {
	var counts []report.StatusCount
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// SalesByCategory aggregates revenue per category across non-cancelled orders
func (r *GormReportRepository) SalesByCategory(ctx context.Context) ([]report.CategorySales, error) {
	var sales []report.CategorySales
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`categories.id AS category_id,
			categories.name,
			SUM(order_items.quantity) AS units_sold,
			SUM(order_items.price * order_items.quantity) AS revenue`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("orders.status <> ?", trade.StatusCancelled).
		Group("categories.id, categories.name").
		Order("revenue DESC").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// MonthlyRevenue returns per-month sales for the trailing months
func (r *GormReportRepository) MonthlyRevenue(ctx context.Context, months int) ([]report.MonthlyRevenue, error) {
	if months < 1 {
		months = 12
	}
	var revenue []report.MonthlyRevenue
	err := r.db.WithContext(ctx).Raw(`
		SELECT date_trunc('month', created_at) AS month,
		       COUNT(*) AS orders,
		       COALESCE(SUM(total), 0) AS revenue
		FROM orders
		WHERE status <> ?
		  AND created_at >= date_trunc('month', NOW()) - (? * INTERVAL '1 month')
		GROUP BY 1
		ORDER BY 1`, trade.StatusCancelled, months-1).
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	return revenue, nil
}

// TopProducts returns best sellers by units sold across non-cancelled orders
func (r *GormReportRepository) TopProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	if limit < 1 {
		limit = 5
	}
	var top []report.TopProduct
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`order_items.product_id,
			MAX(order_items.name) AS name,
			SUM(order_items.quantity) AS units_sold,
			SUM(order_items.price * order_items.quantity) AS revenue`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status <> ?", trade.StatusCancelled).
		Group("order_items.product_id").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	return top, nil
}

// LowStock lists active products at or below the threshold
func (r *GormReportRepository) LowStock(ctx context.Context, threshold int) ([]report.LowStockProduct, error) {
	var low []report.LowStockProduct
	err := r.db.WithContext(ctx).
		Table("products").
		Select("id AS product_id, name, stock").
		Where("active = ? AND stock <= ?", true, threshold).
		Order("stock ASC").
		Scan(&low).Error
	if err != nil {
		return nil, err
	}
	return low, nil
}

// CustomerOrders returns customers ranked by lifetime spend, paginated
func (r *GormReportRepository) CustomerOrders(ctx context.Context, page, pageSize int) ([]report.CustomerValue, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Table("customers").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var values []report.CustomerValue
	err := r.db.WithContext(ctx).
		Table("customers").
		Select(`customers.id AS customer_id,
			customers.name,
			customers.email,
			COUNT(orders.id) AS orders,
			COALESCE(SUM(orders.total), 0) AS total_spent`).
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id AND orders.status <> ?", trade.StatusCancelled).
		Group("customers.id, customers.name, customers.email").
		Order("total_spent DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&values).Error
	if err != nil {
		return nil, 0, err
	}
	return values, total, nil
}

// PendingShipments lists orders waiting to leave the workshop
func (r *GormReportRepository) PendingShipments(ctx context.Context) ([]report.PendingShipment, error) {
	var shipments []report.PendingShipment
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("id AS order_id, customer_id, status, total, created_at").
		Where("status IN ?", []trade.OrderStatus{trade.StatusPending, trade.StatusProcessing}).
		Order("created_at ASC").
		Scan(&shipments).Error
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

// Ensure GormReportRepository implements report.Repository
var _ report.Repository = (*GormReportRepository)(nil)
