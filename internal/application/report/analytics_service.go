package report

import (
	"context"
	"time"

	"github.com/sunset/storefront/internal/domain/report"
	"go.uber.org/zap"
)

const (
	// LowStockThreshold flags products needing restock on the dashboard.
	LowStockThreshold = 5
	defaultTopLimit   = 10
	trailingMonths    = 12
)

// CustomerOrdersResult is a paginated lifetime-value listing
type CustomerOrdersResult struct {
	Customers []report.CustomerValue `json:"customers"`
	Total     int64                  `json:"total"`
	Page      int                    `json:"page"`
	PageSize  int                    `json:"page_size"`
}

// AnalyticsService answers admin reporting queries
type AnalyticsService struct {
	reports report.Repository
	logger  *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(reports report.Repository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{reports: reports, logger: logger}
}

// KPIs returns the dashboard headline figures
func (s *AnalyticsService) KPIs(ctx context.Context) (*report.KPISummary, error) {
	return s.reports.KPIs(ctx)
}

// SalesSummary aggregates sales over the period
func (s *AnalyticsService) SalesSummary(ctx context.Context, from, to time.Time) (*report.SalesSummary, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}
	return s.reports.SalesSummary(ctx, from, to)
}

// SalesByCategory aggregates revenue per category
func (s *AnalyticsService) SalesByCategory(ctx context.Context) ([]report.CategorySales, error) {
	return s.reports.SalesByCategory(ctx)
}

// TopProducts returns best sellers
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	if limit < 1 {
		limit = defaultTopLimit
	}
	return s.reports.TopProducts(ctx, limit)
}

// MonthlyRevenue returns the trailing twelve months of sales
func (s *AnalyticsService) MonthlyRevenue(ctx context.Context) ([]report.MonthlyRevenue, error) {
	return s.reports.MonthlyRevenue(ctx, trailingMonths)
}

// LowStock lists active products running out
func (s *AnalyticsService) LowStock(ctx context.Context) ([]report.LowStockProduct, error) {
	return s.reports.LowStock(ctx, LowStockThreshold)
}

// OrdersByStatus buckets orders per fulfillment state
func (s *AnalyticsService) OrdersByStatus(ctx context.Context) ([]report.StatusCount, error) {
	return s.reports.OrdersByStatus(ctx)
}

// CustomerOrders returns customers ranked by lifetime spend
func (s *AnalyticsService) CustomerOrders(ctx context.Context, page, pageSize int) (*CustomerOrdersResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	customers, total, err := s.reports.CustomerOrders(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &CustomerOrdersResult{
		Customers: customers,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// PendingShipments lists orders waiting to go out
func (s *AnalyticsService) PendingShipments(ctx context.Context) ([]report.PendingShipment, error) {
	return s.reports.PendingShipments(ctx)
}
