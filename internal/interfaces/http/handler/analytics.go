package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	appreport "github.com/sunset/storefront/internal/application/report"
	apptrade "github.com/sunset/storefront/internal/application/trade"
	"github.com/sunset/storefront/internal/domain/report"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// AnalyticsHandler serves the back-office dashboard and reports
type AnalyticsHandler struct {
	BaseHandler
	analytics *appreport.AnalyticsService
	orders    *apptrade.OrderService
	auth      *middleware.Authenticator
}

// NewAnalyticsHandler creates an analytics handler
func NewAnalyticsHandler(analytics *appreport.AnalyticsService, orders *apptrade.OrderService, auth *middleware.Authenticator, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler: NewBaseHandler(logger),
		analytics:   analytics,
		orders:      orders,
		auth:        auth,
	}
}

// RegisterRoutes mounts the analytics endpoints on the given group
func (h *AnalyticsHandler) RegisterRoutes(group *gin.RouterGroup) {
	g := group.Group("/admin/analytics", h.auth.RequireAuth(), h.auth.RequireAdmin())
	g.GET("/dashboard", h.Dashboard)
	g.GET("/sales", h.SalesSummary)
	g.GET("/sales-by-category", h.SalesByCategory)
	g.GET("/monthly-revenue", h.MonthlyRevenue)
	g.GET("/top-products", h.TopProducts)
	g.GET("/low-stock", h.LowStock)
	g.GET("/orders-by-status", h.OrdersByStatus)
	g.GET("/customers", h.CustomerOrders)
	g.GET("/pending-shipments", h.PendingShipments)
}

// dashboardResponse aggregates everything the landing page shows
type dashboardResponse struct {
	KPIs         *report.KPISummary       `json:"kpis"`
	RecentOrders []apptrade.OrderResponse `json:"recent_orders"`
	LowStock     []report.LowStockProduct `json:"low_stock"`
	ByStatus     []report.StatusCount     `json:"orders_by_status"`
}

// Dashboard returns the combined back-office landing page payload
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	kpis, err := h.analytics.KPIs(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	recent, err := h.orders.ListRecent(ctx, 5)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	lowStock, err := h.analytics.LowStock(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	byStatus, err := h.analytics.OrdersByStatus(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dashboardResponse{
		KPIs:         kpis,
		RecentOrders: recent,
		LowStock:     lowStock,
		ByStatus:     byStatus,
	})
}

// SalesSummary returns totals for a date range, defaulting to the last
// month when no range is given.
func (h *AnalyticsHandler) SalesSummary(c *gin.Context) {
	var q struct {
		From string `form:"from"`
		To   string `form:"to"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}

	from, ok := parseDate(q.From)
	if !ok {
		h.BadRequest(c, "Fecha inicial inválida")
		return
	}
	to, ok := parseDate(q.To)
	if !ok {
		h.BadRequest(c, "Fecha final inválida")
		return
	}

	summary, err := h.analytics.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, summary)
}

// SalesByCategory returns revenue grouped by product category
func (h *AnalyticsHandler) SalesByCategory(c *gin.Context) {
	result, err := h.analytics.SalesByCategory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}

// MonthlyRevenue returns revenue per month over the trailing year
func (h *AnalyticsHandler) MonthlyRevenue(c *gin.Context) {
	result, err := h.analytics.MonthlyRevenue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}

// TopProducts returns the best sellers by units sold
func (h *AnalyticsHandler) TopProducts(c *gin.Context) {
	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}

	result, err := h.analytics.TopProducts(c.Request.Context(), q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}

// LowStock returns active products at or below the restock threshold
func (h *AnalyticsHandler) LowStock(c *gin.Context) {
	result, err := h.analytics.LowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}

// OrdersByStatus returns order counts per lifecycle status
func (h *AnalyticsHandler) OrdersByStatus(c *gin.Context) {
	result, err := h.analytics.OrdersByStatus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}

// CustomerOrders returns customers ranked by total spend
func (h *AnalyticsHandler) CustomerOrders(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}
	q.Normalize()

	result, err := h.analytics.CustomerOrders(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(result.Customers, dto.Meta{
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
	}))
}

// PendingShipments returns orders still waiting to ship, oldest first
func (h *AnalyticsHandler) PendingShipments(c *gin.Context) {
	result, err := h.analytics.PendingShipments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}

// parseDate parses a YYYY-MM-DD query value. Empty means "not given"
// and returns the zero time.
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
