package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	apptrade "github.com/sunset/storefront/internal/application/trade"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// OrderHandler serves customer order history and back-office order
// management.
type OrderHandler struct {
	BaseHandler
	service *apptrade.OrderService
	auth    *middleware.Authenticator
}

// NewOrderHandler creates an order handler
func NewOrderHandler(service *apptrade.OrderService, auth *middleware.Authenticator, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		auth:        auth,
	}
}

// RegisterRoutes mounts the order endpoints on the given group
func (h *OrderHandler) RegisterRoutes(group *gin.RouterGroup) {
	mine := group.Group("/orders", h.auth.RequireAuth())
	mine.GET("", h.ListMine)
	mine.GET("/:id", h.GetMine)

	admin := group.Group("/admin/orders", h.auth.RequireAuth(), h.auth.RequireAdmin())
	admin.GET("/recent", h.ListRecent)
	admin.GET("/:id", h.Get)
	admin.PUT("/:id/status", h.UpdateStatus)
	admin.GET("/:id/payments", h.ListPayments)
	admin.POST("/:id/payments", h.RecordPayment)
}

// ListMine returns the authenticated customer's orders, newest first
func (h *OrderHandler) ListMine(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}
	q.Normalize()

	orders, total, err := h.service.ListByCustomer(c.Request.Context(), customerID, q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(orders, dto.Meta{
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
	}))
}

// GetMine returns one of the customer's own orders. Someone else's
// order ID answers 404, not 403, so order IDs cannot be enumerated.
func (h *OrderHandler) GetMine(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	order, ok := h.findOrder(c)
	if !ok {
		return
	}
	if order.CustomerID != customerID {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	h.OK(c, order)
}

// ListRecent returns the latest orders for the back-office dashboard
func (h *OrderHandler) ListRecent(c *gin.Context) {
	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}

	orders, err := h.service.ListRecent(c.Request.Context(), q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, orders)
}

// Get returns any order by ID
func (h *OrderHandler) Get(c *gin.Context) {
	order, ok := h.findOrder(c)
	if !ok {
		return
	}
	h.OK(c, order)
}

// UpdateStatus moves an order along its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	var input apptrade.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, order)
}

// ListPayments returns the payments recorded against an order
func (h *OrderHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, payments)
}

// RecordPayment registers a manual payment against an order
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	var input apptrade.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	payment, err := h.service.RecordPayment(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

func (h *OrderHandler) findOrder(c *gin.Context) (*apptrade.OrderResponse, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return nil, false
	}

	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return nil, false
	}
	return order, true
}
