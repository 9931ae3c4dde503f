package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// BaseHandler provides shared error handling for all handlers
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a base handler with the given logger
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseHandler{logger: logger}
}

// HandleError maps a domain error onto the envelope response shape.
// Unknown errors become an opaque 500 so internals never leak.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	code, message, status := classifyError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("unhandled error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
	}
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// OK writes a 200 envelope response
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created writes a 201 envelope response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest writes a 400 invalid-input envelope response. Used for
// binding failures before any service is called.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = shared.ErrInvalidInput.Message
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeInvalidInput, message))
}

func classifyError(err error) (code, message string, status int) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code, domainErr.Message, dto.GetHTTPStatus(domainErr.Code)
	}
	return dto.ErrCodeInternal, "Error interno del servidor", http.StatusInternalServerError
}
