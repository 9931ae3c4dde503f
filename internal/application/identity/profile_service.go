package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/identity"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/domain/trade"
	"go.uber.org/zap"
)

// UpdateProfileInput contains input for profile updates
type UpdateProfileInput struct {
	Name string `json:"name" binding:"required"`
}

// ChangePasswordInput contains input for password changes
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ProfileOrderSummary is a recent order shown on the profile page
type ProfileOrderSummary struct {
	ID        uuid.UUID       `json:"id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProfileResult is the account page payload: identity plus purchase
// history figures and the most recent orders.
type ProfileResult struct {
	Customer     CustomerInfo          `json:"customer"`
	OrderCount   int                   `json:"order_count"`
	TotalSpent   decimal.Decimal       `json:"total_spent"`
	RecentOrders []ProfileOrderSummary `json:"recent_orders"`
}

// ProfileService handles account page operations
type ProfileService struct {
	customers identity.CustomerRepository
	orders    trade.OrderRepository
	logger    *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(customers identity.CustomerRepository, orders trade.OrderRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		customers: customers,
		orders:    orders,
		logger:    logger,
	}
}

// Profile returns the customer with order stats and the five most
// recent orders.
func (s *ProfileService) Profile(ctx context.Context, customerID uuid.UUID) (*ProfileResult, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	stats, err := s.orders.CustomerStats(ctx, customerID)
	if err != nil {
		return nil, err
	}

	filter := trade.OrderFilter{CustomerID: &customerID}
	filter.Page = 1
	filter.PageSize = 5
	recent, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProfileOrderSummary, len(recent.Items))
	for i, order := range recent.Items {
		summaries[i] = ProfileOrderSummary{
			ID:        order.ID,
			Status:    string(order.Status),
			Total:     order.Total,
			ItemCount: len(order.Items),
			CreatedAt: order.CreatedAt,
		}
	}

	return &ProfileResult{
		Customer:     toCustomerInfo(customer),
		OrderCount:   stats.OrderCount,
		TotalSpent:   stats.TotalSpent,
		RecentOrders: summaries,
	}, nil
}

// UpdateProfile changes the customer's display name
func (s *ProfileService) UpdateProfile(ctx context.Context, customerID uuid.UUID, input UpdateProfileInput) (*CustomerInfo, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, shared.ErrInvalidInput
	}
	customer.Name = name
	customer.Touch()

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	info := toCustomerInfo(customer)
	return &info, nil
}

// ChangePassword verifies the current password and sets a new one.
// OAuth-only accounts have no password and are rejected.
func (s *ProfileService) ChangePassword(ctx context.Context, customerID uuid.UUID, input ChangePasswordInput) error {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	if customer.PasswordHash == "" {
		return shared.NewDomainError("OAUTH_ACCOUNT", "La cuenta usa inicio de sesión social")
	}
	if !customer.CheckPassword(input.CurrentPassword) {
		return shared.ErrInvalidCredentials
	}
	if err := customer.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return err
	}

	s.logger.Info("password changed", zap.String("customer_id", customerID.String()))
	return nil
}
