package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/identity"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// ResetTokenIssuer is notified when a reset token is issued so the
// token can reach the customer, typically by email.
type ResetTokenIssuer interface {
	SendResetToken(ctx context.Context, email, token string) error
}

// AuthService handles customer authentication
type AuthService struct {
	customers   identity.CustomerRepository
	resetTokens identity.ResetTokenRepository
	tx          shared.TxManager
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	mailer      ResetTokenIssuer
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	customers identity.CustomerRepository,
	resetTokens identity.ResetTokenRepository,
	tx shared.TxManager,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	mailer ResetTokenIssuer,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		customers:   customers,
		resetTokens: resetTokens,
		tx:          tx,
		jwtService:  jwtService,
		blacklist:   blacklist,
		mailer:      mailer,
		logger:      logger,
	}
}

// Register creates a new customer account and logs it in
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := identity.NormalizeEmail(input.Email)

	existing, err := s.customers.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrEmailTaken
	}

	customer, err := identity.NewCustomer(input.Email, input.Password, input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email))

	return s.issueToken(customer)
}

// Login authenticates a customer by email and password
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	customer, err := s.customers.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !customer.CheckPassword(input.Password) {
		s.logger.Warn("invalid password attempt", zap.String("email", customer.Email))
		return nil, shared.ErrInvalidCredentials
	}

	s.logger.Info("customer logged in", zap.String("customer_id", customer.ID.String()))
	return s.issueToken(customer)
}

// HandleOAuthLogin finds or creates the account matching an OAuth
// profile. An existing account with the same email gets the provider
// linked instead of a duplicate account.
func (s *AuthService) HandleOAuthLogin(ctx context.Context, input OAuthLoginInput) (*AuthResult, error) {
	customer, err := s.customers.FindByProvider(ctx, input.Provider, input.ProviderID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if customer == nil {
		customer, err = s.customers.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
		switch {
		case err == nil:
			if err := customer.LinkProvider(input.Provider, input.ProviderID); err != nil {
				return nil, err
			}
		case errors.Is(err, shared.ErrNotFound):
			customer, err = identity.NewOAuthCustomer(input.Email, input.Name, input.Provider, input.ProviderID)
			if err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
		if err := s.customers.Save(ctx, customer); err != nil {
			return nil, err
		}
	}

	s.logger.Info("oauth login",
		zap.String("provider", input.Provider),
		zap.String("customer_id", customer.ID.String()))
	return s.issueToken(customer)
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	ttl := time.Until(input.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, input.TokenID, ttl); err != nil {
		s.logger.Error("failed to revoke token", zap.Error(err))
		return err
	}
	return nil
}

// GetProfile returns the account details for an authenticated customer
func (s *AuthService) GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerInfo, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	info := toCustomerInfo(customer)
	return &info, nil
}

// RequestPasswordReset issues a reset token for the given email. An
// unknown email is not an error so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) error {
	customer, err := s.customers.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.resetTokens.DeleteForCustomer(ctx, customer.ID); err != nil {
		return err
	}

	token, err := identity.NewPasswordResetToken(customer.ID)
	if err != nil {
		return err
	}
	if err := s.resetTokens.Save(ctx, token); err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendResetToken(ctx, customer.Email, token.Token); err != nil {
			s.logger.Error("failed to send reset token", zap.Error(err))
			return err
		}
	}

	s.logger.Info("password reset requested", zap.String("customer_id", customer.ID.String()))
	return nil
}

// ResetPassword redeems a reset token and sets the new password. The
// password update and the token consumption commit together; a failure
// on either leaves the token redeemable and the password unchanged.
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	token, err := s.resetTokens.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrInvalidResetToken
		}
		return err
	}

	if err := token.Consume(); err != nil {
		return err
	}

	customer, err := s.customers.FindByID(ctx, token.CustomerID)
	if err != nil {
		return err
	}
	if err := customer.SetPassword(input.Password); err != nil {
		return err
	}

	err = s.tx.Transaction(ctx, func(tx any) error {
		if err := s.customers.WithTx(tx).Save(ctx, customer); err != nil {
			return err
		}
		return s.resetTokens.WithTx(tx).Save(ctx, token)
	})
	if err != nil {
		return err
	}

	s.logger.Info("password reset completed", zap.String("customer_id", customer.ID.String()))
	return nil
}

func (s *AuthService) issueToken(customer *identity.Customer) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:  customer.ID,
		Email:   customer.Email,
		Name:    customer.Name,
		IsAdmin: customer.IsAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: token.Value,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		Customer:    toCustomerInfo(customer),
	}, nil
}
