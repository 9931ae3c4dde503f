package mail

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LogMailer writes reset tokens to the log instead of sending email.
// Used in development and as the fallback when no SMTP relay is
// configured; the storefront hands delivery to an external service in
// production.
type LogMailer struct {
	baseURL string
	logger  *zap.Logger
}

// NewLogMailer creates a log-backed mailer. baseURL is the public
// storefront URL used to build reset links.
func NewLogMailer(baseURL string, logger *zap.Logger) *LogMailer {
	return &LogMailer{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// SendResetToken logs the password reset link for the given email
func (m *LogMailer) SendResetToken(_ context.Context, email, token string) error {
	m.logger.Info("password reset link issued",
		zap.String("email", email),
		zap.String("link", fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)),
	)
	return nil
}
