package mailer

import (
	"context"
	"log/slog"
)

// Mailer delivers password-reset tokens. Delivery itself lives outside this
// service; production wires a real sender behind this interface.
type Mailer interface {
	SendResetToken(ctx context.Context, email, token string) error
}

// LogMailer writes the token to the log instead of sending mail. Used in
// development and tests.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendResetToken(ctx context.Context, email, token string) error {
	l := m.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Info("password_reset_token_issued", "email", email, "token", token)
	return nil
}
