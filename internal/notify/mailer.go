package notify

import (
	"context"

	"go.uber.org/zap"
)

// Mailer is the narrow seam to the email delivery collaborator. Actual
// delivery lives outside this service.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer records outgoing mail on the structured log. Used wherever no
// delivery backend is wired.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("outgoing email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

var _ Mailer = (*LogMailer)(nil)
