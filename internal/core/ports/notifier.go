package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// Notifier records and best-effort dispatches transactional email. The
// audit row is written first; dispatch failure never propagates.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string, userID *int64) error
}

// EmailAudit exposes the recorded email trail to the admin console.
type EmailAudit interface {
	ListEmails(ctx context.Context) ([]domain.EmailRecord, error)
}
