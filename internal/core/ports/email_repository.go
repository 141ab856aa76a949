package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// EmailRepository persists the notification audit log.
type EmailRepository interface {
	Insert(ctx context.Context, rec *domain.EmailRecord) (*domain.EmailRecord, error)
	// List returns email records newest first, with the originating user's
	// name joined in where present.
	List(ctx context.Context) ([]domain.EmailRecord, error)
}

// MailTransport sends a single message through the external email API.
type MailTransport interface {
	Send(ctx context.Context, to, subject, body string) error
}
