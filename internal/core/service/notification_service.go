package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/xgenai/careers-platform/internal/api/metrics"
	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// NotificationService records every notification in the emails audit
// table and then best-effort dispatches it. The record is written first
// so the trail exists even when delivery fails; dispatch errors are
// logged and swallowed, never returned to the triggering request.
type NotificationService struct {
	repo      ports.EmailRepository
	transport ports.MailTransport
	dispatch  bool
	log       zerolog.Logger
}

// NewNotificationService builds the sink. transport may be nil (Mailgun
// not configured); dispatch gates outbound sending and is true only in
// production.
func NewNotificationService(repo ports.EmailRepository, transport ports.MailTransport, dispatch bool, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, transport: transport, dispatch: dispatch, log: log}
}

func (s *NotificationService) Notify(ctx context.Context, to, subject, body string, userID *int64) error {
	rec := &domain.EmailRecord{
		ToEmail: to,
		Subject: subject,
		Body:    body,
		SentAt:  time.Now().UTC(),
		UserID:  userID,
	}
	if _, err := s.repo.Insert(ctx, rec); err != nil {
		metrics.EmailsTotal.WithLabelValues("record_failed").Inc()
		return fmt.Errorf("record email: %w", err)
	}

	if !s.dispatch || s.transport == nil {
		metrics.EmailsTotal.WithLabelValues("logged").Inc()
		s.log.Info().Str("to", to).Str("subject", subject).Msg("email logged (dispatch disabled)")
		return nil
	}

	if err := s.transport.Send(ctx, to, subject, body); err != nil {
		metrics.EmailsTotal.WithLabelValues("dispatch_failed").Inc()
		s.log.Error().Err(err).Str("to", to).Msg("email dispatch failed")
		return nil
	}

	metrics.EmailsTotal.WithLabelValues("sent").Inc()
	s.log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

// ListEmails exposes the audit log to the admin console.
func (s *NotificationService) ListEmails(ctx context.Context) ([]domain.EmailRecord, error) {
	return s.repo.List(ctx)
}
