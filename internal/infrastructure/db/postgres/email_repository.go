package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// EmailRepository implements ports.EmailRepository backed by PostgreSQL.
type EmailRepository struct {
	db *sql.DB
}

func NewEmailRepository(db *sql.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

func (r *EmailRepository) Insert(ctx context.Context, rec *domain.EmailRecord) (*domain.EmailRecord, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO emails (to_email, subject, body, sent_at, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, rec.ToEmail, rec.Subject, rec.Body, rec.SentAt, rec.UserID).Scan(&rec.ID)
	if err != nil {
		return nil, fmt.Errorf("insert email: %w", err)
	}
	return rec, nil
}

func (r *EmailRepository) List(ctx context.Context) ([]domain.EmailRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.to_email, e.subject, e.body, e.sent_at, e.user_id, u.name
		FROM emails e
		LEFT JOIN users u ON e.user_id = u.id
		ORDER BY e.sent_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()

	var records []domain.EmailRecord
	for rows.Next() {
		var (
			rec      domain.EmailRecord
			userID   sql.NullInt64
			userName sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.ToEmail, &rec.Subject, &rec.Body, &rec.SentAt, &userID, &userName); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		if userID.Valid {
			id := userID.Int64
			rec.UserID = &id
		}
		rec.UserName = userName.String
		records = append(records, rec)
	}
	return records, rows.Err()
}
