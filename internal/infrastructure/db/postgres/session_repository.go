package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// SessionRepository persists user and intern bearer tokens. The two
// kinds live in separate tables so the namespaces can never collide.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func sessionTable(kind domain.PrincipalKind) (table, column string, err error) {
	switch kind {
	case domain.KindUser:
		return "sessions", "user_id", nil
	case domain.KindIntern:
		return "intern_sessions", "intern_id", nil
	default:
		return "", "", fmt.Errorf("session repository: unsupported principal kind %q", kind)
	}
}

func (r *SessionRepository) Insert(ctx context.Context, kind domain.PrincipalKind, principalID int64, token string) error {
	table, column, err := sessionTable(kind)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (%s, token) VALUES ($1, $2)`, table, column),
		principalID, token)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindPrincipal(ctx context.Context, kind domain.PrincipalKind, token string) (int64, error) {
	table, column, err := sessionTable(kind)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE token = $1`, column, table),
		token).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrUnauthenticated
		}
		return 0, fmt.Errorf("find session: %w", err)
	}
	return id, nil
}

func (r *SessionRepository) Delete(ctx context.Context, kind domain.PrincipalKind, token string) error {
	table, _, err := sessionTable(kind)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE token = $1`, table), token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
