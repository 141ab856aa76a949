package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for a duplicate key.
const uniqueViolation = "23505"

// UserRepository implements ports.UserRepository backed by PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, phone, address, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, user.Name, user.Email, user.Phone, user.Address, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, address, password_hash, created_at, last_login
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, address, password_hash, created_at, last_login
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, address, password_hash, created_at, last_login
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepository) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO projects (user_id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, project.UserID, project.Name, project.Description, project.Status,
		project.CreatedAt, project.UpdatedAt).Scan(&project.ID)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return project, nil
}

func (r *UserRepository) ListProjects(ctx context.Context, userID int64) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *UserRepository) Stats(ctx context.Context) (int, int, int, error) {
	var totalUsers, totalEmails, todayUsers int

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&totalUsers); err != nil {
		return 0, 0, 0, fmt.Errorf("count users: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM emails`).Scan(&totalEmails); err != nil {
		return 0, 0, 0, fmt.Errorf("count emails: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE DATE(created_at) = CURRENT_DATE
	`).Scan(&todayUsers); err != nil {
		return 0, 0, 0, fmt.Errorf("count today users: %w", err)
	}

	return totalUsers, totalEmails, todayUsers, nil
}

// ClearData wipes sessions, emails, projects, and users inside one
// transaction. Applications and interns are intentionally left alone.
func (r *UserRepository) ClearData(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear data: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM sessions`,
		`DELETE FROM emails`,
		`DELETE FROM projects`,
		`DELETE FROM users`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u         domain.User
		lastLogin sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.PasswordHash, &u.CreatedAt, &lastLogin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}
