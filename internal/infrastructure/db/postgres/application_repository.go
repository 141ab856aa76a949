package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// ApplicationRepository implements ports.ApplicationRepository and
// ports.InternRepository backed by PostgreSQL.
type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO applications
			(position, full_name, email, phone, address, college, degree,
			 semester, year, about, resume_name, linkedin, github, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`, app.Position, app.FullName, app.Email, app.Phone, app.Address, app.College,
		app.Degree, app.Semester, app.Year, app.About, app.ResumeName,
		app.LinkedIn, app.GitHub, app.Status, app.AppliedAt).Scan(&app.ID)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, position, full_name, email, phone, address, college, degree,
		       semester, year, about, resume_name, linkedin, github, status, applied_at
		FROM applications
		WHERE id = $1
	`, id)

	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, position, full_name, email, phone, address, college, degree,
		       semester, year, about, resume_name, linkedin, github, status, applied_at
		FROM applications
		ORDER BY applied_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// InternRepository implements ports.InternRepository backed by
// PostgreSQL.
type InternRepository struct {
	db *sql.DB
}

func NewInternRepository(db *sql.DB) *InternRepository {
	return &InternRepository{db: db}
}

func (r *InternRepository) Create(ctx context.Context, intern *domain.Intern) (*domain.Intern, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO selected_interns
			(application_id, full_name, email, password_hash, position, college,
			 start_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, intern.ApplicationID, intern.FullName, intern.Email, intern.PasswordHash,
		intern.Position, intern.College, intern.StartDate, intern.Status,
		intern.CreatedAt).Scan(&intern.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert intern: %w", err)
	}
	return intern, nil
}

func (r *InternRepository) FindByEmail(ctx context.Context, email string) (*domain.Intern, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, application_id, full_name, email, password_hash, position,
		       college, start_date, status, created_at
		FROM selected_interns
		WHERE email = $1
	`, email)
	return scanIntern(row)
}

func (r *InternRepository) FindByID(ctx context.Context, id int64) (*domain.Intern, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, application_id, full_name, email, password_hash, position,
		       college, start_date, status, created_at
		FROM selected_interns
		WHERE id = $1
	`, id)
	return scanIntern(row)
}

func (r *InternRepository) List(ctx context.Context) ([]domain.Intern, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, application_id, full_name, email, password_hash, position,
		       college, start_date, status, created_at
		FROM selected_interns
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list interns: %w", err)
	}
	defer rows.Close()

	var interns []domain.Intern
	for rows.Next() {
		intern, err := scanIntern(rows)
		if err != nil {
			return nil, err
		}
		interns = append(interns, *intern)
	}
	return interns, rows.Err()
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		app              domain.Application
		linkedin, github sql.NullString
	)
	if err := row.Scan(&app.ID, &app.Position, &app.FullName, &app.Email, &app.Phone,
		&app.Address, &app.College, &app.Degree, &app.Semester, &app.Year,
		&app.About, &app.ResumeName, &linkedin, &github, &app.Status, &app.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	app.LinkedIn = linkedin.String
	app.GitHub = github.String
	return &app, nil
}

func scanIntern(row rowScanner) (*domain.Intern, error) {
	var (
		i     domain.Intern
		appID sql.NullInt64
	)
	if err := row.Scan(&i.ID, &appID, &i.FullName, &i.Email, &i.PasswordHash,
		&i.Position, &i.College, &i.StartDate, &i.Status, &i.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInternNotFound
		}
		return nil, fmt.Errorf("scan intern: %w", err)
	}
	i.ApplicationID = appID.Int64
	return &i, nil
}
