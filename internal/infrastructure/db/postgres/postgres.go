package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for establishing a PostgreSQL connection.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Connect opens a database handle and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// InitSchema creates all tables when they do not exist yet. It is safe to
// run on every startup.
func InitSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(50) NOT NULL,
		address TEXT NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token VARCHAR(255) UNIQUE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS emails (
		id SERIAL PRIMARY KEY,
		to_email VARCHAR(255) NOT NULL,
		subject VARCHAR(500) NOT NULL,
		body TEXT NOT NULL,
		sent_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		user_id INTEGER REFERENCES users(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'planning',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS applications (
		id SERIAL PRIMARY KEY,
		position VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		address TEXT NOT NULL,
		college VARCHAR(255) NOT NULL,
		degree VARCHAR(255) NOT NULL,
		semester VARCHAR(50) NOT NULL,
		year VARCHAR(50) NOT NULL,
		about TEXT NOT NULL,
		resume_name VARCHAR(255) NOT NULL,
		linkedin VARCHAR(500),
		github VARCHAR(500),
		status VARCHAR(50) DEFAULT 'pending',
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS selected_interns (
		id SERIAL PRIMARY KEY,
		application_id INTEGER REFERENCES applications(id) ON DELETE CASCADE,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		position VARCHAR(255) NOT NULL,
		college VARCHAR(255) NOT NULL,
		start_date DATE DEFAULT CURRENT_DATE,
		status VARCHAR(50) DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS intern_sessions (
		id SERIAL PRIMARY KEY,
		intern_id INTEGER NOT NULL REFERENCES selected_interns(id) ON DELETE CASCADE,
		token VARCHAR(255) UNIQUE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS weekly_tasks (
		id SERIAL PRIMARY KEY,
		week_number INTEGER NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		mini_project_guidelines TEXT,
		ds_algo_topic TEXT,
		ai_news TEXT,
		due_date DATE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS task_submissions (
		id SERIAL PRIMARY KEY,
		intern_id INTEGER NOT NULL REFERENCES selected_interns(id) ON DELETE CASCADE,
		task_id INTEGER NOT NULL REFERENCES weekly_tasks(id) ON DELETE CASCADE,
		submission_file TEXT NOT NULL,
		submission_type VARCHAR(50),
		what_learned TEXT,
		status VARCHAR(50) DEFAULT 'submitted',
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS intern_progress (
		id SERIAL PRIMARY KEY,
		intern_id INTEGER NOT NULL REFERENCES selected_interns(id) ON DELETE CASCADE,
		week_number INTEGER NOT NULL,
		tasks_completed INTEGER NOT NULL DEFAULT 0,
		tasks_total INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token);
	CREATE INDEX IF NOT EXISTS idx_intern_sessions_token ON intern_sessions(token);
	CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);
	CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications(applied_at DESC);
	CREATE INDEX IF NOT EXISTS idx_emails_sent_at ON emails(sent_at DESC);
	CREATE INDEX IF NOT EXISTS idx_weekly_tasks_week ON weekly_tasks(week_number);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
