package identity

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}

// DBTX is the subset of *sql.DB / *sql.Tx the repository needs.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresRepository implements Repository using PostgreSQL. Email uniqueness is
// enforced by the users_email_key constraint.
type PostgresRepository struct {
	db DBTX
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return validationError("invalid user id")
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO users (id, name, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)`, userID, user.Name, normalizeEmail(user.Email), user.PasswordHash, user.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken()
		}
		return ErrStore(err)
	}
	return nil
}

// FindByEmail fetches a user by email address.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`, normalizeEmail(email))
	return scanUser(row, ErrEmailNotFound())
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrUserNotFound()
	}
	row := r.db.QueryRowContext(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`, userID)
	return scanUser(row, ErrUserNotFound())
}

func scanUser(row *sql.Row, notFound *Error) (User, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		user      User
	)
	if err := row.Scan(&id, &user.Name, &user.Email, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, notFound
		}
		return User{}, ErrStore(err)
	}
	user.ID = id.String()
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
