package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nnema05/music-convertor-website/models"
)

var (
	// ErrUsernameTaken is returned when registration hits the unique
	// constraint on users.username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a login lookup matches no row.
	ErrUserNotFound = errors.New("user not found")
)

// PgxIface is the slice of pgxpool.Pool the handlers actually use. It is
// satisfied by *pgxpool.Pool and by pgxmock.PgxPoolIface in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

func OpenDB(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing DSN: %w", err)
	}

	config.MaxConns = 100
	config.MinConns = 2
	config.MaxConnIdleTime = 20 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test the connection
	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// AddUser hashes the password and inserts the new account. Username
// uniqueness is enforced by the database, not checked up front, so two
// racing registrations can never produce two rows.
func AddUser(username string, password string, db PgxIface) error {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "INSERT INTO users (id, username, password) VALUES ($1, $2, $3);"
	_, err = db.Exec(ctx, stmt, uuid.New(), username, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("error adding user: %w", err)
	}

	return nil
}

// GetUserByUsername looks up a single account. The unique constraint on
// username guarantees zero or one result.
func GetUserByUsername(username string, db PgxIface) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "SELECT id, username, password FROM users WHERE username = $1;"
	var user models.User
	err := db.QueryRow(ctx, stmt, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	return &user, nil
}

// UsernameInUse reports whether an account already exists. Registration
// itself relies on the unique constraint; this is for display-only checks.
func UsernameInUse(username string, db PgxIface) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)"

	var exists bool
	if err := db.QueryRow(ctx, stmt, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("database error checking username: %w", err)
	}

	return exists, nil
}
