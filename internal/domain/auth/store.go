package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// StoreAPI is the account surface the handlers need. Credential material
// never leaves this package.
type StoreAPI interface {
	Register(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

var _ StoreAPI = (*Store)(nil)

func (s *Store) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id
  `, username, hash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", ErrUsernameTaken
		}
		return "", err
	}
	return id, nil
}

// Authenticate returns the account id for valid credentials. Unknown
// usernames and wrong passwords are indistinguishable to callers; query
// failures propagate so the transport can report an outage.
func (s *Store) Authenticate(ctx context.Context, username, password string) (string, error) {
	var id, hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, password_hash
    FROM users
    WHERE username = $1
  `, username).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("authenticate %s: %w", username, err)
	}
	if err := CheckPassword(hash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return id, nil
}
