package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gergov8/runnalog/internal/database"
	"github.com/jackc/pgx/v5"
)

// UserStore accès Postgres minimal aux utilisateurs pour les services
type UserStore struct{}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) UsernameByID(ctx context.Context, userID string) (string, error) {
	var username string
	err := database.DB.QueryRow(ctx,
		`SELECT username FROM users WHERE id=$1`,
		userID,
	).Scan(&username)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return username, err
}
