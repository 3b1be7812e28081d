package utils

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Gergov8/runnalog/internal/database"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// AddLike ajoute un like sur une course
func AddLike(ctx context.Context, userID, runID string) error {
	_, err := database.DB.Exec(ctx, `
		INSERT INTO likes (user_id, run_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, run_id) DO NOTHING
	`, userID, runID)

	return err
}

// RemoveLike retire un like sur une course
func RemoveLike(ctx context.Context, userID, runID string) error {
	_, err := database.DB.Exec(ctx, `
		DELETE FROM likes
		WHERE user_id = $1 AND run_id = $2
	`, userID, runID)

	return err
}

// ToggleLike ajoute ou retire un like selon l'état actuel (retourne true si liked, false si unliked)
func ToggleLike(ctx context.Context, userID, runID string) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM likes
			WHERE user_id = $1 AND run_id = $2
		)
	`, userID, runID).Scan(&exists)

	if err != nil {
		return false, err
	}

	if exists {
		err = RemoveLike(ctx, userID, runID)
		return false, err
	}

	err = AddLike(ctx, userID, runID)
	return true, err
}

// GetLikeInfo récupère le total de likes d'une course et si l'utilisateur
// courant l'a déjà likée.
func GetLikeInfo(ctx context.Context, userID *string, runID string) (*model.LikeInfo, error) {
	var info model.LikeInfo

	err := database.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes
		WHERE run_id = $1
	`, runID).Scan(&info.TotalLikes)

	if err != nil {
		return nil, err
	}

	if userID != nil && *userID != "" {
		var liked sql.NullBool
		err = database.DB.QueryRow(ctx, `
			SELECT TRUE FROM likes
			WHERE user_id = $1 AND run_id = $2
			LIMIT 1
		`, *userID, runID).Scan(&liked)

		info.UserLiked, err = userLikedFromScan(liked, err)
		if err != nil {
			return nil, err
		}
	}

	return &info, nil
}

// userLikedFromScan interprète le scan "l'utilisateur a-t-il liké ?".
// L'absence de ligne signifie non : le pool pgx retourne pgx.ErrNoRows,
// pas sql.ErrNoRows.
func userLikedFromScan(liked sql.NullBool, err error) (bool, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return liked.Valid && liked.Bool, nil
}

// GetUserLikes récupère les ids des courses likées par un utilisateur
func GetUserLikes(ctx context.Context, userID string) ([]string, error) {
	var runIDs []string
	err := database.DB.QueryRow(ctx, `
		SELECT COALESCE(ARRAY_AGG(run_id ORDER BY created_at DESC), '{}')
		FROM likes
		WHERE user_id = $1
	`, userID).Scan(pq.Array(&runIDs))

	if err != nil {
		return nil, err
	}

	return runIDs, nil
}
