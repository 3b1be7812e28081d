package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gergov8/runnalog/internal/database"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/scanner"
	"github.com/jackc/pgx/v5"
)

// RunStore persistance Postgres des courses
type RunStore struct{}

func NewRunStore() *RunStore {
	return &RunStore{}
}

func (s *RunStore) InsertRun(ctx context.Context, run *model.Run) error {
	return database.DB.QueryRow(ctx, `
		INSERT INTO runs(user_id, distance, duration_seconds, pace,
			title, description, visibility, created_on)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		run.UserID, run.Distance, run.DurationSeconds, run.Pace,
		run.Title, run.Description, run.Visibility, run.CreatedOn,
	).Scan(&run.ID)
}

func (s *RunStore) RunByID(ctx context.Context, runID string) (*model.Run, error) {
	run, err := scanner.ScanRun(database.DB.QueryRow(ctx, `
		SELECT id, user_id, distance, duration_seconds,
			pace, title, description, visibility, created_on
		FROM runs WHERE id=$1`,
		runID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return run, err
}

func (s *RunStore) DeleteRun(ctx context.Context, runID string) error {
	_, err := database.DB.Exec(ctx, `DELETE FROM runs WHERE id=$1`, runID)
	return err
}

func (s *RunStore) PublicRunsByUser(ctx context.Context, userID string) ([]model.Run, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, distance, duration_seconds,
			pace, title, description, visibility, created_on
		FROM runs
		WHERE user_id=$1 AND visibility='PUBLIC'`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		run, err := scanner.ScanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// KmPerUserBetween distance publique cumulée par utilisateur sur [start, end)
func (s *RunStore) KmPerUserBetween(ctx context.Context, start, end time.Time) ([]model.DailyKm, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT user_id, SUM(distance) AS km
		FROM runs
		WHERE visibility='PUBLIC' AND created_on >= $1 AND created_on < $2
		GROUP BY user_id`,
		start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DailyKm
	for rows.Next() {
		var row model.DailyKm
		if err := rows.Scan(&row.UserID, &row.Km); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
