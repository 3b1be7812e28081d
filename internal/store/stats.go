package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gergov8/runnalog/internal/database"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/scanner"
	"github.com/jackc/pgx/v5"
)

// StatsStore persistance Postgres du registre de statistiques
type StatsStore struct{}

func NewStatsStore() *StatsStore {
	return &StatsStore{}
}

func (s *StatsStore) StatsByUser(ctx context.Context, userID string) (*model.Stats, error) {
	stats, err := scanner.ScanStats(database.DB.QueryRow(ctx, `
		SELECT id, user_id, total_runs, total_distance, total_duration,
			pb_1km, pb_5km, pb_10km,
			strides, runner_level, last_activity
		FROM stats WHERE user_id=$1`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stats for user %s: %w", userID, ErrNotFound)
	}
	return stats, err
}

func (s *StatsStore) InsertStats(ctx context.Context, stats *model.Stats) error {
	return database.DB.QueryRow(ctx, `
		INSERT INTO stats(user_id, total_runs, total_distance, total_duration,
			pb_1km, pb_5km, pb_10km, strides, runner_level, last_activity)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		stats.UserID, stats.TotalRuns, stats.TotalDistance, stats.TotalDuration,
		stats.Pb1km, stats.Pb5km, stats.Pb10km,
		stats.Strides, stats.RunnerLevel, stats.LastActivity,
	).Scan(&stats.ID)
}

func (s *StatsStore) UpdateStats(ctx context.Context, stats *model.Stats) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE stats
		SET total_runs=$1, total_distance=$2, total_duration=$3,
			pb_1km=$4, pb_5km=$5, pb_10km=$6,
			strides=$7, runner_level=$8, last_activity=$9
		WHERE user_id=$10`,
		stats.TotalRuns, stats.TotalDistance, stats.TotalDuration,
		stats.Pb1km, stats.Pb5km, stats.Pb10km,
		stats.Strides, stats.RunnerLevel, stats.LastActivity,
		stats.UserID,
	)
	return err
}
