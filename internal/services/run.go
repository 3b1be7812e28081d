package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gergov8/runnalog/internal/metrics"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/pace"
	"github.com/Gergov8/runnalog/internal/utils"
)

// ErrNotRunOwner l'utilisateur n'est ni propriétaire de la course ni admin
var ErrNotRunOwner = errors.New("not allowed to delete this run")

// RunService cycle de vie des courses : dérive l'allure, persiste la course
// et propage la contribution au registre de statistiques.
type RunService struct {
	runs  RunStore
	stats *StatsService
}

func NewRunService(runs RunStore, stats *StatsService) *RunService {
	return &RunService{runs: runs, stats: stats}
}

// Create enregistre une course et crédite les stats de l'utilisateur
func (s *RunService) Create(ctx context.Context, userID string, req model.CreateRunRequest) (*model.Run, error) {
	if req.Distance <= 0 {
		return nil, fmt.Errorf("distance must be positive")
	}

	totalSeconds := req.TotalSeconds()
	if totalSeconds <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	run := &model.Run{
		UserID:          userID,
		Distance:        req.Distance,
		DurationSeconds: totalSeconds,
		Pace:            pace.Format(totalSeconds, req.Distance),
		Title:           req.Title,
		Description:     req.Description,
		Visibility:      visibility,
		CreatedOn:       time.Now(),
	}

	if err := s.runs.InsertRun(ctx, run); err != nil {
		return nil, fmt.Errorf("could not save run: %w", err)
	}

	if _, err := s.stats.ApplyRunCreated(ctx, userID, run.Distance, totalSeconds, run.Pace); err != nil {
		return nil, err
	}

	metrics.RunsCreated.Inc()
	utils.LogInfo("user %s created a run of %.2f km in %d:%02d:%02d",
		userID, run.Distance, totalSeconds/3600, totalSeconds%3600/60, totalSeconds%60)

	return run, nil
}

// Delete supprime une course (propriétaire ou admin) et inverse sa
// contribution aux stats.
func (s *RunService) Delete(ctx context.Context, user model.UserProfile, runID string) error {
	run, err := s.runs.RunByID(ctx, runID)
	if err != nil {
		return err
	}

	if run.UserID != user.ID && !user.IsAdmin() {
		return ErrNotRunOwner
	}

	if err := s.runs.DeleteRun(ctx, runID); err != nil {
		return fmt.Errorf("could not delete run: %w", err)
	}

	if _, err := s.stats.ApplyRunDeleted(ctx, run.UserID, run.Distance, run.DurationSeconds); err != nil {
		return err
	}

	utils.LogInfo("user %s deleted run %s", user.ID, runID)

	return nil
}

// ByID retourne une course par son identifiant
func (s *RunService) ByID(ctx context.Context, runID string) (*model.Run, error) {
	return s.runs.RunByID(ctx, runID)
}
