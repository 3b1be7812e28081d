package services

import (
	"context"
	"fmt"
	"time"

	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/pace"
	"github.com/Gergov8/runnalog/internal/utils"
)

// DefaultStrides solde offert à l'inscription
const DefaultStrides = 100

// StatsService propriétaire unique du registre de statistiques d'un
// utilisateur. Toute mutation passe par ApplyRunCreated/ApplyRunDeleted,
// chacune appliquée comme une unité atomique lecture-modification-écriture
// sous le verrou de l'utilisateur.
type StatsService struct {
	stats StatsStore
	runs  RunStore
	locks *UserLocks
}

func NewStatsService(stats StatsStore, runs RunStore, locks *UserLocks) *StatsService {
	return &StatsService{stats: stats, runs: runs, locks: locks}
}

// CreateDefault crée la ligne de stats d'un nouvel utilisateur :
// compteurs à zéro, aucun record, 100 strides de bienvenue.
func (s *StatsService) CreateDefault(ctx context.Context, userID string) error {
	stats := &model.Stats{
		UserID:        userID,
		TotalRuns:     0,
		TotalDistance: 0,
		TotalDuration: 0,
		Strides:       DefaultStrides,
		RunnerLevel:   1,
		LastActivity:  time.Now(),
	}

	if err := s.stats.InsertStats(ctx, stats); err != nil {
		return fmt.Errorf("could not create default stats: %w", err)
	}

	return nil
}

// ByUser retourne les stats courantes d'un utilisateur
func (s *StatsService) ByUser(ctx context.Context, userID string) (*model.Stats, error) {
	return s.stats.StatsByUser(ctx, userID)
}

// ApplyRunCreated met à jour les totaux, les records personnels et le solde
// de strides après la création d'une course.
func (s *StatsService) ApplyRunCreated(ctx context.Context, userID string, distance float64, totalSeconds int64, runPace string) (*model.Stats, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	stats, err := s.stats.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats.TotalRuns++
	stats.TotalDistance += distance
	stats.TotalDuration += int(totalSeconds / 60)
	stats.LastActivity = time.Now()

	if err := updatePersonalBests(stats, distance, runPace); err != nil {
		return nil, err
	}

	earned := stridesReward(distance, totalSeconds)
	stats.Strides += earned
	utils.LogDebug("user %s earned %d strides for this run", userID, earned)

	if err := s.stats.UpdateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("could not save stats: %w", err)
	}

	return stats, nil
}

// ApplyRunDeleted inverse la contribution d'une course supprimée : totaux
// décrémentés (plancher à zéro), strides repris via la même formule que la
// récompense, records recalculés à partir des courses publiques restantes.
func (s *StatsService) ApplyRunDeleted(ctx context.Context, userID string, distance float64, totalSeconds int64) (*model.Stats, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	stats, err := s.stats.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats.TotalRuns--
	if stats.TotalRuns < 0 {
		stats.TotalRuns = 0
	}

	stats.TotalDistance -= distance
	if stats.TotalDistance < 0 {
		stats.TotalDistance = 0
	}

	stats.TotalDuration -= int(totalSeconds / 60)
	if stats.TotalDuration < 0 {
		stats.TotalDuration = 0
	}

	stats.LastActivity = time.Now()

	if err := s.recomputePersonalBests(ctx, stats, userID); err != nil {
		return nil, err
	}

	// Reprise symétrique : même formule que la récompense, plancher à zéro
	lost := stridesReward(distance, totalSeconds)
	stats.Strides -= lost
	if stats.Strides < 0 {
		stats.Strides = 0
	}
	utils.LogDebug("user %s left with %d strides after deleting this run", userID, stats.Strides)

	if err := s.stats.UpdateStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("could not save stats: %w", err)
	}

	return stats, nil
}

// stridesReward calcule la récompense d'une course : base au kilomètre,
// bonus d'allure et bonus de palier de distance (chacun exclusif).
func stridesReward(distance float64, totalSeconds int64) int {
	reward := int(distance * 10)

	paceMinPerKm := (float64(totalSeconds) / 60.0) / distance

	switch {
	case paceMinPerKm < 4.0:
		reward += 50
	case paceMinPerKm < 5.0:
		reward += 30
	case paceMinPerKm < 6.0:
		reward += 15
	}

	switch {
	case distance >= 21.1:
		reward += 100
	case distance >= 10.0:
		reward += 50
	case distance >= 5.0:
		reward += 20
	}

	return reward
}

// updatePersonalBests applique une nouvelle allure aux trois paliers de
// records, indépendamment : une même course peut en améliorer plusieurs.
func updatePersonalBests(stats *model.Stats, distance float64, runPace string) error {
	paceSeconds, err := pace.Seconds(runPace)
	if err != nil {
		return err
	}

	if distance >= 1.0 {
		better, err := beatsPB(stats.Pb1km, paceSeconds)
		if err != nil {
			return err
		}
		if better {
			stats.Pb1km = &runPace
			utils.LogDebug("new 1km personal best: %s min/km", runPace)
		}
	}

	if distance >= 5.0 {
		better, err := beatsPB(stats.Pb5km, paceSeconds)
		if err != nil {
			return err
		}
		if better {
			stats.Pb5km = &runPace
			utils.LogDebug("new 5km personal best: %s min/km", runPace)
		}
	}

	if distance >= 10.0 {
		better, err := beatsPB(stats.Pb10km, paceSeconds)
		if err != nil {
			return err
		}
		if better {
			stats.Pb10km = &runPace
			utils.LogDebug("new 10km personal best: %s min/km", runPace)
		}
	}

	return nil
}

// beatsPB vrai si l'allure bat strictement le record courant (ou si aucun
// record n'existe encore). Un record illisible remonte en erreur, jamais
// écrasé en silence.
func beatsPB(current *string, paceSeconds int) (bool, error) {
	if current == nil {
		return true, nil
	}

	currentSeconds, err := pace.Seconds(*current)
	if err != nil {
		return false, err
	}

	return paceSeconds < currentSeconds, nil
}

// recomputePersonalBests redérive les trois records à partir de la seule
// course restante la plus rapide : un palier n'est remplacé que si cette
// course est plus rapide que le record stocké et atteint la distance du
// palier. Raccourci hérité : la course la plus rapide toutes distances
// confondues peut sous-corriger un palier dont elle ne satisfait pas le
// seuil. S'il ne reste aucune course, tous les records sont effacés.
func (s *StatsService) recomputePersonalBests(ctx context.Context, stats *model.Stats, userID string) error {
	runs, err := s.runs.PublicRunsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not load remaining runs: %w", err)
	}

	if len(runs) == 0 {
		stats.Pb1km = nil
		stats.Pb5km = nil
		stats.Pb10km = nil
		return nil
	}

	fastest, fastestSeconds, err := fastestRun(runs)
	if err != nil {
		return err
	}

	if fastest.Distance >= 1.0 {
		better, err := beatsPB(stats.Pb1km, fastestSeconds)
		if err != nil {
			return err
		}
		if better {
			stats.Pb1km = &fastest.Pace
		}
	}

	if fastest.Distance >= 5.0 {
		better, err := beatsPB(stats.Pb5km, fastestSeconds)
		if err != nil {
			return err
		}
		if better {
			stats.Pb5km = &fastest.Pace
		}
	}

	if fastest.Distance >= 10.0 {
		better, err := beatsPB(stats.Pb10km, fastestSeconds)
		if err != nil {
			return err
		}
		if better {
			stats.Pb10km = &fastest.Pace
		}
	}

	return nil
}

// fastestRun retourne la course restante à l'allure la plus basse
func fastestRun(runs []model.Run) (*model.Run, int, error) {
	var best *model.Run
	bestSeconds := 0

	for i := range runs {
		seconds, err := pace.Seconds(runs[i].Pace)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || seconds < bestSeconds {
			best = &runs[i]
			bestSeconds = seconds
		}
	}

	return best, bestSeconds, nil
}
