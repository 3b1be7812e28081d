package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gergov8/runnalog/internal/metrics"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/utils"
)

// LeaderboardService maintient l'instantané classé des kilomètres courus
// aujourd'hui. Écriture par copie : la nouvelle liste est construite à côté
// puis publiée d'un seul échange de pointeur ; les lecteurs ne prennent
// jamais de verrou et ne voient jamais un mélange de deux cycles.
type LeaderboardService struct {
	runs  RunStore
	users UserStore

	mu       sync.Mutex // sérialise recompute et reset entre eux
	snapshot atomic.Pointer[[]model.LeaderboardEntry]
}

func NewLeaderboardService(runs RunStore, users UserStore) *LeaderboardService {
	s := &LeaderboardService{runs: runs, users: users}
	empty := []model.LeaderboardEntry{}
	s.snapshot.Store(&empty)
	return s
}

// Snapshot retourne l'instantané courant. La liste publiée n'est jamais
// modifiée après coup : les appelants peuvent la lire sans copie.
func (s *LeaderboardService) Snapshot() []model.LeaderboardEntry {
	return *s.snapshot.Load()
}

// Recompute reconstruit le classement du jour : somme des distances par
// utilisateur sur [minuit, minuit+1j), ordre décroissant, résolution des
// pseudos, puis remplacement atomique de la liste publiée.
func (s *LeaderboardService) Recompute(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	rows, err := s.runs.KmPerUserBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		return fmt.Errorf("could not aggregate daily km: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		username, err := s.users.UsernameByID(ctx, row.UserID)
		if err != nil {
			return fmt.Errorf("could not resolve username for %s: %w", row.UserID, err)
		}

		entries = append(entries, model.LeaderboardEntry{
			UserID:   row.UserID,
			Username: username,
			KmToday:  row.Km,
		})
	}

	// L'ordre décroissant appartient à l'agrégateur, pas à la requête
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].KmToday > entries[j].KmToday
	})

	s.snapshot.Store(&entries)
	metrics.LeaderboardUsers.Set(float64(len(entries)))
	utils.LogInfo("leaderboard recalculated with %d users", len(entries))

	return nil
}

// Reset vide le classement publié. Planifié une fois par jour à minuit pour
// repartir de zéro même si un cycle de recalcul a été manqué.
func (s *LeaderboardService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []model.LeaderboardEntry{}
	s.snapshot.Store(&empty)
	metrics.LeaderboardUsers.Set(0)
	utils.LogInfo("leaderboard reset")
}
