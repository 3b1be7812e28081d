package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/Gergov8/runnalog/internal/utils"
)

// Scheduler exécute des tâches de fond récurrentes. Chaque tâche tourne
// dans sa propre goroutine ; si un cycle déborde sur le suivant, le tick
// est sauté plutôt qu'empilé.
type Scheduler struct {
	wg sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every lance une tâche à intervalle fixe. Le premier cycle part tout de
// suite, puis à chaque tick jusqu'à l'annulation du contexte.
func (s *Scheduler) Every(ctx context.Context, name string, interval time.Duration, task func(context.Context) error) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		var running sync.Mutex

		// Chaque cycle part dans sa propre goroutine : un tick qui arrive
		// pendant qu'un cycle est encore en vol est sauté, pas empilé.
		run := func() {
			if !running.TryLock() {
				utils.LogWarning("job %s still running, skipping this cycle", name)
				return
			}

			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				defer running.Unlock()

				if err := task(ctx); err != nil {
					utils.LogError("job %s failed: %v", name, err)
				}
			}()
		}

		run()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				utils.LogInfo("job %s stopped", name)
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}

// DailyAt lance une tâche chaque jour à l'heure locale donnée
func (s *Scheduler) DailyAt(ctx context.Context, name string, hour, minute int, task func(context.Context) error) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		for {
			timer := time.NewTimer(untilNext(time.Now(), hour, minute))

			select {
			case <-ctx.Done():
				timer.Stop()
				utils.LogInfo("job %s stopped", name)
				return
			case <-timer.C:
				if err := task(ctx); err != nil {
					utils.LogError("job %s failed: %v", name, err)
				}
			}
		}
	}()
}

// Wait bloque jusqu'à l'arrêt de toutes les tâches lancées
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// untilNext délai jusqu'à la prochaine occurrence de hh:mm, aujourd'hui ou
// demain si l'heure est déjà passée.
func untilNext(now time.Time, hour, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
