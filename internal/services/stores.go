package services

import (
	"context"
	"time"

	model "github.com/Gergov8/runnalog/internal/models"
)

// Interfaces de persistance consommées par les services. L'implémentation
// Postgres vit dans internal/store ; les tests utilisent des doublures en
// mémoire.

type StatsStore interface {
	StatsByUser(ctx context.Context, userID string) (*model.Stats, error)
	InsertStats(ctx context.Context, stats *model.Stats) error
	UpdateStats(ctx context.Context, stats *model.Stats) error
}

type RunStore interface {
	InsertRun(ctx context.Context, run *model.Run) error
	RunByID(ctx context.Context, runID string) (*model.Run, error)
	DeleteRun(ctx context.Context, runID string) error
	PublicRunsByUser(ctx context.Context, userID string) ([]model.Run, error)
	KmPerUserBetween(ctx context.Context, start, end time.Time) ([]model.DailyKm, error)
}

type SubscriptionStore interface {
	InsertSubscription(ctx context.Context, sub *model.Subscription) error
	LatestByUser(ctx context.Context, userID string) (*model.Subscription, error)
	LatestActiveByUser(ctx context.Context, userID string) (*model.Subscription, error)

	// ApplyPurchase persiste dans une même transaction le débit de strides,
	// la terminaison de l'abonnement courant et l'insertion du nouveau.
	// Une application partielle (débit sans abonnement, ou l'inverse) est
	// une violation de cohérence.
	ApplyPurchase(ctx context.Context, stats *model.Stats, terminatedID string, expiry time.Time, created *model.Subscription) error
}

type UserStore interface {
	UsernameByID(ctx context.Context, userID string) (string, error)
}
