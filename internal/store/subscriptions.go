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

// SubscriptionStore persistance Postgres de l'historique d'abonnements
type SubscriptionStore struct{}

func NewSubscriptionStore() *SubscriptionStore {
	return &SubscriptionStore{}
}

func (s *SubscriptionStore) InsertSubscription(ctx context.Context, sub *model.Subscription) error {
	return database.DB.QueryRow(ctx, `
		INSERT INTO subscriptions(user_id, status, type, period,
			price, renewal_allowed, created_on, expiry_on)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		sub.UserID, sub.Status, sub.Type, sub.Period,
		sub.Price, sub.RenewalAllowed, sub.CreatedOn, sub.ExpiryOn,
	).Scan(&sub.ID)
}

// LatestByUser dernier abonnement d'un utilisateur, (nil, nil) si aucun
func (s *SubscriptionStore) LatestByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	sub, err := scanner.ScanSubscription(database.DB.QueryRow(ctx, `
		SELECT id, user_id, status, type, period,
			price, renewal_allowed, created_on, expiry_on
		FROM subscriptions
		WHERE user_id=$1
		ORDER BY created_on DESC
		LIMIT 1`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return sub, err
}

// LatestActiveByUser dernier abonnement ACTIVE, (nil, nil) si aucun
func (s *SubscriptionStore) LatestActiveByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	sub, err := scanner.ScanSubscription(database.DB.QueryRow(ctx, `
		SELECT id, user_id, status, type, period,
			price, renewal_allowed, created_on, expiry_on
		FROM subscriptions
		WHERE user_id=$1 AND status='ACTIVE'
		ORDER BY created_on DESC
		LIMIT 1`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return sub, err
}

// ApplyPurchase commet un achat en une transaction : débit du solde,
// terminaison de l'abonnement courant, insertion du nouveau. Tout ou rien.
func (s *SubscriptionStore) ApplyPurchase(ctx context.Context, stats *model.Stats, terminatedID string, expiry time.Time, created *model.Subscription) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE stats SET strides=$1, last_activity=$2 WHERE user_id=$3`,
		stats.Strides, stats.LastActivity, stats.UserID,
	)
	if err != nil {
		return fmt.Errorf("could not debit strides: %w", err)
	}

	if terminatedID != "" {
		_, err = tx.Exec(ctx, `
			UPDATE subscriptions SET status='TERMINATED', expiry_on=$1 WHERE id=$2`,
			expiry, terminatedID,
		)
		if err != nil {
			return fmt.Errorf("could not terminate current subscription: %w", err)
		}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO subscriptions(user_id, status, type, period,
			price, renewal_allowed, created_on, expiry_on)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		created.UserID, created.Status, created.Type, created.Period,
		created.Price, created.RenewalAllowed, created.CreatedOn, created.ExpiryOn,
	).Scan(&created.ID)
	if err != nil {
		return fmt.Errorf("could not insert subscription: %w", err)
	}

	return tx.Commit(ctx)
}
