package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gergov8/runnalog/internal/metrics"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/utils"
)

// ErrInsufficientFunds résultat métier attendu d'un achat dont le prix
// dépasse le solde : aucune mutation n'a eu lieu.
var ErrInsufficientFunds = errors.New("insufficient strides balance")

// SubscriptionService propriétaire de la chaîne d'abonnements d'un
// utilisateur. Invariant : au plus un abonnement ACTIVE par utilisateur,
// un achat termine l'abonnement courant et insère le nouveau dans la même
// transaction.
type SubscriptionService struct {
	subs  SubscriptionStore
	stats StatsStore
	locks *UserLocks
}

func NewSubscriptionService(subs SubscriptionStore, stats StatsStore, locks *UserLocks) *SubscriptionService {
	return &SubscriptionService{subs: subs, stats: stats, locks: locks}
}

// CreateDefault insère l'abonnement gratuit Recreational/Monthly d'un
// nouvel utilisateur, actif avec une expiration lointaine. Palier de repli
// terminal : ne peut pas échouer pour raison de solde.
func (s *SubscriptionService) CreateDefault(ctx context.Context, userID string) error {
	now := time.Now()

	sub := &model.Subscription{
		UserID:         userID,
		Status:         model.SubscriptionActive,
		Type:           model.SubscriptionRecreational,
		Period:         model.PeriodMonthly,
		Price:          0,
		RenewalAllowed: true,
		CreatedOn:      now,
		ExpiryOn:       now.AddDate(0, 100, 0),
	}

	if err := s.subs.InsertSubscription(ctx, sub); err != nil {
		return fmt.Errorf("could not create default subscription: %w", err)
	}

	return nil
}

// Purchase achète un palier d'abonnement avec le solde de strides.
// Sous le verrou de l'utilisateur : lecture du solde, vérification,
// puis débit + bascule d'abonnement commis ensemble.
func (s *SubscriptionService) Purchase(ctx context.Context, userID string, subType model.SubscriptionType) (*model.Subscription, error) {
	price, ok := model.SubscriptionPrice(subType)
	if !ok {
		return nil, fmt.Errorf("unknown subscription type %q", subType)
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	stats, err := s.stats.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if stats.Strides < price {
		return nil, ErrInsufficientFunds
	}

	existing, err := s.subs.LatestActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load active subscription: %w", err)
	}

	var terminatedID string
	if existing != nil {
		terminatedID = existing.ID
	}

	now := time.Now()
	created := &model.Subscription{
		UserID:         userID,
		Status:         model.SubscriptionActive,
		Type:           subType,
		Period:         model.PeriodMonthly,
		Price:          price,
		RenewalAllowed: true,
		CreatedOn:      now,
		ExpiryOn:       now.AddDate(0, 1, 0),
	}

	stats.Strides -= price

	if err := s.subs.ApplyPurchase(ctx, stats, terminatedID, now, created); err != nil {
		return nil, fmt.Errorf("could not apply purchase: %w", err)
	}

	metrics.StridesSpent.Add(float64(price))
	utils.LogInfo("user %s upgraded to %s for %d strides", userID, subType.DisplayName(), price)

	// Compensation de bienvenue envoyée hors requête par le service cadeau
	utils.LogInfo("sending 100 STR subscription charge compensation for user %s", userID)

	return created, nil
}

// LatestByUser dernier abonnement (actif ou non) d'un utilisateur
func (s *SubscriptionService) LatestByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	return s.subs.LatestByUser(ctx, userID)
}

// ActiveByUser abonnement actif courant d'un utilisateur
func (s *SubscriptionService) ActiveByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	return s.subs.LatestActiveByUser(ctx, userID)
}

// HasActiveElite vrai si le dernier abonnement actif est Elite et non
// expiré. Évalué à chaque appel, jamais mis en cache : l'expiration dépend
// de l'horloge.
func (s *SubscriptionService) HasActiveElite(ctx context.Context, userID string) (bool, error) {
	sub, err := s.subs.LatestActiveByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, nil
	}

	return sub.Type == model.SubscriptionElite && sub.ExpiryOn.After(time.Now()), nil
}
