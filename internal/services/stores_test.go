package services_test

import (
	"context"
	"fmt"
	"time"

	model "github.com/Gergov8/runnalog/internal/models"
)

// Doublures en mémoire des collaborateurs de persistance.

type fakeStatsStore struct {
	byUser  map[string]*model.Stats
	updates int
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{byUser: map[string]*model.Stats{}}
}

func (f *fakeStatsStore) StatsByUser(_ context.Context, userID string) (*model.Stats, error) {
	stats, ok := f.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("stats for user %s not found", userID)
	}

	// Copie : le service travaille sur son propre exemplaire jusqu'au save
	copied := *stats
	return &copied, nil
}

func (f *fakeStatsStore) InsertStats(_ context.Context, stats *model.Stats) error {
	copied := *stats
	f.byUser[stats.UserID] = &copied
	return nil
}

func (f *fakeStatsStore) UpdateStats(_ context.Context, stats *model.Stats) error {
	copied := *stats
	f.byUser[stats.UserID] = &copied
	f.updates++
	return nil
}

type fakeRunStore struct {
	runs    map[string]*model.Run
	nextID  int
	dailyKm []model.DailyKm
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{runs: map[string]*model.Run{}}
}

func (f *fakeRunStore) InsertRun(_ context.Context, run *model.Run) error {
	f.nextID++
	run.ID = fmt.Sprintf("run-%d", f.nextID)
	copied := *run
	f.runs[run.ID] = &copied
	return nil
}

func (f *fakeRunStore) RunByID(_ context.Context, runID string) (*model.Run, error) {
	run, ok := f.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	copied := *run
	return &copied, nil
}

func (f *fakeRunStore) DeleteRun(_ context.Context, runID string) error {
	delete(f.runs, runID)
	return nil
}

func (f *fakeRunStore) PublicRunsByUser(_ context.Context, userID string) ([]model.Run, error) {
	var result []model.Run
	for _, run := range f.runs {
		if run.UserID == userID && run.Visibility == model.VisibilityPublic {
			result = append(result, *run)
		}
	}
	return result, nil
}

func (f *fakeRunStore) KmPerUserBetween(_ context.Context, _, _ time.Time) ([]model.DailyKm, error) {
	return f.dailyKm, nil
}

type fakeSubscriptionStore struct {
	subs   []*model.Subscription
	stats  *fakeStatsStore
	nextID int
}

func newFakeSubscriptionStore(stats *fakeStatsStore) *fakeSubscriptionStore {
	return &fakeSubscriptionStore{stats: stats}
}

func (f *fakeSubscriptionStore) InsertSubscription(_ context.Context, sub *model.Subscription) error {
	f.nextID++
	sub.ID = fmt.Sprintf("sub-%d", f.nextID)
	copied := *sub
	f.subs = append(f.subs, &copied)
	return nil
}

func (f *fakeSubscriptionStore) LatestByUser(_ context.Context, userID string) (*model.Subscription, error) {
	var latest *model.Subscription
	for _, sub := range f.subs {
		if sub.UserID != userID {
			continue
		}
		if latest == nil || sub.CreatedOn.After(latest.CreatedOn) {
			latest = sub
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSubscriptionStore) LatestActiveByUser(_ context.Context, userID string) (*model.Subscription, error) {
	var latest *model.Subscription
	for _, sub := range f.subs {
		if sub.UserID != userID || sub.Status != model.SubscriptionActive {
			continue
		}
		if latest == nil || sub.CreatedOn.After(latest.CreatedOn) {
			latest = sub
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSubscriptionStore) ApplyPurchase(ctx context.Context, stats *model.Stats, terminatedID string, expiry time.Time, created *model.Subscription) error {
	if err := f.stats.UpdateStats(ctx, stats); err != nil {
		return err
	}

	for _, sub := range f.subs {
		if sub.ID == terminatedID {
			sub.Status = model.SubscriptionTerminated
			sub.ExpiryOn = expiry
		}
	}

	return f.InsertSubscription(ctx, created)
}

func (f *fakeSubscriptionStore) activeCount(userID string) int {
	count := 0
	for _, sub := range f.subs {
		if sub.UserID == userID && sub.Status == model.SubscriptionActive {
			count++
		}
	}
	return count
}

type fakeUserStore struct {
	usernames map[string]string
}

func (f *fakeUserStore) UsernameByID(_ context.Context, userID string) (string, error) {
	username, ok := f.usernames[userID]
	if !ok {
		return "", fmt.Errorf("user %s not found", userID)
	}
	return username, nil
}
