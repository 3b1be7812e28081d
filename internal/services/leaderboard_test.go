package services_test

import (
	"context"
	"testing"

	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/services"
)

func newLeaderboardService(t *testing.T) (*services.LeaderboardService, *fakeRunStore, *fakeUserStore) {
	t.Helper()
	runStore := newFakeRunStore()
	userStore := &fakeUserStore{usernames: map[string]string{}}
	return services.NewLeaderboardService(runStore, userStore), runStore, userStore
}

func TestSnapshotEmptyBeforeFirstRecompute(t *testing.T) {
	svc, _, _ := newLeaderboardService(t)

	snapshot := svc.Snapshot()
	if snapshot == nil {
		t.Fatal("snapshot must never be nil")
	}
	if len(snapshot) != 0 {
		t.Errorf("expected empty snapshot, got %d entries", len(snapshot))
	}
}

func TestRecomputeSortsDescending(t *testing.T) {
	svc, runStore, userStore := newLeaderboardService(t)

	runStore.dailyKm = []model.DailyKm{
		{UserID: "u1", Km: 5.0},
		{UserID: "u2", Km: 12.5},
		{UserID: "u3", Km: 8.2},
	}
	userStore.usernames = map[string]string{"u1": "alice", "u2": "bob", "u3": "carol"}

	if err := svc.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	snapshot := svc.Snapshot()
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(snapshot))
	}

	want := []model.LeaderboardEntry{
		{UserID: "u2", Username: "bob", KmToday: 12.5},
		{UserID: "u3", Username: "carol", KmToday: 8.2},
		{UserID: "u1", Username: "alice", KmToday: 5.0},
	}
	for i, entry := range snapshot {
		if entry != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entry, want[i])
		}
	}
}

// Un instantané déjà rendu aux lecteurs n'est jamais modifié par un
// recalcul : la nouvelle liste remplace l'ancienne, elle ne l'écrase pas.
func TestRecomputeDoesNotMutatePublishedSnapshot(t *testing.T) {
	svc, runStore, userStore := newLeaderboardService(t)

	runStore.dailyKm = []model.DailyKm{{UserID: "u1", Km: 3.0}}
	userStore.usernames = map[string]string{"u1": "alice", "u2": "bob"}

	if err := svc.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	held := svc.Snapshot()

	runStore.dailyKm = []model.DailyKm{
		{UserID: "u2", Km: 20.0},
		{UserID: "u1", Km: 7.0},
	}
	if err := svc.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	if len(held) != 1 || held[0].UserID != "u1" || held[0].KmToday != 3.0 {
		t.Errorf("held snapshot mutated by later recompute: %+v", held)
	}
	if fresh := svc.Snapshot(); len(fresh) != 2 || fresh[0].UserID != "u2" {
		t.Errorf("fresh snapshot = %+v", fresh)
	}
}

func TestRecomputeFailureKeepsPreviousSnapshot(t *testing.T) {
	svc, runStore, userStore := newLeaderboardService(t)

	runStore.dailyKm = []model.DailyKm{{UserID: "u1", Km: 6.0}}
	userStore.usernames = map[string]string{"u1": "alice"}

	if err := svc.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	// Utilisateur inconnu : le cycle échoue, l'instantané publié survit
	runStore.dailyKm = []model.DailyKm{{UserID: "ghost", Km: 9.0}}
	if err := svc.Recompute(context.Background()); err == nil {
		t.Fatal("expected error for unknown user")
	}

	snapshot := svc.Snapshot()
	if len(snapshot) != 1 || snapshot[0].Username != "alice" {
		t.Errorf("previous snapshot lost after failed recompute: %+v", snapshot)
	}
}

func TestReset(t *testing.T) {
	svc, runStore, userStore := newLeaderboardService(t)

	runStore.dailyKm = []model.DailyKm{{UserID: "u1", Km: 6.0}}
	userStore.usernames = map[string]string{"u1": "alice"}

	if err := svc.Recompute(context.Background()); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	svc.Reset()

	if snapshot := svc.Snapshot(); len(snapshot) != 0 {
		t.Errorf("expected empty snapshot after reset, got %+v", snapshot)
	}
}
