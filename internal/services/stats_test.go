package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/pace"
	"github.com/Gergov8/runnalog/internal/services"
)

func strPtr(s string) *string { return &s }

func newStatsService(t *testing.T) (*services.StatsService, *fakeStatsStore, *fakeRunStore) {
	t.Helper()
	statsStore := newFakeStatsStore()
	runStore := newFakeRunStore()
	svc := services.NewStatsService(statsStore, runStore, services.NewUserLocks())
	return svc, statsStore, runStore
}

func TestCreateDefaultStats(t *testing.T) {
	svc, store, _ := newStatsService(t)

	if err := svc.CreateDefault(context.Background(), "u1"); err != nil {
		t.Fatalf("CreateDefault: %v", err)
	}

	stats := store.byUser["u1"]
	if stats == nil {
		t.Fatal("stats not inserted")
	}
	if stats.TotalRuns != 0 || stats.TotalDistance != 0 || stats.TotalDuration != 0 {
		t.Errorf("expected zeroed counters, got %+v", stats)
	}
	if stats.Strides != 100 {
		t.Errorf("expected 100 welcome strides, got %d", stats.Strides)
	}
	if stats.RunnerLevel != 1 {
		t.Errorf("expected runner level 1, got %d", stats.RunnerLevel)
	}
	if stats.Pb1km != nil || stats.Pb5km != nil || stats.Pb10km != nil {
		t.Errorf("expected no personal bests, got %+v", stats)
	}
}

// Scénario de référence : 10 km en 50:00 sur des stats fraîches
func TestApplyRunCreatedFreshStats(t *testing.T) {
	svc, _, _ := newStatsService(t)
	ctx := context.Background()

	if err := svc.CreateDefault(ctx, "u1"); err != nil {
		t.Fatalf("CreateDefault: %v", err)
	}

	runPace := pace.Format(3000, 10.0)
	if runPace != "5:00" {
		t.Fatalf("expected pace 5:00, got %s", runPace)
	}

	stats, err := svc.ApplyRunCreated(ctx, "u1", 10.0, 3000, runPace)
	if err != nil {
		t.Fatalf("ApplyRunCreated: %v", err)
	}

	if stats.TotalRuns != 1 {
		t.Errorf("totalRuns = %d, want 1", stats.TotalRuns)
	}
	if stats.TotalDistance != 10.0 {
		t.Errorf("totalDistance = %v, want 10.0", stats.TotalDistance)
	}
	if stats.TotalDuration != 50 {
		t.Errorf("totalDuration = %d, want 50", stats.TotalDuration)
	}
	for tier, pb := range map[string]*string{"1km": stats.Pb1km, "5km": stats.Pb5km, "10km": stats.Pb10km} {
		if pb == nil || *pb != "5:00" {
			t.Errorf("pb %s = %v, want 5:00", tier, pb)
		}
	}
	// 100 départ + 100 base + 15 allure (<6:00) + 50 palier (>=10km)
	if stats.Strides != 265 {
		t.Errorf("strides = %d, want 265", stats.Strides)
	}
}

func TestStridesReward(t *testing.T) {
	tests := []struct {
		name         string
		distance     float64
		totalSeconds int64
		want         int // delta de strides
	}{
		{"2km tranquille", 2.0, 800, 20},                 // base 20, allure 6:40, aucun bonus
		{"5km rapide", 5.0, 1100, 120},                   // base 50 + allure <4:00 (50) + palier 5km (20)
		{"10km moyen", 10.0, 3000, 165},                  // base 100 + allure <6:00 (15) + palier 10km (50)
		{"semi-marathon", 21.1, 6900, 326},               // base 211 + allure <6:00 (15) + palier 21.1 (100)
		{"allure 4:30 sur 3km", 3.0, 810, 60},            // base 30 + allure <5:00 (30)
		{"juste sous 5km", 4.9, 1617, 64},                // base 49 + allure <6:00 (15), pas de palier
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newStatsService(t)
			ctx := context.Background()
			if err := svc.CreateDefault(ctx, "u1"); err != nil {
				t.Fatalf("CreateDefault: %v", err)
			}

			runPace := pace.Format(tt.totalSeconds, tt.distance)
			stats, err := svc.ApplyRunCreated(ctx, "u1", tt.distance, tt.totalSeconds, runPace)
			if err != nil {
				t.Fatalf("ApplyRunCreated: %v", err)
			}

			if got := stats.Strides - 100; got != tt.want {
				t.Errorf("strides earned = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPersonalBestsPerTier(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:      "u1",
		TotalRuns:   10,
		Strides:     500,
		RunnerLevel: 1,
		Pb1km:       strPtr("5:00"),
		Pb5km:       strPtr("4:50"),
		Pb10km:      strPtr("4:40"),
	}

	// 5 km à 3:40 : améliore pb1 et pb5, pas pb10 (distance insuffisante)
	stats, err := svc.ApplyRunCreated(ctx, "u1", 5.0, 1100, "3:40")
	if err != nil {
		t.Fatalf("ApplyRunCreated: %v", err)
	}

	if stats.Pb1km == nil || *stats.Pb1km != "3:40" {
		t.Errorf("pb1km = %v, want 3:40", stats.Pb1km)
	}
	if stats.Pb5km == nil || *stats.Pb5km != "3:40" {
		t.Errorf("pb5km = %v, want 3:40", stats.Pb5km)
	}
	if stats.Pb10km == nil || *stats.Pb10km != "4:40" {
		t.Errorf("pb10km = %v, want unchanged 4:40", stats.Pb10km)
	}
}

func TestPersonalBestNotImprovedByEqualOrSlowerPace(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:      "u1",
		Strides:     100,
		RunnerLevel: 1,
		Pb1km:       strPtr("4:30"),
	}

	// Allure égale : pas une amélioration
	stats, err := svc.ApplyRunCreated(ctx, "u1", 2.0, 540, "4:30")
	if err != nil {
		t.Fatalf("ApplyRunCreated: %v", err)
	}
	if *stats.Pb1km != "4:30" {
		t.Errorf("pb1km = %v, want 4:30", *stats.Pb1km)
	}

	// Allure plus lente : inchangé
	stats, err = svc.ApplyRunCreated(ctx, "u1", 2.0, 660, "5:30")
	if err != nil {
		t.Fatalf("ApplyRunCreated: %v", err)
	}
	if *stats.Pb1km != "4:30" {
		t.Errorf("pb1km = %v, want 4:30", *stats.Pb1km)
	}
}

// Symétrie création/suppression : les agrégats et le solde reviennent à
// leur valeur d'origine quand le plancher n'intervient pas.
func TestCreateThenDeleteRestoresAggregates(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:        "u1",
		TotalRuns:     3,
		TotalDistance: 42.5,
		TotalDuration: 260,
		Strides:       800,
		RunnerLevel:   1,
	}

	runPace := pace.Format(2700, 8.0)
	if _, err := svc.ApplyRunCreated(ctx, "u1", 8.0, 2700, runPace); err != nil {
		t.Fatalf("ApplyRunCreated: %v", err)
	}
	stats, err := svc.ApplyRunDeleted(ctx, "u1", 8.0, 2700)
	if err != nil {
		t.Fatalf("ApplyRunDeleted: %v", err)
	}

	if stats.TotalRuns != 3 {
		t.Errorf("totalRuns = %d, want 3", stats.TotalRuns)
	}
	if stats.TotalDistance != 42.5 {
		t.Errorf("totalDistance = %v, want 42.5", stats.TotalDistance)
	}
	if stats.TotalDuration != 260 {
		t.Errorf("totalDuration = %d, want 260", stats.TotalDuration)
	}
	if stats.Strides != 800 {
		t.Errorf("strides = %d, want 800", stats.Strides)
	}
}

func TestStridesNeverNegative(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:      "u1",
		TotalRuns:   1,
		Strides:     30,
		RunnerLevel: 1,
	}

	// Reprise de 165 strides sur un solde de 30 : plancher à zéro
	stats, err := svc.ApplyRunDeleted(ctx, "u1", 10.0, 3000)
	if err != nil {
		t.Fatalf("ApplyRunDeleted: %v", err)
	}
	if stats.Strides != 0 {
		t.Errorf("strides = %d, want 0", stats.Strides)
	}
	if stats.TotalRuns != 0 {
		t.Errorf("totalRuns = %d, want 0", stats.TotalRuns)
	}
	if stats.TotalDistance != 0 {
		t.Errorf("totalDistance = %v, want 0", stats.TotalDistance)
	}
}

// Supprimer la seule course jamais enregistrée efface les trois records
func TestDeleteOnlyRunClearsPersonalBests(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:        "u1",
		TotalRuns:     1,
		TotalDistance: 10.0,
		TotalDuration: 50,
		Strides:       265,
		RunnerLevel:   1,
		Pb1km:         strPtr("5:00"),
		Pb5km:         strPtr("5:00"),
		Pb10km:        strPtr("5:00"),
	}

	stats, err := svc.ApplyRunDeleted(ctx, "u1", 10.0, 3000)
	if err != nil {
		t.Fatalf("ApplyRunDeleted: %v", err)
	}

	if stats.Pb1km != nil || stats.Pb5km != nil || stats.Pb10km != nil {
		t.Errorf("expected all personal bests cleared, got %+v", stats)
	}
	if stats.TotalRuns != 0 {
		t.Errorf("totalRuns = %d, want 0", stats.TotalRuns)
	}
}

// Après suppression, les records sont redérivés de la seule course restante
// la plus rapide : un palier n'est touché que si elle est plus rapide que le
// record stocké et atteint la distance du palier.
func TestDeleteRecomputesPersonalBestsFromFastestRemaining(t *testing.T) {
	svc, store, runStore := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:      "u1",
		TotalRuns:   3,
		Strides:     1000,
		RunnerLevel: 1,
		Pb1km:       strPtr("4:30"),
		Pb5km:       strPtr("4:45"),
		Pb10km:      strPtr("5:10"),
	}

	// Courses restantes : la plus rapide fait 2 km à 4:00
	runStore.runs["r1"] = &model.Run{ID: "r1", UserID: "u1", Distance: 2.0, Pace: "4:00", Visibility: model.VisibilityPublic}
	runStore.runs["r2"] = &model.Run{ID: "r2", UserID: "u1", Distance: 12.0, Pace: "5:30", Visibility: model.VisibilityPublic}

	stats, err := svc.ApplyRunDeleted(ctx, "u1", 6.0, 1700)
	if err != nil {
		t.Fatalf("ApplyRunDeleted: %v", err)
	}

	// 4:00 bat 4:30 et 2 km >= 1 km : pb1 remplacé
	if stats.Pb1km == nil || *stats.Pb1km != "4:00" {
		t.Errorf("pb1km = %v, want 4:00", stats.Pb1km)
	}
	// 2 km < 5 km : pb5 intact même si l'allure est plus rapide
	if stats.Pb5km == nil || *stats.Pb5km != "4:45" {
		t.Errorf("pb5km = %v, want 4:45", stats.Pb5km)
	}
	// 2 km < 10 km : pb10 intact
	if stats.Pb10km == nil || *stats.Pb10km != "5:10" {
		t.Errorf("pb10km = %v, want 5:10", stats.Pb10km)
	}
}

// Une allure corrompue en base fait échouer toute la mutation
func TestMalformedStoredPaceAbortsMutation(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	store.byUser["u1"] = &model.Stats{
		UserID:      "u1",
		TotalRuns:   2,
		Strides:     400,
		RunnerLevel: 1,
		Pb1km:       strPtr("corrupted"),
	}

	_, err := svc.ApplyRunCreated(ctx, "u1", 3.0, 900, "5:00")
	if !errors.Is(err, pace.ErrMalformedPace) {
		t.Fatalf("expected ErrMalformedPace, got %v", err)
	}

	if store.updates != 0 {
		t.Error("stats must not be saved when the mutation aborts")
	}
	if store.byUser["u1"].TotalRuns != 2 || store.byUser["u1"].Strides != 400 {
		t.Errorf("stored stats mutated after aborted operation: %+v", store.byUser["u1"])
	}
}

func TestLastActivityUpdated(t *testing.T) {
	svc, store, _ := newStatsService(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	store.byUser["u1"] = &model.Stats{UserID: "u1", Strides: 100, RunnerLevel: 1, LastActivity: old}

	stats, err := svc.ApplyRunCreated(ctx, "u1", 2.0, 700, "5:50")
	if err != nil {
		t.Fatalf("ApplyRunCreated: %v", err)
	}
	if !stats.LastActivity.After(old) {
		t.Errorf("lastActivity not refreshed: %v", stats.LastActivity)
	}
}
