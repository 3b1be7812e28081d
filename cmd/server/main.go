package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Gergov8/runnalog/internal/api"
	"github.com/Gergov8/runnalog/internal/config"
	"github.com/Gergov8/runnalog/internal/database"
	"github.com/Gergov8/runnalog/internal/handler"
	"github.com/Gergov8/runnalog/internal/jobs"
	"github.com/Gergov8/runnalog/internal/logger"
	"github.com/Gergov8/runnalog/internal/middleware"
	"github.com/Gergov8/runnalog/internal/services"
	"github.com/Gergov8/runnalog/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Stores et services. Le verrou par utilisateur est partagé entre stats
	// et abonnements : les deux débitent le même solde de strides.
	statsStore := store.NewStatsStore()
	runStore := store.NewRunStore()
	subscriptionStore := store.NewSubscriptionStore()
	userStore := store.NewUserStore()

	locks := services.NewUserLocks()
	statsService := services.NewStatsService(statsStore, runStore, locks)
	runService := services.NewRunService(runStore, statsService)
	subscriptionService := services.NewSubscriptionService(subscriptionStore, statsStore, locks)
	leaderboardService := services.NewLeaderboardService(runStore, userStore)

	cloudinaryService, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	}

	handler.Init(statsService, runService, subscriptionService, leaderboardService, cloudinaryService)

	// Tâches de fond : recalcul du classement toutes les 60s, remise à zéro
	// chaque jour à minuit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := jobs.NewScheduler()
	scheduler.Every(ctx, "leaderboard-recompute", 60*time.Second, leaderboardService.Recompute)
	scheduler.DailyAt(ctx, "leaderboard-reset", 0, 0, func(context.Context) error {
		leaderboardService.Reset()
		return nil
	})

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
