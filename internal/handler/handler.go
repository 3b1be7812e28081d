package handler

import (
	"net/http"

	"github.com/Gergov8/runnalog/internal/services"
	"github.com/Gergov8/runnalog/internal/utils"
)

// Services partagés par les handlers, câblés au démarrage
var (
	statsService        *services.StatsService
	runService          *services.RunService
	subscriptionService *services.SubscriptionService
	leaderboardService  *services.LeaderboardService
	cloudinaryService   *services.CloudinaryService
)

// Init branche les services métier sur les handlers HTTP
func Init(stats *services.StatsService, runs *services.RunService,
	subs *services.SubscriptionService, leaderboard *services.LeaderboardService,
	cloudinary *services.CloudinaryService) {
	statsService = stats
	runService = runs
	subscriptionService = subs
	leaderboardService = leaderboard
	cloudinaryService = cloudinary
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
