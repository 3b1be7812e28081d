package api

import (
	"net/http"

	"github.com/Gergov8/runnalog/internal/handler"
	"github.com/Gergov8/runnalog/internal/middleware"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/me", handler.UpdateProfile).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/users/me/picture", handler.UploadProfilePicture).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}", handler.DeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id}/stats", handler.GetUserStats).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/runs", handler.GetUserRuns).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/likes", handler.GetUserLikedRuns).Methods(http.MethodGet)

	// Runs
	r.HandleFunc("/runs", handler.GetFeed).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/runs", handler.CreateRun).Methods(http.MethodPost)
	r.HandleFunc("/runs/{id}", handler.GetRun).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/runs/{id}", handler.DeleteRun).Methods(http.MethodDelete)

	// Likes et commentaires
	authenticatedRoutes.HandleFunc("/runs/{id}/like", handler.ToggleLike).Methods(http.MethodPost)
	r.HandleFunc("/runs/{id}/like", handler.GetLikeStatus).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/runs/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/runs/{id}/comments", handler.GetRunComments).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/runs/{id}/comments/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)

	// Subscriptions
	authenticatedRoutes.HandleFunc("/subscriptions/purchase", handler.PurchaseSubscription).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/subscriptions/active", handler.GetActiveSubscription).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/subscriptions/history", handler.GetSubscriptionHistory).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/subscriptions/elite", handler.GetEliteStatus).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{id}", handler.GetUserRank).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/leaderboard/refresh", handler.RefreshLeaderboard).Methods(http.MethodPost)

	// Admin
	authenticatedRoutes.HandleFunc("/admin/users", handler.GetAllUsers).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/admin/users/{id}/role", handler.SwitchUserRole).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/admin/users/{id}/reactivate", handler.ReactivateUser).Methods(http.MethodPost)

	// Health check et métriques
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
