package handler

import (
	"net/http"
	"strconv"

	"github.com/Gergov8/runnalog/internal/middleware"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
)

// GetLeaderboard retourne l'instantané courant du classement du jour.
// Lecture pure : aucun recalcul n'est déclenché par la requête.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := leaderboardService.Snapshot()

	limit := len(entries)
	if param := r.URL.Query().Get("limit"); param != "" {
		if n, err := strconv.Atoi(param); err == nil && n >= 0 && n < limit {
			limit = n
		}
	}

	utils.Success(w, entries[:limit])
}

// GetUserRank rang d'un utilisateur dans l'instantané courant (1-indexé)
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	for i, entry := range leaderboardService.Snapshot() {
		if entry.UserID == userID {
			utils.Success(w, map[string]interface{}{
				"rank":    i + 1,
				"kmToday": entry.KmToday,
			})
			return
		}
	}

	utils.ErrorSimple(w, http.StatusNotFound, "user has no runs today")
}

// RefreshLeaderboard force un recalcul immédiat (admin)
func RefreshLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil || !user.IsAdmin() {
		utils.ErrorSimple(w, http.StatusForbidden, "admin access required")
		return
	}

	if err := leaderboardService.Recompute(r.Context()); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not recompute leaderboard", err)
		return
	}

	utils.Success(w, leaderboardService.Snapshot())
}
