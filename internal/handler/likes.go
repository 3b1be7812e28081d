package handler

import (
	"net/http"

	"github.com/Gergov8/runnalog/internal/middleware"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
)

// ToggleLike ajoute ou retire le like de l'utilisateur connecté sur une course
func ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	runID := vars["id"]

	liked, err := utils.ToggleLike(r.Context(), user.ID, runID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not toggle like", err)
		return
	}

	utils.Success(w, map[string]bool{"liked": liked})
}

// GetLikeStatus total de likes d'une course et état pour l'utilisateur courant
func GetLikeStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runID := vars["id"]

	var currentUserID *string
	if user, err := middleware.GetUserFromContext(r); err == nil {
		currentUserID = &user.ID
	}

	info, err := utils.GetLikeInfo(r.Context(), currentUserID, runID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not get like info", err)
		return
	}

	utils.Success(w, info)
}

// GetUserLikedRuns ids des courses likées par un utilisateur
func GetUserLikedRuns(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	runIDs, err := utils.GetUserLikes(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not get user likes", err)
		return
	}

	utils.Success(w, runIDs)
}
