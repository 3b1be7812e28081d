package handler

import (
	"errors"
	"net/http"

	"github.com/Gergov8/runnalog/internal/database"
	"github.com/Gergov8/runnalog/internal/middleware"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/scanner"
	"github.com/Gergov8/runnalog/internal/services"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
)

// CreateRun enregistre une course et crédite la progression de l'utilisateur
func CreateRun(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.CreateRunRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	run, err := runService.Create(r.Context(), user.ID, req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "could not create run", err)
		return
	}

	utils.Success(w, run)
}

func GetRun(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runID := vars["id"]

	run, err := runService.ByID(r.Context(), runID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "run not found")
		return
	}

	utils.Success(w, run)
}

// DeleteRun supprime une course et inverse sa contribution aux stats
func DeleteRun(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	runID := vars["id"]

	if err := runService.Delete(r.Context(), user, runID); err != nil {
		if errors.Is(err, services.ErrNotRunOwner) {
			utils.ErrorSimple(w, http.StatusForbidden, "not allowed to delete this run")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not delete run", err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// GetFeed retourne les courses publiques, les plus récentes d'abord, avec
// pseudo, photo et likes. likedByCurrentUser n'est rempli que pour un
// utilisateur connecté.
func GetFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := database.DB.Query(ctx, `
		SELECT
			r.id, r.user_id, r.distance, r.duration_seconds,
			r.pace, r.title, r.description, r.visibility, r.created_on,
			u.username,
			u.profile_picture,
			COUNT(l.id) AS likes_count,
			BOOL_OR(l.user_id = $1) IS TRUE AS liked_by_current_user
		FROM runs r
		INNER JOIN users u ON u.id = r.user_id
		LEFT JOIN likes l ON l.run_id = r.id
		WHERE r.visibility = 'PUBLIC' AND u.active = true
		GROUP BY r.id, u.username, u.profile_picture
		ORDER BY r.created_on DESC
		LIMIT 100
	`, feedViewer(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query feed", err)
		return
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		run, err := scanner.ScanFeedRun(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan feed row", err)
			return
		}
		runs = append(runs, *run)
	}

	utils.Success(w, runs)
}

// feedViewer retourne l'id de l'utilisateur connecté, nil pour un visiteur
// anonyme : le paramètre SQL doit alors être NULL, une chaîne vide ne se
// compare pas à une colonne uuid.
func feedViewer(r *http.Request) *string {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		return nil
	}
	return &user.ID
}

// GetUserRuns retourne les courses d'un utilisateur. Les courses privées ne
// sont visibles que par leur propriétaire.
func GetUserRuns(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	includePrivate := false
	if current, err := middleware.GetUserFromContext(r); err == nil && (current.ID == userID || current.IsAdmin()) {
		includePrivate = true
	}

	query := `
		SELECT id, user_id, distance, duration_seconds,
			pace, title, description, visibility, created_on
		FROM runs
		WHERE user_id = $1`
	if !includePrivate {
		query += ` AND visibility = 'PUBLIC'`
	}
	query += ` ORDER BY created_on DESC`

	rows, err := database.DB.Query(r.Context(), query, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query runs", err)
		return
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		run, err := scanner.ScanRun(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan run row", err)
			return
		}
		runs = append(runs, *run)
	}

	utils.Success(w, runs)
}
