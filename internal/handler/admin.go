package handler

import (
	"net/http"

	"github.com/Gergov8/runnalog/internal/database"
	"github.com/Gergov8/runnalog/internal/middleware"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/scanner"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
)

// SwitchUserRole bascule le rôle d'un utilisateur entre USER et ADMIN
func SwitchUserRole(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.RequireAuth(r)
	if err != nil || !current.IsAdmin() {
		utils.ErrorSimple(w, http.StatusForbidden, "admin access required")
		return
	}

	vars := mux.Vars(r)
	targetID := vars["id"]

	ctx := r.Context()
	var newRole model.UserRole
	err = database.DB.QueryRow(ctx, `
		UPDATE users
		SET role = CASE WHEN role = 'ADMIN' THEN 'USER' ELSE 'ADMIN' END,
			updated_on = NOW()
		WHERE id = $1 AND active = true
		RETURNING role
	`, targetID).Scan(&newRole)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}

	utils.LogInfo("admin %s switched role of user %s to %s", current.ID, targetID, newRole)
	utils.Success(w, map[string]interface{}{"userId": targetID, "role": newRole})
}

// GetAllUsers liste tous les comptes, actifs ou non (admin)
func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.RequireAuth(r)
	if err != nil || !current.IsAdmin() {
		utils.ErrorSimple(w, http.StatusForbidden, "admin access required")
		return
	}

	rows, err := database.DB.Query(r.Context(), `
		SELECT id, username, email,
			first_name, last_name, profile_picture, country,
			role, active, created_on, updated_on
		FROM users
		ORDER BY created_on DESC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users", err)
		return
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		user, err := scanner.ScanUserProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row", err)
			return
		}
		users = append(users, *user)
	}

	utils.Success(w, users)
}

// ReactivateUser réactive un compte désactivé (admin)
func ReactivateUser(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.RequireAuth(r)
	if err != nil || !current.IsAdmin() {
		utils.ErrorSimple(w, http.StatusForbidden, "admin access required")
		return
	}

	vars := mux.Vars(r)
	targetID := vars["id"]

	res, err := database.DB.Exec(r.Context(),
		`UPDATE users SET active=true, updated_on=NOW() WHERE id=$1 AND active=false`,
		targetID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not reactivate user", err)
		return
	}

	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found or already active")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
