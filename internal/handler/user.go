package handler

import (
	"context"
	"net/http"

	"github.com/Gergov8/runnalog/internal/database"
	"github.com/Gergov8/runnalog/internal/middleware"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/scanner"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/gorilla/mux"
)

func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rows, err := database.DB.Query(ctx, `
		SELECT
			id, username, email,
			first_name, last_name, profile_picture, country,
			role, active, created_on, updated_on
		FROM users
		WHERE active = true
		ORDER BY username
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

func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	user, err := scanner.ScanUserProfile(database.DB.QueryRow(r.Context(), `
		SELECT id, username, email,
			first_name, last_name, profile_picture, country,
			role, active, created_on, updated_on
		FROM users WHERE id=$1 AND active=true`,
		id,
	))
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}

	utils.Success(w, user)
}

// UpdateProfile modifie le profil de l'utilisateur connecté
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.EditProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()
	_, err = database.DB.Exec(ctx,
		`UPDATE users SET first_name=$1, last_name=$2, profile_picture=$3, updated_on=NOW()
		 WHERE id=$4 AND active=true`,
		req.FirstName, req.LastName, req.ProfilePicture, user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile", err)
		return
	}

	updated, err := scanner.ScanUserProfile(database.DB.QueryRow(ctx, `
		SELECT id, username, email,
			first_name, last_name, profile_picture, country,
			role, active, created_on, updated_on
		FROM users WHERE id=$1`,
		user.ID,
	))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch updated profile", err)
		return
	}

	utils.Success(w, updated)
}

// DeleteUser désactive un compte : l'utilisateur lui-même ou un admin
func DeleteUser(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	targetID := vars["id"]

	if targetID != current.ID && !current.IsAdmin() {
		utils.ErrorSimple(w, http.StatusForbidden, "not allowed to delete this user")
		return
	}

	res, err := database.DB.Exec(r.Context(),
		`UPDATE users SET active=false, updated_on=NOW()
		 WHERE id=$1 AND active=true`,
		targetID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete user", err)
		return
	}

	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found or already deleted")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// GetUserStats statistiques de progression d'un utilisateur
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	stats, err := statsService.ByUser(r.Context(), userID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "stats not found")
		return
	}

	utils.Success(w, stats)
}

// UploadProfilePicture upload la photo de profil vers Cloudinary
func UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if cloudinaryService == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "picture storage is not configured")
		return
	}

	// Limiter la taille du fichier à 10MB
	r.ParseMultipartForm(10 << 20)

	file, header, err := r.FormFile("picture")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/jpg" {
		utils.ErrorSimple(w, http.StatusBadRequest, "only JPEG and PNG images are allowed")
		return
	}

	ctx := r.Context()
	pictureURL, err := cloudinaryService.UploadProfilePicture(ctx, file, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload picture", err)
		return
	}

	if err := updateProfilePicture(ctx, user.ID, pictureURL); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile picture", err)
		return
	}

	user.ProfilePicture = pictureURL
	utils.Success(w, user)
}

func updateProfilePicture(ctx context.Context, userID, pictureURL string) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE users SET profile_picture=$1, updated_on=NOW() WHERE id=$2 AND active=true`,
		pictureURL, userID,
	)
	return err
}
