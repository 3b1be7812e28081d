package handler

import (
	"net/http"
	"strings"

	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()

	user, hashedPassword, err := utils.FindUserByUsernameWithPassword(ctx, req.Username)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// Register crée le compte et ses dépendances : stats à zéro avec les strides
// de bienvenue, abonnement Recreational gratuit, avatar par défaut. Session
// créée dans la foulée pour l'auto-login.
func Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Email == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "username and email are required")
		return
	}
	if len(req.Password) < 8 {
		utils.ErrorSimple(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	ctx := r.Context()
	hashed, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	user, err := utils.CreateUser(ctx, req.Username, req.Email, string(hashed), req.Country)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user", err)
		return
	}

	if err := statsService.CreateDefault(ctx, user.ID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user stats", err)
		return
	}

	if err := subscriptionService.CreateDefault(ctx, user.ID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create default subscription", err)
		return
	}

	// L'avatar par défaut est un confort, pas un préalable au compte
	if avatarURL, err := utils.GenerateDefaultAvatar(user.ID, user.Username); err == nil {
		if err := updateProfilePicture(ctx, user.ID, avatarURL); err == nil {
			user.ProfilePicture = avatarURL
		}
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
