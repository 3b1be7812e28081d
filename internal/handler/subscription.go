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
)

type PurchaseRequest struct {
	Type model.SubscriptionType `json:"type"`
}

// PurchaseSubscription achète un palier d'abonnement avec les strides
func PurchaseSubscription(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req PurchaseRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sub, err := subscriptionService.Purchase(r.Context(), user.ID, req.Type)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientFunds) {
			utils.ErrorSimple(w, http.StatusBadRequest, "insufficient strides balance")
			return
		}
		utils.Error(w, http.StatusBadRequest, "could not purchase subscription", err)
		return
	}

	utils.Success(w, sub)
}

// GetActiveSubscription abonnement actif de l'utilisateur connecté
func GetActiveSubscription(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sub, err := subscriptionService.ActiveByUser(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load subscription", err)
		return
	}
	if sub == nil {
		utils.ErrorSimple(w, http.StatusNotFound, "no active subscription")
		return
	}

	utils.Success(w, sub)
}

// GetSubscriptionHistory historique complet des abonnements de l'utilisateur
func GetSubscriptionHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rows, err := database.DB.Query(r.Context(), `
		SELECT id, user_id, status, type, period,
			price, renewal_allowed, created_on, expiry_on
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_on DESC
	`, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query subscriptions", err)
		return
	}
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		sub, err := scanner.ScanSubscription(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan subscription row", err)
			return
		}
		subs = append(subs, *sub)
	}

	utils.Success(w, subs)
}

// GetEliteStatus vrai si l'utilisateur connecté a un abonnement Elite valide
func GetEliteStatus(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.RequireAuth(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
		return
	}

	elite, err := subscriptionService.HasActiveElite(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check subscription", err)
		return
	}

	utils.Success(w, map[string]bool{"elite": elite})
}
