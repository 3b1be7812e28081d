package handler

import (
	"net/http"

	"github.com/Gergov8/runnalog/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "RunnaLog API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
				{"method": "POST", "path": "/auth/register", "description": "Inscription utilisateur"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users", "description": "Récupérer tous les utilisateurs actifs"},
				{"method": "GET", "path": "/users/{id}", "description": "Récupérer un utilisateur par ID"},
				{"method": "PUT", "path": "/users/me", "description": "Mettre à jour son profil"},
				{"method": "DELETE", "path": "/users/{id}", "description": "Désactiver un compte"},
				{"method": "POST", "path": "/users/me/picture", "description": "Upload de la photo de profil"},
				{"method": "GET", "path": "/users/{id}/stats", "description": "Statistiques de progression"},
				{"method": "GET", "path": "/users/{id}/runs", "description": "Courses d'un utilisateur"},
				{"method": "GET", "path": "/users/{id}/likes", "description": "Courses likées par un utilisateur"},
			},
			"runs": []map[string]string{
				{"method": "GET", "path": "/runs", "description": "Feed des courses publiques"},
				{"method": "POST", "path": "/runs", "description": "Enregistrer une course"},
				{"method": "GET", "path": "/runs/{id}", "description": "Récupérer une course par ID"},
				{"method": "DELETE", "path": "/runs/{id}", "description": "Supprimer une course"},
				{"method": "POST", "path": "/runs/{id}/like", "description": "Liker/unliker une course"},
				{"method": "GET", "path": "/runs/{id}/like", "description": "État des likes d'une course"},
				{"method": "POST", "path": "/runs/{id}/comments", "description": "Commenter une course"},
				{"method": "GET", "path": "/runs/{id}/comments", "description": "Commentaires d'une course"},
				{"method": "DELETE", "path": "/runs/{id}/comments/{commentId}", "description": "Supprimer un commentaire"},
			},
			"subscriptions": []map[string]string{
				{"method": "POST", "path": "/subscriptions/purchase", "description": "Acheter un abonnement avec des strides"},
				{"method": "GET", "path": "/subscriptions/active", "description": "Abonnement actif"},
				{"method": "GET", "path": "/subscriptions/history", "description": "Historique des abonnements"},
				{"method": "GET", "path": "/subscriptions/elite", "description": "Statut Elite"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement du jour (param: limit)"},
				{"method": "GET", "path": "/leaderboard/users/{id}", "description": "Rang d'un utilisateur"},
				{"method": "POST", "path": "/leaderboard/refresh", "description": "Forcer un recalcul (admin)"},
			},
			"admin": []map[string]string{
				{"method": "GET", "path": "/admin/users", "description": "Tous les comptes, actifs ou non"},
				{"method": "POST", "path": "/admin/users/{id}/role", "description": "Basculer le rôle USER/ADMIN"},
				{"method": "POST", "path": "/admin/users/{id}/reactivate", "description": "Réactiver un compte"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
				{"method": "GET", "path": "/metrics", "description": "Métriques Prometheus"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour RunnaLog - Carnet de course social",
			"contact":     "support@runnalog.app",
		},
	}

	utils.Success(w, routes)
}
