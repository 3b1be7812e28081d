package middleware

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gergov8/runnalog/internal/database"
	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/utils"
	"github.com/jackc/pgx/v5"
)

// Context keys
type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// AuthMiddleware valide le token et injecte l'utilisateur dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.ErrorSimple(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *user, token)))
	})
}

// WithUser injecte l'utilisateur et son token dans le contexte
func WithUser(ctx context.Context, user model.UserProfile, token string) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	return context.WithValue(ctx, tokenContextKey, token)
}

// OptionalAuth injecte l'utilisateur dans le contexte si un token valide est
// présent, et laisse passer la requête dans tous les cas. Utilisé par les
// routes publiques qui enrichissent leur réponse pour un utilisateur connecté
// (feed avec likedByCurrentUser par exemple).
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *user, token)))
	})
}

// validateTokenAndGetUser valide le token de session et retourne l'utilisateur associé
func validateTokenAndGetUser(ctx context.Context, token string) (*model.UserProfile, error) {
	var user model.UserProfile
	var firstName, lastName, picture, country sql.NullString

	query := `
	SELECT
		u.id, u.username, u.email, u.first_name, u.last_name,
		u.profile_picture, u.country, u.role, u.active,
		u.created_on, u.updated_on
	FROM users u
	JOIN sessions s ON u.id = s.user_id
	WHERE s.token = $1
		AND s.is_active = true
		AND s.expires_on > NOW()
		AND u.active = true`

	err := database.DB.QueryRow(ctx, query, token).Scan(
		&user.ID, &user.Username, &user.Email, &firstName, &lastName,
		&picture, &country, &user.Role, &user.Active,
		&user.CreatedOn, &user.UpdatedOn,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	user.FirstName = utils.NullStringToString(firstName)
	user.LastName = utils.NullStringToString(lastName)
	user.ProfilePicture = utils.NullStringToString(picture)
	user.Country = utils.NullStringToString(country)

	return &user, nil
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.UserProfile, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserProfile)
	if !ok {
		return model.UserProfile{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}

// RequireAuth est un helper pour vérifier qu'un utilisateur est authentifié dans un handler
func RequireAuth(r *http.Request) (model.UserProfile, error) {
	return GetUserFromContext(r)
}
