package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Gergov8/runnalog/internal/database"
	model "github.com/Gergov8/runnalog/internal/models"
)

func DecodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func GetToken(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", fmt.Errorf("missing token")
	}
	return token, nil
}

// GetUserByToken résout le profil rattaché à un token de session actif
func GetUserByToken(token string) (model.UserProfile, error) {
	var user model.UserProfile

	if token == "" {
		return user, fmt.Errorf("empty token")
	}

	ctx := context.Background()
	err := database.DB.QueryRow(ctx, `
		SELECT
			u.id,
			u.username,
			u.email,
			COALESCE(u.first_name,'') as first_name,
			COALESCE(u.last_name,'') as last_name,
			COALESCE(u.profile_picture,'') as profile_picture,
			COALESCE(u.country,'') as country,
			u.role,
			u.active,
			u.created_on,
			u.updated_on
		FROM users u
		INNER JOIN sessions s ON u.id = s.user_id
		WHERE s.token = $1 AND s.is_active = true AND s.expires_on > NOW() AND u.active = true
	`, token).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.ProfilePicture, &user.Country, &user.Role, &user.Active,
		&user.CreatedOn, &user.UpdatedOn,
	)
	if err != nil {
		return user, fmt.Errorf("user not found or invalid token: %w", err)
	}

	if user.ID == "" {
		return user, fmt.Errorf("invalid user ID retrieved from token")
	}

	return user, nil
}
