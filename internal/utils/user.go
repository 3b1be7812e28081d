package utils

import (
	"context"
	"database/sql"

	"github.com/Gergov8/runnalog/internal/database"
	model "github.com/Gergov8/runnalog/internal/models"
)

// FindUserByUsername recherche un utilisateur actif par son pseudo
func FindUserByUsername(ctx context.Context, username string) (*model.UserProfile, error) {
	var user model.UserProfile
	var firstName, lastName, picture, country sql.NullString

	err := database.DB.QueryRow(ctx,
		`SELECT id, username, email, first_name, last_name, profile_picture, country,
		 role, active, created_on, updated_on
		 FROM users WHERE username=$1 AND active=true`,
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &firstName, &lastName, &picture,
		&country, &user.Role, &user.Active, &user.CreatedOn, &user.UpdatedOn)

	if err != nil {
		return nil, err
	}

	user.FirstName = NullStringToString(firstName)
	user.LastName = NullStringToString(lastName)
	user.ProfilePicture = NullStringToString(picture)
	user.Country = NullStringToString(country)

	return &user, nil
}

// FindUserByUsernameWithPassword recherche un utilisateur par pseudo et
// retourne aussi le hash du mot de passe, pour le login.
func FindUserByUsernameWithPassword(ctx context.Context, username string) (*model.UserProfile, string, error) {
	var user model.UserProfile
	var passwordHash string
	var firstName, lastName, picture, country sql.NullString

	err := database.DB.QueryRow(ctx,
		`SELECT id, username, email, first_name, last_name, profile_picture, country,
		 role, active, created_on, updated_on, password_hash
		 FROM users WHERE username=$1 AND active=true`,
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &firstName, &lastName, &picture,
		&country, &user.Role, &user.Active, &user.CreatedOn, &user.UpdatedOn, &passwordHash)

	if err != nil {
		return nil, "", err
	}

	user.FirstName = NullStringToString(firstName)
	user.LastName = NullStringToString(lastName)
	user.ProfilePicture = NullStringToString(picture)
	user.Country = NullStringToString(country)

	return &user, passwordHash, nil
}

// CreateUser crée un nouvel utilisateur avec le rôle USER
func CreateUser(ctx context.Context, username, email, passwordHash, country string) (*model.UserProfile, error) {
	var user model.UserProfile

	err := database.DB.QueryRow(ctx,
		`INSERT INTO users(username, email, password_hash, country, role, active, created_on, updated_on)
		 VALUES($1, $2, $3, $4, 'USER', true, NOW(), NOW())
		 RETURNING id, username, email, COALESCE(first_name,''), COALESCE(last_name,''),
		 COALESCE(profile_picture,''), COALESCE(country,''), role, active, created_on, updated_on`,
		username, email, passwordHash, country,
	).Scan(&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.ProfilePicture, &user.Country, &user.Role, &user.Active, &user.CreatedOn, &user.UpdatedOn)

	if err != nil {
		return nil, err
	}

	LogInfo("user %s created (id=%s)", user.Username, user.ID)
	return &user, nil
}
