package model

import (
	"time"
)

// UserRole rôle applicatif d'un utilisateur
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type UserProfile struct {
	ID             string    `json:"id,omitempty"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Country        string    `json:"country,omitempty"`
	Role           UserRole  `json:"role"`
	Active         bool      `json:"active"`
	CreatedOn      time.Time `json:"createdOn,omitempty"`
	UpdatedOn      time.Time `json:"updatedOn,omitempty"`
}

// IsAdmin indique si l'utilisateur a le rôle administrateur
func (u UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest payload d'inscription
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

// EditProfileRequest payload de mise à jour du profil
type EditProfileRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture"`
}
