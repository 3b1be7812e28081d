package model

import (
	"time"
)

// RunVisibility visibilité d'une course dans le feed
type RunVisibility string

const (
	VisibilityPublic  RunVisibility = "PUBLIC"
	VisibilityPrivate RunVisibility = "PRIVATE"
)

type Run struct {
	ID              string        `json:"id,omitempty"`
	UserID          string        `json:"userId"`
	Distance        float64       `json:"distance"` // en kilomètres
	DurationSeconds int64         `json:"durationSeconds"`
	Pace            string        `json:"pace"` // "M:SS" min/km
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Visibility      RunVisibility `json:"visibility"`
	CreatedOn       time.Time     `json:"createdOn"`

	// Champs transients, remplis par les jointures du feed
	Username           string `json:"username,omitempty"`
	ProfilePicture     string `json:"profilePicture,omitempty"`
	LikesCount         int    `json:"likesCount"`
	LikedByCurrentUser bool   `json:"likedByCurrentUser"`
}

// CreateRunRequest payload de création d'une course
type CreateRunRequest struct {
	Distance        float64       `json:"distance"`
	DurationHours   int           `json:"durationHours"`
	DurationMinutes int           `json:"durationMinutes"`
	DurationSeconds int           `json:"durationSeconds"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Visibility      RunVisibility `json:"visibility"`
}

// TotalSeconds durée totale de la course en secondes
func (r CreateRunRequest) TotalSeconds() int64 {
	return int64(r.DurationHours)*3600 + int64(r.DurationMinutes)*60 + int64(r.DurationSeconds)
}
