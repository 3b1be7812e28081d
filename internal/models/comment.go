package model

import "time"

// Comment commentaire posté sous une course du feed
type Comment struct {
	ID        string    `json:"id"`
	RunID     string    `json:"runId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
}

// AddCommentRequest payload d'ajout de commentaire
type AddCommentRequest struct {
	Content string `json:"content"`
}
