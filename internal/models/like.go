package model

import "time"

// Like représente un like d'un utilisateur sur une course
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RunID     string    `json:"runId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeInfo contient les informations de like pour une course donnée
type LikeInfo struct {
	TotalLikes int  `json:"totalLikes"`
	UserLiked  bool `json:"userLiked"`
}
