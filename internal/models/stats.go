package model

import (
	"time"
)

// Stats statistiques cumulées d'un coureur (une ligne par utilisateur).
// Pb1km/Pb5km/Pb10km sont des allures "M:SS", nil tant qu'aucune course
// qualifiante n'a été enregistrée.
type Stats struct {
	ID            string    `json:"id,omitempty"`
	UserID        string    `json:"userId"`
	TotalRuns     int       `json:"totalRuns"`
	TotalDistance float64   `json:"totalDistance"` // km
	TotalDuration int       `json:"totalDuration"` // minutes
	Pb1km         *string   `json:"pb1km,omitempty"`
	Pb5km         *string   `json:"pb5km,omitempty"`
	Pb10km        *string   `json:"pb10km,omitempty"`
	Strides       int       `json:"strides"` // monnaie dépensable, jamais négative
	RunnerLevel   int       `json:"runnerLevel"`
	LastActivity  time.Time `json:"lastActivity"`
}
