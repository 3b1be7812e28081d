package model

// LeaderboardEntry entrée du classement quotidien "km courus aujourd'hui".
// La liste est reconstruite entièrement à chaque cycle d'agrégation,
// jamais modifiée en place.
type LeaderboardEntry struct {
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	KmToday  float64 `json:"kmToday"`
}

// DailyKm résultat brut de l'agrégation SQL par utilisateur
type DailyKm struct {
	UserID string
	Km     float64
}
