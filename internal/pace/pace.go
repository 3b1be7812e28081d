// Package pace convertit entre (durée, distance) et l'allure canonique
// "M:SS" min/km utilisée partout dans l'application (feed, records, stats).
package pace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPace est retournée quand une allure stockée ne se découpe pas
// en exactement deux parties numériques "M:SS". Une allure corrompue en base
// est une erreur d'intégrité : elle ne doit jamais être remplacée par une
// valeur par défaut.
var ErrMalformedPace = errors.New("malformed pace string")

// Format calcule l'allure d'une course. Les secondes par km sont tronquées
// (pas arrondies), les secondes sont sur deux chiffres, les minutes non.
// L'appelant garantit distanceKm > 0 (validée en amont).
func Format(totalSeconds int64, distanceKm float64) string {
	secPerKm := int64(float64(totalSeconds) / distanceKm)
	minutes := secPerKm / 60
	seconds := secPerKm % 60

	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Seconds parse une allure "M:SS" et retourne le total en secondes par km.
func Seconds(paceString string) (int, error) {
	parts := strings.Split(paceString, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPace, paceString)
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPace, paceString)
	}

	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPace, paceString)
	}

	return minutes*60 + seconds, nil
}

// Faster vrai si a est strictement plus rapide que b. Des allures égales ne
// sont pas une amélioration.
func Faster(a, b string) (bool, error) {
	secA, err := Seconds(a)
	if err != nil {
		return false, err
	}
	secB, err := Seconds(b)
	if err != nil {
		return false, err
	}
	return secA < secB, nil
}
