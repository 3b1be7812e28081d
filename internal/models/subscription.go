package model

import (
	"time"
)

type SubscriptionType string

const (
	SubscriptionRecreational SubscriptionType = "RECREATIONAL"
	SubscriptionCompetitive  SubscriptionType = "COMPETITIVE"
	SubscriptionElite        SubscriptionType = "ELITE"
)

type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "ACTIVE"
	SubscriptionTerminated SubscriptionStatus = "TERMINATED"
)

type SubscriptionPeriod string

const (
	PeriodMonthly SubscriptionPeriod = "MONTHLY"
	PeriodYearly  SubscriptionPeriod = "YEARLY"
)

// Tarifs des abonnements, en strides
var subscriptionPrices = map[SubscriptionType]int{
	SubscriptionRecreational: 0,
	SubscriptionCompetitive:  6000,
	SubscriptionElite:        15000,
}

// SubscriptionPrice retourne le prix d'un type d'abonnement. ok=false
// si le type est inconnu.
func SubscriptionPrice(t SubscriptionType) (int, bool) {
	price, ok := subscriptionPrices[t]
	return price, ok
}

var subscriptionLabels = map[SubscriptionType]string{
	SubscriptionRecreational: "Recreational",
	SubscriptionCompetitive:  "Competitive",
	SubscriptionElite:        "Elite",
}

// DisplayName libellé lisible d'un type d'abonnement
func (t SubscriptionType) DisplayName() string {
	if label, ok := subscriptionLabels[t]; ok {
		return label
	}
	return string(t)
}

// Subscription entrée de l'historique d'abonnements d'un utilisateur.
// Au plus une entrée ACTIVE par utilisateur, l'historique est immuable
// une fois une entrée remplacée.
type Subscription struct {
	ID             string             `json:"id,omitempty"`
	UserID         string             `json:"userId"`
	Status         SubscriptionStatus `json:"status"`
	Type           SubscriptionType   `json:"type"`
	Period         SubscriptionPeriod `json:"period"`
	Price          int                `json:"price"` // en strides
	RenewalAllowed bool               `json:"renewalAllowed"`
	CreatedOn      time.Time          `json:"createdOn"`
	ExpiryOn       time.Time          `json:"expiryOn"`
}
