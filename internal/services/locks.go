package services

import (
	"sync"
)

// UserLocks verrous exclusifs par utilisateur. Les mutations des deux
// registres (stats et abonnements) d'un même utilisateur doivent se faire
// sous le même verrou : la lecture du solde et les écritures qui suivent ne
// doivent jamais s'entrelacer avec un autre achat ou une autre course du
// même utilisateur (course critique check-then-act).
type UserLocks struct {
	locks sync.Map // userID -> *sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

func (l *UserLocks) get(userID string) *sync.Mutex {
	mu, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Lock prend le verrou exclusif de l'utilisateur
func (l *UserLocks) Lock(userID string) {
	l.get(userID).Lock()
}

// Unlock relâche le verrou de l'utilisateur
func (l *UserLocks) Unlock(userID string) {
	l.get(userID).Unlock()
}
