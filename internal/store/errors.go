package store

import (
	"errors"
)

// ErrNotFound l'entité demandée n'existe pas en base
var ErrNotFound = errors.New("not found")
