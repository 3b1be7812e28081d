package utils

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestUserLikedFromScan(t *testing.T) {
	tests := []struct {
		name    string
		liked   sql.NullBool
		err     error
		want    bool
		wantErr bool
	}{
		{"pas de like, aucune ligne", sql.NullBool{}, pgx.ErrNoRows, false, false},
		{"aucune ligne, erreur enveloppée", sql.NullBool{}, fmt.Errorf("scan: %w", pgx.ErrNoRows), false, false},
		{"like présent", sql.NullBool{Bool: true, Valid: true}, nil, true, false},
		{"erreur de requête", sql.NullBool{}, errors.New("connection refused"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := userLikedFromScan(tt.liked, tt.err)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("userLikedFromScan = %v, want %v", got, tt.want)
			}
		})
	}
}
