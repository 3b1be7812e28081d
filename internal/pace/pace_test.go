package pace_test

import (
	"errors"
	"testing"

	"github.com/Gergov8/runnalog/internal/pace"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name         string
		totalSeconds int64
		distanceKm   float64
		want         string
	}{
		{"10km en 50min", 3000, 10.0, "5:00"},
		{"5km en 25min", 1500, 5.0, "5:00"},
		{"allure tronquée pas arrondie", 299, 1.0, "4:59"},
		{"secondes sur deux chiffres", 305, 1.0, "5:05"},
		{"minutes non paddées", 3599, 10.0, "5:59"},
		{"distance fractionnaire", 1266, 4.2, "5:01"},
		{"course très lente", 7200, 10.0, "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pace.Format(tt.totalSeconds, tt.distanceKm)
			if got != tt.want {
				t.Errorf("Format(%d, %v) = %q, want %q", tt.totalSeconds, tt.distanceKm, got, tt.want)
			}
		})
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		pace string
		want int
	}{
		{"5:00", 300},
		{"4:59", 299},
		{"12:30", 750},
		{"0:45", 45},
	}

	for _, tt := range tests {
		got, err := pace.Seconds(tt.pace)
		if err != nil {
			t.Fatalf("Seconds(%q) unexpected error: %v", tt.pace, err)
		}
		if got != tt.want {
			t.Errorf("Seconds(%q) = %d, want %d", tt.pace, got, tt.want)
		}
	}
}

func TestSecondsMalformed(t *testing.T) {
	for _, bad := range []string{"", "5", "5:00:00", "a:bc", "5:xx", "fast"} {
		_, err := pace.Seconds(bad)
		if !errors.Is(err, pace.ErrMalformedPace) {
			t.Errorf("Seconds(%q): expected ErrMalformedPace, got %v", bad, err)
		}
	}
}

// Loi d'aller-retour : Seconds(Format(s, d)) == floor(s/d)
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		totalSeconds int64
		distanceKm   float64
	}{
		{3000, 10.0},
		{1500, 5.0},
		{299, 1.0},
		{1266, 4.2},
		{3661, 7.5},
		{100, 0.5},
	}

	for _, c := range cases {
		got, err := pace.Seconds(pace.Format(c.totalSeconds, c.distanceKm))
		if err != nil {
			t.Fatalf("round trip (%d, %v): %v", c.totalSeconds, c.distanceKm, err)
		}
		want := int(float64(c.totalSeconds) / c.distanceKm)
		if got != want {
			t.Errorf("round trip (%d, %v) = %d, want %d", c.totalSeconds, c.distanceKm, got, want)
		}
	}
}

func TestFaster(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"4:30", "5:00", true},
		{"5:00", "4:30", false},
		{"5:00", "5:00", false}, // égal n'est pas plus rapide
	}

	for _, tt := range tests {
		got, err := pace.Faster(tt.a, tt.b)
		if err != nil {
			t.Fatalf("Faster(%q, %q): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Faster(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
