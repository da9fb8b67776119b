package glucose

import (
	"testing"

	"github.com/glucoach/glucoach/internal/domain"
)

func TestClassifyFasting(t *testing.T) {
	tests := []struct {
		mgdl     int
		expected RiskBand
	}{
		{40, RiskLow},
		{69, RiskLow},         // 3.8 mmol/L
		{70, RiskNormal},      // exactly 3.9, inclusive lower bound
		{90, RiskNormal},      // 5.0
		{99, RiskNormal},      // exactly 5.5, inclusive upper bound
		{100, RiskBorderline}, // 5.6
		{124, RiskBorderline}, // 6.9
		{125, RiskBorderline}, // 6.944 rounds down to 6.9
		{126, RiskHigh},       // 7.0
		{200, RiskHigh},
	}

	for _, tt := range tests {
		if got := Classify(tt.mgdl, domain.MealStateFasting); got != tt.expected {
			t.Errorf("Classify(%d, Fasting) = %s, want %s", tt.mgdl, got, tt.expected)
		}
	}
}

func TestClassifyPostMeal(t *testing.T) {
	tests := []struct {
		mgdl     int
		expected RiskBand
	}{
		{40, RiskLow},
		{69, RiskLow},
		{70, RiskNormal},      // exactly 3.9
		{139, RiskNormal},     // 7.7
		{140, RiskBorderline}, // exactly 7.8, strict normal upper bound
		{198, RiskBorderline}, // exactly 11.0, inclusive borderline bound
		{199, RiskHigh},       // 11.1
		{300, RiskHigh},
	}

	for _, tt := range tests {
		if got := Classify(tt.mgdl, domain.MealStatePostMeal); got != tt.expected {
			t.Errorf("Classify(%d, Post-meal) = %s, want %s", tt.mgdl, got, tt.expected)
		}
	}
}

// Anything that is not literally Fasting takes the post-meal thresholds.
func TestClassifyUnknownMealStateUsesPostMealTable(t *testing.T) {
	for _, state := range []domain.MealState{"", "post-meal", "Snack", "whatever"} {
		if got := Classify(140, state); got != RiskBorderline {
			t.Errorf("Classify(140, %q) = %s, want %s", state, got, RiskBorderline)
		}
	}
}
