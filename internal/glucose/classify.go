package glucose

import "github.com/glucoach/glucoach/internal/domain"

// RiskBand represents the clinical range classification of a reading.
type RiskBand string

const (
	RiskLow        RiskBand = "low"
	RiskNormal     RiskBand = "normal"
	RiskBorderline RiskBand = "borderline"
	RiskHigh       RiskBand = "high"
)

// Classify maps a stored mg/dL value and its meal context to a risk band.
// Thresholds are defined in mmol/L, so the value is converted (and rounded
// to one decimal) first. Any meal state other than Fasting uses the
// post-meal table.
//
// Fasting:   <3.9 low / 3.9–5.5 normal / 5.6–6.9 borderline / ≥7.0 high
// Post-meal: <3.9 low / <7.8 normal / 7.8–11.0 borderline / ≥11.1 high
func Classify(mgdl int, mealState domain.MealState) RiskBand {
	mmol := ToDisplay(mgdl)
	if mealState == domain.MealStateFasting {
		switch {
		case mmol < 3.9:
			return RiskLow
		case mmol <= 5.5:
			return RiskNormal
		case mmol <= 6.9:
			return RiskBorderline
		default:
			return RiskHigh
		}
	}
	switch {
	case mmol < 3.9:
		return RiskLow
	case mmol < 7.8:
		return RiskNormal
	case mmol <= 11.0:
		return RiskBorderline
	default:
		return RiskHigh
	}
}
