package glucose

import "math"

// MgdlPerMmol is the conversion factor between the stored mg/dL integer
// values and the mmol/L values shown to the user.
const MgdlPerMmol = 18

// ToDisplay converts a stored mg/dL value to mmol/L, rounded to one
// decimal place.
func ToDisplay(mgdl int) float64 {
	return math.Round(float64(mgdl)/MgdlPerMmol*10) / 10
}

// ToStorage converts a mmol/L value to mg/dL, rounded to the nearest
// integer. Not an exact inverse of ToDisplay: both directions round, so
// composing them can drift by one mg/dL.
func ToStorage(mmol float64) int {
	return int(math.Round(mmol * MgdlPerMmol))
}
