package domain

// TimeSlot is the part of day a reading was taken.
type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "Morning"
	TimeSlotNoon    TimeSlot = "Noon"
	TimeSlotEvening TimeSlot = "Evening"
)

// Valid reports whether the slot is one of the known values.
func (s TimeSlot) Valid() bool {
	switch s {
	case TimeSlotMorning, TimeSlotNoon, TimeSlotEvening:
		return true
	}
	return false
}

// MealState is whether a reading was taken fasting or after eating.
type MealState string

const (
	MealStateFasting  MealState = "Fasting"
	MealStatePostMeal MealState = "Post-meal"
)

// Valid reports whether the meal state is one of the known values.
func (m MealState) Valid() bool {
	switch m {
	case MealStateFasting, MealStatePostMeal:
		return true
	}
	return false
}

// Reading represents a single blood glucose measurement in mg/dL.
// The date is a caller-supplied calendar day (YYYY-MM-DD), not a server
// timestamp, so entries can be backdated. Multiple readings per slot per
// day are allowed.
type Reading struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"not null;index" json:"date"`
	TimeSlot  TimeSlot  `gorm:"not null" json:"timeSlot"`
	Value     int       `gorm:"not null" json:"value"`
	Note      string    `json:"note"`
	MealState MealState `json:"mealState"`
}

// NewReading carries raw append input before validation.
type NewReading struct {
	Date      string
	TimeSlot  string
	Value     float64
	Note      string
	MealState string
}

// Profile is the singleton user profile row (id is always 1).
type Profile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Goals     string `json:"goals"`
	Diet      string `json:"diet"`
	Exercise  string `json:"exercise"`
	TargetMin int    `json:"target_min"`
	TargetMax int    `json:"target_max"`
}

// DefaultProfile returns the hardcoded profile defaults. A profile write
// with omitted fields falls back to these values, never to previously
// stored ones.
func DefaultProfile() Profile {
	return Profile{
		Goals:     "",
		Diet:      "",
		Exercise:  "",
		TargetMin: 80,
		TargetMax: 140,
	}
}

// Spike is the largest positive difference between chronologically
// adjacent readings in a queried range. From and To are nil when no
// adjacent pair had a positive delta.
type Spike struct {
	Delta int      `json:"delta"`
	From  *Reading `json:"from"`
	To    *Reading `json:"to"`
}

// WeeklySummary is the raw trailing-7-day aggregate.
type WeeklySummary struct {
	Avg   int       `json:"avg"`
	Items []Reading `json:"items"`
	Spike Spike     `json:"spike"`
}

// WeeklyReport is a weekly summary with AI coaching text attached.
type WeeklyReport struct {
	Avg     int    `json:"avg"`
	Spike   Spike  `json:"spike"`
	Message string `json:"message"`
}

// TipRequest is the input for a per-entry coaching tip.
type TipRequest struct {
	Value     int
	TimeSlot  TimeSlot
	MealState MealState
}
