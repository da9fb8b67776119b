package utils

import "time"

const isoDateLayout = "2006-01-02"

// TodayISO returns the server's local calendar day as YYYY-MM-DD. Range
// defaults are computed against local time on purpose: this is a
// single-user, single-timezone product.
func TodayISO() string {
	return time.Now().Format(isoDateLayout)
}

// ShiftISO adds deltaDays to a YYYY-MM-DD date.
func ShiftISO(isoDate string, deltaDays int) string {
	t, err := time.ParseInLocation(isoDateLayout, isoDate, time.Local)
	if err != nil {
		return isoDate
	}
	return t.AddDate(0, 0, deltaDays).Format(isoDateLayout)
}

// ValidISODate reports whether s is a well-formed YYYY-MM-DD date.
func ValidISODate(s string) bool {
	_, err := time.Parse(isoDateLayout, s)
	return err == nil && len(s) == len(isoDateLayout)
}
