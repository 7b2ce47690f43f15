// Package timeunit converts user-facing time values between minutes,
// hours and days. Hours are the canonical unit everywhere in the service.
package timeunit

import (
	"fmt"
	"strings"
)

// Unit is a user-selectable time unit.
type Unit string

const (
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
)

// Parse normalizes a unit string. It accepts any casing.
func Parse(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case Minutes:
		return Minutes, nil
	case Hours:
		return Hours, nil
	case Days:
		return Days, nil
	}
	return "", fmt.Errorf("unknown time unit %q", s)
}

// ToHours converts value expressed in unit to hours.
func ToHours(value float64, unit Unit) float64 {
	switch unit {
	case Minutes:
		return value / 60
	case Days:
		return value * 24
	default:
		return value
	}
}

// FromHours converts a value in hours back to the given unit.
func FromHours(hours float64, unit Unit) float64 {
	switch unit {
	case Minutes:
		return hours * 60
	case Days:
		return hours / 24
	default:
		return hours
	}
}
