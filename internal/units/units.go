// Package units converts lengths between metric and imperial units.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// CentimetersPerInch is the exact definition of the international
// inch.
const CentimetersPerInch = 2.54

// CMToInches converts centimeters to inches.
func CMToInches(cm float64) float64 {
	return cm / CentimetersPerInch
}

// ParseLength reads a decimal length from console input.
func ParseLength(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: %w", input, err)
	}
	return v, nil
}
