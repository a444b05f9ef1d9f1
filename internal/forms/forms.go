// Package forms holds the submit-time validation for every console form.
// Each form is parsed from posted values into raw strings, so a failed
// submission can re-render with the user's input intact, and only coerced
// into a typed payload once validation passes.
package forms

import (
	"net/url"
	"strconv"
	"strings"
)

// Errors maps a field name to its validation message. An empty map means
// the form is valid.
type Errors map[string]string

// Valid reports whether validation produced no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

func parseNonNegativeInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func parseNonNegativeFloat(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

func trimmed(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}
