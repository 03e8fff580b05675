package project

import (
	"regexp"
	"strconv"
	"strings"
)

// coordPattern matches a decimal pair in parentheses, e.g. "(11.55, 124.73)".
// The first capture is latitude, the second longitude.
var coordPattern = regexp.MustCompile(`\(([-+]?[0-9]*\.?[0-9]+)\s*,\s*([-+]?[0-9]*\.?[0-9]+)\)`)

// costPattern accepts plain unsigned decimals only. Forms ParseFloat
// would take anyway (exponents, hex floats, NaN, Inf, signs) are not
// valid cost text and coerce to zero like any other malformed value.
var costPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseCoordinates extracts a (latitude, longitude) pair from a raw
// location string. ok is false when no coordinate pair is present; that
// is expected for free-text locations and is not an error.
func ParseCoordinates(location string) (lat, lon float64, ok bool) {
	m := coordPattern.FindStringSubmatch(location)
	if m == nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// ParseCost converts a display cost string like "₱1,234,567.00" to a
// number. Thousands separators and the peso sign are stripped before
// parsing. Malformed or negative values coerce to zero; the record is
// kept either way.
func ParseCost(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₱", "")
	s = strings.TrimSpace(s)

	if !costPattern.MatchString(s) {
		return 0
	}
	cost, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return cost
}
