package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rePrice = regexp.MustCompile(`^\$?\s*(\d+(?:\.\d+)?)\s*$`)

// NormalizePrice renders "$15.00" as "15" and "12.9" as "12.90". Input that
// is not a plain amount is returned trimmed, otherwise untouched.
func NormalizePrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	m := rePrice.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsInf(num, 0) {
		return raw
	}
	// round to cents before the whole-number check so "12.999" and "13.00" agree
	cents := math.Round(num*100) / 100
	if cents == math.Trunc(cents) {
		return strconv.FormatFloat(cents, 'f', 0, 64)
	}
	return strconv.FormatFloat(cents, 'f', 2, 64)
}
