package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a user-entered dollar amount. Empty or unparseable input
// becomes 0 so a half-filled form still quotes; it is never an error.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	// ParseFloat also accepts "NaN" and "Inf"; those are not amounts
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RoundCents converts a dollar amount to integer cents, rounding halves away
// from zero (0.125 -> 13 cents). Non-finite amounts and amounts whose cents do
// not fit in an int64 coerce to 0, same as any other unusable input.
func RoundCents(amount float64) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	if amount < 0 {
		return -RoundCents(-amount)
	}
	cents := amount*100 + 0.5
	if cents >= math.MaxInt64 {
		return 0
	}
	return int64(cents)
}

// FormatCents renders integer cents as a plain 2-decimal dollar string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return FormatCents(RoundCents(amount))
}
