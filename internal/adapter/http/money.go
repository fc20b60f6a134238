package httpadapter

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MinorUnitsPerMajor is the fixed multiplier between a displayed amount and
// the integer minor units stored in the ledger.
const MinorUnitsPerMajor = 100_000_000

const minorDigits = 8

var errBadAmount = errors.New("amount must be a non-negative decimal number")

// ParseMajorUnits converts a decimal string in major units into minor units.
// Digits beyond the eighth decimal place are truncated, never rounded up.
func ParseMajorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, errBadAmount
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, errBadAmount
	}
	if len(frac) > minorDigits {
		frac = frac[:minorDigits]
	}
	frac += strings.Repeat("0", minorDigits-len(frac))

	var w int64
	if whole != "" {
		var err error
		w, err = strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, errBadAmount
		}
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errBadAmount
	}
	if w > (math.MaxInt64-f)/MinorUnitsPerMajor {
		return 0, errors.New("amount is too large")
	}
	return w*MinorUnitsPerMajor + f, nil
}

// FormatMajorUnits renders minor units as a decimal string in major units
// without trailing zeros.
func FormatMajorUnits(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	whole := strconv.FormatInt(minor/MinorUnitsPerMajor, 10)
	frac := strings.TrimRight(strconv.FormatInt(minor%MinorUnitsPerMajor+MinorUnitsPerMajor, 10)[1:], "0")
	if frac == "" {
		return sign + whole
	}
	return sign + whole + "." + frac
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
