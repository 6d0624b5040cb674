// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Repr returns the shortest string that round-trips to f, laid out the way
// most calculators and Python print floats: "100.0", "0.1", "1e+16",
// "1e-05". Whole numbers keep a ".0" suffix.
func Repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if exp := decimalExponent(f); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the base-10 exponent of f's shortest
// scientific form.
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(math.Abs(f), 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return 0
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0
	}
	return exp
}

// FormatNumber renders f for the display: Repr without the trailing ".0"
// of whole numbers. Negative zero is shown as "0".
func FormatNumber(f float64) string {
	if f == 0 {
		f = 0
	}
	return strings.TrimSuffix(Repr(f), ".0")
}

// parseEntry parses an entry string. A dangling point ("3.") and a bare
// sign are accepted.
func parseEntry(s string) (float64, error) {
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseInteger parses an entry typed without a point as an exact integer.
// Entries with a point or an exponent report false.
func parseInteger(s string) (*big.Int, bool) {
	if strings.Contains(s, ".") {
		return nil, false
	}
	if s == "" || s == "-" {
		return new(big.Int), true
	}
	return new(big.Int).SetString(s, 10)
}
