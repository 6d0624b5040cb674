// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"math"
	"testing"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{100, "100.0"},
		{1234567, "1234567.0"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{-3.75, "-3.75"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e16, "1.5e+16"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		if got := Repr(tt.in); got != tt.want {
			t.Errorf("Repr(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6.0 / 2.0, "3"},
		{7.0 / 2.0, "3.5"},
		{math.Copysign(0, -1), "0"},
		{-15, "-15"},
		{1e17, "1e+17"},
		{0.5, "0.5"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"3.", 3},
		{"-2.5", -2.5},
		{"-", 0},
		{"1e+17", 1e17},
	}

	for _, tt := range tests {
		got, err := parseEntry(tt.in)
		if err != nil {
			t.Fatalf("parseEntry(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseEntry(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0", "0", true},
		{"-", "0", true},
		{"-42", "-42", true},
		{"9007199254740993", "9007199254740993", true},
		{"3.", "", false},
		{"0.5", "", false},
		{"1e+17", "", false},
	}

	for _, tt := range tests {
		got, ok := parseInteger(tt.in)
		if ok != tt.ok {
			t.Fatalf("parseInteger(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got.String() != tt.want {
			t.Errorf("parseInteger(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
