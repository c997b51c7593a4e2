package token

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{"0", Number{Int: 0}},
		{"42", Number{Int: 42}},
		{"-7", Number{Int: -7}},
		{"+7", Number{Int: 7}},
		{"0x1F", Number{Int: 31}},
		{"42.5", Number{Float: 42.5, IsFloat: true}},
		{"1e3", Number{Float: 1000, IsFloat: true}},
		{"2k", Number{Int: 2000}},
		{"2kb", Number{Int: 2048}},
		{"3M", Number{Int: 3000000}},
		{"1gb", Number{Int: 1 << 30}},
		{"1.5k", Number{Float: 1500, IsFloat: true}},
	}
	for _, tt := range tests {
		got, ok, err := ParseNumber(tt.in)
		if err != nil || !ok || got != tt.want {
			t.Errorf("ParseNumber(%q) = %+v, %v, %v", tt.in, got, ok, err)
		}
	}
	for _, s := range []string{"", "abc", "10s", "1.2.3", "-", "k", "0x", "1z"} {
		if _, ok, err := ParseNumber(s); ok || err != nil {
			t.Errorf("ParseNumber(%q) numeric: %v %v", s, ok, err)
		}
	}
	if _, ok, err := ParseNumber("99999999999999999999"); !ok || !errors.Is(err, ErrNumber) {
		t.Errorf("overflow: %v %v", ok, err)
	}
	if _, ok, err := ParseNumber("9223372036854775807k"); !ok || !errors.Is(err, ErrNumber) {
		t.Errorf("multiplier overflow: %v %v", ok, err)
	}
}
