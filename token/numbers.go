package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is the value of a numeric atom.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

var multipliers = map[string]int64{
	"k":  1000,
	"m":  1000 * 1000,
	"g":  1000 * 1000 * 1000,
	"kb": 1 << 10,
	"mb": 1 << 20,
	"gb": 1 << 30,
}

// ParseNumber decodes a numeric atom: an optionally signed decimal
// integer, a 0x prefixed hex integer or a real, followed by an optional
// multiplier k, m or g (powers of 1000) or kb, mb or gb (powers of
// 1024). ok is false if s is not numeric. A numeric s whose value does
// not fit returns an error matching ErrNumber.
func ParseNumber(s string) (n Number, ok bool, err error) {
	body, mult := s, int64(1)
	if i := numberEnd(s); i < len(s) {
		m, found := multipliers[strings.ToLower(s[i:])]
		if !found {
			return Number{}, false, nil
		}
		body, mult = s[:i], m
	}
	if body == "" || body == "-" || body == "+" {
		return Number{}, false, nil
	}
	if isHex(body) {
		v, err := strconv.ParseInt(body, 0, 64)
		if err != nil {
			return Number{}, true, fmt.Errorf("%w: %q: %w", ErrNumber, s, err)
		}
		return scaleInt(s, v, mult)
	}
	if !strings.ContainsAny(body, ".eE") {
		v, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return Number{}, true, fmt.Errorf("%w: %q: %w", ErrNumber, s, err)
		}
		return scaleInt(s, v, mult)
	}
	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return Number{}, true, fmt.Errorf("%w: %q: %w", ErrNumber, s, err)
	}
	return Number{Float: f * float64(mult), IsFloat: true}, true, nil
}

func scaleInt(s string, v, mult int64) (Number, bool, error) {
	if mult != 1 && (v > math.MaxInt64/mult || v < math.MinInt64/mult) {
		return Number{}, true, fmt.Errorf("%w: %q overflows", ErrNumber, s)
	}
	return Number{Int: v * mult}, true, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for _, c := range []byte(s[2:]) {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// numberEnd returns the length of the numeric prefix of s.
func numberEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	if len(s) > i+1 && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		i += 2
		start := i
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
		if i == start {
			return 0
		}
		return i
	}
	start := i
	for i < len(s) && asciiDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && asciiDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		if j < len(s) && asciiDigit(s[j]) {
			for j < len(s) && asciiDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}
