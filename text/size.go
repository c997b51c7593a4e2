package text

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	ErrEmptyString   = errors.New("empty string")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrOutOfRange    = errors.New("result out of range")
)

var sizeUnits = map[byte]uint64{
	'k': 1 << 10,
	'm': 1 << 20,
	'g': 1 << 30,
	't': 1 << 40,
	'p': 1 << 50,
}

// ParseSize parses a decimal number with an optional single-letter
// binary multiplier (k, m, g, t, p) into T.
func ParseSize[T constraints.Integer](s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyString
	}
	i := 0
	var n uint64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := uint64(s[i] - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
		n = n*10 + d
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	switch unit := s[i:]; len(unit) {
	case 0:
	case 1:
		mult, ok := sizeUnits[unit[0]]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
		}
		if n > math.MaxUint64/mult {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
		n *= mult
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	v := T(n)
	if v < 0 || uint64(v) != n {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return v, nil
}
