package encode

import (
	"strings"

	"github.com/nihil-go/nihil/ucl"
)

// MustString encodes obj, JSON unless opts say otherwise, and panics on
// error.
func MustString(obj ucl.Object, opts ...EncodeOption) string {
	b := &strings.Builder{}
	if err := Encode(obj, b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}
