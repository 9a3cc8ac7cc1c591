package typecodec

import (
	"reflect"

	"shapecheck/internal/types"
)

// Equivalent reports whether a and b have the same wire form. Variants
// without a wire form are never equivalent.
func Equivalent(a, b *types.Type) bool {
	ra, err := Encode(a)
	if err != nil {
		return false
	}
	rb, err := Encode(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(ra, rb)
}
