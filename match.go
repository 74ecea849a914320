package coinmatch

import (
	"math"

	"github.com/DE-labtory/coinmatch/option"
)

// PlusOne increments a present value and propagates absence.
// Incrementing math.MaxInt32 has no representable result and yields None.
func PlusOne(x option.Option[int32]) option.Option[int32] {
	return option.AndThen(x, func(i int32) option.Option[int32] {
		if i == math.MaxInt32 {
			return option.None[int32]()
		}
		return option.Some(i + 1)
	})
}

var oddNames = map[uint8]string{
	1: "one",
	3: "three",
	5: "five",
	7: "seven",
}

// NameOf spells out 1, 3, 5 and 7. Every other value falls through to None.
func NameOf(n uint8) option.Option[string] {
	if name, ok := oddNames[n]; ok {
		return option.Some(name)
	}
	return option.None[string]()
}

// IsThree reports whether x holds exactly 3.
func IsThree(x option.Option[uint8]) bool {
	v, ok := x.Unwrap()
	return ok && v == 3
}
