package schema

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat wraps math/big.Rat so that numeric keywords (minimum, maximum,
// multipleOf, ...) compare JSON numbers exactly instead of through
// float64, which would let large integers or awkward decimals like 0.1
// silently round away a multipleOf boundary.
//
// No third-party library in the corpus does exact rational JSON-number
// arithmetic; math/big is the standard answer and is what
// kaptinlin-jsonschema reaches for too (see rat.go there).
type Rat struct {
	*big.Rat
}

// NewRat converts a decoded JSON number (float64, int, or a numeric
// string) into a Rat. It returns nil if the value cannot be represented.
func NewRat(value any) *Rat {
	r, err := toBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{r}
}

func toBigRat(value any) (*big.Rat, error) {
	var str string
	switch v := value.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedRatValue
	}
	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, ErrUnsupportedRatValue
	}
	return r, nil
}

// IsMultipleOf reports whether r is an integer multiple of divisor.
func (r *Rat) IsMultipleOf(divisor *Rat) bool {
	if r == nil || divisor == nil || divisor.Sign() == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(r.Rat, divisor.Rat)
	return quotient.IsInt()
}

// String renders the decimal representation with at most 20 fractional
// digits, trimming trailing zeros. A value with no finite decimal
// expansion (such as 1/3) is rounded to 20 digits, not shown as a
// fraction.
func (r *Rat) String() string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(20)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" || dec == "-" {
		return "0"
	}
	return dec
}
