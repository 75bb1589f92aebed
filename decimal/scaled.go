package decimal

import (
	"strings"

	sd "github.com/shopspring/decimal"

	"github.com/calebcase/scaled/scale"
)

// Scaled is anything that reports a magnitude together with the scale and
// config it is expressed in. New, the arithmetic and the comparisons treat
// every Scaled the same way they treat a Value.
type Scaled interface {
	Magnitude() sd.Decimal
	Scale() scale.Scale
	Config() Config
	String() string
	ToScale(s scale.Scale) (Value, error)
}

// IsScaled returns true if x is a non-nil Scaled.
func IsScaled(x interface{}) bool {
	_, ok := asScaled(x)

	return ok
}

// ToSmallestUnitString converts "<number>" or "<number> <scale>" to a base
// 10 string in the smallest scale. The scale defaults to scale.Smallest and
// may be any name accepted by scale.Parse.
//
//  ToSmallestUnitString("1 coins", WithDecimals(2)) // "100"
func ToSmallestUnitString(input string, opts ...Option) (s string, err error) {
	fields := strings.Fields(input)

	var sc scale.Scale

	switch len(fields) {
	case 1:
		sc = scale.Smallest
	case 2:
		sc, err = scale.Parse(fields[1])
		if err != nil {
			return "", err
		}
	default:
		return "", ParseError.New("expected \"<number> [scale]\": %q", input)
	}

	opts = append(opts[:len(opts):len(opts)], WithScale(sc))

	v, err := New(fields[0], opts...)
	if err != nil {
		return "", err
	}

	return v.ToSmallestScale().String(), nil
}
