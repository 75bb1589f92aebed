package decimal

import (
	"strings"

	"github.com/calebcase/scaled/integer"
)

// Text returns v in base 2, 10 or 16.
//
// Base 10 is plain decimal notation. Base 16 is 0x prefixed lowercase
// hexadecimal. Base 2 is unprefixed binary. Bases 2 and 16 require v to be
// an integer.
func (v Value) Text(base int) (s string, err error) {
	switch base {
	case 10:
		return v.magnitude.String(), nil
	case 2, 16:
		if !v.magnitude.IsInteger() {
			return "", FractionalError.New("%s in base %d", v.magnitude, base)
		}

		s, err = integer.Text(v.magnitude.BigInt(), base)
		if err != nil {
			return "", Error.Wrap(err)
		}

		return s, nil
	}

	return "", UnsupportedBaseError.New("%d", base)
}

// String implements fmt.Stringer. It is Text(10).
func (v Value) String() string {
	return v.magnitude.String()
}

// ToFixed returns v in base 10 with exactly places digits after the decimal
// point, rounded half away from zero.
func (v Value) ToFixed(places int32) (s string, err error) {
	if places < 0 {
		return "", RangeError.New("negative places: %d", places)
	}

	return v.magnitude.StringFixed(places), nil
}

// ToNumber returns the nearest float64 to v. Large or very precise values
// lose precision.
func (v Value) ToNumber() float64 {
	return v.magnitude.InexactFloat64()
}

// DecimalCount returns the number of digits after the decimal point in
// String. It is 0 for integers.
func (v Value) DecimalCount() int {
	s := v.String()

	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}

	return len(s) - i - 1
}
