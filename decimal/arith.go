package decimal

import (
	"github.com/calebcase/oops"
	sd "github.com/shopspring/decimal"

	"github.com/calebcase/scaled/scale"
)

// operand returns the magnitude of x in v's scale.
//
// Scaled operands are converted using their own config. Anything else is
// coerced as is.
func (v Value) operand(x interface{}) (d sd.Decimal, err error) {
	if s, ok := asScaled(x); ok {
		if !s.Scale().Valid() {
			return d, scale.UnrecognizedError.New("operand %d", uint8(s.Scale()))
		}

		o, err := fromScaled(s).ToScale(v.scale)
		if err != nil {
			return d, err
		}

		return o.magnitude, nil
	}

	return coerce(x)
}

// Add returns v + x.
func (v Value) Add(x interface{}) (r Value, err error) {
	d, err := v.operand(x)
	if err != nil {
		return r, err
	}

	return v.with(v.magnitude.Add(d)), nil
}

// Sub returns v - x.
func (v Value) Sub(x interface{}) (r Value, err error) {
	d, err := v.operand(x)
	if err != nil {
		return r, err
	}

	return v.with(v.magnitude.Sub(d)), nil
}

// Mul returns v * x.
func (v Value) Mul(x interface{}) (r Value, err error) {
	d, err := v.operand(x)
	if err != nil {
		return r, err
	}

	return v.with(v.magnitude.Mul(d)), nil
}

// Div returns v / x.
//
// The quotient keeps at least Config.Precision significant digits and at
// least as many decimal places as v has relative to x, so a quotient that
// terminates there is exact. Otherwise it is rounded half away from zero.
func (v Value) Div(x interface{}) (r Value, err error) {
	d, err := v.operand(x)
	if err != nil {
		return r, err
	}

	if d.IsZero() {
		return r, oops.Trace(ErrDivisionByZero)
	}

	return v.with(quo(v.magnitude, d, v.config.precision())), nil
}

func quo(a, b sd.Decimal, precision int32) sd.Decimal {
	// The leading digit of a/b is at 10^lead or 10^(lead-1).
	lead := int32(a.NumDigits()) + a.Exponent() - int32(b.NumDigits()) - b.Exponent()

	places := precision - lead
	if p := b.Exponent() - a.Exponent(); p > places {
		places = p
	}

	if places < 0 {
		places = 0
	}

	return a.DivRound(b, places)
}

// Round returns v rounded half away from zero to an integer.
func (v Value) Round() Value {
	return v.with(v.magnitude.Round(0))
}

// RoundPlaces returns v rounded half away from zero to the given number of
// decimal places. Negative places round to the left of the decimal point.
func (v Value) RoundPlaces(places int32) Value {
	return v.with(v.magnitude.Round(places))
}

// Neg returns -v.
func (v Value) Neg() Value {
	return v.with(v.magnitude.Neg())
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return v.with(v.magnitude.Abs())
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	return v.magnitude.Sign()
}

// IsZero returns true if v is zero.
func (v Value) IsZero() bool {
	return v.magnitude.IsZero()
}

// IsInteger returns true if v has no fractional part in its own scale.
func (v Value) IsInteger() bool {
	return v.magnitude.IsInteger()
}

// Cmp compares v and x and returns -1, 0 or +1.
func (v Value) Cmp(x interface{}) (c int, err error) {
	d, err := v.operand(x)
	if err != nil {
		return 0, err
	}

	return v.magnitude.Cmp(d), nil
}

// Gt returns true if v > x.
func (v Value) Gt(x interface{}) (ok bool, err error) {
	c, err := v.Cmp(x)

	return err == nil && c > 0, err
}

// Gte returns true if v >= x.
func (v Value) Gte(x interface{}) (ok bool, err error) {
	c, err := v.Cmp(x)

	return err == nil && c >= 0, err
}

// Lt returns true if v < x.
func (v Value) Lt(x interface{}) (ok bool, err error) {
	c, err := v.Cmp(x)

	return err == nil && c < 0, err
}

// Lte returns true if v <= x.
func (v Value) Lte(x interface{}) (ok bool, err error) {
	c, err := v.Cmp(x)

	return err == nil && c <= 0, err
}

// Eq returns true if v == x numerically.
func (v Value) Eq(x interface{}) (ok bool, err error) {
	c, err := v.Cmp(x)

	return err == nil && c == 0, err
}
